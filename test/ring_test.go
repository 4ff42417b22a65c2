// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package test_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/test"
)

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)

	// the ring writer starts off with the empty string
	test.ExpectEquality(t, r.String(), "")

	r.Write([]byte("abcde"))
	test.ExpectEquality(t, r.String(), "abcde")

	r.Write([]byte("fgh"))
	test.ExpectEquality(t, r.String(), "abcdefgh")

	// total written is exactly the size of the buffer
	r.Write([]byte("ij"))
	test.ExpectEquality(t, r.String(), "abcdefghij")

	// beyond the size of the buffer
	r.Write([]byte("kl"))
	test.ExpectEquality(t, r.String(), "cdefghijkl")
	r.Write([]byte("mn"))
	test.ExpectEquality(t, r.String(), "efghijklmn")

	// same length as the buffer when there is already content
	r.Write([]byte("1234567890"))
	test.ExpectEquality(t, r.String(), "1234567890")

	// longer than the buffer when there is already content
	r.Write([]byte("1234567890ABC"))
	test.ExpectEquality(t, r.String(), "4567890ABC")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")
	r.Write([]byte("1234567890ABC"))
	test.ExpectEquality(t, r.String(), "4567890ABC")
}

func TestCappedWriter(t *testing.T) {
	c, err := test.NewCappedWriter(8)
	test.DemandSuccess(t, err)

	c.Write([]byte("abc"))
	test.ExpectEquality(t, c.String(), "abc")

	n, _ := c.Write([]byte("defghijk"))
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, c.String(), "abcdefgh")

	n, _ = c.Write([]byte("z"))
	test.ExpectEquality(t, n, 0)

	c.Reset()
	test.ExpectEquality(t, c.String(), "")
}

func TestCompareWriter(t *testing.T) {
	var w test.CompareWriter
	w.Write([]byte("serial: "))
	w.Write([]byte("Passed"))
	test.ExpectSuccess(t, w.Compare("serial: Passed"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
