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

// Package test bundles functions that remove common boilerplate from tests.
//
// The Expect functions report a test failure with t.Errorf() and return
// false, allowing the test to continue. The Demand functions call
// t.Fatalf() instead and should be used when later parts of the test depend
// on the value being correct. For example, testing that the length of a
// slice is correct before indexing it.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// its type:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// Note that an untyped nil is a success. This follows from how errors are
// normally used (nil indicating no error).
//
// All functions accept optional tags which are added to the failure message.
// This is useful when a test is run in a loop:
//
//	for i := range 0x100 {
//		test.ExpectEquality(t, f(i), g(i), i)
//	}
//
// The writer types (CompareWriter, RingWriter and CappedWriter) implement
// io.Writer and are used to capture output for later inspection.
package test
