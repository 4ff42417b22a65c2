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

package digest_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/digest"
	"github.com/jetsetilly/gopherboy/hardware/ppu"
	"github.com/jetsetilly/gopherboy/test"
)

func TestChaining(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))

	a := digest.NewVideo()
	test.ExpectEquality(t, a.Hash(), "0000000000000000000000000000000000000000")

	test.DemandSuccess(t, a.NewFrame(1, frame))
	first := a.Hash()
	test.ExpectInequality(t, first, "0000000000000000000000000000000000000000")
	test.ExpectEquality(t, a.Frames(), 1)

	// the same frame produces a different digest because of chaining
	test.DemandSuccess(t, a.NewFrame(2, frame))
	test.ExpectInequality(t, a.Hash(), first)

	// two digests of the same sequence are equal
	b := digest.NewVideo()
	test.DemandSuccess(t, b.NewFrame(1, frame))
	test.DemandSuccess(t, b.NewFrame(2, frame))
	test.ExpectEquality(t, b.Hash(), a.Hash())

	// a change of a single pixel is detected
	frame.Pix[100] = 0x01
	c := digest.NewVideo()
	test.DemandSuccess(t, c.NewFrame(1, frame))
	test.ExpectInequality(t, c.Hash(), first)

	c.ResetDigest()
	test.ExpectEquality(t, c.Frames(), 0)
	test.ExpectEquality(t, c.Hash(), "0000000000000000000000000000000000000000")
}

func TestFrameSize(t *testing.T) {
	dig := digest.NewVideo()
	err := dig.NewFrame(1, image.NewRGBA(image.Rect(0, 0, 10, 10)))
	test.ExpectSuccess(t, curated.Is(err, digest.DigestError))
}
