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

package television_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/ppu"
	"github.com/jetsetilly/gopherboy/hardware/television"
	"github.com/jetsetilly/gopherboy/test"
)

type renderer struct {
	frames []int
	first  [4]uint8
	ended  bool
}

func (r *renderer) NewFrame(frameNum int, frame *image.RGBA) error {
	r.frames = append(r.frames, frameNum)
	copy(r.first[:], frame.Pix[:4])
	return nil
}

func (r *renderer) EndRendering() error {
	r.ended = true
	return nil
}

func TestFrames(t *testing.T) {
	tv := television.NewTelevision(nil)
	tv.Limiter.Active.Store(false)
	tv.SpeedUp()

	r := &renderer{}
	tv.AddFrameRenderer(r)

	var line [ppu.ScreenWidth]uint8
	line[0] = 0x03
	line[1] = 0xf2

	for y := range ppu.ScreenHeight - 1 {
		tv.DrawLine(y, line)
	}
	test.ExpectEquality(t, len(r.frames), 0)
	tv.DrawLine(ppu.ScreenHeight-1, line)
	test.DemandEquality(t, len(r.frames), 1)
	test.ExpectEquality(t, r.frames[0], 1)
	test.ExpectEquality(t, tv.FrameNum(), 1)

	dark := television.Palette[3]
	test.ExpectEquality(t, r.first, [4]uint8{dark.R, dark.G, dark.B, dark.A})

	// the marker in the upper nibble is ignored
	mid := television.Palette[2]
	test.ExpectEquality(t, tv.Frame().RGBAAt(1, 0), mid)

	// lines outside the screen are ignored
	tv.DrawLine(ppu.ScreenHeight, line)
	test.ExpectEquality(t, len(r.frames), 1)

	test.ExpectSuccess(t, tv.End())
	test.ExpectSuccess(t, r.ended)
}
