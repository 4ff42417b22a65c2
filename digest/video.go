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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/ppu"
)

// DigestError is the pattern for errors returned by the package.
const DigestError = "digest: %v"

const pixelDepth = 4

// Video records a chained SHA1 digest of every frame.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		// room for the previous digest followed by the frame
		pixels: make([]byte, sha1.Size+ppu.ScreenWidth*ppu.ScreenHeight*pixelDepth),
	}
}

// Hash returns the current digest value as a hex string.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Frames returns the number of the most recent frame to be included in the
// digest.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// ResetDigest clears the digest value.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// NewFrame implements the television.FrameRenderer interface.
func (dig *Video) NewFrame(frameNum int, frame *image.RGBA) error {
	sz := frame.Bounds().Size()
	if sz.X != ppu.ScreenWidth || sz.Y != ppu.ScreenHeight {
		return curated.Errorf(DigestError, fmt.Sprintf("unexpected frame size (%dx%d)", sz.X, sz.Y))
	}

	// chain fingerprints by copying the previous digest to the head of the
	// pixel data
	n := copy(dig.pixels, dig.digest[:])
	for y := range ppu.ScreenHeight {
		i := frame.PixOffset(frame.Rect.Min.X, frame.Rect.Min.Y+y)
		n += copy(dig.pixels[n:], frame.Pix[i:i+ppu.ScreenWidth*pixelDepth])
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
	return nil
}

// EndRendering implements the television.FrameRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
