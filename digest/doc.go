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

// Package digest is used to create a fingerprint of the emulation's video
// output. Each frame's fingerprint is chained to the fingerprint of the
// previous frame so the final value identifies the entire sequence of frames.
//
// The Video type implements the television.FrameRenderer interface and so
// should be added to a television with AddFrameRenderer().
package digest
