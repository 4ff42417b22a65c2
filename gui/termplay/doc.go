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

// Package termplay implements the television.FrameRenderer interface for a
// colour terminal. Each character cell shows two rows of the frame using the
// upper half block character with separate foreground and background colours.
// The frame is halved in width and height to fit a typical terminal.
//
// The terminal is put into cbreak mode with the termios package. Terminals
// report key presses but not key releases so every key press is followed by a
// release event shortly afterwards.
package termplay
