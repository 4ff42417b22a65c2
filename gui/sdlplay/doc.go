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

// Package sdlplay implements the television.FrameRenderer interface using the
// SDL library. Keyboard events are translated into userinput events and sent
// over the channel returned by Events().
//
// All SDL functions are called on the main thread with the mainthread
// package. The program's main() function must therefore use mainthread.Run().
package sdlplay
