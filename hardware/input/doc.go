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

// Package input holds the state of the eight joypad buttons. The state can be
// changed from any goroutine. The console reads the state through the DPad()
// and Buttons() functions when the CPU reads the P1 register.
//
// A button press that was not previously held is noted and is consumed by the
// console with NewPress(), which it uses to raise the joypad interrupt.
package input
