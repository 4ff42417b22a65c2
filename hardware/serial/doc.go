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

// Package serial implements the other end of the console's serial port.
//
// All link types implement the Link interface. Bytes sent by the console are
// passed to Send(). Bytes from the other side of the link are delivered to
// the function registered with SetReceiver() but only during a call to
// Service(), which the console calls once per step on the emulation
// goroutine. Received bytes are never delivered from any other goroutine.
//
// The TCPLink type connects two consoles through a Relay. The Relay accepts
// connections in pairs and forwards the bytes of one connection to the other.
package serial
