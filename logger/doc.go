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

// Package logger is the central log for the emulator. It is intended for
// messages that are useful when tracking down problems but that are not
// important enough to interrupt the user with: an unusual opcode, a missing
// save file, a dropped serial connection.
//
// Entries are added with Log() and Logf(). Both take a Permission value as the
// first argument, which allows components to stay quiet when they are being
// used for a purpose other than running the main emulation (disassembly for
// example). Use logger.Allow when an entry should always be made.
//
// Consecutive entries with the same tag and detail are collapsed into one
// entry with a repeat count. The central log keeps at most a fixed number of
// entries, discarding the oldest first.
package logger
