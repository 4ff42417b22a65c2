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

// Package prefs facilitates the storage of preferences to disk. Preference
// values are typed (Bool, Int, Float and String) and safe to access from more
// than one goroutine.
//
// Values are bound to a key in a Disk instance with Add(). Several Disk
// instances can share the same file; entries for keys that a Disk instance
// does not know about are preserved when that instance saves the file.
//
// The file format is one entry per line:
//
//	cpu.strictdecode :: false
//	tv.fpscap :: true
//
// Values can be overridden for the duration of a session with the command
// line stack (see PushCommandLineStack()). Values from the command line are
// applied when Load() is called.
package prefs
