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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows a different
// set of flags for each mode.
//
// Arguments are given with NewArgs() and then parsed with Parse(). This two
// step approach allows each mode to declare its own flags before the next
// layer of arguments is parsed:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("PLAY", "RUN", "LINK")
//
//	p, err := md.Parse()
//	...
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 3.0, "window scaling")
//		p, err := md.Parse()
//		...
//	}
//
// The first sub-mode in the list is the default mode and is selected when the
// next argument does not name a mode. Sub-mode comparisons are case
// insensitive.
//
// Non-flag arguments that remain after Parse() are retrieved with
// RemainingArgs() or GetArg().
//
// Help is handled automatically. When the user specifies -help (or -h), help
// for the current mode is written to the Output field and Parse() returns
// ParseHelp.
package modalflag
