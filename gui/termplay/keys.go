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

package termplay

// list of ASCII codes for non-alphanumeric characters
const (
	keyTab            = 9
	keyCarriageReturn = 13
	keyLineFeed       = 10
	keyEsc            = 27
	keySpace          = 32
)

// list of ASCII code for characters that can follow keyEsc
const escCursor = '['

// list of ASCII code for characters that can follow escCursor
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
)

// translate the bytes read from the terminal into the key names used by the
// userinput package. returns false if the bytes are not recognised.
func translate(b []byte) (string, bool) {
	if len(b) == 0 {
		return "", false
	}

	if b[0] == keyEsc {
		if len(b) == 1 {
			return "Escape", true
		}
		if len(b) >= 3 && b[1] == escCursor {
			switch b[2] {
			case cursorUp:
				return "Up", true
			case cursorDown:
				return "Down", true
			case cursorForward:
				return "Right", true
			case cursorBackward:
				return "Left", true
			}
		}
		return "", false
	}

	switch b[0] {
	case keyTab:
		return "Tab", true
	case keyCarriageReturn, keyLineFeed:
		return "Return", true
	case keySpace:
		return "Space", true
	case 'a', 'A':
		return "A", true
	case 'x', 'X':
		return "X", true
	case 'p', 'P':
		return "P", true
	case 'q', 'Q':
		return "Escape", true
	}

	return "", false
}
