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

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// terminal wraps the termios functions in functions with friendlier names.
type terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

func (pt *terminal) initialise(input, output *os.File) error {
	pt.input = input
	pt.output = output

	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return err
	}

	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	// echo is never wanted
	pt.cbreakAttr.Lflag &^= unix.ECHO

	return nil
}

// canonicalMode puts terminal into normal, everyday canonical mode.
func (pt *terminal) canonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// cbreakMode puts terminal into cbreak mode.
func (pt *terminal) cbreakMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}
