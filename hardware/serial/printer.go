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

package serial

import (
	"io"

	"github.com/jetsetilly/gopherboy/logger"
)

// Printer implements the Link interface by writing every byte sent by the
// console to an io.Writer. Test ROMs commonly report their results this way.
type Printer struct {
	reply
	w io.Writer
}

// NewPrinter is the preferred method of initialisation for the Printer type.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Send implements the Link interface.
func (l *Printer) Send(data uint8) {
	if _, err := l.w.Write([]byte{data}); err != nil {
		logger.Logf(logger.Allow, "serial", "printer: %v", err)
	}
	l.pending = append(l.pending, noPeer)
}

// Close implements the Link interface.
func (l *Printer) Close() error {
	if c, ok := l.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
