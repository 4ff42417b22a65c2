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

// DefaultAddress is the default address for the relay server.
const DefaultAddress = "localhost:43251"

// Link is implemented by all serial link types.
type Link interface {
	// Send a byte to the other side of the link
	Send(data uint8)

	// SetReceiver registers the function that is called for every byte
	// received from the other side of the link
	SetReceiver(func(data uint8))

	// Service delivers received bytes to the receiver. Must be called on the
	// emulation goroutine
	Service()

	// Close the link and release any resources
	Close() error
}

// the value received when there is nothing connected to the other side of
// the link
const noPeer = 0xff

// reply is a helper type for links that reply to every byte sent with a
// single byte
type reply struct {
	receiver func(data uint8)
	pending  []uint8
}

func (r *reply) SetReceiver(receiver func(data uint8)) {
	r.receiver = receiver
}

func (r *reply) Service() {
	if r.receiver == nil {
		r.pending = r.pending[:0]
		return
	}
	for _, d := range r.pending {
		r.receiver(d)
	}
	r.pending = r.pending[:0]
}

// Disconnected implements the Link interface for a serial port with nothing
// attached.
type Disconnected struct {
	reply
}

// NewDisconnected is the preferred method of initialisation for the
// Disconnected type.
func NewDisconnected() *Disconnected {
	return &Disconnected{}
}

// Send implements the Link interface. Every byte sent is answered with 0xff.
func (l *Disconnected) Send(_ uint8) {
	l.pending = append(l.pending, noPeer)
}

// Close implements the Link interface.
func (l *Disconnected) Close() error {
	return nil
}
