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
	"net"
	"sync"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/logger"
)

// ConnectionError is returned by NewTCPLink() if the connection to the relay
// could not be made.
const ConnectionError = "serial: %v"

// size of the queue of received bytes. bytes are dropped if the queue is full
const receiveQueueSize = 256

// TCPLink implements the Link interface with a TCP connection to a Relay.
type TCPLink struct {
	conn net.Conn

	receiver func(data uint8)

	// bytes read from the connection by the reader goroutine
	received chan uint8

	closeOnce sync.Once
}

// NewTCPLink connects to the relay at the address.
func NewTCPLink(address string) (*TCPLink, error) {
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, curated.Errorf(ConnectionError, err)
	}

	l := &TCPLink{
		conn:     conn,
		received: make(chan uint8, receiveQueueSize),
	}

	go l.read()

	logger.Logf(logger.Allow, "serial", "connected to %s", conn.RemoteAddr())

	return l, nil
}

// read from the connection until it is closed
func (l *TCPLink) read() {
	buf := make([]byte, 64)
	for {
		n, err := l.conn.Read(buf)
		for _, b := range buf[:n] {
			select {
			case l.received <- b:
			default:
				logger.Logf(logger.Allow, "serial", "receive queue full. byte %#02x dropped", b)
			}
		}
		if err != nil {
			logger.Logf(logger.Allow, "serial", "connection closed: %v", err)
			return
		}
	}
}

// Send implements the Link interface.
func (l *TCPLink) Send(data uint8) {
	if _, err := l.conn.Write([]byte{data}); err != nil {
		logger.Logf(logger.Allow, "serial", "send: %v", err)
	}
}

// SetReceiver implements the Link interface.
func (l *TCPLink) SetReceiver(receiver func(data uint8)) {
	l.receiver = receiver
}

// Service implements the Link interface.
func (l *TCPLink) Service() {
	for {
		select {
		case b := <-l.received:
			if l.receiver != nil {
				l.receiver(b)
			}
		default:
			return
		}
	}
}

// Close implements the Link interface.
func (l *TCPLink) Close() error {
	var err error
	l.closeOnce.Do(func() {
		err = l.conn.Close()
	})
	return err
}
