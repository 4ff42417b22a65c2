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
	"context"
	"io"
	"net"
	"sync"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/logger"
)

// Relay accepts connections from TCPLink instances in pairs and forwards the
// bytes sent by one to the other.
type Relay struct {
	listener net.Listener

	// connection waiting for a partner
	waiting net.Conn

	wg sync.WaitGroup
}

// NewRelay starts listening on the address. Use Run() to start accepting
// connections.
func NewRelay(address string) (*Relay, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, curated.Errorf(ConnectionError, err)
	}
	return &Relay{listener: listener}, nil
}

// Addr returns the address the relay is listening on.
func (r *Relay) Addr() net.Addr {
	return r.listener.Addr()
}

// Run accepts connections until the context is cancelled. Forwarding between
// paired connections continues until one side of the pair disconnects.
func (r *Relay) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		r.listener.Close()
	}()

	defer func() {
		if r.waiting != nil {
			r.waiting.Close()
		}
		r.wg.Wait()
	}()

	for {
		conn, err := r.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return curated.Errorf(ConnectionError, err)
		}

		logger.Logf(logger.Allow, "relay", "connection from %s", conn.RemoteAddr())

		if r.waiting == nil {
			r.waiting = conn
			continue // for loop
		}

		a := r.waiting
		r.waiting = nil

		logger.Logf(logger.Allow, "relay", "pairing %s with %s", a.RemoteAddr(), conn.RemoteAddr())

		r.wg.Add(2)
		go r.forward(ctx, a, conn)
		go r.forward(ctx, conn, a)
	}
}

// forward bytes from one connection to the other. both connections are
// closed when forwarding ends in either direction
func (r *Relay) forward(ctx context.Context, from net.Conn, to net.Conn) {
	defer r.wg.Done()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			from.Close()
		case <-done:
		}
	}()

	_, err := io.Copy(to, from)
	if err != nil {
		logger.Logf(logger.Allow, "relay", "%v", err)
	}

	from.Close()
	to.Close()
}
