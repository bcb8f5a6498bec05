// Package sockets wraps a gorilla websocket connection with dial options and
// a blocking read loop tied to a context.
package sockets

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/gorilla/websocket"
)

type Conn struct {
	ws               *websocket.Conn
	sslSkipVerify    bool
	handshakeTimeout time.Duration
	pingInterval     time.Duration
	pingMsg          []byte
}

// Dial connects to url and returns a connection ready to Listen on.
func Dial(ctx context.Context, url string, opts ...func(*Conn)) (*Conn, error) {
	c := &Conn{
		handshakeTimeout: 15 * time.Second,
	}
	for _, o := range opts {
		o(c)
	}

	dialer := &websocket.Dialer{
		HandshakeTimeout: c.handshakeTimeout,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: c.sslSkipVerify,
		},
	}
	ws, res, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	if res != nil && res.Body != nil {
		_ = res.Body.Close()
	}
	c.ws = ws
	return c, nil
}

// Listen reads messages until the connection drops, handle returns an error,
// or ctx is cancelled. The connection is closed before Listen returns.
func (c *Conn) Listen(ctx context.Context, handle func(msg []byte) error) error {
	defer c.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = c.ws.Close()
		case <-done:
		}
	}()

	c.setupPing(done)

	for {
		_, msg, err := c.ws.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if err := handle(msg); err != nil {
			return err
		}
	}
}

func (c *Conn) Close() error {
	return c.ws.Close()
}

func (c *Conn) setupPing(done <-chan struct{}) {
	if c.pingInterval <= 0 || len(c.pingMsg) == 0 {
		return
	}
	ticker := time.NewTicker(c.pingInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if c.ws.WriteMessage(websocket.TextMessage, c.pingMsg) != nil {
					return
				}
			}
		}
	}()
}
