package sockets

import "time"

func WithPingInterval(interval time.Duration, msg []byte) func(*Conn) {
	return func(c *Conn) {
		c.pingInterval = interval
		c.pingMsg = msg
	}
}

func WithHandshakeTimeout(timeout time.Duration) func(*Conn) {
	return func(c *Conn) {
		c.handshakeTimeout = timeout
	}
}

func InsecureSkipVerify() func(*Conn) {
	return func(c *Conn) {
		c.sslSkipVerify = true
	}
}
