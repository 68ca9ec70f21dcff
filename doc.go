// Package mpd is a client for the Music Player Daemon protocol.
//
// A Client wraps one connection to a server. The protocol is
// line-oriented and strictly half-duplex, so a Client is not safe for
// concurrent use; run one goroutine per connection.
//
//	c, err := mpd.Dial("tcp", "localhost:6600")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	status, err := c.Status()
//
// Event waiting goes through an IdleGuard, which owns the connection
// until it is resolved with Get or abandoned with Close:
//
//	guard, err := c.Idle(mpd.SubsystemPlayer)
//	...
//	changed, err := guard.Get()
//
// The proto subpackage implements the wire layer (reply decoding,
// pair streaming, record grouping, argument serialization) and can be
// used on its own.
package mpd
