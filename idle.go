package mpd

import (
	"errors"

	"github.com/htkhiem/mpd/proto"
)

// Subsystem is a server subsystem whose changes the idle command
// reports.
type Subsystem string

const (
	SubsystemDatabase     Subsystem = "database"
	SubsystemUpdate       Subsystem = "update"
	SubsystemPlaylist     Subsystem = "stored_playlist"
	SubsystemQueue        Subsystem = "playlist"
	SubsystemPlayer       Subsystem = "player"
	SubsystemMixer        Subsystem = "mixer"
	SubsystemOutput       Subsystem = "output"
	SubsystemOptions      Subsystem = "options"
	SubsystemPartition    Subsystem = "partition"
	SubsystemSticker      Subsystem = "sticker"
	SubsystemSubscription Subsystem = "subscription"
	SubsystemMessage      Subsystem = "message"
	SubsystemNeighbor     Subsystem = "neighbor"
	SubsystemMount        Subsystem = "mount"
)

func parseSubsystem(s string) (Subsystem, error) {
	switch Subsystem(s) {
	case SubsystemDatabase, SubsystemUpdate, SubsystemPlaylist,
		SubsystemQueue, SubsystemPlayer, SubsystemMixer,
		SubsystemOutput, SubsystemOptions, SubsystemPartition,
		SubsystemSticker, SubsystemSubscription, SubsystemMessage,
		SubsystemNeighbor, SubsystemMount:
		return Subsystem(s), nil
	}
	return "", &proto.ParseError{Message: "unknown subsystem", Input: s}
}

// Args emits the subsystem's wire name.
func (s Subsystem) Args(emit func(string) error) error {
	return emit(string(s))
}

// ErrGuardUsed is returned by Get on a guard that was already resolved.
var ErrGuardUsed = errors.New("mpd: idle guard already resolved")

// IdleGuard represents a pending idle command. While it is live the
// connection belongs to the server and every Client command returns
// ErrIdling; resolve it with Get (blocking until events arrive) or
// abandon it with Close (which interrupts the wait).
type IdleGuard struct {
	c    *Client
	done bool
}

// Idle sends the idle command and hands the connection over to a
// guard. With no subsystems the server reports changes to all of them.
func (c *Client) Idle(subsystems ...Subsystem) (*IdleGuard, error) {
	args := make([]any, len(subsystems))
	for i, s := range subsystems {
		args[i] = s
	}
	if err := c.command("idle", args...); err != nil {
		return nil, err
	}
	c.idling = true
	return &IdleGuard{c: c}, nil
}

// Get blocks until the server reports changed subsystems, then returns
// them and releases the connection. An empty slice means the wait was
// interrupted (by Close from another guard path or a noidle already in
// flight) before anything changed.
func (g *IdleGuard) Get() ([]Subsystem, error) {
	if g.done {
		return nil, ErrGuardUsed
	}
	g.done = true
	g.c.idling = false

	ps := proto.NewPairs(g.c.r)
	var changed []Subsystem
	for ps.Next() {
		p := ps.Pair()
		if p.Key != "changed" {
			continue
		}
		sub, err := parseSubsystem(p.Value)
		if err != nil {
			return nil, err
		}
		changed = append(changed, sub)
	}
	if err := ps.Err(); err != nil {
		return nil, err
	}
	return changed, nil
}

// Close interrupts the idle wait with noidle and discards whatever
// response the interruption produces, releasing the connection. Best
// effort: it never fails, and calling it after Get (or twice) is a
// no-op.
func (g *IdleGuard) Close() error {
	if g.done {
		return nil
	}
	g.done = true
	g.c.idling = false

	if err := g.c.writeCommand("noidle"); err != nil {
		return nil
	}
	_ = g.c.drain()
	return nil
}

// Wait is Idle followed immediately by Get: it blocks until any of the
// given subsystems change.
func (c *Client) Wait(subsystems ...Subsystem) ([]Subsystem, error) {
	guard, err := c.Idle(subsystems...)
	if err != nil {
		return nil, err
	}
	return guard.Get()
}
