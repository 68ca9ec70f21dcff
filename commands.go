package mpd

import (
	"strconv"
	"time"

	"github.com/htkhiem/mpd/proto"
)

// Playback control.

// Play resumes playback of the current song.
func (c *Client) Play() error {
	return c.okCmd("play")
}

// PlayPos starts playback at the given queue position.
func (c *Client) PlayPos(pos uint32) error {
	return c.okCmd("play", pos)
}

// PlayID starts playback of the song with the given queue id.
func (c *Client) PlayID(id ID) error {
	return c.okCmd("playid", id)
}

// Pause pauses (true) or resumes (false) playback.
func (c *Client) Pause(pause bool) error {
	return c.okCmd("pause", pause)
}

// Stop stops playback.
func (c *Client) Stop() error {
	return c.okCmd("stop")
}

// Next plays the next song in the queue.
func (c *Client) Next() error {
	return c.okCmd("next")
}

// Previous plays the previous song in the queue.
func (c *Client) Previous() error {
	return c.okCmd("previous")
}

// Seek seeks within the song at the given queue position.
func (c *Client) Seek(pos uint32, at time.Duration) error {
	return c.okCmd("seek", pos, at)
}

// SeekID seeks within the song with the given queue id.
func (c *Client) SeekID(id ID, at time.Duration) error {
	return c.okCmd("seekid", id, at)
}

// SeekCur seeks within the current song.
func (c *Client) SeekCur(at time.Duration) error {
	return c.okCmd("seekcur", at)
}

// Playback options.

// SetVolume sets the volume (0-100).
func (c *Client) SetVolume(volume int) error {
	return c.okCmd("setvol", volume)
}

// Repeat toggles repeat mode.
func (c *Client) Repeat(on bool) error {
	return c.okCmd("repeat", on)
}

// Random toggles random mode.
func (c *Client) Random(on bool) error {
	return c.okCmd("random", on)
}

// Single toggles single mode.
func (c *Client) Single(on bool) error {
	return c.okCmd("single", on)
}

// Consume toggles consume mode.
func (c *Client) Consume(on bool) error {
	return c.okCmd("consume", on)
}

// Crossfade sets the crossfade time between songs.
func (c *Client) Crossfade(d time.Duration) error {
	return c.okCmd("crossfade", d)
}

// MixRampDB sets the mixramp overlap threshold in dB.
func (c *Client) MixRampDB(db float64) error {
	return c.okCmd("mixrampdb", db)
}

// MixRampDelay sets the delay subtracted from the mixramp overlap.
func (c *Client) MixRampDelay(d time.Duration) error {
	return c.okCmd("mixrampdelay", d)
}

// ReplayGainMode selects the replay gain mode.
func (c *Client) ReplayGainMode(mode ReplayGain) error {
	return c.okCmd("replay_gain_mode", mode)
}

// ReplayGainStatus reports the active replay gain mode.
func (c *Client) ReplayGainStatus() (ReplayGain, error) {
	if err := c.command("replay_gain_status"); err != nil {
		return "", err
	}
	value, err := c.readField("replay_gain_mode")
	if err != nil {
		return "", err
	}
	return parseReplayGain(value)
}

// ClearError clears the player error shown in the status.
func (c *Client) ClearError() error {
	return c.okCmd("clearerror")
}

// Queue management.

// Add appends the song or directory at uri to the queue.
func (c *Client) Add(uri string) error {
	return c.okCmd("add", proto.Quoted(uri))
}

// AddID appends the song at uri to the queue and returns its id. A
// negative pos appends at the end; otherwise the song is inserted at
// that position.
func (c *Client) AddID(uri string, pos int) (ID, error) {
	args := []any{proto.Quoted(uri)}
	if pos >= 0 {
		args = append(args, pos)
	}
	if err := c.command("addid", args...); err != nil {
		return 0, err
	}
	value, err := c.readField("Id")
	if err != nil {
		return 0, err
	}
	id, err := parseUint32(value)
	if err != nil {
		return 0, badField(proto.Pair{Key: "Id", Value: value}, err)
	}
	return ID(id), nil
}

// Delete removes the song at the given queue position.
func (c *Client) Delete(pos uint32) error {
	return c.okCmd("delete", pos)
}

// DeleteID removes the song with the given queue id.
func (c *Client) DeleteID(id ID) error {
	return c.okCmd("deleteid", id)
}

// Clear empties the queue.
func (c *Client) Clear() error {
	return c.okCmd("clear")
}

// Shuffle shuffles the queue.
func (c *Client) Shuffle() error {
	return c.okCmd("shuffle")
}

// Move moves the song at position from to position to.
func (c *Client) Move(from, to uint32) error {
	return c.okCmd("move", from, to)
}

// Swap exchanges the songs at the two queue positions.
func (c *Client) Swap(a, b uint32) error {
	return c.okCmd("swap", a, b)
}

// Queue lists the songs in the queue, in play order.
func (c *Client) Queue() ([]Song, error) {
	if err := c.command("playlistinfo"); err != nil {
		return nil, err
	}
	return c.readSongs()
}

// Prio sets the priority of the songs in the given position range;
// higher priorities play first in random mode.
func (c *Client) Prio(prio uint8, r Range) error {
	return c.okCmd("prio", strconv.Itoa(int(prio)), r)
}
