package mpd

import (
	"strconv"
	"strings"
	"time"

	"github.com/htkhiem/mpd/proto"
)

// State is the playback state reported by the server.
type State string

const (
	StateStop  State = "stop"
	StatePlay  State = "play"
	StatePause State = "pause"
)

func parseState(s string) (State, error) {
	switch State(s) {
	case StateStop, StatePlay, StatePause:
		return State(s), nil
	}
	return "", &proto.ParseError{Message: "unknown playback state", Input: s}
}

// ReplayGain is the replay gain mode.
type ReplayGain string

const (
	ReplayGainOff   ReplayGain = "off"
	ReplayGainTrack ReplayGain = "track"
	ReplayGainAlbum ReplayGain = "album"
	ReplayGainAuto  ReplayGain = "auto"
)

func parseReplayGain(s string) (ReplayGain, error) {
	switch ReplayGain(s) {
	case ReplayGainOff, ReplayGainTrack, ReplayGainAlbum, ReplayGainAuto:
		return ReplayGain(s), nil
	}
	return "", &proto.ParseError{Message: "unknown replay gain mode", Input: s}
}

// Args emits the mode's wire literal.
func (r ReplayGain) Args(emit func(string) error) error {
	return emit(string(r))
}

// AudioFormat is the current playback format, "rate:bits:channels" on
// the wire. Bits is 0 for floating point samples and 1 for DSD.
type AudioFormat struct {
	Rate  uint32
	Bits  uint8
	Chans uint8
}

func parseAudioFormat(s string) (AudioFormat, error) {
	// DSD strings carry only the multiplier and the channel count,
	// e.g. "dsd64:2". DSD64 is sampled at 64x44100 single-bit values
	// per second; expressed in bytes that is 64*44100/8.
	if rest, ok := strings.CutPrefix(s, "dsd"); ok {
		mulText, chansText, found := strings.Cut(rest, ":")
		if !found {
			return AudioFormat{}, &proto.ParseError{Message: "malformed DSD audio format", Input: s}
		}
		mul, err := strconv.ParseUint(mulText, 10, 32)
		if err != nil {
			return AudioFormat{}, &proto.ParseError{Message: "bad DSD multiplier", Input: s, Err: err}
		}
		chans, err := strconv.ParseUint(chansText, 10, 8)
		if err != nil {
			return AudioFormat{}, &proto.ParseError{Message: "bad channel count", Input: s, Err: err}
		}
		return AudioFormat{Rate: uint32(mul) * 44100 / 8, Bits: 1, Chans: uint8(chans)}, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return AudioFormat{}, &proto.ParseError{Message: "malformed audio format", Input: s}
	}
	rate, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return AudioFormat{}, &proto.ParseError{Message: "bad sample rate", Input: s, Err: err}
	}
	var bits uint64
	if parts[1] != "f" {
		bits, err = strconv.ParseUint(parts[1], 10, 8)
		if err != nil {
			return AudioFormat{}, &proto.ParseError{Message: "bad sample resolution", Input: s, Err: err}
		}
	}
	chans, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return AudioFormat{}, &proto.ParseError{Message: "bad channel count", Input: s, Err: err}
	}
	return AudioFormat{Rate: uint32(rate), Bits: uint8(bits), Chans: uint8(chans)}, nil
}

// Status is the player status snapshot returned by the status command.
type Status struct {
	// Volume is 0-100, or -1 when no mixer is available.
	Volume int

	Repeat  bool
	Random  bool
	Single  bool
	Consume bool

	// QueueVersion increments whenever the queue changes.
	QueueVersion uint32
	QueueLen     uint32

	State    State
	Song     *QueuePlace
	NextSong *QueuePlace

	// Elapsed and Duration describe the current song; zero when no
	// song is loaded.
	Elapsed  time.Duration
	Duration time.Duration

	// Bitrate of the current song in kbps, zero when not playing.
	Bitrate uint32

	Crossfade    time.Duration
	MixRampDB    float64
	MixRampDelay time.Duration

	Audio *AudioFormat

	// UpdatingDB is the running database update job id, zero when no
	// update is in progress.
	UpdatingDB uint32

	// Error is the last player error, empty when none.
	Error string

	ReplayGain ReplayGain
}

// Status queries the current player status.
func (c *Client) Status() (Status, error) {
	if err := c.command("status"); err != nil {
		return Status{}, err
	}
	return statusFromPairs(c.pairs())
}

func statusFromPairs(ps *proto.Pairs) (Status, error) {
	status := Status{State: StateStop, ReplayGain: ReplayGainOff}

	for ps.Next() {
		p := ps.Pair()
		var err error
		switch p.Key {
		case "volume":
			status.Volume, err = strconv.Atoi(p.Value)
		case "repeat":
			status.Repeat = p.Value == "1"
		case "random":
			status.Random = p.Value == "1"
		case "single":
			status.Single = p.Value == "1"
		case "consume":
			status.Consume = p.Value == "1"
		case "playlist":
			status.QueueVersion, err = parseUint32(p.Value)
		case "playlistlength":
			status.QueueLen, err = parseUint32(p.Value)
		case "state":
			status.State, err = parseState(p.Value)
		case "song":
			err = placePos(&status.Song, p.Value)
		case "songid":
			err = placeID(&status.Song, p.Value)
		case "nextsong":
			err = placePos(&status.NextSong, p.Value)
		case "nextsongid":
			err = placeID(&status.NextSong, p.Value)
		case "time":
			// Whole-second "elapsed:total"; the fractional elapsed and
			// duration fields take precedence when present.
			elapsedText, totalText, found := strings.Cut(p.Value, ":")
			if !found {
				err = &proto.ParseError{Message: "malformed time field", Input: p.Value}
				break
			}
			if status.Elapsed == 0 {
				status.Elapsed, err = parseSeconds(elapsedText)
			}
			if err == nil && status.Duration == 0 {
				status.Duration, err = parseSeconds(totalText)
			}
		case "elapsed":
			status.Elapsed, err = parseFloatSeconds(p.Value)
		case "duration":
			status.Duration, err = parseFloatSeconds(p.Value)
		case "bitrate":
			status.Bitrate, err = parseUint32(p.Value)
		case "xfade":
			status.Crossfade, err = parseSeconds(p.Value)
		case "mixrampdb":
			status.MixRampDB, err = strconv.ParseFloat(p.Value, 64)
		case "mixrampdelay":
			status.MixRampDelay, err = parseFloatSeconds(p.Value)
		case "audio":
			var format AudioFormat
			format, err = parseAudioFormat(p.Value)
			if err == nil {
				status.Audio = &format
			}
		case "updating_db":
			status.UpdatingDB, err = parseUint32(p.Value)
		case "error":
			status.Error = p.Value
		case "replay_gain_mode":
			status.ReplayGain, err = parseReplayGain(p.Value)
		}
		if err != nil {
			return Status{}, badField(p, err)
		}
	}
	if err := ps.Err(); err != nil {
		return Status{}, err
	}
	return status, nil
}

// placePos updates (or creates) a queue place with a position field.
func placePos(place **QueuePlace, value string) error {
	pos, err := parseUint32(value)
	if err != nil {
		return err
	}
	if *place == nil {
		*place = &QueuePlace{}
	}
	(*place).Pos = pos
	return nil
}

// placeID updates (or creates) a queue place with an id field.
func placeID(place **QueuePlace, value string) error {
	id, err := parseUint32(value)
	if err != nil {
		return err
	}
	if *place == nil {
		*place = &QueuePlace{}
	}
	(*place).ID = ID(id)
	return nil
}

func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return uint32(n), err
}

func parseSeconds(s string) (time.Duration, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

func parseFloatSeconds(s string) (time.Duration, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(f * float64(time.Second)), nil
}

// badField wraps a field conversion failure, preserving the offending
// key and text. Parse errors from nested parsers pass through as is.
func badField(p proto.Pair, err error) error {
	if pe, ok := err.(*proto.ParseError); ok {
		return pe
	}
	return &proto.ParseError{Message: "bad " + p.Key + " field", Input: p.Value, Err: err}
}
