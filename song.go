package mpd

import (
	"strconv"
	"time"

	"github.com/htkhiem/mpd/proto"
)

// ID identifies a song in the queue, stable across queue reordering.
type ID uint32

// Args emits the id's wire token.
func (i ID) Args(emit func(string) error) error {
	return emit(strconv.FormatUint(uint64(i), 10))
}

// QueuePlace locates a song in the queue: by position, by id, and by
// priority.
type QueuePlace struct {
	ID   ID
	Pos  uint32
	Prio uint8
}

// Range selects a time window inside a song, serialized as
// "start:end" in whole seconds. A zero End leaves the range open.
type Range struct {
	Start time.Duration
	End   time.Duration
}

// Args emits the range's wire token.
func (r Range) Args(emit func(string) error) error {
	start := strconv.FormatInt(int64(r.Start/time.Second), 10)
	if r.End <= 0 {
		return emit(start + ":")
	}
	return emit(start + ":" + strconv.FormatInt(int64(r.End/time.Second), 10))
}

// Song is one song of the database or the queue. Well-known fields
// are broken out; all remaining tags are kept in Tags in arrival
// order, since repeated tags (multiple artists, multiple genres) are
// only distinguishable by position.
type Song struct {
	// File is the song URI within the music database.
	File string

	Title  string
	Artist string

	// Name is the stream name for streams without tags.
	Name string

	LastModified string
	Duration     time.Duration

	// Place is set for songs listed from the queue.
	Place *QueuePlace

	Tags []proto.Pair
}

// URI returns the song's database path.
func (s Song) URI() string {
	return s.File
}

// Tag returns the first value of the named tag and whether it exists.
func (s Song) Tag(name string) (string, bool) {
	for _, p := range s.Tags {
		if p.Key == name {
			return p.Value, true
		}
	}
	return "", false
}

// songFromFields assembles a Song from a group opened by a "file"
// sentinel: file is the sentinel's value, fields everything up to the
// next record.
func songFromFields(file string, fields []proto.Pair) (Song, error) {
	song := Song{File: file}

	for _, p := range fields {
		var err error
		switch p.Key {
		case "Title":
			song.Title = p.Value
		case "Artist":
			song.Artist = p.Value
		case "Name":
			song.Name = p.Value
		case "Last-Modified":
			song.LastModified = p.Value
		case "Time":
			// Whole seconds; the fractional duration field wins.
			if song.Duration == 0 {
				song.Duration, err = parseSeconds(p.Value)
			}
		case "duration":
			song.Duration, err = parseFloatSeconds(p.Value)
		case "Pos":
			err = songPlacePos(&song, p.Value)
		case "Id":
			err = songPlaceID(&song, p.Value)
		case "Prio":
			var prio uint64
			prio, err = strconv.ParseUint(p.Value, 10, 8)
			if err == nil {
				songPlace(&song).Prio = uint8(prio)
			}
		default:
			song.Tags = append(song.Tags, p)
		}
		if err != nil {
			return Song{}, badField(p, err)
		}
	}
	return song, nil
}

func songPlace(song *Song) *QueuePlace {
	if song.Place == nil {
		song.Place = &QueuePlace{}
	}
	return song.Place
}

func songPlacePos(song *Song, value string) error {
	pos, err := parseUint32(value)
	if err != nil {
		return err
	}
	songPlace(song).Pos = pos
	return nil
}

func songPlaceID(song *Song, value string) error {
	id, err := parseUint32(value)
	if err != nil {
		return err
	}
	songPlace(song).ID = ID(id)
	return nil
}

// readSongs reads a response of "file"-delimited song records.
func (c *Client) readSongs() ([]Song, error) {
	groups := c.pairs().Split("file")
	var songs []Song
	for groups.Next() {
		g := groups.Group()
		song, err := songFromFields(g.Key, g.Fields)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	if err := groups.Err(); err != nil {
		return nil, err
	}
	return songs, nil
}

// CurrentSong returns the song currently being played, or nil when
// the queue is stopped on nothing.
func (c *Client) CurrentSong() (*Song, error) {
	if err := c.command("currentsong"); err != nil {
		return nil, err
	}
	songs, err := c.readSongs()
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, nil
	}
	return &songs[0], nil
}
