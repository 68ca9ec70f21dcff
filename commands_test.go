package mpd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/htkhiem/mpd/proto"
)

func TestPlaybackCommands(t *testing.T) {
	tests := []struct {
		name     string
		run      func(c *Client) error
		expected string
	}{
		{name: "play", run: func(c *Client) error { return c.Play() }, expected: "play\n"},
		{name: "play at position", run: func(c *Client) error { return c.PlayPos(5) }, expected: "play 5\n"},
		{name: "play by id", run: func(c *Client) error { return c.PlayID(17) }, expected: "playid 17\n"},
		{name: "pause", run: func(c *Client) error { return c.Pause(true) }, expected: "pause 1\n"},
		{name: "resume", run: func(c *Client) error { return c.Pause(false) }, expected: "pause 0\n"},
		{name: "stop", run: func(c *Client) error { return c.Stop() }, expected: "stop\n"},
		{name: "next", run: func(c *Client) error { return c.Next() }, expected: "next\n"},
		{name: "previous", run: func(c *Client) error { return c.Previous() }, expected: "previous\n"},
		{name: "seek", run: func(c *Client) error { return c.Seek(2, 90*time.Second) }, expected: "seek 2 90\n"},
		{name: "seek by id", run: func(c *Client) error { return c.SeekID(17, 90*time.Second) }, expected: "seekid 17 90\n"},
		{name: "seek current", run: func(c *Client) error { return c.SeekCur(30 * time.Second) }, expected: "seekcur 30\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, conn := newTestClient(t, "OK\n")
			require.NoError(t, tt.run(c))
			require.Equal(t, tt.expected, conn.GetWrittenRequest())
		})
	}
}

func TestOptionCommands(t *testing.T) {
	tests := []struct {
		name     string
		run      func(c *Client) error
		expected string
	}{
		{name: "volume", run: func(c *Client) error { return c.SetVolume(80) }, expected: "setvol 80\n"},
		{name: "repeat on", run: func(c *Client) error { return c.Repeat(true) }, expected: "repeat 1\n"},
		{name: "random off", run: func(c *Client) error { return c.Random(false) }, expected: "random 0\n"},
		{name: "single", run: func(c *Client) error { return c.Single(true) }, expected: "single 1\n"},
		{name: "consume", run: func(c *Client) error { return c.Consume(true) }, expected: "consume 1\n"},
		{name: "crossfade", run: func(c *Client) error { return c.Crossfade(5 * time.Second) }, expected: "crossfade 5\n"},
		{name: "mixrampdb", run: func(c *Client) error { return c.MixRampDB(-17.5) }, expected: "mixrampdb -17.5\n"},
		{name: "mixrampdelay", run: func(c *Client) error { return c.MixRampDelay(2 * time.Second) }, expected: "mixrampdelay 2\n"},
		{name: "replay gain mode", run: func(c *Client) error { return c.ReplayGainMode(ReplayGainTrack) }, expected: "replay_gain_mode track\n"},
		{name: "clear error", run: func(c *Client) error { return c.ClearError() }, expected: "clearerror\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, conn := newTestClient(t, "OK\n")
			require.NoError(t, tt.run(c))
			require.Equal(t, tt.expected, conn.GetWrittenRequest())
		})
	}
}

func TestQueueCommands(t *testing.T) {
	tests := []struct {
		name     string
		run      func(c *Client) error
		expected string
	}{
		{name: "add", run: func(c *Client) error { return c.Add("music/a song.mp3") }, expected: "add \"music/a song.mp3\"\n"},
		{name: "delete", run: func(c *Client) error { return c.Delete(3) }, expected: "delete 3\n"},
		{name: "delete by id", run: func(c *Client) error { return c.DeleteID(17) }, expected: "deleteid 17\n"},
		{name: "clear", run: func(c *Client) error { return c.Clear() }, expected: "clear\n"},
		{name: "shuffle", run: func(c *Client) error { return c.Shuffle() }, expected: "shuffle\n"},
		{name: "move", run: func(c *Client) error { return c.Move(1, 4) }, expected: "move 1 4\n"},
		{name: "swap", run: func(c *Client) error { return c.Swap(1, 4) }, expected: "swap 1 4\n"},
		{name: "prio", run: func(c *Client) error { return c.Prio(10, Range{Start: 0, End: 0}) }, expected: "prio 10 0:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, conn := newTestClient(t, "OK\n")
			require.NoError(t, tt.run(c))
			require.Equal(t, tt.expected, conn.GetWrittenRequest())
		})
	}
}

func TestAddID(t *testing.T) {
	c, conn := newTestClient(t, "Id: 23\nOK\n")

	id, err := c.AddID("music/song.mp3", -1)
	require.NoError(t, err)
	require.Equal(t, ID(23), id)
	require.Equal(t, "addid \"music/song.mp3\"\n", conn.GetWrittenRequest())
}

func TestAddIDAtPosition(t *testing.T) {
	c, conn := newTestClient(t, "Id: 24\nOK\n")

	id, err := c.AddID("music/song.mp3", 0)
	require.NoError(t, err)
	require.Equal(t, ID(24), id)
	require.Equal(t, "addid \"music/song.mp3\" 0\n", conn.GetWrittenRequest())
}

func TestQueue(t *testing.T) {
	response := "file: a.mp3\n" +
		"Title: Alpha\n" +
		"Pos: 0\n" +
		"Id: 10\n" +
		"file: b.mp3\n" +
		"Title: Beta\n" +
		"Pos: 1\n" +
		"Id: 11\n" +
		"Prio: 5\n" +
		"OK\n"

	c, conn := newTestClient(t, response)
	songs, err := c.Queue()
	require.NoError(t, err)
	require.Equal(t, "playlistinfo\n", conn.GetWrittenRequest())

	require.Len(t, songs, 2)
	require.Equal(t, "a.mp3", songs[0].File)
	require.Equal(t, &QueuePlace{Pos: 0, ID: 10}, songs[0].Place)
	require.Equal(t, &QueuePlace{Pos: 1, ID: 11, Prio: 5}, songs[1].Place)
}

func TestCurrentSong(t *testing.T) {
	response := "file: radio.stream\n" +
		"Name: Some Radio\n" +
		"Title: Now Playing\n" +
		"Pos: 0\n" +
		"Id: 10\n" +
		"OK\n"

	c, _ := newTestClient(t, response)
	song, err := c.CurrentSong()
	require.NoError(t, err)
	require.NotNil(t, song)
	require.Equal(t, "radio.stream", song.File)
	require.Equal(t, "Some Radio", song.Name)
}

func TestCurrentSongEmpty(t *testing.T) {
	c, _ := newTestClient(t, "OK\n")

	song, err := c.CurrentSong()
	require.NoError(t, err)
	require.Nil(t, song)
}

func TestSongTags(t *testing.T) {
	response := "file: a.flac\n" +
		"Title: Alpha\n" +
		"Artist: X\n" +
		"Genre: Jazz\n" +
		"Genre: Fusion\n" +
		"duration: 245.5\n" +
		"OK\n"

	c, _ := newTestClient(t, response)
	song, err := c.CurrentSong()
	require.NoError(t, err)

	// Repeated tags are preserved in order.
	require.Equal(t, []proto.Pair{
		{Key: "Genre", Value: "Jazz"},
		{Key: "Genre", Value: "Fusion"},
	}, song.Tags)
	require.Equal(t, 245500*time.Millisecond, song.Duration)

	genre, ok := song.Tag("Genre")
	require.True(t, ok)
	require.Equal(t, "Jazz", genre)

	_, ok = song.Tag("Composer")
	require.False(t, ok)
}

func TestRangeArgs(t *testing.T) {
	c, conn := newTestClient(t, "OK\n")
	require.NoError(t, c.Prio(1, Range{Start: 2 * time.Second, End: 5 * time.Second}))
	require.Equal(t, "prio 1 2:5\n", conn.GetWrittenRequest())
}
