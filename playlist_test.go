package mpd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaylists(t *testing.T) {
	response := "playlist: road trip\n" +
		"Last-Modified: 2024-01-01T00:00:00Z\n" +
		"playlist: quiet\n" +
		"Last-Modified: 2024-02-02T00:00:00Z\n" +
		"OK\n"

	c, conn := newTestClient(t, response)
	playlists, err := c.Playlists()
	require.NoError(t, err)
	require.Equal(t, "listplaylists\n", conn.GetWrittenRequest())
	require.Equal(t, []Playlist{
		{Name: "road trip", LastModified: "2024-01-01T00:00:00Z"},
		{Name: "quiet", LastModified: "2024-02-02T00:00:00Z"},
	}, playlists)
}

func TestPlaylistsMissingTimestamp(t *testing.T) {
	c, _ := newTestClient(t, "playlist: broken\nOK\n")

	_, err := c.Playlists()
	require.Error(t, err)
}

func TestPlaylistContents(t *testing.T) {
	response := "file: a.mp3\n" +
		"Title: Alpha\n" +
		"OK\n"

	c, conn := newTestClient(t, response)
	songs, err := c.PlaylistContents("road trip")
	require.NoError(t, err)
	require.Equal(t, "listplaylistinfo \"road trip\"\n", conn.GetWrittenRequest())
	require.Len(t, songs, 1)
}

func TestPlaylistCommands(t *testing.T) {
	tests := []struct {
		name     string
		run      func(c *Client) error
		expected string
	}{
		{
			name:     "load",
			run:      func(c *Client) error { return c.Load("road trip") },
			expected: "load \"road trip\"\n",
		},
		{
			name:     "save default mode",
			run:      func(c *Client) error { return c.Save("new list", "") },
			expected: "save \"new list\"\n",
		},
		{
			name:     "save replace",
			run:      func(c *Client) error { return c.Save("new list", SaveModeReplace) },
			expected: "save \"new list\" replace\n",
		},
		{
			name:     "remove",
			run:      func(c *Client) error { return c.RemovePlaylist("old") },
			expected: "rm \"old\"\n",
		},
		{
			name:     "rename",
			run:      func(c *Client) error { return c.RenamePlaylist("old", "new") },
			expected: "rename \"old\" \"new\"\n",
		},
		{
			name:     "add song",
			run:      func(c *Client) error { return c.PlaylistAdd("road trip", "a.mp3") },
			expected: "playlistadd \"road trip\" \"a.mp3\"\n",
		},
		{
			name:     "delete song",
			run:      func(c *Client) error { return c.PlaylistDelete("road trip", 2) },
			expected: "playlistdelete \"road trip\" 2\n",
		},
		{
			name:     "clear",
			run:      func(c *Client) error { return c.PlaylistClear("road trip") },
			expected: "playlistclear \"road trip\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, conn := newTestClient(t, "OK\n")
			require.NoError(t, tt.run(c))
			require.Equal(t, tt.expected, conn.GetWrittenRequest())
		})
	}
}
