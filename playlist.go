package mpd

import "github.com/htkhiem/mpd/proto"

// Playlist is a stored playlist.
type Playlist struct {
	Name         string
	LastModified string
}

// URI returns the playlist's name, which doubles as its database path.
func (p Playlist) URI() string {
	return p.Name
}

func playlistFromGroup(g proto.Group) (Playlist, error) {
	pl := Playlist{Name: g.Key}
	for _, p := range g.Fields {
		if p.Key == "Last-Modified" {
			pl.LastModified = p.Value
		}
	}
	if pl.LastModified == "" {
		return Playlist{}, &proto.ProtoError{Message: "playlist record is missing Last-Modified"}
	}
	return pl, nil
}

// SaveMode controls what Save does when the playlist already exists.
type SaveMode string

const (
	SaveModeCreate  SaveMode = "create"
	SaveModeReplace SaveMode = "replace"
	SaveModeAppend  SaveMode = "append"
)

// Args emits the mode's wire literal.
func (m SaveMode) Args(emit func(string) error) error {
	return emit(string(m))
}

// Playlists lists the stored playlists.
func (c *Client) Playlists() ([]Playlist, error) {
	if err := c.command("listplaylists"); err != nil {
		return nil, err
	}
	groups := c.pairs().Split("playlist")
	var playlists []Playlist
	for groups.Next() {
		pl, err := playlistFromGroup(groups.Group())
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, pl)
	}
	if err := groups.Err(); err != nil {
		return nil, err
	}
	return playlists, nil
}

// PlaylistContents lists the songs of a stored playlist.
func (c *Client) PlaylistContents(name string) ([]Song, error) {
	if err := c.command("listplaylistinfo", proto.Quoted(name)); err != nil {
		return nil, err
	}
	return c.readSongs()
}

// Load appends the stored playlist's songs to the queue.
func (c *Client) Load(name string) error {
	return c.okCmd("load", proto.Quoted(name))
}

// Save stores the queue as a playlist. An empty mode uses the
// server's default (create, failing if the name is taken).
func (c *Client) Save(name string, mode SaveMode) error {
	if mode == "" {
		return c.okCmd("save", proto.Quoted(name))
	}
	return c.okCmd("save", proto.Quoted(name), mode)
}

// RemovePlaylist deletes a stored playlist.
func (c *Client) RemovePlaylist(name string) error {
	return c.okCmd("rm", proto.Quoted(name))
}

// RenamePlaylist renames a stored playlist.
func (c *Client) RenamePlaylist(name, newName string) error {
	return c.okCmd("rename", proto.Quoted(name), proto.Quoted(newName))
}

// PlaylistAdd appends the song at uri to a stored playlist.
func (c *Client) PlaylistAdd(name, uri string) error {
	return c.okCmd("playlistadd", proto.Quoted(name), proto.Quoted(uri))
}

// PlaylistDelete removes the song at the given position from a stored
// playlist.
func (c *Client) PlaylistDelete(name string, pos uint32) error {
	return c.okCmd("playlistdelete", proto.Quoted(name), pos)
}

// PlaylistClear empties a stored playlist.
func (c *Client) PlaylistClear(name string) error {
	return c.okCmd("playlistclear", proto.Quoted(name))
}
