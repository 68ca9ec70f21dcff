package mpd

import (
	"strings"

	"github.com/htkhiem/mpd/proto"
)

// Entry is one item of a database listing: a Song, a Directory, or a
// Playlist.
type Entry interface {
	// URI returns the entry's path within the music database.
	URI() string
}

// Directory is a directory of the music database.
type Directory struct {
	Name         string
	LastModified string
}

// URI returns the directory's database path.
func (d Directory) URI() string {
	return d.Name
}

// Term is one tag filter of a find or search query.
type Term struct {
	// Tag is the tag name, or one of the special filters the server
	// accepts in tag position ("any", "file", "base", "modified-since").
	Tag   string
	Value string
}

// Args emits the term as a tag token followed by its quoted value.
func (t Term) Args(emit func(string) error) error {
	if err := emit(t.Tag); err != nil {
		return err
	}
	return emit(proto.Quote(t.Value))
}

// LsInfo lists the direct children of the given database directory.
// The root is uri "".
func (c *Client) LsInfo(uri string) ([]Entry, error) {
	if err := c.command("lsinfo", proto.Quoted(uri)); err != nil {
		return nil, err
	}
	return c.readEntries()
}

// ListAllInfo lists every song below the given database directory,
// recursively.
func (c *Client) ListAllInfo(uri string) ([]Entry, error) {
	if err := c.command("listallinfo", proto.Quoted(uri)); err != nil {
		return nil, err
	}
	return c.readEntries()
}

// readEntries reads a listing that interleaves file, directory and
// playlist records.
func (c *Client) readEntries() ([]Entry, error) {
	groups := c.pairs().SplitAny("file", "directory", "playlist")
	var entries []Entry
	for groups.Next() {
		g := groups.Group()
		switch g.Sentinel {
		case "file":
			song, err := songFromFields(g.Key, g.Fields)
			if err != nil {
				return nil, err
			}
			entries = append(entries, song)
		case "directory":
			dir := Directory{Name: g.Key}
			for _, p := range g.Fields {
				if p.Key == "Last-Modified" {
					dir.LastModified = p.Value
				}
			}
			entries = append(entries, dir)
		case "playlist":
			pl, err := playlistFromGroup(g)
			if err != nil {
				return nil, err
			}
			entries = append(entries, pl)
		}
	}
	if err := groups.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// List returns the distinct values of the given tag across the
// database.
func (c *Client) List(tag string) ([]string, error) {
	if err := c.command("list", tag); err != nil {
		return nil, err
	}
	// The server echoes the tag name with its own capitalization.
	ps := c.pairs()
	var values []string
	for ps.Next() {
		if p := ps.Pair(); strings.EqualFold(p.Key, tag) {
			values = append(values, p.Value)
		}
	}
	if err := ps.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// ListGroup returns the distinct values of tag grouped by the values
// of the group tag, e.g. albums grouped by album artist.
func (c *Client) ListGroup(tag, group string) ([]proto.ValueGroup, error) {
	if err := c.command("list", tag, "group", group); err != nil {
		return nil, err
	}
	return proto.CollectGrouped(c.pairs(), strings.ToLower(group))
}

// Find returns the database songs matching every term exactly.
func (c *Client) Find(terms ...Term) ([]Song, error) {
	return c.query("find", terms)
}

// Search is Find with case-insensitive substring matching.
func (c *Client) Search(terms ...Term) ([]Song, error) {
	return c.query("search", terms)
}

func (c *Client) query(name string, terms []Term) ([]Song, error) {
	args := make([]any, len(terms))
	for i, t := range terms {
		args[i] = t
	}
	if err := c.command(name, args...); err != nil {
		return nil, err
	}
	return c.readSongs()
}

// Update triggers a database update of the given directory or file,
// or of the whole database when uri is empty, and returns the update
// job id.
func (c *Client) Update(uri string) (uint32, error) {
	return c.updateCmd("update", uri)
}

// Rescan is Update but also rereads unmodified files.
func (c *Client) Rescan(uri string) (uint32, error) {
	return c.updateCmd("rescan", uri)
}

func (c *Client) updateCmd(name, uri string) (uint32, error) {
	var args []any
	if uri != "" {
		args = append(args, proto.Quoted(uri))
	}
	if err := c.command(name, args...); err != nil {
		return 0, err
	}
	value, err := c.readField("updating_db")
	if err != nil {
		return 0, err
	}
	job, err := parseUint32(value)
	if err != nil {
		return 0, badField(proto.Pair{Key: "updating_db", Value: value}, err)
	}
	return job, nil
}
