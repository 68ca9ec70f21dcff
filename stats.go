package mpd

import (
	"strconv"
	"time"
)

// Stats is the server's database and uptime statistics.
type Stats struct {
	Artists uint32
	Albums  uint32
	Songs   uint32

	Uptime   time.Duration
	Playtime time.Duration

	// DBPlaytime is the accumulated duration of all songs in the
	// database.
	DBPlaytime time.Duration

	// DBUpdate is the time of the last database update.
	DBUpdate time.Time
}

// Stats queries server statistics.
func (c *Client) Stats() (Stats, error) {
	if err := c.command("stats"); err != nil {
		return Stats{}, err
	}

	var stats Stats
	ps := c.pairs()
	for ps.Next() {
		p := ps.Pair()
		var err error
		switch p.Key {
		case "artists":
			stats.Artists, err = parseUint32(p.Value)
		case "albums":
			stats.Albums, err = parseUint32(p.Value)
		case "songs":
			stats.Songs, err = parseUint32(p.Value)
		case "uptime":
			stats.Uptime, err = parseSeconds(p.Value)
		case "playtime":
			stats.Playtime, err = parseSeconds(p.Value)
		case "db_playtime":
			stats.DBPlaytime, err = parseSeconds(p.Value)
		case "db_update":
			var epoch int64
			epoch, err = strconv.ParseInt(p.Value, 10, 64)
			if err == nil {
				stats.DBUpdate = time.Unix(epoch, 0)
			}
		}
		if err != nil {
			return Stats{}, badField(p, err)
		}
	}
	if err := ps.Err(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
