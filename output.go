package mpd

import "github.com/htkhiem/mpd/proto"

// Output is one audio output of the server.
type Output struct {
	ID      uint32
	Name    string
	Plugin  string
	Enabled bool
}

// Outputs lists the server's audio outputs.
func (c *Client) Outputs() ([]Output, error) {
	if err := c.command("outputs"); err != nil {
		return nil, err
	}

	groups := c.pairs().Split("outputid")
	var outputs []Output
	for groups.Next() {
		g := groups.Group()
		id, err := parseUint32(g.Key)
		if err != nil {
			return nil, badField(proto.Pair{Key: "outputid", Value: g.Key}, err)
		}
		out := Output{ID: id}
		for _, p := range g.Fields {
			switch p.Key {
			case "outputname":
				out.Name = p.Value
			case "plugin":
				out.Plugin = p.Value
			case "outputenabled":
				out.Enabled = p.Value == "1"
			}
		}
		outputs = append(outputs, out)
	}
	if err := groups.Err(); err != nil {
		return nil, err
	}
	return outputs, nil
}

// EnableOutput enables the output with the given id.
func (c *Client) EnableOutput(id uint32) error {
	return c.okCmd("enableoutput", id)
}

// DisableOutput disables the output with the given id.
func (c *Client) DisableOutput(id uint32) error {
	return c.okCmd("disableoutput", id)
}

// ToggleOutput flips the enabled state of the output with the given id.
func (c *Client) ToggleOutput(id uint32) error {
	return c.okCmd("toggleoutput", id)
}
