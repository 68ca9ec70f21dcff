package mpd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputs(t *testing.T) {
	response := "outputid: 0\n" +
		"outputname: Speakers\n" +
		"plugin: alsa\n" +
		"outputenabled: 1\n" +
		"outputid: 1\n" +
		"outputname: Stream\n" +
		"plugin: httpd\n" +
		"outputenabled: 0\n" +
		"OK\n"

	c, conn := newTestClient(t, response)
	outputs, err := c.Outputs()
	require.NoError(t, err)
	require.Equal(t, "outputs\n", conn.GetWrittenRequest())
	require.Equal(t, []Output{
		{ID: 0, Name: "Speakers", Plugin: "alsa", Enabled: true},
		{ID: 1, Name: "Stream", Plugin: "httpd", Enabled: false},
	}, outputs)
}

func TestOutputSwitching(t *testing.T) {
	tests := []struct {
		name     string
		run      func(c *Client) error
		expected string
	}{
		{name: "enable", run: func(c *Client) error { return c.EnableOutput(1) }, expected: "enableoutput 1\n"},
		{name: "disable", run: func(c *Client) error { return c.DisableOutput(1) }, expected: "disableoutput 1\n"},
		{name: "toggle", run: func(c *Client) error { return c.ToggleOutput(1) }, expected: "toggleoutput 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, conn := newTestClient(t, "OK\n")
			require.NoError(t, tt.run(c))
			require.Equal(t, tt.expected, conn.GetWrittenRequest())
		})
	}
}
