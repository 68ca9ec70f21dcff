package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/htkhiem/mpd"
	"github.com/htkhiem/mpd/internal/env"
)

var (
	// The server host, overriding MPD_HOST
	host string

	// The server port, overriding MPD_PORT
	port string
)

var rootCmd = &cobra.Command{
	Use:   "mpdctl",
	Short: "Control a Music Player Daemon server",
	Long: `Control a Music Player Daemon server

The server address is taken from MPD_HOST and MPD_PORT (or a
.env.local file), overridable with --host and --port.
`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&host, "host", "H", "", "The server host to connect to")
	flags.StringVarP(&port, "port", "p", "", "The server port to connect to")
}

// connect dials the configured server and performs the handshake.
func connect(ctx context.Context) (*mpd.Client, error) {
	conf, err := env.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if host == "" {
		host = conf.Host
	}
	if port == "" {
		port = conf.Port
	}
	timeout := time.Duration(conf.Timeout) * time.Second

	return mpd.DialTimeout("tcp", net.JoinHostPort(host, port), timeout)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
