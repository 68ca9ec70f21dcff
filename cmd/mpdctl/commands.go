package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/htkhiem/mpd"
)

func init() {
	rootCmd.AddCommand(
		statusCmd,
		playCmd,
		pauseCmd,
		stopCmd,
		nextCmd,
		prevCmd,
		volumeCmd,
		queueCmd,
		addCmd,
		clearCmd,
		lsCmd,
		listCmd,
		searchCmd,
		outputsCmd,
		playlistsCmd,
		statsCmd,
		updateCmd,
	)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the player status and the current song",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		status, err := c.Status()
		if err != nil {
			return err
		}
		song, err := c.CurrentSong()
		if err != nil {
			return err
		}

		if song != nil {
			fmt.Printf("%s - %s\n", song.Artist, song.Title)
		}
		fmt.Printf("[%s] %s/%s\n", status.State,
			status.Elapsed.Round(time.Second), status.Duration.Round(time.Second))
		fmt.Printf("volume: %d  repeat: %v  random: %v  single: %v  consume: %v\n",
			status.Volume, status.Repeat, status.Random, status.Single, status.Consume)
		if status.Error != "" {
			fmt.Printf("error: %s\n", status.Error)
		}
		return nil
	},
}

var playCmd = &cobra.Command{
	Use:   "play [pos]",
	Short: "Start or resume playback, optionally at a queue position",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		if len(args) == 0 {
			return c.Play()
		}
		pos, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid queue position %q: %w", args[0], err)
		}
		return c.PlayPos(uint32(pos))
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause playback",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		return c.Pause(true)
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop playback",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		return c.Stop()
	},
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Play the next song in the queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		return c.Next()
	},
}

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Play the previous song in the queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		return c.Previous()
	},
}

var volumeCmd = &cobra.Command{
	Use:   "volume <0-100>",
	Short: "Set the volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vol, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid volume %q: %w", args[0], err)
		}
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		return c.SetVolume(vol)
	},
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "List the songs in the queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		songs, err := c.Queue()
		if err != nil {
			return err
		}
		for _, song := range songs {
			printSong(song)
		}
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <uri>",
	Short: "Append a song or directory to the queue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		return c.Add(args[0])
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		return c.Clear()
	},
}

var lsCmd = &cobra.Command{
	Use:   "ls [uri]",
	Short: "List a database directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uri := ""
		if len(args) == 1 {
			uri = args[0]
		}

		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		entries, err := c.LsInfo(uri)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			switch e := entry.(type) {
			case mpd.Directory:
				fmt.Printf("%s/\n", e.Name)
			case mpd.Playlist:
				fmt.Printf("%s [playlist]\n", e.Name)
			case mpd.Song:
				fmt.Println(e.File)
			}
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list <tag> [group-tag]",
	Short: "List distinct tag values, optionally grouped by another tag",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		if len(args) == 1 {
			values, err := c.List(args[0])
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Println(v)
			}
			return nil
		}

		groups, err := c.ListGroup(args[0], args[1])
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Printf("%s:\n", g.Key)
			for _, v := range g.Values {
				fmt.Printf("  %s\n", v)
			}
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <tag> <value> [tag value ...]",
	Short: "Search the database, case-insensitively",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args)%2 != 0 {
			return fmt.Errorf("search terms come in tag/value pairs")
		}
		terms := make([]mpd.Term, 0, len(args)/2)
		for i := 0; i < len(args); i += 2 {
			terms = append(terms, mpd.Term{Tag: args[i], Value: args[i+1]})
		}

		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		songs, err := c.Search(terms...)
		if err != nil {
			return err
		}
		for _, song := range songs {
			printSong(song)
		}
		return nil
	},
}

var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "List the server's audio outputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		outputs, err := c.Outputs()
		if err != nil {
			return err
		}
		for _, out := range outputs {
			state := "off"
			if out.Enabled {
				state = "on"
			}
			fmt.Printf("%d: %s (%s) [%s]\n", out.ID, out.Name, out.Plugin, state)
		}
		return nil
	},
}

var playlistsCmd = &cobra.Command{
	Use:   "playlists",
	Short: "List the stored playlists",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		playlists, err := c.Playlists()
		if err != nil {
			return err
		}
		for _, pl := range playlists {
			fmt.Printf("%s\t%s\n", pl.Name, pl.LastModified)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show server statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		stats, err := c.Stats()
		if err != nil {
			return err
		}
		fmt.Printf("artists: %d\n", stats.Artists)
		fmt.Printf("albums: %d\n", stats.Albums)
		fmt.Printf("songs: %d\n", stats.Songs)
		fmt.Printf("uptime: %s\n", stats.Uptime)
		fmt.Printf("playtime: %s\n", stats.Playtime)
		fmt.Printf("db playtime: %s\n", stats.DBPlaytime)
		fmt.Printf("db updated: %s\n", stats.DBUpdate.Format(time.RFC3339))
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update [uri]",
	Short: "Trigger a database update",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uri := ""
		if len(args) == 1 {
			uri = args[0]
		}

		c, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()

		job, err := c.Update(uri)
		if err != nil {
			return err
		}
		fmt.Printf("update job %d started\n", job)
		return nil
	},
}

func printSong(song mpd.Song) {
	if song.Title == "" {
		fmt.Println(song.File)
		return
	}
	if song.Artist != "" {
		fmt.Printf("%s - %s\n", song.Artist, song.Title)
		return
	}
	fmt.Println(song.Title)
}
