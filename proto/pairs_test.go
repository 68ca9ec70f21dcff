package proto

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pairsFrom(response string) *Pairs {
	return NewPairs(bufio.NewReader(strings.NewReader(response)))
}

func collect(t *testing.T, ps *Pairs) []Pair {
	t.Helper()
	var pairs []Pair
	for ps.Next() {
		pairs = append(pairs, ps.Pair())
	}
	return pairs
}

func TestPairsOKTermination(t *testing.T) {
	ps := pairsFrom("volume: 100\nstate: play\nOK\n")

	pairs := collect(t, ps)
	require.NoError(t, ps.Err())
	require.Equal(t, []Pair{
		{Key: "volume", Value: "100"},
		{Key: "state", Value: "play"},
	}, pairs)

	// Stays exhausted.
	require.False(t, ps.Next())
	require.NoError(t, ps.Err())
}

func TestPairsListOKTermination(t *testing.T) {
	ps := pairsFrom("file: a.mp3\nlist_OK\n")

	pairs := collect(t, ps)
	require.NoError(t, ps.Err())
	require.Equal(t, []Pair{{Key: "file", Value: "a.mp3"}}, pairs)
}

func TestPairsAckTermination(t *testing.T) {
	ps := pairsFrom("volume: 100\nACK [5@0] {status} unknown command\n")

	pairs := collect(t, ps)
	require.Equal(t, []Pair{{Key: "volume", Value: "100"}}, pairs)

	var serverErr *ServerError
	require.ErrorAs(t, ps.Err(), &serverErr)
	require.Equal(t, ErrorUnknownCmd, serverErr.Code)
	require.Equal(t, "status", serverErr.Command)
}

func TestPairsSourceExhaustion(t *testing.T) {
	// EOF with no terminal marker is clean exhaustion, not an error.
	ps := pairsFrom("volume: 100\n")

	pairs := collect(t, ps)
	require.NoError(t, ps.Err())
	require.Len(t, pairs, 1)
}

func TestPairsPartialFinalLine(t *testing.T) {
	// A line cut off by EOF is still decoded.
	ps := pairsFrom("state: stop")

	pairs := collect(t, ps)
	require.NoError(t, ps.Err())
	require.Equal(t, []Pair{{Key: "state", Value: "stop"}}, pairs)
}

func TestPairsParseError(t *testing.T) {
	ps := pairsFrom("volume: 100\ngarbage line\nstate: play\nOK\n")

	pairs := collect(t, ps)
	require.Equal(t, []Pair{{Key: "volume", Value: "100"}}, pairs)

	var parseErr *ParseError
	require.ErrorAs(t, ps.Err(), &parseErr)

	// No recovery after a decode failure.
	require.False(t, ps.Next())
}

type failingReader struct {
	data string
	err  error
}

func (r *failingReader) Read(b []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(b, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestPairsTransportError(t *testing.T) {
	wantErr := errors.New("connection reset")
	ps := NewPairs(bufio.NewReader(&failingReader{data: "volume: 100\n", err: wantErr}))

	require.True(t, ps.Next())
	require.False(t, ps.Next())
	require.ErrorIs(t, ps.Err(), wantErr)
}

func TestPairsEmptyResponse(t *testing.T) {
	ps := pairsFrom("OK\n")
	require.False(t, ps.Next())
	require.NoError(t, ps.Err())

	ps = NewPairs(bufio.NewReader(strings.NewReader("")))
	require.False(t, ps.Next())
	require.NoError(t, ps.Err())
	require.NotErrorIs(t, ps.Err(), io.EOF)
}
