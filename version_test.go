package mpd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{name: "three components", input: "0.23.5", want: Version{0, 23, 5}},
		{name: "two components", input: "0.24", want: Version{0, 24, 0}},
		{name: "one component", input: "1", wantErr: true},
		{name: "four components", input: "0.23.5.1", wantErr: true},
		{name: "non-numeric", input: "0.x.5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestVersionAtLeast(t *testing.T) {
	v := Version{0, 23, 5}
	require.True(t, v.AtLeast(Version{0, 23, 5}))
	require.True(t, v.AtLeast(Version{0, 23, 0}))
	require.True(t, v.AtLeast(Version{0, 22, 11}))
	require.False(t, v.AtLeast(Version{0, 24, 0}))
	require.False(t, v.AtLeast(Version{1, 0, 0}))
}

func TestVersionString(t *testing.T) {
	require.Equal(t, "0.24.0", Version{0, 24, 0}.String())
}
