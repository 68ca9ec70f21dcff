package mpd

import (
	"strconv"
	"strings"

	"github.com/htkhiem/mpd/proto"
)

// Version is the protocol version triple announced by the server
// banner, e.g. "0.23.5". Some servers omit the patch component.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a dotted version string with two or three
// components.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 && len(parts) != 3 {
		return Version{}, &proto.ParseError{Message: "malformed version", Input: s}
	}

	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, &proto.ParseError{Message: "malformed version", Input: s, Err: err}
		}
		nums[i] = n
	}

	v := Version{Major: nums[0], Minor: nums[1]}
	if len(nums) == 3 {
		v.Patch = nums[2]
	}
	return v, nil
}

func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
}

// AtLeast reports whether v is the given version or newer. Useful for
// gating commands that only newer servers understand.
func (v Version) AtLeast(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor > o.Minor
	}
	return v.Patch >= o.Patch
}
