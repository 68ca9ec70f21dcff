package proto

import "strings"

// Group is one record cut out of a flat pair stream. Key is the value
// of the sentinel pair that opened the group, Sentinel is that pair's
// field name (meaningful when several sentinels are in play, e.g. a
// listing that interleaves "file" and "directory" records), and Fields
// holds the subsequent non-sentinel pairs in exact arrival order. The
// sentinel pair itself is never among the Fields. Field order is
// preserved because it can be semantically meaningful (repeated tags
// are disambiguated by position).
type Group struct {
	Sentinel string
	Key      string
	Fields   []Pair
}

// Groups partitions a pair stream into records, one sentinel-delimited
// group at a time. Same scanner idiom as Pairs: Next/Group/Err. Any
// error from the underlying stream (transport, parse, or server ACK)
// terminates iteration immediately and is reported by Err; no partial
// group is emitted after the error point.
type Groups struct {
	ps        *Pairs
	sentinels map[string]struct{}

	// Sentinel pair carried over from the previous call: it closed the
	// last group and opens the next one.
	pendKey string
	pendVal string
	pending bool

	first bool
	done  bool
	err   error
	cur   Group
}

// Split partitions the remaining pairs into groups opened by the given
// sentinel key. Comparison is exact; pre-lowercase the key where the
// domain field is case-insensitive.
func (ps *Pairs) Split(sentinel string) *Groups {
	return ps.SplitAny(sentinel)
}

// SplitAny is the multi-sentinel variant of Split: a pair whose key
// matches any of the given sentinels starts a new group. Used for
// listings that interleave heterogeneous record kinds.
func (ps *Pairs) SplitAny(sentinels ...string) *Groups {
	set := make(map[string]struct{}, len(sentinels))
	for _, s := range sentinels {
		set[s] = struct{}{}
	}
	return &Groups{ps: ps, sentinels: set, first: true}
}

// Next advances to the next group. It returns false once the
// underlying stream is exhausted and no group is pending, or
// immediately on a stream error.
func (g *Groups) Next() bool {
	if g.err != nil || g.done {
		return false
	}

	for {
		var cur Group
		opened := false
		if g.pending {
			cur.Sentinel = g.pendKey
			cur.Key = g.pendVal
			opened = true
			g.pending = false
		}

		closed := false
		for g.ps.Next() {
			p := g.ps.Pair()
			if _, isSentinel := g.sentinels[p.Key]; isSentinel {
				g.pendKey = p.Key
				g.pendVal = p.Value
				g.pending = true
				closed = true
				break
			}
			cur.Fields = append(cur.Fields, p)
		}

		if !closed {
			if err := g.ps.Err(); err != nil {
				g.err = err
				return false
			}
			g.done = true
			if opened || len(cur.Fields) > 0 {
				g.cur = cur
				return true
			}
			return false
		}

		// The very first sentinel only opens group one: restart so no
		// empty leading group is emitted, discarding any stray pairs
		// seen before it.
		if g.first {
			g.first = false
			continue
		}

		g.cur = cur
		return true
	}
}

// Group returns the group read by the last successful call to Next.
func (g *Groups) Group() Group {
	return g.cur
}

// Err returns the error that aborted grouping, or nil.
func (g *Groups) Err() error {
	return g.err
}

// ValueGroup is one group of a grouped value listing ("list ... group
// <tag>"): the grouping tag's value plus the values listed under it.
type ValueGroup struct {
	Key    string
	Values []string
}

// CollectGrouped buffers a grouped value listing. sep must be
// lowercase; incoming keys are lowercased before comparison because
// the server capitalizes tag names freely in this response. Values
// seen before the first sentinel are dropped.
func CollectGrouped(ps *Pairs, sep string) ([]ValueGroup, error) {
	var groups []ValueGroup
	var cur *ValueGroup

	for ps.Next() {
		p := ps.Pair()
		if strings.ToLower(p.Key) == sep {
			if cur != nil {
				groups = append(groups, *cur)
			}
			cur = &ValueGroup{Key: p.Value}
			continue
		}
		if cur != nil {
			cur.Values = append(cur.Values, p.Value)
		}
	}
	if err := ps.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		groups = append(groups, *cur)
	}
	return groups, nil
}
