package moqdemux

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// GroupStats summarizes the objects received for one group id across all
// streams and datagrams.
type GroupStats struct {
	GroupID      uint64
	Streams      int
	Subgroups    int
	Objects      int
	Datagrams    int
	PayloadBytes int
	EndOfGroup   bool
}

type groupStats struct {
	streams      int
	subgroups    map[uint64]struct{}
	objects      int
	datagrams    int
	payloadBytes int
	endOfGroup   bool
}

// group must be called with d.lock held.
func (d *Dispatcher) group(id uint64) *groupStats {
	g, ok := d.groups[id]
	if !ok {
		g = &groupStats{
			subgroups: map[uint64]struct{}{},
		}
		d.groups[id] = g
	}
	return g
}

func (d *Dispatcher) accountSubgroup(h *StreamHeaderSubgroupMessage) {
	d.lock.Lock()
	defer d.lock.Unlock()
	g := d.group(h.GroupID)
	g.streams++
	g.subgroups[h.SubgroupID] = struct{}{}
}

func (d *Dispatcher) accountObject(o *Object) {
	d.lock.Lock()
	defer d.lock.Unlock()
	g := d.group(o.GroupID)
	g.objects++
	g.payloadBytes += len(o.Payload)
	switch o.ForwardingPreference {
	case ObjectForwardingPreferenceDatagram:
		g.datagrams++
	case ObjectForwardingPreferenceFetch:
		g.subgroups[o.SubgroupID] = struct{}{}
	}
	if o.endsGroup() {
		g.endOfGroup = true
	}
}

// Stats returns a snapshot of the group statistics ordered by group id.
func (d *Dispatcher) Stats() []GroupStats {
	d.lock.Lock()
	defer d.lock.Unlock()
	ids := maps.Keys(d.groups)
	slices.Sort(ids)
	res := make([]GroupStats, 0, len(ids))
	for _, id := range ids {
		g := d.groups[id]
		res = append(res, GroupStats{
			GroupID:      id,
			Streams:      g.streams,
			Subgroups:    len(g.subgroups),
			Objects:      g.objects,
			Datagrams:    g.datagrams,
			PayloadBytes: g.payloadBytes,
			EndOfGroup:   g.endOfGroup,
		})
	}
	return res
}
