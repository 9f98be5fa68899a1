// Package marker provides declarative markers that attach structural roles to command payload members.
//
// A marker is attached to a struct field through a struct tag (e.g. `aggregate:"identifier"`) and to an
// accessor method through a Registry entry created at startup. Markers may themselves carry other markers
// (meta-markers), so an application can declare its own marker that behaves like a built-in one without
// tagging every payload with the built-in tag.
package marker

import (
	"fmt"
	"slices"
)

// Marker is a marker identity. Markers are compared by identity, never by their tag or name.
type Marker struct {
	name     string
	tagKey   string
	tagValue string
	meta     []*Marker
}

//nolint:gochecknoglobals // built-in marker identities are process-wide by nature
var (
	// TargetAggregateIdentifier marks the member holding the identifier of the targeted aggregate.
	// Fields carry it with the `aggregate:"identifier"` tag.
	TargetAggregateIdentifier = New("TargetAggregateIdentifier", "aggregate", "identifier")

	// TargetAggregateVersion marks the member holding the expected version of the targeted aggregate.
	// Fields carry it with the `aggregate:"version"` tag.
	TargetAggregateVersion = New("TargetAggregateVersion", "aggregate", "version")
)

// New declares a marker.
//
// Fields carry the marker when their struct tag under tagKey contains tagValue. The optional meta markers are
// attached to the new marker's own declaration: every member carrying the new marker also carries them.
func New(name, tagKey, tagValue string, meta ...*Marker) *Marker {
	return &Marker{
		name:     name,
		tagKey:   tagKey,
		tagValue: tagValue,
		meta:     slices.Clone(meta),
	}
}

// Name returns the marker's name.
func (m *Marker) Name() string {
	return m.name
}

// Tag returns the struct tag key and value that attach the marker to a field.
func (m *Marker) Tag() (string, string) {
	return m.tagKey, m.tagValue
}

// Meta returns the markers attached directly to this marker's declaration.
func (m *Marker) Meta() []*Marker {
	return slices.Clone(m.meta)
}

// Carries reports whether m is target or delegates to target through its meta markers.
// Meta markers are fixed when a marker is declared, so delegation chains are always finite.
func (m *Marker) Carries(target *Marker) bool {
	if m == nil || target == nil {
		return false
	}
	if m == target {
		return true
	}
	for _, parent := range m.meta {
		if parent.Carries(target) {
			return true
		}
	}
	return false
}

func (m *Marker) String() string {
	if m == nil {
		return "<nil>"
	}
	return fmt.Sprintf("@%s(%s:%q)", m.name, m.tagKey, m.tagValue)
}
