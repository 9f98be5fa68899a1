package marker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/cmdtarget/marker"
)

func TestCarries(t *testing.T) {
	routingID := marker.New("RoutingID", "routing", "id", marker.TargetAggregateIdentifier)
	shardedID := marker.New("ShardedID", "shard", "id", routingID)
	custom := marker.New("CustomID", "custom", "id")

	tests := []struct {
		name     string
		marker   *marker.Marker
		target   *marker.Marker
		expected bool
	}{
		{
			name:     "same marker",
			marker:   marker.TargetAggregateIdentifier,
			target:   marker.TargetAggregateIdentifier,
			expected: true,
		},
		{
			name:     "different built-in markers",
			marker:   marker.TargetAggregateIdentifier,
			target:   marker.TargetAggregateVersion,
			expected: false,
		},
		{
			name:     "meta marker",
			marker:   routingID,
			target:   marker.TargetAggregateIdentifier,
			expected: true,
		},
		{
			name:     "meta marker of meta marker",
			marker:   shardedID,
			target:   marker.TargetAggregateIdentifier,
			expected: true,
		},
		{
			name:     "delegation is one way",
			marker:   marker.TargetAggregateIdentifier,
			target:   routingID,
			expected: false,
		},
		{
			name:     "unrelated custom marker",
			marker:   custom,
			target:   marker.TargetAggregateIdentifier,
			expected: false,
		},
		{
			name:     "nil target",
			marker:   custom,
			target:   nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.marker.Carries(tt.target))
		})
	}
}

func TestMarkersCompareByIdentity(t *testing.T) {
	a := marker.New("TargetAggregateIdentifier", "aggregate", "identifier")

	assert.False(t, a.Carries(marker.TargetAggregateIdentifier))
	assert.Equal(t, marker.TargetAggregateIdentifier.String(), a.String())
}

func TestMarkerAccessors(t *testing.T) {
	m := marker.New("RoutingID", "routing", "id", marker.TargetAggregateIdentifier)

	key, value := m.Tag()
	assert.Equal(t, "RoutingID", m.Name())
	assert.Equal(t, "routing", key)
	assert.Equal(t, "id", value)
	assert.Equal(t, []*marker.Marker{marker.TargetAggregateIdentifier}, m.Meta())
	assert.Equal(t, `@RoutingID(routing:"id")`, m.String())
}
