package marker_test

import (
	"reflect"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/cmdtarget/marker"
)

type taggedCommand struct {
	ID       string `aggregate:"identifier"`
	Version  int64  `aggregate:"version"`
	Both     string `aggregate:"identifier,version"`
	Routed   string `routing:"id"`
	Untagged string
}

func field(t *testing.T, name string) reflect.StructField {
	t.Helper()

	f, ok := reflect.TypeFor[taggedCommand]().FieldByName(name)
	require.True(t, ok, "field %s not found", name)
	return f
}

func TestFieldCarries_StructTags(t *testing.T) {
	r := marker.NewRegistry()
	owner := reflect.TypeFor[taggedCommand]()

	assert.True(t, r.FieldCarries(owner, field(t, "ID"), marker.TargetAggregateIdentifier))
	assert.False(t, r.FieldCarries(owner, field(t, "ID"), marker.TargetAggregateVersion))
	assert.True(t, r.FieldCarries(owner, field(t, "Version"), marker.TargetAggregateVersion))
	assert.True(t, r.FieldCarries(owner, field(t, "Both"), marker.TargetAggregateIdentifier))
	assert.True(t, r.FieldCarries(owner, field(t, "Both"), marker.TargetAggregateVersion))
	assert.False(t, r.FieldCarries(owner, field(t, "Untagged"), marker.TargetAggregateIdentifier))
	assert.False(t, r.FieldCarries(owner, field(t, "ID"), nil))
}

func TestFieldCarries_MetaMarkerNeedsDeclaration(t *testing.T) {
	r := marker.NewRegistry()
	owner := reflect.TypeFor[taggedCommand]()
	routingID := marker.New("RoutingID", "routing", "id", marker.TargetAggregateIdentifier)

	// the configured marker itself is always recognized
	assert.True(t, r.FieldCarries(owner, field(t, "Routed"), routingID))
	assert.False(t, r.FieldCarries(owner, field(t, "Routed"), marker.TargetAggregateIdentifier))

	require.NoError(t, r.Declare(routingID))

	assert.True(t, r.FieldCarries(owner, field(t, "Routed"), marker.TargetAggregateIdentifier))
	assert.False(t, r.FieldCarries(owner, field(t, "Routed"), marker.TargetAggregateVersion))
}

func TestFieldCarries_MarkField(t *testing.T) {
	r := marker.NewRegistry()
	owner := reflect.TypeFor[taggedCommand]()

	r.MarkField(reflect.TypeFor[*taggedCommand](), "Untagged", marker.TargetAggregateVersion)

	assert.True(t, r.FieldCarries(owner, field(t, "Untagged"), marker.TargetAggregateVersion))
	assert.False(t, r.FieldCarries(owner, field(t, "Untagged"), marker.TargetAggregateIdentifier))
}

type accessorCommand struct{}

func (accessorCommand) AggregateID() string { return "id" }

func TestMethodMarks(t *testing.T) {
	r := marker.NewRegistry()
	routingID := marker.New("RoutingID", "routing", "id", marker.TargetAggregateIdentifier)

	r.MarkMethod(reflect.TypeFor[accessorCommand](), "AggregateID", routingID)
	r.MarkMethod(reflect.TypeFor[accessorCommand](), "hidden", marker.TargetAggregateIdentifier)
	r.MarkMethod(reflect.TypeFor[accessorCommand](), "Expected", marker.TargetAggregateVersion)

	typ := reflect.TypeFor[*accessorCommand]()
	assert.True(t, r.MethodCarries(typ, "AggregateID", marker.TargetAggregateIdentifier))
	assert.True(t, r.MethodCarries(typ, "AggregateID", routingID))
	assert.False(t, r.MethodCarries(typ, "AggregateID", marker.TargetAggregateVersion))
	assert.False(t, r.MethodCarries(typ, "Unknown", marker.TargetAggregateIdentifier))

	assert.Equal(t, []string{"AggregateID", "hidden"}, r.MarkedMethods(typ, marker.TargetAggregateIdentifier))
	assert.Equal(t, []string{"Expected"}, r.MarkedMethods(typ, marker.TargetAggregateVersion))
}

func TestDeclare(t *testing.T) {
	t.Run("same marker twice", func(t *testing.T) {
		r := marker.NewRegistry()
		m := marker.New("RoutingID", "routing", "id")

		require.NoError(t, r.Declare(m))
		require.NoError(t, r.Declare(m))
		require.NoError(t, r.Declare(marker.TargetAggregateIdentifier))
	})

	t.Run("tag already taken", func(t *testing.T) {
		r := marker.NewRegistry()

		err := r.Declare(marker.New("Impostor", "aggregate", "identifier"))
		require.Error(t, err)
		assert.True(t, errx.IsCodeIn(err, marker.CodeDuplicateTag))
	})

	t.Run("nil marker", func(t *testing.T) {
		err := marker.NewRegistry().Declare(nil)
		require.Error(t, err)
		assert.True(t, errx.IsCodeIn(err, marker.CodeInvalidMarker))
	})

	t.Run("marker without tag", func(t *testing.T) {
		err := marker.NewRegistry().Declare(marker.New("MethodOnly", "", ""))
		require.Error(t, err)
		assert.True(t, errx.IsCodeIn(err, marker.CodeInvalidMarker))
	})
}
