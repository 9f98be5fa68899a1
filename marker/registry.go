package marker

import (
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/code19m/errx"
	"github.com/samber/lo"
)

// Registry answers whether a payload member carries a marker.
//
// Fields carry markers through struct tags or through MarkField entries; methods carry markers only through
// MarkMethod entries, since Go has no syntax for tagging a method. Markers declared in the registry take part
// in meta-marker resolution for struct tags: a field tagged with a declared marker carries every marker that
// the declared one carries.
//
// A Registry is populated at startup and is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	declared []*Marker
	fields   map[reflect.Type]map[string][]*Marker
	methods  map[reflect.Type]map[string][]*Marker
}

//nolint:gochecknoglobals // process-wide registry mirrors how annotations are global to a program
var defaultRegistry = NewRegistry()

// NewRegistry returns a registry with the built-in markers declared.
func NewRegistry() *Registry {
	return &Registry{
		declared: []*Marker{TargetAggregateIdentifier, TargetAggregateVersion},
		fields:   make(map[reflect.Type]map[string][]*Marker),
		methods:  make(map[reflect.Type]map[string][]*Marker),
	}
}

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Declare makes markers known to the registry so struct tags can refer to them.
// Declaring the same marker twice is a no-op; declaring two markers with the same tag is an error.
func (r *Registry) Declare(markers ...*Marker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range markers {
		if m == nil {
			return errx.New("[marker]: cannot declare nil marker", errx.WithCode(CodeInvalidMarker))
		}
		if slices.Contains(r.declared, m) {
			continue
		}

		key, value := m.Tag()
		if key == "" || value == "" {
			return errx.New(
				"[marker]: marker must have a tag key and value",
				errx.WithCode(CodeInvalidMarker),
				errx.WithDetails(errx.D{"marker": m.String()}),
			)
		}

		conflict, found := lo.Find(r.declared, func(d *Marker) bool {
			dk, dv := d.Tag()
			return dk == key && dv == value
		})
		if found {
			return errx.New(
				"[marker]: tag is already used by another marker",
				errx.WithCode(CodeDuplicateTag),
				errx.WithDetails(errx.D{
					"marker":   m.String(),
					"conflict": conflict.String(),
				}),
			)
		}

		r.declared = append(r.declared, m)
	}
	return nil
}

// MarkMethod attaches markers to the named method of typ. Pointer types are normalized to their element type,
// so a marker covers both value and pointer receivers.
func (r *Registry) MarkMethod(typ reflect.Type, method string, markers ...*Marker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mark(r.methods, typ, method, markers)
}

// MarkField attaches markers to the named field of typ, for struct types whose tags cannot be edited.
func (r *Registry) MarkField(typ reflect.Type, field string, markers ...*Marker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mark(r.fields, typ, field, markers)
}

// MethodCarries reports whether the named method of typ carries target, directly or through meta markers.
func (r *Registry) MethodCarries(typ reflect.Type, method string, target *Marker) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return carriesAny(r.methods[elem(typ)][method], target)
}

// MarkedMethods returns the names of the methods of typ registered with a marker that carries target.
func (r *Registry) MarkedMethods(typ reflect.Type, target *Marker) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name, markers := range r.methods[elem(typ)] {
		if carriesAny(markers, target) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// FieldCarries reports whether field, declared on owner, carries target through its struct tag or a MarkField entry.
func (r *Registry) FieldCarries(owner reflect.Type, field reflect.StructField, target *Marker) bool {
	if target == nil {
		return false
	}

	// a configured marker is honoured even when it was never declared
	if tagged(field.Tag, target) {
		return true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if carriesAny(r.fields[elem(owner)][field.Name], target) {
		return true
	}
	return lo.ContainsBy(r.declared, func(m *Marker) bool {
		return m.Carries(target) && tagged(field.Tag, m)
	})
}

// Declare makes markers known to the default registry.
func Declare(markers ...*Marker) error {
	return defaultRegistry.Declare(markers...)
}

// MarkMethod attaches markers to the named method of T in the default registry.
func MarkMethod[T any](method string, markers ...*Marker) {
	defaultRegistry.MarkMethod(reflect.TypeFor[T](), method, markers...)
}

// MarkField attaches markers to the named field of T in the default registry.
func MarkField[T any](field string, markers ...*Marker) {
	defaultRegistry.MarkField(reflect.TypeFor[T](), field, markers...)
}

func mark(members map[reflect.Type]map[string][]*Marker, typ reflect.Type, name string, markers []*Marker) {
	typ = elem(typ)
	if members[typ] == nil {
		members[typ] = make(map[string][]*Marker)
	}
	members[typ][name] = append(members[typ][name], lo.Compact(markers)...)
}

func carriesAny(markers []*Marker, target *Marker) bool {
	return lo.ContainsBy(markers, func(m *Marker) bool {
		return m.Carries(target)
	})
}

// tagged reports whether tag attaches m. A tag value may list several markers separated by commas,
// e.g. `aggregate:"identifier,version"`.
func tagged(tag reflect.StructTag, m *Marker) bool {
	key, value := m.Tag()
	if key == "" {
		return false
	}
	raw, ok := tag.Lookup(key)
	if !ok {
		return false
	}
	return slices.Contains(strings.Split(raw, ","), value)
}

func elem(typ reflect.Type) reflect.Type {
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}
