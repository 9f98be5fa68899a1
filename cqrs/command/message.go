package command

import "reflect"

// Message wraps a command payload together with its declared type.
type Message[I Input] struct {
	payload I
}

// NewMessage wraps payload in a Message.
func NewMessage[I Input](payload I) Message[I] {
	return Message[I]{payload: payload}
}

// Input returns the typed payload.
func (m Message[I]) Input() I {
	return m.payload
}

// Payload returns the payload as an untyped value.
func (m Message[I]) Payload() any {
	return m.payload
}

// PayloadType returns I, or the dynamic payload type when I is an interface type.
func (m Message[I]) PayloadType() reflect.Type {
	typ := reflect.TypeFor[I]()
	if typ.Kind() == reflect.Interface {
		return reflect.TypeOf(m.payload)
	}
	return typ
}
