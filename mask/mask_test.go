package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/rise-and-shine/cmdtarget/mask"
)

type audit struct {
	Actor string `json:"actor"`
}

type address struct {
	City string
	Zip  string `mask:"true"`
}

type placeOrder struct {
	audit

	OrderID  string   `json:"order_id"`
	Card     string   `json:"card"      mask:"true"`
	Pin      int      `yaml:"pin"       mask:"true"`
	Tags     []string `json:"tags"      mask:"true"`
	Empty    string   `json:"empty"     mask:"true"`
	Internal string   `json:"-"`
	Ship     *address `json:"ship"`
	Bill     *address `json:"bill"`
	version  int64
}

func pairs(om *orderedmap.OrderedMap[string, any]) ([]string, map[string]any) {
	keys := make([]string, 0, om.Len())
	values := make(map[string]any, om.Len())
	for p := om.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
		values[p.Key] = p.Value
	}
	return keys, values
}

func TestFields(t *testing.T) {
	input := placeOrder{
		audit:    audit{Actor: "alice"},
		OrderID:  "order-1",
		Card:     "4111111111111111",
		Pin:      1234,
		Tags:     []string{"gift"},
		Internal: "hidden",
		Ship:     &address{City: "Tashkent", Zip: "100000"},
		version:  3,
	}

	keys, values := pairs(mask.Fields(&input))

	assert.Equal(t, []string{
		"actor", "order_id", "card", "pin", "tags", "empty", "ship.City", "ship.Zip", "bill",
	}, keys)
	assert.Equal(t, "alice", values["actor"])
	assert.Equal(t, "order-1", values["order_id"])
	assert.Equal(t, "***masked-string***", values["card"])
	assert.Equal(t, "***masked-int***", values["pin"])
	assert.Equal(t, "***masked-slice***", values["tags"])
	assert.Equal(t, "", values["empty"])
	assert.Equal(t, "Tashkent", values["ship.City"])
	assert.Equal(t, "***masked-string***", values["ship.Zip"])
	assert.Nil(t, values["bill"])
}

func TestFields_NonStruct(t *testing.T) {
	assert.Nil(t, mask.Fields(nil))

	om := mask.Fields("order-1")
	require.NotNil(t, om)
	value, ok := om.Get("value")
	assert.True(t, ok)
	assert.Equal(t, "order-1", value)
}
