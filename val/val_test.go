package val_test

import (
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/cmdtarget/val"
)

type shipOrder struct {
	OrderID  string `json:"order_id" validate:"required,uuid"`
	Revision int64  `json:"revision" validate:"gte=0"`
	Carrier  string `json:"carrier"  validate:"omitempty,oneof=dhl ups"`
}

func TestValidateSchema(t *testing.T) {
	tests := []struct {
		name       string
		schema     any
		wantFields map[string]string
	}{
		{
			name:   "valid",
			schema: shipOrder{OrderID: "0b6e8b8c-2f4e-4c53-9d0e-6f1f3c2a9b10", Carrier: "dhl"},
		},
		{
			name:   "valid pointer",
			schema: &shipOrder{OrderID: "0b6e8b8c-2f4e-4c53-9d0e-6f1f3c2a9b10"},
		},
		{
			name:   "non struct payload",
			schema: "order-1",
		},
		{
			name:   "missing identifier",
			schema: shipOrder{Revision: 1},
			wantFields: map[string]string{
				"order_id": "This field is required",
			},
		},
		{
			name:   "several failures",
			schema: shipOrder{OrderID: "order-1", Revision: -1, Carrier: "fedex"},
			wantFields: map[string]string{
				"order_id": "Must be a valid UUID",
				"revision": "Must be greater than or equal to 0",
				"carrier":  "Must be one of: dhl, ups",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := val.ValidateSchema(tt.schema)
			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errx.IsCodeIn(err, val.CodeValidationFailed))

			e := errx.AsErrorX(err)
			assert.Equal(t, errx.T_Validation, e.Type())
			for field, desc := range tt.wantFields {
				assert.Equal(t, desc, e.Fields()[field])
			}
			assert.Len(t, e.Fields(), len(tt.wantFields))
		})
	}
}
