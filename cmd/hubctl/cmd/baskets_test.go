package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuvias-uc/hubctl/internal/hub"
)

func TestParseLineItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    []hub.LineItem
		wantErr string
	}{
		{
			name: "code and quantity",
			args: []string{"2200-48820-025:3"},
			want: []hub.LineItem{
				{ProductCode: "2200-48820-025", Quantity: 3},
			},
		},
		{
			name: "with provisioning code",
			args: []string{"2200-48820-025:3:UD-SIP-SER-PRV-PH"},
			want: []hub.LineItem{
				{
					ProductCode:     "2200-48820-025",
					Quantity:        3,
					ProvProductCode: "UD-SIP-SER-PRV-PH",
				},
			},
		},
		{
			name: "multiple items",
			args: []string{"A:1", "B:2:PROV"},
			want: []hub.LineItem{
				{ProductCode: "A", Quantity: 1},
				{ProductCode: "B", Quantity: 2, ProvProductCode: "PROV"},
			},
		},
		{
			name:    "missing quantity",
			args:    []string{"2200-48820-025"},
			wantErr: "want CODE:QTY",
		},
		{
			name:    "non-numeric quantity",
			args:    []string{"A:three"},
			wantErr: "invalid quantity",
		},
		{
			name:    "zero quantity",
			args:    []string{"A:0"},
			wantErr: "invalid quantity",
		},
		{
			name:    "too many fields",
			args:    []string{"A:1:PROV:EXTRA"},
			wantErr: "want CODE:QTY",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseLineItems(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
