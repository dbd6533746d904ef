package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortRange_Bounds(t *testing.T) {
	lo, hi := PortRange{Start: 8000, End: 9000}.Bounds()
	assert.Equal(t, uint16(8000), lo)
	assert.Equal(t, uint16(9000), hi)

	// Reversed input normalizes to the same bounds.
	lo, hi = PortRange{Start: 9000, End: 8000}.Bounds()
	assert.Equal(t, uint16(8000), lo)
	assert.Equal(t, uint16(9000), hi)
}

func TestPortRange_ContainsSymmetry(t *testing.T) {
	forward := PortRange{Start: 8000, End: 9000}
	reversed := PortRange{Start: 9000, End: 8000}

	for _, port := range []uint16{0, 7999, 8000, 8500, 9000, 9001, 65535} {
		assert.Equal(t, forward.Contains(port), reversed.Contains(port), "port %d", port)
	}
}

func TestPortRange_ContainsSinglePort(t *testing.T) {
	r := PortRange{Start: 443, End: 443}
	assert.True(t, r.Contains(443))
	assert.False(t, r.Contains(442))
	assert.False(t, r.Contains(444))
}

func TestInAnyRange(t *testing.T) {
	ranges := []PortRange{
		{Start: 3000, End: 4000},
		{Start: 8080, End: 8080},
	}

	assert.True(t, InAnyRange(3000, ranges))
	assert.True(t, InAnyRange(4000, ranges))
	assert.True(t, InAnyRange(8080, ranges))
	assert.False(t, InAnyRange(2999, ranges))
	assert.False(t, InAnyRange(8081, ranges))
	assert.False(t, InAnyRange(8080, nil))
}

func TestParseRanges(t *testing.T) {
	tests := []struct {
		name    string
		specs   []string
		want    []PortRange
		wantErr bool
	}{
		{
			name:  "single port",
			specs: []string{"8080"},
			want:  []PortRange{{Start: 8080, End: 8080}},
		},
		{
			name:  "range",
			specs: []string{"3000-4000"},
			want:  []PortRange{{Start: 3000, End: 4000}},
		},
		{
			name:  "comma separated",
			specs: []string{"80,443,8000-9000"},
			want: []PortRange{
				{Start: 80, End: 80},
				{Start: 443, End: 443},
				{Start: 8000, End: 9000},
			},
		},
		{
			name:  "repeated flags",
			specs: []string{"3000-4000", "8080"},
			want: []PortRange{
				{Start: 3000, End: 4000},
				{Start: 8080, End: 8080},
			},
		},
		{
			name:  "reversed range kept as given",
			specs: []string{"9000-8000"},
			want:  []PortRange{{Start: 9000, End: 8000}},
		},
		{
			name:  "whitespace tolerated",
			specs: []string{" 80 , 443 "},
			want: []PortRange{
				{Start: 80, End: 80},
				{Start: 443, End: 443},
			},
		},
		{
			name:  "empty",
			specs: nil,
			want:  nil,
		},
		{
			name:    "not a number",
			specs:   []string{"http"},
			wantErr: true,
		},
		{
			name:    "port too large",
			specs:   []string{"65536"},
			wantErr: true,
		},
		{
			name:    "half open range",
			specs:   []string{"8000-"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRanges(tt.specs)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPortRange_String(t *testing.T) {
	assert.Equal(t, "8000-9000", PortRange{Start: 9000, End: 8000}.String())
	assert.Equal(t, "443", PortRange{Start: 443, End: 443}.String())
}
