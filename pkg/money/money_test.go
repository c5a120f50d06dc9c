package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "750", want: 75000},
		{in: "12.34", want: 1234},
		{in: "12,34", want: 1234},
		{in: "12.345", want: 1234},
		{in: "12.346", want: 1235},
		{in: ".50", want: 50},
		{in: "0", want: 0},
		{in: "", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "+5", wantErr: true},
		{in: "1.2.3", wantErr: true},
		{in: "abc", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1234.56", Format(123456))
	assert.Equal(t, "0.05", Format(5))
	assert.Equal(t, "-10.00", Format(-1000))
}

func TestRupees(t *testing.T) {
	assert.Equal(t, int64(75000), Rupees(750))
}
