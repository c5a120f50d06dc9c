package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare 10 digit", in: "9876543210", want: "+919876543210"},
		{name: "already e164", in: "+919876543210", want: "+919876543210"},
		{name: "separators", in: "98765 43210", want: "+919876543210"},
		{name: "dashes", in: "987-654-3210", want: "+919876543210"},
		{name: "11 digits no plus", in: "19876543210", want: "+19876543210"},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in, "+91"))
		})
	}
}
