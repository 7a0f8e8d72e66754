package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+1 (555) 010-2030", "15550102030"},
		{"15550102030", "15550102030"},
		{"555.010.2030", "5550102030"},
		{"", ""},
		{"no digits here", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, phoneDigits(c.in), "input %q", c.in)
	}
}
