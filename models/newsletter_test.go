package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "A@X.COM", want: "a@x.com"},
		{in: "  user@example.com  ", want: "user@example.com"},
		{in: "MiXeD@Example.Com", want: "mixed@example.com"},
		{in: "   ", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in), "input %q", tt.in)
	}
}
