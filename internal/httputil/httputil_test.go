package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalMethods_Order(t *testing.T) {
	want := []string{"get", "post", "put", "delete", "patch", "options", "head", "trace"}
	assert.Equal(t, want, CanonicalMethods)
}

func TestIsCanonicalMethod(t *testing.T) {
	tests := []struct {
		method string
		want   bool
	}{
		{"get", true},
		{"trace", true},
		{"GET", false}, // lookup is on normalized lowercase form
		{"query", false},
		{"parameters", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCanonicalMethod(tt.method))
		})
	}
}

func TestNormalizeMethod(t *testing.T) {
	assert.Equal(t, "get", NormalizeMethod(" GET "))
	assert.Equal(t, "post", NormalizeMethod("Post"))
	assert.Equal(t, "", NormalizeMethod("  "))
}
