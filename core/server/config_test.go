package server_test

import (
	"testing"

	"menu-sync/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsProtected(t *testing.T) {
	assert.False(t, server.Config{}.IsProtected())
	assert.True(t, server.Config{ApiKey: "secret"}.IsProtected())
}

func TestConfig_EffectiveBodyLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Default", 0, 4 * 1024 * 1024},
		{"Negative", -1, 4 * 1024 * 1024},
		{"Custom", 1024, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitBytes: tt.limit}
			assert.Equal(t, tt.want, c.EffectiveBodyLimit())
		})
	}
}
