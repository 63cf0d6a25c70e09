package logger

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"DebugConsole", Config{Level: "debug", Format: "console"}},
		{"InfoJSON", Config{Level: "info", Format: "json"}},
		{"WarnJSON", Config{Level: "warn"}},
		{"UnknownLevel", Config{Level: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestWithSync(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := WithSync(zap.New(core), 1, 2, 3)
	l.Info("attempt")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, int64(1), fields["source_tenant_id"])
	assert.Equal(t, int64(2), fields["target_tenant_id"])
	assert.Equal(t, int64(3), fields["menu_id"])
}

func TestWithRayID(t *testing.T) {
	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(c)

	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	WithRayID(base, c).Info("no ray")
	c.Locals("ray_id", "abc")
	WithRayID(base, c).Info("with ray")

	require.Equal(t, 2, logs.Len())
	_, has := logs.All()[0].ContextMap()["ray_id"]
	assert.False(t, has)
	assert.Equal(t, "abc", logs.All()[1].ContextMap()["ray_id"])
}
