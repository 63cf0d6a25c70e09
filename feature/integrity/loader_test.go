package integrity

import (
	"net/http/httptest"
	"testing"

	"menu-sync/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeature(t *testing.T) {
	t.Run("Storage Only", func(t *testing.T) {
		feature := NewFeature(new(mocks.Client), "test-bucket", []string{"snapshots"}, nil, zap.NewNop())
		assert.Equal(t, "integrity", feature.Name())
		assert.True(t, feature.IsEnabled())

		app := fiber.New()
		require.NoError(t, feature.Load(app))

		// Mounted, but the schema check has no database to inspect.
		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("Nothing To Check", func(t *testing.T) {
		feature := NewFeature(nil, "", nil, nil, zap.NewNop())
		assert.False(t, feature.IsEnabled())
	})
}
