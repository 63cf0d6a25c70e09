package integrity

import (
	"context"
	"testing"

	"menu-sync/core/auditlog"
	"menu-sync/core/database"
	"menu-sync/core/settings"
	"menu-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	if len(models) > 0 {
		require.NoError(t, db.AutoMigrate(models...))
	}
	return db
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", []string{"snapshots"}, nil, zap.NewNop())

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"snapshots"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", "snapshots/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"snapshots"})
		assert.NoError(t, err)
	})
}

func TestService_DefaultModels(t *testing.T) {
	db := setupDB(t, DefaultModels()...)
	svc := NewService(new(mocks.Client), "test-bucket", nil, db, zap.NewNop())

	report, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Contains(t, report.Tables, "menu_sync_logs")
	assert.Contains(t, report.Tables, "menu_sync_settings")
	assert.Contains(t, report.Tables, "menu_items")
}

func TestService_RunAll(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
			Return(func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
				return mocks.Objects(minio.ObjectInfo{Key: "snapshots/main/1.json"})
			})

		db := setupDB(t, &auditlog.Record{}, &settings.Row{})
		svc := NewService(mockClient, "test-bucket", []string{"snapshots"}, db, zap.NewNop(), &auditlog.Record{}, &settings.Row{})

		report := svc.RunAll(context.Background())
		structure := report["structure"].(map[string]any)
		assert.Equal(t, "ok", structure["status"])
		assert.Empty(t, structure["missing"])
		assert.NotNil(t, report["schema"])
	})

	t.Run("Failures Are Reported Per Check", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

		svc := NewService(mockClient, "test-bucket", []string{"snapshots"}, nil, zap.NewNop())
		report := svc.RunAll(context.Background())

		assert.Equal(t, "error", report["structure"].(map[string]any)["status"])
		assert.Equal(t, "error", report["schema"].(map[string]any)["status"])
	})
}

func TestService_NoStorage(t *testing.T) {
	svc := NewService(nil, "", []string{"snapshots"}, setupDB(t), zap.NewNop())

	_, err := svc.CheckStructure(context.Background())
	assert.ErrorIs(t, err, ErrNoStorage)
	assert.ErrorIs(t, svc.FixStructure(context.Background(), []string{"snapshots"}), ErrNoStorage)
}
