package checks

import (
	"context"
	"errors"
	"testing"

	"menu-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCheckStructure(t *testing.T) {
	required := []string{"snapshots", "exports/"}

	t.Run("Bucket Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "menu-sync").Return(false, nil)

		_, err := CheckStructure(context.Background(), client, "menu-sync", required)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("Bucket Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "menu-sync").Return(false, errors.New("denied"))

		_, err := CheckStructure(context.Background(), client, "menu-sync", required)
		assert.ErrorContains(t, err, "denied")
	})

	t.Run("All Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "menu-sync").Return(true, nil)
		client.On("ListObjects", mock.Anything, "menu-sync", mock.Anything).Return(mocks.Objects())

		missing, err := CheckStructure(context.Background(), client, "menu-sync", required)
		assert.NoError(t, err)
		assert.Equal(t, required, missing)
	})

	t.Run("Present", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "menu-sync").Return(true, nil)
		client.On("ListObjects", mock.Anything, "menu-sync", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "snapshots/"
		})).Return(mocks.Objects(minio.ObjectInfo{Key: "snapshots/main/1.json"}))
		client.On("ListObjects", mock.Anything, "menu-sync", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "exports/"
		})).Return(mocks.Objects())

		missing, err := CheckStructure(context.Background(), client, "menu-sync", required)
		assert.NoError(t, err)
		assert.Equal(t, []string{"exports/"}, missing)
	})

	t.Run("Listing Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "menu-sync").Return(true, nil)
		client.On("ListObjects", mock.Anything, "menu-sync", mock.Anything).
			Return(mocks.Objects(minio.ObjectInfo{Err: errors.New("timeout")}))

		_, err := CheckStructure(context.Background(), client, "menu-sync", required)
		assert.ErrorContains(t, err, "timeout")
	})
}

func TestFixStructure(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "menu-sync", "snapshots/", mock.Anything, int64(0), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	err := FixStructure(context.Background(), client, "menu-sync", zap.NewNop(), []string{"snapshots"})
	assert.NoError(t, err)
	client.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestFixStructure_Error(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "menu-sync", mock.Anything, mock.Anything, int64(0), mock.Anything).
		Return(minio.UploadInfo{}, errors.New("read only"))

	err := FixStructure(context.Background(), client, "menu-sync", zap.NewNop(), []string{"a", "b"})
	assert.ErrorContains(t, err, "read only")
	client.AssertNumberOfCalls(t, "PutObject", 1)
}
