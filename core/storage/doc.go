// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client (S3 compatible) behind the Client interface. The sync service
// stores portable menu snapshots in a bucket so a menu can be exported once and re-applied to
// tenants later, and the integrity feature checks the bucket layout.
//
// The Client interface is mocked with testify in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	created, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
