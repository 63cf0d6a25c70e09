package menus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"menu-sync/core/menusync"
	"menu-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"gopkg.in/yaml.v3"
)

// Snapshot formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrSnapshotNotFound is returned when the requested snapshot object does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrSnapshotsDisabled is returned when no object storage is configured.
	ErrSnapshotsDisabled = errors.New("snapshot storage is not configured")
)

// SnapshotInfo describes one stored snapshot.
type SnapshotInfo struct {
	Key          string    `json:"key"`
	Format       string    `json:"format"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Snapshots stores portable menus as objects under <prefix>/<slug>/<unix>.<format>.
type Snapshots struct {
	client storage.Client
	bucket string
	prefix string
	now    func() time.Time
}

// NewSnapshots creates a snapshot store. An empty prefix means "snapshots".
func NewSnapshots(client storage.Client, bucket, prefix string) *Snapshots {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		prefix = "snapshots"
	}
	return &Snapshots{client: client, bucket: bucket, prefix: prefix, now: time.Now}
}

// Prefix returns the folder all snapshots live under.
func (s *Snapshots) Prefix() string {
	return s.prefix
}

// formatOf derives the format from an object key.
func formatOf(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func encode(menu *menusync.PortableMenu, format string) ([]byte, string, error) {
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(menu, "", "  ")
		return data, "application/json", err
	case FormatYAML:
		data, err := yaml.Marshal(menu)
		return data, "application/yaml", err
	}
	return nil, "", &menusync.ValidationError{Field: "format", Reason: fmt.Sprintf("unsupported snapshot format %q", format)}
}

func decode(data []byte, format string) (*menusync.PortableMenu, error) {
	var menu menusync.PortableMenu
	var err error
	if format == FormatYAML {
		err = yaml.Unmarshal(data, &menu)
	} else {
		err = json.Unmarshal(data, &menu)
	}
	if err != nil {
		return nil, &menusync.ValidationError{Field: "snapshot", Reason: err.Error()}
	}
	return &menu, nil
}

// Save writes menu and returns the info of the new object.
func (s *Snapshots) Save(ctx context.Context, menu *menusync.PortableMenu, format string) (SnapshotInfo, error) {
	if format == "" {
		format = FormatJSON
	}
	data, contentType, err := encode(menu, format)
	if err != nil {
		return SnapshotInfo{}, err
	}

	at := s.now()
	key := fmt.Sprintf("%s/%s/%d.%s", s.prefix, menu.Slug, at.Unix(), format)
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}
	return SnapshotInfo{Key: key, Format: format, Size: int64(len(data)), LastModified: at}, nil
}

// checkKey normalizes key and rejects keys outside the snapshot folder.
func (s *Snapshots) checkKey(key string) (string, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if !strings.HasPrefix(key, s.prefix+"/") || strings.HasSuffix(key, "/") {
		return "", &menusync.ValidationError{Field: "key", Reason: "must name a snapshot under " + s.prefix + "/"}
	}
	return key, nil
}

// Load downloads and decodes the snapshot stored at key.
func (s *Snapshots) Load(ctx context.Context, key string) (*menusync.PortableMenu, error) {
	key, err := s.checkKey(key)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", key, ErrSnapshotNotFound)
		}
		return nil, fmt.Errorf("failed to get snapshot %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", key, ErrSnapshotNotFound)
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	return decode(data, formatOf(key))
}

// Delete removes the snapshot stored at key.
func (s *Snapshots) Delete(ctx context.Context, key string) error {
	key, err := s.checkKey(key)
	if err != nil {
		return err
	}
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return fmt.Errorf("%s: %w", key, ErrSnapshotNotFound)
		}
		return fmt.Errorf("failed to stat snapshot %s: %w", key, err)
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove snapshot %s: %w", key, err)
	}
	return nil
}

// List returns the snapshots of slug, or of every menu when slug is empty, newest first.
func (s *Snapshots) List(ctx context.Context, slug string) ([]SnapshotInfo, error) {
	prefix := s.prefix + "/"
	if slug != "" {
		prefix += strings.Trim(slug, "/") + "/"
	}

	var out []SnapshotInfo
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		out = append(out, SnapshotInfo{
			Key:          obj.Key,
			Format:       formatOf(obj.Key),
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastModified.Equal(out[j].LastModified) {
			return out[i].Key > out[j].Key
		}
		return out[i].LastModified.After(out[j].LastModified)
	})
	return out, nil
}
