package storage

// Config is the "storage" section: the S3 compatible bucket that holds menu snapshots.
// Snapshots are optional; commands that do not touch them never connect.
type Config struct {
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds every snapshot of every menu.
	Bucket string `mapstructure:"bucket" default:"menu-sync"`
	Region string `mapstructure:"region" default:""`
	// CreateBucket makes the server create Bucket at startup when it does not exist.
	CreateBucket bool `mapstructure:"create_bucket" default:"true"`
	// TimeoutSeconds bounds dialing, TLS handshake and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
