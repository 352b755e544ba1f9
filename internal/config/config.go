package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	Export   ExportConfig   `mapstructure:"export"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`  // e.g., "mongodb://localhost:27017"
	Name string `mapstructure:"name"` // Database holding every collection
	// MigrateTimeout bounds index creation in cmd/migrate.
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`          // e.g., "http://localhost:9000" for MinIO; empty for AWS
	Region          string `mapstructure:"region"`            // e.g., "us-east-1"
	AccessKeyID     string `mapstructure:"access_key_id"`     // Optional; the SDK default chain is used when empty
	SecretAccessKey string `mapstructure:"secret_access_key"` // Never commit real values to config.yaml
	BucketName      string `mapstructure:"bucket_name"`       // Bucket receiving roster exports
}

// ExportConfig controls where attendance rosters are written and how long
// their download links stay valid.
type ExportConfig struct {
	Prefix    string        `mapstructure:"prefix"`
	URLExpiry time.Duration `mapstructure:"url_expiry"`
}

// LoadConfig reads config.yaml from path, then applies environment overrides
// such as DATABASE_URI or EXPORT_URL_EXPIRY. A missing file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// database.uri -> DATABASE_URI
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	v.AutomaticEnv()

	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "gym_membership")
	v.SetDefault("database.migrate_timeout", "1m")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("export.prefix", "exports")
	v.SetDefault("export.url_expiry", "15m")
	// AutomaticEnv only overrides keys viper already knows about.
	for _, key := range []string{"s3.endpoint", "s3.access_key_id", "s3.secret_access_key", "s3.bucket_name"} {
		v.SetDefault(key, "")
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, err
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, err
	}
	return config, nil
}
