// Package config loads service configuration from the environment with
// viper. Every setting has a usable default; a .env file is optional.
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
}

type AppConfig struct {
	Name  string
	Port  string
	Debug bool
}

type StorageConfig struct {
	// DataDir holds the snapshot file; SnapshotKey is the versioned file
	// name stem. Bump the version when the field set changes
	// incompatibly so stale snapshots are orphaned, not partially read.
	DataDir       string
	SnapshotKey   string
	SaveDebounce  time.Duration
	UploadMaxSize int64
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "invoizy")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", false)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("SNAPSHOT_KEY", "invoiceMaker_data_v4")
	viper.SetDefault("SAVE_DEBOUNCE_MS", 400)
	viper.SetDefault("UPLOAD_MAX_SIZE", 5*1024*1024)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Storage: StorageConfig{
			DataDir:       viper.GetString("DATA_DIR"),
			SnapshotKey:   viper.GetString("SNAPSHOT_KEY"),
			SaveDebounce:  time.Duration(viper.GetInt("SAVE_DEBOUNCE_MS")) * time.Millisecond,
			UploadMaxSize: viper.GetInt64("UPLOAD_MAX_SIZE"),
		},
	}
}
