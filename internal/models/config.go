package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const DefaultDashboardBaseURL = "https://phoneline-dashboard-backend-63qdm.ondigitalocean.app"

type Config struct {
	PhoneNumber   string `mapstructure:"phone_number"`
	BaseURL       string `mapstructure:"base_url"`
	Timezone      string `mapstructure:"timezone"`
	OutputFolder  string `mapstructure:"output_folder"`
	SaveSnapshots bool   `mapstructure:"save_snapshots"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	KafkaTopic      string `mapstructure:"kafka_topic"`

	CloudStorage bool   `mapstructure:"cloud_storage"`
	S3BucketName string `mapstructure:"s3_bucket_name"`
	S3Region     string `mapstructure:"s3_region"`
	S3Folder     string `mapstructure:"s3_folder"`

	Demo           bool `mapstructure:"demo"`
	Seed           int  `mapstructure:"seed"`
	DemoCategories int  `mapstructure:"demo_categories"`
	DemoItems      int  `mapstructure:"demo_items"`
}

// Location resolves the restaurant timezone; the hours evaluation runs
// on wall-clock time in this zone.
func (cfg *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	return loc, nil
}

// LoadConfig initializes and reads the configuration using Viper. A
// missing config file is not an error: flags, env vars and defaults are
// enough to run.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath(".")
		viper.SetConfigName("voicemenu")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("base_url", DefaultDashboardBaseURL)
	viper.SetDefault("timezone", "Canada/Eastern")
	viper.SetDefault("output_folder", "data")
	viper.SetDefault("kafka_broker_list", "localhost:9092")
	viper.SetDefault("kafka_topic", "restaurant-snapshots")
	viper.SetDefault("s3_folder", "snapshots")
	viper.SetDefault("seed", 42)
	viper.SetDefault("demo_categories", 5)
	viper.SetDefault("demo_items", 25)

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
