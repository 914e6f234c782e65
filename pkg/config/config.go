package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Dataset    DatasetConfig
	CrossVal   CrossValConfig
	Classifier ClassifierConfig
	SQLite     SQLiteConfig
	Metrics    MetricsConfig
	Logging    LoggingConfig
}

type DatasetConfig struct {
	// Paths are glob patterns; all matched CSV files are concatenated.
	Paths []string
	// Seed drives the global shuffle applied after concatenation.
	Seed int64
	// CleanHTML strips markup from comment text before tokenization.
	CleanHTML bool
	// Stats enables the pre-run corpus statistics pass.
	Stats bool
}

type CrossValConfig struct {
	Folds int
}

type ClassifierConfig struct {
	// Binary is the fastText executable invoked per fold.
	Binary     string
	Epochs     int
	LR         float64
	WordNgrams int
	MinCount   int
	Verbose    int
	TimeoutSec int
}

type SQLiteConfig struct {
	Path string
}

type MetricsConfig struct {
	Enabled bool
	Addr    string
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("SPAMCV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.CrossVal.Folds < 2 {
		return nil, fmt.Errorf("crossval.folds must be at least 2, got %d", config.CrossVal.Folds)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("dataset.paths", []string{"./data/*.csv"})
	viper.SetDefault("dataset.seed", 666)
	viper.SetDefault("dataset.cleanHTML", false)
	viper.SetDefault("dataset.stats", false)

	viper.SetDefault("crossval.folds", 10)

	viper.SetDefault("classifier.binary", "fasttext")
	viper.SetDefault("classifier.epochs", 25)
	viper.SetDefault("classifier.lr", 1.0)
	viper.SetDefault("classifier.wordNgrams", 2)
	viper.SetDefault("classifier.minCount", 1)
	viper.SetDefault("classifier.verbose", 2)
	viper.SetDefault("classifier.timeoutSec", 300)

	viper.SetDefault("sqlite.path", "./data/spamcv.db")

	viper.SetDefault("metrics.enabled", false)
	viper.SetDefault("metrics.addr", ":9090")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
	viper.SetDefault("logging.outputPath", "stderr")
}
