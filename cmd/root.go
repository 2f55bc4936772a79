package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/compasshud/compass/internal/bridge"
	"github.com/compasshud/compass/internal/occupation"
)

const (
	app = "compass"
)

type Config struct {
	Catalog *CatalogConfig `mapstructure:"catalog"`
	Bridge  *BridgeConfig  `mapstructure:"bridge"`
	Stats   *StatsConfig   `mapstructure:"stats"`
}

type CatalogConfig struct {
	Driver   string `mapstructure:"driver"`
	File     string `mapstructure:"file"`
	DSN      string `mapstructure:"dsn"`
	DSNFile  string `mapstructure:"dsn-file"`
	MaxConns int    `mapstructure:"max-conns"`
}

type BridgeConfig struct {
	Rows  []bridge.Row       `mapstructure:"rows"`
	Wages map[string]float64 `mapstructure:"wages"`
}

type StatsConfig struct {
	Live              bool          `mapstructure:"live"`
	APIURL            string        `mapstructure:"api-url"`
	APIKeyFile        string        `mapstructure:"api-key-file"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerMinute int           `mapstructure:"requests-per-minute"`
	MaxRetries        int           `mapstructure:"max-retries"`
	CacheDir          string        `mapstructure:"cache-dir"`
	CacheTTL          time.Duration `mapstructure:"cache-ttl"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "compass matches applicants with institutions by affordability, outcomes and fit",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("catalog.dsn-file", "COMPASS_CATALOG_DSN_FILE"); err != nil {
		log.Fatalf("binding COMPASS_CATALOG_DSN_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("stats.api-key-file", "BLS_API_KEY_FILE"); err != nil {
		log.Fatalf("binding BLS_API_KEY_FILE environment variable: %v", err)
	}

	viper.SetDefault("catalog.driver", "file")
	viper.SetDefault("catalog.file", "institutions.yaml")
	viper.SetDefault("catalog.max-conns", 4)
	viper.SetDefault("stats.live", true)
	viper.SetDefault("stats.api-url", occupation.DefaultAPIURL)
	viper.SetDefault("stats.timeout", occupation.DefaultTimeout)
	viper.SetDefault("stats.requests-per-minute", 10)
	viper.SetDefault("stats.max-retries", 1)
	viper.SetDefault("stats.cache-ttl", 30*24*time.Hour)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is compass.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Only match and stats read the config.
	if matchCmd.CalledAs() == "" && statsCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// A missing default config file leaves the defaults in place; anything else is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
