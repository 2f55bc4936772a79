package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/compasshud/compass/internal/logger"
)

var statsCmd = &cobra.Command{
	Use:   "stats <occupation-code>",
	Short: "Print wage and growth figures of an occupation",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
		if err != nil {
			log.Fatalf("creating a logger: %s", err)
		}

		config, err := getConfig()
		if err != nil {
			logger.Fatal("getting a config", zap.Error(err))
		}

		service, closeStats, err := newStats(config, logger)
		if err != nil {
			logger.Fatal("preparing occupation stats", zap.Error(err))
		}
		defer closeStats()

		pretty, err := json.MarshalIndent(service.Lookup(context.Background(), args[0]), "", "  ")
		if err != nil {
			logger.Fatal("encoding stats", zap.Error(err))
		}
		fmt.Println(string(pretty))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
