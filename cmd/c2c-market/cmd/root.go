// Package cmd implements the CLI commands for c2c-market.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "c2c-market",
	Short: "Consumer-to-consumer classifieds backend",
	Long: "c2c-market is the backend for a consumer-to-consumer marketplace:\n" +
		"user accounts with token auth, profiles, classified item listings,\n" +
		"buyer interest, and sale tracking over PostgreSQL.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "config.yaml", "config file path")
	cobra.CheckErr(viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")))

	rootCmd.AddCommand(versionCommand())
}

func initConfig() {
	viper.SetEnvPrefix("C2C")
	viper.AutomaticEnv()
}

// configPath resolves the config file path from the flag or the C2C_CONFIG
// environment variable.
func configPath() string {
	return viper.GetString("config")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
