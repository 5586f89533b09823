package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"notedeck/internal/config"
)

var (
	cfgFile string

	appCfg   *config.Config
	cfgError error
	homeDir  string
)

var rootCmd = &cobra.Command{
	Use:   "notedeck",
	Short: "Browse a vault of markdown notes from the terminal.",
	Long: `A terminal browser for a vault of markdown notes: list or grid
layout, favorites and archive toggles, previews, and fuzzy search.

  notedeck browse
  notedeck find robotics
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(ensureConfigExists, initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.notedeck/cfg.yaml)")
}

func ensureConfigExists() {
	home, err := os.UserHomeDir()
	if err != nil {
		cobra.CheckErr(fmt.Errorf("failed to resolve home directory: %w", err))
	}
	homeDir = home

	if cfgFile != "" {
		return
	}
	if err := config.EnsureExists(home); err != nil {
		cobra.CheckErr(fmt.Errorf("failed to create config: %w", err))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigFile(config.GetConfigPath(homeDir))
	}
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		cobra.CheckErr(fmt.Errorf("failed to read config: %w", err))
	}

	appCfg, cfgError = config.Load(homeDir)
	if cfgError != nil {
		cobra.CheckErr(cfgError)
	}
}
