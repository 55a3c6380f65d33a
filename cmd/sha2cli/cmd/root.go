package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coredigest/sha2fips/internal/logging"
)

const (
	defaultLogDir   = "sha2cli-logs"
	defaultLogLevel = "info"
)

var (
	cfgFile      string
	flagLogDir   string
	flagLogLevel string
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]),
	Short: "Command line client for the sha2fips digest library",
}

// Execute runs the root command; its child commands are added in init.
// Called once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logging.CPrint(logging.FATAL, "command failed", logging.Fields{"err": err})
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.sha2cli.json)")
	RootCmd.PersistentFlags().StringVar(&flagLogDir, "log_dir", defaultLogDir, "directory for log files")
	RootCmd.PersistentFlags().StringVar(&flagLogLevel, "log_level", defaultLogLevel, "level of logs (trace, debug, info, warn, error, fatal, panic)")

	viper.BindPFlag("log_dir", RootCmd.PersistentFlags().Lookup("log_dir"))
	viper.BindPFlag("log_level", RootCmd.PersistentFlags().Lookup("log_level"))

	RootCmd.AddCommand(sumCmd)
	RootCmd.AddCommand(verifyCmd)
	RootCmd.AddCommand(benchCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName(".sha2cli")
	}
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	if v := viper.GetString("log_dir"); v != "" {
		flagLogDir = v
	}
	if v := viper.GetString("log_level"); v != "" {
		flagLogLevel = v
	}
}

func initLogger() {
	if err := logging.Init(flagLogDir, "sha2cli", flagLogLevel, 7); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
}
