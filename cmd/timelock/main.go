// Command timelock generates time-lock puzzle moduli, solves puzzles over them with each
// strategy, and benchmarks the strategies against each other.
package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/privacybydesign/timelock"
)

var (
	configFile string
	verbose    bool

	v = viper.New()

	rootCmd = &cobra.Command{
		Use:   "timelock",
		Short: "Generate, solve and benchmark RSA time-lock puzzles",
		Long: `timelock evaluates the time-lock puzzle 2^(2^t) mod n, either by t sequential
squarings or, for the holder of the trapdoor phi(n), by two modular exponentiations.`,
		SilenceUsage: true,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initConfig() {
	if verbose {
		timelock.Logger.SetLevel(logrus.DebugLevel)
	}

	v.SetEnvPrefix("TIMELOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		return
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		timelock.Logger.WithField("config", configFile).Fatal("failed to read config: ", err)
	}
	timelock.Logger.WithField("config", v.ConfigFileUsed()).Debug("loaded config")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		timelock.Logger.Fatal(err)
	}
}
