package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "espresso",
	Short: "Parse and inspect Espresso scripts",
	Long: `Espresso is a small expression oriented scripting language.

This tool exposes its parser: print syntax trees and token streams,
reformat source code, report syntax errors and list declared symbols.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		processGlobalFlags()
	},
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if isTerminalIO() {
			if err := runRepl(os.Stdin, os.Stdout); err != nil {
				fatal(err)
			}
			return
		}
		cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.espresso.yaml)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.Int("max-depth", 0, "Maximum nesting depth accepted by the parser (0 means unlimited)")
	viper.BindPFlag("no-color", flags.Lookup("no-color"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("max-depth", flags.Lookup("max-depth"))

	rootCmd.AddCommand(astCmd, tokensCmd, fmtCmd, lintCmd, symbolsCmd, replCmd, versionCmd)
}

// initConfig reads in the config file and ESPRESSO_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fatal(err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".espresso")
	}
	viper.SetEnvPrefix("espresso")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			fatal(fmt.Errorf("reading config: %w", err))
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}
