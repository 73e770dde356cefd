package main

import (
	"fmt"
	"os"

	"github.com/siherrmann/reqcheck/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	config     *cliConfig
)

// cliConfig is the YAML configuration file of the CLI. Absent keys keep
// their defaults.
type cliConfig struct {
	Validator *model.ValidatorConfig `yaml:"validator"`
	Server    struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
}

var rootCmd = &cobra.Command{
	Use:          "reqcheck",
	Short:        "Requirements document quality checker",
	Long:         `Analyzes a natural-language requirements document and reports ambiguity, vagueness, incompleteness, technical-debt and business-risk issues together with a quality score.`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")
}

func initConfig() {
	validatorConfig, err := model.NewValidatorConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	config = &cliConfig{Validator: validatorConfig}
	config.Server.Addr = ":8080"

	if configFile == "" {
		return
	}
	data, err := os.ReadFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read config file: %v\n", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse config file: %v\n", err)
		os.Exit(1)
	}
}
