package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	errs "github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GlobalConfig stores the config instance for global use
var GlobalConfig *Config

// Load loads config from command instance to predefined config variables
func Load(cmd *cobra.Command) (*Config, error) {
	// .env is optional, real environment variables win over it
	for _, file := range constants.DotEnvFiles {
		if err := godotenv.Load(file); err == nil {
			fmt.Printf("Loaded environment from %s\n", file)
		}
	}

	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	// default viper configs
	viper.SetEnvPrefix("SC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := bindConventionalEnv(); err != nil {
		return nil, err
	}

	// set default configs
	setDefaultConfig()

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".sc")
		viper.AddConfigPath("./")
		viper.AddConfigPath("/vault/secrets")
	}

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("Warning: No configuration file found. Proceeding with defaults")
	}

	return populateConfig(new(Config), os.LookupEnv)
}

func populateConfig(cfg *Config, lookupEnv func(string) (string, bool)) (*Config, error) {
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	switch cfg.Env {
	case constants.Dev, constants.Stage, constants.Prod:
	default:
		return nil, errs.ErrInvalidEnvironemt
	}
	cfg.Remote.URL = strings.TrimSpace(cfg.Remote.URL)
	cfg.Remote.ServiceKey = strings.TrimSpace(cfg.Remote.ServiceKey)
	if !cfg.LocalStore.Ephemeral {
		cfg.LocalStore.Ephemeral = RestrictedFilesystem(lookupEnv)
	}
	GlobalConfig = cfg
	return cfg, nil
}

// RestrictedFilesystem reports whether one of the serverless platform markers
// is present. Those platforms only allow writes below the temp directory.
func RestrictedFilesystem(lookupEnv func(string) (string, bool)) bool {
	for _, key := range constants.RestrictedFilesystemIndicators {
		if v, ok := lookupEnv(key); ok && v != "" {
			return true
		}
	}
	return false
}
