package config

import (
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	"github.com/spf13/viper"
)

func setDefaultConfig() {
	viper.SetDefault("LogConfig.EnableConsole", true)
	viper.SetDefault("LogConfig.ConsoleJSONFormat", false)
	viper.SetDefault("LogConfig.ConsoleLevel", "debug")
	viper.SetDefault("LogConfig.EnableFile", false)
	viper.SetDefault("LogConfig.FileJSONFormat", true)
	viper.SetDefault("LogConfig.FileLevel", "debug")
	viper.SetDefault("LogConfig.FileLocation", "./smartcart.log")
	viper.SetDefault("Env", constants.Prod)
	viper.SetDefault("Port", "8080")
	viper.SetDefault("Verbose", false)
	viper.SetDefault("CorsAllowedOrigins", []string{"*"})
	viper.SetDefault("GracefulTimeout", constants.DefaultGracefulTimeout)
	viper.SetDefault("Remote.Driver", constants.RemoteDriverSupabase)
	viper.SetDefault("Remote.Table", constants.DemoRequestsTable)
	viper.SetDefault("Remote.Timeout", constants.DefaultRemoteTimeout)
	viper.SetDefault("LocalStore.ProjectDir", ".")
}

// bindConventionalEnv maps the unprefixed variable names used by hosting
// providers and the supabase tooling onto config keys.
func bindConventionalEnv() error {
	bindings := map[string][]string{
		"Remote.URL":        {"SUPABASE_URL"},
		"Remote.ServiceKey": {"SUPABASE_SERVICE_ROLE_KEY", "SUPABASE_SERVICE_KEY"},
		"Remote.DSN":        {"SUPABASE_DB_URL"},
		"LocalStore.Dir":    {"DEMO_DB_DIR"},
	}
	for key, envs := range bindings {
		input := append([]string{key}, envs...)
		if err := viper.BindEnv(input...); err != nil {
			return err
		}
	}
	return nil
}
