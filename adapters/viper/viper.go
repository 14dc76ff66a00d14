package viper

import (
	"fmt"
	"strings"

	"github.com/abhissng/axon/utils/helpers"
	"github.com/spf13/viper"
)

// Viper struct holds the configuration for the Viper client
type Viper struct {
	configName string
	configType string
	configPath string // it should only contain the absolute path for the folder rest other details will be added by sdk
}

// NewViper creates the viper configuration using the RunMode environment.
func NewViper(configName, configType, configPath string) *Viper {
	env := helpers.GetEnvironment()
	if helpers.IsEmpty(env) {
		env = "dev" // default enviroment
	}
	// Remove the trailing slash if it exists
	configPath = strings.TrimSuffix(configPath, "/")

	return &Viper{
		configName: configName,
		configType: configType,
		configPath: configPath + "/" + env + "/",
	}
}

// InitialiseViper initialises the viper client
func (v *Viper) InitialiseViper() error {
	viper.SetConfigName(v.configName) // Name of configuration file
	viper.SetConfigType(v.configType) // Configuration file type
	viper.AddConfigPath(v.configPath) // Look for configuration file in the given directory

	// Enable Viper to read environment variables
	viper.AutomaticEnv()

	// Attempt to read configuration file
	if err := viper.ReadInConfig(); err != nil {
		err = fmt.Errorf("error reading configuration file: %s", err)
		return err
	}

	return nil
}

// UnmarshalConfig unmarshals the entire Viper configuration into the provided struct reference.
// It helps you avoid calling viper.GetString / viper.GetInt repeatedly by binding
// configuration values directly into a typed struct.
//
// Example:
//
//	type GatewayConfig struct {
//	    Dispatch struct {
//	        Timeout   int `mapstructure:"timeout"`
//	        PoolSize  int `mapstructure:"pool_size"`
//	        QueueSize int `mapstructure:"queue_size"`
//	    } `mapstructure:"dispatch"`
//
//	    LogLevel string `mapstructure:"log_level"`
//	}
func UnmarshalConfig[T any](target *T) error {
	if target == nil {
		return fmt.Errorf("target struct cannot be nil")
	}

	if err := viper.Unmarshal(target); err != nil {
		return fmt.Errorf("failed to unmarshal viper config: %w", err)
	}

	return nil
}
