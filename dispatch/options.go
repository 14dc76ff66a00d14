package dispatch

import (
	"github.com/abhissng/axon/adapters/log"
	"github.com/abhissng/axon/adapters/viper"
	"github.com/abhissng/axon/blame"
	"github.com/abhissng/axon/utils/workerpool"
)

// DefaultOrder positions the stage late in the chain, after routing and
// auth stages but before response rendering.
const DefaultOrder = 310

// Config is the bootstrap configuration of the dispatch stage.
type Config struct {
	Order     int `mapstructure:"order"`
	PoolSize  int `mapstructure:"pool_size"`
	QueueSize int `mapstructure:"queue_size"`
}

// LoadConfig reads the dispatch section of the service configuration.
func LoadConfig(configName, configType, configPath string) (Config, error) {
	v := viper.NewViper(configName, configType, configPath)
	if err := v.InitialiseViper(); err != nil {
		return Config{}, blame.ConfigLoadFailure(err)
	}

	var wrapper struct {
		Dispatch Config `mapstructure:"dispatch"`
	}
	if err := viper.UnmarshalConfig(&wrapper); err != nil {
		return Config{}, blame.ConfigLoadFailure(err)
	}
	return wrapper.Dispatch, nil
}

// PluginOptionsFrom maps a loaded Config onto plugin options.
func PluginOptionsFrom(cfg Config, l *log.Log) []PluginOption {
	options := make([]PluginOption, 0, 2)
	if cfg.Order > 0 {
		options = append(options, WithOrder(cfg.Order))
	}
	if cfg.PoolSize > 0 || cfg.QueueSize > 0 {
		poolOptions := []workerpool.Option{workerpool.WithLogger(l)}
		if cfg.PoolSize > 0 {
			poolOptions = append(poolOptions, workerpool.WithNumWorkers(cfg.PoolSize))
		}
		if cfg.QueueSize > 0 {
			poolOptions = append(poolOptions, workerpool.WithTaskQueueSize(cfg.QueueSize))
		}
		options = append(options, WithPool(workerpool.NewPool(poolOptions...)))
	}
	return options
}
