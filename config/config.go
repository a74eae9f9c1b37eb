package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                                   int
	DefaultAlgorithm                       string
	RoundRobinTimeQuantum                  int
	MultilevelFeedbackQueueBaseTimeQuantum int
	Trace                                  bool
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and exits if it is malformed.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = Load("")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// Load reads the config file at path, or config.yaml in the working directory
// when path is empty. A missing file leaves the defaults in place. SCHEDSIM_*
// environment variables override file values.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.default_algorithm", "FCFS")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.base_time_quantum", 2)
	v.SetDefault("scheduler.trace", false)

	v.SetEnvPrefix("schedsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		log.Println("no config file found, using defaults")
	}

	return &SchedulerConfig{
		Port:                                   v.GetInt("port"),
		DefaultAlgorithm:                       v.GetString("scheduler.default_algorithm"),
		RoundRobinTimeQuantum:                  v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueBaseTimeQuantum: v.GetInt("scheduler.multilevel_feedback_queue.base_time_quantum"),
		Trace:                                  v.GetBool("scheduler.trace"),
	}, nil
}
