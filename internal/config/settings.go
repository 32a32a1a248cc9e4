package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigName is the settings file looked up in the config directory.
const ConfigName = "battlecity.cfg.json"

// Settings holds the runtime knobs of the hosts. The simulation itself only reads
// Seed and LevelFile; everything else belongs to the presentation side.
type Settings struct {
	LogLevel       string  `mapstructure:"logLevel"`
	LogFile        string  `mapstructure:"logFile"`
	Seed           int64   `mapstructure:"seed"`
	LevelFile      string  `mapstructure:"levelFile"`
	WindowScale    float64 `mapstructure:"windowScale"`
	TPS            int     `mapstructure:"tps"`
	MetricsEnabled bool    `mapstructure:"metricsEnabled"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("seed", 0)
	v.SetDefault("levelFile", "")
	v.SetDefault("windowScale", 2.0)
	v.SetDefault("tps", DefaultTPS)
	v.SetDefault("metricsEnabled", true)
}

// Load reads settings from configDir/battlecity.cfg.json and BATTLECITY_* environment
// variables. A missing file is not an error: defaults apply.
func Load(configDir string) (Settings, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigName(ConfigName)
	v.SetConfigType("json")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.SetEnvPrefix("BATTLECITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if s.TPS <= 0 {
		s.TPS = DefaultTPS
	}
	if s.WindowScale <= 0 {
		s.WindowScale = 1
	}
	return s, nil
}
