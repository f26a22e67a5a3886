package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "SNL"

type Config struct {
	DieSides int    `mapstructure:"dieSides"`
	Player1  string `mapstructure:"player1"`
	Player2  string `mapstructure:"player2"`
	LogLevel string `mapstructure:"logLevel"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dieSides", 6)
	v.SetDefault("player1", "Ricky")
	v.SetDefault("player2", "Bobby")
	v.SetDefault("logLevel", "warn")
}

// Load reads defaults, SNL_* environment variables and command line flags,
// later sources winning. The die size is not checked here.
func Load(name string, args []string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Int("die-sides", v.GetInt("dieSides"), "number of sides on the die (2-64)")
	fs.String("player1", v.GetString("player1"), "name of player 1")
	fs.String("player2", v.GetString("player2"), "name of player 2")
	fs.String("log-level", v.GetString("logLevel"), "diagnostic log level")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("error parsing flags: %w", err)
	}

	for key, flag := range map[string]string{
		"dieSides": "die-sides",
		"player1":  "player1",
		"player2":  "player2",
		"logLevel": "log-level",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}
	for key, env := range map[string]string{
		"dieSides": EnvPrefix + "_DIE_SIDES",
		"player1":  EnvPrefix + "_PLAYER1",
		"player2":  EnvPrefix + "_PLAYER2",
		"logLevel": EnvPrefix + "_LOG_LEVEL",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("error binding env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error reading config: %w", err)
	}
	return cfg, nil
}
