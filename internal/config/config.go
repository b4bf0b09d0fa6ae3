// Package config resolves where moodlit keeps its data and how it logs.
//
// Values come from, in order of precedence: command-line flags, MOODLIT_*
// environment variables, the YAML config file and built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/julianstephens/moodlit/internal/constants"
)

type Config struct {
	StorePath string
	LogDir    string
	Debug     bool
	// File is the config file that was read, empty if none.
	File string
}

// Overrides carries values given on the command line. Zero values mean
// "not set".
type Overrides struct {
	ConfigFile string
	StorePath  string
	Debug      bool
}

// Load resolves the effective configuration.
func Load(o Overrides) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("store", constants.DefaultStorePath)
	v.SetDefault("debug", false)
	v.SetDefault("log_dir", "")

	file, explicit := o.ConfigFile, o.ConfigFile != ""
	if !explicit {
		if env := os.Getenv(constants.EnvPrefix + "_CONFIG"); env != "" {
			file, explicit = env, true
		} else {
			file = filepath.Join(constants.DefaultConfigDir, constants.DefaultConfigFile)
		}
	}

	path, err := homedir.Expand(file)
	if err != nil {
		return Config{}, fmt.Errorf("failed to expand config path %q: %w", file, err)
	}

	cfg := Config{}
	if _, statErr := os.Stat(path); statErr == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		cfg.File = path
	} else if explicit {
		return Config{}, fmt.Errorf("config file not found: %s", path)
	}

	store := v.GetString("store")
	if o.StorePath != "" {
		store = o.StorePath
	}
	if cfg.StorePath, err = expand(store); err != nil {
		return Config{}, err
	}

	cfg.Debug = o.Debug || v.GetBool("debug")

	logDir := v.GetString("log_dir")
	if logDir == "" {
		logDir = filepath.Join(filepath.Dir(filepath.Clean(cfg.StorePath)), constants.LogDirName)
	}
	if cfg.LogDir, err = expand(logDir); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// expand resolves a leading ~ while keeping a trailing separator, which marks
// a directory store.
func expand(p string) (string, error) {
	out, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("failed to expand path %q: %w", p, err)
	}
	if strings.HasSuffix(p, "/") && !strings.HasSuffix(out, "/") {
		out += "/"
	}
	return out, nil
}
