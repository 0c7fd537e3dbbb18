package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults mirror the directory layout the tool has always expected when run
// from its working directory.
const (
	DefaultFont      = "fonts/static/Inter_28pt-SemiBoldItalic.ttf"
	DefaultIcon      = "bookmark.png"
	DefaultImagesDir = "used"
	DefaultOutputDir = "product"
	DefaultQuality   = 75
	DefaultPort      = "8080"

	envPrefix = "LIFESTYLE"
)

type Config struct {
	TitleFont   string `mapstructure:"title-font"`
	CaptionFont string `mapstructure:"caption-font"`
	Icon        string `mapstructure:"icon"`
	ImagesDir   string `mapstructure:"images-dir"`
	OutputDir   string `mapstructure:"output-dir"`
	Quality     int    `mapstructure:"quality"`
	AllowRemote bool   `mapstructure:"allow-remote"`
	Port        string `mapstructure:"port"`
}

// Load resolves the configuration from, lowest to highest priority: defaults,
// the config file (path, or lifestyle.yaml in the working directory when path
// is empty), LIFESTYLE_* environment variables, and any flags in fs that were
// set. A missing lifestyle.yaml is not an error; a missing explicit path is.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("title-font", DefaultFont)
	v.SetDefault("caption-font", DefaultFont)
	v.SetDefault("icon", DefaultIcon)
	v.SetDefault("images-dir", DefaultImagesDir)
	v.SetDefault("output-dir", DefaultOutputDir)
	v.SetDefault("quality", DefaultQuality)
	v.SetDefault("allow-remote", false)
	v.SetDefault("port", DefaultPort)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("port", envPrefix+"_PORT", "PORT"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lifestyle")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if fs != nil {
		var bindErr error
		fs.VisitAll(func(f *pflag.Flag) {
			if isKey(f.Name) {
				if err := v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
					bindErr = err
				}
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func isKey(name string) bool {
	switch name {
	case "title-font", "caption-font", "icon", "images-dir", "output-dir", "quality", "allow-remote", "port":
		return true
	}
	return false
}
