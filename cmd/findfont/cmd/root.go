// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cmd

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bpowers/findfont"
)

var rootCmd = &cobra.Command{
	Use:   "findfont",
	Short: "Find installed fonts",
	Long:  "Look up font files by family and style using fontconfig's binary caches.",

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(viper.GetString("log_level"))
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		logrus.SetOutput(cmd.ErrOrStderr())
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ~/.config/findfont/config.yaml)")
	flags.StringSlice("cache-dir", nil, "fontconfig cache directory, may be repeated; FINDFONT_CACHE_DIRS takes a "+string(filepath.ListSeparator)+"-separated list (default: user then system cache)")
	flags.String("marker", findfont.DefaultMarker, "substring a cache file name must contain")
	flags.String("log-level", "warning", "log level (debug, info, warning, error)")
	flags.Bool("mmap", true, "memory-map cache files instead of reading them")
	flags.Int("concurrency", 1, "number of cache files to decode at once")

	viper.BindPFlag("cache_dirs", flags.Lookup("cache-dir"))
	viper.BindPFlag("marker", flags.Lookup("marker"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("mmap", flags.Lookup("mmap"))
	viper.BindPFlag("concurrency", flags.Lookup("concurrency"))
}

func initConfig() {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FINDFONT")
	viper.AutomaticEnv()
	viper.SetDefault("cache_dirs", findfont.DefaultCacheDirs())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logrus.WithError(err).Warn("couldn't read config")
		}
	}
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "findfont")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "findfont")
	}
	return ".findfont"
}

// cacheDirs returns the configured cache directories.  A plain string, which
// is what FINDFONT_CACHE_DIRS provides, is split like $PATH so directory
// names may contain spaces.
func cacheDirs() []string {
	var dirs []string
	if s, ok := viper.Get("cache_dirs").(string); ok {
		dirs = filepath.SplitList(s)
	} else {
		dirs = viper.GetStringSlice("cache_dirs")
	}
	if len(dirs) == 0 {
		dirs = findfont.DefaultCacheDirs()
	}
	return dirs
}

func loadOptions() []findfont.Option {
	return []findfont.Option{
		findfont.WithLogger(logrus.StandardLogger()),
		findfont.WithCacheDirs(cacheDirs()...),
		findfont.WithMarker(viper.GetString("marker")),
		findfont.WithMmap(viper.GetBool("mmap")),
		findfont.WithConcurrency(viper.GetInt("concurrency")),
	}
}

// loadIndex loads the configured caches.  Warnings were already logged by
// the loader and are only counted here.
func loadIndex() *findfont.Index {
	idx, warnings := findfont.Load(loadOptions()...)
	if len(warnings) > 0 {
		logrus.WithField("warnings", len(warnings)).Info("font index loaded with warnings")
	}
	return idx
}
