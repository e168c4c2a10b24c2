// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the settings of the dckv tool from an optional config file and DCKV_
// environment variables.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "DCKV"

type Config struct {
	Store StoreConfig `mapstructure:"store"`
	Log   LogConfig   `mapstructure:"log"`
}

type StoreConfig struct {
	// Path of the bbolt file holding stored instances
	Path string `mapstructure:"path"`
	// Timeout waiting for the file lock held by another process
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Verbose  bool `mapstructure:"verbose"`
	Color    bool `mapstructure:"color"`
	HideTime bool `mapstructure:"hide_time"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.path", "dckv.db")
	v.SetDefault("store.timeout", time.Second)
	v.SetDefault("log.verbose", false)
	v.SetDefault("log.color", true)
	v.SetDefault("log.hide_time", false)
}

// Load reads cfgFile, if not empty, on top of the defaults. Environment variables such as
// DCKV_STORE_PATH override both.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", cfgFile)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	return &cfg, nil
}
