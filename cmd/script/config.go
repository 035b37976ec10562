// Copyright 2026 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package script

import (
	"math"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var (
	ErrInvalidOutput  = errors.New("invalid output format")
	ErrInvalidInteger = errors.New("invalid initial integer")
)

// Config describes the initial content of the boxes a script runs against.
type Config struct {
	// Seed for the random source. Zero picks a random seed.
	Seed   uint64 `mapstructure:"seed"`
	Output string `mapstructure:"output"`

	Integers []float64 `mapstructure:"integers"`
	Strings  []string  `mapstructure:"strings"`
	// Words are added to the map box one at a time, keyed by their reversal.
	Words []string `mapstructure:"words"`
}

func NewConfig() Config {
	return Config{
		Seed:     0,
		Output:   OutputJSON,
		Integers: []float64{},
		Strings:  []string{},
		Words:    []string{},
	}
}

func (c *Config) Validate() error {
	var err error
	if c.Output != OutputJSON && c.Output != OutputYAML {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidOutput, "'%s', expected %s or %s", c.Output, OutputJSON, OutputYAML))
	}
	for i, v := range c.Integers {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidInteger, "integers[%d] is %v", i, v))
		}
	}
	return err
}

func setDefaults(v *viper.Viper) {
	d := NewConfig()
	v.SetDefault("seed", d.Seed)
	v.SetDefault("output", d.Output)
	v.SetDefault("integers", d.Integers)
	v.SetDefault("strings", d.Strings)
	v.SetDefault("words", d.Words)
}

// LoadConfig reads the optional config file into a Config. Values bound to
// flags on v take precedence over the file.
func LoadConfig(v *viper.Viper, configFile string) (Config, error) {
	conf := NewConfig()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return conf, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}

	if err := v.Unmarshal(&conf, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return conf, errors.Wrap(err, "failed to load script config")
	}

	if err := conf.Validate(); err != nil {
		return conf, err
	}
	return conf, nil
}
