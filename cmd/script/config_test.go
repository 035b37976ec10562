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
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "sandbox.yaml")
	require.NoError(t, os.WriteFile(name, []byte(content), 0o600))
	return name
}

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), conf.Seed)
	assert.Equal(t, OutputJSON, conf.Output)
	assert.Empty(t, conf.Integers)
	assert.Empty(t, conf.Strings)
	assert.Empty(t, conf.Words)
}

func TestLoadConfigFile(t *testing.T) {
	name := writeConfig(t, `
seed: 7
output: yaml
integers: [3, -1.5, 2]
strings: [hola, mundo]
words: "abc,xyz"
`)
	conf, err := LoadConfig(viper.New(), name)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), conf.Seed)
	assert.Equal(t, OutputYAML, conf.Output)
	assert.Equal(t, []float64{3, -1.5, 2}, conf.Integers)
	assert.Equal(t, []string{"hola", "mundo"}, conf.Strings)
	assert.Equal(t, []string{"abc", "xyz"}, conf.Words)
}

func TestLoadConfigOverride(t *testing.T) {
	name := writeConfig(t, "output: yaml\n")
	v := viper.New()
	v.Set("output", OutputJSON)

	conf, err := LoadConfig(v, name)
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, conf.Output)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	name := writeConfig(t, "output: xml\n")
	_, err := LoadConfig(viper.New(), name)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestValidate(t *testing.T) {
	conf := NewConfig()
	assert.NoError(t, conf.Validate())

	conf.Output = "csv"
	conf.Integers = []float64{1, math.NaN(), math.Inf(-1)}
	err := conf.Validate()
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.ErrorIs(t, err, ErrInvalidInteger)
	assert.Contains(t, err.Error(), "integers[1]")
	assert.Contains(t, err.Error(), "integers[2]")
}
