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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	configFile, inputFile, listOps = "", "", false

	out := &bytes.Buffer{}
	Cmd.SetOut(out)
	Cmd.SetIn(strings.NewReader(stdin))
	Cmd.SetArgs(args)
	err := Cmd.Execute()
	return out.String(), err
}

func TestCmdList(t *testing.T) {
	out, err := execute(t, "", "--list")
	require.NoError(t, err)
	assert.Equal(t, Operations(), strings.Split(strings.TrimSpace(out), "\n"))
}

func TestCmdStdin(t *testing.T) {
	out, err := execute(t, `{"op":"map.add_string","str":"abc"}
{"op":"map.sorted_values"}
`)
	require.NoError(t, err)
	assert.Equal(t, `{"op":"map.add_string","result":null}
{"op":"map.sorted_values","result":["abc"]}
`, out)
}

func TestCmdInputAndConfigFiles(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "conf.yaml")
	input := filepath.Join(dir, "script.jsonl")
	require.NoError(t, os.WriteFile(conf, []byte("integers: [1, 2]\n"), 0o600))
	require.NoError(t, os.WriteFile(input, []byte(`{"op":"array.copy_integers"}`+"\n"), 0o600))

	out, err := execute(t, "", "-f", conf, "-i", input, "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, `{"op":"array.copy_integers","result":[1,2]}`+"\n", out)
}

func TestCmdMissingInput(t *testing.T) {
	_, err := execute(t, "", "-i", filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.Error(t, err)
}
