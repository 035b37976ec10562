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
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Writer interface {
	io.Closer
	Write(output Output) error
}

func NewWriter(format string, out io.Writer) (Writer, error) {
	switch format {
	case OutputJSON:
		return &jsonWriter{enc: json.NewEncoder(out)}, nil
	case OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		return &yamlWriter{enc: enc}, nil
	}
	return nil, errors.Wrapf(ErrInvalidOutput, "'%s'", format)
}

// jsonWriter emits one JSON document per line.
type jsonWriter struct {
	enc *json.Encoder
}

func (w *jsonWriter) Write(output Output) error {
	return w.enc.Encode(output)
}

func (*jsonWriter) Close() error {
	return nil
}

// yamlWriter emits a stream of YAML documents separated by '---'.
type yamlWriter struct {
	enc *yaml.Encoder
}

func (w *yamlWriter) Write(output Output) error {
	return w.enc.Encode(output)
}

func (w *yamlWriter) Close() error {
	return w.enc.Close()
}
