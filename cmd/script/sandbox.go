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
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/streamnative/sandbox/arraybox"
	"github.com/streamnative/sandbox/mapbox"
)

const maxLineSize = 1024 * 1024

// Sandbox holds the boxes a script operates on.
type Sandbox struct {
	Arrays *arraybox.Box
	Maps   *mapbox.Box

	log *slog.Logger
}

func NewSandbox(conf Config) *Sandbox {
	opts := []arraybox.Option{}
	if conf.Seed != 0 {
		opts = append(opts, arraybox.WithSeed(conf.Seed))
	}

	s := &Sandbox{
		Arrays: arraybox.New(opts...),
		Maps:   mapbox.New(),
		log: slog.With(
			slog.String("component", "script"),
		),
	}

	s.Arrays.ResetIntegers(conf.Integers)
	for _, str := range conf.Strings {
		s.Arrays.AppendString(str)
	}
	for _, w := range conf.Words {
		s.Maps.AddString(w)
	}
	return s
}

// Run reads one JSON request per line from in and writes one Output per
// request. Blank lines and lines starting with '#' are skipped. Malformed
// requests produce an error Output and do not stop the script.
func (s *Sandbox) Run(in io.Reader, w Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 || b[0] == '#' {
			continue
		}

		var output Output
		req, err := parseRequest(b)
		if err != nil {
			s.log.Warn(
				"Invalid request",
				slog.Int("line", line),
				slog.Any("error", err),
			)
			output = Output{Error: errors.Wrapf(err, "line %d", line).Error()}
		} else {
			output = s.Perform(req)
			s.log.Debug(
				"Performed request",
				slog.Int("line", line),
				slog.String("op", req.Op),
				slog.String("error", output.Error),
			)
		}

		if err := w.Write(output); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}

	return errors.Wrap(scanner.Err(), "failed to read script")
}

func parseRequest(b []byte) (*Request, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	req := &Request{}
	if err := dec.Decode(req); err != nil {
		return nil, err
	}
	if req.Op == "" {
		return nil, errors.New("missing op")
	}
	return req, nil
}
