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

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

const DefaultLogLevel = slog.LevelInfo

var (
	// LogLevel Used for flags.
	LogLevel = DefaultLogLevel
	// LogJSON Used for flags.
	LogJSON bool

	ErrUnknownLevel = errors.New("unknown log level")
)

// ParseLogLevel will convert the slog level configuration to slog.Level values.
func ParseLogLevel(levelStr string) (slog.Level, error) {
	switch {
	case strings.EqualFold(levelStr, slog.LevelDebug.String()):
		return slog.LevelDebug, nil
	case strings.EqualFold(levelStr, slog.LevelInfo.String()):
		return slog.LevelInfo, nil
	case strings.EqualFold(levelStr, slog.LevelWarn.String()):
		return slog.LevelWarn, nil
	case strings.EqualFold(levelStr, slog.LevelError.String()):
		return slog.LevelError, nil
	}

	return DefaultLogLevel, errors.Wrapf(ErrUnknownLevel, "'%s', defaulting to %s", levelStr, DefaultLogLevel)
}

// ConfigureLogger installs the default slog logger. Logs go to stderr so
// that command output on stdout stays machine readable.
func ConfigureLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}

func NewLogger(out io.Writer) *slog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	//nolint
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	zerologLogger := zerolog.New(out).
		With().
		Timestamp().
		Stack().
		Logger()

	if !LogJSON {
		zerologLogger = zerologLogger.Output(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.StampMicro,
		})
	}

	return slog.New(
		slogzerolog.Option{
			Level:  LogLevel,
			Logger: &zerologLogger,
		}.NewZerologHandler(),
	)
}
