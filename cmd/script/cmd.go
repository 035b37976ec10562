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
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/streamnative/sandbox/cmd/flag"
)

var (
	configFile string
	inputFile  string
	listOps    bool

	v = viper.New()

	Cmd = &cobra.Command{
		Use:   "script",
		Short: "Run a script against an array box and a map box",
		Long: `Read one JSON request per line, e.g. {"op":"array.append_integer","int":3},
apply it to a fresh array box and map box, and print one result per request.`,
		Args: cobra.NoArgs,
		RunE: exec,
	}
)

func init() {
	flag.ConfigFile(Cmd, &configFile)
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Script file, defaults to STDIN")
	Cmd.Flags().BoolVar(&listOps, "list", false, "List the supported operations and exit")
	Cmd.Flags().StringP("output", "o", OutputJSON, "Output format: json or yaml")
	Cmd.Flags().Uint64("seed", 0, "Seed for array.randomize, 0 picks a random seed")

	_ = v.BindPFlag("output", Cmd.Flags().Lookup("output"))
	_ = v.BindPFlag("seed", Cmd.Flags().Lookup("seed"))
	v.SetEnvPrefix("sandbox")
	v.AutomaticEnv()
}

func exec(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if listOps {
		for _, op := range Operations() {
			_, _ = fmt.Fprintln(out, op)
		}
		return nil
	}

	conf, err := LoadConfig(v, configFile)
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer closeInput()

	return run(conf, in, out)
}

func run(conf Config, in io.Reader, out io.Writer) (err error) {
	w, err := NewWriter(conf.Output, out)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, w.Close())
	}()

	slog.Debug(
		"Starting script",
		slog.Int("integers", len(conf.Integers)),
		slog.Int("strings", len(conf.Strings)),
		slog.Int("words", len(conf.Words)),
		slog.String("output", conf.Output),
	)
	return NewSandbox(conf).Run(in, w)
}

func openInput(cmd *cobra.Command) (io.Reader, func(), error) {
	if inputFile == "" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(inputFile)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open script %s", inputFile)
	}
	return f, func() { _ = f.Close() }, nil
}
