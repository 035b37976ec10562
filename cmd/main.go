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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/streamnative/sandbox/cmd/flag"
	"github.com/streamnative/sandbox/cmd/script"
	"github.com/streamnative/sandbox/common/logging"
)

var (
	logLevelStr string
	rootCmd     = &cobra.Command{
		Use:               "sandbox",
		Short:             "Array and map sandboxes",
		Long:              `Drive the array box and the map box from scripts`,
		PersistentPreRunE: configureLogging,
		SilenceUsage:      true,
	}
)

func init() {
	flag.LogLevel(rootCmd, &logLevelStr)
	flag.LogJSON(rootCmd, &logging.LogJSON)

	rootCmd.AddCommand(script.Cmd)
}

func configureLogging(*cobra.Command, []string) error {
	level, err := logging.ParseLogLevel(logLevelStr)
	if err != nil {
		return err
	}
	logging.LogLevel = level
	logging.ConfigureLogger()
	return nil
}

func main() {
	if _, err := maxprocs.Set(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
