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

package flag

import (
	"github.com/spf13/cobra"
)

func ConfigFile(cmd *cobra.Command, conf *string) {
	cmd.Flags().StringVarP(conf, "conf", "f", "", "Config file with the initial box content")
}

func LogLevel(cmd *cobra.Command, conf *string) {
	cmd.PersistentFlags().StringVarP(conf, "log-level", "l", "info", "Set logging level [debug|info|warn|error]")
}

func LogJSON(cmd *cobra.Command, conf *bool) {
	cmd.PersistentFlags().BoolVarP(conf, "log-json", "j", false, "Print logs in JSON format")
}
