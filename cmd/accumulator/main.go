// Copyright © 2024 Accumulator Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
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
	"github.com/spf13/viper"

	"github.com/amis-tech/accumulator/cmd/accumulator/accum"
	"github.com/amis-tech/accumulator/cmd/accumulator/genkey"
	"github.com/amis-tech/accumulator/cmd/accumulator/prove"
	"github.com/amis-tech/accumulator/cmd/accumulator/verify"
	"github.com/amis-tech/accumulator/cmd/accumulator/witness"
)

var cmd = &cobra.Command{
	Use:   "accumulator",
	Short: `Operator CLI for the dynamic universal RSA accumulator`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	cmd.AddCommand(genkey.Cmd)
	cmd.AddCommand(accum.Cmd)
	cmd.AddCommand(witness.Cmd)
	cmd.AddCommand(prove.Cmd)
	cmd.AddCommand(verify.Cmd)
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
