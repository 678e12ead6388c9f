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

package accum

import (
	"encoding/base64"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amis-tech/accumulator/accumulator"
	"github.com/amis-tech/accumulator/bigint"
	"github.com/amis-tech/accumulator/cmd/accumulator/config"
	"github.com/amis-tech/accumulator/key"
)

var (
	configFile string
	outFile    string
)

var Cmd = &cobra.Command{
	Use:   "accum",
	Short: "Build an accumulator",
	Long:  `Builds a fresh accumulator over a batch of elements, using the secret key for the efficient exponentiation path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initFlags(cmd); err != nil {
			log.Crit("Failed to init", "err", err)
		}

		c := &config.AccumConfig{}
		if err := config.ReadYamlFile(configFile, c); err != nil {
			log.Crit("Failed to read config file", "configFile", configFile, "err", err)
		}
		keyResult := &config.KeyResult{}
		if err := config.ReadYamlFile(c.KeyFile, keyResult); err != nil {
			log.Crit("Failed to read key file", "keyFile", c.KeyFile, "err", err)
		}
		sk, err := secretKeyFromResult(keyResult)
		if err != nil {
			log.Crit("Failed to parse key file", "err", err)
		}

		elements := make([][]byte, len(c.Elements))
		for i, e := range c.Elements {
			elements[i] = []byte(e)
		}
		acc, err := accumulator.WithMembers(sk, elements)
		if err != nil {
			log.Crit("Failed to build accumulator", "err", err)
		}

		result := &config.AccumResult{
			Accumulator: base64.StdEncoding.EncodeToString(acc.ToBytes()),
		}
		if err := config.WriteYamlFile(result, outFile); err != nil {
			log.Crit("Failed to write accumulator file", "outFile", outFile, "err", err)
		}
		return nil
	},
}

func init() {
	Cmd.Flags().String("config", "", "accum config file path")
	Cmd.Flags().String("out", "accumulator.yaml", "output accumulator file path")
}

func initFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	configFile = viper.GetString("config")
	outFile = viper.GetString("out")
	return nil
}

func secretKeyFromResult(r *config.KeyResult) (*key.SecretKey, error) {
	p, err := bigint.FromString(r.P)
	if err != nil {
		return nil, err
	}
	q, err := bigint.FromString(r.Q)
	if err != nil {
		return nil, err
	}
	return key.FromFactors(p, q), nil
}
