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

package witness

import (
	"encoding/base64"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amis-tech/accumulator/accumulator"
	"github.com/amis-tech/accumulator/bigint"
	"github.com/amis-tech/accumulator/cmd/accumulator/config"
	"github.com/amis-tech/accumulator/key"
	"github.com/amis-tech/accumulator/witness"
)

var (
	configFile string
	outFile    string
)

var Cmd = &cobra.Command{
	Use:   "witness",
	Short: "Build a membership or non-membership witness",
	Long:  `Builds a witness for one element against a previously built accumulator.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initFlags(cmd); err != nil {
			log.Crit("Failed to init", "err", err)
		}

		c := &config.WitnessConfig{}
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

		accResult := &config.AccumResult{}
		if err := config.ReadYamlFile(c.AccumulatorFile, accResult); err != nil {
			log.Crit("Failed to read accumulator file", "accumulatorFile", c.AccumulatorFile, "err", err)
		}
		accBytes, err := base64.StdEncoding.DecodeString(accResult.Accumulator)
		if err != nil {
			log.Crit("Failed to decode accumulator", "err", err)
		}
		acc, err := accumulator.FromBytes(accBytes)
		if err != nil {
			log.Crit("Failed to parse accumulator", "err", err)
		}

		result := &config.WitnessResult{}
		if c.Member {
			w, err := witness.NewMembershipWithKey(sk, acc, []byte(c.Element))
			if err != nil {
				log.Crit("Failed to build membership witness", "err", err)
			}
			result.Witness = base64.StdEncoding.EncodeToString(w.ToBytes())
		} else {
			w, err := witness.New(acc, []byte(c.Element))
			if err != nil {
				log.Crit("Failed to build non-membership witness", "err", err)
			}
			result.Witness = base64.StdEncoding.EncodeToString(w.ToBytes())
		}

		if err := config.WriteYamlFile(result, outFile); err != nil {
			log.Crit("Failed to write witness file", "outFile", outFile, "err", err)
		}
		return nil
	},
}

func init() {
	Cmd.Flags().String("config", "", "witness config file path")
	Cmd.Flags().String("out", "witness.yaml", "output witness file path")
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
