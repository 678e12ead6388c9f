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

package prove

import (
	"encoding/base64"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amis-tech/accumulator/accumulator"
	"github.com/amis-tech/accumulator/cmd/accumulator/config"
	"github.com/amis-tech/accumulator/proof"
	"github.com/amis-tech/accumulator/witness"
)

var (
	configFile string
	outFile    string
)

var Cmd = &cobra.Command{
	Use:   "prove",
	Short: "Build a membership or non-membership proof",
	Long:  `Builds a PoKE2-based proof binding a witness to an accumulator's current value and a nonce.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initFlags(cmd); err != nil {
			log.Crit("Failed to init", "err", err)
		}

		c := &config.ProveConfig{}
		if err := config.ReadYamlFile(configFile, c); err != nil {
			log.Crit("Failed to read config file", "configFile", configFile, "err", err)
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

		witnessResult := &config.WitnessResult{}
		if err := config.ReadYamlFile(c.WitnessFile, witnessResult); err != nil {
			log.Crit("Failed to read witness file", "witnessFile", c.WitnessFile, "err", err)
		}
		wBytes, err := base64.StdEncoding.DecodeString(witnessResult.Witness)
		if err != nil {
			log.Crit("Failed to decode witness", "err", err)
		}

		nonce := []byte(c.Nonce)
		result := &config.ProveResult{}
		if c.Member {
			w, err := witness.MembershipFromBytes(wBytes)
			if err != nil {
				log.Crit("Failed to parse membership witness", "err", err)
			}
			p := proof.NewMembership(w, acc, nonce)
			result.Proof = base64.StdEncoding.EncodeToString(p.ToBytes())
		} else {
			w, err := witness.FromBytes(wBytes)
			if err != nil {
				log.Crit("Failed to parse non-membership witness", "err", err)
			}
			p := proof.NewNonMembership(w, acc, nonce)
			result.Proof = base64.StdEncoding.EncodeToString(p.ToBytes())
		}

		if err := config.WriteYamlFile(result, outFile); err != nil {
			log.Crit("Failed to write proof file", "outFile", outFile, "err", err)
		}
		return nil
	},
}

func init() {
	Cmd.Flags().String("config", "", "prove config file path")
	Cmd.Flags().String("out", "proof.yaml", "output proof file path")
}

func initFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	configFile = viper.GetString("config")
	outFile = viper.GetString("out")
	return nil
}
