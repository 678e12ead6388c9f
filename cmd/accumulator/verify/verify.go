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

package verify

import (
	"encoding/base64"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amis-tech/accumulator/accumulator"
	"github.com/amis-tech/accumulator/cmd/accumulator/config"
	"github.com/amis-tech/accumulator/proof"
)

var (
	configFile string
	outFile    string
)

var Cmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a membership or non-membership proof",
	Long:  `Verifies a previously built proof against an accumulator's current value and a nonce.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initFlags(cmd); err != nil {
			log.Crit("Failed to init", "err", err)
		}

		c := &config.VerifyConfig{}
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

		proofResult := &config.ProveResult{}
		if err := config.ReadYamlFile(c.ProofFile, proofResult); err != nil {
			log.Crit("Failed to read proof file", "proofFile", c.ProofFile, "err", err)
		}
		proofBytes, err := base64.StdEncoding.DecodeString(proofResult.Proof)
		if err != nil {
			log.Crit("Failed to decode proof", "err", err)
		}

		nonce := []byte(c.Nonce)
		var valid bool
		if c.Member {
			p, err := proof.MembershipFromBytes(proofBytes)
			if err != nil {
				log.Crit("Failed to parse membership proof", "err", err)
			}
			valid = p.Verify(acc, nonce)
		} else {
			p, err := proof.NonMembershipFromBytes(proofBytes)
			if err != nil {
				log.Crit("Failed to parse non-membership proof", "err", err)
			}
			valid = p.Verify(acc, nonce)
		}

		result := &config.VerifyResult{Valid: valid}
		if err := config.WriteYamlFile(result, outFile); err != nil {
			log.Crit("Failed to write verify result file", "outFile", outFile, "err", err)
		}
		return nil
	},
}

func init() {
	Cmd.Flags().String("config", "", "verify config file path")
	Cmd.Flags().String("out", "verify.yaml", "output verify result file path")
}

func initFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	configFile = viper.GetString("config")
	outFile = viper.GetString("out")
	return nil
}
