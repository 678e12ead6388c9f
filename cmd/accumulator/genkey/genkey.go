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

package genkey

import (
	"encoding/hex"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amis-tech/accumulator/cmd/accumulator/config"
	"github.com/amis-tech/accumulator/key"
)

var (
	bits    int
	outFile string
)

var Cmd = &cobra.Command{
	Use:   "genkey",
	Short: "Generate a secret key",
	Long:  `Samples two safe primes p, q and writes n = pq together with a setup proof of factorization.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initFlags(cmd); err != nil {
			log.Crit("Failed to init", "err", err)
		}

		sk, err := key.Generate(bits)
		if err != nil {
			log.Crit("Failed to generate key", "err", err)
		}
		proof, err := key.Prove(sk)
		if err != nil {
			log.Crit("Failed to build setup proof", "err", err)
		}
		p, q := sk.Factors()

		result := &config.KeyResult{
			P:         p.String(),
			Q:         q.String(),
			N:         sk.Modulus().String(),
			ProofSalt: hex.EncodeToString(proof.Salt),
			ProofX:    proof.X.String(),
			ProofY:    proof.Y.String(),
			ProofZ:    proof.Z.String(),
		}
		if err := config.WriteYamlFile(result, outFile); err != nil {
			log.Crit("Failed to write key file", "outFile", outFile, "err", err)
		}
		return nil
	},
}

func init() {
	Cmd.Flags().Int("bits", key.MinPrimeBits, "bit length of each safe prime factor")
	Cmd.Flags().String("out", "key.yaml", "output key file path")
}

func initFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	bits = viper.GetInt("bits")
	outFile = viper.GetString("out")
	return nil
}
