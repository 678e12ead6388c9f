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

// Package config holds the YAML request/result records the accumulator
// CLI reads and writes, one struct per subcommand.
package config

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// KeyResult is what genkey writes: the generated factors and modulus as
// base-10 strings, plus the setup proof attesting n is a genuine product
// of two primes (hex-encoded salt, base-10 X, Y and Z).
type KeyResult struct {
	P         string `yaml:"p"`
	Q         string `yaml:"q"`
	N         string `yaml:"n"`
	ProofSalt string `yaml:"proof_salt"`
	ProofX    string `yaml:"proof_x"`
	ProofY    string `yaml:"proof_y"`
	ProofZ    string `yaml:"proof_z"`
}

// AccumConfig is accum's input: the key file to build against and the
// batch of elements to seed the accumulator with.
type AccumConfig struct {
	KeyFile  string   `yaml:"key_file"`
	Elements []string `yaml:"elements"`
}

// AccumResult is what accum writes: the accumulator's wire encoding.
type AccumResult struct {
	Accumulator string `yaml:"accumulator"`
}

// WitnessConfig is witness's input: the key and accumulator files plus
// the element to build a witness for, and whether it's expected to be a
// member or not.
type WitnessConfig struct {
	KeyFile         string `yaml:"key_file"`
	AccumulatorFile string `yaml:"accumulator_file"`
	Element         string `yaml:"element"`
	Member          bool   `yaml:"member"`
}

// WitnessResult is what witness writes: the witness's wire encoding.
type WitnessResult struct {
	Witness string `yaml:"witness"`
}

// ProveConfig is prove's input: the accumulator, witness, element and
// nonce to build a proof from.
type ProveConfig struct {
	AccumulatorFile string `yaml:"accumulator_file"`
	WitnessFile     string `yaml:"witness_file"`
	Element         string `yaml:"element"`
	Member          bool   `yaml:"member"`
	Nonce           string `yaml:"nonce"`
}

// ProveResult is what prove writes: the proof's wire encoding.
type ProveResult struct {
	Proof string `yaml:"proof"`
}

// VerifyConfig is verify's input: the accumulator, proof and nonce to
// verify a claim against.
type VerifyConfig struct {
	AccumulatorFile string `yaml:"accumulator_file"`
	ProofFile       string `yaml:"proof_file"`
	Member          bool   `yaml:"member"`
	Nonce           string `yaml:"nonce"`
}

// VerifyResult is what verify writes: whether the proof checked out.
type VerifyResult struct {
	Valid bool `yaml:"valid"`
}

// ReadYamlFile unmarshals the YAML file at filePath into v.
func ReadYamlFile(filePath string, v interface{}) error {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

// WriteYamlFile marshals v and writes it to filePath.
func WriteYamlFile(v interface{}, filePath string) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filePath, data, 0644)
}
