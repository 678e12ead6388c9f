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

// Package logger holds the process-wide structured logger every package
// in this module logs through, defaulting to discard so importing this
// module as a library produces no output unless a caller opts in.
package logger

import "github.com/getamis/sirius/log"

var logger = log.Discard()

// Logger returns the process-wide logger.
func Logger() log.Logger {
	return logger
}

// SetLogger replaces the process-wide logger, e.g. with
// github.com/getamis/sirius/log.New() wired to stdout from cmd/accumulator.
func SetLogger(l log.Logger) {
	logger = l
}

// Component returns a child logger tagged with "component", so log lines
// from key and accumulator can be told apart without each
// package hand-rolling its own prefix.
func Component(name string) log.Logger {
	return logger.New("component", name)
}
