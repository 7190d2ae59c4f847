// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// The global config file
	configFile string
)

// SetGlobalConfig sets the global config filename
func SetGlobalConfig(filename string) {
	configFile = filename
}

// LoadGlobal loads the config file that has been set by SetGlobalConfig
func LoadGlobal() (*Config, error) {
	return Load(configFile)
}

// Config holds the options of the path-edge index and graph data structures.
// If some field is not defined in the config file, it keeps its NewDefault value (zero, except LogLevel,
// which defaults to InfoLevel).
// private fields are not populated from a yaml file, but computed after initialization
type Config struct {
	Options `yaml:",inline"`

	sourceFile string
}

// Options groups the tunable settings of the data structures.
type Options struct {
	// FastMerge, when true, makes each path-edge index maintain a redundant forward representation so that
	// reachability queries by entry fact are constant-time. This trades roughly 2x memory for query speed and
	// is meant for merge-heavy solver workloads.
	FastMerge bool `yaml:"fast-merge"`

	// NormalOutDegree is the "normal" number of out edges for a node of a sparse numbered graph. Edge managers
	// eagerly choose the simple row encoding for the first NormalOutDegree node numbers. If <= 0, every row
	// uses the default two-level encoding.
	NormalOutDegree int `yaml:"normal-out-degree"`

	// AuditDataStructures enables expensive internal consistency checking: the path-edge indexes cross-check
	// their fast and slow reachability paths, and the edge managers verify their symmetry invariants after
	// every mutation. A detected breach panics, as it indicates a bug in the caller or in this module.
	AuditDataStructures bool `yaml:"audit-data-structures"`

	// Loglevel controls the verbosity of the analyses
	LogLevel int `yaml:"log-level"`

	// Suppress warnings
	SilenceWarn bool `yaml:"silence-warn"`
}

// NewDefault returns an empty default config.
func NewDefault() *Config {
	return &Config{
		sourceFile: "",
		Options: Options{
			FastMerge:           false,
			NormalOutDegree:     0,
			AuditDataStructures: false,
			LogLevel:            int(InfoLevel),
			SilenceWarn:         false,
		},
	}
}

// Load reads a configuration from a file
func Load(filename string) (*Config, error) {
	cfg := NewDefault()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	if errYaml := yaml.Unmarshal(b, cfg); errYaml != nil {
		return nil, fmt.Errorf("could not unmarshal config file as yaml: %w", errYaml)
	}

	cfg.sourceFile = filename

	// If logLevel has not been specified (i.e. it is 0) set the default to Info
	if cfg.LogLevel == 0 {
		cfg.LogLevel = int(InfoLevel)
	}

	if cfg.NormalOutDegree < 0 {
		cfg.NormalOutDegree = 0
	}

	return cfg, nil
}

// SourceFile returns the file the config was loaded from, or "" for a default config.
func (c Config) SourceFile() string {
	return c.sourceFile
}

// Verbose returns true when the configuration requests debug or trace level logging
func (c Config) Verbose() bool {
	return c.LogLevel >= int(DebugLevel)
}
