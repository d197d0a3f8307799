// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package config holds the explicit scan configuration passed into the
// pipeline. Defaults can be overlaid from an optional YAML config file;
// command-line flags override both.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	serrors "github.com/NVIDIA/exesum/pkg/errors"
)

// Defaults for a scan when neither config file nor flags say otherwise.
const (
	DefaultAlgorithm      = "sha256"
	DefaultExeExtension   = ".exe"
	DefaultKnownExtension = ".txt"
	DefaultBlockSize      = 1 << 20 // 1MB
	DefaultWorkers        = 1
)

// Config is the complete configuration for a scan run.
// It replaces implicitly threaded global flags: the pipeline receives this
// struct at construction and nothing else.
type Config struct {
	// Root is the directory to scan. Set from the command line, never from
	// the config file.
	Root string `yaml:"-"`

	// Algorithm is the digest algorithm name.
	Algorithm string `yaml:"algorithm"`

	// Recursive enables traversal of descendant directories.
	Recursive bool `yaml:"recursive"`

	// Compare enables classification against known values.
	Compare bool `yaml:"compare"`

	// AbsolutePaths switches display paths from root-relative to absolute.
	AbsolutePaths bool `yaml:"absolutePaths"`

	// ExeExtension selects the executable files to hash.
	ExeExtension string `yaml:"exeExtension"`

	// KnownExtension selects the known-value text sources.
	KnownExtension string `yaml:"knownExtension"`

	// BlockSize is the read buffer size in bytes for hashing.
	BlockSize int `yaml:"blockSize"`

	// Workers is the number of files hashed in parallel. 1 means
	// sequential processing.
	Workers int `yaml:"workers"`

	// Export paths; empty means the export is skipped. Set from the
	// command line only.
	CSVPath  string `yaml:"-"`
	JSONPath string `yaml:"-"`
	YAMLPath string `yaml:"-"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Algorithm:      DefaultAlgorithm,
		ExeExtension:   DefaultExeExtension,
		KnownExtension: DefaultKnownExtension,
		BlockSize:      DefaultBlockSize,
		Workers:        DefaultWorkers,
	}
}

// Load returns the defaults overlaid with values from the YAML file at
// path. An empty path returns plain defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrCodeInvalidRequest, "failed to read config file "+path, err)
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, serrors.Wrap(serrors.ErrCodeInvalidRequest, "failed to parse config file "+path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values no scan can run with.
// Root existence is checked by the pipeline, not here, so that a missing
// directory surfaces as DIRECTORY_NOT_FOUND rather than a config error.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return serrors.New(serrors.ErrCodeInvalidRequest, "scan root is required")
	}
	if strings.TrimSpace(c.Algorithm) == "" {
		return serrors.New(serrors.ErrCodeInvalidRequest, "algorithm is required")
	}
	if c.BlockSize <= 0 {
		return serrors.New(serrors.ErrCodeInvalidRequest, fmt.Sprintf("block size must be positive, got %d", c.BlockSize))
	}
	if c.Workers < 1 {
		return serrors.New(serrors.ErrCodeInvalidRequest, fmt.Sprintf("workers must be at least 1, got %d", c.Workers))
	}
	if !strings.HasPrefix(c.ExeExtension, ".") {
		return serrors.New(serrors.ErrCodeInvalidRequest, "exe extension must start with a dot: "+c.ExeExtension)
	}
	if !strings.HasPrefix(c.KnownExtension, ".") {
		return serrors.New(serrors.ErrCodeInvalidRequest, "known extension must start with a dot: "+c.KnownExtension)
	}
	if strings.EqualFold(c.ExeExtension, c.KnownExtension) {
		return serrors.New(serrors.ErrCodeInvalidRequest, "exe and known extensions must differ")
	}
	return nil
}

// NormalizeRoot expands a leading ~ and resolves Root to an absolute path.
func (c *Config) NormalizeRoot() error {
	root := c.Root
	if root == "~" || strings.HasPrefix(root, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return serrors.Wrap(serrors.ErrCodeInvalidRequest, "failed to resolve home directory", err)
		}
		root = filepath.Join(home, strings.TrimPrefix(root, "~"))
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return serrors.Wrap(serrors.ErrCodeInvalidRequest, "failed to resolve root path "+root, err)
	}

	c.Root = abs
	return nil
}
