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

package collector

import (
	"github.com/NVIDIA/exesum/pkg/collector/exe"
	"github.com/NVIDIA/exesum/pkg/collector/known"
	"github.com/NVIDIA/exesum/pkg/config"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateExeCollector() RecordCollector
	CreateKnownValueCollector() TableCollector
}

// DefaultFactory creates collectors wired from the scan configuration.
type DefaultFactory struct {
	cfg *config.Config
}

// NewDefaultFactory creates a factory for the given configuration.
func NewDefaultFactory(cfg *config.Config) *DefaultFactory {
	if cfg == nil {
		cfg = config.Default()
	}
	return &DefaultFactory{cfg: cfg}
}

// CreateExeCollector creates the executable hashing collector.
func (f *DefaultFactory) CreateExeCollector() RecordCollector {
	return &exe.Collector{
		Root:          f.cfg.Root,
		Extension:     f.cfg.ExeExtension,
		Recursive:     f.cfg.Recursive,
		AbsolutePaths: f.cfg.AbsolutePaths,
		Algorithm:     f.cfg.Algorithm,
		BlockSize:     f.cfg.BlockSize,
		Workers:       f.cfg.Workers,
	}
}

// CreateKnownValueCollector creates the known-value table collector.
func (f *DefaultFactory) CreateKnownValueCollector() TableCollector {
	return &known.Collector{
		Root:      f.cfg.Root,
		Extension: f.cfg.KnownExtension,
		Recursive: f.cfg.Recursive,
	}
}
