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

package scanner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Scan pipeline metrics
	scanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "exesum_scan_duration_seconds",
			Help:    "Time taken to complete a scan run",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	scanTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exesum_scan_total",
			Help: "Total number of scan attempts",
		},
		[]string{"status"}, // success or error
	)

	filesHashedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exesum_files_hashed_total",
			Help: "Total number of files processed by the hashing stage",
		},
		[]string{"status"}, // success or error
	)

	compareTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exesum_compare_results_total",
			Help: "Total comparison outcomes by status",
		},
		[]string{"status"}, // match, mismatch, unknown
	)

	scanRecordCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "exesum_scan_records",
			Help: "Number of records in the last completed scan",
		},
	)
)
