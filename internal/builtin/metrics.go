// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package builtin

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for built-in function calls, in the style of the ABAC engine's
// per-evaluation counters.
var (
	// callsTotal counts invocations of each built-in by name.
	callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scriptlang_builtin_calls_total",
		Help: "Total number of built-in function invocations by name",
	}, []string{"name"})

	// errorsTotal counts invocations of each built-in that returned an error.
	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scriptlang_builtin_errors_total",
		Help: "Total number of built-in function invocations that errored",
	}, []string{"name"})
)
