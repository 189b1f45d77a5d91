// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package metrics provides Prometheus metrics for the playcore capability
// subsystem.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Verdict labels. Bounded set; anything else is recorded as "other" to keep
// cardinality fixed.
const (
	VerdictNoSupport      = "no_support"
	VerdictAssumedSupport = "assumed_support"
)

var (
	// CapabilityVerdictTotal counts negative and assumed capability check
	// verdicts, by check category and verdict.
	CapabilityVerdictTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playcore_capability_verdict_total",
		Help: "Total number of negative or assumed capability check verdicts, by category and verdict.",
	}, []string{"category", "verdict"})
)

// RecordCapabilityVerdict increments the verdict counter. Labels are
// normalized to bounded sets before use.
func RecordCapabilityVerdict(category, verdict string) {
	CapabilityVerdictTotal.WithLabelValues(normalizeCategory(category), normalizeVerdict(verdict)).Inc()
}

func normalizeVerdict(verdict string) string {
	switch verdict {
	case VerdictNoSupport, VerdictAssumedSupport:
		return verdict
	default:
		return "other"
	}
}

func normalizeCategory(category string) string {
	switch category {
	case "codec.mime", "codec.profileLevel",
		"size.vCaps", "size.support", "size.rotated",
		"sizeAndRate.vCaps", "sizeAndRate.support", "sizeAndRate.rotated",
		"sampleRate.aCaps", "sampleRate.support",
		"channelCount.aCaps", "channelCount.support":
		return category
	default:
		return "other"
	}
}
