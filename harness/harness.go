// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package harness is the Test Harness: it enumerates every registered
// algorithm, drives each of its declared vectors through a fresh
// instance, and reports pass/fail counts plus a first-mismatch hex diff
// per algorithm — the same "load, iterate, compare, report" shape the
// teacher's own contract_test.go files repeat per precompile, generalized
// here to run over every descriptor in a registry rather than one
// package's fixed vector table.
package harness

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/internal/obs"
	"github.com/cryptoframe/algokit/metadata"
	"go.uber.org/zap"
)

// customizationSetter mirrors the structural interface the tuplehash
// adapter declares (tuplehash.CustomizationSetter) without importing
// that package — Instance polymorphism is structural
// throughout this repository, so a type assertion against a
// locally-declared method set works exactly the same as one against the
// adapter's own interface.
type customizationSetter interface {
	SetCustomization(s []byte) error
}

// Mismatch records one vector whose actual output didn't match expected.
type Mismatch struct {
	VectorText string
	Expected   []byte
	Actual     []byte
	Err        error
}

// AlgorithmReport is one descriptor's run across all its declared
// vectors.
type AlgorithmReport struct {
	Name      string
	Category  metadata.Category
	Total     int
	Passed    int
	Mismatches []Mismatch
}

// Summary is the harness's full output across every descriptor it ran.
type Summary struct {
	Reports  []AlgorithmReport
	Duration time.Duration
}

// TotalVectors sums Total across every report.
func (s Summary) TotalVectors() int {
	n := 0
	for _, r := range s.Reports {
		n += r.Total
	}
	return n
}

// TotalPassed sums Passed across every report.
func (s Summary) TotalPassed() int {
	n := 0
	for _, r := range s.Reports {
		n += r.Passed
	}
	return n
}

// Run drives every declared vector of every descriptor in descriptors
// and returns a Summary. Determinism: each vector gets its own fresh
// Instance, so results are independent of iteration order or of running
// descriptors concurrently (callers may safely fan Run's work out across
// goroutines, one per descriptor — no instance is ever shared).
func Run(descriptors []*algorithm.Descriptor) Summary {
	start := time.Now()
	reports := make([]AlgorithmReport, 0, len(descriptors))

	for _, d := range descriptors {
		reports = append(reports, runOne(d))
	}

	return Summary{Reports: reports, Duration: time.Since(start)}
}

func runOne(d *algorithm.Descriptor) AlgorithmReport {
	report := AlgorithmReport{Name: d.Name, Category: d.Category, Total: len(d.Tests)}

	for _, tc := range d.Tests {
		actual, err := runVector(d, tc)
		if err != nil {
			report.Mismatches = append(report.Mismatches, Mismatch{VectorText: tc.Text, Expected: tc.Expected, Err: err})
			continue
		}
		if bytes.Equal(actual, tc.Expected) {
			report.Passed++
			continue
		}
		report.Mismatches = append(report.Mismatches, Mismatch{VectorText: tc.Text, Expected: tc.Expected, Actual: actual})
	}

	logVectorResult(d, report)
	return report
}

func runVector(d *algorithm.Descriptor, tc metadata.TestCase) ([]byte, error) {
	inst, err := d.CreateInstance(false)
	if err != nil {
		return nil, fmt.Errorf("harness: create instance for %s: %w", d.Name, err)
	}

	if tc.Key != nil {
		if kt, ok := inst.(algorithm.Keyed); ok {
			if err := kt.SetKey(tc.Key); err != nil {
				return nil, fmt.Errorf("harness: %s SetKey: %w", d.Name, err)
			}
		}
	}
	if iv := firstNonNil(tc.IV, tc.Nonce); iv != nil {
		if ivt, ok := inst.(algorithm.IVSetter); ok {
			if err := ivt.SetIV(iv); err != nil {
				return nil, fmt.Errorf("harness: %s SetIV: %w", d.Name, err)
			}
		}
	}
	if tc.AAD != nil {
		if at, ok := inst.(algorithm.AADSetter); ok {
			if err := at.SetAAD(tc.AAD); err != nil {
				return nil, fmt.Errorf("harness: %s SetAAD: %w", d.Name, err)
			}
		}
	}
	if tc.OutputSize > 0 {
		if ot, ok := inst.(algorithm.OutputSizer); ok {
			if err := ot.SetOutputSize(tc.OutputSize); err != nil {
				return nil, fmt.Errorf("harness: %s SetOutputSize: %w", d.Name, err)
			}
		}
	}
	if tc.Customization != nil {
		if ct, ok := inst.(customizationSetter); ok {
			if err := ct.SetCustomization(tc.Customization); err != nil {
				return nil, fmt.Errorf("harness: %s SetCustomization: %w", d.Name, err)
			}
		}
	}

	if len(tc.Tuples) > 0 {
		for _, elem := range tc.Tuples {
			if err := inst.Feed(elem); err != nil {
				return nil, fmt.Errorf("harness: %s Feed tuple element: %w", d.Name, err)
			}
		}
	} else if err := inst.Feed(tc.Input); err != nil {
		return nil, fmt.Errorf("harness: %s Feed: %w", d.Name, err)
	}

	return inst.Result()
}

func firstNonNil(a, b []byte) []byte {
	if a != nil {
		return a
	}
	return b
}

func logVectorResult(d *algorithm.Descriptor, report AlgorithmReport) {
	if len(report.Mismatches) == 0 {
		obs.L().Debug("vectors passed", zap.String("algorithm", d.Name), zap.Int("count", report.Passed))
		return
	}
	first := report.Mismatches[0]
	obs.L().Warn("vector mismatch",
		zap.String("algorithm", d.Name),
		zap.Int("passed", report.Passed),
		zap.Int("total", report.Total),
		zap.String("first_expected_hex", hex.EncodeToString(first.Expected)),
		zap.String("first_actual_hex", hex.EncodeToString(first.Actual)),
	)
}
