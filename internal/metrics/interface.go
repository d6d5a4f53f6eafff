// Difference metrics between the original and the edited image
package metrics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"basic-image-editor/internal/core"
)

// Metric compares an edited image against its original
type Metric interface {
	// Calculate computes the metric value
	Calculate(original, processed core.Image) (float64, error)

	// GetName returns the metric name
	GetName() string
}

// Evaluator manages and calculates multiple metrics
type Evaluator struct {
	metrics map[string]Metric
}

// NewEvaluator creates an evaluator with the default metrics registered
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		metrics: make(map[string]Metric),
	}
	e.RegisterDefaultMetrics()
	return e
}

func (e *Evaluator) RegisterDefaultMetrics() {
	e.Register("mse", NewMSE())
	e.Register("psnr", NewPSNR())
	e.Register("changed", NewChangedPixels())
}

func (e *Evaluator) Register(name string, metric Metric) {
	e.metrics[name] = metric
}

// Calculate calculates a specific metric
func (e *Evaluator) Calculate(name string, original, processed core.Image) (float64, error) {
	metric, exists := e.metrics[name]
	if !exists {
		return 0, fmt.Errorf("metric not found: %s", name)
	}
	return metric.Calculate(original, processed)
}

// CalculateAll calculates all registered metrics, skipping those that fail
func (e *Evaluator) CalculateAll(original, processed core.Image) map[string]float64 {
	results := make(map[string]float64)
	for name, metric := range e.metrics {
		if value, err := metric.Calculate(original, processed); err == nil {
			results[name] = value
		}
	}
	return results
}

// Summary formats every metric as "name value" pairs in name order
func (e *Evaluator) Summary(original, processed core.Image) string {
	results := e.CalculateAll(original, processed)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		value := results[name]
		switch {
		case math.IsInf(value, 1):
			parts = append(parts, fmt.Sprintf("%s ∞", e.metrics[name].GetName()))
		case name == "changed":
			parts = append(parts, fmt.Sprintf("%s %.1f%%", e.metrics[name].GetName(), value*100))
		default:
			parts = append(parts, fmt.Sprintf("%s %.2f", e.metrics[name].GetName(), value))
		}
	}
	return strings.Join(parts, " | ")
}

func checkComparable(original, processed core.Image) error {
	if original.Validate() != nil || processed.Validate() != nil {
		return fmt.Errorf("empty images")
	}
	if !original.SameSize(processed) {
		return fmt.Errorf("image dimensions mismatch: %dx%d vs %dx%d",
			original.Width, original.Height, processed.Width, processed.Height)
	}
	return nil
}
