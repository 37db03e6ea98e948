package main

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

type ReporterConfig struct {
	Bound float64 // histogram range is [0, Bound)
	Bins  int
}

type Summary struct {
	Count    int
	Mean     float64
	StdDev   float64 // population
	Min      float64
	Max      float64
	Overflow int64 // samples at or above the bound
}

// Reporter accumulates samples for the end-of-run summary.
type Reporter struct {
	*zap.SugaredLogger
	config    *ReporterConfig
	histogram *Histogram
	values    stats.Float64Data
}

func NewReporter(config *ReporterConfig) (*Reporter, error) {
	if config.Bins < 1 {
		return nil, fmt.Errorf("histogram needs at least 1 bin, got %d", config.Bins)
	}

	return &Reporter{
		SugaredLogger: Logger("reporter"),
		config:        config,
		histogram:     NewHistogram(config.Bound, config.Bins),
	}, nil
}

func (r *Reporter) CaptureSample(v float64) {
	r.histogram.Add(v)
	r.values = append(r.values, v)
}

func (r *Reporter) Histogram() *Histogram {
	return r.histogram
}

func (r *Reporter) Summary() (s Summary, err error) {
	s.Count = len(r.values)
	s.Overflow = r.histogram.Overflow()

	if s.Count == 0 {
		return
	}

	if s.Mean, err = stats.Mean(r.values); err != nil {
		return s, fmt.Errorf("mean: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviationPopulation(r.values); err != nil {
		return s, fmt.Errorf("standard deviation: %w", err)
	}
	if s.Min, err = stats.Min(r.values); err != nil {
		return s, fmt.Errorf("min: %w", err)
	}
	if s.Max, err = stats.Max(r.values); err != nil {
		return s, fmt.Errorf("max: %w", err)
	}

	return
}

// Report prints the summary and the uniformity histogram.
func (r *Reporter) Report(w io.Writer) error {
	s, err := r.Summary()

	if err != nil {
		return err
	}

	fmt.Fprintf(w, "samples: %d\n", s.Count)

	if s.Count > 0 {
		fmt.Fprintf(w, "mean: %.2f\n", s.Mean)
		fmt.Fprintf(w, "standard deviation: %.2f\n", s.StdDev)
		fmt.Fprintf(w, "min: %.4f, max: %.4f\n", s.Min, s.Max)
	}

	if s.Overflow > 0 {
		fmt.Fprintf(w, "%d samples at or above bound %g\n", s.Overflow, r.config.Bound)
	}

	fmt.Fprintln(w, "distribution")
	fmt.Fprintln(w, r.histogram.Headers())
	fmt.Fprintln(w, r.histogram.String())
	return nil
}
