package main

import (
	"context"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"itamaraca/sequence"
)

type RunnerConfig struct {
	Count    int  // samples to generate
	Preview  int  // samples mirrored to the console
	Progress bool // draw a progress bar on stderr
}

// Runner drains a generator into an exporter and reporter.
type Runner struct {
	*zap.SugaredLogger
	config   *RunnerConfig
	seq      *sequence.ItaSequence
	exporter *Exporter
	reporter *Reporter
	console  io.Writer
}

func NewRunner(seq *sequence.ItaSequence, exporter *Exporter, reporter *Reporter, console io.Writer, config *RunnerConfig) *Runner {
	return &Runner{
		SugaredLogger: Logger("runner"),
		config:        config,
		seq:           seq,
		exporter:      exporter,
		reporter:      reporter,
		console:       console,
	}
}

// Run generates config.Count samples. It returns the number of samples
// written; when ctx is cancelled it stops early with ctx.Err().
func (r *Runner) Run(ctx context.Context) (n int, e error) {
	r.Infof("running: %d samples", r.config.Count)

	var bar *progressbar.ProgressBar
	if r.config.Progress {
		bar = progressbar.Default(int64(r.config.Count), "generating")
		defer func() {
			_ = bar.Finish()
		}()
	}

	for n = 0; n < r.config.Count; n++ {
		select {
		case <-ctx.Done():
			r.Infof("stopping after %d samples", n)
			return n, ctx.Err()

		default:
		}

		v := r.seq.Next()

		if e = r.exporter.Write(n, v); e != nil {
			r.Errorf("write: %s", e)
			return
		}

		r.reporter.CaptureSample(v)

		if n < r.config.Preview {
			fmt.Fprintf(r.console, "Sample %d: %.4f\n", n+1, v)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return n, nil
}
