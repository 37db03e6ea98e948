package main

import (
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type ExporterConfig struct {
	Precision   int  // decimals in the Value column
	SyncOnClose bool // fsync before closing
}

// Exporter writes generated samples as "Index,Value" csv rows.
type Exporter struct {
	*zap.SugaredLogger
	config *ExporterConfig
	name   string
	wr     SampleWriter
	csv    *csv.Writer
	rows   int
}

func NewExporter(ss SampleStore, name string, config *ExporterConfig) (*Exporter, error) {
	wr, err := ss.GetWriter(name)

	if err != nil {
		return nil, fmt.Errorf("failed creating sample log: %w", err)
	}

	e := &Exporter{
		SugaredLogger: Logger("exporter"),
		config:        config,
		name:          name,
		wr:            wr,
		csv:           csv.NewWriter(wr),
	}

	if err = e.csv.Write([]string{"Index", "Value"}); err != nil {
		_ = wr.Close() // attempt to close, but don't nuke existing error
		return nil, fmt.Errorf("failed writing to sample log: %w", err)
	}

	e.Infof("writing samples to %s", name)
	return e, nil
}

func (e *Exporter) Write(index int, value float64) error {
	err := e.csv.Write([]string{
		strconv.Itoa(index),
		strconv.FormatFloat(value, 'f', e.config.Precision, 64),
	})

	if err != nil {
		return fmt.Errorf("failed writing to sample log: %w", err)
	}

	e.rows++
	return nil
}

func (e *Exporter) Name() string {
	return e.name
}

// Rows is the number of samples written, not counting the header.
func (e *Exporter) Rows() int {
	return e.rows
}

func (e *Exporter) Close() (err error) {
	e.csv.Flush()
	err = e.csv.Error()

	if e.config.SyncOnClose && err == nil {
		err = e.wr.Sync()
	}

	err = multierr.Append(err, e.wr.Close())

	if err != nil {
		e.Errorf("closing %s: %s", e.name, err)
		return fmt.Errorf("failed closing sample log: %w", err)
	}

	e.Infof("wrote %d samples to %s", e.rows, e.name)
	return nil
}

// exportFileName returns file, or with runID set, file with a fresh ULID
// inserted before its extension: "results.csv" -> "results.<ulid>.csv".
func exportFileName(file string, runID bool) string {
	if !runID {
		return file
	}

	ext := filepath.Ext(file)
	return fmt.Sprintf("%s.%s%s", strings.TrimSuffix(file, ext), ulid.Make(), ext)
}
