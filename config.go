package main

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"itamaraca/sequence"
)

type OutputConfig struct {
	Dir         string
	File        string
	RunID       bool
	Flags       []string
	SyncOnClose bool
}

type Config struct {
	Bound      float64
	Seeds      []float64
	Multiplier float64
	Count      int
	Preview    int
	Precision  int
	Bins       int
	Progress   bool
	Output     OutputConfig
	LogLevel   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("bound", 10000.0)
	v.SetDefault("seeds", []float64{800.0, 25.0, 3005.0})
	v.SetDefault("multiplier", sequence.DefaultMultiplier)
	v.SetDefault("count", 10000)
	v.SetDefault("preview", 5)
	v.SetDefault("precision", 4)
	v.SetDefault("bins", 40)
	v.SetDefault("progress", false)
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.file", "itamaraca_results.csv")
	v.SetDefault("output.run_id", false)
	v.SetDefault("output.flags", []string{})
	v.SetDefault("output.sync", "none")
	v.SetDefault("log.level", "info")
}

// loadConfig reads and checks driver settings. The seed count and the
// finiteness of bound, seeds and multiplier are left to the generator.
func loadConfig(v *viper.Viper) (*Config, error) {
	seeds, err := parseSeeds(v.Get("seeds"))

	if err != nil {
		return nil, err
	}

	c := &Config{
		Seeds: seeds,
		Output: OutputConfig{
			Dir:   v.GetString("output.dir"),
			File:  v.GetString("output.file"),
			Flags: v.GetStringSlice("output.flags"),
		},
		LogLevel: v.GetString("log.level"),
	}

	for key, dst := range map[string]*float64{
		"bound":      &c.Bound,
		"multiplier": &c.Multiplier,
	} {
		if *dst, err = cast.ToFloat64E(v.Get(key)); err != nil {
			return nil, fmt.Errorf("cannot parse '%s' as float64: %v", key, v.Get(key))
		}
	}

	for key, dst := range map[string]*int{
		"count":     &c.Count,
		"preview":   &c.Preview,
		"precision": &c.Precision,
		"bins":      &c.Bins,
	} {
		if *dst, err = cast.ToIntE(v.Get(key)); err != nil {
			return nil, fmt.Errorf("cannot parse '%s' as int: %v", key, v.Get(key))
		}
	}

	for key, dst := range map[string]*bool{
		"progress":      &c.Progress,
		"output.run_id": &c.Output.RunID,
	} {
		if *dst, err = cast.ToBoolE(v.Get(key)); err != nil {
			return nil, fmt.Errorf("cannot parse '%s' as bool: %v", key, v.Get(key))
		}
	}

	switch v.GetString("output.sync") {
	case "", "none":
	case "close":
		c.Output.SyncOnClose = true
	default:
		return nil, fmt.Errorf("unknown output.sync '%s'; use 'none' or 'close'", v.GetString("output.sync"))
	}

	if c.Count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", c.Count)
	}

	if c.Preview < 0 {
		return nil, fmt.Errorf("preview must not be negative, got %d", c.Preview)
	}

	if c.Precision < 0 || c.Precision > 17 {
		return nil, fmt.Errorf("precision must be between 0 and 17, got %d", c.Precision)
	}

	if c.Bins < 1 {
		return nil, fmt.Errorf("bins must be at least 1, got %d", c.Bins)
	}

	if len(c.Output.File) == 0 {
		return nil, fmt.Errorf("no output file specified; set 'output.file'")
	}

	return c, nil
}
