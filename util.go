package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// parseSeeds converts a seed setting into floats. Viper hands us either a
// list (from a config file) or a single string like "800, 25, 3005" (from a
// flag or environment variable); both forms are accepted.
func parseSeeds(value interface{}) ([]float64, error) {
	var items []string

	switch v := value.(type) {
	case nil:
		return nil, fmt.Errorf("no seeds specified")
	case string:
		items = strings.Split(v, ",")
	case []string:
		items = v
	case []float64:
		return append([]float64(nil), v...), nil
	default:
		s, err := cast.ToSliceE(v)

		if err != nil {
			return nil, fmt.Errorf("cannot parse seeds %v: %w", value, err)
		}

		for _, item := range s {
			items = append(items, cast.ToString(item))
		}
	}

	// a single flag value may itself carry a comma list
	if len(items) == 1 && strings.Contains(items[0], ",") {
		items = strings.Split(items[0], ",")
	}

	seeds := make([]float64, 0, len(items))

	for _, item := range items {
		item = strings.TrimSpace(item)

		if len(item) == 0 {
			continue
		}

		f, err := cast.ToFloat64E(item)

		if err != nil {
			return nil, fmt.Errorf("cannot parse seed '%s' as float64", item)
		}

		seeds = append(seeds, f)
	}

	return seeds, nil
}
