//go:build !linux

package main

import (
	"fmt"
	"os"
)

func parseOpenFlags(flags []string) (int, error) {
	openFlags := 0

	for _, flag := range flags {
		switch flag {
		case "o_sync", "O_SYNC", "sync", "SYNC":
			openFlags |= os.O_SYNC
		default:
			return 0, fmt.Errorf("unknown open flag '%s'", flag)
		}
	}

	return openFlags, nil
}
