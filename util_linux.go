package main

import (
	"fmt"
	"os"
	"syscall"
)

// parseOpenFlags maps output.flags names onto open(2) flags for the export
// file. O_DIRECT is not offered: the csv writer issues unaligned writes.
func parseOpenFlags(flags []string) (int, error) {
	openFlags := 0

	for _, flag := range flags {
		switch flag {
		case "o_sync", "O_SYNC", "sync", "SYNC":
			openFlags |= os.O_SYNC
		case "o_dsync", "O_DSYNC", "dsync", "DSYNC":
			openFlags |= syscall.O_DSYNC
		default:
			return 0, fmt.Errorf("unknown open flag '%s'", flag)
		}
	}

	return openFlags, nil
}
