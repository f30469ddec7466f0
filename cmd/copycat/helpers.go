package main

import (
	"fmt"
	"strconv"
)

// parseID converts a CLI id argument to an entry id.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid entry id %q", raw)
	}
	return id, nil
}
