package gamelog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Load reads and decodes the game log at path.
func Load(ctx context.Context, path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open game log: %w", err)
	}
	defer f.Close()

	log, err := Decode(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load game log %s: %w", path, err)
	}
	return log, nil
}

// Decode parses a game log from r, validates game identity, and orders
// games chronologically.
func Decode(ctx context.Context, r io.Reader) (*Log, error) {
	dec := json.NewDecoder(r)

	var log Log
	if err := dec.Decode(&log); err != nil {
		return nil, fmt.Errorf("invalid game log JSON: %w", err)
	}

	seen := make(map[string]struct{}, len(log.Games))
	for i, g := range log.Games {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if g.ID == "" {
			return nil, fmt.Errorf("game at index %d has no id", i)
		}
		if _, dup := seen[g.ID]; dup {
			return nil, fmt.Errorf("duplicate game id %q", g.ID)
		}
		seen[g.ID] = struct{}{}
	}

	sort.SliceStable(log.Games, func(i, j int) bool {
		return log.Games[i].Date.Before(log.Games[j].Date)
	})

	return &log, nil
}
