// Package catalog provides read access to the institution catalog.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrUnknownDriver is returned by Open for an unsupported catalog driver.
var ErrUnknownDriver = errors.New("unknown catalog driver")

// Catalog fetches match candidates.
type Catalog interface {
	// Candidates returns distinct institutions offering at least one program
	// under the given prefixes and reporting both earnings and debt. Errors
	// mean the catalog itself could not be queried.
	Candidates(ctx context.Context, programPrefixes []string) (*Institutions, error)
}

// Config selects and configures a catalog backend.
type Config struct {
	Driver   string
	File     string
	DSN      string
	MaxConns int
}

// Open builds the catalog described by cfg. The returned function releases
// its resources.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (Catalog, func(), error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "file":
		if strings.TrimSpace(cfg.File) == "" {
			return nil, nil, errors.New("catalog file is required for the file driver")
		}
		mem, err := LoadFile(cfg.File, logger)
		if err != nil {
			return nil, nil, err
		}
		return mem, func() {}, nil
	case "postgres":
		pg, err := NewPostgres(ctx, cfg.DSN, cfg.MaxConns, logger)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.Driver)
	}
}

func prefixSet(prefixes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(prefixes))
	for _, prefix := range prefixes {
		prefix = strings.TrimSpace(prefix)
		if prefix != "" {
			set[prefix] = struct{}{}
		}
	}
	return set
}
