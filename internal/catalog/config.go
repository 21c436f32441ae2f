package catalog

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"

	"github.com/homier/dictionary"
)

const DefaultCapacity = 1000

type Config struct {
	Backend     dictionary.Kind
	Capacity    int
	CatalogPath string
}

// ConfigFromEnv reads PRODUCT_BACKEND, PRODUCT_CAPACITY and PRODUCT_CATALOG
// from the current environment.
func ConfigFromEnv() (Config, error) {
	// env caches the environment on first use.
	env.Load()

	kind, err := dictionary.ParseKind(env.Str("PRODUCT_BACKEND", dictionary.KindHashTable.String()))
	if err != nil {
		return Config{}, errors.Wrap(err, "PRODUCT_BACKEND")
	}

	capacity := DefaultCapacity
	if raw := env.Str("PRODUCT_CAPACITY"); raw != "" {
		capacity, err = strconv.Atoi(raw)
		if err != nil {
			return Config{}, errors.Wrap(err, "PRODUCT_CAPACITY")
		}
	}

	if capacity <= 0 {
		return Config{}, errors.Errorf("PRODUCT_CAPACITY must be positive, got %d", capacity)
	}

	return Config{
		Backend:     kind,
		Capacity:    capacity,
		CatalogPath: env.Str("PRODUCT_CATALOG"),
	}, nil
}
