package service

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"mortgage-affordability/observability"
	"mortgage-affordability/repository"
	"mortgage-affordability/tables"
)

// Dependencies are shared by every service.
type Dependencies struct {
	Tables  tables.Set
	Cache   repository.CacheRepository
	Logger  *slog.Logger
	Metrics *observability.Metrics

	tablesKey string
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Logger == nil {
		d.Logger = observability.Discard()
	}
	if d.Cache == nil {
		d.Cache = repository.NewMemoryCache()
	}
	if d.tablesKey == "" {
		d.tablesKey = d.Tables.Fingerprint()
	}
	return d
}

// cacheKey combines the operation, the table fingerprint and a hash of the
// canonical JSON form of the input.
func cacheKey(op, tablesKey string, input any) (string, bool) {
	b, err := json.Marshal(input)
	if err != nil {
		return "", false
	}
	return op + ":" + tablesKey + ":" + strconv.FormatUint(xxhash.Sum64(b), 16), true
}

// cached serves a result from the cache or computes and stores it. Results
// are pure functions of their input, so a hit is always valid. Cache errors
// are logged and never fail the calculation.
func cached[T any](d Dependencies, op string, input any, compute func() (T, error)) (T, error) {
	key, keyed := cacheKey(op, d.tablesKey, input)
	if keyed {
		if raw, ok := d.Cache.Get(key); ok {
			var out T
			if err := json.Unmarshal([]byte(raw), &out); err == nil {
				d.Metrics.CacheLookup(op, true)
				d.Metrics.Calculation(op, nil)
				return out, nil
			}
			d.Logger.Warn("discarding unreadable cache entry", "operation", op, "key", key)
		}
		d.Metrics.CacheLookup(op, false)
	}

	out, err := compute()
	d.Metrics.Calculation(op, err)
	if err != nil {
		d.Logger.Debug("calculation rejected", "operation", op, "error", err)
		return out, err
	}

	if keyed {
		b, err := json.Marshal(out)
		if err == nil {
			err = d.Cache.Set(key, string(b))
		}
		if err != nil {
			d.Logger.Warn("failed to cache result", "operation", op, "error", err)
		}
	}
	return out, nil
}
