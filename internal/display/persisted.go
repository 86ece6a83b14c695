package display

import (
	"math"
	"strconv"

	"github.com/rs/zerolog/log"
)

// codec converts a persisted value to and from its stored string form.
// decode returns ok=false for values that should fall back to the default.
type codec[T any] struct {
	encode func(T) string
	decode func(string) (T, bool)
}

// persisted pairs an in-memory value with load-on-init and write-on-change.
// Writes are best-effort: a failed write keeps the in-memory value.
type persisted[T any] struct {
	key   string
	value T
	store Store
	codec codec[T]
}

// loadPersisted reads key from store, falling back to def when the key is
// missing, unreadable or fails to decode.
func loadPersisted[T any](store Store, key string, def T, c codec[T]) *persisted[T] {
	p := &persisted[T]{key: key, value: def, store: store, codec: c}
	if store == nil {
		return p
	}

	raw, ok, err := store.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to load setting, using default")
		return p
	}
	if !ok {
		return p
	}

	v, ok := c.decode(raw)
	if !ok {
		log.Warn().Str("key", key).Str("value", raw).Msg("Ignoring invalid stored setting")
		return p
	}
	p.value = v
	return p
}

func (p *persisted[T]) get() T {
	return p.value
}

// set updates the value and writes it through to the store.
func (p *persisted[T]) set(v T) {
	p.value = v
	if p.store == nil {
		return
	}
	if err := p.store.Set(p.key, p.codec.encode(v)); err != nil {
		log.Warn().Err(err).Str("key", p.key).Msg("Failed to persist setting")
	}
}

var stringCodec = codec[string]{
	encode: func(s string) string { return s },
	decode: func(s string) (string, bool) { return s, true },
}

// floatCodec clamps decoded values to [lo, hi].
func floatCodec(lo, hi float64) codec[float64] {
	return codec[float64]{
		encode: func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
		decode: func(s string) (float64, bool) {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil || math.IsNaN(f) {
				return 0, false
			}
			return clamp(f, lo, hi), true
		},
	}
}
