package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	apperrors "github.com/trvanh/storefront/pkg/errors"
)

// LoadJSON loads the blob at key and decodes it into v. It returns false when
// no usable prior state exists: an absent key is silent, while an unreadable
// or corrupt blob is logged at warn and then treated as absent. It never
// fails; callers always proceed with v's zero value when false is returned.
func LoadJSON(ctx context.Context, a Adapter, key string, v any, l *slog.Logger) bool {
	data, err := a.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			l.WarnContext(ctx, "failed to load persisted state, starting empty",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		l.WarnContext(ctx, "discarding corrupt persisted state",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return false
	}

	return true
}

// SaveJSON encodes v and stores it at key. A write fault is logged at warn
// and swallowed: the caller's in-memory state is the source of truth and a
// storage fault must never block the shopping flow.
func SaveJSON(ctx context.Context, a Adapter, key string, v any, l *slog.Logger) {
	data, err := json.Marshal(v)
	if err != nil {
		l.WarnContext(ctx, "failed to encode state snapshot",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := a.Save(ctx, key, data); err != nil {
		l.WarnContext(ctx, "failed to persist state snapshot",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
