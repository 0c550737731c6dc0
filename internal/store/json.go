package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// loadJSON decodes key into v. A missing key leaves v untouched and is not
// an error, matching an empty browser storage slot.
func loadJSON(ctx context.Context, kv KV, profile, key string, v any) error {
	raw, err := kv.Get(ctx, profile, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

func saveJSON(ctx context.Context, kv KV, profile, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return kv.Put(ctx, profile, key, raw)
}
