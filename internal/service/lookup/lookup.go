package lookup

import (
	"github.com/google/uuid"
)

// Resolve returns field of the row id points to. It falls back to placeholder
// when id is nil, the row is missing from m, or the field is empty.
func Resolve[V any](m map[uuid.UUID]V, id *uuid.UUID, field func(V) string, placeholder string) string {
	if id == nil {
		return placeholder
	}

	row, ok := m[*id]
	if !ok {
		return placeholder
	}

	if v := field(row); v != "" {
		return v
	}
	return placeholder
}

// IDs collects the distinct non-nil references of items in first-seen order.
func IDs[T any](items []T, ref func(T) *uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(items))
	out := make([]uuid.UUID, 0, len(items))

	for _, item := range items {
		id := ref(item)
		if id == nil {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		out = append(out, *id)
	}

	return out
}
