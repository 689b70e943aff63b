package service

import (
	"context"

	"github.com/Skotchmaster/kitchenpos/internal/events"
	"github.com/Skotchmaster/kitchenpos/pkg/logging"
)

// publish is best effort: the state change is already committed.
func publish(ctx context.Context, p Publisher, ev events.Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, ev); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "type", ev.Type, "key", ev.Key, "error", err)
	}
}

func distinct(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func missing(want, got []uint) []uint {
	have := make(map[uint]struct{}, len(got))
	for _, id := range got {
		have[id] = struct{}{}
	}
	var out []uint
	for _, id := range want {
		if _, ok := have[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
