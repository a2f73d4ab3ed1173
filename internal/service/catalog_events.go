package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/corplearn/training-admin-api/internal/dto"
)

// CatalogEvents fans catalog change notifications out to watchers through
// Redis pub/sub, one channel per company. This stands in for the original
// store's live collection subscriptions.
type CatalogEvents struct {
	rdb *redis.Client
}

// NewCatalogEvents constructs the broadcaster.
func NewCatalogEvents(rdb *redis.Client) *CatalogEvents {
	return &CatalogEvents{rdb: rdb}
}

func catalogChannel(companyCode string) string {
	return "catalog:" + companyCode
}

// Publish sends one event to the company's channel.
func (e *CatalogEvents) Publish(ctx context.Context, companyCode string, event dto.CatalogEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal catalog event: %w", err)
	}
	if err := e.rdb.Publish(ctx, catalogChannel(companyCode), payload).Err(); err != nil {
		return fmt.Errorf("publish catalog event: %w", err)
	}
	return nil
}

// Subscribe returns a channel of events for the company plus a cancel
// function. The channel closes when the context ends or cancel is called.
func (e *CatalogEvents) Subscribe(ctx context.Context, companyCode string) (<-chan dto.CatalogEvent, func()) {
	sub := e.rdb.Subscribe(ctx, catalogChannel(companyCode))
	out := make(chan dto.CatalogEvent)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var event dto.CatalogEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() { _ = sub.Close() }
	return out, cancel
}
