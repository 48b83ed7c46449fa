package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"psybench/internal/domain"
	"psybench/internal/inventory"
	"psybench/internal/llm"
)

func likertItems(n int) []inventory.Item {
	items := make([]inventory.Item, n)
	for i := range items {
		items[i] = inventory.Item{
			ID:        fmt.Sprintf("Q%d", i+1),
			Inventory: domain.InventoryBigFive,
			Type:      inventory.Likert5,
			Statement: "I enjoy testing things.",
			Facet:     "N1",
		}
	}
	return items
}

func TestRunSampling_AllFailuresYieldFallbackArrays(t *testing.T) {
	client := &llm.MockClient{Err: errors.New("transport down")}
	sampler := NewSampler(client, nil, 5, 5, 1.0)

	items := likertItems(12)
	items = append(items, inventory.Item{
		ID:        "FC1",
		Inventory: domain.InventoryDISC,
		Type:      inventory.ForcedChoicePair,
		Words:     [4]string{"Bold", "Warm", "Calm", "Exact"},
	})

	raw, logs, err := sampler.RunSampling(context.Background(), items, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(raw) != len(items) {
		t.Fatalf("expected %d entries, got %d", len(items), len(raw))
	}
	for _, item := range items {
		samples := raw[item.ID]
		if len(samples) != 5 {
			t.Fatalf("item %s: expected 5 samples, got %d", item.ID, len(samples))
		}
		want := FallbackLikert
		if item.Type == inventory.ForcedChoicePair {
			want = FallbackForcedChoice
		}
		for _, s := range samples {
			if s != want {
				t.Fatalf("item %s: expected fallback %v, got %v", item.ID, want, s)
			}
		}
	}
	if len(logs) != len(items) {
		t.Fatalf("expected %d log entries, got %d", len(items), len(logs))
	}
	for _, entry := range logs {
		if entry.Failures != 5 {
			t.Fatalf("item %s: expected 5 failures logged, got %d", entry.ItemID, entry.Failures)
		}
	}
}

func TestRunSampling_ParsesSuccessfulResponses(t *testing.T) {
	client := &llm.MockClient{Response: "My answer is 4."}
	sampler := NewSampler(client, nil, 3, 2, 1.0)

	raw, _, err := sampler.RunSampling(context.Background(), likertItems(5), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for id, samples := range raw {
		if len(samples) != 3 {
			t.Fatalf("item %s: expected 3 samples, got %d", id, len(samples))
		}
		for _, s := range samples {
			if s != 4 {
				t.Fatalf("item %s: expected 4, got %v", id, s)
			}
		}
	}
}

// concurrencyTracker cuenta cuántas consultas corren a la vez.
type concurrencyTracker struct {
	mu      sync.Mutex
	current int32
	peak    int32
}

func (c *concurrencyTracker) Query(ctx context.Context, prompt string, temperature float64, systemPrompt string) (string, error) {
	cur := atomic.AddInt32(&c.current, 1)
	c.mu.Lock()
	if cur > c.peak {
		c.peak = cur
	}
	c.mu.Unlock()
	defer atomic.AddInt32(&c.current, -1)
	return "3", nil
}

func TestRunSampling_BoundsInFlightItems(t *testing.T) {
	tracker := &concurrencyTracker{}
	sampler := NewSampler(tracker, nil, 2, 3, 1.0)

	if _, _, err := sampler.RunSampling(context.Background(), likertItems(10), ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	tracker.mu.Lock()
	peak := tracker.peak
	tracker.mu.Unlock()
	if peak > 3 {
		t.Fatalf("expected at most 3 concurrent queries, observed %d", peak)
	}
}

func TestRunSampling_CancelledContextStopsAtBatchBoundary(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &llm.MockClient{Response: "3"}
	sampler := NewSampler(client, nil, 5, 5, 1.0)

	raw, _, err := sampler.RunSampling(ctx, likertItems(7), "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(raw) != 0 {
		t.Fatalf("expected no items sampled after pre-cancelled context, got %d", len(raw))
	}
}
