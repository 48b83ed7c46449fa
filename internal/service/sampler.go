package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"psybench/internal/domain"
	"psybench/internal/inventory"
	"psybench/internal/llm"
)

const (
	DefaultSampleCount = 5
	DefaultConcurrency = 5
	DefaultTemperature = 1.0
)

// Sampler consulta al modelo varias veces por ítem, en lotes acotados.
type Sampler struct {
	client      llm.LLMClient
	logger      *zap.Logger
	sampleCount int
	concurrency int
	temperature float64
}

func NewSampler(client llm.LLMClient, logger *zap.Logger, sampleCount, concurrency int, temperature float64) *Sampler {
	if sampleCount <= 0 {
		sampleCount = DefaultSampleCount
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sampler{
		client:      client,
		logger:      logger,
		sampleCount: sampleCount,
		concurrency: concurrency,
		temperature: temperature,
	}
}

// SampleCount expone la cantidad de muestras por ítem configurada.
func (s *Sampler) SampleCount() int { return s.sampleCount }

// RunSampling recorre los ítems en lotes contiguos de tamaño concurrency.
// El lote siguiente arranca recién cuando el anterior terminó por completo;
// dentro de un lote los ítems corren en paralelo y las muestras de cada ítem
// se piden en secuencia. Una falla de transporte o de parseo nunca aborta
// nada: la muestra se registra con el valor de respaldo del tipo de ítem.
// La cancelación solo se observa entre lotes; si el contexto se cancela se
// devuelve lo acumulado junto con el error para que el caller lo descarte.
func (s *Sampler) RunSampling(ctx context.Context, items []inventory.Item, systemPrompt string) (domain.RawScoreSet, []domain.SampleLog, error) {
	raw := make(domain.RawScoreSet, len(items))
	logs := make([]domain.SampleLog, 0, len(items))

	var mu sync.Mutex

	for start := 0; start < len(items); start += s.concurrency {
		if err := ctx.Err(); err != nil {
			return raw, logs, err
		}

		end := start + s.concurrency
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]

		var wg sync.WaitGroup
		for _, item := range batch {
			wg.Add(1)
			go func(item inventory.Item) {
				defer wg.Done()
				samples, failures := s.sampleItem(ctx, item, systemPrompt)

				mu.Lock()
				raw[item.ID] = samples
				logs = append(logs, domain.SampleLog{
					ItemID:    item.ID,
					Inventory: item.Inventory,
					Samples:   len(samples),
					Failures:  failures,
					Timestamp: time.Now().UTC(),
				})
				mu.Unlock()

				s.logger.Info("item sampled",
					zap.String("item_id", item.ID),
					zap.String("inventory", item.Inventory),
					zap.Int("failures", failures),
				)
			}(item)
		}
		wg.Wait()
	}

	return raw, logs, nil
}

// sampleItem obtiene sampleCount muestras secuenciales para un ítem.
func (s *Sampler) sampleItem(ctx context.Context, item inventory.Item, systemPrompt string) ([]float64, int) {
	prompt := BuildItemPrompt(item)
	samples := make([]float64, 0, s.sampleCount)
	failures := 0

	for i := 0; i < s.sampleCount; i++ {
		text, err := s.client.Query(ctx, prompt, s.temperature, systemPrompt)
		if err != nil {
			failures++
			s.logger.Warn("sample query failed",
				zap.String("item_id", item.ID),
				zap.Int("sample", i),
				zap.Error(err),
			)
			samples = append(samples, fallbackFor(item.Type))
			continue
		}
		samples = append(samples, ParseSample(text, item.Type))
	}

	return samples, failures
}

func fallbackFor(t inventory.ItemType) float64 {
	if t == inventory.ForcedChoicePair {
		return FallbackForcedChoice
	}
	return FallbackLikert
}
