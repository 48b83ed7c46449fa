package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"psybench/internal/domain"
	"psybench/internal/inventory"
	"psybench/internal/repository"
)

var (
	ErrMissingModelName = errors.New("missing model name")
)

// AssessmentService corre inventarios contra el modelo, arma el perfil y lo
// entrega al colaborador de persistencia.
type AssessmentService struct {
	sampler     *Sampler
	profileRepo repository.ProfileRepository
	statusStore RunStatusStore
	logger      *zap.Logger
}

func NewAssessmentService(
	sampler *Sampler,
	profileRepo repository.ProfileRepository,
	statusStore RunStatusStore,
	logger *zap.Logger,
) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if statusStore == nil {
		statusStore = NewMemoryRunStatusStore(0)
	}
	return &AssessmentService{
		sampler:     sampler,
		profileRepo: profileRepo,
		statusStore: statusStore,
		logger:      logger,
	}
}

// AssessmentRequest describe una corrida completa contra un modelo.
type AssessmentRequest struct {
	ModelName    string   `json:"model_name" binding:"required"`
	Persona      string   `json:"persona"`
	SystemPrompt string   `json:"system_prompt"`
	Inventories  []string `json:"inventories" binding:"required"`
}

// Validate chequea el pedido antes de tocar el modelo o el store.
func (r AssessmentRequest) Validate() error {
	if strings.TrimSpace(r.ModelName) == "" {
		return ErrMissingModelName
	}
	if len(r.Inventories) == 0 {
		return ErrNoInventories
	}
	for _, name := range r.Inventories {
		if !domain.KnownInventory(name) {
			return fmt.Errorf("%w: %q", ErrUnknownInventory, name)
		}
	}
	return nil
}

// Run ejecuta los inventarios pedidos en secuencia sobre el muestreador
// compartido y arma el ModelProfile. La persistencia ocurre una única vez al
// final; si falla solo se registra y el perfil en memoria igual se devuelve.
func (s *AssessmentService) Run(ctx context.Context, req AssessmentRequest) (*domain.ModelProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	systemPrompt := buildSystemPrompt(req)
	profile := &domain.ModelProfile{
		ID:           uuid.NewString(),
		ModelName:    req.ModelName,
		Persona:      req.Persona,
		SystemPrompt: systemPrompt,
		Results:      make(map[string]domain.InventoryResult, len(req.Inventories)+1),
		CreatedAt:    time.Now().UTC(),
	}

	for _, name := range req.Inventories {
		items := inventory.ByInventory(name)
		s.logger.Info("inventory sampling started",
			zap.String("model", req.ModelName),
			zap.String("inventory", name),
			zap.Int("items", len(items)),
		)

		raw, logs, err := s.sampler.RunSampling(ctx, items, systemPrompt)
		if err != nil {
			return nil, fmt.Errorf("sampling %s: %w", name, err)
		}
		profile.Logs = append(profile.Logs, logs...)

		switch name {
		case domain.InventoryBigFive:
			res := BigFiveResult(items, raw)
			profile.Results[name] = res
			profile.Results[domain.InventoryMBTIDerived] = DeriveMBTIFromBigFive(domainScores(res))
		case domain.InventoryMBTI:
			profile.Results[name] = ScoreMBTI(items, raw)
		case domain.InventoryDISC:
			profile.Results[name] = ScoreDISC(items, raw)
		}
	}

	if s.profileRepo != nil {
		if err := s.profileRepo.Insert(ctx, *profile); err != nil {
			s.logger.Warn("profile persist failed",
				zap.Error(err),
				zap.String("profile_id", profile.ID),
				zap.String("model", req.ModelName),
			)
		}
	}

	return profile, nil
}

// StartRun lanza la corrida como trabajo en segundo plano y devuelve de
// inmediato el id para consultar su estado. La finalización se observa por el
// status store y por la escritura en persistencia, no por un valor de retorno.
func (s *AssessmentService) StartRun(req AssessmentRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	runID := uuid.NewString()
	s.setStatus(domain.RunStatus{
		RunID:     runID,
		ModelName: req.ModelName,
		Status:    domain.RunStatusPending,
	})

	go func() {
		s.setStatus(domain.RunStatus{
			RunID:     runID,
			ModelName: req.ModelName,
			Status:    domain.RunStatusRunning,
		})

		profile, err := s.Run(context.Background(), req)
		if err != nil {
			s.logger.Error("assessment run failed",
				zap.Error(err),
				zap.String("run_id", runID),
				zap.String("model", req.ModelName),
			)
			s.setStatus(domain.RunStatus{
				RunID:     runID,
				ModelName: req.ModelName,
				Status:    domain.RunStatusFailed,
				Error:     err.Error(),
			})
			return
		}

		s.setStatus(domain.RunStatus{
			RunID:     runID,
			ModelName: req.ModelName,
			Status:    domain.RunStatusCompleted,
			Profile:   profile,
		})
	}()

	return runID, nil
}

// RunStatus consulta el estado de una corrida lanzada con StartRun.
func (s *AssessmentService) RunStatus(runID string) (domain.RunStatus, bool, error) {
	return s.statusStore.Get(runID)
}

func (s *AssessmentService) setStatus(status domain.RunStatus) {
	status.UpdatedAt = time.Now().UTC()
	if err := s.statusStore.Set(status); err != nil {
		s.logger.Warn("run status update failed",
			zap.Error(err),
			zap.String("run_id", status.RunID),
			zap.String("status", status.Status),
		)
	}
}

func buildSystemPrompt(req AssessmentRequest) string {
	if strings.TrimSpace(req.SystemPrompt) != "" {
		return req.SystemPrompt
	}
	if strings.TrimSpace(req.Persona) != "" {
		return fmt.Sprintf(
			"You are %s. Answer every question in character, honestly and directly, following the answer format requested.",
			strings.TrimSpace(req.Persona),
		)
	}
	return "Answer every question about yourself honestly and directly, following the answer format requested."
}
