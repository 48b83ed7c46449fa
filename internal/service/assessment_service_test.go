package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"psybench/internal/domain"
	"psybench/internal/inventory"
	"psybench/internal/llm"
	"psybench/internal/repository"
)

type fakeProfileRepo struct {
	inserted  []domain.ModelProfile
	insertErr error
}

func (f *fakeProfileRepo) Insert(_ context.Context, profile domain.ModelProfile) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, profile)
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (domain.ModelProfile, error) {
	for _, p := range f.inserted {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.ModelProfile{}, repository.ErrProfileNotFound
}

func (f *fakeProfileRepo) ListByModel(_ context.Context, modelName string, _ int) ([]domain.ModelProfile, error) {
	var out []domain.ModelProfile
	for _, p := range f.inserted {
		if p.ModelName == modelName {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) FindSimilar(_ context.Context, _ string, _ int) ([]repository.SimilarProfile, error) {
	return nil, nil
}

func newTestAssessmentService(client llm.LLMClient, repo repository.ProfileRepository) *AssessmentService {
	sampler := NewSampler(client, nil, 2, 5, 1.0)
	return NewAssessmentService(sampler, repo, NewMemoryRunStatusStore(time.Minute), nil)
}

func TestAssessmentRun_RejectsInvalidRequests(t *testing.T) {
	svc := newTestAssessmentService(&llm.MockClient{Response: "3"}, nil)

	_, err := svc.Run(context.Background(), AssessmentRequest{Inventories: []string{"bigfive"}})
	if !errors.Is(err, ErrMissingModelName) {
		t.Fatalf("expected ErrMissingModelName, got %v", err)
	}

	_, err = svc.Run(context.Background(), AssessmentRequest{ModelName: "m"})
	if !errors.Is(err, ErrNoInventories) {
		t.Fatalf("expected ErrNoInventories, got %v", err)
	}

	_, err = svc.Run(context.Background(), AssessmentRequest{ModelName: "m", Inventories: []string{"tarot"}})
	if !errors.Is(err, ErrUnknownInventory) {
		t.Fatalf("expected ErrUnknownInventory, got %v", err)
	}
}

func TestAssessmentRun_AssemblesProfileAndPersistsOnce(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := newTestAssessmentService(&llm.MockClient{Response: "4"}, repo)

	profile, err := svc.Run(context.Background(), AssessmentRequest{
		ModelName:   "test-model",
		Persona:     "a stoic philosopher",
		Inventories: []string{domain.InventoryBigFive, domain.InventoryDISC},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, ok := profile.Results[domain.InventoryBigFive]; !ok {
		t.Fatalf("expected bigfive result")
	}
	if _, ok := profile.Results[domain.InventoryMBTIDerived]; !ok {
		t.Fatalf("expected derived mbti alongside bigfive")
	}
	if _, ok := profile.Results[domain.InventoryDISC]; !ok {
		t.Fatalf("expected disc result")
	}

	wantLogs := len(inventory.BigFiveItems) + len(inventory.DISCItems)
	if len(profile.Logs) != wantLogs {
		t.Fatalf("expected %d sample logs, got %d", wantLogs, len(profile.Logs))
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected exactly one persisted profile, got %d", len(repo.inserted))
	}
	if repo.inserted[0].ID != profile.ID {
		t.Fatalf("persisted profile id mismatch")
	}
}

func TestAssessmentRun_PersistFailureStillReturnsProfile(t *testing.T) {
	repo := &fakeProfileRepo{insertErr: errors.New("db down")}
	svc := newTestAssessmentService(&llm.MockClient{Response: "3"}, repo)

	profile, err := svc.Run(context.Background(), AssessmentRequest{
		ModelName:   "test-model",
		Inventories: []string{domain.InventoryMBTI},
	})
	if err != nil {
		t.Fatalf("expected run to survive persist failure, got %v", err)
	}
	if profile == nil || len(profile.Results) == 0 {
		t.Fatalf("expected in-memory profile despite persist failure")
	}
}

func TestAssessmentRun_AllTransportFailuresYieldNeutralProfile(t *testing.T) {
	svc := newTestAssessmentService(&llm.MockClient{Err: errors.New("unreachable")}, nil)

	profile, err := svc.Run(context.Background(), AssessmentRequest{
		ModelName:   "test-model",
		Inventories: []string{domain.InventoryMBTI},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	res := profile.Results[domain.InventoryMBTI]
	// Con todo en el valor neutro 3, cada dimensión queda en el punto medio.
	for dim, score := range res.TraitScores {
		if score != 24 {
			t.Fatalf("dimension %s: expected midpoint 24, got %v", dim, score)
		}
	}
	if res.Type != "ISTP" {
		t.Fatalf("expected low-pole type ISTP, got %q", res.Type)
	}
}

func TestStartRun_CompletesInBackground(t *testing.T) {
	svc := newTestAssessmentService(&llm.MockClient{Response: "5"}, nil)

	runID, err := svc.StartRun(AssessmentRequest{
		ModelName:   "test-model",
		Inventories: []string{domain.InventoryDISC},
	})
	if err != nil {
		t.Fatalf("expected run to start, got %v", err)
	}
	if runID == "" {
		t.Fatalf("expected a run id")
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		status, ok, err := svc.RunStatus(runID)
		if err != nil {
			t.Fatalf("status lookup failed: %v", err)
		}
		if ok && status.Status == domain.RunStatusCompleted {
			if status.Profile == nil {
				t.Fatalf("completed run should carry the profile")
			}
			return
		}
		if ok && status.Status == domain.RunStatusFailed {
			t.Fatalf("run failed: %s", status.Error)
		}
		if time.Now().After(deadline) {
			t.Fatalf("run did not complete in time, last status: %+v", status)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestStartRun_RejectsBeforeSpawning(t *testing.T) {
	svc := newTestAssessmentService(&llm.MockClient{Response: "3"}, nil)

	if _, err := svc.StartRun(AssessmentRequest{ModelName: "m"}); !errors.Is(err, ErrNoInventories) {
		t.Fatalf("expected ErrNoInventories, got %v", err)
	}
}
