package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"psybench/internal/domain"
	"psybench/internal/inventory"
)

var ErrProfileNotFound = errors.New("profile not found")

// SimilarProfile resume un perfil cercano en el espacio de facetas.
type SimilarProfile struct {
	ID        string    `json:"id"`
	ModelName string    `json:"model_name"`
	Distance  float64   `json:"distance"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileRepository interface {
	Insert(ctx context.Context, profile domain.ModelProfile) error
	GetByID(ctx context.Context, id string) (domain.ModelProfile, error)
	ListByModel(ctx context.Context, modelName string, limit int) ([]domain.ModelProfile, error)
	FindSimilar(ctx context.Context, id string, limit int) ([]SimilarProfile, error)
}

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) Insert(ctx context.Context, profile domain.ModelProfile) error {
	const query = `
		INSERT INTO assessments (id, model_name, persona, system_prompt, results, logs, facet_vector, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	results, err := json.Marshal(profile.Results)
	if err != nil {
		return err
	}
	logs, err := json.Marshal(profile.Logs)
	if err != nil {
		return err
	}

	var facetVector interface{}
	if vec := profile.FacetVector(inventory.BigFiveFacetCodes); vec != nil {
		facetVector = pgvector.NewVector(vec)
	}

	_, err = r.pool.Exec(ctx, query,
		profile.ID,
		profile.ModelName,
		profile.Persona,
		profile.SystemPrompt,
		results,
		logs,
		facetVector,
		profile.CreatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByID(ctx context.Context, id string) (domain.ModelProfile, error) {
	const query = `
		SELECT id, model_name, persona, system_prompt, results, logs, created_at
		FROM assessments
		WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	profile, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ModelProfile{}, ErrProfileNotFound
	}
	return profile, err
}

func (r *PgProfileRepository) ListByModel(ctx context.Context, modelName string, limit int) ([]domain.ModelProfile, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
		SELECT id, model_name, persona, system_prompt, results, logs, created_at
		FROM assessments
		WHERE model_name = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, modelName, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.ModelProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// FindSimilar ordena por distancia coseno entre vectores de facetas Big Five.
func (r *PgProfileRepository) FindSimilar(ctx context.Context, id string, limit int) ([]SimilarProfile, error) {
	if limit <= 0 {
		limit = 5
	}
	const query = `
		SELECT a.id, a.model_name, a.facet_vector <=> ref.facet_vector AS distance, a.created_at
		FROM assessments a, (SELECT facet_vector FROM assessments WHERE id = $1) ref
		WHERE a.id <> $1 AND a.facet_vector IS NOT NULL AND ref.facet_vector IS NOT NULL
		ORDER BY a.facet_vector <=> ref.facet_vector
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, id, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var similar []SimilarProfile
	for rows.Next() {
		var s SimilarProfile
		if err := rows.Scan(&s.ID, &s.ModelName, &s.Distance, &s.CreatedAt); err != nil {
			return nil, err
		}
		similar = append(similar, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return similar, nil
}

type pgxRow interface {
	Scan(...interface{}) error
}

func scanProfile(row pgxRow) (domain.ModelProfile, error) {
	var p domain.ModelProfile
	var results, logs []byte
	if err := row.Scan(
		&p.ID,
		&p.ModelName,
		&p.Persona,
		&p.SystemPrompt,
		&results,
		&logs,
		&p.CreatedAt,
	); err != nil {
		return domain.ModelProfile{}, err
	}
	if len(results) > 0 {
		if err := json.Unmarshal(results, &p.Results); err != nil {
			return domain.ModelProfile{}, err
		}
	}
	if len(logs) > 0 {
		if err := json.Unmarshal(logs, &p.Logs); err != nil {
			return domain.ModelProfile{}, err
		}
	}
	return p, nil
}
