package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/eleccion-api/internal/domain/entity"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
)

var _ repository.CandidateRepository = (*CandidateRepo)(nil)

// CandidateRepo implementación del puerto CandidateRepository sobre PostgreSQL.
type CandidateRepo struct {
	q Querier
}

func NewCandidateRepository(q Querier) *CandidateRepo {
	return &CandidateRepo{q: q}
}

const candidateColumns = `id, level, position, COALESCE(party_list, ''), first_name, COALESCE(middle_name, ''), last_name, gender, year, COALESCE(photo_path, ''), created_at, updated_at`

// Create persiste un candidato nuevo.
func (r *CandidateRepo) Create(ctx context.Context, c *entity.Candidate) error {
	query := `
		INSERT INTO candidates (id, level, position, party_list, first_name, middle_name, last_name, gender, year, photo_path, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8, $9, NULLIF($10, ''), $11, $12)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Level, c.Position, c.PartyList, c.FirstName, c.MiddleName,
		c.LastName, c.Gender, c.Year, c.PhotoPath, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

// GetByID obtiene un candidato por ID; (nil, nil) si no existe.
func (r *CandidateRepo) GetByID(ctx context.Context, id string) (*entity.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	var c entity.Candidate
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Level, &c.Position, &c.PartyList, &c.FirstName, &c.MiddleName,
		&c.LastName, &c.Gender, &c.Year, &c.PhotoPath, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return &c, nil
}

// List lista candidatos con filtro opcional de nivel, más reciente primero.
func (r *CandidateRepo) List(ctx context.Context, level string) ([]*entity.Candidate, error) {
	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE ($1 = '' OR level = $1)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, level)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var list []*entity.Candidate
	for rows.Next() {
		var c entity.Candidate
		if err := rows.Scan(
			&c.ID, &c.Level, &c.Position, &c.PartyList, &c.FirstName, &c.MiddleName,
			&c.LastName, &c.Gender, &c.Year, &c.PhotoPath, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un candidato.
func (r *CandidateRepo) Update(ctx context.Context, c *entity.Candidate) error {
	query := `
		UPDATE candidates
		SET level = $2, position = $3, party_list = NULLIF($4, ''), first_name = $5,
		    middle_name = NULLIF($6, ''), last_name = $7, gender = $8, year = $9,
		    photo_path = NULLIF($10, ''), updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Level, c.Position, c.PartyList, c.FirstName, c.MiddleName,
		c.LastName, c.Gender, c.Year, c.PhotoPath, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update candidate: %w", err)
	}
	return nil
}

// Delete elimina un candidato. Los votos que lo referencian se eliminan en
// cascada (FK ON DELETE CASCADE), igual que al depurar una contienda.
func (r *CandidateRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	return nil
}
