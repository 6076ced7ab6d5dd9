package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/eleccion-api/internal/domain"
	"github.com/jhoicas/eleccion-api/internal/domain/entity"
	"github.com/jhoicas/eleccion-api/internal/domain/repository"
	"github.com/jhoicas/eleccion-api/internal/domain/taxonomy"
)

var _ repository.VoterRepository = (*VoterRepo)(nil)

// VoterRepo implementación del puerto VoterRepository sobre PostgreSQL.
type VoterRepo struct {
	q Querier
}

// NewVoterRepository construye el adaptador del padrón. Pasar pool o tx (Querier).
func NewVoterRepository(q Querier) *VoterRepo {
	return &VoterRepo{q: q}
}

const voterColumns = `id, school_id, full_name, COALESCE(course, ''), year, status, level, COALESCE(password_hash, ''), created_at, updated_at`

// Create persiste un votante nuevo. El índice único (lower(school_id), level)
// traduce el duplicado a domain.ErrVoterExists.
func (r *VoterRepo) Create(ctx context.Context, voter *entity.Voter) error {
	query := `
		INSERT INTO voters (id, school_id, full_name, course, year, status, level, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), $9, $10)`
	_, err := r.q.Exec(ctx, query,
		voter.ID, voter.SchoolID, voter.FullName, voter.Course, voter.Year,
		voter.Status, voter.Level, voter.PasswordHash, voter.CreatedAt, voter.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrVoterExists
		}
		return fmt.Errorf("insert voter: %w", err)
	}
	return nil
}

// GetByID obtiene un votante por ID; (nil, nil) si no existe.
func (r *VoterRepo) GetByID(ctx context.Context, id string) (*entity.Voter, error) {
	query := `SELECT ` + voterColumns + ` FROM voters WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get voter by id")
}

// GetBySchoolIDAndLevel busca por school id canónico (case-insensitive) y nivel.
func (r *VoterRepo) GetBySchoolIDAndLevel(ctx context.Context, canonicalSchoolID, level string) (*entity.Voter, error) {
	query := `SELECT ` + voterColumns + ` FROM voters WHERE LOWER(TRIM(school_id)) = $1 AND level = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, canonicalSchoolID, level), "get voter by school id")
}

// ListByLevel lista el padrón de un nivel (vacío = todos), más reciente primero.
func (r *VoterRepo) ListByLevel(ctx context.Context, level string) ([]*entity.Voter, error) {
	query := `SELECT ` + voterColumns + ` FROM voters WHERE ($1 = '' OR level = $1) ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, level)
	if err != nil {
		return nil, fmt.Errorf("list voters: %w", err)
	}
	defer rows.Close()

	var list []*entity.Voter
	for rows.Next() {
		var v entity.Voter
		if err := rows.Scan(
			&v.ID, &v.SchoolID, &v.FullName, &v.Course, &v.Year,
			&v.Status, &v.Level, &v.PasswordHash, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan voter: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// ListCanonicalSchoolIDs devuelve los school ids canónicos registrados en un nivel
// (precarga de la importación).
func (r *VoterRepo) ListCanonicalSchoolIDs(ctx context.Context, level string) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT school_id FROM voters WHERE level = $1`, level)
	if err != nil {
		return nil, fmt.Errorf("list school ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan school id: %w", err)
		}
		ids = append(ids, taxonomy.CanonicalSchoolID(id))
	}
	return ids, rows.Err()
}

// Update actualiza un votante.
func (r *VoterRepo) Update(ctx context.Context, voter *entity.Voter) error {
	query := `
		UPDATE voters
		SET full_name = $2, course = NULLIF($3, ''), year = $4, status = $5,
		    password_hash = NULLIF($6, ''), updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		voter.ID, voter.FullName, voter.Course, voter.Year, voter.Status,
		voter.PasswordHash, voter.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update voter: %w", err)
	}
	return nil
}

// Delete elimina un votante por ID.
func (r *VoterRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM voters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete voter: %w", err)
	}
	return nil
}

func (r *VoterRepo) scanOne(row pgx.Row, op string) (*entity.Voter, error) {
	var v entity.Voter
	err := row.Scan(
		&v.ID, &v.SchoolID, &v.FullName, &v.Course, &v.Year,
		&v.Status, &v.Level, &v.PasswordHash, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &v, nil
}
