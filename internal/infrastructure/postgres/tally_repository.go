package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/eleccion-api/internal/domain/repository"
)

var _ repository.TallyRepository = (*TallyRepo)(nil)

// TallyRepo implementación de solo lectura del conteo agregado.
type TallyRepo struct {
	q Querier
}

func NewTallyRepository(q Querier) *TallyRepo {
	return &TallyRepo{q: q}
}

// Tally agrega los votos por candidato. El LEFT JOIN garantiza que un candidato
// sin votos aparezca con votes = 0; el share se calcula dentro de cada
// contienda (level, position) y es 0 cuando la contienda no tiene votos.
func (r *TallyRepo) Tally(ctx context.Context, level, position string) ([]repository.TallyRow, error) {
	query := `
		SELECT c.id, c.first_name, COALESCE(c.middle_name, ''), c.last_name,
		       COALESCE(c.party_list, ''), c.position, c.level, COALESCE(c.photo_path, ''),
		       COUNT(v.id) AS votes,
		       CASE WHEN SUM(COUNT(v.id)) OVER (PARTITION BY c.level, c.position) = 0
		            THEN 0::numeric
		            ELSE ROUND(COUNT(v.id) * 100.0 / SUM(COUNT(v.id)) OVER (PARTITION BY c.level, c.position), 2)
		       END AS share
		FROM candidates c
		LEFT JOIN votes v ON v.candidate_id = c.id
		WHERE ($1 = '' OR c.level = $1) AND ($2 = '' OR c.position = $2)
		GROUP BY c.id
		ORDER BY c.level ASC, c.position ASC, votes DESC, c.last_name ASC`
	rows, err := r.q.Query(ctx, query, level, position)
	if err != nil {
		return nil, fmt.Errorf("tally: %w", err)
	}
	defer rows.Close()

	var result []repository.TallyRow
	for rows.Next() {
		var t repository.TallyRow
		if err := rows.Scan(
			&t.CandidateID, &t.FirstName, &t.MiddleName, &t.LastName,
			&t.PartyList, &t.Position, &t.Level, &t.PhotoPath,
			&t.Votes, &t.Share,
		); err != nil {
			return nil, fmt.Errorf("scan tally row: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
