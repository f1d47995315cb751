package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
)

type enzymesRepo struct{ q *Queries }

const enzymeColumns = `id, name, type, specialization, sequence, reconstruction_method,
	confidence_score, description, newick_data, created_at, updated_at`

func scanEnzyme(row scanner) (domain.Enzyme, error) {
	var (
		e          domain.Enzyme
		typ, spec  string
		confidence sql.NullFloat64
	)
	err := row.Scan(
		&e.ID, &e.Name, &typ, &spec,
		&e.Metadata.Sequence, &e.Metadata.ReconstructionMethod,
		&confidence, &e.Metadata.Description, &e.NewickData,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return domain.Enzyme{}, err
	}
	e.Type = domain.EnzymeType(typ)
	e.Specialization = domain.Specialization(spec)
	e.Metadata.ConfidenceScore = mapNullFloatPtr(confidence)
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return e, nil
}

func (r *enzymesRepo) CreateEnzyme(ctx context.Context, e domain.Enzyme) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO enzymes (`+enzymeColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, string(e.Type), string(e.Specialization),
		e.Metadata.Sequence, e.Metadata.ReconstructionMethod,
		mapOptionalFloat(e.Metadata.ConfidenceScore), e.Metadata.Description, e.NewickData,
		e.CreatedAt.UTC(), e.UpdatedAt.UTC(),
	)
	return r.q.mapWriteErr(err)
}

func (r *enzymesRepo) GetEnzymeByID(ctx context.Context, id string) (domain.Enzyme, error) {
	e, err := scanEnzyme(r.q.queryRow(ctx, `SELECT `+enzymeColumns+` FROM enzymes WHERE id = ?`, id))
	return e, mapNotFound(err)
}

func (r *enzymesRepo) ListEnzymes(ctx context.Context, f store.EnzymeFilter) ([]domain.Enzyme, error) {
	var (
		where []string
		args  []any
	)
	if f.Type != "" {
		where = append(where, "type = ?")
		args = append(args, string(f.Type))
	}
	if f.Specialization != "" {
		where = append(where, "specialization = ?")
		args = append(args, string(f.Specialization))
	}
	if f.WithNewick {
		where = append(where, "newick_data <> ''")
	}

	query := `SELECT ` + enzymeColumns + ` FROM enzymes`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY name ASC, id ASC`

	rows, err := r.q.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Enzyme{}
	for rows.Next() {
		e, err := scanEnzyme(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *enzymesRepo) UpdateEnzyme(ctx context.Context, e domain.Enzyme) error {
	return r.q.execOne(ctx,
		`UPDATE enzymes SET name = ?, type = ?, specialization = ?, sequence = ?,
			reconstruction_method = ?, confidence_score = ?, description = ?,
			newick_data = ?, updated_at = ?
		WHERE id = ?`,
		e.Name, string(e.Type), string(e.Specialization), e.Metadata.Sequence,
		e.Metadata.ReconstructionMethod, mapOptionalFloat(e.Metadata.ConfidenceScore), e.Metadata.Description,
		e.NewickData, time.Now().UTC(),
		e.ID,
	)
}

func (r *enzymesRepo) DeleteEnzyme(ctx context.Context, id string) error {
	return r.q.execOne(ctx, `DELETE FROM enzymes WHERE id = ?`, id)
}

func (r *enzymesRepo) CountEnzymes(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.queryRow(ctx, `SELECT COUNT(*) FROM enzymes`).Scan(&n)
	return n, err
}
