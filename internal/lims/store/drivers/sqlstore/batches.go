package sqlstore

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
)

type batchesRepo struct{ q *Queries }

const batchColumns = `id, enzyme_id, enzyme_name, cbga_input, thca, cbda, cbca,
	recorded_at, lab_tech_id, lab_tech_name, status, notes`

func scanBatch(row scanner) (domain.Batch, error) {
	var (
		b      domain.Batch
		status string
	)
	err := row.Scan(
		&b.ID, &b.EnzymeID, &b.EnzymeName, &b.CBGAInput,
		&b.Outputs.THCA, &b.Outputs.CBDA, &b.Outputs.CBCA,
		&b.Timestamp, &b.LabTechID, &b.LabTechName, &status, &b.Notes,
	)
	if err != nil {
		return domain.Batch{}, err
	}
	b.Status = domain.BatchStatus(status)
	b.Timestamp = b.Timestamp.UTC()
	return b, nil
}

func batchWhere(f store.BatchFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if f.EnzymeID != "" {
		where = append(where, "enzyme_id = ?")
		args = append(args, f.EnzymeID)
	}
	if f.LabTechID != "" {
		where = append(where, "lab_tech_id = ?")
		args = append(args, f.LabTechID)
	}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(f.Status))
	}
	if len(where) == 0 {
		return "", nil
	}
	return ` WHERE ` + strings.Join(where, " AND "), args
}

func (r *batchesRepo) CreateBatch(ctx context.Context, b domain.Batch) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO batches (`+batchColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.EnzymeID, b.EnzymeName, b.CBGAInput,
		b.Outputs.THCA, b.Outputs.CBDA, b.Outputs.CBCA,
		b.Timestamp.UTC(), b.LabTechID, b.LabTechName, string(b.Status), b.Notes,
	)
	return r.q.mapWriteErr(err)
}

func (r *batchesRepo) GetBatchByID(ctx context.Context, id string) (domain.Batch, error) {
	b, err := scanBatch(r.q.queryRow(ctx, `SELECT `+batchColumns+` FROM batches WHERE id = ?`, id))
	return b, mapNotFound(err)
}

func (r *batchesRepo) ListBatches(ctx context.Context, f store.BatchFilter) ([]domain.Batch, error) {
	where, args := batchWhere(f)
	// ids are ULIDs so they break timestamp ties in insertion order
	rows, err := r.q.query(ctx, `SELECT `+batchColumns+` FROM batches`+where+` ORDER BY recorded_at DESC, id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Batch{}
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *batchesRepo) UpdateBatchStatus(ctx context.Context, id string, status domain.BatchStatus) error {
	return r.q.execOne(ctx, `UPDATE batches SET status = ? WHERE id = ?`, string(status), id)
}

func (r *batchesRepo) DeleteBatch(ctx context.Context, id string) error {
	return r.q.execOne(ctx, `DELETE FROM batches WHERE id = ?`, id)
}

func (r *batchesRepo) CountBatches(ctx context.Context, f store.BatchFilter) (int64, error) {
	where, args := batchWhere(f)
	var n int64
	err := r.q.queryRow(ctx, `SELECT COUNT(*) FROM batches`+where, args...).Scan(&n)
	return n, err
}

func (r *batchesRepo) RenameEnzyme(ctx context.Context, enzymeID, name string) (int64, error) {
	res, err := r.q.exec(ctx, `UPDATE batches SET enzyme_name = ? WHERE enzyme_id = ? AND enzyme_name <> ?`, name, enzymeID, name)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *batchesRepo) RenameLabTech(ctx context.Context, userID, name string) (int64, error) {
	res, err := r.q.exec(ctx, `UPDATE batches SET lab_tech_name = ? WHERE lab_tech_id = ? AND lab_tech_name <> ?`, name, userID, name)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *batchesRepo) RefreshDenormalizedNames(ctx context.Context) (int64, error) {
	enzymes, err := r.q.exec(ctx, `
		UPDATE batches SET enzyme_name = (SELECT e.name FROM enzymes e WHERE e.id = batches.enzyme_id)
		WHERE EXISTS (SELECT 1 FROM enzymes e WHERE e.id = batches.enzyme_id AND e.name <> batches.enzyme_name)`)
	if err != nil {
		return 0, err
	}
	techs, err := r.q.exec(ctx, `
		UPDATE batches SET lab_tech_name = (SELECT u.display_name FROM users u WHERE u.id = batches.lab_tech_id)
		WHERE EXISTS (SELECT 1 FROM users u WHERE u.id = batches.lab_tech_id AND u.display_name <> batches.lab_tech_name)`)
	if err != nil {
		return 0, err
	}

	n1, err := enzymes.RowsAffected()
	if err != nil {
		return 0, err
	}
	n2, err := techs.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n1 + n2, nil
}
