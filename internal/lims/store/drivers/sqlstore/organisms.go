package sqlstore

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
)

type organismsRepo struct{ q *Queries }

const organismColumns = `id, name, type, strain, genus, species, growth_characteristics, notes,
	expressed_enzymes, genomic_files, culture_images, created_at, updated_at`

// The list columns are stored as JSON text so both drivers share one schema.
type genomicFileRow struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FastaURL   string    `json:"fasta_url"`
	UploadDate time.Time `json:"upload_date"`
	Size       int64     `json:"size"`
}

type cultureImageRow struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	UploadDate   time.Time `json:"upload_date"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
}

func scanOrganism(row scanner) (domain.Organism, error) {
	var (
		o                      domain.Organism
		typ                    string
		enzymes, files, images string
	)
	err := row.Scan(
		&o.ID, &o.Name, &typ, &o.Strain,
		&o.Taxonomy.Genus, &o.Taxonomy.Species,
		&o.Metadata.GrowthCharacteristics, &o.Metadata.Notes,
		&enzymes, &files, &images,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return domain.Organism{}, err
	}
	o.Type = domain.OrganismType(typ)
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()

	o.ExpressedEnzymes = []string{}
	if err := decodeJSONColumn(enzymes, &o.ExpressedEnzymes); err != nil {
		return domain.Organism{}, fmt.Errorf("organism %s expressed_enzymes: %w", o.ID, err)
	}

	var fileRows []genomicFileRow
	if err := decodeJSONColumn(files, &fileRows); err != nil {
		return domain.Organism{}, fmt.Errorf("organism %s genomic_files: %w", o.ID, err)
	}
	o.GenomicFiles = make([]domain.GenomicFile, 0, len(fileRows))
	for _, f := range fileRows {
		o.GenomicFiles = append(o.GenomicFiles, domain.GenomicFile(f))
	}

	var imageRows []cultureImageRow
	if err := decodeJSONColumn(images, &imageRows); err != nil {
		return domain.Organism{}, fmt.Errorf("organism %s culture_images: %w", o.ID, err)
	}
	o.CultureImages = make([]domain.CultureImage, 0, len(imageRows))
	for _, img := range imageRows {
		o.CultureImages = append(o.CultureImages, domain.CultureImage(img))
	}

	return o, nil
}

func decodeJSONColumn(raw string, v any) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), v)
}

// organismLists encodes the three list columns of o.
func organismLists(o domain.Organism) (enzymes, files, images string, err error) {
	ids := o.ExpressedEnzymes
	if ids == nil {
		ids = []string{}
	}
	fileRows := make([]genomicFileRow, 0, len(o.GenomicFiles))
	for _, f := range o.GenomicFiles {
		fileRows = append(fileRows, genomicFileRow(f))
	}
	imageRows := make([]cultureImageRow, 0, len(o.CultureImages))
	for _, img := range o.CultureImages {
		imageRows = append(imageRows, cultureImageRow(img))
	}

	b, err := json.Marshal(ids)
	if err != nil {
		return "", "", "", err
	}
	enzymes = string(b)
	if b, err = json.Marshal(fileRows); err != nil {
		return "", "", "", err
	}
	files = string(b)
	if b, err = json.Marshal(imageRows); err != nil {
		return "", "", "", err
	}
	images = string(b)
	return enzymes, files, images, nil
}

func (r *organismsRepo) CreateOrganism(ctx context.Context, o domain.Organism) error {
	enzymes, files, images, err := organismLists(o)
	if err != nil {
		return err
	}
	_, err = r.q.exec(ctx,
		`INSERT INTO organisms (`+organismColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.Name, string(o.Type), o.Strain,
		o.Taxonomy.Genus, o.Taxonomy.Species,
		o.Metadata.GrowthCharacteristics, o.Metadata.Notes,
		enzymes, files, images,
		o.CreatedAt.UTC(), o.UpdatedAt.UTC(),
	)
	return r.q.mapWriteErr(err)
}

func (r *organismsRepo) GetOrganismByID(ctx context.Context, id string) (domain.Organism, error) {
	o, err := scanOrganism(r.q.queryRow(ctx, `SELECT `+organismColumns+` FROM organisms WHERE id = ?`, id))
	return o, mapNotFound(err)
}

func (r *organismsRepo) ListOrganisms(ctx context.Context, f store.OrganismFilter) ([]domain.Organism, error) {
	query := `SELECT ` + organismColumns + ` FROM organisms`
	var args []any
	if f.Type != "" {
		query += ` WHERE type = ?`
		args = append(args, string(f.Type))
	}
	query += ` ORDER BY name ASC, id ASC`

	rows, err := r.q.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Organism{}
	for rows.Next() {
		o, err := scanOrganism(rows)
		if err != nil {
			return nil, err
		}
		// expressed_enzymes is JSON text, so this filter runs after decoding
		if f.EnzymeID != "" && !slices.Contains(o.ExpressedEnzymes, f.EnzymeID) {
			continue
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *organismsRepo) UpdateOrganism(ctx context.Context, o domain.Organism) error {
	enzymes, files, images, err := organismLists(o)
	if err != nil {
		return err
	}
	return r.q.execOne(ctx,
		`UPDATE organisms SET name = ?, type = ?, strain = ?, genus = ?, species = ?,
			growth_characteristics = ?, notes = ?, expressed_enzymes = ?,
			genomic_files = ?, culture_images = ?, updated_at = ?
		WHERE id = ?`,
		o.Name, string(o.Type), o.Strain, o.Taxonomy.Genus, o.Taxonomy.Species,
		o.Metadata.GrowthCharacteristics, o.Metadata.Notes, enzymes,
		files, images, time.Now().UTC(),
		o.ID,
	)
}

func (r *organismsRepo) DeleteOrganism(ctx context.Context, id string) error {
	return r.q.execOne(ctx, `DELETE FROM organisms WHERE id = ?`, id)
}

func (r *organismsRepo) CountOrganisms(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.queryRow(ctx, `SELECT COUNT(*) FROM organisms`).Scan(&n)
	return n, err
}
