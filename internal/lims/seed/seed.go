// Package seed loads the sample dataset used for development and demos.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/metrics"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/service"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/pkg/cryptox"
	"github.com/aussiebroadwan/ancestrybio/pkg/idx"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"
)

//go:embed seed.yaml
var defaultDataset []byte

// ErrAlreadySeeded is returned when the store already holds enzymes.
var ErrAlreadySeeded = errors.New("seed: store already contains enzymes")

type Dataset struct {
	LabTech   Account    `yaml:"labTech"`
	Enzymes   []Enzyme   `yaml:"enzymes"`
	Organisms []Organism `yaml:"organisms"`
	Batches   []Batch    `yaml:"batches"`
}

type Account struct {
	Email       string `yaml:"email"`
	DisplayName string `yaml:"displayName"`
}

type Enzyme struct {
	Name           string `yaml:"name"`
	Type           string `yaml:"type"`
	Specialization string `yaml:"specialization"`
	Metadata       struct {
		Sequence             string   `yaml:"sequence"`
		ReconstructionMethod string   `yaml:"reconstructionMethod"`
		ConfidenceScore      *float64 `yaml:"confidenceScore"`
		Description          string   `yaml:"description"`
	} `yaml:"metadata"`
	NewickData string `yaml:"newickData"`
}

type Organism struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Strain   string `yaml:"strain"`
	Taxonomy struct {
		Genus   string `yaml:"genus"`
		Species string `yaml:"species"`
	} `yaml:"taxonomy"`
	Metadata struct {
		GrowthCharacteristics string `yaml:"growthCharacteristics"`
		Notes                 string `yaml:"notes"`
	} `yaml:"metadata"`
	ExpressedEnzymes []string `yaml:"expressedEnzymes"` // enzyme names
}

type Batch struct {
	Enzyme    string  `yaml:"enzyme"` // enzyme name
	CBGAInput float64 `yaml:"cbgaInput"`
	Outputs   struct {
		THCA float64 `yaml:"thca"`
		CBDA float64 `yaml:"cbda"`
		CBCA float64 `yaml:"cbca"`
	} `yaml:"outputs"`
	Notes string `yaml:"notes"`
}

// Result reports what Load created.
type Result struct {
	LabTech       domain.User
	LabTechSecret string // set only when the account was created by this run
	Enzymes       int
	Organisms     int
	Batches       int
	PeakBatches   int
}

// Default returns the embedded dataset.
func Default() (Dataset, error) {
	return Parse(defaultDataset)
}

func Parse(b []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(b, &ds); err != nil {
		return Dataset{}, fmt.Errorf("seed: parse dataset: %w", err)
	}
	if ds.LabTech.Email == "" {
		return Dataset{}, errors.New("seed: labTech.email is required")
	}
	return ds, nil
}

// Load writes ds through the services. It refuses to run against a store
// that already has enzymes, so running it twice is harmless.
func Load(ctx context.Context, st store.Store, m *metrics.Metrics, ds Dataset) (Result, error) {
	l := slogx.FromContext(ctx)

	// 1. Refuse to double-seed
	n, err := st.Enzymes().CountEnzymes(ctx)
	if err != nil {
		return Result{}, err
	}
	if n > 0 {
		return Result{}, ErrAlreadySeeded
	}

	// 2. Ensure the lab tech that records the batches
	var res Result
	res.LabTech, res.LabTechSecret, err = ensureLabTech(ctx, st, ds.LabTech)
	if err != nil {
		return Result{}, err
	}

	enzymes := &service.EnzymeService{Store: st}
	organisms := &service.OrganismService{Store: st}
	batches := &service.BatchService{Store: st, Metrics: m}

	// 3. Enzymes, remembering ids by name
	ids := make(map[string]string, len(ds.Enzymes))
	for _, e := range ds.Enzymes {
		created, err := enzymes.Create(ctx, domain.Enzyme{
			Name:           e.Name,
			Type:           domain.EnzymeType(e.Type),
			Specialization: domain.Specialization(e.Specialization),
			Metadata: domain.EnzymeMetadata{
				Sequence:             e.Metadata.Sequence,
				ReconstructionMethod: e.Metadata.ReconstructionMethod,
				ConfidenceScore:      e.Metadata.ConfidenceScore,
				Description:          e.Metadata.Description,
			},
			NewickData: e.NewickData,
		})
		if err != nil {
			return res, fmt.Errorf("seed enzyme %q: %w", e.Name, err)
		}
		ids[e.Name] = created.ID
		res.Enzymes++
	}

	// 4. Organisms
	for _, o := range ds.Organisms {
		expressed := make([]string, 0, len(o.ExpressedEnzymes))
		for _, name := range o.ExpressedEnzymes {
			id, ok := ids[name]
			if !ok {
				return res, fmt.Errorf("seed organism %q: unknown enzyme %q", o.Name, name)
			}
			expressed = append(expressed, id)
		}

		_, err := organisms.Create(ctx, domain.Organism{
			Name:     o.Name,
			Type:     domain.OrganismType(o.Type),
			Strain:   o.Strain,
			Taxonomy: domain.Taxonomy{Genus: o.Taxonomy.Genus, Species: o.Taxonomy.Species},
			Metadata: domain.OrganismMetadata{
				GrowthCharacteristics: o.Metadata.GrowthCharacteristics,
				Notes:                 o.Metadata.Notes,
			},
			ExpressedEnzymes: expressed,
		})
		if err != nil {
			return res, fmt.Errorf("seed organism %q: %w", o.Name, err)
		}
		res.Organisms++
	}

	// 5. Batches, in order, so peak classification sees the same history
	actor := domain.Identity{
		UserID:      res.LabTech.ID,
		DisplayName: res.LabTech.DisplayName,
		Role:        res.LabTech.Role,
	}
	for i, b := range ds.Batches {
		id, ok := ids[b.Enzyme]
		if !ok {
			return res, fmt.Errorf("seed batch %d: unknown enzyme %q", i, b.Enzyme)
		}
		created, err := batches.CreateBatch(ctx, actor, domain.BatchInput{
			EnzymeID:  id,
			CBGAInput: b.CBGAInput,
			Outputs: domain.CannabinoidOutputs{
				THCA: b.Outputs.THCA,
				CBDA: b.Outputs.CBDA,
				CBCA: b.Outputs.CBCA,
			},
			Notes: b.Notes,
		})
		if err != nil {
			return res, fmt.Errorf("seed batch %d: %w", i, err)
		}
		res.Batches++
		if created.Status == domain.BatchPeakYield {
			res.PeakBatches++
		}
	}

	l.Info("seed data loaded",
		slog.Int("enzymes", res.Enzymes),
		slog.Int("organisms", res.Organisms),
		slog.Int("batches", res.Batches),
		slog.Int("peak_batches", res.PeakBatches),
	)
	return res, nil
}

// ensureLabTech returns the seed account, creating it with a random password
// when missing. The password is returned only on creation.
func ensureLabTech(ctx context.Context, st store.Store, a Account) (domain.User, string, error) {
	email := domain.NormalizeEmail(a.Email)
	u, err := st.Users().GetUserByEmail(ctx, email)
	if err == nil {
		return u, "", nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, "", err
	}

	password, err := cryptox.GeneratePassword(24)
	if err != nil {
		return domain.User{}, "", err
	}
	if err := domain.ValidateRegistration(email, a.DisplayName, password); err != nil {
		return domain.User{}, "", fmt.Errorf("seed lab tech: %w", err)
	}
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, "", err
	}

	u = domain.User{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  a.DisplayName,
		PasswordHash: hash,
		Role:         domain.RoleLabTech,
		CreatedAt:    time.Now().UTC(),
	}
	if err := st.Users().CreateUser(ctx, u); err != nil {
		return domain.User{}, "", err
	}
	return u, password, nil
}
