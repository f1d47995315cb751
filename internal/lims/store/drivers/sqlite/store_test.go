package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store/drivers/sqlite"
	"github.com/aussiebroadwan/ancestrybio/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	u := domain.User{
		ID:           idx.New().String(),
		Email:        "tech@lab.example",
		DisplayName:  "Tech One",
		PasswordHash: "argon2id$dummy",
		Role:         domain.RoleLabTech,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, st.Users().CreateUser(ctx, u))

	dup := u
	dup.ID = idx.New().String()
	require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	got, err := st.Users().GetUserByEmail(ctx, "tech@lab.example")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, domain.RoleLabTech, got.Role)
	require.Nil(t, got.LastLogin)

	require.NoError(t, st.Users().TouchLastLogin(ctx, u.ID))
	require.NoError(t, st.Users().UpdateUserRole(ctx, u.ID, domain.RoleResearcher))

	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	require.Equal(t, domain.RoleResearcher, got.Role)

	_, err = st.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, st.Users().UpdateDisplayName(ctx, "missing", "x"), store.ErrNotFound)
}

func TestEnzymesAndOrganisms(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	now := time.Now().UTC()

	score := 0.92
	e := domain.Enzyme{
		ID:             idx.New().String(),
		Name:           "CBGA Synthase Alpha",
		Type:           domain.EnzymeAncestral,
		Specialization: domain.SpecializationPromiscuous,
		Metadata:       domain.EnzymeMetadata{Sequence: "MKCSTFSFWFVCKIIFFFLSF", ConfidenceScore: &score},
		NewickData:     "(A1A2a,(Ca,HCa));",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, st.Enzymes().CreateEnzyme(ctx, e))

	plain := e
	plain.ID = idx.New().String()
	plain.Name = "THCA Synthase Modern"
	plain.Type = domain.EnzymeModern
	plain.Metadata.ConfidenceScore = nil
	plain.NewickData = ""
	require.NoError(t, st.Enzymes().CreateEnzyme(ctx, plain))

	got, err := st.Enzymes().GetEnzymeByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Metadata.ConfidenceScore)
	require.InDelta(t, 0.92, *got.Metadata.ConfidenceScore, 1e-9)

	trees, err := st.Enzymes().ListEnzymes(ctx, store.EnzymeFilter{WithNewick: true})
	require.NoError(t, err)
	require.Len(t, trees, 1)

	modern, err := st.Enzymes().ListEnzymes(ctx, store.EnzymeFilter{Type: domain.EnzymeModern})
	require.NoError(t, err)
	require.Len(t, modern, 1)
	require.Nil(t, modern[0].Metadata.ConfidenceScore)

	o := domain.Organism{
		ID:               idx.New().String(),
		Name:             "Saccharomyces cerevisiae",
		Type:             domain.OrganismYeast,
		Strain:           "CEN.PK2-1C",
		Taxonomy:         domain.Taxonomy{Genus: "Saccharomyces", Species: "cerevisiae"},
		ExpressedEnzymes: []string{e.ID},
		GenomicFiles: []domain.GenomicFile{
			{ID: "f1", Name: "genome.fasta", FastaURL: "/v1/files/genomic-files/x/genome.fasta", UploadDate: now, Size: 42},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Organisms().CreateOrganism(ctx, o))

	byEnzyme, err := st.Organisms().ListOrganisms(ctx, store.OrganismFilter{EnzymeID: e.ID})
	require.NoError(t, err)
	require.Len(t, byEnzyme, 1)
	require.Len(t, byEnzyme[0].GenomicFiles, 1)
	require.Equal(t, int64(42), byEnzyme[0].GenomicFiles[0].Size)
	require.Empty(t, byEnzyme[0].CultureImages)

	none, err := st.Organisms().ListOrganisms(ctx, store.OrganismFilter{EnzymeID: plain.ID})
	require.NoError(t, err)
	require.Empty(t, none)

	require.NoError(t, st.Organisms().DeleteOrganism(ctx, o.ID))
	require.ErrorIs(t, st.Organisms().DeleteOrganism(ctx, o.ID), store.ErrNotFound)
}

func TestBatchesListingAndNames(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	now := time.Now().UTC()
	enz := domain.Enzyme{ID: "enz-1", Name: "THCA Synthase Modern", Type: domain.EnzymeModern,
		Specialization: domain.SpecializationTHCA, Metadata: domain.EnzymeMetadata{Sequence: "M"}, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.Enzymes().CreateEnzyme(ctx, enz))

	mk := func(id, enzymeID, tech string, offset time.Duration) domain.Batch {
		return domain.Batch{
			ID: id, EnzymeID: enzymeID, EnzymeName: "old name",
			CBGAInput: 100, Outputs: domain.CannabinoidOutputs{THCA: 85, CBDA: 10, CBCA: 5},
			Timestamp: base.Add(offset), LabTechID: tech, LabTechName: "Tech",
			Status: domain.BatchInProgress,
		}
	}
	require.NoError(t, st.Batches().CreateBatch(ctx, mk("b1", "enz-1", "u1", 0)))
	require.NoError(t, st.Batches().CreateBatch(ctx, mk("b2", "enz-1", "u2", time.Hour)))
	require.NoError(t, st.Batches().CreateBatch(ctx, mk("b3", "enz-2", "u1", 2*time.Hour)))

	all, err := st.Batches().ListBatches(ctx, store.BatchFilter{})
	require.NoError(t, err)
	require.Equal(t, []string{"b3", "b2", "b1"}, []string{all[0].ID, all[1].ID, all[2].ID})

	byEnzyme, err := st.Batches().ListBatches(ctx, store.BatchFilter{EnzymeID: "enz-1"})
	require.NoError(t, err)
	require.Len(t, byEnzyme, 2)

	byTech, err := st.Batches().ListBatches(ctx, store.BatchFilter{LabTechID: "u1"})
	require.NoError(t, err)
	require.Len(t, byTech, 2)

	require.NoError(t, st.Batches().UpdateBatchStatus(ctx, "b1", domain.BatchPeakYield))
	n, err := st.Batches().CountBatches(ctx, store.BatchFilter{Status: domain.BatchPeakYield})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	// enz-1 exists with a different name, enz-2 does not exist at all
	touched, err := st.Batches().RefreshDenormalizedNames(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), touched)

	b3, err := st.Batches().GetBatchByID(ctx, "b3")
	require.NoError(t, err)
	require.Equal(t, "old name", b3.EnzymeName)

	renamed, err := st.Batches().RenameLabTech(ctx, "u1", "Renamed Tech")
	require.NoError(t, err)
	require.Equal(t, int64(2), renamed)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	now := time.Now().UTC()

	err := st.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Enzymes().CreateEnzyme(ctx, domain.Enzyme{
			ID: "tx-enz", Name: "Intermediate Synthase Gamma", Type: domain.EnzymeIntermediate,
			Specialization: domain.SpecializationCBCA, Metadata: domain.EnzymeMetadata{Sequence: "M"},
			CreatedAt: now, UpdatedAt: now,
		}))
		return store.ErrAlreadyExists
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = st.Enzymes().GetEnzymeByID(ctx, "tx-enz")
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := st.Enzymes().CountEnzymes(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}
