package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/blob"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/metrics"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store/drivers/sqlite"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/yield"
	"github.com/aussiebroadwan/ancestrybio/pkg/cryptox"
	"github.com/aussiebroadwan/ancestrybio/pkg/idx"
	"github.com/aussiebroadwan/ancestrybio/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func createUser(t *testing.T, st store.Store, name string, role domain.Role) domain.User {
	t.Helper()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@lab.example",
		DisplayName:  name,
		PasswordHash: "unused",
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func identityOf(u domain.User) domain.Identity {
	return domain.Identity{UserID: u.ID, DisplayName: u.DisplayName, Role: u.Role}
}

func createEnzyme(t *testing.T, svc *EnzymeService, name string) domain.Enzyme {
	t.Helper()
	e, err := svc.Create(context.Background(), domain.Enzyme{
		Name:           name,
		Type:           domain.EnzymeAncestral,
		Specialization: domain.SpecializationPromiscuous,
		Metadata:       domain.EnzymeMetadata{Sequence: "MKCSTFSFWFVCKIIFFFFSFNIQTSIANPRENFLKCFSQYIPNNATNLKLVYTQNNPLYMSVLNSTIHNLRFTSDTTPKPLVIVTPSHVSHIQGTILCSKKVGLQIRTRSGGHDSEGMSYISQVPFVIVDLRNMRSIKIDVHSQTAWVEAGATLGEVYYWVNEKNENLSLAAGYCPTVCAGGHFGGGGYGPLMRNYGLAADNIIDAHLVNVHGKVLDRKSMGEDLFWALRGGGAESFGIIVAWKIRLVAVPKSTMFSVKKIMEIHELVKLVNKWQNIAYKYDKDLLLMTHFITRNITDNQGKNKTAIHTYFSSVFLGGVDSLVDLMNKSFPELGIKKTDCRQLSWIDTIIFYSGVVNYDTDNFNKEILLDRSAGQNGAFKIKLDYVKKPIPESVFVQILEKLYEEDIGAGMYALYPYGGIMDEISESAIPFPHRAGILYELWYICSWEKQEDNEKHLNWIRNIYNFMTPYVSKNPRLAYLNYRDLDIGINDPKNPNNYTQARIWGEKYFGKNFDRLVKVKTLVDPNNFFRNEQSIPPLPRHRH"},
	})
	require.NoError(t, err)
	return e
}

// insertBatch bypasses the service so tests can plant history directly.
func insertBatch(t *testing.T, st store.Store, enzyme domain.Enzyme, tech domain.User, out domain.CannabinoidOutputs, status domain.BatchStatus, at time.Time) domain.Batch {
	t.Helper()
	b := domain.Batch{
		ID:          idx.NewAt(at).String(),
		EnzymeID:    enzyme.ID,
		EnzymeName:  enzyme.Name,
		CBGAInput:   100,
		Outputs:     out,
		Timestamp:   at,
		LabTechID:   tech.ID,
		LabTechName: tech.DisplayName,
		Status:      status,
	}
	require.NoError(t, st.Batches().CreateBatch(context.Background(), b))
	return b
}

func TestCreateBatch(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	m := metrics.New()
	enzymes := &EnzymeService{Store: st}
	batches := &BatchService{Store: st, Metrics: m}
	tech := createUser(t, st, "Jordan Tech", domain.RoleLabTech)
	enzyme := createEnzyme(t, enzymes, "CBGA Synthase Alpha")

	t.Run("first batch is peak", func(t *testing.T) {
		b, err := batches.CreateBatch(ctx, identityOf(tech), domain.BatchInput{
			EnzymeID:  enzyme.ID,
			CBGAInput: 100,
			Outputs:   domain.CannabinoidOutputs{THCA: 35, CBDA: 32, CBCA: 33},
			Notes:     "  ancestral run  ",
		})
		require.NoError(t, err)
		require.Equal(t, domain.BatchPeakYield, b.Status)
		require.Equal(t, enzyme.Name, b.EnzymeName)
		require.Equal(t, tech.DisplayName, b.LabTechName)
		require.Equal(t, "ancestral run", b.Notes)

		stored, err := batches.Get(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, domain.BatchPeakYield, stored.Status)
	})

	t.Run("lower batch stays in progress", func(t *testing.T) {
		b, err := batches.CreateBatch(ctx, identityOf(tech), domain.BatchInput{
			EnzymeID:  enzyme.ID,
			CBGAInput: 100,
			Outputs:   domain.CannabinoidOutputs{THCA: 30, CBDA: 35, CBCA: 30},
		})
		require.NoError(t, err)
		require.Equal(t, domain.BatchInProgress, b.Status)
	})

	t.Run("out of range outputs are rejected", func(t *testing.T) {
		_, err := batches.CreateBatch(ctx, identityOf(tech), domain.BatchInput{
			EnzymeID:  enzyme.ID,
			CBGAInput: 100,
			Outputs:   domain.CannabinoidOutputs{THCA: 30, CBDA: 30, CBCA: 30},
		})
		require.ErrorIs(t, err, domain.ErrValidation)
		var oor *yield.OutOfRangeError
		require.True(t, errors.As(err, &oor))
		require.InDelta(t, 90, oor.Sum, 1e-9)
	})

	t.Run("field errors come before the sum check", func(t *testing.T) {
		_, err := batches.CreateBatch(ctx, identityOf(tech), domain.BatchInput{
			Outputs: domain.CannabinoidOutputs{THCA: 150},
		})
		var v *domain.ValidationError
		require.True(t, errors.As(err, &v))
		require.Contains(t, v.Fields, "enzymeId")
		require.Contains(t, v.Fields, "outputs.thca")
	})

	t.Run("unknown enzyme", func(t *testing.T) {
		_, err := batches.CreateBatch(ctx, identityOf(tech), domain.BatchInput{
			EnzymeID: "missing",
			Outputs:  domain.CannabinoidOutputs{THCA: 100},
		})
		require.ErrorIs(t, err, ErrEnzymeNotFound)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	count, err := st.Batches().CountBatches(ctx, store.BatchFilter{EnzymeID: enzyme.ID})
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

// failingUsersStore hands out transactions whose user lookups fail.
type failingUsersStore struct {
	store.Store
	err error
}

func (s failingUsersStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(failingUsersTx{storeTx: tx, err: s.err})
	})
}

// storeTx is embedded under its own name so the field does not shadow
// the promoted store.Tx.Tx method.
type storeTx = store.Tx

type failingUsersTx struct {
	storeTx
	err error
}

func (tx failingUsersTx) Users() store.Users {
	return failingUsers{Users: tx.storeTx.Users(), err: tx.err}
}

type failingUsers struct {
	store.Users
	err error
}

func (u failingUsers) GetUserByID(context.Context, string) (domain.User, error) {
	return domain.User{}, u.err
}

func TestCreateBatchLabTechLookup(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	enzyme := createEnzyme(t, &EnzymeService{Store: st}, "HCa")
	tech := createUser(t, st, "Current Name", domain.RoleLabTech)
	in := domain.BatchInput{
		EnzymeID:  enzyme.ID,
		CBGAInput: 100,
		Outputs:   domain.CannabinoidOutputs{THCA: 40, CBDA: 30, CBCA: 30},
	}

	t.Run("store failure is returned", func(t *testing.T) {
		unavailable := errors.New("store unavailable")
		batches := &BatchService{Store: failingUsersStore{Store: st, err: unavailable}}

		actor := identityOf(tech)
		actor.DisplayName = "stale token name"
		_, err := batches.CreateBatch(ctx, actor, in)
		require.ErrorIs(t, err, unavailable)

		n, err := st.Batches().CountBatches(ctx, store.BatchFilter{EnzymeID: enzyme.ID})
		require.NoError(t, err)
		require.Zero(t, n, "nothing should be committed")
	})

	t.Run("stored name wins over token name", func(t *testing.T) {
		batches := &BatchService{Store: st}
		actor := identityOf(tech)
		actor.DisplayName = "stale token name"

		b, err := batches.CreateBatch(ctx, actor, in)
		require.NoError(t, err)
		require.Equal(t, "Current Name", b.LabTechName)
	})

	t.Run("removed account falls back to token name", func(t *testing.T) {
		batches := &BatchService{Store: st}
		actor := domain.Identity{UserID: idx.New().String(), DisplayName: "Former Tech", Role: domain.RoleLabTech}

		b, err := batches.CreateBatch(ctx, actor, in)
		require.NoError(t, err)
		require.Equal(t, "Former Tech", b.LabTechName)
	})
}

func TestCreateBatchTieKeepsEarlierPeak(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	enzymes := &EnzymeService{Store: st}
	batches := &BatchService{Store: st}
	tech := createUser(t, st, "Sam Tech", domain.RoleLabTech)
	enzyme := createEnzyme(t, enzymes, "THCA Synthase Modern")

	base := time.Now().UTC().Add(-time.Hour)
	insertBatch(t, st, enzyme, tech, domain.CannabinoidOutputs{THCA: 80}, domain.BatchCompleted, base)
	insertBatch(t, st, enzyme, tech, domain.CannabinoidOutputs{THCA: 95}, domain.BatchCompleted, base.Add(time.Minute))
	earlier := insertBatch(t, st, enzyme, tech, domain.CannabinoidOutputs{THCA: 100}, domain.BatchPeakYield, base.Add(2*time.Minute))

	b, err := batches.CreateBatch(ctx, identityOf(tech), domain.BatchInput{
		EnzymeID:  enzyme.ID,
		CBGAInput: 100,
		Outputs:   domain.CannabinoidOutputs{THCA: 85, CBDA: 10, CBCA: 5},
	})
	require.NoError(t, err)
	require.Equal(t, domain.BatchPeakYield, b.Status)

	got, err := batches.Get(ctx, earlier.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BatchPeakYield, got.Status)
}

func TestCreateBatchHigherNeverDemotes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	enzymes := &EnzymeService{Store: st}
	batches := &BatchService{Store: st}
	tech := createUser(t, st, "Alex Tech", domain.RoleLabTech)
	enzyme := createEnzyme(t, enzymes, "CBDA Synthase Beta")

	first, err := batches.CreateBatch(ctx, identityOf(tech), domain.BatchInput{
		EnzymeID: enzyme.ID, Outputs: domain.CannabinoidOutputs{THCA: 8, CBDA: 87, CBCA: 2},
	})
	require.NoError(t, err)
	require.Equal(t, domain.BatchPeakYield, first.Status)

	second, err := batches.CreateBatch(ctx, identityOf(tech), domain.BatchInput{
		EnzymeID: enzyme.ID, Outputs: domain.CannabinoidOutputs{THCA: 6, CBDA: 90, CBCA: 4},
	})
	require.NoError(t, err)
	require.Equal(t, domain.BatchPeakYield, second.Status)

	got, err := batches.Get(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BatchPeakYield, got.Status)

	summary, err := enzymes.YieldSummary(ctx, enzyme.ID)
	require.NoError(t, err)
	require.Equal(t, 2, summary.BatchCount)
	require.InDelta(t, 100, summary.MaxTotal, 1e-9)
	require.ElementsMatch(t, []string{first.ID, second.ID}, summary.PeakBatches)
}

func TestUpdateBatchStatus(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	enzymes := &EnzymeService{Store: st}
	batches := &BatchService{Store: st}
	tech := createUser(t, st, "Riley Tech", domain.RoleLabTech)
	enzyme := createEnzyme(t, enzymes, "Intermediate Synthase Gamma")

	now := time.Now().UTC()
	peak := insertBatch(t, st, enzyme, tech, domain.CannabinoidOutputs{THCA: 100}, domain.BatchPeakYield, now.Add(-time.Minute))
	running := insertBatch(t, st, enzyme, tech, domain.CannabinoidOutputs{THCA: 96}, domain.BatchInProgress, now)

	b, err := batches.UpdateStatus(ctx, running.ID, domain.BatchCompleted)
	require.NoError(t, err)
	require.Equal(t, domain.BatchCompleted, b.Status)

	_, err = batches.UpdateStatus(ctx, running.ID, domain.BatchInProgress)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = batches.UpdateStatus(ctx, peak.ID, domain.BatchCompleted)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = batches.UpdateStatus(ctx, running.ID, domain.BatchPeakYield)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = batches.UpdateStatus(ctx, running.ID, "done")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = batches.UpdateStatus(ctx, "missing", domain.BatchCompleted)
	require.ErrorIs(t, err, ErrBatchNotFound)

	require.NoError(t, batches.Delete(ctx, running.ID))
	require.ErrorIs(t, batches.Delete(ctx, running.ID), ErrBatchNotFound)

	list, err := batches.List(ctx, store.BatchFilter{Status: domain.BatchPeakYield})
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = batches.List(ctx, store.BatchFilter{Status: "bogus"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestEnzymeRenameRefreshesBatches(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	enzymes := &EnzymeService{Store: st}
	tech := createUser(t, st, "Casey Tech", domain.RoleLabTech)
	enzyme := createEnzyme(t, enzymes, "Old Name")
	b := insertBatch(t, st, enzyme, tech, domain.CannabinoidOutputs{THCA: 100}, domain.BatchPeakYield, time.Now().UTC())

	upd := enzyme
	upd.Name = "New Name"
	upd.NewickData = "((A1A2a:0.1,Ca:0.2):0.05,HCa:0.3);"
	got, err := enzymes.Update(ctx, enzyme.ID, upd)
	require.NoError(t, err)
	require.Equal(t, "New Name", got.Name)
	require.Equal(t, enzyme.CreatedAt.Unix(), got.CreatedAt.Unix())

	stored, err := st.Batches().GetBatchByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "New Name", stored.EnzymeName)

	tree, err := enzymes.Phylogeny(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)

	upd.NewickData = "((A,B);"
	_, err = enzymes.Update(ctx, enzyme.ID, upd)
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = enzymes.Update(ctx, "missing", got)
	require.ErrorIs(t, err, ErrEnzymeNotFound)

	// batches outlive their enzyme
	require.NoError(t, enzymes.Delete(ctx, enzyme.ID))
	_, err = st.Batches().GetBatchByID(ctx, b.ID)
	require.NoError(t, err)
	require.ErrorIs(t, enzymes.Delete(ctx, enzyme.ID), ErrEnzymeNotFound)
	_, err = enzymes.YieldSummary(ctx, enzyme.ID)
	require.ErrorIs(t, err, ErrEnzymeNotFound)
}

func newAuthService(t *testing.T, st store.Store) *AuthService {
	t.Helper()
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("", pemKey)
	require.NoError(t, err)
	return &AuthService{Store: st, Signer: signer, Issuer: "lims-test", TokenTTL: time.Hour}
}

func TestAuthFlow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := newAuthService(t, st)

	u, err := auth.Register(ctx, RegisterInput{Email: " Tech@Lab.Example ", DisplayName: "Morgan", Password: "correct-horse"})
	require.NoError(t, err)
	require.Equal(t, domain.RoleLabTech, u.Role)
	require.Equal(t, "tech@lab.example", u.Email)

	_, err = auth.Register(ctx, RegisterInput{Email: "tech@lab.example", DisplayName: "Other", Password: "correct-horse"})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = auth.Register(ctx, RegisterInput{Email: "nope", DisplayName: "", Password: "short"})
	var v *domain.ValidationError
	require.True(t, errors.As(err, &v))
	require.Len(t, v.Fields, 3)

	_, err = auth.Login(ctx, "tech@lab.example", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login(ctx, "ghost@lab.example", "correct-horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	sess, err := auth.Login(ctx, "TECH@lab.example", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, sess.AccessToken)
	require.True(t, sess.ExpiresAt.After(time.Now()))

	keys := jwtx.NewKeySet()
	keys.AddSigner(auth.Signer)
	claims, err := jwtx.NewVerifierEdDSA(keys, "lims-test", nil).Verify(sess.AccessToken)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.Subject)
	require.Equal(t, "lab_tech", claims.Role)

	me, err := auth.Me(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, me.LastLogin)

	_, err = auth.Me(ctx, "missing")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateDisplayNameRefreshesBatches(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := newAuthService(t, st)
	enzymes := &EnzymeService{Store: st}
	tech := createUser(t, st, "Before", domain.RoleLabTech)
	enzyme := createEnzyme(t, enzymes, "CBGA Synthase Alpha")
	b := insertBatch(t, st, enzyme, tech, domain.CannabinoidOutputs{THCA: 100}, domain.BatchPeakYield, time.Now().UTC())

	u, err := auth.UpdateDisplayName(ctx, tech.ID, "  After  ")
	require.NoError(t, err)
	require.Equal(t, "After", u.DisplayName)

	stored, err := st.Batches().GetBatchByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "After", stored.LabTechName)

	_, err = auth.UpdateDisplayName(ctx, tech.ID, " ")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BootstrapService{Store: st, Token: "s3cret"}
	in := RegisterInput{Email: "admin@lab.example", DisplayName: "Admin", Password: "admin-password"}

	_, err := svc.Bootstrap(ctx, "wrong", in)
	require.ErrorIs(t, err, ErrBootstrapUnauthorized)

	admin, err := svc.Bootstrap(ctx, "s3cret", in)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, admin.Role)

	_, err = svc.Bootstrap(ctx, "s3cret", in)
	require.ErrorIs(t, err, ErrBootstrapAlready)

	disabled := &BootstrapService{Store: newTestStore(t)}
	_, err = disabled.Bootstrap(ctx, "", in)
	require.ErrorIs(t, err, ErrBootstrapUnauthorized)
}

func TestChangeRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}
	admin := createUser(t, st, "Admin", domain.RoleAdmin)
	tech := createUser(t, st, "Tech", domain.RoleLabTech)

	u, err := users.ChangeRole(ctx, identityOf(admin), tech.ID, "researcher")
	require.NoError(t, err)
	require.Equal(t, domain.RoleResearcher, u.Role)
	require.True(t, domain.CanPerformAction(&u, domain.RoleResearcher))

	_, err = users.ChangeRole(ctx, identityOf(admin), admin.ID, "lab_tech")
	require.ErrorIs(t, err, ErrOwnRole)

	_, err = users.ChangeRole(ctx, identityOf(admin), tech.ID, "superuser")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = users.ChangeRole(ctx, identityOf(admin), "missing", "lab_tech")
	require.ErrorIs(t, err, ErrUserNotFound)

	all, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestOrganismUploads(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	blobs := blob.NewMemory()
	organisms := &OrganismService{Store: st, Blob: blobs, MaxUploadBytes: 64}
	files := &FileService{Blob: blobs}

	o, err := organisms.Create(ctx, domain.Organism{
		Name:             "S. cerevisiae CB-1",
		Type:             domain.OrganismYeast,
		Strain:           "CEN.PK2",
		Taxonomy:         domain.Taxonomy{Genus: "Saccharomyces", Species: "cerevisiae"},
		ExpressedEnzymes: []string{"e1", "e1", " "},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"e1"}, o.ExpressedEnzymes)

	gf, err := organisms.UploadGenomicFile(ctx, o.ID, Upload{
		Name: "genome.fasta", ContentType: "application/x-unknown", Size: 11, Body: strings.NewReader(">s\nACGTACGT"),
	})
	require.NoError(t, err)
	require.Equal(t, "genome.fasta", gf.Name)
	require.Equal(t, FilesPath+"genomic-files/"+o.ID+"/"+gf.ID, gf.FastaURL)
	require.EqualValues(t, 11, gf.Size)

	_, rc, err := files.Open(ctx, strings.TrimPrefix(gf.FastaURL, FilesPath))
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	require.Equal(t, ">s\nACGTACGT", string(data))

	_, err = files.SignedURL(ctx, strings.TrimPrefix(gf.FastaURL, FilesPath), time.Minute)
	require.ErrorIs(t, err, blob.ErrUnsupported)

	img, err := organisms.UploadCultureImage(ctx, o.ID, Upload{
		Name: "plate.png", ContentType: "image/png", Size: 3, Body: bytes.NewReader([]byte("png")), Description: "day 3",
	})
	require.NoError(t, err)
	require.Equal(t, "day 3", img.Description)

	_, err = organisms.UploadCultureImage(ctx, o.ID, Upload{Name: "a.pdf", ContentType: "application/pdf", Size: 1, Body: strings.NewReader("x")})
	require.ErrorIs(t, err, ErrUnsupportedFileType)

	_, err = organisms.UploadCultureImage(ctx, o.ID, Upload{Name: "big.png", ContentType: "image/png", Size: 100, Body: bytes.NewReader(make([]byte, 100))})
	require.ErrorIs(t, err, ErrFileTooLarge)

	// declared size lies
	_, err = organisms.UploadCultureImage(ctx, o.ID, Upload{Name: "sly.png", ContentType: "image/png", Size: -1, Body: bytes.NewReader(make([]byte, 100))})
	require.ErrorIs(t, err, ErrFileTooLarge)

	_, err = organisms.UploadGenomicFile(ctx, "missing", Upload{Name: "g.fa", ContentType: "text/plain", Body: strings.NewReader("x")})
	require.ErrorIs(t, err, ErrOrganismNotFound)

	got, err := organisms.Get(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.GenomicFiles, 1)
	require.Len(t, got.CultureImages, 1)

	// updates leave files alone
	got.Strain = "CEN.PK113"
	got.GenomicFiles = nil
	upd, err := organisms.Update(ctx, o.ID, got)
	require.NoError(t, err)
	require.Equal(t, "CEN.PK113", upd.Strain)
	require.Len(t, upd.GenomicFiles, 1)

	require.NoError(t, organisms.DeleteGenomicFile(ctx, o.ID, gf.ID))
	require.ErrorIs(t, organisms.DeleteGenomicFile(ctx, o.ID, gf.ID), ErrFileNotFound)
	_, _, err = files.Open(ctx, "genomic-files/"+o.ID+"/"+gf.ID)
	require.ErrorIs(t, err, ErrFileNotFound)

	require.NoError(t, organisms.Delete(ctx, o.ID))
	left, err := blobs.List(ctx, "")
	require.NoError(t, err)
	require.Empty(t, left)
	require.ErrorIs(t, organisms.Delete(ctx, o.ID), ErrOrganismNotFound)
}

func TestStatsAndHousekeeping(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	enzymes := &EnzymeService{Store: st}
	tech := createUser(t, st, "Quinn", domain.RoleLabTech)
	enzyme := createEnzyme(t, enzymes, "CBGA Synthase Alpha")
	now := time.Now().UTC()
	insertBatch(t, st, enzyme, tech, domain.CannabinoidOutputs{THCA: 100}, domain.BatchPeakYield, now.Add(-time.Minute))
	insertBatch(t, st, enzyme, tech, domain.CannabinoidOutputs{THCA: 96}, domain.BatchInProgress, now)

	stats, err := (&StatsService{Store: st}).Get(ctx)
	require.NoError(t, err)
	require.Equal(t, Stats{Batches: 2, PeakYieldBatches: 1, InProgressBatches: 1, Enzymes: 1}, stats)

	// simulate a rename that skipped the batch copies
	require.NoError(t, st.Users().UpdateDisplayName(ctx, tech.ID, "Quinn R."))

	hk := NewHousekeepingService(st, slog.New(slog.DiscardHandler), metrics.New(), 0)
	require.Equal(t, time.Hour, hk.Interval)
	hk.RunOnce(ctx)

	list, err := st.Batches().ListBatches(ctx, store.BatchFilter{LabTechID: tech.ID})
	require.NoError(t, err)
	for _, b := range list {
		require.Equal(t, "Quinn R.", b.LabTechName)
	}

	hk.Start()
	hk.Stop()
}
