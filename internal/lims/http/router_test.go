package http_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/blob"
	limshttp "github.com/aussiebroadwan/ancestrybio/internal/lims/http"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/metrics"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/service"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store/drivers/sqlite"
	"github.com/aussiebroadwan/ancestrybio/pkg/cryptox"
	"github.com/aussiebroadwan/ancestrybio/pkg/httpx"
	"github.com/aussiebroadwan/ancestrybio/pkg/jwtx"
	"github.com/aussiebroadwan/ancestrybio/pkg/limssdk"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer         = "lims-test"
	testBootstrapToken = "bootstrap-secret"
	testMaxUpload      = 64
)

type testEnv struct {
	srv     *httptest.Server
	metrics *metrics.Metrics
}

func (e *testEnv) client() *limssdk.Client { return limssdk.NewClient(e.srv.URL) }

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// the default limits are tuned for production traffic
	strict, moderate := httpx.StrictLimit, httpx.ModerateLimit
	httpx.StrictLimit, httpx.ModerateLimit = httpx.LenientLimit, httpx.LenientLimit
	t.Cleanup(func() { httpx.StrictLimit, httpx.ModerateLimit = strict, moderate })

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test", pemKey)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)
	verifier := jwtx.NewVerifierEdDSA(keys, testIssuer, nil)

	objects := blob.NewMemory()
	m := metrics.New()
	logger := slog.New(slog.DiscardHandler)

	r := limshttp.NewRouter(keys, verifier, "test", st, objects, m, logger)
	r.AuthService = &service.AuthService{Store: st, Signer: signer, Issuer: testIssuer, TokenTTL: time.Hour}
	r.BootstrapService = &service.BootstrapService{Store: st, Token: testBootstrapToken}
	r.UserService = &service.UserService{Store: st}
	r.EnzymeService = &service.EnzymeService{Store: st}
	r.OrganismService = &service.OrganismService{Store: st, Blob: objects, Metrics: m, MaxUploadBytes: testMaxUpload}
	r.FileService = &service.FileService{Blob: objects}
	r.BatchService = &service.BatchService{Store: st, Metrics: m}
	r.StatsService = &service.StatsService{Store: st}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &testEnv{srv: srv, metrics: m}
}

// login registers (or bootstraps, for admin) an account and returns a
// client holding its token.
func (e *testEnv) login(t *testing.T, email, name, role string) (*limssdk.Client, limssdk.User) {
	t.Helper()
	ctx := context.Background()
	c := e.client()
	req := limssdk.RegisterRequest{Email: email, DisplayName: name, Password: "correct-horse"}

	var (
		u   *limssdk.User
		err error
	)
	if role == "admin" {
		u, err = c.Bootstrap(ctx, testBootstrapToken, req)
	} else {
		u, err = c.Register(ctx, req)
	}
	require.NoError(t, err)
	_, err = c.Login(ctx, email, "correct-horse")
	require.NoError(t, err)
	return c, *u
}

// promote has admin grant role to u, then logs u in again so the token
// carries the new role.
func (e *testEnv) promote(t *testing.T, admin *limssdk.Client, u limssdk.User, role string) *limssdk.Client {
	t.Helper()
	ctx := context.Background()
	_, err := admin.ChangeRole(ctx, u.ID, role)
	require.NoError(t, err)
	c := e.client()
	_, err = c.Login(ctx, u.Email, "correct-horse")
	require.NoError(t, err)
	return c
}

func requireAPIError(t *testing.T, err error, status int, code string) *limssdk.APIError {
	t.Helper()
	var apiErr *limssdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *limssdk.APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func enzymeRequest(name string) limssdk.EnzymeRequest {
	return limssdk.EnzymeRequest{
		Name:           name,
		Type:           "ancestral",
		Specialization: "promiscuous",
		Metadata:       limssdk.EnzymeMetadata{Sequence: "MKCSTFSFWFVCKIIFFFFSFNIQTSIANPRENFLKCFSQYIPNNATNLKLVYTQNNPLYMSVLNSTIHNLRFTSDTTPKPLVIVTPSHVSHIQGTILCSKKVGLQIRTRSGGHDSEGMSYISQVPFVIVDLRNMRSIKIDVHSQTAWVEAGATLGEVYYWVNEKNENLSLAAGYCPTVCAGGHFGGGGYGPLMRNYGLAADNIIDAHLVNVHGKVLDRKSMGEDLFWALRGGGAESFGIIVAWKIRLVAVPKSTMFSVKKIMEIHELVKLVNKWQNIAYKYDKDLLLMTHFITRNITDNQGKNKTAIHTYFSSVFLGGVDSLVDLMNKSFPELGIKKTDCRQLSWIDTIIFYSGVVNYDTDNFNKEILLDRSAGQNGAFKIKLDYVKKPIPESVFVQILEKLYEEDIGAGMYALYPYGGIMDEISESAIPFPHRAGILYELWYICSWEKQEDNEKHLNWIRNIYNFMTPYVSKNPRLAYLNYRDLDIGINDPKNPNNYTQARIWGEKYFGKNFDRLVKVKTLVDPNNFFRNEQSIPPLPRHRH"},
		NewickData:     "((A1:0.1,A2:0.2)a:0.3,C:0.4);",
	}
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	live, err := env.client().Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	resp, err := http.Get(env.srv.URL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `"blob":"ok"`)

	jwks, err := env.client().JWKS(ctx)
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "test", jwks.Keys[0].Kid)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)
}

func TestBootstrapAndRoles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.client().Bootstrap(ctx, "wrong", limssdk.BootstrapRequest{Email: "a@lab.example", DisplayName: "A", Password: "correct-horse"})
	requireAPIError(t, err, http.StatusUnauthorized, "unauthorized")

	admin, _ := env.login(t, "admin@lab.example", "Admin", "admin")

	_, err = env.client().Bootstrap(ctx, testBootstrapToken, limssdk.BootstrapRequest{Email: "b@lab.example", DisplayName: "B", Password: "correct-horse"})
	requireAPIError(t, err, http.StatusConflict, limssdk.ErrorCodeConflict)

	tech, techUser := env.login(t, "tech@lab.example", "Tech", "lab_tech")
	require.Equal(t, "lab_tech", techUser.Role)

	t.Run("register validation", func(t *testing.T) {
		_, err := env.client().Register(ctx, limssdk.RegisterRequest{Email: "nope", Password: "short"})
		apiErr := requireAPIError(t, err, http.StatusBadRequest, limssdk.ErrorCodeValidation)
		require.Contains(t, apiErr.Fields, "email")
		require.Contains(t, apiErr.Fields, "password")

		_, err = env.client().Register(ctx, limssdk.RegisterRequest{Email: "tech@lab.example", DisplayName: "Again", Password: "correct-horse"})
		requireAPIError(t, err, http.StatusConflict, limssdk.ErrorCodeConflict)
	})

	t.Run("bad credentials", func(t *testing.T) {
		_, err := env.client().Login(ctx, "tech@lab.example", "wrong-password")
		requireAPIError(t, err, http.StatusUnauthorized, limssdk.ErrorCodeInvalidCredential)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := env.client().ListEnzymes(ctx, nil)
		requireAPIError(t, err, http.StatusUnauthorized, limssdk.ErrorCodeInvalidToken)
	})

	t.Run("lab tech cannot manage enzymes or users", func(t *testing.T) {
		_, err := tech.CreateEnzyme(ctx, enzymeRequest("Forbidden Synthase"))
		requireAPIError(t, err, http.StatusForbidden, limssdk.ErrorCodeInsufficientRole)

		_, err = tech.ListUsers(ctx)
		requireAPIError(t, err, http.StatusForbidden, limssdk.ErrorCodeInsufficientRole)
	})

	t.Run("admin manages roles", func(t *testing.T) {
		users, err := admin.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)

		me, err := admin.Me(ctx)
		require.NoError(t, err)
		_, err = admin.ChangeRole(ctx, me.ID, "lab_tech")
		requireAPIError(t, err, http.StatusConflict, limssdk.ErrorCodeConflict)

		_, err = admin.ChangeRole(ctx, techUser.ID, "superuser")
		requireAPIError(t, err, http.StatusBadRequest, limssdk.ErrorCodeValidation)

		researcher := env.promote(t, admin, techUser, "researcher")
		_, err = researcher.CreateEnzyme(ctx, enzymeRequest("Allowed Synthase"))
		require.NoError(t, err)
	})

	t.Run("update me", func(t *testing.T) {
		u, err := tech.UpdateMe(ctx, "Tech Renamed")
		require.NoError(t, err)
		require.Equal(t, "Tech Renamed", u.DisplayName)
		require.NotNil(t, u.LastLogin)
	})
}

func TestBatchFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin, _ := env.login(t, "admin@lab.example", "Admin", "admin")
	_, researcherUser := env.login(t, "researcher@lab.example", "Riley", "lab_tech")
	researcher := env.promote(t, admin, researcherUser, "researcher")
	tech, techUser := env.login(t, "tech@lab.example", "Jordan", "lab_tech")

	enzyme, err := researcher.CreateEnzyme(ctx, enzymeRequest("CBGA Synthase Alpha"))
	require.NoError(t, err)

	record := func(thca, cbda, cbca float64) *limssdk.Batch {
		t.Helper()
		b, err := tech.CreateBatch(ctx, limssdk.CreateBatchRequest{
			EnzymeID:  enzyme.ID,
			CBGAInput: 100,
			Outputs:   limssdk.Outputs{THCA: thca, CBDA: cbda, CBCA: cbca},
		})
		require.NoError(t, err)
		return b
	}

	t.Run("out of range outputs are rejected", func(t *testing.T) {
		_, err := tech.CreateBatch(ctx, limssdk.CreateBatchRequest{
			EnzymeID:  enzyme.ID,
			CBGAInput: 100,
			Outputs:   limssdk.Outputs{THCA: 50, CBDA: 30, CBCA: 10},
		})
		apiErr := requireAPIError(t, err, http.StatusBadRequest, limssdk.ErrorCodeValidation)
		require.Contains(t, apiErr.Fields["outputs"], "current total: 90%")
	})

	t.Run("unknown enzyme", func(t *testing.T) {
		_, err := tech.CreateBatch(ctx, limssdk.CreateBatchRequest{
			EnzymeID:  "missing",
			CBGAInput: 100,
			Outputs:   limssdk.Outputs{THCA: 40, CBDA: 30, CBCA: 30},
		})
		requireAPIError(t, err, http.StatusNotFound, limssdk.ErrorCodeNotFound)
	})

	first := record(30, 30, 36)  // 96
	second := record(30, 30, 38) // 98
	third := record(40, 30, 30)  // 100
	tie := record(35, 35, 30)    // 100

	t.Run("peak classification", func(t *testing.T) {
		require.Equal(t, "peak-yield", first.Status)
		require.Equal(t, "peak-yield", second.Status)
		require.Equal(t, "peak-yield", third.Status)
		require.Equal(t, "peak-yield", tie.Status)
		require.InDelta(t, 100, tie.Total, 1e-9)
		require.Equal(t, "Jordan", tie.LabTechName)
		require.Equal(t, enzyme.Name, tie.EnzymeName)

		again, err := tech.GetBatch(ctx, third.ID)
		require.NoError(t, err)
		require.Equal(t, "peak-yield", again.Status)

		lower := record(32, 32, 32) // 96
		require.Equal(t, "in-progress", lower.Status)
	})

	t.Run("status transitions", func(t *testing.T) {
		_, err := tech.UpdateBatchStatus(ctx, third.ID, "completed")
		requireAPIError(t, err, http.StatusConflict, limssdk.ErrorCodeConflict)

		_, err = tech.UpdateBatchStatus(ctx, third.ID, "finished")
		requireAPIError(t, err, http.StatusBadRequest, limssdk.ErrorCodeValidation)

		inProgress, err := tech.ListBatches(ctx, url.Values{"status": {"in-progress"}})
		require.NoError(t, err)
		require.Len(t, inProgress, 1)

		done, err := tech.UpdateBatchStatus(ctx, inProgress[0].ID, "completed")
		require.NoError(t, err)
		require.Equal(t, "completed", done.Status)
	})

	t.Run("listing and summaries", func(t *testing.T) {
		mine, err := tech.ListBatches(ctx, url.Values{"labTechId": {techUser.ID}, "enzymeId": {enzyme.ID}})
		require.NoError(t, err)
		require.Len(t, mine, 5)

		_, err = tech.ListBatches(ctx, url.Values{"status": {"bogus"}})
		requireAPIError(t, err, http.StatusBadRequest, limssdk.ErrorCodeValidation)

		summary, err := tech.EnzymeYield(ctx, enzyme.ID)
		require.NoError(t, err)
		require.Equal(t, 5, summary.BatchCount)
		require.InDelta(t, 100, summary.MaxTotal, 1e-9)
		require.ElementsMatch(t, []string{first.ID, second.ID, third.ID, tie.ID}, summary.PeakBatches)

		tree, err := tech.Phylogeny(ctx)
		require.NoError(t, err)
		require.Len(t, tree, 1)

		stats, err := tech.Stats(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 5, stats.Batches)
		require.EqualValues(t, 4, stats.PeakYieldBatches)
		require.EqualValues(t, 1, stats.CompletedBatches)
		require.EqualValues(t, 1, stats.Enzymes)
	})

	t.Run("deletion is gated", func(t *testing.T) {
		err := tech.DeleteBatch(ctx, first.ID)
		requireAPIError(t, err, http.StatusForbidden, limssdk.ErrorCodeInsufficientRole)

		require.NoError(t, researcher.DeleteBatch(ctx, first.ID))
		_, err = tech.GetBatch(ctx, first.ID)
		requireAPIError(t, err, http.StatusNotFound, limssdk.ErrorCodeNotFound)

		err = researcher.DeleteEnzyme(ctx, enzyme.ID)
		requireAPIError(t, err, http.StatusForbidden, limssdk.ErrorCodeInsufficientRole)
		require.NoError(t, admin.DeleteEnzyme(ctx, enzyme.ID))

		// batches outlive their enzyme
		_, err = tech.GetBatch(ctx, second.ID)
		require.NoError(t, err)
	})
}

func TestOrganismFiles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin, _ := env.login(t, "admin@lab.example", "Admin", "admin")
	_, researcherUser := env.login(t, "researcher@lab.example", "Riley", "lab_tech")
	researcher := env.promote(t, admin, researcherUser, "researcher")
	tech, _ := env.login(t, "tech@lab.example", "Jordan", "lab_tech")

	org, err := researcher.CreateOrganism(ctx, limssdk.OrganismRequest{
		Name:     "S. cerevisiae BY4741",
		Type:     "yeast",
		Strain:   "BY4741",
		Taxonomy: limssdk.Taxonomy{Genus: "Saccharomyces", Species: "cerevisiae"},
	})
	require.NoError(t, err)
	require.Empty(t, org.GenomicFiles)

	fasta := ">seq1\nACGT\n"
	gf, err := researcher.UploadGenomicFile(ctx, org.ID, "seq.fasta", "text/x-fasta", strings.NewReader(fasta))
	require.NoError(t, err)
	require.EqualValues(t, len(fasta), gf.Size)
	require.True(t, strings.HasPrefix(gf.FastaURL, service.FilesPath))

	t.Run("download", func(t *testing.T) {
		body, err := tech.Download(ctx, gf.FastaURL)
		require.NoError(t, err)
		require.Equal(t, fasta, string(body))

		_, err = tech.Download(ctx, service.FilesPath+"genomic-files/nope/nope")
		requireAPIError(t, err, http.StatusNotFound, limssdk.ErrorCodeNotFound)
	})

	t.Run("upload checks", func(t *testing.T) {
		_, err := tech.UploadGenomicFile(ctx, org.ID, "seq.fasta", "text/x-fasta", strings.NewReader(fasta))
		requireAPIError(t, err, http.StatusForbidden, limssdk.ErrorCodeInsufficientRole)

		_, err = researcher.UploadCultureImage(ctx, org.ID, "plate.fasta", "text/x-fasta", "", strings.NewReader(fasta))
		requireAPIError(t, err, http.StatusUnsupportedMediaType, limssdk.ErrorCodeUnsupportedType)

		big := strings.Repeat("A", testMaxUpload+1)
		_, err = researcher.UploadGenomicFile(ctx, org.ID, "big.fasta", "text/x-fasta", strings.NewReader(big))
		requireAPIError(t, err, http.StatusRequestEntityTooLarge, limssdk.ErrorCodeFileTooLarge)

		_, err = researcher.UploadGenomicFile(ctx, "missing", "seq.fasta", "text/x-fasta", strings.NewReader(fasta))
		requireAPIError(t, err, http.StatusNotFound, limssdk.ErrorCodeNotFound)
	})

	t.Run("culture image", func(t *testing.T) {
		img, err := researcher.UploadCultureImage(ctx, org.ID, "plate.png", "image/png", "day 3 plate", strings.NewReader("\x89PNG fake"))
		require.NoError(t, err)
		require.Equal(t, "day 3 plate", img.Description)

		got, err := tech.GetOrganism(ctx, org.ID)
		require.NoError(t, err)
		require.Len(t, got.GenomicFiles, 1)
		require.Len(t, got.CultureImages, 1)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.client().Livez(context.Background())
	require.NoError(t, err)

	resp, err := http.Get(env.srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `lims_http_requests_total{code="200",method="GET",route="GET /livez"} 1`)
}
