package limssdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
)

// Client talks to a LIMS server. Calls made before Login (or after
// WithToken) are unauthenticated.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithToken returns a copy of c that sends the given bearer token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) Token() string { return c.token }

func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	return &out, c.do(ctx, http.MethodGet, "/livez", nil, nil, http.StatusOK, &out)
}

// Readyz returns the readiness report. A 503 is returned as an *APIError.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	return &out, c.do(ctx, http.MethodGet, "/readyz", nil, nil, http.StatusOK, &out)
}

func (c *Client) JWKS(ctx context.Context) (*JWKSResponse, error) {
	var out JWKSResponse
	return &out, c.do(ctx, http.MethodGet, "/.well-known/jwks.json", nil, nil, http.StatusOK, &out)
}

func (c *Client) Bootstrap(ctx context.Context, bootstrapToken string, req BootstrapRequest) (*User, error) {
	var out User
	h := map[string]string{"X-Bootstrap-Token": bootstrapToken}
	return &out, c.do(ctx, http.MethodPost, "/v1/bootstrap", req, h, http.StatusCreated, &out)
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var out User
	return &out, c.do(ctx, http.MethodPost, "/v1/auth/register", req, nil, http.StatusCreated, &out)
}

// Login stores the issued token on c for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{Email: email, Password: password}, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	c.token = out.AccessToken
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	return &out, c.do(ctx, http.MethodGet, "/v1/auth/me", nil, nil, http.StatusOK, &out)
}

func (c *Client) UpdateMe(ctx context.Context, displayName string) (*User, error) {
	var out User
	return &out, c.do(ctx, http.MethodPatch, "/v1/auth/me", UpdateMeRequest{DisplayName: displayName}, nil, http.StatusOK, &out)
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out ListUsersResponse
	return out.Users, c.do(ctx, http.MethodGet, "/v1/users", nil, nil, http.StatusOK, &out)
}

func (c *Client) ChangeRole(ctx context.Context, userID, role string) (*User, error) {
	var out User
	path := "/v1/users/" + url.PathEscape(userID) + "/role"
	return &out, c.do(ctx, http.MethodPatch, path, ChangeRoleRequest{Role: role}, nil, http.StatusOK, &out)
}

func (c *Client) CreateEnzyme(ctx context.Context, req EnzymeRequest) (*Enzyme, error) {
	var out Enzyme
	return &out, c.do(ctx, http.MethodPost, "/v1/enzymes", req, nil, http.StatusCreated, &out)
}

func (c *Client) GetEnzyme(ctx context.Context, id string) (*Enzyme, error) {
	var out Enzyme
	return &out, c.do(ctx, http.MethodGet, "/v1/enzymes/"+url.PathEscape(id), nil, nil, http.StatusOK, &out)
}

func (c *Client) ListEnzymes(ctx context.Context, q url.Values) ([]Enzyme, error) {
	var out ListEnzymesResponse
	return out.Enzymes, c.do(ctx, http.MethodGet, withQuery("/v1/enzymes", q), nil, nil, http.StatusOK, &out)
}

func (c *Client) UpdateEnzyme(ctx context.Context, id string, req EnzymeRequest) (*Enzyme, error) {
	var out Enzyme
	return &out, c.do(ctx, http.MethodPut, "/v1/enzymes/"+url.PathEscape(id), req, nil, http.StatusOK, &out)
}

func (c *Client) DeleteEnzyme(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/enzymes/"+url.PathEscape(id), nil, nil, http.StatusNoContent, nil)
}

func (c *Client) EnzymeYield(ctx context.Context, id string) (*YieldSummary, error) {
	var out YieldSummary
	return &out, c.do(ctx, http.MethodGet, "/v1/enzymes/"+url.PathEscape(id)+"/yield", nil, nil, http.StatusOK, &out)
}

func (c *Client) Phylogeny(ctx context.Context) ([]Enzyme, error) {
	var out ListEnzymesResponse
	return out.Enzymes, c.do(ctx, http.MethodGet, "/v1/phylogeny", nil, nil, http.StatusOK, &out)
}

func (c *Client) CreateOrganism(ctx context.Context, req OrganismRequest) (*Organism, error) {
	var out Organism
	return &out, c.do(ctx, http.MethodPost, "/v1/organisms", req, nil, http.StatusCreated, &out)
}

func (c *Client) GetOrganism(ctx context.Context, id string) (*Organism, error) {
	var out Organism
	return &out, c.do(ctx, http.MethodGet, "/v1/organisms/"+url.PathEscape(id), nil, nil, http.StatusOK, &out)
}

func (c *Client) UploadGenomicFile(ctx context.Context, organismID, name, contentType string, r io.Reader) (*GenomicFile, error) {
	var out GenomicFile
	path := "/v1/organisms/" + url.PathEscape(organismID) + "/genomic-files"
	return &out, c.upload(ctx, path, name, contentType, r, nil, &out)
}

func (c *Client) UploadCultureImage(ctx context.Context, organismID, name, contentType, description string, r io.Reader) (*CultureImage, error) {
	var out CultureImage
	path := "/v1/organisms/" + url.PathEscape(organismID) + "/culture-images"
	return &out, c.upload(ctx, path, name, contentType, r, map[string]string{"description": description}, &out)
}

// Download fetches a stored file by the URL recorded on the organism.
func (c *Client) Download(ctx context.Context, fileURL string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp, body)
	}
	return body, nil
}

func (c *Client) CreateBatch(ctx context.Context, req CreateBatchRequest) (*Batch, error) {
	var out Batch
	return &out, c.do(ctx, http.MethodPost, "/v1/batches", req, nil, http.StatusCreated, &out)
}

func (c *Client) GetBatch(ctx context.Context, id string) (*Batch, error) {
	var out Batch
	return &out, c.do(ctx, http.MethodGet, "/v1/batches/"+url.PathEscape(id), nil, nil, http.StatusOK, &out)
}

// ListBatches accepts the enzymeId, labTechId and status filters.
func (c *Client) ListBatches(ctx context.Context, q url.Values) ([]Batch, error) {
	var out ListBatchesResponse
	return out.Batches, c.do(ctx, http.MethodGet, withQuery("/v1/batches", q), nil, nil, http.StatusOK, &out)
}

func (c *Client) UpdateBatchStatus(ctx context.Context, id, status string) (*Batch, error) {
	var out Batch
	path := "/v1/batches/" + url.PathEscape(id) + "/status"
	return &out, c.do(ctx, http.MethodPatch, path, UpdateBatchStatusRequest{Status: status}, nil, http.StatusOK, &out)
}

func (c *Client) DeleteBatch(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/batches/"+url.PathEscape(id), nil, nil, http.StatusNoContent, nil)
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	return &out, c.do(ctx, http.MethodGet, "/v1/stats", nil, nil, http.StatusOK, &out)
}

// ============================================================================
// helpers
// ============================================================================

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, headers map[string]string, expected int, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	return decodeJSON(resp, out, expected)
}

func (c *Client) upload(ctx context.Context, path, name, contentType string, r io.Reader, fields map[string]string, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	return decodeJSON(resp, out, http.StatusCreated)
}

// decodeJSON reads resp once, returning an *APIError for unexpected status
// codes. A nil target only checks the status.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, body)
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
