package limssdk

import (
	"time"

	"github.com/aussiebroadwan/ancestrybio/pkg/jwtx"
)

// ============================================================================
// Errors
// ============================================================================

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// ValidationErrorResponse carries per-field messages, keyed by JSON path
// (e.g. "outputs.thca").
type ValidationErrorResponse struct {
	Error            string            `json:"error"`
	ErrorDescription string            `json:"error_description,omitempty"`
	Fields           map[string]string `json:"fields,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
	Blob     string `json:"blob"`
}

// JWKSResponse is served at /.well-known/jwks.json.
type JWKSResponse jwtx.JWKS

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ============================================================================
// Users and auth
// ============================================================================

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

// BootstrapRequest creates the first admin.
type BootstrapRequest = RegisterRequest

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}

type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
}

type ListUsersResponse struct {
	Users []User `json:"users"`
}

type UpdateMeRequest struct {
	DisplayName string `json:"displayName"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// ============================================================================
// Enzymes
// ============================================================================

type EnzymeMetadata struct {
	Sequence             string   `json:"sequence"`
	ReconstructionMethod string   `json:"reconstructionMethod,omitempty"`
	ConfidenceScore      *float64 `json:"confidenceScore,omitempty"`
	Description          string   `json:"description,omitempty"`
}

// EnzymeRequest is the body of enzyme create and update.
type EnzymeRequest struct {
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Specialization string         `json:"specialization"`
	Metadata       EnzymeMetadata `json:"metadata"`
	NewickData     string         `json:"newickData,omitempty"`
}

type Enzyme struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Specialization string         `json:"specialization"`
	Metadata       EnzymeMetadata `json:"metadata"`
	NewickData     string         `json:"newickData,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type ListEnzymesResponse struct {
	Enzymes []Enzyme `json:"enzymes"`
}

// YieldSummary aggregates the batches of one enzyme.
type YieldSummary struct {
	EnzymeID    string   `json:"enzymeId"`
	BatchCount  int      `json:"batchCount"`
	Averages    Outputs  `json:"averages"`
	MaxTotal    float64  `json:"maxTotal"`
	PeakBatches []string `json:"peakBatches"`
}

// ============================================================================
// Organisms
// ============================================================================

type Taxonomy struct {
	Genus   string `json:"genus,omitempty"`
	Species string `json:"species,omitempty"`
}

type OrganismMetadata struct {
	GrowthCharacteristics string `json:"growthCharacteristics,omitempty"`
	Notes                 string `json:"notes,omitempty"`
}

type GenomicFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FastaURL   string    `json:"fastaUrl"`
	UploadDate time.Time `json:"uploadDate"`
	Size       int64     `json:"size"`
}

type CultureImage struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	UploadDate   time.Time `json:"uploadDate"`
	Description  string    `json:"description,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
}

// OrganismRequest is the body of organism create and update.
type OrganismRequest struct {
	Name             string           `json:"name"`
	Type             string           `json:"type"`
	Strain           string           `json:"strain"`
	Taxonomy         Taxonomy         `json:"taxonomy"`
	Metadata         OrganismMetadata `json:"metadata"`
	ExpressedEnzymes []string         `json:"expressedEnzymes"`
}

type Organism struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Type             string           `json:"type"`
	Strain           string           `json:"strain"`
	Taxonomy         Taxonomy         `json:"taxonomy"`
	Metadata         OrganismMetadata `json:"metadata"`
	ExpressedEnzymes []string         `json:"expressedEnzymes"`
	GenomicFiles     []GenomicFile    `json:"genomicFiles"`
	CultureImages    []CultureImage   `json:"cultureImages"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

type ListOrganismsResponse struct {
	Organisms []Organism `json:"organisms"`
}

// ============================================================================
// Batches
// ============================================================================

// Outputs are product percentages of the CBGA input.
type Outputs struct {
	THCA float64 `json:"thca"`
	CBDA float64 `json:"cbda"`
	CBCA float64 `json:"cbca"`
}

type CreateBatchRequest struct {
	EnzymeID  string  `json:"enzymeId"`
	CBGAInput float64 `json:"cbgaInput"`
	Outputs   Outputs `json:"outputs"`
	Notes     string  `json:"notes,omitempty"`
}

type Batch struct {
	ID          string    `json:"id"`
	EnzymeID    string    `json:"enzymeId"`
	EnzymeName  string    `json:"enzymeName"`
	CBGAInput   float64   `json:"cbgaInput"`
	Outputs     Outputs   `json:"outputs"`
	Total       float64   `json:"total"`
	Timestamp   time.Time `json:"timestamp"`
	LabTechID   string    `json:"labTechId"`
	LabTechName string    `json:"labTechName"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
}

type ListBatchesResponse struct {
	Batches []Batch `json:"batches"`
}

type UpdateBatchStatusRequest struct {
	Status string `json:"status"`
}

// ============================================================================
// Dashboard
// ============================================================================

type Stats struct {
	Batches           int64 `json:"batches"`
	PeakYieldBatches  int64 `json:"peakYieldBatches"`
	InProgressBatches int64 `json:"inProgressBatches"`
	CompletedBatches  int64 `json:"completedBatches"`
	Enzymes           int64 `json:"enzymes"`
	Organisms         int64 `json:"organisms"`
}
