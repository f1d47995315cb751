package lims_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/ancestrybio/pkg/limssdk"
	"github.com/stretchr/testify/require"
)

// TestBootstrapOnlyOnce verifies the bootstrap endpoint closes after the
// first admin exists.
func TestBootstrapOnlyOnce(t *testing.T) {
	baseURL, cleanup := setupLIMSContainer(t)
	defer cleanup()

	client := limssdk.NewClient(baseURL)

	_, err := client.Bootstrap(t.Context(), "wrong-token", limssdk.BootstrapRequest{
		Email: adminEmail, DisplayName: adminName, Password: adminPassword,
	})
	requireAPIError(t, err, http.StatusUnauthorized)

	bootstrapAdmin(t, baseURL)

	_, err = client.Bootstrap(t.Context(), bootstrapToken, limssdk.BootstrapRequest{
		Email: "second@lab.example", DisplayName: "Second", Password: adminPassword,
	})
	requireAPIError(t, err, http.StatusConflict)
}

// TestRoleHierarchy verifies that each role reaches exactly the endpoints at
// or below its rank.
func TestRoleHierarchy(t *testing.T) {
	baseURL, cleanup := setupLIMSContainer(t)
	defer cleanup()

	admin := bootstrapAdmin(t, baseURL)
	researcher := registerMember(t, baseURL, admin, "res@lab.example", "Researcher", "researcher")
	tech := registerMember(t, baseURL, admin, "tech@lab.example", "Lab Tech", "lab_tech")

	// Lab techs read but cannot create enzymes
	_, err := tech.ListEnzymes(t.Context(), nil)
	require.NoError(t, err)
	_, err = tech.CreateEnzyme(t.Context(), sampleEnzyme("Denied"))
	apiErr := requireAPIError(t, err, http.StatusForbidden)
	require.Equal(t, limssdk.ErrorCodeInsufficientRole, apiErr.Code)

	// Researchers create but cannot delete enzymes
	enzyme, err := researcher.CreateEnzyme(t.Context(), sampleEnzyme("A1A2a"))
	require.NoError(t, err)
	requireAPIError(t, researcher.DeleteEnzyme(t.Context(), enzyme.ID), http.StatusForbidden)

	// Researchers cannot manage users
	_, err = researcher.ListUsers(t.Context())
	requireAPIError(t, err, http.StatusForbidden)

	// Admins can do all of it
	users, err := admin.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.NoError(t, admin.DeleteEnzyme(t.Context(), enzyme.ID))

	// Unauthenticated requests are rejected
	_, err = limssdk.NewClient(baseURL).ListEnzymes(t.Context(), nil)
	requireAPIError(t, err, http.StatusUnauthorized)
}

// TestLoginFailures verifies wrong passwords and unknown accounts look the same.
func TestLoginFailures(t *testing.T) {
	baseURL, cleanup := setupLIMSContainer(t)
	defer cleanup()

	bootstrapAdmin(t, baseURL)
	client := limssdk.NewClient(baseURL)

	_, err := client.Login(t.Context(), adminEmail, "not-the-password")
	wrong := requireAPIError(t, err, http.StatusUnauthorized)

	_, err = client.Login(t.Context(), "nobody@lab.example", adminPassword)
	unknown := requireAPIError(t, err, http.StatusUnauthorized)

	require.Equal(t, wrong.Code, unknown.Code)
	require.Equal(t, limssdk.ErrorCodeInvalidCredential, wrong.Code)
}
