package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/blob"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/service"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"
)

// signedURLExpiry bounds redirects to presigned object URLs.
const signedURLExpiry = 5 * time.Minute

type FilesHandler struct {
	FileService *service.FileService
}

// ServeHTTP returns a stored genomic file or culture image. With the S3
// driver the client is redirected to a short-lived presigned URL.
//
//	@Summary		Download file
//	@Tags			Files
//	@Produce		octet-stream
//	@Param			key	path	string	true	"Storage key, e.g. genomic-files/{organismId}/{fileId}"
//	@Success		200
//	@Success		307
//	@Failure		404	{object}	limssdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/files/{key} [get].
func (h *FilesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	u, err := h.FileService.SignedURL(r.Context(), key, signedURLExpiry)
	switch {
	case err == nil:
		http.Redirect(w, r, u, http.StatusTemporaryRedirect)
		return
	case !errors.Is(err, blob.ErrUnsupported):
		writeServiceError(w, r, err)
		return
	}

	info, rc, err := h.FileService.Open(r.Context(), key)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer rc.Close()

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	if info.ETag != "" {
		w.Header().Set("ETag", strconv.Quote(info.ETag))
	}
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.Header().Set("Cache-Control", "private, max-age=300")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		slogx.FromContext(r.Context()).Warn("file download interrupted", "key", key, "error", err)
	}
}
