package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/service"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/pkg/httpx"
	"github.com/aussiebroadwan/ancestrybio/pkg/limssdk"
)

// maxFieldBytes caps the non-file multipart fields (description).
const maxFieldBytes = 4 << 10

var errNoFilePart = errors.New(`multipart body has no "file" part`)

type OrganismsHandler struct {
	OrganismService *service.OrganismService
}

// HandleCreate records a new host organism.
//
//	@Summary		Create organism
//	@Description	Requires the researcher role. Files are attached with the upload endpoints.
//	@Tags			Organisms
//	@Accept			json
//	@Produce		json
//	@Param			request	body		limssdk.OrganismRequest			true	"Organism"
//	@Success		201		{object}	limssdk.Organism				"Created organism"
//	@Failure		400		{object}	limssdk.ValidationErrorResponse	"Validation failed"
//	@Failure		403		{object}	limssdk.ErrorResponse			"Requires researcher"
//	@Security		BearerAuth
//	@Router			/v1/organisms [post].
func (h *OrganismsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req limssdk.OrganismRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	o, err := h.OrganismService.Create(r.Context(), fromOrganismRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toOrganism(o))
}

// HandleList returns organisms, optionally filtered by type or expressed enzyme.
//
//	@Summary		List organisms
//	@Tags			Organisms
//	@Produce		json
//	@Param			type		query		string							false	"yeast, bacteria or fungi"
//	@Param			enzymeId	query		string							false	"Expressed enzyme ID"
//	@Success		200			{object}	limssdk.ListOrganismsResponse	"Organisms"
//	@Security		BearerAuth
//	@Router			/v1/organisms [get].
func (h *OrganismsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	organisms, err := h.OrganismService.List(r.Context(), store.OrganismFilter{
		Type:     domain.OrganismType(q.Get("type")),
		EnzymeID: q.Get("enzymeId"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := limssdk.ListOrganismsResponse{Organisms: make([]limssdk.Organism, len(organisms))}
	for i, o := range organisms {
		resp.Organisms[i] = toOrganism(o)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet returns one organism with its files.
//
//	@Summary		Get organism
//	@Tags			Organisms
//	@Produce		json
//	@Param			id	path		string					true	"Organism ID"
//	@Success		200	{object}	limssdk.Organism		"Organism"
//	@Failure		404	{object}	limssdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/organisms/{id} [get].
func (h *OrganismsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	o, err := h.OrganismService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOrganism(o))
}

// HandleUpdate replaces an organism's attributes. Attached files are kept.
//
//	@Summary		Update organism
//	@Description	Requires the researcher role.
//	@Tags			Organisms
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Organism ID"
//	@Param			request	body		limssdk.OrganismRequest			true	"Organism"
//	@Success		200		{object}	limssdk.Organism				"Updated organism"
//	@Failure		400		{object}	limssdk.ValidationErrorResponse	"Validation failed"
//	@Failure		404		{object}	limssdk.ErrorResponse			"Not found"
//	@Security		BearerAuth
//	@Router			/v1/organisms/{id} [put].
func (h *OrganismsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req limssdk.OrganismRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	o, err := h.OrganismService.Update(r.Context(), r.PathValue("id"), fromOrganismRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toOrganism(o))
}

// HandleDelete removes an organism and its stored files.
//
//	@Summary		Delete organism
//	@Description	Requires the admin role.
//	@Tags			Organisms
//	@Param			id	path	string	true	"Organism ID"
//	@Success		204
//	@Failure		403	{object}	limssdk.ErrorResponse	"Requires admin"
//	@Failure		404	{object}	limssdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/organisms/{id} [delete].
func (h *OrganismsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.OrganismService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUploadGenomicFile attaches a FASTA file.
//
//	@Summary		Upload genomic file
//	@Description	Requires the researcher role. Multipart form with a "file" part holding FASTA data.
//	@Tags			Organisms
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string					true	"Organism ID"
//	@Param			file	formData	file					true	"FASTA file"
//	@Success		201		{object}	limssdk.GenomicFile		"Stored file"
//	@Failure		404		{object}	limssdk.ErrorResponse	"Organism not found"
//	@Failure		413		{object}	limssdk.ErrorResponse	"File too large"
//	@Failure		415		{object}	limssdk.ErrorResponse	"Not a FASTA file"
//	@Security		BearerAuth
//	@Router			/v1/organisms/{id}/genomic-files [post].
func (h *OrganismsHandler) HandleUploadGenomicFile(w http.ResponseWriter, r *http.Request) {
	var stored limssdk.GenomicFile
	err := h.readUpload(w, r, func(up service.Upload) error {
		f, err := h.OrganismService.UploadGenomicFile(r.Context(), r.PathValue("id"), up)
		stored = toGenomicFile(f)
		return err
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, stored)
}

// HandleDeleteGenomicFile detaches and deletes a FASTA file.
//
//	@Summary		Delete genomic file
//	@Description	Requires the researcher role.
//	@Tags			Organisms
//	@Param			id		path	string	true	"Organism ID"
//	@Param			fileId	path	string	true	"File ID"
//	@Success		204
//	@Failure		404	{object}	limssdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/organisms/{id}/genomic-files/{fileId} [delete].
func (h *OrganismsHandler) HandleDeleteGenomicFile(w http.ResponseWriter, r *http.Request) {
	if err := h.OrganismService.DeleteGenomicFile(r.Context(), r.PathValue("id"), r.PathValue("fileId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUploadCultureImage attaches a culture image.
//
//	@Summary		Upload culture image
//	@Description	Requires the researcher role. Multipart form with an optional "description" field followed by a "file" part holding the image.
//	@Tags			Organisms
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id			path		string					true	"Organism ID"
//	@Param			description	formData	string					false	"Description"
//	@Param			file		formData	file					true	"Image"
//	@Success		201			{object}	limssdk.CultureImage	"Stored image"
//	@Failure		404			{object}	limssdk.ErrorResponse	"Organism not found"
//	@Failure		413			{object}	limssdk.ErrorResponse	"File too large"
//	@Failure		415			{object}	limssdk.ErrorResponse	"Not an image"
//	@Security		BearerAuth
//	@Router			/v1/organisms/{id}/culture-images [post].
func (h *OrganismsHandler) HandleUploadCultureImage(w http.ResponseWriter, r *http.Request) {
	var stored limssdk.CultureImage
	err := h.readUpload(w, r, func(up service.Upload) error {
		img, err := h.OrganismService.UploadCultureImage(r.Context(), r.PathValue("id"), up)
		stored = toCultureImage(img)
		return err
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, stored)
}

// HandleDeleteCultureImage detaches and deletes a culture image.
//
//	@Summary		Delete culture image
//	@Description	Requires the researcher role.
//	@Tags			Organisms
//	@Param			id		path	string	true	"Organism ID"
//	@Param			imageId	path	string	true	"Image ID"
//	@Success		204
//	@Failure		404	{object}	limssdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/organisms/{id}/culture-images/{imageId} [delete].
func (h *OrganismsHandler) HandleDeleteCultureImage(w http.ResponseWriter, r *http.Request) {
	if err := h.OrganismService.DeleteCultureImage(r.Context(), r.PathValue("id"), r.PathValue("imageId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readUpload streams the "file" part of a multipart body into fn without
// buffering it. Fields must precede the file part.
func (h *OrganismsHandler) readUpload(w http.ResponseWriter, r *http.Request, fn func(service.Upload) error) error {
	limit := h.OrganismService.MaxUploadBytes
	if limit <= 0 {
		limit = service.DefaultMaxUploadBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit+1<<20)

	mr, err := r.MultipartReader()
	if err != nil {
		return &domain.ValidationError{Fields: map[string]string{"file": "multipart/form-data body required"}}
	}

	var description string
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return &domain.ValidationError{Fields: map[string]string{"file": errNoFilePart.Error()}}
		}
		if err != nil {
			return err
		}

		switch part.FormName() {
		case "description":
			b, err := io.ReadAll(io.LimitReader(part, maxFieldBytes))
			if err != nil {
				return err
			}
			description = strings.TrimSpace(string(b))
		case "file":
			return fn(service.Upload{
				Name:        part.FileName(),
				ContentType: partContentType(part),
				Size:        -1,
				Body:        part,
				Description: description,
			})
		}
		_ = part.Close()
	}
}

func partContentType(p *multipart.Part) string {
	if ct := p.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
