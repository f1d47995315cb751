package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/blob"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/metrics"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/pkg/idx"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"
)

// DefaultMaxUploadBytes applies when OrganismService.MaxUploadBytes is unset.
const DefaultMaxUploadBytes = 10 << 20

// FilesPath is the URL prefix under which blobs are served.
const FilesPath = "/v1/files/"

var (
	FastaContentTypes = []string{"text/plain", "text/x-fasta", "application/octet-stream", ".fasta", ".fa", ".fna", ".faa"}
	ImageContentTypes = []string{"image/*"}
)

// Upload is a file received from a client.
type Upload struct {
	Name        string
	ContentType string
	Size        int64 // as declared by the client; -1 if unknown
	Body        io.Reader
	Description string // culture images only
}

type OrganismService struct {
	Store          store.Store
	Blob           blob.Store
	Metrics        *metrics.Metrics // optional
	MaxUploadBytes int64
}

func (s *OrganismService) Create(ctx context.Context, o domain.Organism) (domain.Organism, error) {
	o.Name = strings.TrimSpace(o.Name)
	o.ExpressedEnzymes = domain.UniqueIDs(o.ExpressedEnzymes)
	if err := o.Validate(); err != nil {
		return domain.Organism{}, err
	}

	now := time.Now().UTC()
	o.ID = idx.New().String()
	o.CreatedAt, o.UpdatedAt = now, now
	o.GenomicFiles = []domain.GenomicFile{}
	o.CultureImages = []domain.CultureImage{}
	if err := s.Store.Organisms().CreateOrganism(ctx, o); err != nil {
		return domain.Organism{}, fmt.Errorf("create organism: %w", err)
	}

	slogx.FromContext(ctx).Info("organism created", slog.String("organism_id", o.ID), slog.String("name", o.Name))
	return o, nil
}

func (s *OrganismService) Get(ctx context.Context, id string) (domain.Organism, error) {
	o, err := s.Store.Organisms().GetOrganismByID(ctx, id)
	if err != nil {
		return domain.Organism{}, notFound(err, ErrOrganismNotFound)
	}
	return o, nil
}

func (s *OrganismService) List(ctx context.Context, f store.OrganismFilter) ([]domain.Organism, error) {
	return s.Store.Organisms().ListOrganisms(ctx, f)
}

// Update replaces the descriptive fields. Files are managed through the
// upload and delete operations and are left as stored.
func (s *OrganismService) Update(ctx context.Context, id string, o domain.Organism) (domain.Organism, error) {
	o.Name = strings.TrimSpace(o.Name)
	o.ExpressedEnzymes = domain.UniqueIDs(o.ExpressedEnzymes)
	if err := o.Validate(); err != nil {
		return domain.Organism{}, err
	}

	var out domain.Organism
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		cur, err := tx.Organisms().GetOrganismByID(ctx, id)
		if err != nil {
			return notFound(err, ErrOrganismNotFound)
		}
		o.ID = cur.ID
		o.CreatedAt = cur.CreatedAt
		o.GenomicFiles = cur.GenomicFiles
		o.CultureImages = cur.CultureImages
		if err := tx.Organisms().UpdateOrganism(ctx, o); err != nil {
			return err
		}
		out, err = tx.Organisms().GetOrganismByID(ctx, id)
		return err
	})
	return out, err
}

// Delete removes the organism and then, best effort, its stored files.
func (s *OrganismService) Delete(ctx context.Context, id string) error {
	l := slogx.FromContext(ctx)

	o, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Store.Organisms().DeleteOrganism(ctx, id); err != nil {
		return notFound(err, ErrOrganismNotFound)
	}

	for _, f := range o.GenomicFiles {
		s.deleteBlob(ctx, genomicFileKey(id, f.ID))
	}
	for _, img := range o.CultureImages {
		s.deleteBlob(ctx, cultureImageKey(id, img.ID))
	}
	l.Info("organism deleted", slog.String("organism_id", id))
	return nil
}

func (s *OrganismService) UploadGenomicFile(ctx context.Context, organismID string, up Upload) (domain.GenomicFile, error) {
	if !blob.MatchContentType(FastaContentTypes, up.ContentType, up.Name) {
		return domain.GenomicFile{}, fmt.Errorf("%w: %s", ErrUnsupportedFileType, up.ContentType)
	}

	fileID := idx.New().String()
	key := genomicFileKey(organismID, fileID)
	info, err := s.store(ctx, organismID, key, up)
	if err != nil {
		return domain.GenomicFile{}, err
	}

	gf := domain.GenomicFile{
		ID:         fileID,
		Name:       fileName(up.Name, fileID),
		FastaURL:   FilesPath + key,
		UploadDate: info.LastModified.UTC(),
		Size:       info.Size,
	}
	err = s.modify(ctx, organismID, func(o *domain.Organism) error {
		o.GenomicFiles = append(o.GenomicFiles, gf)
		return nil
	})
	if err != nil {
		s.deleteBlob(ctx, key)
		return domain.GenomicFile{}, err
	}

	s.Metrics.Uploaded("genomic_file", info.Size)
	slogx.FromContext(ctx).Info("genomic file uploaded",
		slog.String("organism_id", organismID),
		slog.String("file_id", fileID),
		slog.String("size", blob.FormatSize(info.Size)),
	)
	return gf, nil
}

func (s *OrganismService) DeleteGenomicFile(ctx context.Context, organismID, fileID string) error {
	err := s.modify(ctx, organismID, func(o *domain.Organism) error {
		for i, f := range o.GenomicFiles {
			if f.ID == fileID {
				o.GenomicFiles = append(o.GenomicFiles[:i], o.GenomicFiles[i+1:]...)
				return nil
			}
		}
		return ErrFileNotFound
	})
	if err != nil {
		return err
	}
	s.deleteBlob(ctx, genomicFileKey(organismID, fileID))
	return nil
}

func (s *OrganismService) UploadCultureImage(ctx context.Context, organismID string, up Upload) (domain.CultureImage, error) {
	if !blob.MatchContentType(ImageContentTypes, up.ContentType, up.Name) {
		return domain.CultureImage{}, fmt.Errorf("%w: %s", ErrUnsupportedFileType, up.ContentType)
	}

	imageID := idx.New().String()
	key := cultureImageKey(organismID, imageID)
	info, err := s.store(ctx, organismID, key, up)
	if err != nil {
		return domain.CultureImage{}, err
	}

	img := domain.CultureImage{
		ID:          imageID,
		URL:         FilesPath + key,
		UploadDate:  info.LastModified.UTC(),
		Description: strings.TrimSpace(up.Description),
	}
	err = s.modify(ctx, organismID, func(o *domain.Organism) error {
		o.CultureImages = append(o.CultureImages, img)
		return nil
	})
	if err != nil {
		s.deleteBlob(ctx, key)
		return domain.CultureImage{}, err
	}

	s.Metrics.Uploaded("culture_image", info.Size)
	slogx.FromContext(ctx).Info("culture image uploaded",
		slog.String("organism_id", organismID),
		slog.String("image_id", imageID),
		slog.String("size", blob.FormatSize(info.Size)),
	)
	return img, nil
}

func (s *OrganismService) DeleteCultureImage(ctx context.Context, organismID, imageID string) error {
	err := s.modify(ctx, organismID, func(o *domain.Organism) error {
		for i, img := range o.CultureImages {
			if img.ID == imageID {
				o.CultureImages = append(o.CultureImages[:i], o.CultureImages[i+1:]...)
				return nil
			}
		}
		return ErrFileNotFound
	})
	if err != nil {
		return err
	}
	s.deleteBlob(ctx, cultureImageKey(organismID, imageID))
	return nil
}

// store checks the organism and size limit, then writes the blob.
func (s *OrganismService) store(ctx context.Context, organismID, key string, up Upload) (blob.Info, error) {
	if _, err := s.Get(ctx, organismID); err != nil {
		return blob.Info{}, err
	}

	limit := s.maxUploadBytes()
	if up.Size > limit {
		return blob.Info{}, fmt.Errorf("%w: %s exceeds %s", ErrFileTooLarge, blob.FormatSize(up.Size), blob.FormatSize(limit))
	}

	// the declared size may lie; cap the stream and check what was written
	info, err := s.Blob.Put(ctx, key, io.LimitReader(up.Body, limit+1), blob.PutOptions{
		ContentType: up.ContentType,
		Metadata:    map[string]string{"name": up.Name, "organism": organismID},
	})
	if err != nil {
		return blob.Info{}, fmt.Errorf("store file: %w", err)
	}
	if info.Size > limit {
		s.deleteBlob(ctx, key)
		return blob.Info{}, fmt.Errorf("%w: exceeds %s", ErrFileTooLarge, blob.FormatSize(limit))
	}
	return info, nil
}

func (s *OrganismService) modify(ctx context.Context, organismID string, fn func(*domain.Organism) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		o, err := tx.Organisms().GetOrganismByID(ctx, organismID)
		if err != nil {
			return notFound(err, ErrOrganismNotFound)
		}
		if err := fn(&o); err != nil {
			return err
		}
		return tx.Organisms().UpdateOrganism(ctx, o)
	})
}

func (s *OrganismService) deleteBlob(ctx context.Context, key string) {
	if _, err := s.Blob.Delete(ctx, key); err != nil {
		slogx.FromContext(ctx).Warn("failed to delete blob", slog.String("key", key), slog.Any("error", err))
	}
}

func (s *OrganismService) maxUploadBytes() int64 {
	if s.MaxUploadBytes > 0 {
		return s.MaxUploadBytes
	}
	return DefaultMaxUploadBytes
}

func genomicFileKey(organismID, fileID string) string {
	return "genomic-files/" + organismID + "/" + fileID
}

func cultureImageKey(organismID, imageID string) string {
	return "culture-images/" + organismID + "/" + imageID
}

func fileName(name, fallback string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return fallback
}

// FileService serves stored blobs back to clients.
type FileService struct {
	Blob blob.Store
}

// Open returns the blob content. The caller closes the reader.
func (s *FileService) Open(ctx context.Context, key string) (blob.Info, io.ReadCloser, error) {
	if _, err := blob.CleanKey(key); err != nil {
		return blob.Info{}, nil, ErrFileNotFound
	}
	info, rc, err := s.Blob.Get(ctx, key)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return blob.Info{}, nil, ErrFileNotFound
		}
		return blob.Info{}, nil, err
	}
	return info, rc, nil
}

// SignedURL returns a short-lived direct URL, or blob.ErrUnsupported when the
// driver cannot produce one.
func (s *FileService) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if _, err := blob.CleanKey(key); err != nil {
		return "", ErrFileNotFound
	}
	if s.Blob.Driver() != blob.DriverS3 {
		return "", blob.ErrUnsupported
	}
	if _, err := s.Blob.Head(ctx, key); err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return "", ErrFileNotFound
		}
		return "", err
	}
	return s.Blob.PresignURL(ctx, key, blob.SignedURLOptions{Expiry: expiry})
}
