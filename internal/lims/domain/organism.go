package domain

import (
	"strings"
	"time"
)

type OrganismType string

const (
	OrganismYeast    OrganismType = "yeast"
	OrganismBacteria OrganismType = "bacteria"
	OrganismFungi    OrganismType = "fungi"
)

func (t OrganismType) Valid() bool {
	switch t {
	case OrganismYeast, OrganismBacteria, OrganismFungi:
		return true
	}
	return false
}

type Taxonomy struct {
	Genus   string
	Species string
}

type OrganismMetadata struct {
	GrowthCharacteristics string
	Notes                 string
}

type GenomicFile struct {
	ID         string
	Name       string
	FastaURL   string
	UploadDate time.Time
	Size       int64
}

type CultureImage struct {
	ID           string
	URL          string
	UploadDate   time.Time
	Description  string
	ThumbnailURL string
}

type Organism struct {
	ID               string
	Name             string
	Type             OrganismType
	Strain           string
	Taxonomy         Taxonomy
	Metadata         OrganismMetadata
	ExpressedEnzymes []string // enzyme ids, not enforced
	GenomicFiles     []GenomicFile
	CultureImages    []CultureImage
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (o Organism) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(o.Name) == "" {
		v.Add("name", "is required")
	}
	if !o.Type.Valid() {
		v.Add("type", "must be one of yeast, bacteria, fungi")
	}
	if strings.TrimSpace(o.Strain) == "" {
		v.Add("strain", "is required")
	}
	return v.Err()
}

// UniqueIDs drops blanks and repeats from ids, keeping first-seen order.
func UniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
