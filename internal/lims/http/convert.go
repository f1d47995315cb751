package http

import (
	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/yield"
	"github.com/aussiebroadwan/ancestrybio/pkg/limssdk"
)

func toUser(u domain.User) limssdk.User {
	return limssdk.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
		LastLogin:   u.LastLogin,
	}
}

func toEnzyme(e domain.Enzyme) limssdk.Enzyme {
	return limssdk.Enzyme{
		ID:             e.ID,
		Name:           e.Name,
		Type:           string(e.Type),
		Specialization: string(e.Specialization),
		Metadata: limssdk.EnzymeMetadata{
			Sequence:             e.Metadata.Sequence,
			ReconstructionMethod: e.Metadata.ReconstructionMethod,
			ConfidenceScore:      e.Metadata.ConfidenceScore,
			Description:          e.Metadata.Description,
		},
		NewickData: e.NewickData,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func fromEnzymeRequest(req limssdk.EnzymeRequest) domain.Enzyme {
	return domain.Enzyme{
		Name:           req.Name,
		Type:           domain.EnzymeType(req.Type),
		Specialization: domain.Specialization(req.Specialization),
		Metadata: domain.EnzymeMetadata{
			Sequence:             req.Metadata.Sequence,
			ReconstructionMethod: req.Metadata.ReconstructionMethod,
			ConfidenceScore:      req.Metadata.ConfidenceScore,
			Description:          req.Metadata.Description,
		},
		NewickData: req.NewickData,
	}
}

func toOrganism(o domain.Organism) limssdk.Organism {
	out := limssdk.Organism{
		ID:     o.ID,
		Name:   o.Name,
		Type:   string(o.Type),
		Strain: o.Strain,
		Taxonomy: limssdk.Taxonomy{
			Genus:   o.Taxonomy.Genus,
			Species: o.Taxonomy.Species,
		},
		Metadata: limssdk.OrganismMetadata{
			GrowthCharacteristics: o.Metadata.GrowthCharacteristics,
			Notes:                 o.Metadata.Notes,
		},
		ExpressedEnzymes: append([]string{}, o.ExpressedEnzymes...),
		GenomicFiles:     make([]limssdk.GenomicFile, len(o.GenomicFiles)),
		CultureImages:    make([]limssdk.CultureImage, len(o.CultureImages)),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	for i, f := range o.GenomicFiles {
		out.GenomicFiles[i] = toGenomicFile(f)
	}
	for i, img := range o.CultureImages {
		out.CultureImages[i] = toCultureImage(img)
	}
	return out
}

func fromOrganismRequest(req limssdk.OrganismRequest) domain.Organism {
	return domain.Organism{
		Name:   req.Name,
		Type:   domain.OrganismType(req.Type),
		Strain: req.Strain,
		Taxonomy: domain.Taxonomy{
			Genus:   req.Taxonomy.Genus,
			Species: req.Taxonomy.Species,
		},
		Metadata: domain.OrganismMetadata{
			GrowthCharacteristics: req.Metadata.GrowthCharacteristics,
			Notes:                 req.Metadata.Notes,
		},
		ExpressedEnzymes: req.ExpressedEnzymes,
	}
}

func toGenomicFile(f domain.GenomicFile) limssdk.GenomicFile {
	return limssdk.GenomicFile{
		ID:         f.ID,
		Name:       f.Name,
		FastaURL:   f.FastaURL,
		UploadDate: f.UploadDate,
		Size:       f.Size,
	}
}

func toCultureImage(img domain.CultureImage) limssdk.CultureImage {
	return limssdk.CultureImage{
		ID:           img.ID,
		URL:          img.URL,
		UploadDate:   img.UploadDate,
		Description:  img.Description,
		ThumbnailURL: img.ThumbnailURL,
	}
}

func toOutputs(o domain.CannabinoidOutputs) limssdk.Outputs {
	return limssdk.Outputs{THCA: o.THCA, CBDA: o.CBDA, CBCA: o.CBCA}
}

func toBatch(b domain.Batch) limssdk.Batch {
	return limssdk.Batch{
		ID:          b.ID,
		EnzymeID:    b.EnzymeID,
		EnzymeName:  b.EnzymeName,
		CBGAInput:   b.CBGAInput,
		Outputs:     toOutputs(b.Outputs),
		Total:       yield.Total(b),
		Timestamp:   b.Timestamp,
		LabTechID:   b.LabTechID,
		LabTechName: b.LabTechName,
		Status:      string(b.Status),
		Notes:       b.Notes,
	}
}

func toYieldSummary(s yield.Summary) limssdk.YieldSummary {
	peaks := s.PeakBatches
	if peaks == nil {
		peaks = []string{}
	}
	return limssdk.YieldSummary{
		EnzymeID:    s.EnzymeID,
		BatchCount:  s.BatchCount,
		Averages:    toOutputs(s.Averages),
		MaxTotal:    s.MaxTotal,
		PeakBatches: peaks,
	}
}
