package domain

import (
	"strings"
	"time"
)

type EnzymeType string

const (
	EnzymeAncestral    EnzymeType = "ancestral"
	EnzymeModern       EnzymeType = "modern"
	EnzymeIntermediate EnzymeType = "intermediate"
)

type Specialization string

const (
	SpecializationPromiscuous Specialization = "promiscuous"
	SpecializationTHCA        Specialization = "thca"
	SpecializationCBDA        Specialization = "cbda"
	SpecializationCBCA        Specialization = "cbca"
)

type EnzymeMetadata struct {
	Sequence             string
	ReconstructionMethod string
	ConfidenceScore      *float64 // within [0,1] when set
	Description          string
}

type Enzyme struct {
	ID             string
	Name           string
	Type           EnzymeType
	Specialization Specialization
	Metadata       EnzymeMetadata
	NewickData     string // phylogeny in Newick notation, optional
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (t EnzymeType) Valid() bool {
	switch t {
	case EnzymeAncestral, EnzymeModern, EnzymeIntermediate:
		return true
	}
	return false
}

func (s Specialization) Valid() bool {
	switch s {
	case SpecializationPromiscuous, SpecializationTHCA, SpecializationCBDA, SpecializationCBCA:
		return true
	}
	return false
}

func (e Enzyme) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(e.Name) == "" {
		v.Add("name", "is required")
	}
	if !e.Type.Valid() {
		v.Add("type", "must be one of ancestral, modern, intermediate")
	}
	if !e.Specialization.Valid() {
		v.Add("specialization", "must be one of promiscuous, thca, cbda, cbca")
	}
	if strings.TrimSpace(e.Metadata.Sequence) == "" {
		v.Add("metadata.sequence", "is required")
	}
	if c := e.Metadata.ConfidenceScore; c != nil && (*c < 0 || *c > 1) {
		v.Add("metadata.confidenceScore", "must be between 0 and 1")
	}
	if e.NewickData != "" && !ValidNewick(e.NewickData) {
		v.Add("newickData", "is not a valid Newick tree")
	}
	return v.Err()
}

// ValidNewick performs a structural check of a Newick string: balanced
// parentheses, outside of quoted labels, terminated by a semicolon.
func ValidNewick(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, ";") {
		return false
	}
	depth := 0
	quoted := false
	for _, r := range s[:len(s)-1] {
		switch {
		case r == '\'':
			quoted = !quoted
		case quoted:
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth < 0 {
				return false
			}
		case r == ';':
			return false
		}
	}
	return depth == 0 && !quoted
}
