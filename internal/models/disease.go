// Package models defines the data types shared by the gateway components.
package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/healthgate/internal/common"
)

// DiseaseType identifies one of the supported classifiers.
type DiseaseType string

const (
	Diabetes     DiseaseType = "diabetes"
	HeartDisease DiseaseType = "heart_disease"
	Parkinsons   DiseaseType = "parkinsons"
	BreastCancer DiseaseType = "breast_cancer"
)

// AllDiseaseTypes lists the supported disease types in menu order.
func AllDiseaseTypes() []DiseaseType {
	return []DiseaseType{Diabetes, HeartDisease, Parkinsons, BreastCancer}
}

var diseaseAliases = map[string]DiseaseType{
	"diabetes":      Diabetes,
	"heart_disease": HeartDisease,
	"heart-disease": HeartDisease,
	"heart":         HeartDisease,
	"parkinsons":    Parkinsons,
	"parkinson":     Parkinsons,
	"parkinson's":   Parkinsons,
	"breast_cancer": BreastCancer,
	"breast-cancer": BreastCancer,
	"breast":        BreastCancer,
}

// ParseDiseaseType maps user input to a DiseaseType. Matching is
// case-insensitive and accepts a few short aliases ("heart", "breast").
func ParseDiseaseType(s string) (DiseaseType, error) {
	dt, ok := diseaseAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownDiseaseType, s)
	}
	return dt, nil
}

func (d DiseaseType) String() string { return string(d) }
