package models

import (
	"testing"

	"github.com/dmitrijs2005/healthgate/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDiseaseType(t *testing.T) {
	tests := []struct {
		in   string
		want DiseaseType
	}{
		{"diabetes", Diabetes},
		{"  Diabetes ", Diabetes},
		{"heart", HeartDisease},
		{"HEART_DISEASE", HeartDisease},
		{"parkinson's", Parkinsons},
		{"parkinsons", Parkinsons},
		{"breast", BreastCancer},
		{"breast-cancer", BreastCancer},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDiseaseType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDiseaseType_Unknown(t *testing.T) {
	_, err := ParseDiseaseType("flu")
	require.ErrorIs(t, err, common.ErrUnknownDiseaseType)
}

func TestAllDiseaseTypes(t *testing.T) {
	assert.Equal(t, []DiseaseType{Diabetes, HeartDisease, Parkinsons, BreastCancer}, AllDiseaseTypes())
}
