package inference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linearScaledDoc = `{
  "format_version": 1,
  "disease": "demo",
  "features": ["a", "b"],
  "classifier": {"kernel": "linear", "classes": [0, 1], "coef": [1, -1], "intercept": 0},
  "scaler": {"mean": [10, 10], "scale": [2, 1]}
}`

func TestDecode_LinearWithScaler(t *testing.T) {
	a, err := Decode(strings.NewReader(linearScaledDoc))
	require.NoError(t, err)

	assert.Equal(t, "demo", a.Disease)
	assert.Equal(t, []string{"a", "b"}, a.Features)
	assert.Equal(t, 2, a.NumFeatures())
	require.True(t, a.HasScaler())

	// raw a > b, but after scaling (14-10)/2=2 < (13-10)/1=3
	x, err := a.Scaler.Transform([]float64{14, 13})
	require.NoError(t, err)
	label, err := a.Predictor.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, 0, label)
}

func TestDecode_RBFWithoutScaler(t *testing.T) {
	doc := `{
	  "format_version": 1,
	  "disease": "demo",
	  "classifier": {
	    "kernel": "rbf", "classes": [0, 1], "gamma": 0.5, "intercept": 0,
	    "support_vectors": [[0, 0, 0], [1, 1, 1]], "dual_coef": [-1, 1]
	  }
	}`

	a, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.False(t, a.HasScaler())
	assert.Nil(t, a.Features)
	assert.Equal(t, 3, a.NumFeatures())

	label, err := a.Predictor.Predict([]float64{1, 1, 0.8})
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}

func TestDecode_PolyAndSigmoid(t *testing.T) {
	for _, kernel := range []string{
		`"kernel": "poly", "gamma": 1, "coef0": 1, "degree": 2`,
		`"kernel": "sigmoid", "gamma": 0.1, "coef0": 0`,
	} {
		doc := `{"format_version": 1, "disease": "d", "classifier": {` + kernel +
			`, "classes": [0, 1], "intercept": 0, "support_vectors": [[1], [2]], "dual_coef": [1, -1]}}`
		a, err := Decode(strings.NewReader(doc))
		require.NoError(t, err, kernel)
		assert.Equal(t, 1, a.NumFeatures())
	}
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `pickle\x80`},
		{"unknown field", `{"format_version": 1, "classifier": {"kernel": "linear", "classes": [0,1], "coef": [1]}, "extra": 1}`},
		{"wrong version", `{"format_version": 2, "classifier": {"kernel": "linear", "classes": [0,1], "coef": [1]}}`},
		{"missing classifier", `{"format_version": 1}`},
		{"three classes", `{"format_version": 1, "classifier": {"kernel": "linear", "classes": [0,1,2], "coef": [1]}}`},
		{"unknown kernel", `{"format_version": 1, "classifier": {"kernel": "tree", "classes": [0,1]}}`},
		{"rbf without gamma", `{"format_version": 1, "classifier": {"kernel": "rbf", "classes": [0,1], "support_vectors": [[1]], "dual_coef": [1]}}`},
		{"feature names mismatch", `{"format_version": 1, "features": ["a"], "classifier": {"kernel": "linear", "classes": [0,1], "coef": [1, 2]}}`},
		{"scaler size mismatch", `{"format_version": 1, "classifier": {"kernel": "linear", "classes": [0,1], "coef": [1, 2]}, "scaler": {"mean": [0], "scale": [1]}}`},
		{"scaler uneven", `{"format_version": 1, "classifier": {"kernel": "linear", "classes": [0,1], "coef": [1, 2]}, "scaler": {"mean": [0, 0], "scale": [1]}}`},
		{"overflowing number", `{"format_version": 1, "classifier": {"kernel": "linear", "classes": [0,1], "coef": [1e400]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, ErrBadArtifact)
		})
	}
}
