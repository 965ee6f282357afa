package prediction

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/healthgate/internal/artifacts"
	"github.com/dmitrijs2005/healthgate/internal/artifacts/artifactstest"
	"github.com/dmitrijs2005/healthgate/internal/common"
	"github.com/dmitrijs2005/healthgate/internal/diseases"
	"github.com/dmitrijs2005/healthgate/internal/inference"
	"github.com/dmitrijs2005/healthgate/internal/logging"
	"github.com/dmitrijs2005/healthgate/internal/models"
	"github.com/dmitrijs2005/healthgate/internal/registry"
	"github.com/dmitrijs2005/healthgate/internal/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	identity string
}

func (s fakeSession) RequireAuthenticated() error {
	if s.identity == "" {
		return common.ErrUnauthorized
	}
	return nil
}

func (s fakeSession) CurrentIdentity() (string, bool) { return s.identity, s.identity != "" }

var alice = fakeSession{identity: "alice"}

type countingLookup struct {
	ModelLookup
	calls int
}

func (c *countingLookup) Lookup(dt models.DiseaseType) (*inference.Artifact, error) {
	c.calls++
	return c.ModelLookup.Lookup(dt)
}

type stubPredictor struct {
	label int
	err   error
	calls int
	n     int
}

func (p *stubPredictor) Predict(x []float64) (int, error) {
	p.calls++
	return p.label, p.err
}

func (p *stubPredictor) NumFeatures() int { return p.n }

type stubLookup map[models.DiseaseType]*inference.Artifact

func (s stubLookup) Lookup(dt models.DiseaseType) (*inference.Artifact, error) {
	a, ok := s[dt]
	if !ok {
		return nil, common.ErrModelUnavailable
	}
	return a, nil
}

func newPipeline(t *testing.T) (*Pipeline, *bytes.Buffer) {
	t.Helper()
	reg := registry.Load(context.Background(), artifacts.NewFSSource(artifactstest.DefaultFS()), diseases.Default(), time.Second, logging.Nop())

	var buf bytes.Buffer
	logger, err := logging.New("debug", "json", &buf)
	require.NoError(t, err)

	return New(diseases.Default(), reg, logger), &buf
}

func TestPredict_Diagnoses(t *testing.T) {
	p, _ := newPipeline(t)

	tests := []struct {
		name    string
		disease models.DiseaseType
		raw     []string
		outcome models.Outcome
		text    string
	}{
		{"diabetic", models.Diabetes, artifactstest.DiabeticInput, models.Positive, "The person is diabetic"},
		{"not diabetic", models.Diabetes, artifactstest.NonDiabeticInput, models.Negative, "The person is not diabetic"},
		{"faulty heart", models.HeartDisease, artifactstest.FaultyHeartInput, models.Positive, "The person has a faulty heart"},
		{"healthy heart", models.HeartDisease, artifactstest.HealthyHeartInput, models.Negative, "The person has a healthy heart"},
		{"parkinsons", models.Parkinsons, artifactstest.ParkinsonsInput("0.9"), models.Positive, "The person has Parkinson's disease"},
		{"no parkinsons", models.Parkinsons, artifactstest.ParkinsonsInput("0.1"), models.Negative, "The person does not have Parkinson's disease"},
		{"malignant", models.BreastCancer, artifactstest.BreastCancerInput("21"), models.Positive, "The person is Malignant (Breast Cancer Present)"},
		{"benign", models.BreastCancer, artifactstest.BreastCancerInput("12.5"), models.Negative, "The person is Benign (No Breast Cancer)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.Predict(context.Background(), alice, tt.disease, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.disease, res.Disease)
			assert.Equal(t, tt.outcome, res.Outcome)
			assert.Equal(t, tt.text, res.Diagnosis)
			if tt.outcome == models.Positive {
				assert.Equal(t, 1, res.Label)
			} else {
				assert.Equal(t, 0, res.Label)
			}
			_, err = uuid.Parse(res.RequestID)
			assert.NoError(t, err)
		})
	}
}

func TestPredict_ScalerIsApplied(t *testing.T) {
	p, _ := newPipeline(t)

	// Glucose exceeds blood pressure in raw units; only the scaled values
	// put this sample on the negative side.
	res, err := p.Predict(context.Background(), alice, models.Diabetes, artifactstest.ScalerSensitiveInput)
	require.NoError(t, err)
	assert.Equal(t, models.Negative, res.Outcome)
}

func TestPredict_UnauthorizedComesFirst(t *testing.T) {
	p, _ := newPipeline(t)
	lookup := &countingLookup{ModelLookup: p.models}
	p.models = lookup

	for _, dt := range []models.DiseaseType{models.Diabetes, "flu"} {
		_, err := p.Predict(context.Background(), fakeSession{}, dt, []string{"garbage"})
		require.ErrorIs(t, err, common.ErrUnauthorized)
	}
	assert.Zero(t, lookup.calls)
}

func TestPredict_UnknownDisease(t *testing.T) {
	p, _ := newPipeline(t)

	_, err := p.Predict(context.Background(), alice, "flu", nil)
	require.ErrorIs(t, err, common.ErrUnknownDiseaseType)
}

func TestPredict_ModelUnavailableBeforeValidation(t *testing.T) {
	fsys := artifactstest.DefaultFS()
	delete(fsys, "heart_disease.json")
	reg := registry.Load(context.Background(), artifacts.NewFSSource(fsys), diseases.Default(), time.Second, logging.Nop())
	p := New(diseases.Default(), reg, logging.Nop())

	_, err := p.Predict(context.Background(), alice, models.HeartDisease, []string{"bad"})
	require.ErrorIs(t, err, common.ErrModelUnavailable)

	res, err := p.Predict(context.Background(), alice, models.Diabetes, artifactstest.DiabeticInput)
	require.NoError(t, err, "other diseases keep working")
	assert.Equal(t, models.Positive, res.Outcome)
}

func TestPredict_ValidationErrorReturnedVerbatimWithoutInference(t *testing.T) {
	stub := &stubPredictor{label: 1, n: 8}
	p := New(diseases.Default(), stubLookup{models.Diabetes: {Predictor: stub}}, logging.Nop())

	raw := append([]string(nil), artifactstest.DiabeticInput...)
	raw[2] = "  "

	_, err := p.Predict(context.Background(), alice, models.Diabetes, raw)
	require.ErrorIs(t, err, common.ErrMissingField)

	var ve *validation.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 2, ve.Index)
	assert.Equal(t, "BloodPressure", ve.Field)
	assert.Zero(t, stub.calls)

	_, err = p.Predict(context.Background(), alice, models.Diabetes, raw[:7])
	require.ErrorIs(t, err, common.ErrFieldCount)
	assert.Zero(t, stub.calls)

	raw = append([]string(nil), artifactstest.DiabeticInput...)
	raw[1] = "abc"
	_, err = p.Predict(context.Background(), alice, models.Diabetes, raw)
	require.ErrorIs(t, err, common.ErrNotNumeric)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 1, ve.Index)
	assert.Zero(t, stub.calls)
}

func TestPredict_UnexpectedLabel(t *testing.T) {
	stub := &stubPredictor{label: 2, n: 13}
	p := New(diseases.Default(), stubLookup{models.HeartDisease: {Predictor: stub}}, logging.Nop())

	_, err := p.Predict(context.Background(), alice, models.HeartDisease, artifactstest.HealthyHeartInput)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected label 2")
}

func TestPredict_PredictorError(t *testing.T) {
	boom := errors.New("boom")
	stub := &stubPredictor{err: boom, n: 13}
	p := New(diseases.Default(), stubLookup{models.HeartDisease: {Predictor: stub}}, logging.Nop())

	_, err := p.Predict(context.Background(), alice, models.HeartDisease, artifactstest.HealthyHeartInput)
	require.ErrorIs(t, err, boom)
}

func TestPredict_DeterministicAndIndependent(t *testing.T) {
	p, _ := newPipeline(t)
	ctx := context.Background()

	first, err := p.Predict(ctx, alice, models.BreastCancer, artifactstest.BreastCancerInput("21"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*models.PredictionResult, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := p.Predict(ctx, alice, models.BreastCancer, artifactstest.BreastCancerInput("21"))
			assert.NoError(t, err)
			results[i] = res
		}()
	}
	wg.Wait()

	ids := map[string]bool{first.RequestID: true}
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, first.Outcome, r.Outcome)
		assert.Equal(t, first.Diagnosis, r.Diagnosis)
		assert.False(t, ids[r.RequestID], "request ids must be fresh")
		ids[r.RequestID] = true
	}
}

func TestPredict_DoesNotMutateInput(t *testing.T) {
	p, _ := newPipeline(t)
	raw := []string{" 2", "120 ", "70", "30", "80", "28.5", "0.5", "33"}
	orig := append([]string(nil), raw...)

	_, err := p.Predict(context.Background(), alice, models.Diabetes, raw)
	require.NoError(t, err)
	assert.Equal(t, orig, raw)
}

func TestPredict_LogsWithoutRawValues(t *testing.T) {
	p, buf := newPipeline(t)
	p.newID = func() string { return "req-1" }

	raw := artifactstest.BreastCancerInput("987.654321")
	_, err := p.Predict(context.Background(), alice, models.BreastCancer, raw)
	require.NoError(t, err)

	bad := append([]string(nil), raw...)
	bad[3] = "secret-ish"
	_, err = p.Predict(context.Background(), alice, models.BreastCancer, bad)
	require.ErrorIs(t, err, common.ErrNotNumeric)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"user":"alice"`)
	assert.Contains(t, out, "prediction served")
	assert.Contains(t, out, "prediction rejected")
	assert.Contains(t, out, `"reason":"not_numeric"`)
	assert.False(t, strings.Contains(out, "987.654321"), "raw values must not be logged")
	assert.False(t, strings.Contains(out, "secret-ish"), "rejected values must not be logged")
}

func TestDiseases(t *testing.T) {
	fsys := artifactstest.DefaultFS()
	delete(fsys, "parkinsons.json")
	reg := registry.Load(context.Background(), artifacts.NewFSSource(fsys), diseases.Default(), time.Second, logging.Nop())
	p := New(diseases.Default(), reg, logging.Nop())

	infos := p.Diseases()
	require.Len(t, infos, 4)

	for _, info := range infos {
		if info.Spec.Type == models.Parkinsons {
			assert.False(t, info.Available)
			assert.Contains(t, info.Reason, "model unavailable")
			continue
		}
		assert.True(t, info.Available, info.Spec.Type)
		assert.Empty(t, info.Reason)
	}
}
