package models

// Outcome is the binary diagnosis returned by a classifier.
type Outcome string

const (
	Positive Outcome = "positive"
	Negative Outcome = "negative"
)

// PredictionRequest is one form submission: the disease and the raw field
// values in the order the model was trained on.
type PredictionRequest struct {
	Disease DiseaseType
	Fields  []string
}

// PredictionResult is returned to the caller and never persisted.
type PredictionResult struct {
	RequestID string
	Disease   DiseaseType
	Outcome   Outcome
	Label     int
	Diagnosis string
}
