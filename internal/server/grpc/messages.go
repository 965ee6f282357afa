package grpc

import (
	"fmt"

	"github.com/dmitrijs2005/healthgate/internal/models"
	"github.com/dmitrijs2005/healthgate/internal/prediction"
	"google.golang.org/protobuf/types/known/structpb"
)

// Message field names.
const (
	fieldUsername    = "username"
	fieldPassword    = "password"
	fieldAccessToken = "access_token"
	fieldDisease     = "disease"
	fieldFields      = "fields"
	fieldRequestID   = "request_id"
	fieldOutcome     = "outcome"
	fieldLabel       = "label"
	fieldDiagnosis   = "diagnosis"
	fieldDiseases    = "diseases"
	fieldStatus      = "status"
)

func stringField(s *structpb.Struct, key string) string {
	v, ok := s.GetFields()[key]
	if !ok {
		return ""
	}
	return v.GetStringValue()
}

func credentialsFromStruct(s *structpb.Struct) (string, []byte) {
	return stringField(s, fieldUsername), []byte(stringField(s, fieldPassword))
}

func credentialsToStruct(username string, password []byte) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		fieldUsername: username,
		fieldPassword: string(password),
	})
}

// predictRequestFromStruct reads {"disease": string, "fields": [string...]}.
// Numbers in fields are rejected so the server validates exactly what the
// user typed.
func predictRequestFromStruct(s *structpb.Struct) (*models.PredictionRequest, error) {
	req := &models.PredictionRequest{Disease: models.DiseaseType(stringField(s, fieldDisease))}

	for i, v := range s.GetFields()[fieldFields].GetListValue().GetValues() {
		sv, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("fields[%d] must be a string", i)
		}
		req.Fields = append(req.Fields, sv.StringValue)
	}
	return req, nil
}

func predictRequestToStruct(req *models.PredictionRequest) (*structpb.Struct, error) {
	fields := make([]any, len(req.Fields))
	for i, f := range req.Fields {
		fields[i] = f
	}
	return structpb.NewStruct(map[string]any{
		fieldDisease: string(req.Disease),
		fieldFields:  fields,
	})
}

func predictionResultToStruct(r *models.PredictionResult) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		fieldRequestID: r.RequestID,
		fieldDisease:   string(r.Disease),
		fieldOutcome:   string(r.Outcome),
		fieldLabel:     r.Label,
		fieldDiagnosis: r.Diagnosis,
	})
}

func predictionResultFromStruct(s *structpb.Struct) *models.PredictionResult {
	return &models.PredictionResult{
		RequestID: stringField(s, fieldRequestID),
		Disease:   models.DiseaseType(stringField(s, fieldDisease)),
		Outcome:   models.Outcome(stringField(s, fieldOutcome)),
		Label:     int(s.GetFields()[fieldLabel].GetNumberValue()),
		Diagnosis: stringField(s, fieldDiagnosis),
	}
}

// DiseaseStatus is the wire view of one supported disease.
type DiseaseStatus struct {
	Type      models.DiseaseType
	Title     string
	Fields    []string
	Available bool
	Reason    string
}

func diseasesToStruct(infos []prediction.DiseaseInfo) (*structpb.Struct, error) {
	list := make([]any, 0, len(infos))
	for _, info := range infos {
		names := info.Spec.FieldNames()
		fields := make([]any, len(names))
		for i, n := range names {
			fields[i] = n
		}
		list = append(list, map[string]any{
			"type":      string(info.Spec.Type),
			"title":     info.Spec.Title,
			"fields":    fields,
			"available": info.Available,
			"reason":    info.Reason,
		})
	}
	return structpb.NewStruct(map[string]any{fieldDiseases: list})
}

func diseasesFromStruct(s *structpb.Struct) []DiseaseStatus {
	var out []DiseaseStatus
	for _, v := range s.GetFields()[fieldDiseases].GetListValue().GetValues() {
		d := v.GetStructValue()
		ds := DiseaseStatus{
			Type:      models.DiseaseType(stringField(d, "type")),
			Title:     stringField(d, "title"),
			Available: d.GetFields()["available"].GetBoolValue(),
			Reason:    stringField(d, "reason"),
		}
		for _, f := range d.GetFields()[fieldFields].GetListValue().GetValues() {
			ds.Fields = append(ds.Fields, f.GetStringValue())
		}
		out = append(out, ds)
	}
	return out
}
