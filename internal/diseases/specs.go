package diseases

import "github.com/dmitrijs2005/healthgate/internal/models"

func diabetesSpec() *Spec {
	return &Spec{
		Type:  models.Diabetes,
		Title: "Diabetes Prediction",
		Fields: []Field{
			{Name: "Pregnancies", Prompt: "Number of Pregnancies"},
			{Name: "Glucose", Prompt: "Glucose Level"},
			{Name: "BloodPressure", Prompt: "Blood Pressure value"},
			{Name: "SkinThickness", Prompt: "Skin Thickness value"},
			{Name: "Insulin", Prompt: "Insulin Level"},
			{Name: "BMI", Prompt: "BMI value"},
			{Name: "DiabetesPedigreeFunction", Prompt: "Diabetes Pedigree Function value"},
			{Name: "Age", Prompt: "Age of the Person"},
		},
		RequiresScaler: true,
		PositiveText:   "The person is diabetic",
		NegativeText:   "The person is not diabetic",
		ArtifactName:   "diabetes.json",
	}
}

func heartDiseaseSpec() *Spec {
	return &Spec{
		Type:  models.HeartDisease,
		Title: "Heart Disease Prediction",
		Fields: []Field{
			{Name: "age", Prompt: "Age"},
			{Name: "sex", Prompt: "Sex", Domain: "0 = female, 1 = male"},
			{Name: "cp", Prompt: "Chest pain type", Domain: "0..3"},
			{Name: "trestbps", Prompt: "Resting blood pressure"},
			{Name: "chol", Prompt: "Cholesterol"},
			{Name: "fbs", Prompt: "Fasting blood sugar > 120 mg/dl", Domain: "1 = true, 0 = false"},
			{Name: "restecg", Prompt: "Resting electrocardiographic results", Domain: "0 = normal, 1 = ST-T wave abnormality, 2 = left ventricular hypertrophy"},
			{Name: "thalach", Prompt: "Maximum heart rate achieved"},
			{Name: "exang", Prompt: "Exercise induced angina", Domain: "1 = yes, 0 = no"},
			{Name: "oldpeak", Prompt: "ST depression induced by exercise relative to rest"},
			{Name: "slope", Prompt: "Slope of the peak exercise ST segment", Domain: "0 = upsloping, 1 = flat, 2 = downsloping"},
			{Name: "ca", Prompt: "Number of major vessels colored by fluoroscopy", Domain: "0..3"},
			{Name: "thal", Prompt: "Thalassemia", Domain: "0 = unknown, 1 = fixed defect, 2 = normal, 3 = reversible defect"},
		},
		RequiresScaler: false,
		PositiveText:   "The person has a faulty heart",
		NegativeText:   "The person has a healthy heart",
		ArtifactName:   "heart_disease.json",
	}
}

func parkinsonsSpec() *Spec {
	return &Spec{
		Type:  models.Parkinsons,
		Title: "Parkinson's Disease Prediction",
		Fields: []Field{
			{Name: "MDVP:Fo(Hz)", Prompt: "Average vocal fundamental frequency"},
			{Name: "MDVP:Fhi(Hz)", Prompt: "Maximum vocal fundamental frequency"},
			{Name: "MDVP:Flo(Hz)", Prompt: "Minimum vocal fundamental frequency"},
			{Name: "MDVP:Jitter(%)", Prompt: "Jitter percentage"},
			{Name: "MDVP:Jitter(Abs)", Prompt: "Absolute jitter"},
			{Name: "MDVP:RAP", Prompt: "Relative amplitude perturbation"},
			{Name: "MDVP:PPQ", Prompt: "Five-point period perturbation quotient"},
			{Name: "Jitter:DDP", Prompt: "Average absolute difference of differences between jitter cycles"},
			{Name: "MDVP:Shimmer", Prompt: "Shimmer amplitude"},
			{Name: "MDVP:Shimmer(dB)", Prompt: "Shimmer in decibels"},
			{Name: "Shimmer:APQ3", Prompt: "Three-point amplitude perturbation quotient"},
			{Name: "Shimmer:APQ5", Prompt: "Five-point amplitude perturbation quotient"},
			{Name: "MDVP:APQ", Prompt: "Amplitude perturbation quotient"},
			{Name: "Shimmer:DDA", Prompt: "Average absolute differences between amplitude cycles"},
			{Name: "NHR", Prompt: "Noise-to-harmonics ratio"},
			{Name: "HNR", Prompt: "Harmonics-to-noise ratio"},
			{Name: "RPDE", Prompt: "Recurrence period density entropy"},
			{Name: "DFA", Prompt: "Detrended fluctuation analysis"},
			{Name: "spread1", Prompt: "Nonlinear measure of fundamental frequency variation (spread1)"},
			{Name: "spread2", Prompt: "Nonlinear measure of fundamental frequency variation (spread2)"},
			{Name: "D2", Prompt: "Nonlinear dynamical complexity measure"},
			{Name: "PPE", Prompt: "Pitch period entropy"},
		},
		RequiresScaler: false,
		PositiveText:   "The person has Parkinson's disease",
		NegativeText:   "The person does not have Parkinson's disease",
		ArtifactName:   "parkinsons.json",
	}
}

func breastCancerSpec() *Spec {
	names := []struct{ name, prompt string }{
		{"radius_mean", "Radius Mean"},
		{"texture_mean", "Texture Mean"},
		{"perimeter_mean", "Perimeter Mean"},
		{"area_mean", "Area Mean"},
		{"smoothness_mean", "Smoothness Mean"},
		{"compactness_mean", "Compactness Mean"},
		{"concavity_mean", "Concavity Mean"},
		{"concave_points_mean", "Concave Points Mean"},
		{"symmetry_mean", "Symmetry Mean"},
		{"fractal_dimension_mean", "Fractal Dimension Mean"},
		{"radius_se", "Radius SE"},
		{"texture_se", "Texture SE"},
		{"perimeter_se", "Perimeter SE"},
		{"area_se", "Area SE"},
		{"smoothness_se", "Smoothness SE"},
		{"compactness_se", "Compactness SE"},
		{"concavity_se", "Concavity SE"},
		{"concave_points_se", "Concave Points SE"},
		{"symmetry_se", "Symmetry SE"},
		{"fractal_dimension_se", "Fractal Dimension SE"},
		{"radius_worst", "Radius Worst"},
		{"texture_worst", "Texture Worst"},
		{"perimeter_worst", "Perimeter Worst"},
		{"area_worst", "Area Worst"},
		{"smoothness_worst", "Smoothness Worst"},
		{"compactness_worst", "Compactness Worst"},
		{"concavity_worst", "Concavity Worst"},
		{"concave_points_worst", "Concave Points Worst"},
		{"symmetry_worst", "Symmetry Worst"},
		{"fractal_dimension_worst", "Fractal Dimension Worst"},
	}

	fields := make([]Field, len(names))
	for i, n := range names {
		fields[i] = Field{Name: n.name, Prompt: n.prompt}
	}

	return &Spec{
		Type:           models.BreastCancer,
		Title:          "Breast Cancer Prediction",
		Fields:         fields,
		RequiresScaler: true,
		PositiveText:   "The person is Malignant (Breast Cancer Present)",
		NegativeText:   "The person is Benign (No Breast Cancer)",
		ArtifactName:   "breast_cancer.json",
	}
}
