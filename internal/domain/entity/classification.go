package entity

// ClassificationResult is the classifier's guess for a photographed dish.
type ClassificationResult struct {
	PredictedClass    string  // Label of the predicted dish.
	EstimatedCalories int     // Backend estimate floored to a whole number, never negative.
	Probability       float64 // Confidence of the predicted class, 0 when the backend omits it.
}
