package evaluation

import (
	"fmt"
	"math"
)

// BinaryMetrics summarizes a binary classification run with labels
// -1/+1, treating +1 as the positive class.
type BinaryMetrics struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1Score   float64 `json:"f1_score"`

	TruePositives  int `json:"true_positives"`
	TrueNegatives  int `json:"true_negatives"`
	FalsePositives int `json:"false_positives"`
	FalseNegatives int `json:"false_negatives"`

	NumSamples int `json:"num_samples"`
}

func CalculateMetrics(yTrue, yPred []int) (*BinaryMetrics, error) {
	if len(yTrue) != len(yPred) {
		return nil, fmt.Errorf("label slices have different lengths: %d vs %d", len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return nil, fmt.Errorf("no predictions to evaluate")
	}

	m := &BinaryMetrics{NumSamples: len(yTrue)}

	for i := range yTrue {
		switch {
		case yTrue[i] == 1 && yPred[i] == 1:
			m.TruePositives++
		case yTrue[i] == -1 && yPred[i] == -1:
			m.TrueNegatives++
		case yTrue[i] == -1 && yPred[i] == 1:
			m.FalsePositives++
		case yTrue[i] == 1 && yPred[i] == -1:
			m.FalseNegatives++
		default:
			return nil, fmt.Errorf("sample %d has labels outside {-1,+1}: true %d, pred %d", i, yTrue[i], yPred[i])
		}
	}

	m.Accuracy = float64(m.TruePositives+m.TrueNegatives) / float64(m.NumSamples)
	m.Precision = safeDivide(float64(m.TruePositives), float64(m.TruePositives+m.FalsePositives))
	m.Recall = safeDivide(float64(m.TruePositives), float64(m.TruePositives+m.FalseNegatives))
	m.F1Score = safeDivide(2*m.Precision*m.Recall, m.Precision+m.Recall)

	return m, nil
}

func safeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0.0
	}
	result := numerator / denominator
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0.0
	}
	return result
}

func (m *BinaryMetrics) FormatMetrics() string {
	result := fmt.Sprintf("Accuracy: %.4f\n", m.Accuracy)
	result += fmt.Sprintf("Precision: %.4f\n", m.Precision)
	result += fmt.Sprintf("Recall: %.4f\n", m.Recall)
	result += fmt.Sprintf("F1: %.4f\n", m.F1Score)
	result += fmt.Sprintf("Confusion: TP=%d TN=%d FP=%d FN=%d\n",
		m.TruePositives, m.TrueNegatives, m.FalsePositives, m.FalseNegatives)
	return result
}
