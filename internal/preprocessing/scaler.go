package preprocessing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/rbelina/svmviz/internal/dataset"
)

// Scaler rescales 2D points feature-wise. ScaleType is one of
// "standard", "minmax" or "raw"/"none".
type Scaler struct {
	ScaleType   string
	IsFitted    bool
	FeatureMin  [2]decimal.Decimal
	FeatureMax  [2]decimal.Decimal
	FeatureMean [2]decimal.Decimal
	FeatureStd  [2]decimal.Decimal
}

func NewScaler(scaleType string) *Scaler {
	return &Scaler{
		ScaleType: scaleType,
		IsFitted:  false,
	}
}

func (s *Scaler) Fit(points []dataset.Point2D) error {
	if len(points) == 0 {
		return fmt.Errorf("empty dataset")
	}

	switch s.ScaleType {
	case "minmax", "normalized":
		s.fitMinMax(points)
	case "standard", "standardized":
		s.fitStandard(points)
	case "raw", "none":
	default:
		return fmt.Errorf("unknown scale type: %s", s.ScaleType)
	}

	s.IsFitted = true
	return nil
}

func (s *Scaler) Transform(points []dataset.Point2D) ([]dataset.Point2D, error) {
	if !s.IsFitted {
		return nil, fmt.Errorf("scaler must be fitted before transform")
	}

	result := make([]dataset.Point2D, len(points))

	if s.ScaleType == "raw" || s.ScaleType == "none" {
		copy(result, points)
		return result, nil
	}

	for i, p := range points {
		coords := [2]decimal.Decimal{p.X1, p.X2}
		for j := range coords {
			switch s.ScaleType {
			case "minmax", "normalized":
				coords[j] = s.transformMinMax(coords[j], j)
			case "standard", "standardized":
				coords[j] = s.transformStandard(coords[j], j)
			}
		}
		result[i] = dataset.Point2D{X1: coords[0], X2: coords[1]}
	}

	return result, nil
}

func (s *Scaler) FitTransform(points []dataset.Point2D) ([]dataset.Point2D, error) {
	if err := s.Fit(points); err != nil {
		return nil, err
	}
	return s.Transform(points)
}

// TransformSamples rescales the points of a labeled set, leaving the
// labels untouched.
func (s *Scaler) TransformSamples(samples []dataset.Sample) ([]dataset.Sample, error) {
	scaled, err := s.Transform(dataset.Points(samples))
	if err != nil {
		return nil, err
	}

	result := make([]dataset.Sample, len(samples))
	for i := range samples {
		result[i] = dataset.Sample{Point: scaled[i], Label: samples[i].Label}
	}
	return result, nil
}

func (s *Scaler) fitMinMax(points []dataset.Point2D) {
	s.FeatureMin = [2]decimal.Decimal{points[0].X1, points[0].X2}
	s.FeatureMax = [2]decimal.Decimal{points[0].X1, points[0].X2}

	for _, p := range points[1:] {
		coords := [2]decimal.Decimal{p.X1, p.X2}
		for j := range coords {
			if coords[j].LessThan(s.FeatureMin[j]) {
				s.FeatureMin[j] = coords[j]
			}
			if coords[j].GreaterThan(s.FeatureMax[j]) {
				s.FeatureMax[j] = coords[j]
			}
		}
	}
}

func (s *Scaler) fitStandard(points []dataset.Point2D) {
	nSamples := decimal.NewFromInt(int64(len(points)))

	sums := [2]decimal.Decimal{decimal.Zero, decimal.Zero}
	for _, p := range points {
		sums[0] = sums[0].Add(p.X1)
		sums[1] = sums[1].Add(p.X2)
	}
	for j := range sums {
		s.FeatureMean[j] = sums[j].Div(nSamples)
	}

	for j := 0; j < 2; j++ {
		variance := decimal.Zero
		for _, p := range points {
			coords := [2]decimal.Decimal{p.X1, p.X2}
			diff := coords[j].Sub(s.FeatureMean[j])
			variance = variance.Add(diff.Mul(diff))
		}
		variance = variance.Div(nSamples)

		varFloat, _ := variance.Float64()
		s.FeatureStd[j] = decimal.NewFromFloat(math.Sqrt(varFloat))

		if s.FeatureStd[j].IsZero() {
			s.FeatureStd[j] = decimal.NewFromInt(1)
		}
	}
}

func (s *Scaler) transformMinMax(value decimal.Decimal, featureIndex int) decimal.Decimal {
	range_ := s.FeatureMax[featureIndex].Sub(s.FeatureMin[featureIndex])
	if range_.IsZero() {
		return decimal.Zero
	}
	return value.Sub(s.FeatureMin[featureIndex]).Div(range_)
}

func (s *Scaler) transformStandard(value decimal.Decimal, featureIndex int) decimal.Decimal {
	return value.Sub(s.FeatureMean[featureIndex]).Div(s.FeatureStd[featureIndex])
}
