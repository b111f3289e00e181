package persistence

import (
	"encoding/gob"
	"fmt"
	"os"
	"time"

	"github.com/rbelina/svmviz/internal/classifier"
	"github.com/rbelina/svmviz/internal/preprocessing"
)

// ModelBundle is the on-disk form of a trained run: the classifier, the
// scaler it was trained behind, and summary metadata.
type ModelBundle struct {
	Model     *classifier.LinearSVC
	Scaler    *preprocessing.Scaler
	Metadata  BundleMetadata
	CreatedAt time.Time
}

type BundleMetadata struct {
	ModelName string
	Dataset   string
	Kernel    string
	Cost      float64
	Scaled    bool
	Accuracy  float64
	Precision float64
	Recall    float64
	F1Score   float64
}

func NewModelBundle(model *classifier.LinearSVC) *ModelBundle {
	return &ModelBundle{
		Model:     model,
		CreatedAt: time.Now(),
		Metadata: BundleMetadata{
			ModelName: model.GetName(),
			Kernel:    classifier.KernelLinear,
			Cost:      model.Cost,
		},
	}
}

func (mb *ModelBundle) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(mb); err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}

	return nil
}

func LoadModelBundle(filename string) (*ModelBundle, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var bundle ModelBundle
	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("failed to decode bundle: %w", err)
	}

	return &bundle, nil
}

func (mb *ModelBundle) SaveMetadata(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "Model: %s\n", mb.Metadata.ModelName)
	fmt.Fprintf(file, "Dataset: %s\n", mb.Metadata.Dataset)
	fmt.Fprintf(file, "Kernel: %s\n", mb.Metadata.Kernel)
	fmt.Fprintf(file, "Cost: %.4f\n", mb.Metadata.Cost)
	fmt.Fprintf(file, "Scaled: %v\n", mb.Metadata.Scaled)
	fmt.Fprintf(file, "Created: %s\n", mb.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(file, "Accuracy: %.4f\n", mb.Metadata.Accuracy)
	fmt.Fprintf(file, "Precision: %.4f\n", mb.Metadata.Precision)
	fmt.Fprintf(file, "Recall: %.4f\n", mb.Metadata.Recall)
	fmt.Fprintf(file, "F1 Score: %.4f\n", mb.Metadata.F1Score)

	return nil
}
