package visualize

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbelina/svmviz/internal/classifier"
	"github.com/rbelina/svmviz/internal/dataset"
	"github.com/rbelina/svmviz/internal/render"
)

// captureBackend records layers instead of drawing them.
type captureBackend struct {
	points []render.PointSet
	lines  []render.Line
}

func (cb *captureBackend) AddPoints(ps render.PointSet) { cb.points = append(cb.points, ps) }
func (cb *captureBackend) AddLine(l render.Line) { cb.lines = append(cb.lines, l) }
func (cb *captureBackend) Save(path string) error { return nil }

func twoClusters(t *testing.T) []dataset.Sample {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	samples, err := dataset.GenerateClusters(rng, dataset.DefaultClusterConfig())
	require.NoError(t, err)
	require.Len(t, samples, 40)
	return samples
}

func TestVisualizeTwoClusterScenario(t *testing.T) {
	samples := twoClusters(t)

	model, err := classifier.Train(samples, classifier.DefaultConfig())
	require.NoError(t, err)

	grid, err := BuildGrid(dataset.Points(samples), 105)
	require.NoError(t, err)
	assert.Equal(t, 11025, len(grid.Points))

	field, err := ClassifyGrid(grid, model)
	require.NoError(t, err)
	assert.Equal(t, 11025, len(field.Labels))

	// The field sides with the nearby cluster.
	negLabel, err := model.Predict(dataset.NewPoint(0, 0))
	require.NoError(t, err)
	assert.Equal(t, -1, negLabel)
	posLabel, err := model.Predict(dataset.NewPoint(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, posLabel)

	// The boundary passes between the cluster centers: decision values
	// at the two centers have opposite signs.
	boundary, err := DeriveLinearBoundary(model)
	require.NoError(t, err)
	atNeg := boundary.W1*0 + boundary.W2*0 - boundary.B
	atPos := boundary.W1*1 + boundary.W2*1 - boundary.B
	assert.Less(t, atNeg, 0.0)
	assert.Greater(t, atPos, 0.0)
}

func TestVisualizeProducesAllLayers(t *testing.T) {
	samples := twoClusters(t)

	model, err := classifier.Train(samples, classifier.DefaultConfig())
	require.NoError(t, err)

	backend := &captureBackend{}
	err = Visualize(backend, samples, model, 25)
	require.NoError(t, err)

	// Two region layers, two sample layers, one support-vector layer.
	require.Len(t, backend.points, 5)
	assert.Equal(t, "region -1", backend.points[0].Name)
	assert.Equal(t, "region +1", backend.points[1].Name)
	assert.Equal(t, "class -1", backend.points[2].Name)
	assert.Equal(t, "class +1", backend.points[3].Name)
	assert.Equal(t, "support vectors", backend.points[4].Name)

	// Region layers partition the grid.
	assert.Equal(t, 625, len(backend.points[0].Points)+len(backend.points[1].Points))
	assert.Equal(t, 20, len(backend.points[2].Points))
	assert.Equal(t, 20, len(backend.points[3].Points))
	assert.NotEmpty(t, backend.points[4].Points)

	// Decision line solid, margins dashed.
	require.Len(t, backend.lines, 3)
	assert.False(t, backend.lines[0].Dashed)
	assert.True(t, backend.lines[1].Dashed)
	assert.True(t, backend.lines[2].Dashed)
}

func TestVisualizeRejectsEmptyInput(t *testing.T) {
	model := &stubLinear{w1: 1, w2: 1}
	err := Visualize(&captureBackend{}, nil, model, 10)
	assert.ErrorIs(t, err, dataset.ErrInput)
}
