package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basic-image-editor/internal/core"
)

func TestIdenticalImages(t *testing.T) {
	img := core.NewImage(4, 4)
	e := NewEvaluator()

	mse, err := e.Calculate("mse", img, img.Clone())
	require.NoError(t, err)
	assert.Zero(t, mse)

	psnr, err := e.Calculate("psnr", img, img.Clone())
	require.NoError(t, err)
	assert.True(t, math.IsInf(psnr, 1))

	changed, err := e.Calculate("changed", img, img.Clone())
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestKnownDifference(t *testing.T) {
	original := core.NewImage(2, 1)
	processed := original.Clone()
	processed.SetBGR(0, 0, 255, 255, 255)

	e := NewEvaluator()
	results := e.CalculateAll(original, processed)

	// three of six bytes differ by 255
	assert.InDelta(t, 255.0*255.0/2, results["mse"], 1e-9)
	assert.InDelta(t, 20*math.Log10(255/math.Sqrt(255.0*255.0/2)), results["psnr"], 1e-9)
	assert.InDelta(t, 0.5, results["changed"], 1e-9)
}

func TestMismatchedImages(t *testing.T) {
	e := NewEvaluator()

	_, err := e.Calculate("mse", core.NewImage(2, 2), core.NewImage(3, 2))
	assert.ErrorContains(t, err, "mismatch")

	_, err = e.Calculate("psnr", core.Image{}, core.NewImage(1, 1))
	assert.Error(t, err)

	assert.Empty(t, e.CalculateAll(core.NewImage(2, 2), core.NewImage(3, 2)))
}

func TestUnknownMetric(t *testing.T) {
	_, err := NewEvaluator().Calculate("ssim", core.NewImage(1, 1), core.NewImage(1, 1))
	assert.ErrorContains(t, err, "metric not found")
}

func TestSummary(t *testing.T) {
	img := core.NewImage(2, 2)
	assert.Equal(t, "Changed 0.0% | MSE 0.00 | PSNR ∞", NewEvaluator().Summary(img, img.Clone()))
}
