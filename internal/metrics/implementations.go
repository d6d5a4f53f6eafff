// Concrete implementations of difference metrics
package metrics

import (
	"math"

	"basic-image-editor/internal/core"
)

// MSE implements mean squared error over every channel byte
type MSE struct{}

func NewMSE() *MSE {
	return &MSE{}
}

func (m *MSE) Calculate(original, processed core.Image) (float64, error) {
	if err := checkComparable(original, processed); err != nil {
		return 0, err
	}

	sumSquaredDiff := 0.0
	for i := range original.Pix {
		diff := float64(original.Pix[i]) - float64(processed.Pix[i])
		sumSquaredDiff += diff * diff
	}
	return sumSquaredDiff / float64(len(original.Pix)), nil
}

func (m *MSE) GetName() string {
	return "MSE"
}

// PSNR implements Peak Signal-to-Noise Ratio in dB; identical images give +Inf
type PSNR struct {
	mse MSE
}

func NewPSNR() *PSNR {
	return &PSNR{}
}

func (p *PSNR) Calculate(original, processed core.Image) (float64, error) {
	mse, err := p.mse.Calculate(original, processed)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}

	maxVal := 255.0
	return 20 * math.Log10(maxVal/math.Sqrt(mse)), nil
}

func (p *PSNR) GetName() string {
	return "PSNR"
}

// ChangedPixels is the fraction of pixels where any channel differs
type ChangedPixels struct{}

func NewChangedPixels() *ChangedPixels {
	return &ChangedPixels{}
}

func (c *ChangedPixels) Calculate(original, processed core.Image) (float64, error) {
	if err := checkComparable(original, processed); err != nil {
		return 0, err
	}

	changed := 0
	for i := 0; i < len(original.Pix); i += core.BytesPerPixel {
		if original.Pix[i] != processed.Pix[i] ||
			original.Pix[i+1] != processed.Pix[i+1] ||
			original.Pix[i+2] != processed.Pix[i+2] {
			changed++
		}
	}
	return float64(changed) / float64(original.Width*original.Height), nil
}

func (c *ChangedPixels) GetName() string {
	return "Changed"
}
