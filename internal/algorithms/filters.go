// Smoothing filters
package algorithms

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// MaxKernelSize is the largest box blur side accepted
const MaxKernelSize = 1<<20 - 1

// bandBytes caps the padded working buffer of one blur pass
const bandBytes = 32 << 20

// BoxBlur implements an unweighted mean filter over a square kernel.
// Pixels outside the image take the value of the nearest edge pixel.
type BoxBlur struct {
	KernelSize int
}

// NewBoxBlur creates a new box blur with the given kernel side
func NewBoxBlur(kernelSize int) *BoxBlur {
	return &BoxBlur{KernelSize: kernelSize}
}

// Apply runs the filter as a horizontal pass and a vertical pass in float32,
// so working memory grows with the kernel side rather than its area.
func (b *BoxBlur) Apply(input gocv.Mat) (gocv.Mat, error) {
	if b.KernelSize == 1 {
		return input.Clone(), nil
	}

	src := gocv.NewMat()
	defer src.Close()
	if err := input.ConvertTo(&src, gocv.MatTypeCV32F); err != nil {
		return gocv.NewMat(), fmt.Errorf("convert to float: %w", err)
	}

	horizontal, err := blurRows(src, b.KernelSize)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer horizontal.Close()

	// The vertical pass is the row pass over the transposed image.
	transposed := gocv.NewMat()
	defer transposed.Close()
	if err := gocv.Transpose(horizontal, &transposed); err != nil {
		return gocv.NewMat(), fmt.Errorf("transpose: %w", err)
	}
	vertical, err := blurRows(transposed, b.KernelSize)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer vertical.Close()

	restored := gocv.NewMat()
	defer restored.Close()
	if err := gocv.Transpose(vertical, &restored); err != nil {
		return gocv.NewMat(), fmt.Errorf("transpose: %w", err)
	}

	output := gocv.NewMat()
	if err := restored.ConvertTo(&output, gocv.MatTypeCV8U); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("convert to 8-bit: %w", err)
	}
	return output, nil
}

// blurRows averages each pixel with its k horizontal neighbours, replicating
// the left and right edges. Rows are processed in bands to bound the padding.
func blurRows(src gocv.Mat, k int) (gocv.Mat, error) {
	pad := k / 2
	rowBytes := (src.Cols() + 2*pad) * src.Channels() * 4
	band := max(1, bandBytes/rowBytes)

	out := gocv.NewMatWithSize(src.Rows(), src.Cols(), src.Type())
	for y := 0; y < src.Rows(); y += band {
		rect := image.Rect(0, y, src.Cols(), min(y+band, src.Rows()))
		if err := blurBand(src, &out, rect, pad, k); err != nil {
			out.Close()
			return gocv.NewMat(), err
		}
	}
	return out, nil
}

func blurBand(src gocv.Mat, dst *gocv.Mat, rect image.Rectangle, pad, k int) error {
	in := src.Region(rect)
	defer in.Close()

	padded := gocv.NewMat()
	defer padded.Close()
	if err := gocv.CopyMakeBorder(in, &padded, 0, 0, pad, pad, gocv.BorderReplicate, color.RGBA{}); err != nil {
		return fmt.Errorf("pad border: %w", err)
	}

	filtered := gocv.NewMat()
	defer filtered.Close()
	if err := gocv.BoxFilter(padded, &filtered, int(gocv.MatTypeCV32F), image.Pt(k, 1)); err != nil {
		return fmt.Errorf("box filter: %w", err)
	}

	interior := filtered.Region(image.Rect(pad, 0, pad+rect.Dx(), rect.Dy()))
	defer interior.Close()
	target := dst.Region(rect)
	defer target.Close()
	if err := interior.CopyTo(&target); err != nil {
		return fmt.Errorf("copy band: %w", err)
	}
	return nil
}

func (b *BoxBlur) Validate() error {
	if b.KernelSize < 1 || b.KernelSize%2 == 0 {
		return invalidf("kernel must be odd, got %d", b.KernelSize)
	}
	if b.KernelSize > MaxKernelSize {
		return invalidf("kernel must be at most %d, got %d", MaxKernelSize, b.KernelSize)
	}
	return nil
}

func (b *BoxBlur) Name() string {
	return fmt.Sprintf("box blur %dx%d", b.KernelSize, b.KernelSize)
}
