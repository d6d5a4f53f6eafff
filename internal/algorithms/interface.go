// Pixel operators executed with OpenCV on 8-bit BGR matrices
package algorithms

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// ErrInvalidParameter is returned by Validate when an operator parameter is out of range
var ErrInvalidParameter = errors.New("invalid parameter")

// Operator transforms one BGR matrix into a new one. Apply never modifies its input;
// the caller owns and must close the returned Mat.
type Operator interface {
	Apply(input gocv.Mat) (gocv.Mat, error)
	Validate() error
	Name() string
}

// Run validates op and applies it to input
func Run(op Operator, input gocv.Mat) (gocv.Mat, error) {
	if err := op.Validate(); err != nil {
		return gocv.NewMat(), err
	}
	if err := checkInput(input); err != nil {
		return gocv.NewMat(), fmt.Errorf("%s: %w", op.Name(), err)
	}
	return op.Apply(input)
}

func checkInput(input gocv.Mat) error {
	if input.Empty() {
		return fmt.Errorf("input image is empty")
	}
	if input.Type() != gocv.MatTypeCV8UC3 {
		return fmt.Errorf("unsupported matrix type %v, want 8-bit 3-channel", input.Type())
	}
	return nil
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
