package algorithms

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Negative replaces every byte v with 255 - v
type Negative struct{}

func NewNegative() *Negative {
	return &Negative{}
}

func (n *Negative) Apply(input gocv.Mat) (gocv.Mat, error) {
	output := gocv.NewMat()
	if err := gocv.BitwiseNot(input, &output); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("bitwise not: %w", err)
	}
	return output, nil
}

func (n *Negative) Validate() error {
	return nil
}

func (n *Negative) Name() string {
	return "negative"
}
