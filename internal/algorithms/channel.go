package algorithms

import (
	"fmt"
	"strings"

	"gocv.io/x/gocv"
)

// Channel indexes a plane of a BGR matrix
type Channel int

const (
	Blue Channel = iota
	Green
	Red
)

func (c Channel) String() string {
	switch c {
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Red:
		return "red"
	}
	return fmt.Sprintf("channel(%d)", int(c))
}

// Valid reports whether c names one of the three colour planes
func (c Channel) Valid() bool {
	return c >= Blue && c <= Red
}

// ParseChannel accepts a channel letter or name, case-insensitively ("R", "red", "g", ...)
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "red":
		return Red, nil
	case "g", "green":
		return Green, nil
	case "b", "blue":
		return Blue, nil
	}
	return 0, invalidf("unknown channel %q", s)
}

// ChannelIsolation keeps one colour plane and zeroes the other two
type ChannelIsolation struct {
	Channel Channel
}

func NewChannelIsolation(ch Channel) *ChannelIsolation {
	return &ChannelIsolation{Channel: ch}
}

func (c *ChannelIsolation) Apply(input gocv.Mat) (gocv.Mat, error) {
	planes := gocv.Split(input)
	defer func() {
		for i := range planes {
			planes[i].Close()
		}
	}()
	if len(planes) != 3 {
		return gocv.NewMat(), fmt.Errorf("expected 3 planes, got %d", len(planes))
	}

	zero := gocv.Zeros(input.Rows(), input.Cols(), gocv.MatTypeCV8UC1)
	defer zero.Close()

	merged := []gocv.Mat{zero, zero, zero}
	merged[c.Channel] = planes[c.Channel]

	output := gocv.NewMat()
	if err := gocv.Merge(merged, &output); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("merge planes: %w", err)
	}
	return output, nil
}

func (c *ChannelIsolation) Validate() error {
	if !c.Channel.Valid() {
		return invalidf("unknown channel %d", int(c.Channel))
	}
	return nil
}

func (c *ChannelIsolation) Name() string {
	return "isolate " + c.Channel.String()
}
