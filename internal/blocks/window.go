package blocks

import "errors"

// Window holds the reference-genome bounds and the breakpoint bridging
// parameters used by Reduce.
type Window struct {
	MinStart   int // hits starting before this are discarded
	MaxEnd     int // unbridged interval ends are clamped to this
	Breakpoint int
	Tolerance  int
}

// DefaultWindow is the HXB2 (K03455) window: the 5' LTR is excluded and
// the 3' end stops at the end of nef. Hits ending near 6623 are fused with
// the following hit.
var DefaultWindow = Window{
	MinStart:   638,
	MaxEnd:     9604,
	Breakpoint: 6623,
	Tolerance:  50,
}

// Validate checks the preconditions Reduce relies on.
func (w Window) Validate() error {
	if w.MinStart > w.MaxEnd {
		return errors.New("min start exceeds max end")
	}
	if w.Tolerance < 0 {
		return errors.New("tolerance must be ≥ 0")
	}
	return nil
}

// InBreakpoint reports whether end lies in [Breakpoint-Tolerance, Breakpoint+Tolerance].
func (w Window) InBreakpoint(end int) bool {
	return w.Breakpoint-w.Tolerance <= end && end <= w.Breakpoint+w.Tolerance
}
