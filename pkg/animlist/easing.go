package animlist

import "math"

// Easing maps linear time t in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseInOut is a symmetric ease-in/ease-out curve.
var EaseInOut = InOut(Bezier(0.42, 0, 1, 1))

// InOut mirrors an ease-in curve so the second half decelerates.
func InOut(in Easing) Easing {
	return func(t float64) float64 {
		if t < 0.5 {
			return in(t*2) / 2
		}
		return 1 - in((1-t)*2)/2
	}
}

// Bezier returns a cubic bezier curve through (0,0), (x1,y1), (x2,y2), (1,1).
func Bezier(x1, y1, x2, y2 float64) Easing {
	b := newUnitBezier(x1, y1, x2, y2)
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return b.sampleY(b.solveX(t))
	}
}

const bezierEpsilon = 1e-7

type unitBezier struct {
	ax, bx, cx float64
	ay, by, cy float64
}

func newUnitBezier(x1, y1, x2, y2 float64) unitBezier {
	var b unitBezier
	b.cx = 3 * x1
	b.bx = 3*(x2-x1) - b.cx
	b.ax = 1 - b.cx - b.bx
	b.cy = 3 * y1
	b.by = 3*(y2-y1) - b.cy
	b.ay = 1 - b.cy - b.by
	return b
}

func (b unitBezier) sampleX(t float64) float64 { return ((b.ax*t+b.bx)*t + b.cx) * t }
func (b unitBezier) sampleY(t float64) float64 { return ((b.ay*t+b.by)*t + b.cy) * t }
func (b unitBezier) slopeX(t float64) float64  { return (3*b.ax*t+2*b.bx)*t + b.cx }

// solveX finds the curve parameter for x: Newton's method first, bisection
// when the slope is too flat to converge.
func (b unitBezier) solveX(x float64) float64 {
	t := x
	for range 8 {
		err := b.sampleX(t) - x
		if math.Abs(err) < bezierEpsilon {
			return t
		}
		d := b.slopeX(t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= err / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for lo < hi {
		v := b.sampleX(t)
		if math.Abs(v-x) < bezierEpsilon {
			return t
		}
		if x > v {
			lo = t
		} else {
			hi = t
		}
		next := (lo + hi) / 2
		if next == t {
			break
		}
		t = next
	}
	return t
}
