package analysis

import "math"

// varianceEpsilon guards against rounding noise in constant series.
const varianceEpsilon = 1e-12

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// pearson returns the linear correlation of xs and ys. ok is false when the
// series differ in length, are empty, or either has zero variance.
func pearson(xs, ys []float64) (r float64, ok bool) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return 0, false
	}

	mx, my := mean(xs), mean(ys)
	var cov, vx, vy float64
	for i := range xs {
		dx := xs[i] - mx
		dy := ys[i] - my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx < varianceEpsilon || vy < varianceEpsilon {
		return 0, false
	}
	return cov / math.Sqrt(vx*vy), true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
