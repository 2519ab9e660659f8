package mutpoint

import "math"

// Cut-offs between the 1, 2, 5 and 10 step factors. A raw step whose
// mantissa is at least √50 rounds to 10, at least √10 to 5, at least √2 to 2.
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// DefaultTickCount is the approximate number of ticks used by Nice and the
// axis renderers when no count is given.
const DefaultTickCount = 10

// tickFactor returns the power of ten and 1/2/5/10 factor of the step that
// divides [start, stop] into roughly count intervals.
func tickFactor(start, stop float64, count int) (power, factor float64) {
	step := (stop - start) / math.Max(0, float64(count))
	power = math.Floor(math.Log10(step))
	mantissa := step / math.Pow(10, power)
	switch {
	case mantissa >= e10:
		factor = 10
	case mantissa >= e5:
		factor = 5
	case mantissa >= e2:
		factor = 2
	default:
		factor = 1
	}
	return power, factor
}

// tickIncrement returns the tick step for [start, stop] as an exact value.
// Steps of at least 1 are returned as positive numbers; smaller steps are
// returned as the negative inverse (-10 for 0.1) so that callers can divide
// by an integer instead of multiplying by an inexact fraction.
func tickIncrement(start, stop float64, count int) float64 {
	power, factor := tickFactor(start, stop, count)
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// tickSpec returns the integer tick indices i1..i2 and the increment in the
// same encoding as tickIncrement.
func tickSpec(start, stop float64, count int) (i1, i2, inc float64) {
	power, factor := tickFactor(start, stop, count)
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = jsRound(start * inc)
		i2 = jsRound(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = jsRound(start / inc)
		i2 = jsRound(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && count == 1 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// ticks returns about count round values spanning [start, stop], in the
// direction of the interval.
func ticks(start, stop float64, count int) []float64 {
	if count <= 0 || !finite(start) || !finite(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	var i1, i2, inc float64
	if reverse {
		i1, i2, inc = tickSpec(stop, start, count)
	} else {
		i1, i2, inc = tickSpec(start, stop, count)
	}
	if !(i2 >= i1) {
		return nil
	}
	n := int(i2-i1) + 1
	out := make([]float64, n)
	for i := range out {
		k := i1 + float64(i)
		if reverse {
			k = i2 - float64(i)
		}
		if inc < 0 {
			out[i] = k / -inc
		} else {
			out[i] = k * inc
		}
	}
	return out
}

// tickStep returns the signed tick step for [start, stop].
func tickStep(start, stop float64, count int) float64 {
	reverse := stop < start
	var inc float64
	if reverse {
		inc = tickIncrement(stop, start, count)
	} else {
		inc = tickIncrement(start, stop, count)
	}
	if inc < 0 {
		inc = 1 / -inc
	}
	if reverse {
		return -inc
	}
	return inc
}

// niceDomain extends [start, stop] outward to multiples of the tick step,
// repeating until the step stops changing. If the step has not settled
// after 10 rounds, or the interval is degenerate or non-finite, the interval
// is returned unchanged.
func niceDomain(start, stop float64, count int) (float64, float64) {
	if start == stop || !finite(start) || !finite(stop) || count <= 0 {
		return start, stop
	}
	lo, hi := start, stop
	reverse := hi < lo
	if reverse {
		lo, hi = hi, lo
	}
	var prestep float64
	for range 10 {
		step := tickIncrement(lo, hi, count)
		if step == prestep {
			if reverse {
				return hi, lo
			}
			return lo, hi
		}
		switch {
		case step > 0:
			lo = math.Floor(lo/step) * step
			hi = math.Ceil(hi/step) * step
		case step < 0:
			lo = math.Ceil(lo*step) / step
			hi = math.Floor(hi*step) / step
		default:
			return start, stop
		}
		prestep = step
	}
	return start, stop
}

// tickPrecision returns the number of fraction digits needed to tell ticks
// spaced step apart from each other.
func tickPrecision(step float64) int {
	step = math.Abs(step)
	if step == 0 || !finite(step) {
		return 0
	}
	return max(0, -exponent(step))
}

// exponent returns the decimal exponent of a positive v, so that
// 10^e <= v < 10^(e+1). It corrects for rounding in math.Log10 at exact
// powers of ten.
func exponent(v float64) int {
	e := int(math.Floor(math.Log10(v)))
	switch {
	case math.Pow10(e+1) <= v:
		e++
	case math.Pow10(e) > v:
		e--
	}
	return e
}

// jsRound rounds half up, toward positive infinity.
func jsRound(v float64) float64 {
	return math.Floor(v + 0.5)
}
