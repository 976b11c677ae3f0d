package model

import (
	"math"
	"math/bits"
)

// ComplexityTag represents one of the six fixed complexity classes
type ComplexityTag string

const (
	TagConstant     ComplexityTag = "constant"
	TagLogarithmic  ComplexityTag = "logarithmic"
	TagLinear       ComplexityTag = "linear"
	TagLinearithmic ComplexityTag = "linearithmic"
	TagQuadratic    ComplexityTag = "quadratic"
	TagExponential  ComplexityTag = "exponential"
)

// ExponentialOpCap bounds the exponential cost formula so simulated
// operation counts never overflow.
const ExponentialOpCap = 1_000_000

// AllTags returns every complexity tag in growth order
func AllTags() []ComplexityTag {
	return []ComplexityTag{
		TagConstant, TagLogarithmic, TagLinear,
		TagLinearithmic, TagQuadratic, TagExponential,
	}
}

// Display returns the Big-O notation for the tag
func (t ComplexityTag) Display() string {
	switch t {
	case TagConstant:
		return "O(1)"
	case TagLogarithmic:
		return "O(log n)"
	case TagLinear:
		return "O(n)"
	case TagLinearithmic:
		return "O(n log n)"
	case TagQuadratic:
		return "O(n²)"
	case TagExponential:
		return "O(2^n)"
	default:
		return string(t)
	}
}

// Description returns a short human explanation of the growth class
func (t ComplexityTag) Description() string {
	switch t {
	case TagConstant:
		return "Runs in the same time regardless of input size"
	case TagLogarithmic:
		return "Halves the remaining work at every step"
	case TagLinear:
		return "Touches each element once"
	case TagLinearithmic:
		return "Divide-and-conquer over the whole input, like efficient sorting"
	case TagQuadratic:
		return "Compares every element against every other element"
	case TagExponential:
		return "Doubles the work with each additional element"
	default:
		return ""
	}
}

// Cost returns the synthetic operation count the tag attributes to a single
// line for input size n. The formulas are closed-form; no loop over n is
// ever executed. n must be >= 1.
func (t ComplexityTag) Cost(n int) int {
	switch t {
	case TagConstant:
		return 1
	case TagLogarithmic:
		return Log2Floor(n) + 1
	case TagLinear:
		return n
	case TagLinearithmic:
		return int(math.Floor(float64(n) * math.Log2(float64(n))))
	case TagQuadratic:
		return n * n
	case TagExponential:
		// 2^20 already exceeds the cap
		if n >= 20 {
			return ExponentialOpCap
		}
		return 1 << n
	default:
		return 0
	}
}

// Log2Floor returns floor(log2(n)) for n >= 2, and 0 otherwise, keeping
// every cost and threshold finite at n = 1.
func Log2Floor(n int) int {
	if n < 2 {
		return 0
	}
	return bits.Len(uint(n)) - 1
}
