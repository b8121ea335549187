package progress

// Easing maps a linear fraction t in [0,1] to an eased fraction.
type Easing func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
