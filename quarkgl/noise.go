package quarkgl

import "math"

// Noise is a lattice hash: (x, y) is floored to integers, mixed with multiplicative
// constants (wrapping int32 arithmetic), folded through sin and reduced to [0,1).
// It has no state and is exactly reproducible.
func Noise(x, y float32) float32 {
	xi := int32(math.Floor(float64(x)))
	yi := int32(math.Floor(float64(y)))
	h := (xi*374761393 + yi*668265263) ^ (xi * 668265263)
	v := math.Sin(float64(float32(h))) * 43758.5453
	return float32(v - math.Floor(v))
}

// FBM sums octaves of Noise, doubling frequency and halving amplitude each octave.
func FBM(x, y float32, octaves int) float32 {
	var value float32
	amplitude := float32(1)
	frequency := float32(1)
	for i := 0; i < octaves; i++ {
		value += amplitude * Noise(x*frequency, y*frequency)
		frequency *= 2
		amplitude *= 0.5
	}
	return value
}
