package common

import "math"

const (
	// BaseWidth and BaseHeight are the default arena and window size in pixels.
	BaseWidth  = 640
	BaseHeight = 480

	// TPS is the display update rate.
	TPS = 60
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// RoundPixel rounds a coordinate to the nearest pixel, halves up.
func RoundPixel(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
