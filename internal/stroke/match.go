package stroke

import (
	"math"

	"github.com/ThatOtherAndrew/Glyphcast/internal/models"
)

// AnglePrecision is the index step of the cyclic offset scan.
const AnglePrecision = 2

// Golden-section search bounds for the path distance matcher.
var (
	angleRange = 45 * math.Pi / 180
	angleDelta = 2 * math.Pi / 180
	phi        = 0.5 * (-1 + math.Sqrt(5))
)

// HalfDiagonal of the canonical square.
var HalfDiagonal = 0.5 * math.Sqrt(2*SquareSize*SquareSize)

// Cosine matching

// CosineSimilarity is the mean dot product of a[i] and b[(offset+i) mod n].
// The offset shifts indices, it does not rotate coordinates.
func CosineSimilarity(a, b models.Stroke, offset int) float64 {
	n := len(a)
	if n == 0 || len(b) != n {
		return 0
	}
	sum := 0.0
	for i := range a {
		j := (offset + i) % n
		sum += a[i].X*b[j].X + a[i].Y*b[j].Y
	}
	return sum / float64(n)
}

// OptimalCosineDistance scans every AnglePrecision-th offset and keeps the best.
func OptimalCosineDistance(a, b models.Stroke) float64 {
	best := math.Inf(-1)
	for offset := 0; offset < len(a); offset += AnglePrecision {
		best = math.Max(best, CosineSimilarity(a, b, offset))
	}
	if math.IsInf(best, -1) {
		return 0
	}
	return best
}

// Path distance matching

// PathScore maps the best path distance onto [0, 1]; 1 is identical.
func PathScore(points, T models.Stroke) float64 {
	d := DistanceAtBestAngle(points, T, -angleRange, angleRange, angleDelta)
	return 1 - d/HalfDiagonal
}

// DistanceAtBestAngle golden-section searches [a, b] for the rotation of
// points that minimises the path distance to T.
func DistanceAtBestAngle(points, T models.Stroke, a, b, delta float64) float64 {
	x1 := phi*a + (1-phi)*b
	f1 := DistanceAtAngle(points, T, x1)
	x2 := (1-phi)*a + phi*b
	f2 := DistanceAtAngle(points, T, x2)
	for math.Abs(b-a) > delta {
		if f1 < f2 {
			b = x2
			x2 = x1
			f2 = f1
			x1 = phi*a + (1-phi)*b
			f1 = DistanceAtAngle(points, T, x1)
		} else {
			a = x1
			x1 = x2
			f1 = f2
			x2 = (1-phi)*a + phi*b
			f2 = DistanceAtAngle(points, T, x2)
		}
	}
	return math.Min(f1, f2)
}

func DistanceAtAngle(points, T models.Stroke, radians float64) float64 {
	return PathDistance(RotateBy(points, radians), T)
}

// PathDistance is the mean point-to-point distance of two equal-length paths.
func PathDistance(A, B models.Stroke) float64 {
	if len(A) == 0 || len(A) != len(B) {
		return math.Inf(1)
	}
	d := 0.0
	for i := range A {
		d += Distance(A[i], B[i])
	}
	return d / float64(len(A))
}
