// Package area implements the region membership test for submitted points.
//
// The area is the union of three shapes scaled by r:
//
//   - second quadrant (x <= 0, y >= 0): the quarter disk x² + y² <= r²
//   - third quadrant (x <= 0, y <= 0): the triangle above the line y = -2x - r
//   - fourth quadrant (x >= 0, y <= 0): the rectangle 0 <= x <= r/2, -r <= y <= 0
//
// Boundaries are inside. r/2 is Go integer division and truncates toward zero,
// so r = 3 gives a rectangle of width 1.
package area

import (
	"areacheck/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Contains reports whether (x, y) lies inside the area scaled by r.
func Contains(x int, y float64, r int) bool {
	p := orb.Point{float64(x), y}

	return inQuarterDisk(p, r) || inTriangle(p, r) || inRectangle(p, r)
}

func inQuarterDisk(p orb.Point, r int) bool {
	if p.X() > 0 || p.Y() < 0 {
		return false
	}
	radius := float64(r)

	return planar.DistanceSquared(orb.Point{}, p) <= radius*radius
}

func inTriangle(p orb.Point, r int) bool {
	if p.X() > 0 || p.Y() > 0 {
		return false
	}

	return p.Y() >= -2*p.X()-float64(r)
}

func inRectangle(p orb.Point, r int) bool {
	if p.X() < 0 || p.Y() > 0 {
		return false
	}
	// Bound.Contains is inclusive on every edge. For r < 0 Min exceeds Max and nothing matches.
	rect := orb.Bound{
		Min: orb.Point{0, float64(-r)},
		Max: orb.Point{float64(r / 2), 0},
	}

	return rect.Contains(p)
}

// Checker is the service.AreaChecker backed by Contains.
type Checker struct{}

// NewChecker returns the area checker used by the point use case.
func NewChecker() service.AreaChecker {
	return Checker{}
}

// Contains implements service.AreaChecker.
func (Checker) Contains(x int, y float64, r int) bool {
	return Contains(x, y, r)
}
