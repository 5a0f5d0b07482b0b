package service

// AreaChecker decides whether a point lies inside the area scaled by r.
type AreaChecker interface {
	Contains(x int, y float64, r int) bool
}
