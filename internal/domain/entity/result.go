package entity

import "time"

// Point is a caller-supplied submission: a coordinate and the region scale r.
type Point struct {
	X int
	Y float64
	R int
}

// Result is one recorded evaluation of a Point for a User.
// Hit is always computed by the server; it is never copied from the request.
type Result struct {
	ID        int64
	UserID    int64
	X         int
	Y         float64
	R         int
	Hit       bool
	CreatedAt time.Time
}

// Point returns the submitted coordinates of the result.
func (r *Result) Point() Point {
	return Point{X: r.X, Y: r.Y, R: r.R}
}
