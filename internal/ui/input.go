package ui

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}

// PointInCircle returns true if point (px, py) is within radius of (cx, cy).
func PointInCircle(px, py int, cx, cy, radius float64) bool {
	dx := float64(px) - cx
	dy := float64(py) - cy
	return dx*dx+dy*dy <= radius*radius
}
