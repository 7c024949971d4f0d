package preview

// RotationMonitor watches display rotation changes. A 180-degree jump never
// produces a configuration-change callback from the windowing system, so it
// has to be detected here and reported as a preview flip.
type RotationMonitor struct {
	// OnFlipped fires when two consecutive rotation reports differ by 180 degrees.
	OnFlipped func()

	last int
}

// NewRotationMonitor creates a monitor with the given initial rotation in degrees.
func NewRotationMonitor(initial int) *RotationMonitor {
	return &RotationMonitor{last: initial}
}

// RotationChanged feeds a new display rotation in degrees.
func (m *RotationMonitor) RotationChanged(rotation int) {
	if (rotation-m.last+360)%360 == 180 && m.OnFlipped != nil {
		m.OnFlipped()
	}
	m.last = rotation
}

// Rotation returns the last reported rotation.
func (m *RotationMonitor) Rotation() int {
	return m.last
}
