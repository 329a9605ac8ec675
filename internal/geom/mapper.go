package geom

import "fmt"

// Mapper maps logical coordinates (one unit = circle radius) to rendered
// scene coordinates. The zero value is not usable; build one with NewMapper.
type Mapper struct {
	origin Vec
	unit   float64
}

// NewMapper returns a mapper placing the logical origin at origin and
// scaling one logical unit to unit scene units.
func NewMapper(origin Vec, unit float64) (Mapper, error) {
	if unit <= 0 {
		return Mapper{}, fmt.Errorf("geom: unit must be positive, got %f", unit)
	}
	return Mapper{origin: origin, unit: unit}, nil
}

// Map converts logical (x, y) to a rendered point.
func (m Mapper) Map(x, y float64) Vec {
	return Vec{m.origin.X + m.unit*x, m.origin.Y + m.unit*y}
}

// Unmap is the inverse of Map.
func (m Mapper) Unmap(p Vec) (x, y float64) {
	return (p.X - m.origin.X) / m.unit, (p.Y - m.origin.Y) / m.unit
}

func (m Mapper) Origin() Vec   { return m.origin }
func (m Mapper) Unit() float64 { return m.unit }
