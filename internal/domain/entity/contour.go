package entity

import "math"

// ContourShape геометрия одного замкнутого контура
type ContourShape struct {
	Area      float64 // площадь в пикселях
	Perimeter float64 // длина замкнутой границы
}

// Deviation отклонение от круга: perimeter² / (4π·area), 1 для идеального круга.
func (c ContourShape) Deviation() float64 {
	if c.Area <= 0 {
		return 0
	}
	return c.Perimeter * c.Perimeter / (4 * math.Pi * c.Area)
}

// Circularity округлость: 4π·area / perimeter².
func (c ContourShape) Circularity() float64 {
	if c.Perimeter <= 0 {
		return 0
	}
	return 4 * math.Pi * c.Area / (c.Perimeter * c.Perimeter)
}
