package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContourShape_Circle(t *testing.T) {
	r := 20.0
	c := ContourShape{Area: math.Pi * r * r, Perimeter: 2 * math.Pi * r}
	require.InDelta(t, 1.0, c.Deviation(), 1e-9)
	require.InDelta(t, 1.0, c.Circularity(), 1e-9)
}

func TestContourShape_Rectangle(t *testing.T) {
	c := ContourShape{Area: 200 * 10, Perimeter: 2 * (200 + 10)}
	require.Greater(t, c.Deviation(), 1.5)
	require.Less(t, c.Circularity(), 0.2)
}

func TestContourShape_Degenerate(t *testing.T) {
	require.Equal(t, 0.0, ContourShape{Perimeter: 10}.Deviation())
	require.Equal(t, 0.0, ContourShape{Area: 10}.Circularity())
}
