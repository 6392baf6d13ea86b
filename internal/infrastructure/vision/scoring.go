package vision

import (
	"gonum.org/v1/gonum/stat"

	"leaf-advisor/internal/domain/entity"
)

// ScoreContours считает голоса за увядание и среднюю округлость.
// Голос даёт контур площадью больше WiltMinArea с отклонением от круга больше WiltDeviation.
// Средняя округлость берётся по контурам площадью больше CircularityMinArea, 0 если таких нет.
func ScoreContours(shapes []entity.ContourShape, p Params) (wiltVotes int, avgCircularity float64) {
	circ := make([]float64, 0, len(shapes))
	for _, s := range shapes {
		if s.Area > p.WiltMinArea && s.Deviation() > p.WiltDeviation {
			wiltVotes++
		}
		if s.Area > p.CircularityMinArea && s.Perimeter > 0 {
			circ = append(circ, s.Circularity())
		}
	}
	if len(circ) == 0 {
		return wiltVotes, 0
	}
	return wiltVotes, stat.Mean(circ, nil)
}
