package entity

import "math"

// Severity полоса тяжести поражения
type Severity string

const (
	SeverityLow    Severity = "Low"    // до 1% площади
	SeverityMedium Severity = "Medium" // до 10% площади
	SeverityHigh   Severity = "High"   // больше 10%
)

// Границы полос тяжести в процентах поражённой площади.
const (
	LowSeverityMaxPercent    = 1.0
	MediumSeverityMaxPercent = 10.0
)

// ClassifySeverity относит процент поражения к одной из полос.
func ClassifySeverity(diseasePercentage float64) Severity {
	switch {
	case diseasePercentage <= LowSeverityMaxPercent:
		return SeverityLow
	case diseasePercentage <= MediumSeverityMaxPercent:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// LeafFeatures признаки, извлечённые из изображения листа.
type LeafFeatures struct {
	ImageWidth        int     // ширина изображения
	ImageHeight       int     // высота изображения
	DiseasePercentage float64 // доля поражённых пикселей, %
	WiltingScore      int     // число контуров-«голосов» за увядание
	AvgCircularity    float64 // средняя округлость крупных контуров
}

// Metrics итоговые метрики одного прогона, не меняются после расчёта.
type Metrics struct {
	DiseasePercentage float64
	WiltingScore      int
	AvgCircularity    float64
	Severity          Severity
}

// NewMetrics собирает метрики из признаков и вычисляет полосу тяжести.
func NewMetrics(f LeafFeatures) Metrics {
	return Metrics{
		DiseasePercentage: f.DiseasePercentage,
		WiltingScore:      f.WiltingScore,
		AvgCircularity:    f.AvgCircularity,
		Severity:          ClassifySeverity(f.DiseasePercentage),
	}
}

// CoveragePercent переводит число отмеченных пикселей в процент площади.
// Пустое изображение даёт 0, иначе результат не меньше floor.
func CoveragePercent(marked, total int, floor float64) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(marked) / float64(total) * 100
	return math.Max(pct, floor)
}
