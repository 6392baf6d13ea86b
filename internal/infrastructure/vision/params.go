package vision

// HSVRange включающий диапазон в HSV (OpenCV: H 0-180, S 0-255, V 0-255).
type HSVRange struct {
	Name   string
	Lower  [3]float64
	Higher [3]float64
}

// Params пороги анализа изображения листа.
type Params struct {
	DiseaseBands  []HSVRange
	CoverageFloor float64 // минимальная ненулевая доля поражения, %

	BlurKernel int     // размер ядра гауссова размытия
	CannyLow   float32 // нижний порог Canny
	CannyHigh  float32 // верхний порог Canny

	WiltMinArea        float64 // контуры крупнее этого голосуют за увядание
	WiltDeviation      float64 // порог perimeter²/(4π·area)
	CircularityMinArea float64 // контуры крупнее этого входят в среднюю округлость
}

// DefaultDiseaseBands жёлтые, бурые, белёсые и тусклые пятна.
var DefaultDiseaseBands = []HSVRange{
	{Name: "yellow", Lower: [3]float64{20, 100, 100}, Higher: [3]float64{35, 255, 255}},
	{Name: "brown", Lower: [3]float64{8, 60, 20}, Higher: [3]float64{20, 255, 200}},
	{Name: "white", Lower: [3]float64{0, 0, 200}, Higher: [3]float64{180, 40, 255}},
	{Name: "gray", Lower: [3]float64{0, 0, 50}, Higher: [3]float64{180, 50, 199}},
}

// DefaultParams возвращает фиксированные пороги.
func DefaultParams() Params {
	return Params{
		DiseaseBands:       DefaultDiseaseBands,
		CoverageFloor:      0.01,
		BlurKernel:         5,
		CannyLow:           50,
		CannyHigh:          150,
		WiltMinArea:        100,
		WiltDeviation:      1.5,
		CircularityMinArea: 50,
	}
}
