//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"leaf-advisor/internal/domain/entity"
)

// GoCVAnalyzer анализатор листа на OpenCV.
type GoCVAnalyzer struct {
	Params Params
}

// NewGoCVAnalyzer создаёт анализатор с заданными порогами.
func NewGoCVAnalyzer(params Params) *GoCVAnalyzer {
	return &GoCVAnalyzer{Params: params}
}

// Analyze считает долю поражённой площади и оценку увядания.
func (a *GoCVAnalyzer) Analyze(ctx context.Context, imageData []byte) (*entity.LeafFeatures, error) {
	_ = ctx
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	return a.analyzeMat(mat)
}

func (a *GoCVAnalyzer) analyzeMat(mat gocv.Mat) (*entity.LeafFeatures, error) {
	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	disease, err := a.diseasePercentage(mat)
	if err != nil {
		return nil, err
	}

	shapes := a.contourShapes(mat)
	votes, avgCirc := ScoreContours(shapes, a.Params)

	return &entity.LeafFeatures{
		ImageWidth:        mat.Cols(),
		ImageHeight:       mat.Rows(),
		DiseasePercentage: disease,
		WiltingScore:      votes,
		AvgCircularity:    avgCirc,
	}, nil
}

// diseasePercentage объединяет маски всех цветовых полос и считает их площадь.
func (a *GoCVAnalyzer) diseasePercentage(mat gocv.Mat) (float64, error) {
	total := mat.Cols() * mat.Rows()
	if total <= 0 {
		return 0, nil
	}

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(mat, &hsv, gocv.ColorBGRToHSV)

	combined := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), mat.Rows(), mat.Cols(), gocv.MatTypeCV8U)
	defer combined.Close()

	for _, band := range a.Params.DiseaseBands {
		mask := gocv.NewMat()
		lower := gocv.NewScalar(band.Lower[0], band.Lower[1], band.Lower[2], 0)
		upper := gocv.NewScalar(band.Higher[0], band.Higher[1], band.Higher[2], 0)
		gocv.InRangeWithScalar(hsv, lower, upper, &mask)
		if mask.Rows() != combined.Rows() || mask.Cols() != combined.Cols() {
			mask.Close()
			return 0, fmt.Errorf("mask %s has unexpected size %dx%d", band.Name, mask.Cols(), mask.Rows())
		}
		gocv.BitwiseOr(combined, mask, &combined)
		mask.Close()
	}

	return entity.CoveragePercent(gocv.CountNonZero(combined), total, a.Params.CoverageFloor), nil
}

// contourShapes выделяет внешние контуры на карте границ.
func (a *GoCVAnalyzer) contourShapes(mat gocv.Mat) []entity.ContourShape {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	blur := gocv.NewMat()
	defer blur.Close()
	k := a.Params.BlurKernel
	gocv.GaussianBlur(gray, &blur, image.Pt(k, k), 0, 0, gocv.BorderDefault)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(blur, &edges, a.Params.CannyLow, a.Params.CannyHigh)

	contours := gocv.FindContours(edges, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	shapes := make([]entity.ContourShape, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		shapes = append(shapes, entity.ContourShape{
			Area:      gocv.ContourArea(c),
			Perimeter: gocv.ArcLength(c, true),
		})
	}
	return shapes
}

// Export кодирует изображение в JPEG, при непустом overlay подписывает его.
func (a *GoCVAnalyzer) Export(imageData []byte, overlay []string) ([]byte, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	green := color.RGBA{G: 255, A: 255}
	for i, line := range overlay {
		gocv.PutText(&mat, line, image.Pt(10, 30+i*30), gocv.FontHersheySimplex, 0.8, green, 2)
	}

	return encodeJPEG(mat)
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

func encodeJPEG(mat gocv.Mat) ([]byte, error) {
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, mat)
	if err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	defer buf.Close()

	// Копируем, так как буфер живёт в нативной памяти.
	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}
