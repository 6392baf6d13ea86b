package llm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"leaf-advisor/internal/domain/entity"
)

var testMetrics = entity.Metrics{
	DiseasePercentage: 7.256,
	WiltingScore:      4,
	AvgCircularity:    0.4321,
	Severity:          entity.SeverityMedium,
}

func TestBuildPrompt_V1(t *testing.T) {
	p, err := BuildPrompt(entity.PromptV1, PromptContext{}, testMetrics)
	require.NoError(t, err)
	require.Equal(t, "Crop analysis: 7.26% diseased area, wilting score 4. Suggest actions for tomato crop.", p)
}

func TestBuildPrompt_V2(t *testing.T) {
	p, err := BuildPrompt(entity.PromptV2, PromptContext{Crop: "potato", Region: "Kenya", Season: "rainy"}, testMetrics)
	require.NoError(t, err)
	require.Contains(t, p, "potato grower in Kenya during the rainy season")
	require.Contains(t, p, "Diseased area: 7.26%")
	require.Contains(t, p, "Wilting score: 4")
	require.Contains(t, p, "circularity: 0.432")
	require.Contains(t, p, "Computed severity: Medium")
	require.Contains(t, p, "mancozeb")
	require.Contains(t, p, `"disease_name"`)
}

func TestBuildPrompt_Unknown(t *testing.T) {
	_, err := BuildPrompt("v9", PromptContext{}, testMetrics)
	require.Error(t, err)
}

func TestResponseFormat(t *testing.T) {
	require.Equal(t, "json", responseFormat(entity.PromptV2))
	require.Equal(t, "", responseFormat(entity.PromptV1))
}
