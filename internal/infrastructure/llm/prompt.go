package llm

import (
	"bytes"
	"fmt"
	"text/template"

	"leaf-advisor/internal/domain/entity"
)

// PromptContext сведения о культуре для промпта.
type PromptContext struct {
	Crop   string
	Region string
	Season string
}

const v1Prompt = "Crop analysis: %.2f%% diseased area, wilting score %d. Suggest actions for %s crop."

var v2Prompt = template.Must(template.New("v2").Parse(`You are an agronomist helping a {{.Crop}} grower{{if .Region}} in {{.Region}}{{end}}{{if .Season}} during the {{.Season}} season{{end}}.

Leaf image analysis:
- Diseased area: {{printf "%.2f" .M.DiseasePercentage}}%
- Wilting score: {{.M.WiltingScore}} irregular contours
- Average contour circularity: {{printf "%.3f" .M.AvgCircularity}} (1.0 is a perfect circle)
- Computed severity: {{.M.Severity}}

Reference knowledge:
- Early blight (Alternaria solani): common in warm humid weather, usually 1-10% coverage with brown ringed spots. Treat with chlorothalonil or mancozeb.
- Late blight (Phytophthora infestans): cool wet periods, often above 10% coverage with grey-brown lesions. Treat with copper hydroxide or mandipropamid.
- Septoria leaf spot: small pale spots, 1-5% coverage, late summer. Treat with chlorothalonil.
- Powdery mildew: white patches in dry warm weather, up to 20% coverage. Treat with sulfur or potassium bicarbonate.
- Leaf mold (Passalora fulva): yellow patches in humid greenhouses. Treat with copper fungicide and improve ventilation.
- Coverage below 1% together with a high wilting score points to water stress rather than disease: advise to irrigate.

Respond with a single JSON object with exactly three string fields and nothing else:
{"disease_name": "<name>", "severity": "Low|Medium|High", "treatment": "<short treatment>"}`))

// BuildPrompt формирует текст запроса для выбранной версии.
func BuildPrompt(version entity.PromptVersion, pc PromptContext, m entity.Metrics) (string, error) {
	crop := pc.Crop
	if crop == "" {
		crop = "tomato"
	}

	switch version {
	case entity.PromptV1:
		return fmt.Sprintf(v1Prompt, m.DiseasePercentage, m.WiltingScore, crop), nil
	case entity.PromptV2:
		var buf bytes.Buffer
		err := v2Prompt.Execute(&buf, struct {
			Crop   string
			Region string
			Season string
			M      entity.Metrics
		}{crop, pc.Region, pc.Season, m})
		if err != nil {
			return "", fmt.Errorf("render prompt: %w", err)
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("unknown prompt version %q", version)
	}
}

// responseFormat подсказка формата для генератора: JSON только для v2.
func responseFormat(version entity.PromptVersion) string {
	if version == entity.PromptV2 {
		return "json"
	}
	return ""
}
