package entity

// Значения по умолчанию для полей рекомендации.
const (
	UnknownDisease   = "Unknown"
	DefaultTreatment = "Check plant and consult expert"
)

// Advisory диагноз и рекомендация от языковой модели или запасной вариант.
type Advisory struct {
	DiseaseName string `json:"disease_name"`
	Severity    string `json:"severity"`
	Treatment   string `json:"treatment"`
}

// FallbackAdvisory возвращает запасную рекомендацию на основе локально вычисленной тяжести.
func FallbackAdvisory(severity Severity) Advisory {
	return Advisory{
		DiseaseName: UnknownDisease,
		Severity:    string(severity),
		Treatment:   DefaultTreatment,
	}
}

// WithDefaults заполняет пустые поля значениями по умолчанию.
func (a Advisory) WithDefaults(severity Severity) Advisory {
	fb := FallbackAdvisory(severity)
	if a.DiseaseName == "" {
		a.DiseaseName = fb.DiseaseName
	}
	if a.Severity == "" {
		a.Severity = fb.Severity
	}
	if a.Treatment == "" {
		a.Treatment = fb.Treatment
	}
	return a
}
