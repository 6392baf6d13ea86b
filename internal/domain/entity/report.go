package entity

// Report итог одного прогона анализа.
type Report struct {
	RunID          string
	Metrics        Metrics
	Advisory       Advisory
	AdvisoryError  string // пусто, если модель ответила корректно
	DisplayLines   DisplayLines
	Utterance      string
	RelayTriggered bool
	OutputPath     string
}
