package report

import (
	"github.com/ella-rises/analytics-report/analytics/extractors"
	"github.com/ella-rises/analytics-report/analytics/models"
	"github.com/ella-rises/analytics-report/analytics/render"
	"github.com/ella-rises/analytics-report/analytics/transform"
)

// Имена файлов графиков
const (
	SatisfactionOutput = "satisfaction_by_type.png"
	ConfidenceOutput   = "confidence_dist.png"
	GenerationOutput   = "generation_pie.png"
)

// Unit описывает один отчёт: запрос, агрегацию, оформление и файл результата
type Unit struct {
	Name      string
	Query     string
	Aggregate func(models.Table) (models.Aggregate, error)
	Chart     render.ChartSpec
	Output    string
}

// DefaultUnits возвращает три отчёта в порядке их построения
func DefaultUnits() []Unit {
	return []Unit{
		{
			Name:  "satisfaction_by_type",
			Query: extractors.SurveyQuery,
			Aggregate: func(t models.Table) (models.Aggregate, error) {
				return transform.GroupMean("Средняя удовлетворённость по типу мероприятия",
					t, models.ColSatisfactionScore, models.ColEventType)
			},
			Chart: render.ChartSpec{
				Kind:    render.KindBar,
				Title:   "Average Satisfaction by Event Type",
				XLabel:  "Event Type",
				YLabel:  "Satisfaction Score (1-5)",
				Palette: render.ViridisPalette,
				Width:   1000,
				Height:  600,
				YMax:    5,
			},
			Output: SatisfactionOutput,
		},
		{
			Name:  "confidence_dist",
			Query: extractors.SurveyQuery,
			Aggregate: func(t models.Table) (models.Aggregate, error) {
				return transform.BinnedFrequency("Распределение самооценки уверенности",
					t, models.ColSelfConfidenceRating, 1, 5, 5)
			},
			Chart: render.ChartSpec{
				Kind:    render.KindHistogram,
				Title:   "Distribution of Self Confidence Ratings",
				XLabel:  "Rating (1-5)",
				YLabel:  "Count",
				Palette: render.FixedPalette("#87CEEB", "#4682B4"),
				Width:   1000,
				Height:  600,
			},
			Output: ConfidenceOutput,
		},
		{
			Name:  "generation_pie",
			Query: extractors.ParticipantQuery,
			Aggregate: func(t models.Table) (models.Aggregate, error) {
				return transform.CategoricalFrequency("Участники по статусу поколения",
					t, models.ColGenerationStatus)
			},
			Chart: render.ChartSpec{
				Kind:        render.KindPie,
				Title:       "Participant Generation Status",
				Palette:     render.FixedPalette("#ff9999", "#66b3ff", "#99ff99"),
				Width:       800,
				Height:      800,
				ShowPercent: true,
			},
			Output: GenerationOutput,
		},
	}
}
