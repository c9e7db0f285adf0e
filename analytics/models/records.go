package models

// Имена колонок, которые возвращают запросы к исходной БД
const (
	ColSatisfactionScore      = "satisfaction_score"
	ColSelfConfidenceRating   = "self_confidence_rating"
	ColEventType              = "event_type"
	ColGenerationStatus       = "generation_status"
	ColHouseholdIncomeBracket = "household_income_bracket"
)

// SurveyRecord представляет ответ на анкету, соединённый с типом мероприятия
type SurveyRecord struct {
	SatisfactionScore    int
	SelfConfidenceRating int
	EventType            string
}

// ParticipantRecord представляет участника программы
type ParticipantRecord struct {
	GenerationStatus       string
	HouseholdIncomeBracket string
}

// NewSurveyTable собирает Table той же формы, что возвращает запрос анкет
func NewSurveyTable(records []SurveyRecord) Table {
	table := Table{
		Columns: []string{ColSatisfactionScore, ColSelfConfidenceRating, ColEventType},
		Rows:    make([][]interface{}, 0, len(records)),
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []interface{}{
			int64(r.SatisfactionScore),
			int64(r.SelfConfidenceRating),
			r.EventType,
		})
	}
	return table
}

// NewParticipantTable собирает Table той же формы, что возвращает запрос участников
func NewParticipantTable(records []ParticipantRecord) Table {
	table := Table{
		Columns: []string{ColGenerationStatus, ColHouseholdIncomeBracket},
		Rows:    make([][]interface{}, 0, len(records)),
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []interface{}{r.GenerationStatus, r.HouseholdIncomeBracket})
	}
	return table
}
