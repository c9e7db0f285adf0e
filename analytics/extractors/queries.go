package extractors

// SurveyQuery извлекает оценки из анкет вместе с типом мероприятия.
// Внутренние соединения отбрасывают анкеты без регистрации, проведения или шаблона.
const SurveyQuery = `
	SELECT
		s.satisfaction_score,
		s.self_confidence_rating,
		et.event_type
	FROM survey s
	JOIN registration r ON s.registration_id = r.registration_id
	JOIN event_occurrence eo ON r.occurrence_id = eo.occurrence_id
	JOIN event_template et ON eo.template_id = et.template_id
`

// ParticipantQuery извлекает демографию участников
const ParticipantQuery = `SELECT generation_status, household_income_bracket FROM participant`
