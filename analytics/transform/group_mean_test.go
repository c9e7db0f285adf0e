package transform

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ella-rises/analytics-report/analytics/models"
)

func TestGroupMean_FirstAppearanceOrder(t *testing.T) {
	table := models.NewSurveyTable([]models.SurveyRecord{
		{SatisfactionScore: 5, SelfConfidenceRating: 4, EventType: "Workshop"},
		{SatisfactionScore: 3, SelfConfidenceRating: 2, EventType: "Workshop"},
		{SatisfactionScore: 4, SelfConfidenceRating: 5, EventType: "Seminar"},
	})

	got, err := GroupMean("test", table, models.ColSatisfactionScore, models.ColEventType)
	require.NoError(t, err)

	want := []models.GroupMean{
		{Group: "Workshop", Mean: 4.0, Count: 2, Min: 3, Max: 5},
		{Group: "Seminar", Mean: 4.0, Count: 1, Min: 4, Max: 4},
	}
	if diff := cmp.Diff(want, got.Groups); diff != "" {
		t.Errorf("GroupMean mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupMean_NotAlphabetical(t *testing.T) {
	table := models.NewSurveyTable([]models.SurveyRecord{
		{SatisfactionScore: 2, EventType: "Zumba"},
		{SatisfactionScore: 4, EventType: "Art"},
		{SatisfactionScore: 3, EventType: "Mentoring"},
		{SatisfactionScore: 5, EventType: "Art"},
	})

	got, err := GroupMean("test", table, models.ColSatisfactionScore, models.ColEventType)
	require.NoError(t, err)

	var order []string
	for _, g := range got.Groups {
		order = append(order, g.Group)
	}
	assert.Equal(t, []string{"Zumba", "Art", "Mentoring"}, order)
}

func TestGroupMean_OneRowPerGroupWithinBounds(t *testing.T) {
	var records []models.SurveyRecord
	types := []string{"A", "B", "C", "D"}
	for i := 0; i < 97; i++ {
		records = append(records, models.SurveyRecord{
			SatisfactionScore: i%5 + 1,
			EventType:         types[(i*7)%len(types)],
		})
	}
	table := models.NewSurveyTable(records)

	got, err := GroupMean("test", table, models.ColSatisfactionScore, models.ColEventType)
	require.NoError(t, err)
	require.Len(t, got.Groups, len(types))

	seen := make(map[string]bool)
	total := 0
	for _, g := range got.Groups {
		assert.False(t, seen[g.Group], "duplicate group %s", g.Group)
		seen[g.Group] = true
		assert.GreaterOrEqual(t, g.Mean, g.Min)
		assert.LessOrEqual(t, g.Mean, g.Max)
		total += g.Count
	}
	assert.Equal(t, len(records), total)
}

func TestGroupMean_SkipsNulls(t *testing.T) {
	table := models.Table{
		Columns: []string{"satisfaction_score", "event_type"},
		Rows: [][]interface{}{
			{int64(4), "Workshop"},
			{nil, "Workshop"},
			{int64(2), nil},
			{"3", "Seminar"},
		},
	}

	got, err := GroupMean("test", table, "satisfaction_score", "event_type")
	require.NoError(t, err)
	require.Len(t, got.Groups, 2)
	assert.Equal(t, models.GroupMean{Group: "Workshop", Mean: 4, Count: 1, Min: 4, Max: 4}, got.Groups[0])
	assert.Equal(t, models.GroupMean{Group: "Seminar", Mean: 3, Count: 1, Min: 3, Max: 3}, got.Groups[1])
}

func TestGroupMean_AllNullIsEmpty(t *testing.T) {
	table := models.Table{
		Columns: []string{"satisfaction_score", "event_type"},
		Rows:    [][]interface{}{{nil, "Workshop"}},
	}

	got, err := GroupMean("test", table, "satisfaction_score", "event_type")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestGroupMean_MissingColumn(t *testing.T) {
	table := models.NewParticipantTable([]models.ParticipantRecord{{GenerationStatus: "First-Gen"}})

	_, err := GroupMean("test", table, models.ColSatisfactionScore, models.ColEventType)
	require.Error(t, err)

	var aggErr *models.AggregateError
	assert.True(t, errors.As(err, &aggErr))
}

func TestGroupMean_NonNumericValue(t *testing.T) {
	table := models.Table{
		Columns: []string{"satisfaction_score", "event_type"},
		Rows:    [][]interface{}{{"very good", "Workshop"}},
	}

	_, err := GroupMean("test", table, "satisfaction_score", "event_type")
	var aggErr *models.AggregateError
	require.True(t, errors.As(err, &aggErr))
}

func TestGroupMean_DoesNotMutateInput(t *testing.T) {
	table := models.NewSurveyTable([]models.SurveyRecord{
		{SatisfactionScore: 5, EventType: "Workshop"},
		{SatisfactionScore: 1, EventType: "Seminar"},
	})
	before := models.NewSurveyTable([]models.SurveyRecord{
		{SatisfactionScore: 5, EventType: "Workshop"},
		{SatisfactionScore: 1, EventType: "Seminar"},
	})

	_, err := GroupMean("test", table, models.ColSatisfactionScore, models.ColEventType)
	require.NoError(t, err)
	assert.Equal(t, before, table)
}
