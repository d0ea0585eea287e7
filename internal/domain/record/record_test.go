package record_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/quiz/internal/domain/record"
)

func TestSummarize(t *testing.T) {
	history := []record.Record{
		{QuestionCount: 5, Score: 3},
		{QuestionCount: 5, Score: 5},
	}

	assert.Equal(t, record.Stats{
		TotalQuestions: 10,
		TotalCorrect:   8,
		AccuracyRate:   80,
		SessionCount:   2,
	}, record.Summarize(history))
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, record.Stats{}, record.Summarize(nil))
}

func TestSummarize_Rounds(t *testing.T) {
	// 2/3 = 66.67% and 1/3 = 33.33%
	assert.Equal(t, 67, record.Summarize([]record.Record{{QuestionCount: 3, Score: 2}}).AccuracyRate)
	assert.Equal(t, 33, record.Summarize([]record.Record{{QuestionCount: 3, Score: 1}}).AccuracyRate)
	// 1/8 = 12.5% rounds half up
	assert.Equal(t, 13, record.Summarize([]record.Record{{QuestionCount: 8, Score: 1}}).AccuracyRate)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 60, record.Record{QuestionCount: 5, Score: 3}.Percentage())
	assert.Equal(t, 0, record.Record{}.Percentage())
}

func TestAppend_DoesNotAlias(t *testing.T) {
	history := make([]record.Record, 1, 4)
	history[0] = record.Record{Score: 1}

	a := record.Append(history, record.Record{Score: 2})
	b := record.Append(history, record.Record{Score: 3})

	require.Len(t, a, 2)
	require.Len(t, b, 2)
	assert.Equal(t, 2, a[1].Score)
	assert.Equal(t, 3, b[1].Score)
	assert.Len(t, history, 1)
}

func TestNewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	history := []record.Record{
		{ID: "old", Date: base},
		{ID: "new", Date: base.Add(2 * time.Hour)},
		{ID: "mid", Date: base.Add(time.Hour)},
	}

	sorted := record.NewestFirst(history)

	ids := make([]string, len(sorted))
	for i, r := range sorted {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"new", "mid", "old"}, ids)
	assert.Equal(t, "old", history[0].ID, "input order untouched")
}

func TestNewestFirst_SameDateKeepsLatestAppendFirst(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	history := []record.Record{{ID: "first", Date: at}, {ID: "second", Date: at}}

	sorted := record.NewestFirst(history)

	assert.Equal(t, "second", sorted[0].ID)
	assert.Equal(t, "first", sorted[1].ID)
}

func TestRecordJSON(t *testing.T) {
	rec := record.Record{
		ID:            "abc",
		Date:          time.Date(2025, 3, 1, 10, 0, 0, 123000000, time.UTC),
		QuestionCount: 2,
		Score:         1,
		Answers: []record.Answer{
			{QuestionIndex: 0, SelectedChoice: 1, CorrectChoice: 1, IsCorrect: true},
			{QuestionIndex: 1, SelectedChoice: 0, CorrectChoice: 3, IsCorrect: false},
		},
		DurationMs: 4200,
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "abc",
		"date": "2025-03-01T10:00:00.123Z",
		"questionCount": 2,
		"score": 1,
		"answers": [
			{"questionIndex": 0, "selectedChoice": 1, "correctChoice": 1, "isCorrect": true},
			{"questionIndex": 1, "selectedChoice": 0, "correctChoice": 3, "isCorrect": false}
		],
		"durationMs": 4200
	}`, string(data))
}

func TestRecordJSON_LegacyKeys(t *testing.T) {
	legacy := `{
		"date": "2024-11-02T08:15:30.000Z",
		"questions": 5,
		"score": 4,
		"answers": [],
		"duration": 61000
	}`

	var rec record.Record
	require.NoError(t, json.Unmarshal([]byte(legacy), &rec))

	assert.Equal(t, 5, rec.QuestionCount)
	assert.Equal(t, 4, rec.Score)
	assert.Equal(t, int64(61000), rec.DurationMs)
	assert.Equal(t, 61*time.Second, rec.Duration())
	assert.True(t, rec.Date.Equal(time.Date(2024, 11, 2, 8, 15, 30, 0, time.UTC)))
}
