package renderer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRender(t *testing.T) {
	var buf bytes.Buffer
	r := &JSONRenderer{}

	require.NoError(t, r.Render(&buf, sampleReport(t)))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, 3, got.TotalMessages)
	assert.Equal(t, 2, got.ParticipantCount)
	assert.Equal(t, "2023-12-01", got.FirstDate)
	assert.Equal(t, "2023-12-02", got.LastDate)

	require.Len(t, got.Participants, 2)
	assert.Equal(t, jsonRow{Key: "Alice", Count: 2}, got.Participants[0])
	assert.Equal(t, jsonRow{Key: "Bob", Count: 1}, got.Participants[1])

	require.Len(t, got.TopDays, 2)
	assert.Equal(t, jsonRow{Key: "2023-12-01", Count: 2}, got.TopDays[0])

	assert.Equal(t, map[string]int{"09": 2, "23": 1}, got.Hourly)
}

func TestJSONRenderTopLimit(t *testing.T) {
	var buf bytes.Buffer
	r := &JSONRenderer{Top: 1}

	require.NoError(t, r.Render(&buf, sampleReport(t)))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Len(t, got.Participants, 1)
	assert.Len(t, got.TopDays, 1)
	// participant metric still reflects the full dataset
	assert.Equal(t, 2, got.ParticipantCount)
	// timeline is never truncated
	assert.Len(t, got.Timeline, 2)
}
