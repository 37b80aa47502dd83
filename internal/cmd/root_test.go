package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateFlag(t *testing.T) {
	got, err := parseDateFlag("")
	require.NoError(t, err)
	assert.Nil(t, got)

	want := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)

	got, err = parseDateFlag("2023-12-01")
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	got, err = parseDateFlag("01.12.2023")
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	_, err = parseDateFlag("12/01/2023")
	assert.Error(t, err)
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []string{"text", "markdown", "json"} {
		r, err := newRenderer(format, 10)
		require.NoError(t, err, format)
		assert.NotNil(t, r)
	}

	_, err := newRenderer("yaml", 10)
	assert.Error(t, err)
}

func TestRootEndToEnd(t *testing.T) {
	dir := t.TempDir()

	chatPath := filepath.Join(dir, "chat.txt")
	require.NoError(t, os.WriteFile(chatPath, []byte(
		"12/1/23, 09:15 - Alice: hi\n"+
			"12/1/23, 09:40 - Bob: hello\n"+
			"not a message line\n"+
			"12/2/23, 23:05 - Alice: bye\n"), 0600))

	outPath := filepath.Join(dir, "report.json")
	rootCmd.SetArgs([]string{chatPath, "--format", "json", "--output", outPath})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report struct {
		TotalMessages int `json:"total_messages"`
		Participants  []struct {
			Key   string `json:"key"`
			Count int    `json:"count"`
		} `json:"participants"`
	}
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, 3, report.TotalMessages)
	require.Len(t, report.Participants, 2)
	assert.Equal(t, "Alice", report.Participants[0].Key)
	assert.Equal(t, 2, report.Participants[0].Count)
}

func TestRootNoDataMessage(t *testing.T) {
	dir := t.TempDir()

	chatPath := filepath.Join(dir, "chat.txt")
	require.NoError(t, os.WriteFile(chatPath, []byte("nothing parseable here\n"), 0600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)

	rootCmd.SetArgs([]string{chatPath, "--format", "text", "--output", ""})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "No messages found")
}
