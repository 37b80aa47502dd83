package app

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmadBaroudi/whatsapp-chat-analyzer/internal/domain"
)

type stubParser struct {
	chat *domain.Chat
	err  error
}

func (p *stubParser) Parse(string) (*domain.Chat, error) {
	return p.chat, p.err
}

type captureRenderer struct {
	report *domain.Report
}

func (r *captureRenderer) Render(w io.Writer, report *domain.Report) error {
	r.report = report
	_, err := w.Write([]byte("ok"))
	return err
}

func day(d int) time.Time {
	return time.Date(2023, time.December, d, 0, 0, 0, 0, time.UTC)
}

func TestProcess(t *testing.T) {
	chat := &domain.Chat{Messages: []domain.Message{
		{Date: day(1), Hour: 9, Sender: "Alice", Body: "hi"},
		{Date: day(2), Hour: 23, Sender: "Bob", Body: "bye"},
	}}
	r := &captureRenderer{}
	svc := NewStatsService(&stubParser{chat: chat}, r)

	var buf bytes.Buffer
	require.NoError(t, svc.Process("chat.txt", nil, nil, &buf))

	require.NotNil(t, r.report)
	assert.Equal(t, 2, r.report.TotalMessages)
	assert.Equal(t, "ok", buf.String())
}

func TestProcessAppliesFilter(t *testing.T) {
	chat := &domain.Chat{Messages: []domain.Message{
		{Date: day(1), Hour: 9, Sender: "Alice", Body: "hi"},
		{Date: day(2), Hour: 23, Sender: "Bob", Body: "bye"},
	}}
	r := &captureRenderer{}
	svc := NewStatsService(&stubParser{chat: chat}, r)

	from := day(2)
	require.NoError(t, svc.Process("chat.txt", &from, nil, io.Discard))
	assert.Equal(t, 1, r.report.TotalMessages)
}

func TestProcessNoData(t *testing.T) {
	svc := NewStatsService(&stubParser{err: domain.ErrNoData}, &captureRenderer{})
	err := svc.Process("chat.txt", nil, nil, io.Discard)
	assert.ErrorIs(t, err, domain.ErrNoData)

	// filter removing everything surfaces the same way
	chat := &domain.Chat{Messages: []domain.Message{
		{Date: day(1), Hour: 9, Sender: "Alice", Body: "hi"},
	}}
	svc = NewStatsService(&stubParser{chat: chat}, &captureRenderer{})
	from := day(9)
	err = svc.Process("chat.txt", &from, nil, io.Discard)
	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestProcessWrapsParserError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewStatsService(&stubParser{err: boom}, &captureRenderer{})

	err := svc.Process("chat.txt", nil, nil, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "parsing export")
}
