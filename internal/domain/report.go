package domain

import (
	"sort"
	"time"
)

// ParticipantCount is one row of the sender ranking.
type ParticipantCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DayCount is one row of the per-day activity summary.
type DayCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// HourCount is one row of the hour-of-day histogram.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// Report holds the aggregated statistics handed to a renderer.
// FirstDate/LastDate describe the full dataset before filtering;
// TotalMessages counts the filtered records only.
type Report struct {
	TotalMessages int
	FirstDate     time.Time
	LastDate      time.Time

	// first-encounter order, so descending sorts break ties stably
	participants []ParticipantCount
	days         []DayCount
	hours        [24]int
}

// Analyze filters chat to the inclusive [from, to] date range and computes
// the participant, daily and hourly summaries. It returns ErrNoData when
// the chat is empty or the filter leaves nothing; the input is never
// modified.
func Analyze(chat *Chat, from, to *time.Time) (*Report, error) {
	if chat == nil || len(chat.Messages) == 0 {
		return nil, ErrNoData
	}

	first, last, _ := chat.DateSpan()

	filtered := chat.Filter(from, to)
	if len(filtered.Messages) == 0 {
		return nil, ErrNoData
	}

	r := &Report{
		TotalMessages: len(filtered.Messages),
		FirstDate:     first,
		LastDate:      last,
	}

	nameIdx := make(map[string]int)
	dayIdx := make(map[time.Time]int)

	for _, msg := range filtered.Messages {
		if i, ok := nameIdx[msg.Sender]; ok {
			r.participants[i].Count++
		} else {
			nameIdx[msg.Sender] = len(r.participants)
			r.participants = append(r.participants, ParticipantCount{Name: msg.Sender, Count: 1})
		}

		if i, ok := dayIdx[msg.Date]; ok {
			r.days[i].Count++
		} else {
			dayIdx[msg.Date] = len(r.days)
			r.days = append(r.days, DayCount{Date: msg.Date, Count: 1})
		}

		r.hours[msg.Hour]++
	}

	return r, nil
}

// Participants returns the sender ranking, most messages first. Ties keep
// first-encounter order.
func (r *Report) Participants() []ParticipantCount {
	out := make([]ParticipantCount, len(r.participants))
	copy(out, r.participants)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// TopDays returns the per-day counts ranked by activity, busiest first.
func (r *Report) TopDays() []DayCount {
	out := make([]DayCount, len(r.days))
	copy(out, r.days)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Timeline returns the per-day counts in chronological order.
func (r *Report) Timeline() []DayCount {
	out := make([]DayCount, len(r.days))
	copy(out, r.days)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Hours returns the hour-of-day histogram, hour ascending. Hours without
// messages are omitted.
func (r *Report) Hours() []HourCount {
	var out []HourCount
	for h, n := range r.hours {
		if n > 0 {
			out = append(out, HourCount{Hour: h, Count: n})
		}
	}
	return out
}
