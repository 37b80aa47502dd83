package domain

import (
	"errors"
	"time"
)

// ErrNoData marks the empty outcome: no valid records were parsed, or a
// date filter reduced the dataset to nothing. Callers distinguish it from
// real failures to show an explanation instead of an error.
var ErrNoData = errors.New("no chat messages found")

// Chat holds the parsed dataset in source-line order.
type Chat struct {
	Messages []Message
}

// Filter returns a new Chat containing only messages within the given date
// range, inclusive on both ends. nil means no lower/upper bound.
func (c *Chat) Filter(from, to *time.Time) *Chat {
	filtered := &Chat{}
	for _, msg := range c.Messages {
		if from != nil && msg.Date.Before(*from) {
			continue
		}
		if to != nil && msg.Date.After(*to) {
			continue
		}
		filtered.Messages = append(filtered.Messages, msg)
	}
	return filtered
}

// DateSpan returns the earliest and latest message dates of the full
// dataset. ok is false for an empty chat.
func (c *Chat) DateSpan() (min, max time.Time, ok bool) {
	if len(c.Messages) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = c.Messages[0].Date, c.Messages[0].Date
	for _, msg := range c.Messages[1:] {
		if msg.Date.Before(min) {
			min = msg.Date
		}
		if msg.Date.After(max) {
			max = msg.Date
		}
	}
	return min, max, true
}
