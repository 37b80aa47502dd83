package domain

import "time"

// Message is one chat message parsed from a single export line.
// Date carries the calendar date only (midnight UTC); the wall-clock part
// of the line is kept decomposed plus as the raw token.
type Message struct {
	Date   time.Time
	Hour   int
	Minute int
	Clock  string // time token as written, "HH:MM"
	Sender string
	Body   string
}
