package domain

import "io"

// ChatParser parses a WhatsApp export (.txt) into a Chat.
type ChatParser interface {
	Parse(exportPath string) (*Chat, error)
}

// ReportRenderer renders an aggregated Report to an output writer.
type ReportRenderer interface {
	Render(w io.Writer, report *Report) error
}
