package renderer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/EmadBaroudi/whatsapp-chat-analyzer/internal/domain"
)

// JSONRenderer renders a report as indented JSON for machine consumers.
type JSONRenderer struct {
	Top int // cap on ranking rows; 0 = all
}

type jsonReport struct {
	TotalMessages    int            `json:"total_messages"`
	ParticipantCount int            `json:"participant_count"`
	FirstDate        string         `json:"first_date"`
	LastDate         string         `json:"last_date"`
	Participants     []jsonRow      `json:"participants"`
	TopDays          []jsonRow      `json:"top_days"`
	Timeline         []jsonRow      `json:"daily"`
	Hourly           map[string]int `json:"hourly"`
}

type jsonRow struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

func (r *JSONRenderer) Render(w io.Writer, report *domain.Report) error {
	participants := report.Participants()

	out := jsonReport{
		TotalMessages:    report.TotalMessages,
		ParticipantCount: len(participants),
		FirstDate:        report.FirstDate.Format(dateLayout),
		LastDate:         report.LastDate.Format(dateLayout),
		Hourly:           make(map[string]int),
	}

	for _, p := range limit(participants, r.Top) {
		out.Participants = append(out.Participants, jsonRow{Key: p.Name, Count: p.Count})
	}
	for _, d := range limit(report.TopDays(), r.Top) {
		out.TopDays = append(out.TopDays, jsonRow{Key: d.Date.Format(dateLayout), Count: d.Count})
	}
	for _, d := range report.Timeline() {
		out.Timeline = append(out.Timeline, jsonRow{Key: d.Date.Format(dateLayout), Count: d.Count})
	}
	for _, h := range report.Hours() {
		out.Hourly[fmt.Sprintf("%02d", h.Hour)] = h.Count
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
