package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/EmadBaroudi/whatsapp-chat-analyzer/internal/domain"
)

const (
	defaultWidth = 80
	maxLabel     = 24
	dateLayout   = "2006-01-02"
)

// TextRenderer renders a report as styled terminal text, or as markdown
// tables when Markdown is set.
type TextRenderer struct {
	Markdown bool
	Width    int // output width for bar scaling; 0 uses defaultWidth
	Top      int // cap on ranking rows (participants, days); 0 = all
}

func (r *TextRenderer) Render(w io.Writer, report *domain.Report) error {
	if r.Markdown {
		return r.renderMarkdown(w, report)
	}
	return r.renderText(w, report)
}

func (r *TextRenderer) renderText(w io.Writer, report *domain.Report) error {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Chat Insights"))
	b.WriteString("\n\n")

	r.writeMetric(&b, "Total messages", fmt.Sprintf("%d", report.TotalMessages))
	r.writeMetric(&b, "Participants", fmt.Sprintf("%d", len(report.Participants())))
	r.writeMetric(&b, "Date range", fmt.Sprintf("%s to %s",
		report.FirstDate.Format(dateLayout), report.LastDate.Format(dateLayout)))
	b.WriteString("\n")

	b.WriteString(styleHeading.Render("Most Active Participants"))
	b.WriteString("\n")
	r.writeBars(&b, participantRows(limit(report.Participants(), r.Top)))
	b.WriteString("\n")

	b.WriteString(styleHeading.Render("Most Active Days"))
	b.WriteString("\n")
	r.writeBars(&b, dayRows(limit(report.TopDays(), r.Top)))
	b.WriteString("\n")

	b.WriteString(styleHeading.Render("Daily Activity"))
	b.WriteString("\n")
	r.writeBars(&b, dayRows(report.Timeline()))
	b.WriteString("\n")

	b.WriteString(styleHeading.Render("Hourly Activity"))
	b.WriteString("\n")
	r.writeBars(&b, hourRows(report.Hours()))

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *TextRenderer) renderMarkdown(w io.Writer, report *domain.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Chat Insights\n\n")
	fmt.Fprintf(&b, "- Total messages: %d\n", report.TotalMessages)
	fmt.Fprintf(&b, "- Participants: %d\n", len(report.Participants()))
	fmt.Fprintf(&b, "- Date range: %s to %s\n\n",
		report.FirstDate.Format(dateLayout), report.LastDate.Format(dateLayout))

	fmt.Fprintf(&b, "## Most Active Participants\n\n")
	writeTable(&b, "Participant", participantRows(limit(report.Participants(), r.Top)))

	fmt.Fprintf(&b, "## Most Active Days\n\n")
	writeTable(&b, "Date", dayRows(limit(report.TopDays(), r.Top)))

	fmt.Fprintf(&b, "## Daily Activity\n\n")
	writeTable(&b, "Date", dayRows(report.Timeline()))

	fmt.Fprintf(&b, "## Hourly Activity\n\n")
	writeTable(&b, "Hour", hourRows(report.Hours()))

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *TextRenderer) writeMetric(b *strings.Builder, label, value string) {
	b.WriteString("  ")
	b.WriteString(runewidth.FillRight(label, 16))
	b.WriteString(styleMetricValue.Render(value))
	b.WriteString("\n")
}

// row is one label/count pair of a chart section.
type row struct {
	label string
	count int
}

func participantRows(in []domain.ParticipantCount) []row {
	out := make([]row, len(in))
	for i, p := range in {
		out[i] = row{label: runewidth.Truncate(p.Name, maxLabel, "…"), count: p.Count}
	}
	return out
}

func dayRows(in []domain.DayCount) []row {
	out := make([]row, len(in))
	for i, d := range in {
		out[i] = row{label: d.Date.Format(dateLayout), count: d.Count}
	}
	return out
}

func hourRows(in []domain.HourCount) []row {
	out := make([]row, len(in))
	for i, h := range in {
		out[i] = row{label: fmt.Sprintf("%02d:00", h.Hour), count: h.Count}
	}
	return out
}

// writeBars renders rows as a horizontal bar chart, bars scaled so the
// largest count fills the available width.
func (r *TextRenderer) writeBars(b *strings.Builder, rows []row) {
	if len(rows) == 0 {
		return
	}

	labelW, maxCount := 0, 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row.label); w > labelW {
			labelW = w
		}
		if row.count > maxCount {
			maxCount = row.count
		}
	}

	width := r.Width
	if width <= 0 {
		width = defaultWidth
	}
	// label, two gaps and the count column must always fit
	barW := width - labelW - len(fmt.Sprintf("%d", maxCount)) - 4
	if barW < 8 {
		barW = 8
	}

	for _, row := range rows {
		n := row.count * barW / maxCount
		if n < 1 {
			n = 1
		}
		fmt.Fprintf(b, "  %s %s %s\n",
			runewidth.FillRight(row.label, labelW),
			styleBar.Render(strings.Repeat("█", n)),
			styleCount.Render(fmt.Sprintf("%d", row.count)))
	}
}

func writeTable(b *strings.Builder, key string, rows []row) {
	fmt.Fprintf(b, "| %s | Messages |\n", key)
	fmt.Fprintf(b, "| --- | --- |\n")
	for _, row := range rows {
		fmt.Fprintf(b, "| %s | %d |\n", row.label, row.count)
	}
	fmt.Fprintf(b, "\n")
}

func limit[T any](in []T, n int) []T {
	if n > 0 && len(in) > n {
		return in[:n]
	}
	return in
}
