package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/EmadBaroudi/whatsapp-chat-analyzer/internal/domain"
)

const ApplicationName = "chat-analyzer"

// StatsService orchestrates the analysis pipeline.
type StatsService struct {
	parser   domain.ChatParser
	renderer domain.ReportRenderer
}

func NewStatsService(parser domain.ChatParser, renderer domain.ReportRenderer) *StatsService {
	return &StatsService{
		parser:   parser,
		renderer: renderer,
	}
}

// Process runs the full pipeline: parse → aggregate → render. from/to
// bound the analysis to an inclusive date range; nil means unbounded.
// A dataset that parses or filters down to nothing surfaces as
// domain.ErrNoData.
func (s *StatsService) Process(exportPath string, from, to *time.Time, w io.Writer) error {
	chat, err := s.parser.Parse(exportPath)
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			return err
		}
		return fmt.Errorf("parsing export: %w", err)
	}

	report, err := domain.Analyze(chat, from, to)
	if err != nil {
		return err
	}

	return s.renderer.Render(w, report)
}
