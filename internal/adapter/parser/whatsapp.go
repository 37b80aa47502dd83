package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/EmadBaroudi/whatsapp-chat-analyzer/internal/domain"
)

// DateOrder selects how the numeric date token of a line is interpreted.
type DateOrder int

const (
	// OrderAuto tries M/D/YY first and falls back to D/M/YYYY. Tokens
	// valid under both readings (day <= 12) resolve as M/D/YY.
	OrderAuto DateOrder = iota
	// OrderMDY pins month/day order, 2- or 4-digit year, no fallback.
	OrderMDY
	// OrderDMY pins day/month order, 2- or 4-digit year, no fallback.
	OrderDMY
)

// ParseDateOrder maps a config/flag value to a DateOrder.
func ParseDateOrder(s string) (DateOrder, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return OrderAuto, nil
	case "mdy":
		return OrderMDY, nil
	case "dmy":
		return OrderDMY, nil
	}
	return OrderAuto, fmt.Errorf("unknown date order %q (expected auto, mdy or dmy)", s)
}

func (o DateOrder) formats() []string {
	switch o {
	case OrderMDY:
		return []string{"1/2/06", "1/2/2006"}
	case OrderDMY:
		return []string{"2/1/06", "2/1/2006"}
	default:
		return []string{"1/2/06", "2/1/2006"}
	}
}

// Message line shape: <date>, <time> - <sender>: <text>
// e.g. "12/1/23, 09:15 - Alice: hi". Continuation lines and system
// notices don't match and are skipped.
var lineRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}), (\d{2}:\d{2}) - ([^:]+): (.+)$`)

// WhatsAppParser parses WhatsApp chat exports (.txt files).
type WhatsAppParser struct {
	// Order controls date-token interpretation; zero value is OrderAuto.
	Order DateOrder

	// Warn, when set, receives one call per line that matched the message
	// grammar but whose date or time token could not be resolved. line is
	// 1-based. Parsing continues regardless.
	Warn func(line int, text string)
}

func (p *WhatsAppParser) Parse(exportPath string) (*domain.Chat, error) {
	f, err := os.Open(exportPath)
	if err != nil {
		return nil, fmt.Errorf("opening chat file: %w", err)
	}
	defer f.Close()

	return p.ParseReader(f)
}

// ParseReader parses a chat transcript from r. It returns domain.ErrNoData
// when no line yields a valid record.
func (p *WhatsAppParser) ParseReader(r io.Reader) (*domain.Chat, error) {
	var messages []domain.Message

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if !utf8.Valid(scanner.Bytes()) {
			return nil, fmt.Errorf("line %d: input is not valid UTF-8", lineNum)
		}
		line := stripInvisible(scanner.Text())

		msg, ok, matched := p.parseMessageLine(line)
		if ok {
			messages = append(messages, msg)
		} else if matched && p.Warn != nil {
			p.Warn(lineNum, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading chat file: %w", err)
	}

	if len(messages) == 0 {
		return nil, domain.ErrNoData
	}

	return &domain.Chat{Messages: messages}, nil
}

// parseMessageLine matches a single line against the message grammar.
// matched reports whether the grammar matched at all, so callers can
// distinguish a bad date token from a continuation line.
func (p *WhatsAppParser) parseMessageLine(line string) (msg domain.Message, ok, matched bool) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return domain.Message{}, false, false
	}

	date, err := p.parseDate(m[1])
	if err != nil {
		return domain.Message{}, false, true
	}

	hour, minute, err := parseClock(m[2])
	if err != nil {
		return domain.Message{}, false, true
	}

	return domain.Message{
		Date:   date,
		Hour:   hour,
		Minute: minute,
		Clock:  m[2],
		Sender: strings.TrimSpace(m[3]),
		Body:   m[4],
	}, true, true
}

func (p *WhatsAppParser) parseDate(token string) (time.Time, error) {
	var lastErr error
	for _, f := range p.Order.formats() {
		d, err := time.Parse(f, token)
		if err == nil {
			return d, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseClock(token string) (hour, minute int, err error) {
	hour, err = strconv.Atoi(token[:2])
	if err != nil {
		return 0, 0, err
	}
	minute, err = strconv.Atoi(token[3:])
	if err != nil {
		return 0, 0, err
	}
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time token %q", token)
	}
	return hour, minute, nil
}

// stripInvisible removes Unicode control characters (LTR mark, zero-width
// spaces, etc.) that WhatsApp sprinkles into exports.
func stripInvisible(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u200E' || r == '\u200F': // LTR / RTL mark
			return -1
		case r == '\u200B' || r == '\u200C' || r == '\u200D': // zero-width spaces
			return -1
		case r == '\uFEFF': // BOM
			return -1
		default:
			return r
		}
	}, s)
}
