package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/EmadBaroudi/whatsapp-chat-analyzer/internal/adapter/parser"
	"github.com/EmadBaroudi/whatsapp-chat-analyzer/internal/adapter/renderer"
	"github.com/EmadBaroudi/whatsapp-chat-analyzer/internal/app"
	"github.com/EmadBaroudi/whatsapp-chat-analyzer/internal/domain"
)

var (
	fromStr      string
	toStr        string
	output       string
	format       string
	top          int
	dateOrderStr string
)

var rootCmd = &cobra.Command{
	Use:   "chat-analyzer <chat.txt>",
	Short: "Descriptive statistics for exported WhatsApp chats",
	Long: `chat-analyzer reads an exported WhatsApp chat transcript (.txt) and
reports per-participant, per-day and per-hour message counts, optionally
restricted to a date range.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVar(&fromStr, "from", "", `Start date, inclusive (format: "YYYY-MM-DD" or "DD.MM.YYYY")`)
	rootCmd.Flags().StringVar(&toStr, "to", "", `End date, inclusive (format: "YYYY-MM-DD" or "DD.MM.YYYY")`)
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "text", `Output format: "text", "markdown" or "json"`)
	rootCmd.Flags().IntVar(&top, "top", 10, "Rows to show in ranking sections (0 = all)")
	rootCmd.Flags().StringVar(&dateOrderStr, "date-order", "", `Date token interpretation: "auto", "mdy" or "dmy" (default from config, else auto)`)
}

func configDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Clean(filepath.Join(configHome, app.ApplicationName))
}

func initConfig() {
	viper.AddConfigPath(configDir())
	viper.SetConfigType("json")
	viper.SetConfigName("config")

	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	viper.AutomaticEnv()

	// Silently ignore missing config file
	_ = viper.ReadInConfig()
}

func runRoot(cmd *cobra.Command, args []string) error {
	exportPath := args[0]

	from, err := parseDateFlag(fromStr)
	if err != nil {
		return fmt.Errorf("parsing --from: %w", err)
	}

	to, err := parseDateFlag(toStr)
	if err != nil {
		return fmt.Errorf("parsing --to: %w", err)
	}

	orderStr := dateOrderStr
	if orderStr == "" {
		orderStr = viper.GetString("date_order")
	}
	order, err := parser.ParseDateOrder(orderStr)
	if err != nil {
		return err
	}

	p := &parser.WhatsAppParser{
		Order: order,
		Warn: func(line int, text string) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped line %d: %s\n", line, truncate(text, 100))
		},
	}

	r, err := newRenderer(format, top)
	if err != nil {
		return err
	}

	svc := app.NewStatsService(p, r)

	w := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := svc.Process(exportPath, from, to, w); err != nil {
		if errors.Is(err, domain.ErrNoData) {
			fmt.Fprintln(cmd.OutOrStdout(), "No messages found for the given input and date range.")
			return nil
		}
		return err
	}

	return nil
}

func newRenderer(format string, top int) (domain.ReportRenderer, error) {
	switch format {
	case "text":
		return &renderer.TextRenderer{Width: terminalWidth(), Top: top}, nil
	case "markdown":
		return &renderer.TextRenderer{Markdown: true, Top: top}, nil
	case "json":
		return &renderer.JSONRenderer{Top: top}, nil
	}
	return nil, fmt.Errorf("unknown format %q (expected text, markdown or json)", format)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 0
}

func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	formats := []string{
		"2006-01-02",
		"02.01.2006",
	}

	for _, f := range formats {
		t, err := time.Parse(f, s)
		if err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("unknown date format: %q (expected YYYY-MM-DD or DD.MM.YYYY)", s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
