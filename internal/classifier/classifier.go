// Package classifier turns a worker's free-text justification message
// into an absence category plus a date range. A local language model
// summarizes the message first; category detection and date-range
// extraction run on lightweight keyword and regex heuristics so they
// work even when the model is unavailable.
package classifier

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/L52103/appEscritorioControl/internal/model"
)

// DefaultUnjustifiedSummary replaces the message of an absence that was
// never justified by the worker.
const DefaultUnjustifiedSummary = "Inasistencia sin justificar por parte del trabajador."

// Summarizer rewrites a raw justification into a short clean Spanish
// summary. Implementations may call a language model; errors fall back
// to the raw message.
type Summarizer interface {
	Summarize(ctx context.Context, message string) (string, error)
}

// Result is the full classifier output for one message.
type Result struct {
	Summary  string
	Category string
	Start    model.DateOnly
	End      model.DateOnly
	Days     int
}

// Classifier combines the summarizer with the heuristic category and
// date-range extraction.
type Classifier struct {
	summarizer Summarizer
}

func New(summarizer Summarizer) *Classifier {
	return &Classifier{summarizer: summarizer}
}

// Classify summarizes the message, detects its category on the summary
// and extracts the date range from the raw message. refDate anchors
// relative phrases ("por 2 días") and supplies the default year for
// dd/mm dates.
func (c *Classifier) Classify(ctx context.Context, message string, refDate model.DateOnly) Result {
	summary := strings.TrimSpace(message)
	if c.summarizer != nil {
		if out, err := c.summarizer.Summarize(ctx, message); err == nil {
			out = strings.TrimSpace(out)
			if out != "" {
				summary = out
			}
		}
	}
	if summary == "" {
		summary = DefaultUnjustifiedSummary
	}
	start, end, days := ExtractRange(message, refDate)
	return Result{
		Summary:  summary,
		Category: DetectCategory(summary),
		Start:    start,
		End:      end,
		Days:     days,
	}
}

// Category keyword lists, checked in priority order: the first category
// with any keyword contained in the lowercased text wins.
var categoryKeywords = []struct {
	category string
	words    []string
}{
	{model.CategoryAccident, []string{"accidente", "choque", "choqué", "lesión", "lesion", "herida", "golpe", "corte", "caida", "caída"}},
	{model.CategoryMedical, []string{"médico", "medico", "medica", "médica", "hospital", "doctor", "licencia", "medicamento", "inyección", "vacuna"}},
	{model.CategoryFamily, []string{"familiar", "familia", "duelo", "padre", "madre", "hermano", "hermana", "hijo", "hija", "abuelo", "abuela"}},
	{model.CategoryPersonal, []string{"personal", "trámite", "tramite", "permiso", "problema"}},
}

// DetectCategory maps a summarized message onto the closed category
// set by substring containment; unmatched messages fall to "other".
func DetectCategory(summary string) string {
	text := strings.ToLower(summary)
	for _, entry := range categoryKeywords {
		for _, word := range entry.words {
			if strings.Contains(text, word) {
				return entry.category
			}
		}
	}
	return model.CategoryOther
}

var (
	dateToken = regexp.MustCompile(`(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?`)
	digitDays = regexp.MustCompile(`(\d+)\s*d[ií]as?`)
)

// Spanish number words accepted in "N días" phrases.
var numberWords = map[string]int{
	"un": 1, "uno": 1, "dos": 2, "tres": 3, "cuatro": 4, "cinco": 5,
	"seis": 6, "siete": 7, "ocho": 8, "nueve": 9, "diez": 10,
}

// extractDates parses every dd/mm[/yyyy] token in the message, using
// defaultYear for two-part dates. Invalid tokens are skipped.
func extractDates(message string, defaultYear int) []model.DateOnly {
	var dates []model.DateOnly
	for _, m := range dateToken.FindAllStringSubmatch(message, -1) {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := defaultYear
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date normalizes overflow (31/2 becomes 2/3 or 3/3);
		// reject tokens that do not round-trip.
		if t.Day() != day || int(t.Month()) != month || t.Year() != year {
			continue
		}
		dates = append(dates, model.NewDateOnly(t))
	}
	return dates
}

// extractDays finds a "N días" count, either as a numeral or one of
// the spelled-out Spanish numbers one through ten. Returns 0 when no
// count is present.
func extractDays(message string) int {
	text := strings.ToLower(message)
	if m := digitDays.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	for word, value := range numberWords {
		re := regexp.MustCompile(`\b` + word + `\s*d[ií]as?\b`)
		if re.MatchString(text) {
			return value
		}
	}
	return 0
}

// ExtractRange applies the date-range policy:
//
//	two or more explicit dates  -> earliest..latest, inclusive span
//	exactly one explicit date   -> that date, 1 day
//	day count only              -> refDate, span of that many days
//	neither                     -> refDate, 1 day
func ExtractRange(message string, refDate model.DateOnly) (model.DateOnly, model.DateOnly, int) {
	dates := extractDates(message, refDate.Year())
	days := extractDays(message)

	if len(dates) >= 2 {
		sort.Slice(dates, func(i, j int) bool { return dates[i].Time.Before(dates[j].Time) })
		start, end := dates[0], dates[len(dates)-1]
		return start, end, model.DaysBetween(start, end)
	}
	if len(dates) == 1 {
		return dates[0], dates[0], 1
	}
	if days > 0 {
		return refDate, refDate.AddDays(days - 1), days
	}
	return refDate, refDate, 1
}
