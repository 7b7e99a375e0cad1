package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/L52103/appEscritorioControl/internal/model"
)

func mustDate(t *testing.T, s string) model.DateOnly {
	t.Helper()
	d, err := model.ParseDateOnly(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestDetectCategory(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"Tuve un accidente en moto camino al trabajo", model.CategoryAccident},
		{"Choqué el auto esta mañana", model.CategoryAccident},
		{"fui al médico por un fuerte dolor", model.CategoryMedical},
		{"tengo licencia hasta el viernes", model.CategoryMedical},
		{"falleció mi abuela, estoy de duelo", model.CategoryFamily},
		{"debo hacer un trámite en el registro civil", model.CategoryPersonal},
		{"no pude llegar", model.CategoryOther},
		{"", model.CategoryOther},
		// accident keywords outrank medical ones when both appear
		{"tuve un accidente y fui al hospital", model.CategoryAccident},
	}
	for _, tc := range cases {
		if got := DetectCategory(tc.message); got != tc.want {
			t.Errorf("DetectCategory(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestExtractRange(t *testing.T) {
	ref := mustDate(t, "2024-03-01")

	cases := []struct {
		name      string
		message   string
		wantStart string
		wantEnd   string
		wantDays  int
	}{
		{"two dates", "Choqué el 5/3 y el 7/3", "2024-03-05", "2024-03-07", 3},
		{"two dates reversed", "estuve fuera del 10/3 al 8/3", "2024-03-08", "2024-03-10", 3},
		{"single date", "no fui el 15/3", "2024-03-15", "2024-03-15", 1},
		{"date with year", "falté el 20/12/2023", "2023-12-20", "2023-12-20", 1},
		{"digit day count", "tuve que ir al médico por 2 días", "2024-03-01", "2024-03-02", 2},
		{"spelled day count", "estaré ausente tres días", "2024-03-01", "2024-03-03", 3},
		{"un dia singular", "necesito un día por un trámite", "2024-03-01", "2024-03-01", 1},
		{"nothing", "no pude asistir", "2024-03-01", "2024-03-01", 1},
		{"invalid date skipped", "el 31/2 no existe", "2024-03-01", "2024-03-01", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, days := ExtractRange(tc.message, ref)
			if start.String() != tc.wantStart || end.String() != tc.wantEnd || days != tc.wantDays {
				t.Errorf("ExtractRange(%q) = (%s, %s, %d), want (%s, %s, %d)",
					tc.message, start, end, days, tc.wantStart, tc.wantEnd, tc.wantDays)
			}
		})
	}
}

type fakeSummarizer struct {
	out string
	err error
}

func (f *fakeSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	return f.out, f.err
}

func TestClassifyWithSummarizer(t *testing.T) {
	ref := mustDate(t, "2024-03-01")
	c := New(&fakeSummarizer{out: "Accidente de tránsito del trabajador."})

	res := c.Classify(context.Background(), "Choqué el 5/3 y el 7/3", ref)
	if res.Category != model.CategoryAccident {
		t.Errorf("category = %q, want %q", res.Category, model.CategoryAccident)
	}
	if res.Summary != "Accidente de tránsito del trabajador." {
		t.Errorf("summary = %q", res.Summary)
	}
	if res.Start.String() != "2024-03-05" || res.End.String() != "2024-03-07" || res.Days != 3 {
		t.Errorf("range = (%s, %s, %d)", res.Start, res.End, res.Days)
	}
}

func TestClassifyFallsBackOnSummarizerError(t *testing.T) {
	ref := mustDate(t, "2024-03-01")
	c := New(&fakeSummarizer{err: errors.New("model offline")})

	res := c.Classify(context.Background(), "fui al médico por dos días", ref)
	if res.Summary != "fui al médico por dos días" {
		t.Errorf("summary = %q, want raw message", res.Summary)
	}
	if res.Category != model.CategoryMedical {
		t.Errorf("category = %q, want %q", res.Category, model.CategoryMedical)
	}
	if res.Days != 2 {
		t.Errorf("days = %d, want 2", res.Days)
	}
}

func TestClassifyWithoutSummarizer(t *testing.T) {
	ref := mustDate(t, "2024-03-01")
	c := New(nil)

	res := c.Classify(context.Background(), "  ", ref)
	if res.Summary != DefaultUnjustifiedSummary {
		t.Errorf("summary = %q, want default", res.Summary)
	}
	if res.Category != model.CategoryOther {
		t.Errorf("category = %q, want %q", res.Category, model.CategoryOther)
	}
}
