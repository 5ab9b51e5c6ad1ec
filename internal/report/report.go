// Package report renders a tray evaluation as a CSV or PDF document.
//
// Both formats carry the same blocks as the interactive results panel:
// tray configuration, the loading / fill summary with the overall status,
// and the full cable schedule with per-row totals.
package report

import (
	"errors"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ashpursglove/traycalc/internal/engine"
	"github.com/ashpursglove/traycalc/internal/models"
)

// ErrNoCables is returned when a report is requested for an empty cable
// schedule.
var ErrNoCables = errors.New("no cables in the schedule; add at least one cable before exporting")

// Input bundles everything a report needs.
type Input struct {
	Tray        models.Tray
	Entries     []models.CableEntry
	Stats       engine.Stats
	GeneratedAt time.Time
}

// NewInput evaluates the schedule and stamps the generation time.
func NewInput(entries []models.CableEntry, tray models.Tray) Input {
	return Input{
		Tray:        tray,
		Entries:     entries,
		Stats:       engine.Evaluate(entries, tray),
		GeneratedAt: time.Now(),
	}
}

func (in Input) validate() error {
	if in.Stats.CableCount == 0 {
		return ErrNoCables
	}
	return nil
}

// groupFmt prints areas with thousands separators, e.g. "27,000".
var groupFmt = message.NewPrinter(language.English)

func formatArea(v float64) string {
	return groupFmt.Sprintf("%.0f", v)
}

func (in Input) timestamp() string {
	return in.GeneratedAt.Format("2006-01-02 15:04:05")
}
