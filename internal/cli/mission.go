package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/warlord-os/warlord/internal/mission"
)

// Schedule prints the fixed daily protocol.
func (a *App) Schedule(ctx context.Context) error {
	for _, item := range mission.Schedule {
		marker := " "
		if item.Highlighted {
			marker = "*"
		}
		line := fmt.Sprintf("%s %s  %s", marker, item.Time, item.Activity)
		if item.Fuel != "" {
			line += " — fuel: " + item.Fuel
		}
		printlnFn(line)
	}
	return nil
}

// Briefing prints the per-subject exam intel.
func (a *App) Briefing(ctx context.Context) error {
	for _, s := range mission.Subjects {
		printlnFn(fmt.Sprintf("%s (%dM) — %s, exam %s",
			s.Name, s.TotalMarks, s.Strategy, s.ExamDate.Format("Mon 02 Jan")))
		for _, t := range s.Topics {
			printlnFn(fmt.Sprintf("    %-16s %dM", t.Topic, t.Marks))
		}
		for _, n := range s.MasterNotes {
			printlnFn("    » " + n.Title)
			for _, line := range n.Summary {
				printlnFn("      - " + line)
			}
			for _, f := range n.Formulas {
				printlnFn("      = " + f)
			}
			for _, tr := range n.Traps {
				printlnFn("      ! " + tr)
			}
		}
	}
	return nil
}

// Countdown prints the time remaining until the first exam.
func (a *App) Countdown(ctx context.Context) error {
	c := mission.Until(mission.ExamDate, time.Now())
	printlnFn(fmt.Sprintf("Mission countdown: %dd %02dh %02dm %02ds",
		c.Days, c.Hours, c.Mins, c.Secs))
	return nil
}
