package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/warlord-os/warlord/internal/mission"
	"github.com/warlord-os/warlord/internal/models"
)

// List prints the current card list, newest first.
func (a *App) List(ctx context.Context) error {
	cards := a.store.List(ctx)
	if len(cards) == 0 {
		printlnFn("No intel cards yet. Use 'add' or 'generate'.")
		return nil
	}

	for _, c := range cards {
		subject := c.SubjectId
		if s, ok := mission.SubjectById(c.SubjectId); ok {
			subject = s.Name
		}
		printlnFn(fmt.Sprintf("%s  [%s] %s (%s)",
			c.Id, subject, c.Title, time.UnixMilli(c.CreatedAt).Format("2006-01-02")))
	}
	return nil
}

// Show prints a single card in full.
func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter card id to show", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	card, ok := a.store.Get(ctx, id)
	if !ok {
		printlnFn("No card with id", id)
		return nil
	}

	printCard(card)
	return nil
}

func printCard(c models.CombatCard) {
	printlnFn("Title:", c.Title)
	printlnFn("Subject:", c.SubjectId)
	for _, s := range c.Summary {
		printlnFn("  •", s)
	}
	if len(c.CriticalFormulas) > 0 {
		printlnFn("Armory:")
		for _, f := range c.CriticalFormulas {
			printlnFn("  ", f)
		}
	}
	if len(c.Traps) > 0 {
		printlnFn("Traps:")
		for _, t := range c.Traps {
			printlnFn("  !", t)
		}
	}
}

// Add authors a card by hand.
func (a *App) Add(ctx context.Context) error {
	subjectId, err := a.pickSubject()
	if err != nil {
		return err
	}

	title, err := GetSimpleText(a.reader, "Card title", a.out)
	if err != nil {
		return err
	}
	summary, err := GetLines(a.reader, "Summary bullets", a.out)
	if err != nil {
		return err
	}
	formulas, err := GetLines(a.reader, "Critical formulas (optional)", a.out)
	if err != nil {
		return err
	}
	traps, err := GetLines(a.reader, "Traps (optional)", a.out)
	if err != nil {
		return err
	}

	card := a.store.Create(ctx, models.CardDraft{
		SubjectId:        subjectId,
		Title:            title,
		Summary:          summary,
		CriticalFormulas: formulas,
		Traps:            traps,
	})
	printlnFn("Card created:", card.Id)
	return nil
}

// Edit changes the title of an existing card.
func (a *App) Edit(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter card id to edit", a.out)
	if err != nil {
		return err
	}
	if _, ok := a.store.Get(ctx, id); !ok {
		printlnFn("No card with id", id)
		return nil
	}

	title, err := GetSimpleText(a.reader, "New title", a.out)
	if err != nil {
		return err
	}

	a.store.Update(ctx, id, models.CardPatch{Title: &title})
	printlnFn("Card updated.")
	return nil
}

// Delete removes a card after an explicit confirmation.
func (a *App) Delete(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter card id to delete", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	confirm, err := GetSimpleText(a.reader, "Delete permanently? (y/N)", a.out)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		printlnFn("Aborted.")
		return nil
	}

	a.store.Delete(ctx, id)
	printlnFn("Deleted.")
	return nil
}

func (a *App) pickSubject() (string, error) {
	for _, s := range mission.Subjects {
		printlnFn(fmt.Sprintf("  %-8s %s", s.Id, s.Name))
	}
	subjectId, err := GetSimpleText(a.reader, "Select theater (subject id)", a.out)
	if err != nil {
		return "", err
	}
	if _, ok := mission.SubjectById(subjectId); !ok {
		printlnFn("Unknown subject, storing as-is:", subjectId)
	}
	return subjectId, nil
}
