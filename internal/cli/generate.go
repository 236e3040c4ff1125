package cli

import (
	"context"
	"log"

	"github.com/warlord-os/warlord/internal/intel"
)

// Generate feeds raw notes to the AI generator and stores the resulting card.
// On generation failure nothing is stored.
func (a *App) Generate(ctx context.Context) error {
	if a.intel == nil {
		key, err := GetSecret("Gemini API key", a.out)
		if err != nil {
			return err
		}
		if key == "" {
			printlnFn("AI generator not configured (set GEMINI_API_KEY).")
			return nil
		}
		a.intel = intel.NewGeminiClient(key, a.config.GeminiModel, geminiOptions(a.config)...)
	}

	subjectId, err := a.pickSubject()
	if err != nil {
		return err
	}

	rawText, err := GetMultiline(a.reader, "Paste raw notes", a.out)
	if err != nil {
		return err
	}

	printlnFn("Generating intel card...")
	payload, err := a.intel.Generate(ctx, rawText)
	if err != nil {
		log.Printf("generation failed: %v", err)
		return err
	}

	card := a.store.Create(ctx, payload.Draft(subjectId))
	printlnFn("Card created:", card.Id)
	printCard(card)
	return nil
}
