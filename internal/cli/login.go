package cli

import (
	"context"
	"log"

	"github.com/warlord-os/warlord/internal/models"
)

// Login creates (or replaces) the local profile. Re-login with a new name
// simply replaces the old profile.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter your name, commander", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if username == "" {
		printlnFn("A name is required.")
		return nil
	}

	a.store.SetProfile(ctx, &models.UserProfile{Username: username})
	printlnFn("Session established. Welcome,", username)
	return nil
}

// Logout clears the profile. Cards stay on disk.
func (a *App) Logout(ctx context.Context) error {
	a.store.SetProfile(ctx, nil)
	printlnFn("Logged out.")
	return nil
}
