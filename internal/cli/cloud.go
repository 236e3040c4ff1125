package cli

import (
	"context"
	"log"
	"time"
)

// Connect establishes the cloud-dossier link.
func (a *App) Connect(ctx context.Context) error {
	if a.drive == nil {
		printlnFn("Cloud dossier not configured (set an S3 bucket).")
		return nil
	}
	if a.drive.IsConnected() {
		printlnFn("Already linked.")
		return nil
	}

	if err := a.drive.Authenticate(ctx); err != nil {
		log.Printf("link failed: %v", err)
		return err
	}
	printlnFn("Cloud dossier linked.")
	return nil
}

// Disconnect drops the cloud link.
func (a *App) Disconnect(ctx context.Context) error {
	if a.drive == nil || !a.drive.IsConnected() {
		printlnFn("Not linked.")
		return nil
	}
	if err := a.drive.Disconnect(ctx); err != nil {
		log.Printf("disconnect failed: %v", err)
		return err
	}
	printlnFn("Cloud dossier unlinked.")
	return nil
}

// Sync pushes the current snapshot on demand. It goes through the same
// in-flight guard as the background loop, so a manual sync never overlaps a
// scheduled one.
func (a *App) Sync(ctx context.Context) error {
	if a.drive == nil || !a.drive.IsConnected() {
		printlnFn("Not linked. Use 'connect' first.")
		return nil
	}

	if a.syncer.TrySync(ctx) {
		printlnFn("Snapshot pushed to cloud dossier.")
	} else {
		printlnFn("Sync skipped (nothing to push or a push is already running).")
	}
	return nil
}

// Status reports the link state and the last successful push.
func (a *App) Status(ctx context.Context) error {
	if a.drive == nil {
		printlnFn("Cloud dossier: not configured")
		return nil
	}
	if !a.drive.IsConnected() {
		printlnFn("Cloud dossier: not linked")
		return nil
	}

	printlnFn("Cloud dossier: linked")
	if ts, ok := a.drive.LastSyncTime(ctx); ok {
		printlnFn("Last sync:", ts.Format(time.RFC1123))
	} else {
		printlnFn("Last sync: never")
	}
	return nil
}
