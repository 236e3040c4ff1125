package cli

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/warlord-os/warlord/internal/filex"
)

// exportDirName is where dossier exports land, relative to the working dir.
const exportDirName = "exports"

// Export writes the full dossier document to the exports directory under its
// date-stamped name.
func (a *App) Export(ctx context.Context) error {
	data, name, err := a.codec.Export(ctx)
	if err != nil {
		log.Printf("export failed: %v", err)
		return err
	}

	dir, err := filex.EnsureSubDir(exportDirName)
	if err != nil {
		log.Printf("export failed: %v", err)
		return err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o660); err != nil {
		log.Printf("export failed: %v", err)
		return err
	}

	printlnFn("Dossier exported to", path)
	return nil
}

// Import reads a dossier file and applies it to the store. A malformed file
// changes nothing.
func (a *App) Import(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Path of the dossier file", a.out)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("import failed: %v", err)
		return err
	}

	if err := a.codec.Import(ctx, data); err != nil {
		log.Printf("import failed: %v", err)
		return err
	}

	printlnFn("Dossier imported.")
	return nil
}
