// Package backup implements the export and import verbs. Exports are plain
// JSON so a backup survives this tool.
package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"deardiary.dev/diary/pkg/diary"
	"deardiary.dev/diary/pkg/timeutil"
)

type Export struct {
	File string

	Entries *diary.Store
}

func (n *Export) Do(ctx context.Context) error {
	if n.Entries == nil {
		return errors.New("can not export, no entry store")
	}

	data, err := n.Entries.Export()
	if err != nil {
		return err
	}

	file := n.File
	if file == "" {
		file = fmt.Sprintf("diary-backup-%s.json", timeutil.DateKey(time.Now()))
	}
	if err := os.WriteFile(file, data, 0o600); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	fmt.Printf("Exported %d entries to %s.\n", len(n.Entries.All()), file)
	return nil
}

// Import replaces the collection with a previously exported backup.
type Import struct {
	File string

	Entries *diary.Store
}

func (n *Import) Do(ctx context.Context) error {
	if n.Entries == nil {
		return errors.New("can not import, no entry store")
	}
	if n.File == "" {
		return errors.New("a backup file is required")
	}

	data, err := os.ReadFile(n.File)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	if err := n.Entries.Import(data); err != nil {
		return err
	}
	fmt.Printf("Imported %d entries from %s.\n", len(n.Entries.All()), n.File)
	return nil
}
