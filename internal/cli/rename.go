package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kmarchant/chromat/internal/palette"
)

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:   "rename <file> <index> <name>",
	Short: "Rename an entry in a saved palette",
	Long: `Load a saved palette, rename the entry at the given position, and write
the file back. Entries are addressed by their zero-based position in the
palette; colours are never changed by a rename.

Example:
  chromat rename palette.json 2 "Ocean Mist"`,
	Args: cobra.ExactArgs(3),
	RunE: runRename,
}

// runRename executes the rename command.
func runRename(cmd *cobra.Command, args []string) error {
	log := newLogger()
	path := args[0]

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[1], err)
	}
	name := args[2]

	data, err := os.ReadFile(path) // #nosec G304 - user-specified palette file, intended to be read
	if err != nil {
		return fmt.Errorf("failed to read palette file: %w", err)
	}

	entries, err := palette.LoadSnapshot(data)
	if err != nil {
		return err
	}
	log.Debug("palette loaded", "path", path, "entries", len(entries))

	sess := palette.NewSessionFrom(palette.New(palette.Config{}), entries)
	if err := sess.Rename(index, name); err != nil {
		return err
	}

	if err := sess.Export(path); err != nil {
		return err
	}

	successf("Renamed entry %d to %q in %s", index, name, path)
	return nil
}
