package main

import (
	"fmt"

	"github.com/jacksmith/todo/internal/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Export the collection as YAML",
	Long: `Export the active store settings and the full collection as YAML.

This is a one-way export for viewing/sharing - it cannot be re-imported.
Unlike the other commands, dump fails on an unreadable todo file rather
than pretending the collection is empty.`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

// dumpEntry is the YAML shape of one entry. Opaque line-text entries
// export their raw line; structured entries export their fields.
type dumpEntry struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	Priority    string `yaml:"priority,omitempty"`
	Text        string `yaml:"text,omitempty"`
}

// dumpDoc is the top-level YAML document.
type dumpDoc struct {
	File   string      `yaml:"file"`
	Format string      `yaml:"format"`
	Todos  []dumpEntry `yaml:"todos"`
}

func runDump(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	c, err := sess.st.Load()
	if err != nil {
		return err
	}

	doc := dumpDoc{
		File:   sess.st.Path(),
		Format: string(sess.st.Format()),
		Todos:  make([]dumpEntry, 0, len(c)),
	}
	for _, e := range c {
		doc.Todos = append(doc.Todos, toDumpEntry(e))
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to encode dump: %w", err)
	}
	fmt.Print(string(data))

	sess.log.Infof("Dumped %d todos.", len(c))
	return nil
}

func toDumpEntry(e model.Entry) dumpEntry {
	if e.Opaque() {
		return dumpEntry{Text: e.Text}
	}
	return dumpEntry{
		Name:        e.Name,
		Description: e.Description,
		Priority:    string(e.Priority),
	}
}
