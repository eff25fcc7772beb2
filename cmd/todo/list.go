package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list-todos",
	Short: "List todo items",
	Long: `List all todo items, or only those with a given priority.

The -p filter takes one of the short keys o/l/m/h/c and matches on the
stored priority label. Indices restart from 0 in the filtered view.
Priority filtering is not available for collections stored as plain
text lines, which have no structured fields.

Examples:
  todo list-todos
  todo list-todos -p h`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listPriority string

func init() {
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "filter by priority key (o/l/m/h/c)")
	listCmd.RegisterFlagCompletionFunc("priority", completePriorityKeys)
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	var filter model.Priority
	if listPriority != "" {
		p, err := model.ParsePriorityKey(listPriority)
		if err != nil {
			return err
		}
		filter = p
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	entries, degraded, err := ops.List(sess.st, filter)
	if degraded {
		sess.warnDegraded()
	}
	if err != nil {
		var ufe *cli.UnsupportedFilterError
		if errors.As(err, &ufe) {
			sess.log.Errorf("Priority filter rejected: %v", err)
		}
		return err
	}

	for i, e := range entries {
		fmt.Printf("(%d) - %s\n", i, e.Display())
	}

	sess.log.Infof("Listed todos successfully.")
	return nil
}
