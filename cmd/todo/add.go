package main

import (
	"os"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add-todo [priority]",
	Short: "Add a new todo item",
	Long: `Add a new todo item.

The positional priority is one of the short keys o/l/m/h/c
(Optional, Low, Medium, High, Crucial) and defaults to m.
Name and description are prompted for if not supplied.

Examples:
  todo add-todo
  todo add-todo h -n "Renew passport" -d "Expires next month"`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runAdd,
	ValidArgsFunction: completePriorityKeys,
}

var (
	addName        string
	addDescription string
)

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "the name of the todo item")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "the description of the todo item")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	key := "m"
	if len(args) > 0 {
		key = args[0]
	}
	priority, err := model.ParsePriorityKey(key)
	if err != nil {
		return err
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	name := addName
	if name == "" {
		name, err = cli.Prompt(sess.in, os.Stdout, "Enter the todo name")
		if err != nil {
			return err
		}
	}

	description := addDescription
	if description == "" {
		description, err = cli.Prompt(sess.in, os.Stdout, "Describe the todo")
		if err != nil {
			return err
		}
	}

	entry := model.Entry{
		Name:        name,
		Description: description,
		Priority:    priority,
	}

	degraded, err := ops.Add(sess.st, entry)
	if degraded {
		sess.warnDegraded()
	}
	if err != nil {
		return err
	}

	sess.log.Infof("Added new todo.")
	return nil
}
