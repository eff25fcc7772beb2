package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete-todo <index>",
	Short: "Delete a todo item by its index",
	Long: `Delete the todo item at the given index.

Indices are the positions shown by list-todos and shift after any
deletion. An out-of-range index leaves the file untouched.

Examples:
  todo delete-todo 0
  todo delete-todo 3`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: expected an integer", args[0])
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	_, degraded, err := ops.Delete(sess.st, idx)
	if degraded {
		sess.warnDegraded()
	}
	if err != nil {
		var iie *cli.InvalidIndexError
		if errors.As(err, &iie) {
			// User-visible but not a command failure: report and exit 0.
			fmt.Println(cli.Red("Invalid todo index."))
			sess.log.Errorf("Attempt to delete non-existent todo index.")
			return nil
		}
		return err
	}

	sess.log.Infof("Deleted todo at index %d", idx)
	return nil
}
