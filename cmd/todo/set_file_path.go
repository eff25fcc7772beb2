package main

import (
	"os"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/spf13/cobra"
)

var setFilePathCmd = &cobra.Command{
	Use:   "set-file-path",
	Short: "Override the todo file path for this session",
	Long: `Prompt for a todo file path and use it for the rest of the session.

The override lives only for the lifetime of the process; it is not
written back to .todoconfig.toml. Edit the config file to change the
path permanently.`,
	Args: cobra.NoArgs,
	RunE: runSetFilePath,
}

func init() {
	rootCmd.AddCommand(setFilePathCmd)
}

func runSetFilePath(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	path, err := cli.Prompt(sess.in, os.Stdout, "Enter the path to your todo file")
	if err != nil {
		return err
	}

	sess.st.SetPath(path)
	sess.log.Infof("File path set to %s", path)
	return nil
}
