package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/spf13/cobra"
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Greet the user",
	Long: `Greet the user by name.

Prompts for the name if --name is not supplied.

Examples:
  todo hello
  todo hello --name Ada`,
	Args: cobra.NoArgs,
	RunE: runHello,
}

var helloName string

func init() {
	helloCmd.Flags().StringVar(&helloName, "name", "", "the name of the user")
	rootCmd.AddCommand(helloCmd)
}

func runHello(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	name := helloName
	if name == "" {
		name, err = cli.Prompt(sess.in, os.Stdout, "Enter your name")
		if err != nil {
			return err
		}
	}

	fmt.Printf("Hello %s!\n", name)
	sess.log.Infof("Greeted %s", name)
	return nil
}
