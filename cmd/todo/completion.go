package main

import (
	"github.com/jacksmith/todo/internal/model"
	"github.com/spf13/cobra"
)

// completePriorityKeys completes the short priority keys with their
// display labels as descriptions.
func completePriorityKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, k := range model.PriorityKeys() {
		p, _ := model.ParsePriorityKey(k)
		completions = append(completions, k+"\t"+string(p))
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
