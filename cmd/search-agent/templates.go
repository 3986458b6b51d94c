package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available output templates",
	Long: `Templates prints every registered output template with its schema: the
built-ins plus any loaded from the --templates file. Unknown template names
given to chat or ask fall back to Custom.`,
	RunE: runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	for _, t := range reg.All() {
		fmt.Printf("%s\n  %s\n  format:  %s\n  example: %s\n", t.Name, t.Description, t.Format, t.Example)
	}
	return nil
}
