package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question...]",
	Short: "Answer a single question and exit",
	Long: `Ask answers one question through the search agent and prints the
delimiter-separated answer on stdout. The question is the joined command
arguments.`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().String("template", "", "output template name (default Custom)")
	askCmd.Flags().String("format", "", "override the template's output format")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a question to answer")
	}

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	pipeline, err := buildPipeline(reg)
	if err != nil {
		return err
	}

	templateName, _ := cmd.Flags().GetString("template")
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = reg.Lookup(templateName).Format
	}

	answer, err := pipeline.Respond(cmd.Context(), strings.Join(args, " "), templateName, format)
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}
