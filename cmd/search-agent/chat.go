package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xndrsa/search-agent/internal/session"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive search session",
	Long: `Chat runs a read-answer loop on stdin. Each line is answered through the
search agent and shaped by the selected output template; a failed turn prints
the error and the session continues. End the session with "exit", "quit", or
Ctrl-D.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().String("template", "", "output template name (default Custom)")
	chatCmd.Flags().String("format", "", "override the template's output format")

	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
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

	fmt.Println(session.Greeting)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "exit" || query == "quit" {
			break
		}

		answer, err := pipeline.Respond(cmd.Context(), query, templateName, format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(answer)
	}
	return scanner.Err()
}
