package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var snippetCmd = &cobra.Command{
	Use:   "snippet",
	Short: "Manage saved snippets",
	Long:  `Save, retrieve and list named text snippets.`,
}

var snippetSaveCmd = &cobra.Command{
	Use:   "save [name] [content]",
	Short: "Save a snippet",
	Long: `Save a named snippet. Pass the content as the second argument, or
use "-" to read it from stdin:

  stashd snippet save greeting "hello world"
  cat main.go | stashd snippet save main-go -`,
	Args: cobra.ExactArgs(2),
	RunE: runSnippetSave,
}

var snippetGetCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Print a snippet's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnippetGet,
}

var snippetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved snippet names",
	RunE:  runSnippetList,
}

func init() {
	snippetCmd.AddCommand(snippetSaveCmd)
	snippetCmd.AddCommand(snippetGetCmd)
	snippetCmd.AddCommand(snippetListCmd)
	rootCmd.AddCommand(snippetCmd)
}

func runSnippetSave(cmd *cobra.Command, args []string) error {
	if snippetService == nil {
		return errors.New("snippet service not configured")
	}

	name, content := args[0], args[1]
	if content == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading snippet content from stdin: %w", err)
		}
		content = string(data)
	}

	if err := snippetService.Save(cmd.Context(), name, content); err != nil {
		return fmt.Errorf("saving snippet: %w", err)
	}

	cmd.Printf("Snippet '%s' saved successfully\n", name)
	return nil
}

func runSnippetGet(cmd *cobra.Command, args []string) error {
	if snippetService == nil {
		return errors.New("snippet service not configured")
	}

	content, err := snippetService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("retrieving snippet: %w", err)
	}

	cmd.Print(content)
	return nil
}

func runSnippetList(cmd *cobra.Command, _ []string) error {
	if snippetService == nil {
		return errors.New("snippet service not configured")
	}

	names, err := snippetService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing snippets: %w", err)
	}

	if len(names) == 0 {
		cmd.Println("No snippets saved.")
		return nil
	}

	for _, name := range names {
		cmd.Println(name)
	}
	return nil
}
