package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stashd-io/stashd/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search snippets semantically",
	Long: `Search saved snippets using natural language. The query and every
snippet are embedded and ranked by cosine similarity; only matches
above the similarity threshold are returned.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output the raw response as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured, set an embedding provider first")
	}

	resp := searchService.Search(cmd.Context(), args[0])

	if searchJSON {
		return outputSearchJSON(cmd, resp)
	}
	return outputSearchTable(cmd, resp)
}

func outputSearchJSON(cmd *cobra.Command, resp domain.SearchResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling search response: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, resp domain.SearchResponse) error {
	if resp.IsError() {
		return errors.New(resp.Err)
	}
	if resp.Message != "" {
		cmd.Println(resp.Message)
		return nil
	}
	if len(resp.Results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, result := range resp.Results {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, result.Name, result.Similarity)
		cmd.Printf("      %s\n", result.Preview)
	}
	return nil
}
