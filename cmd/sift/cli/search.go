package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siftsearch/sift"
	"github.com/siftsearch/sift/internal/docstore"
)

const previewLength = 160

var (
	searchQuery  string
	searchLimit  int
	searchOffset int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a single query against the corpus and print ranked results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		docs, err := docstore.LoadFolder(dataDir(cmd, cfg))
		if err != nil {
			return err
		}
		engine, err := sift.NewSearchEngine(docs, sift.Tokenize)
		if err != nil {
			return err
		}

		limit := searchLimit
		if !cmd.Flags().Changed("limit") {
			limit = cfg.DefaultLimit
		}
		offset := searchOffset
		if !cmd.Flags().Changed("offset") {
			offset = cfg.Offset
		}
		results, err := engine.Search(searchQuery, limit, offset)
		if err != nil {
			return err
		}
		for i, r := range results {
			fmt.Printf("%d. %s  score=%.4f\n    %s\n", i+1, r.DocID, r.Score, preview(r.Text))
		}
		return nil
	},
}

// preview truncates text to previewLength characters, replaces newlines
// with spaces, and appends "..." when the text was truncated.
func preview(text string) string {
	runes := []rune(text)
	truncated := len(runes) > previewLength
	if truncated {
		runes = runes[:previewLength]
	}
	for i, r := range runes {
		if r == '\n' {
			runes[i] = ' '
		}
	}
	out := string(runes)
	if truncated {
		out += "..."
	}
	return out
}

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "query string (required)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 10, "max results to return")
	searchCmd.Flags().IntVarP(&searchOffset, "offset", "o", 0, "results to skip before the window")
	_ = searchCmd.MarkFlagRequired("query")
}
