package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/siftsearch/sift/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "sift is a small inverted-index text search engine",
	Long: `sift builds an in-memory inverted index over a folder of text
documents and supports boolean/phrase queries with TF-IDF ranking:

  sift search --data DIR --query Q   one-shot query
  sift shell  --data DIR             interactive REPL
  sift serve  --data DIR             HTTP API server`,
}

// Execute is the CLI entrypoint.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default: none)")
	rootCmd.PersistentFlags().StringP("data", "d", "./data", "directory of *.txt documents to index")
}

// resolveConfig loads SIFT_-prefixed env vars, the optional --config file,
// and built-in defaults via internal/config, giving every subcommand the
// same flag/env/file precedence without each repeating the viper setup.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// dataDir resolves the corpus directory: the --data flag if the caller set
// it explicitly, otherwise the env/file/default value from cfg.
func dataDir(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("data") {
		dir, _ := cmd.Flags().GetString("data")
		return dir
	}
	return cfg.DataDir
}
