package cli

import (
	"net/http"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/siftsearch/sift"
	"github.com/siftsearch/sift/internal/docstore"
	"github.com/siftsearch/sift/internal/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server over the corpus",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

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

		docIDs := make([]string, 0, len(docs))
		for id := range docs {
			docIDs = append(docIDs, id)
		}
		sort.Strings(docIDs)

		addr := serveAddr
		if !cmd.Flags().Changed("addr") {
			addr = cfg.HTTPAddr
		}

		server := httpapi.New(engine, docIDs, logger)
		logger.Info().Str("addr", addr).Msg("sift serve listening")
		return http.ListenAndServe(addr, server.Router())
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "HTTP bind address")
}
