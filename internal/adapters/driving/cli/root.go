// Package cli implements the stashd command-line interface. It wires
// the driven adapters into the core services and exposes them through
// cobra commands, including the MCP server entrypoint.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/stashd-io/stashd/internal/adapters/driven/config/file"
	"github.com/stashd-io/stashd/internal/adapters/driven/embedding"
	"github.com/stashd-io/stashd/internal/adapters/driven/storage/blob"
	"github.com/stashd-io/stashd/internal/adapters/driven/storage/sqlite"
	"github.com/stashd-io/stashd/internal/core/ports/driven"
	"github.com/stashd-io/stashd/internal/core/ports/driving"
	"github.com/stashd-io/stashd/internal/core/services"
	"github.com/stashd-io/stashd/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// storageConnectionEnv overrides the storage.connection config key.
const storageConnectionEnv = "STASHD_STORAGE_CONNECTION"

var verbose bool

// Services shared by all commands. Wired by initServices; tests swap
// these for mocks.
var (
	snippetService driving.SnippetService
	imageService   driving.ImageService
	searchService  driving.SearchService

	docStore *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "stashd",
	Short: "Snippet and image stash with semantic search",
	Long: `stashd stores named text snippets and images and searches snippets
semantically using embeddings. It doubles as an MCP server so AI
assistants can save, retrieve and search the same stash.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the services and runs the root command.
func Execute() {
	// A missing .env file is fine; it only supplies optional overrides.
	_ = godotenv.Load()

	if err := initServices(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeServices()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initServices builds the driven adapters and core services.
// The document store and the embedding service are optional: stashd
// stays usable for plain save/get when either is unavailable.
func initServices() error {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	connection := cfg.GetString("storage.connection")
	if env := os.Getenv(storageConnectionEnv); env != "" {
		connection = env
	}

	objects, err := blob.NewStore(connection)
	if err != nil {
		return fmt.Errorf("opening object store: %w", err)
	}
	logger.Debug("Object store root: %s", objects.Root())

	if ds, err := sqlite.NewStore(""); err != nil {
		logger.Warn("document store unavailable, snippet metadata will not be mirrored: %v", err)
	} else {
		docStore = ds
	}

	snippetService = services.NewSnippetService(objects, snippetMirror(docStore))
	imageService = services.NewImageService(objects)

	embedder, err := embedding.NewValidated(cfg)
	if err != nil {
		logger.Warn("embedding service unavailable, search is disabled: %v", err)
	} else if embedder != nil {
		searchService = services.NewSearchService(objects, embedder)
	}

	return nil
}

// snippetMirror converts the optional concrete store to the port type.
// The conversion must only happen for a live store: converting a nil
// *sqlite.Store would produce a non-nil interface value and defeat the
// service's nil guard.
func snippetMirror(ds *sqlite.Store) driven.DocumentStore {
	if ds == nil {
		return nil
	}
	return ds
}

func closeServices() {
	if docStore != nil {
		if err := docStore.Close(); err != nil {
			logger.Warn("closing document store: %v", err)
		}
	}
}
