package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Picorims/game-hub/internal/catalog"
	catalogredis "github.com/Picorims/game-hub/internal/catalog/redis"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog maintenance commands (run locally, not over the API)",
	}

	cmd.AddCommand(newCatalogImportCmd())

	return cmd
}

func newCatalogImportCmd() *cobra.Command {
	var csvPath string
	redisCfg := catalogredis.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a sales CSV and store the filtered catalog in Redis",
		Long: `Load a video game sales CSV, keep the games selected by the catalog
filter and replace the catalog stored in Redis. Servers started with
CATALOG_SOURCE=redis load this catalog at startup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := catalog.LoadCSVFile(csvPath)
			if err != nil {
				return err
			}

			store, err := catalogredis.New(redisCfg)
			if err != nil {
				return fmt.Errorf("connecting to redis: %w", err)
			}
			defer func() { _ = store.Close() }()

			if err := store.Save(cmd.Context(), games); err != nil {
				return fmt.Errorf("saving catalog: %w", err)
			}

			platforms, err := store.PlatformNames(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(
				fmt.Sprintf("Imported %d games on %d platforms", len(games), len(platforms)))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Sales CSV file (required)")
	cmd.Flags().StringVar(&redisCfg.URL, "redis-url", getEnvOrDefault("REDIS_URL", redisCfg.URL), "Redis URL (env: REDIS_URL)")
	_ = cmd.MarkFlagRequired("csv")

	return cmd
}
