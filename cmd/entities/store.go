package entities

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/similar-manga/mdserial/cmd"
	"github.com/similar-manga/mdserial/internal"
	"github.com/similar-manga/mdserial/mangadex"
	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store <manga list file>...",
	Short: "stores decoded manga in the local archive",
	Long:  `Decodes manga list payloads and upserts every manga into the sqlite MANGA table`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStore,
}

func init() {
	entitiesCmd.AddCommand(storeCmd)
	storeCmd.Flags().String("db", "", "sqlite archive path (defaults to SIMILAR_DB_PATH)")
	storeCmd.Flags().String("result", "ok", "only store results with this status (ok, error or all)")
}

// resultFilter returns whether a result with the given status should be stored.
func resultFilter(raw string) (func(mangadex.Result) bool, error) {
	if raw == "all" {
		return func(mangadex.Result) bool { return true }, nil
	}
	want, err := mangadex.ParseResult(raw)
	if err != nil {
		return nil, err
	}
	return func(r mangadex.Result) bool { return r == want }, nil
}

func runStore(command *cobra.Command, args []string) error {
	start := time.Now()

	rawResult, _ := command.Flags().GetString("result")
	keep, err := resultFilter(rawResult)
	if err != nil {
		return err
	}

	dbPath, _ := command.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cmd.Config.DatabasePath
	}
	if err := internal.ConnectDB(dbPath); err != nil {
		return err
	}
	defer internal.DB.Close()

	inserted, updated, skipped := 0, 0, 0
	bar := internal.NewProgressBar(command.ErrOrStderr(), len(args), "files")
	for _, path := range args {
		var list mangadex.MangaListResult
		if err := decodeFile(command.InOrStdin(), path, &list); err != nil {
			return err
		}

		for _, result := range list.Results {
			if !keep(result.Result) {
				skipped++
				continue
			}
			exists, err := internal.ExistsInDatabase(result.Data.Id)
			if err != nil {
				return err
			}
			if err := internal.UpsertManga(internal.MangaFromResult(result)); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if exists {
				updated++
			} else {
				inserted++
			}
		}
		slog.Debug("stored manga list", slog.String("file", path), slog.Int("results", len(list.Results)))
		bar.Add(1)
	}
	bar.Finish()

	fmt.Fprintf(command.OutOrStdout(), "Inserted %d manga, updated %d manga, skipped %d manga in %s\n",
		inserted, updated, skipped, time.Since(start).Round(time.Millisecond))
	return nil
}
