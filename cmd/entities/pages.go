package entities

import (
	"encoding/json"
	"log/slog"

	"github.com/similar-manga/mdserial/mangadex"
	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages [chapter file]",
	Short: "prints the page image urls of a chapter",
	Long: `Decodes a chapter result and an at-home server payload, pins the server to the
chapter and prints the full quality and data saver page urls.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPages,
}

func init() {
	entitiesCmd.AddCommand(pagesCmd)
	pagesCmd.Flags().StringP("server", "s", "", "at-home server payload file")
	_ = pagesCmd.MarkFlagRequired("server")
}

func runPages(command *cobra.Command, args []string) error {
	serverPath, _ := command.Flags().GetString("server")

	chapterPath := ""
	if len(args) > 0 {
		chapterPath = args[0]
	}

	var chapter mangadex.ChapterResult
	if err := decodeFile(command.InOrStdin(), chapterPath, &chapter); err != nil {
		return err
	}
	var server mangadex.AtHomeServer
	if err := decodeFile(command.InOrStdin(), serverPath, &server); err != nil {
		return err
	}
	server.SetChapterId(chapter.Data.Id)
	slog.Debug("pinned at-home server", slog.String("chapter", chapter.Data.Id), slog.String("baseUrl", server.BaseUrl))

	pages, err := chapter.Data.PageUrls(&server)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(pages, "", " ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = command.OutOrStdout().Write(data)
	return err
}
