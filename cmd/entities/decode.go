package entities

import (
	"log/slog"

	"github.com/similar-manga/mdserial/cmd"
	"github.com/similar-manga/mdserial/serial"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "decodes a payload and prints it back",
	Long: `Decodes a JSON payload (a file, or stdin when no file or "-" is given) as the
selected kind and prints the re-encoded entity. Unknown keys are dropped, so the
output shows exactly what the entity model understood.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	entitiesCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("kind", "k", "feed", "payload kind: "+joinKinds())
	decodeCmd.Flags().StringP("format", "f", "", "output format, json or yaml (defaults to SIMILAR_OUTPUT_FORMAT)")
}

func runDecode(command *cobra.Command, args []string) error {
	kind, _ := command.Flags().GetString("kind")
	format, _ := command.Flags().GetString("format")
	if format == "" {
		format = cmd.Config.OutputFormat
	}

	decode, err := lookupKind(kind)
	if err != nil {
		return err
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	data, err := readPayload(command.InOrStdin(), path)
	if err != nil {
		return err
	}
	tree, err := serial.ParseTree(data)
	if err != nil {
		return err
	}

	entity, err := decode(tree)
	if err != nil {
		return err
	}
	slog.Debug("decoded payload", slog.String("kind", kind), slog.String("source", displayName(path)))

	encoded, err := serial.Encode(entity)
	if err != nil {
		return err
	}
	return writeTree(command.OutOrStdout(), encoded, format)
}
