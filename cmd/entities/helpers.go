package entities

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/similar-manga/mdserial/internal/config"
	"github.com/similar-manga/mdserial/mangadex"
	"github.com/similar-manga/mdserial/serial"
	"gopkg.in/yaml.v3"
)

type decodeFunc func(tree any) (serial.Entity, error)

var kinds = map[string]decodeFunc{
	"feed":        decodeAs[mangadex.FeedResult, *mangadex.FeedResult],
	"manga-list":  decodeAs[mangadex.MangaListResult, *mangadex.MangaListResult],
	"author-list": decodeAs[mangadex.AuthorListResult, *mangadex.AuthorListResult],
	"chapter":     decodeAs[mangadex.ChapterResult, *mangadex.ChapterResult],
	"manga":       decodeAs[mangadex.MangaResult, *mangadex.MangaResult],
	"author":      decodeAs[mangadex.AuthorResult, *mangadex.AuthorResult],
	"at-home":     decodeAs[mangadex.AtHomeServer, *mangadex.AtHomeServer],
}

func decodeAs[T any, P interface {
	*T
	serial.Entity
}](tree any) (serial.Entity, error) {
	v, err := serial.Decode[T, P](tree)
	if err != nil {
		return nil, err
	}
	return P(&v), nil
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func joinKinds() string {
	return strings.Join(kindNames(), ", ")
}

func lookupKind(name string) (decodeFunc, error) {
	decode, ok := kinds[name]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q, expected one of %s", name, joinKinds())
	}
	return decode, nil
}

// readPayload reads path, or stdin when path is "-" or empty.
func readPayload(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func decodeFile(stdin io.Reader, path string, dst serial.Entity) error {
	data, err := readPayload(stdin, path)
	if err != nil {
		return err
	}
	if err := serial.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%s: %w", displayName(path), err)
	}
	return nil
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

func writeTree(out io.Writer, tree any, format string) error {
	var data []byte
	var err error
	switch format {
	case config.FormatYAML:
		data, err = yaml.Marshal(tree)
	case config.FormatJSON:
		data, err = json.MarshalIndent(tree, "", " ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		return fmt.Errorf("%w: got %q", config.ErrInvalidFormat, format)
	}
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
