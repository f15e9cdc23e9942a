package mangadex

import (
	"github.com/antihax/optional"
	"github.com/similar-manga/mdserial/serial"
)

// MangaAttributes holds a manga's descriptive fields. Nullable members must
// still be present in a payload; only ModNotes may be left out.
type MangaAttributes struct {
	Title                  LocalizedString
	AltTitles              []LocalizedString
	Description            LocalizedString
	IsLocked               bool
	Links                  map[string]string
	OriginalLanguage       string
	LastVolume             optional.String
	LastChapter            optional.String
	PublicationDemographic optional.String
	Status                 string
	Year                   optional.Int
	ContentRating          string
	Tags                   []Tag
	CreatedAt              string
	UpdatedAt              string
	Version                int
	ModNotes               optional.String
}

func (a *MangaAttributes) Fields() []serial.Field {
	return []serial.Field{
		serial.StringMap("title", &a.Title).Required(),
		serial.StringMaps("altTitles", &a.AltTitles).Required(),
		serial.StringMap("description", &a.Description).Required(),
		serial.Bool("isLocked", &a.IsLocked).Required(),
		serial.StringMap("links", &a.Links).Required(),
		serial.String("originalLanguage", &a.OriginalLanguage).Required(),
		serial.OptionalString("lastVolume", &a.LastVolume).Required(),
		serial.OptionalString("lastChapter", &a.LastChapter).Required(),
		serial.OptionalString("publicationDemographic", &a.PublicationDemographic).Required(),
		serial.String("status", &a.Status).Required(),
		serial.OptionalInt("year", &a.Year).Required(),
		serial.String("contentRating", &a.ContentRating).Required(),
		serial.Many("tags", &a.Tags).Required(),
		serial.String("createdAt", &a.CreatedAt).Required(),
		serial.String("updatedAt", &a.UpdatedAt).Required(),
		serial.Int("version", &a.Version).Required(),
		serial.OptionalString("modNotes", &a.ModNotes),
	}
}

type Manga struct {
	Id         string
	Type       string
	Attributes MangaAttributes
}

func (m *Manga) Fields() []serial.Field {
	return []serial.Field{
		serial.String("id", &m.Id).Required(),
		serial.String("type", &m.Type).Required(),
		serial.One("attributes", &m.Attributes).Required(),
	}
}

type MangaResult struct {
	Result        Result
	Data          Manga
	Relationships []Relationship
}

func (r *MangaResult) Fields() []serial.Field {
	return []serial.Field{
		serial.Enum("result", &r.Result, resultValues).Required(),
		serial.One("data", &r.Data).Required(),
		serial.Many("relationships", &r.Relationships).Required(),
	}
}

// RelatedIds returns the ids of every relationship of relType, in order.
func (r *MangaResult) RelatedIds(relType string) []string {
	return relatedIds(r.Relationships, relType)
}

// MangaListResult is one page of a manga search.
type MangaListResult struct {
	Results []MangaResult
	Limit   int
	Offset  int
	Total   int
}

func (l *MangaListResult) Fields() []serial.Field {
	return []serial.Field{
		serial.Many("results", &l.Results).Required(),
		serial.Int("limit", &l.Limit).Required(),
		serial.Int("offset", &l.Offset).Required(),
		serial.Int("total", &l.Total).Required(),
	}
}
