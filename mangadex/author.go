package mangadex

import (
	"github.com/antihax/optional"
	"github.com/similar-manga/mdserial/serial"
)

type AuthorAttributes struct {
	Name      string
	ImageUrl  optional.String
	Biography []LocalizedString
	CreatedAt string
	UpdatedAt string
	Version   int
}

func (a *AuthorAttributes) Fields() []serial.Field {
	return []serial.Field{
		serial.String("name", &a.Name).Required(),
		serial.OptionalString("imageUrl", &a.ImageUrl).Required(),
		serial.StringMaps("biography", &a.Biography).Required(),
		serial.String("createdAt", &a.CreatedAt).Required(),
		serial.String("updatedAt", &a.UpdatedAt).Required(),
		serial.Int("version", &a.Version).Required(),
	}
}

type Author struct {
	Id         string
	Type       string
	Attributes AuthorAttributes
}

func (a *Author) Fields() []serial.Field {
	return []serial.Field{
		serial.String("id", &a.Id).Required(),
		serial.String("type", &a.Type).Required(),
		serial.One("attributes", &a.Attributes).Required(),
	}
}

type AuthorResult struct {
	Result        Result
	Data          Author
	Relationships []Relationship
}

func (r *AuthorResult) Fields() []serial.Field {
	return []serial.Field{
		serial.Enum("result", &r.Result, resultValues).Required(),
		serial.One("data", &r.Data).Required(),
		serial.Many("relationships", &r.Relationships).Required(),
	}
}

// MangaIds returns the ids of the manga this author worked on.
func (r *AuthorResult) MangaIds() []string {
	return relatedIds(r.Relationships, TypeManga)
}

type AuthorListResult struct {
	Results []AuthorResult
	Limit   int
	Offset  int
	Total   int
}

func (l *AuthorListResult) Fields() []serial.Field {
	return []serial.Field{
		serial.Many("results", &l.Results).Required(),
		serial.Int("limit", &l.Limit).Required(),
		serial.Int("offset", &l.Offset).Required(),
		serial.Int("total", &l.Total).Required(),
	}
}
