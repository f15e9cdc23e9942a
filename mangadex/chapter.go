package mangadex

import (
	"github.com/antihax/optional"
	"github.com/similar-manga/mdserial/serial"
)

type ChapterAttributes struct {
	Volume             optional.String
	Chapter            optional.String
	Title              optional.String
	TranslatedLanguage string
	Hash               string
	Data               []string
	DataSaver          []string
	PublishAt          string
	CreatedAt          string
	UpdatedAt          string
	Version            int
}

func (a *ChapterAttributes) Fields() []serial.Field {
	return []serial.Field{
		serial.OptionalString("volume", &a.Volume).Required(),
		serial.OptionalString("chapter", &a.Chapter).Required(),
		serial.OptionalString("title", &a.Title).Required(),
		serial.String("translatedLanguage", &a.TranslatedLanguage).Required(),
		serial.String("hash", &a.Hash).Required(),
		serial.Strings("data", &a.Data).Required(),
		serial.Strings("dataSaver", &a.DataSaver).Required(),
		serial.String("publishAt", &a.PublishAt).Required(),
		serial.String("createdAt", &a.CreatedAt).Required(),
		serial.String("updatedAt", &a.UpdatedAt).Required(),
		serial.Int("version", &a.Version).Required(),
	}
}

type Chapter struct {
	Id         string
	Type       string
	Attributes ChapterAttributes
}

func (c *Chapter) Fields() []serial.Field {
	return []serial.Field{
		serial.String("id", &c.Id).Required(),
		serial.String("type", &c.Type).Required(),
		serial.One("attributes", &c.Attributes).Required(),
	}
}

// Pages holds fully qualified page image urls in reading order.
type Pages struct {
	Data      []string `json:"data"`
	DataSaver []string `json:"dataSaver"`
}

// PageUrls builds the page image urls for this chapter on server, which must
// be pinned to this chapter.
func (c *Chapter) PageUrls(server *AtHomeServer) (Pages, error) {
	if server == nil {
		return Pages{}, &MismatchedServerError{ChapterId: c.Id}
	}
	pinned, ok := server.ChapterId()
	if !ok || pinned != c.Id {
		return Pages{}, &MismatchedServerError{ChapterId: c.Id, ServerChapterId: pinned, ServerPinned: ok}
	}

	pages := Pages{
		Data:      make([]string, 0, len(c.Attributes.Data)),
		DataSaver: make([]string, 0, len(c.Attributes.DataSaver)),
	}
	for _, page := range c.Attributes.Data {
		pages.Data = append(pages.Data, server.BaseUrl+"/data/"+c.Attributes.Hash+"/"+page)
	}
	for _, page := range c.Attributes.DataSaver {
		pages.DataSaver = append(pages.DataSaver, server.BaseUrl+"/data-saver/"+c.Attributes.Hash+"/"+page)
	}
	return pages, nil
}

type ChapterResult struct {
	Result        Result
	Data          Chapter
	Relationships []Relationship
}

func (r *ChapterResult) Fields() []serial.Field {
	return []serial.Field{
		serial.Enum("result", &r.Result, resultValues).Required(),
		serial.One("data", &r.Data).Required(),
		serial.Many("relationships", &r.Relationships).Required(),
	}
}

// MangaId returns the id of the first manga relationship.
func (r *ChapterResult) MangaId() (string, error) {
	id, ok := firstRelated(r.Relationships, TypeManga)
	if !ok {
		return "", &MissingRelationshipError{EntityId: r.Data.Id, Type: TypeManga}
	}
	return id, nil
}

// RelatedIds returns the ids of every relationship of relType, in order.
func (r *ChapterResult) RelatedIds(relType string) []string {
	return relatedIds(r.Relationships, relType)
}

// FeedResult is one page of a chapter feed.
type FeedResult struct {
	Results []ChapterResult
	Limit   int
	Offset  int
	Total   int
}

func (f *FeedResult) Fields() []serial.Field {
	return []serial.Field{
		serial.Many("results", &f.Results).Required(),
		serial.Int("limit", &f.Limit).Required(),
		serial.Int("offset", &f.Offset).Required(),
		serial.Int("total", &f.Total).Required(),
	}
}
