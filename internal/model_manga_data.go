package internal

import "github.com/similar-manga/mdserial/mangadex"

// Manga is the flattened record kept in the MANGA table.
type Manga struct {
	Id                     string              `json:"id,omitempty"`
	Title                  map[string]string   `json:"title,omitempty"`
	AltTitles              []map[string]string `json:"altTitles,omitempty"`
	LastChapter            string              `json:"lastChapter,omitempty"`
	RelatedIds             []string            `json:"relatedIds,omitempty"`
	AuthorIds              []string            `json:"authorIds,omitempty"`
	Description            map[string]string   `json:"description,omitempty"`
	Links                  map[string]string   `json:"links,omitempty"`
	OriginalLanguage       string              `json:"originalLanguage,omitempty"`
	PublicationDemographic string              `json:"publicationDemographic,omitempty"`
	ContentRating          string              `json:"contentRating,omitempty"`
	Year                   int                 `json:"year,omitempty"`
	Tags                   []Tag               `json:"tags,omitempty"`
	UpdatedAt              string              `json:"updatedAt,omitempty"`
}

type Tag struct {
	Id    string            `json:"id,omitempty"`
	Name  map[string]string `json:"name,omitempty"`
	Group string            `json:"group,omitempty"`
}

// MangaFromResult flattens a decoded manga result into an archive record.
func MangaFromResult(result mangadex.MangaResult) Manga {
	attrs := result.Data.Attributes

	tags := make([]Tag, 0, len(attrs.Tags))
	for _, t := range attrs.Tags {
		tags = append(tags, Tag{
			Id:    t.Id,
			Name:  t.Attributes.Name,
			Group: t.Attributes.Group,
		})
	}

	altTitles := make([]map[string]string, 0, len(attrs.AltTitles))
	for _, alt := range attrs.AltTitles {
		altTitles = append(altTitles, alt)
	}

	return Manga{
		Id:                     result.Data.Id,
		Title:                  attrs.Title,
		AltTitles:              altTitles,
		LastChapter:            attrs.LastChapter.Value(),
		RelatedIds:             result.RelatedIds(mangadex.TypeManga),
		AuthorIds:              append(result.RelatedIds(mangadex.TypeAuthor), result.RelatedIds(mangadex.TypeArtist)...),
		Description:            attrs.Description,
		Links:                  attrs.Links,
		OriginalLanguage:       attrs.OriginalLanguage,
		PublicationDemographic: attrs.PublicationDemographic.Value(),
		ContentRating:          attrs.ContentRating,
		Year:                   attrs.Year.Value(),
		Tags:                   tags,
		UpdatedAt:              attrs.UpdatedAt,
	}
}
