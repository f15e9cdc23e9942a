package mangadex

import (
	"encoding/json"
	"testing"

	"github.com/antihax/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/similar-manga/mdserial/serial"
)

func roundTrip[T any, P interface {
	*T
	serial.Entity
}](t *testing.T, in T) {
	t.Helper()
	tree, err := serial.Encode(P(&in))
	require.NoError(t, err)

	out, err := serial.Decode[T, P](tree)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func sampleManga() Manga {
	return Manga{
		Id:   "d1a9fdeb-f713-407f-960c-8326b586e6fd",
		Type: TypeManga,
		Attributes: MangaAttributes{
			Title:                  LocalizedString{"en": "Solo Leveling"},
			AltTitles:              []LocalizedString{{"ko": "나 혼자만 레벨업"}},
			Description:            LocalizedString{"en": "Hunters."},
			Links:                  map[string]string{"al": "105398"},
			OriginalLanguage:       "ko",
			LastChapter:            optional.NewString("179"),
			PublicationDemographic: optional.NewString("shounen"),
			Status:                 "completed",
			Year:                   optional.NewInt(2018),
			ContentRating:          "safe",
			Tags: []Tag{{
				Id:   "391b0423-d847-456f-aff0-8b0cfc03066b",
				Type: TypeTag,
				Attributes: TagAttributes{
					Name:        LocalizedString{"en": "Action"},
					Version:     1,
					Description: LocalizedString{},
					Group:       "genre",
				},
			}},
			CreatedAt: "2019-08-25T10:51:55+00:00",
			UpdatedAt: "2021-09-01T07:15:00+00:00",
			Version:   12,
		},
	}
}

func sampleChapter() Chapter {
	return Chapter{
		Id:   "c1",
		Type: TypeChapter,
		Attributes: ChapterAttributes{
			Volume:             optional.NewString("1"),
			Chapter:            optional.NewString("1"),
			TranslatedLanguage: "en",
			Hash:               "abc123",
			Data:               []string{"1.png", "2.png"},
			DataSaver:          []string{"1s.png"},
			PublishAt:          "2021-05-01T12:00:00+00:00",
			Version:            1,
		},
	}
}

func sampleAuthor() Author {
	return Author{
		Id:   "a1",
		Type: TypeAuthor,
		Attributes: AuthorAttributes{
			Name:      "Chugong",
			ImageUrl:  optional.NewString("https://example.org/a.png"),
			Biography: []LocalizedString{{"en": "Writer."}},
			Version:   1,
		},
	}
}

func TestRoundTrip_Manga(t *testing.T) {
	manga := sampleManga()
	roundTrip(t, manga)

	manga.Attributes.ModNotes = optional.NewString("locked for review")
	manga.Attributes.Year = optional.Int{}
	roundTrip(t, manga)

	roundTrip(t, MangaResult{
		Result:        ResultOK,
		Data:          manga,
		Relationships: []Relationship{{Id: "a1", Type: TypeAuthor}},
	})
	roundTrip(t, MangaListResult{
		Results: []MangaResult{
			{Result: ResultOK, Data: sampleManga(), Relationships: []Relationship{}},
			{Result: ResultError, Data: manga, Relationships: []Relationship{{Id: "m2", Type: TypeManga}}},
		},
		Limit:   10,
		Offset:  0,
		Total:   2,
	})
}

func TestRoundTrip_Chapter(t *testing.T) {
	roundTrip(t, sampleChapter())
	roundTrip(t, Chapter{Id: "empty", Type: TypeChapter, Attributes: ChapterAttributes{Data: []string{}, DataSaver: []string{}}})
	roundTrip(t, ChapterResult{
		Result: ResultOK,
		Data:   sampleChapter(),
		Relationships: []Relationship{
			{Id: "g1", Type: TypeScanlationGroup},
			{Id: "m1", Type: TypeManga},
		},
	})
	roundTrip(t, FeedResult{
		Results: []ChapterResult{{Result: ResultOK, Data: sampleChapter(), Relationships: []Relationship{}}},
		Limit:   100,
		Total:   1,
	})
	roundTrip(t, FeedResult{Results: []ChapterResult{}, Limit: 100})
}

func TestRoundTrip_Author(t *testing.T) {
	roundTrip(t, sampleAuthor())
	roundTrip(t, AuthorResult{Result: ResultError, Data: sampleAuthor(), Relationships: []Relationship{}})
	roundTrip(t, AuthorListResult{
		Results: []AuthorResult{{Result: ResultOK, Data: sampleAuthor(), Relationships: []Relationship{}}},
		Limit:   1,
		Total:   1,
	})
}

func TestRoundTrip_Small(t *testing.T) {
	roundTrip(t, Relationship{Id: "m1", Type: TypeManga})
	roundTrip(t, Tag{Id: "t1", Type: TypeTag, Attributes: TagAttributes{Name: LocalizedString{"en": "Romance"}, Description: LocalizedString{}}})
	roundTrip(t, AtHomeServer{BaseUrl: "https://example.org"})
}

func TestAtHomeServer_ChapterIdIsNotEncoded(t *testing.T) {
	server := NewAtHomeServer("https://example.org")
	server.SetChapterId("c1")

	tree, err := serial.Encode(server)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"baseUrl": "https://example.org"}, tree)
}

func TestEncodingJSON_Interop(t *testing.T) {
	in := ChapterResult{Result: ResultOK, Data: sampleChapter(), Relationships: []Relationship{{Id: "m1", Type: TypeManga}}}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "ok", raw["result"])
	attributes := raw["data"].(map[string]any)["attributes"].(map[string]any)
	assert.Equal(t, "abc123", attributes["hash"])
	assert.Contains(t, attributes, "title")
	assert.Nil(t, attributes["title"])

	var out ChapterResult
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
