package mangadex

import (
	"github.com/antihax/optional"
	"github.com/similar-manga/mdserial/serial"
)

// AtHomeServer is an image host handed out for a single chapter.
//
// The payload only carries the base url, so the caller pins the chapter with
// SetChapterId right after decoding and before building page urls.
type AtHomeServer struct {
	BaseUrl   string
	chapterId optional.String
}

func NewAtHomeServer(baseUrl string) *AtHomeServer {
	return &AtHomeServer{BaseUrl: baseUrl}
}

func (s *AtHomeServer) Fields() []serial.Field {
	return []serial.Field{
		serial.String("baseUrl", &s.BaseUrl).Required(),
	}
}

// SetChapterId pins the server to a chapter. Callers sharing a server across
// goroutines must synchronise this themselves.
func (s *AtHomeServer) SetChapterId(id string) {
	s.chapterId = optional.NewString(id)
}

// ChapterId returns the pinned chapter id, if any.
func (s *AtHomeServer) ChapterId() (string, bool) {
	return s.chapterId.Value(), s.chapterId.IsSet()
}
