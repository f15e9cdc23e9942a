package mangadex

import "github.com/similar-manga/mdserial/serial"

// The top-level response types plug into encoding/json through the engine,
// so json.Unmarshal(body, &feed) behaves exactly like serial.Unmarshal.

func (f FeedResult) MarshalJSON() ([]byte, error) {
	return serial.Marshal(&f)
}

func (f *FeedResult) UnmarshalJSON(data []byte) error {
	return serial.Unmarshal(data, f)
}

func (l MangaListResult) MarshalJSON() ([]byte, error) {
	return serial.Marshal(&l)
}

func (l *MangaListResult) UnmarshalJSON(data []byte) error {
	return serial.Unmarshal(data, l)
}

func (l AuthorListResult) MarshalJSON() ([]byte, error) {
	return serial.Marshal(&l)
}

func (l *AuthorListResult) UnmarshalJSON(data []byte) error {
	return serial.Unmarshal(data, l)
}

func (r ChapterResult) MarshalJSON() ([]byte, error) {
	return serial.Marshal(&r)
}

func (r *ChapterResult) UnmarshalJSON(data []byte) error {
	return serial.Unmarshal(data, r)
}

func (r MangaResult) MarshalJSON() ([]byte, error) {
	return serial.Marshal(&r)
}

func (r *MangaResult) UnmarshalJSON(data []byte) error {
	return serial.Unmarshal(data, r)
}

func (r AuthorResult) MarshalJSON() ([]byte, error) {
	return serial.Marshal(&r)
}

func (r *AuthorResult) UnmarshalJSON(data []byte) error {
	return serial.Unmarshal(data, r)
}

func (s AtHomeServer) MarshalJSON() ([]byte, error) {
	return serial.Marshal(&s)
}

func (s *AtHomeServer) UnmarshalJSON(data []byte) error {
	return serial.Unmarshal(data, s)
}
