package mangadex

import "github.com/similar-manga/mdserial/serial"

type TagAttributes struct {
	Name        LocalizedString
	Version     int
	Description LocalizedString
	Group       string
}

func (a *TagAttributes) Fields() []serial.Field {
	return []serial.Field{
		serial.StringMap("name", &a.Name).Required(),
		serial.Int("version", &a.Version).Required(),
		serial.StringMap("description", &a.Description).Required(),
		serial.String("group", &a.Group).Required(),
	}
}

type Tag struct {
	Id         string
	Type       string
	Attributes TagAttributes
}

func (t *Tag) Fields() []serial.Field {
	return []serial.Field{
		serial.String("id", &t.Id).Required(),
		serial.String("type", &t.Type).Required(),
		serial.One("attributes", &t.Attributes).Required(),
	}
}
