package mangadex

import "github.com/similar-manga/mdserial/serial"

// Relationship is a typed reference from one entity to another.
type Relationship struct {
	Id   string
	Type string
}

func (r *Relationship) Fields() []serial.Field {
	return []serial.Field{
		serial.String("id", &r.Id).Required(),
		serial.String("type", &r.Type).Required(),
	}
}

func firstRelated(relationships []Relationship, relType string) (string, bool) {
	for _, r := range relationships {
		if r.Type == relType {
			return r.Id, true
		}
	}
	return "", false
}

func relatedIds(relationships []Relationship, relType string) []string {
	var ids []string
	for _, r := range relationships {
		if r.Type == relType {
			ids = append(ids, r.Id)
		}
	}
	return ids
}
