package mangadex

import "fmt"

// MismatchedServerError is returned by Chapter.PageUrls when the at-home
// server was not pinned to that chapter.
type MismatchedServerError struct {
	ChapterId       string
	ServerChapterId string
	ServerPinned    bool
}

func (e *MismatchedServerError) Error() string {
	if !e.ServerPinned {
		return fmt.Sprintf("at-home server is not pinned to a chapter, cannot build page urls for chapter %s", e.ChapterId)
	}
	return fmt.Sprintf("at-home server is pinned to chapter %s, cannot build page urls for chapter %s", e.ServerChapterId, e.ChapterId)
}

// MissingRelationshipError is returned when a result envelope has no
// relationship of the type a lookup needs.
type MissingRelationshipError struct {
	EntityId string
	Type     string
}

func (e *MissingRelationshipError) Error() string {
	return fmt.Sprintf("no %s relationship found for %s", e.Type, e.EntityId)
}
