package mangadex

import "github.com/similar-manga/mdserial/serial"

// Result is the status carried by every result envelope.
type Result int

const (
	ResultOK Result = iota + 1
	ResultError
)

var resultValues = serial.NewEnumSet("result", map[string]Result{
	"ok":    ResultOK,
	"error": ResultError,
})

func (r Result) String() string {
	raw, err := resultValues.Raw(r)
	if err != nil {
		return "unknown"
	}
	return raw
}

// ParseResult looks up a raw result value such as "ok".
func ParseResult(raw string) (Result, error) {
	return resultValues.Parse(raw)
}

// Values of the type discriminator on entities and relationships. They are
// descriptive only and never change how a payload is decoded.
const (
	TypeManga           = "manga"
	TypeChapter         = "chapter"
	TypeAuthor          = "author"
	TypeArtist          = "artist"
	TypeTag             = "tag"
	TypeScanlationGroup = "scanlation_group"
	TypeUser            = "user"
	TypeCoverArt        = "cover_art"
)
