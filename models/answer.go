package models

// Error codes embedded in an [Answer] when resolution or fetching
// fails. Failures never surface as transport-level errors: the answer
// shape always stays renderable and carries the code/message pair
// instead.
const (
	// ErrCodeNoAnswer — neither the known-question table nor the
	// entity linker produced any entity for the question.
	ErrCodeNoAnswer = 1

	// ErrCodeMissingParam — no question text was given.
	ErrCodeMissingParam = 2

	// ErrCodeUpstreamParse — the encyclopedia API answered with an
	// error field instead of a result set.
	ErrCodeUpstreamParse = 3

	// ErrCodeUpstreamStatus — an upstream service answered with a
	// non-200 status code.
	ErrCodeUpstreamStatus = 4

	// ErrCodePartialResult — the pagination bound was reached before
	// the upstream signalled batch completion; the information list
	// holds whatever was collected so far.
	ErrCodePartialResult = 5

	// ErrCodeUnreachable — the upstream could not be reached after
	// retry exhaustion.
	ErrCodeUnreachable = 6
)

// Summary is one resolved encyclopedia page: title, plain-text intro
// abstract, canonical page URL and an original-resolution thumbnail
// when the page has one.
type Summary struct {
	Title    string `json:"title"`
	Abstract string `json:"abstract,omitempty"`
	WPLink   string `json:"wplink,omitempty"`
	ImgSrc   string `json:"imgsrc,omitempty"`
}

// Answer is the uniform record produced for every question, happy path
// or not. Answered reports whether the question matched the static
// known-question table (high confidence) as opposed to being resolved
// through the external entity linker.
type Answer struct {
	// Question is the original query text, before normalization.
	Question string `json:"question"`

	// Titles lists the resolved page titles, deduplicated, in the
	// same title order as Information.
	Titles []string `json:"titles"`

	// Information holds one summary per resolved page, ordered by
	// title for stable output.
	Information []Summary `json:"information"`

	// Count is len(Information), kept for client convenience.
	Count int `json:"count"`

	// Answered is true when the known-question table matched.
	Answered bool `json:"answered"`

	// ErrCode and Message carry the structured error record when any
	// step failed; both are zero on the happy path.
	ErrCode int    `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Failed reports whether the answer carries an error record.
func (a Answer) Failed() bool {
	return a.ErrCode != 0
}
