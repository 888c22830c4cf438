package domain

// OutcomeKind tags the result of one fetch attempt.
type OutcomeKind string

// Available outcome kinds.
const (
	// OutcomeSuccess means the export API returned a well-formed response.
	// The fetched books may be empty, meaning "nothing new".
	OutcomeSuccess OutcomeKind = "success"

	// OutcomeAuthFailure means the export API rejected the credential.
	OutcomeAuthFailure OutcomeKind = "auth_failure"

	// OutcomeFailure covers every other failure: network, malformed
	// response, rate limit. Collapsing these keeps the retry policy
	// uniform - the fixed cadence already rate-limits retries.
	OutcomeFailure OutcomeKind = "failure"
)

// Outcome is the tagged result of one fetch attempt. Produced once per
// cycle by the fetch-classify step and consumed exactly once by the
// import step.
type Outcome struct {
	// Kind tags which variant this is.
	Kind OutcomeKind

	// Books holds the fetched records. Only set for OutcomeSuccess.
	Books []Book

	// Message describes the failure. Only set for OutcomeFailure.
	Message string
}

// Success builds a success outcome carrying the fetched books.
func Success(books []Book) Outcome {
	return Outcome{Kind: OutcomeSuccess, Books: books}
}

// AuthFailure builds an auth-failure outcome.
func AuthFailure() Outcome {
	return Outcome{Kind: OutcomeAuthFailure}
}

// Failure builds a generic failure outcome with a diagnostic message.
func Failure(message string) Outcome {
	return Outcome{Kind: OutcomeFailure, Message: message}
}

// IsSuccess returns true for the success variant.
func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}
