package llm

import "context"

// Message is one prior turn of a conversation, passed as context to the model.
type Message struct {
	Role    string // "user" or "bot"
	Content string
}

// Responder produces an assistant reply for a user message. Implementations
// may fail; callers are expected to substitute FallbackMessage and a
// low-confidence assessment rather than surfacing the error to the end user.
type Responder interface {
	Respond(ctx context.Context, message string, history []Message) (string, error)
}

// FallbackMessage is the canned apology returned when the model call fails.
const FallbackMessage = "عذراً، حدث خطأ تقني. يرجى المحاولة مرة أخرى أو التواصل مع الصيدلية مباشرة."
