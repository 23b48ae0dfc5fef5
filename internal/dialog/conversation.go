package dialog

import "context"

// Conversation is the chat capability the session drives. Say is
// fire-and-forget; Ask posts one question and blocks until the user's raw
// answer arrives or the context is cancelled. A session never has more than
// one Ask pending at a time.
type Conversation interface {
	Say(text string)
	Ask(ctx context.Context, text string) (string, error)
}
