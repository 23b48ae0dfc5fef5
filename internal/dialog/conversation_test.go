package dialog

import "context"

// fakeConversation scripts answers for Ask and records everything said and
// asked, in order.
type fakeConversation struct {
	answers []string
	askIdx  int
	askErr  error

	Said  []string
	Asked []string
}

func (f *fakeConversation) Say(text string) {
	f.Said = append(f.Said, text)
}

func (f *fakeConversation) Ask(ctx context.Context, text string) (string, error) {
	f.Asked = append(f.Asked, text)

	if f.askErr != nil {
		return "", f.askErr
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.askIdx >= len(f.answers) {
		return "no", nil
	}
	answer := f.answers[f.askIdx]
	f.askIdx++
	return answer, nil
}

var _ Conversation = (*fakeConversation)(nil)
