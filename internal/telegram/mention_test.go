package telegram

import "testing"

func TestStripMention(t *testing.T) {
	tests := []struct {
		name string
		text string
		bot  string
		want string
	}{
		{"plain text untouched", "movies with Tom Hanks", "moviebot", "movies with Tom Hanks"},
		{"leading mention", "@moviebot movies with Tom Hanks", "moviebot", "movies with Tom Hanks"},
		{"mention mid-sentence", "hey @moviebot find me a thriller", "moviebot", "hey find me a thriller"},
		{"mention case-insensitive", "@MovieBot a comedy", "moviebot", "a comedy"},
		{"leading command", "/movie a western please", "moviebot", "a western please"},
		{"command with bot suffix", "/movie@moviebot a western", "moviebot", "a western"},
		{"no bot name configured", "@somebody hello", "", "@somebody hello"},
		{"whitespace collapsed", "  movies   with   gaps  ", "moviebot", "movies with gaps"},
		{"only a mention", "@moviebot", "moviebot", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMention(tt.text, tt.bot); got != tt.want {
				t.Errorf("StripMention(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
