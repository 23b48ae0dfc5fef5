package telegram

import "strings"

// StripMention removes bot-addressing syntax from a trigger message: any
// "@botname" token and a leading slash-command, leaving only the request
// text the extractor should see.
func StripMention(text, botUsername string) string {
	fields := strings.Fields(text)
	mention := "@" + strings.ToLower(botUsername)

	cleaned := make([]string, 0, len(fields))
	for i, field := range fields {
		if botUsername != "" && strings.ToLower(field) == mention {
			continue
		}
		if i == 0 && strings.HasPrefix(field, "/") {
			continue
		}
		cleaned = append(cleaned, field)
	}

	return strings.Join(cleaned, " ")
}
