package sender

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/time/rate"
)

const (
	DiscordMessageLimit  = 2000
	TelegramMessageLimit = 4096
)

// splitMessage cuts text into non-empty chunks of at most limit bytes, preferring line breaks and
// never splitting a valid rune.
func splitMessage(text string, limit int) []string {
	var chunks []string

	for len(text) > limit {
		cut := strings.LastIndex(text[:limit], "\n")
		if cut <= 0 {
			cut = limit
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			// no rune start in reach, the text is not valid UTF-8 here
			if cut == 0 {
				cut = limit
			}
		}

		if chunk := strings.TrimSpace(text[:cut]); chunk != "" {
			chunks = append(chunks, chunk)
		}
		text = strings.TrimSpace(text[cut:])
	}

	if text != "" {
		chunks = append(chunks, text)
	}

	return chunks
}

// newLimiter paces outgoing replies. A rate of zero or less disables pacing.
func newLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}

	return rate.NewLimiter(rate.Limit(perSecond), 1)
}
