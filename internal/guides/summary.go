package guides

import "strings"

// TopicSummary returns a prompt-sized excerpt of a topic's guide
// material: the opening prose of the topic's first guide, headings
// stripped, cut at a word boundary near maxLen runes. Topics without
// guides return "".
func (l *Library) TopicSummary(key string, maxLen int) string {
	group := l.ByTopic(key)
	if len(group) == 0 {
		return ""
	}

	var parts []string
	for _, line := range strings.Split(group[0].Body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts = append(parts, line)
	}
	text := strings.Join(parts, " ")

	if maxLen <= 0 || len(text) <= maxLen {
		return text
	}
	cut := strings.LastIndex(text[:maxLen], " ")
	if cut <= 0 {
		cut = maxLen
	}
	return text[:cut]
}
