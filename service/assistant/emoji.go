package assistant

import "regexp"

// emojiPattern matches the pictographic ranges stripped before persisting
// an exchange: emoticons, symbols & pictographs, transport, flags,
// dingbats and the supplemental pictograph block.
var emojiPattern = regexp.MustCompile(`[` +
	`\x{1F600}-\x{1F64F}` +
	`\x{1F300}-\x{1F5FF}` +
	`\x{1F680}-\x{1F6FF}` +
	`\x{1F1E0}-\x{1F1FF}` +
	`\x{2700}-\x{27BF}` +
	`\x{1F900}-\x{1F9FF}` +
	`]+`)

// RemoveEmoji strips pictographic symbols from text.
func RemoveEmoji(text string) string {
	return emojiPattern.ReplaceAllString(text, "")
}
