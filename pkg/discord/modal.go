package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ExtractTextInput returns the value of the text input with the given custom ID.
func ExtractTextInput(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rc := range row.Components {
			if input, ok := rc.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

// ParseYesNo reads an Indonesian or English yes/no answer. Anything else,
// including an empty answer, yields def.
func ParseYesNo(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ya", "y", "iya", "yes", "true", "1":
		return true
	case "tidak", "tdk", "t", "tak", "gak", "nggak", "no", "n", "false", "0":
		return false
	default:
		return def
	}
}
