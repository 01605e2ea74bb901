package discord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"bacabot/internal/domain/entities"
)

const (
	embedColor        = 0x5865F2
	previewRunes      = 200
	maxEmbedFields    = 25
	maxEmbedDescRunes = 4096
)

// BuildHistoryEmbed lists readings newest first with a short preview each.
func BuildHistoryEmbed(readings []entities.Reading, loc Localize) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: loc("ui.history_title", nil),
		Color: embedColor,
	}
	for i, r := range readings {
		if i == maxEmbedFields {
			break
		}
		source := loc("ui.source_text", nil)
		if r.Source == entities.SourceImage {
			source = loc("ui.source_image", nil)
		}
		name := fmt.Sprintf("%s · %s", FormatDateTime(r.CreatedAt), source)
		if r.Simplified && !r.SimplifyFailed {
			name += " · " + loc("ui.simplified", nil)
		}
		preview := Truncate(strings.Join(strings.Fields(r.DisplayText()), " "), previewRunes)
		if preview == "" {
			preview = "-"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: preview})
	}
	return embed
}

// BuildLexiconEmbed lists custom lexicon entries, stopping before the
// description limit. size is the entry count of the active lexicon.
func BuildLexiconEmbed(entries []entities.LexiconEntry, size int, loc Localize) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, e := range entries {
		line := fmt.Sprintf("**%s** → %s\n", e.Word, e.Replacement)
		if utf8.RuneCountInString(b.String())+utf8.RuneCountInString(line) > maxEmbedDescRunes-1 {
			b.WriteString("…")
			break
		}
		b.WriteString(line)
	}
	desc := strings.TrimSuffix(b.String(), "\n")
	if desc == "" {
		desc = loc("info.lexicon_empty", nil)
	}
	return &discordgo.MessageEmbed{
		Title:       loc("ui.lexicon_title", nil),
		Description: desc,
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: loc("info.lexicon_size", map[string]any{"Count": size})},
	}
}
