package discord

import (
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"bacabot/internal/domain/entities"
)

const (
	MaxContentRunes = 2000
	WordsPerRow     = 5
	WordRowsPerPage = 4
	WordsPerPage    = WordsPerRow * WordRowsPerPage

	maxLabelRunes = 80
)

// Localize resolves an i18n key for the locale of the current interaction.
type Localize func(key string, data map[string]any) string

// Truncate shortens s to at most max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}

func speakable(tokens []entities.DisplayToken) []entities.DisplayToken {
	out := make([]entities.DisplayToken, 0, len(tokens))
	for _, t := range tokens {
		if t.Speakable() {
			out = append(out, t)
		}
	}
	return out
}

// PageCount is the number of word-button pages for tokens; at least 1.
func PageCount(tokens []entities.DisplayToken) int {
	n := len(speakable(tokens))
	if n == 0 {
		return 1
	}
	return (n + WordsPerPage - 1) / WordsPerPage
}

// ClampPage keeps page within [0, pages).
func ClampPage(page, pages int) int {
	if page >= pages {
		page = pages - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}

// ReadingContent is the message body of a reading: the optional notice on
// its own paragraph, then the display text, cut to Discord's message limit.
func ReadingContent(reading *entities.Reading, notice string) string {
	text := reading.DisplayText()
	if notice != "" {
		text = notice + "\n\n" + text
	}
	return Truncate(text, MaxContentRunes)
}

// BuildReadingComponents lays out one page of word buttons (WordRowsPerPage
// rows of WordsPerRow) followed by the control row.
func BuildReadingComponents(readingID string, tokens []entities.DisplayToken, page int, loc Localize) []discordgo.MessageComponent {
	words := speakable(tokens)
	pages := PageCount(tokens)
	page = ClampPage(page, pages)

	start := page * WordsPerPage
	end := min(start+WordsPerPage, len(words))

	var components []discordgo.MessageComponent
	var row []discordgo.MessageComponent
	for _, t := range words[start:end] {
		row = append(row, discordgo.Button{
			Label:    wordLabel(t.Word),
			Style:    discordgo.SecondaryButton,
			CustomID: WordButtonID(readingID, t.Index),
		})
		if len(row) == WordsPerRow {
			components = append(components, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}
	if len(row) > 0 {
		components = append(components, discordgo.ActionsRow{Components: row})
	}

	controls := []discordgo.MessageComponent{
		discordgo.Button{Label: "🔊 " + loc("ui.read_all", nil), Style: discordgo.PrimaryButton, CustomID: ReadButtonID(readingID)},
		discordgo.Button{Label: "📄 " + loc("ui.original", nil), Style: discordgo.SecondaryButton, CustomID: OriginalButtonID(readingID)},
		discordgo.Button{Label: "🔤 " + loc("ui.layout", nil), Style: discordgo.SecondaryButton, CustomID: LayoutButtonID(readingID)},
	}
	if pages > 1 {
		controls = append(controls,
			discordgo.Button{
				Label:    "◀ " + loc("ui.prev", nil),
				Style:    discordgo.SecondaryButton,
				CustomID: PageButtonID(readingID, max(page-1, 0)),
				Disabled: page == 0,
			},
			discordgo.Button{
				Label:    loc("ui.next", nil) + " ▶",
				Style:    discordgo.SecondaryButton,
				CustomID: PageButtonID(readingID, min(page+1, pages-1)),
				Disabled: page == pages-1,
			},
		)
	}
	return append(components, discordgo.ActionsRow{Components: controls})
}

// wordLabel flattens line breaks left by OCR paragraphs.
func wordLabel(word string) string {
	return Truncate(strings.Join(strings.Fields(word), " "), maxLabelRunes)
}

// LayoutText renders one sentence per line for the dyslexia-friendly view.
func LayoutText(sentences []string) string {
	return Truncate(strings.Join(sentences, "\n"), MaxContentRunes)
}
