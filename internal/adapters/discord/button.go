package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"bacabot/internal/domain"
	"bacabot/internal/domain/entities"
	pkgdiscord "bacabot/pkg/discord"
)

// HandleButton routes reading message buttons by custom ID prefix.
func (h *Handler) HandleButton(s responder, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, pkgdiscord.PrefixWord):
		h.HandleWordButton(s, i, customID)
	case strings.HasPrefix(customID, pkgdiscord.PrefixRead):
		h.HandleReadAllButton(s, i, customID)
	case strings.HasPrefix(customID, pkgdiscord.PrefixOriginal):
		h.HandleOriginalButton(s, i, customID)
	case strings.HasPrefix(customID, pkgdiscord.PrefixLayout):
		h.HandleLayoutButton(s, i, customID)
	case strings.HasPrefix(customID, pkgdiscord.PrefixPage):
		h.HandlePageButton(s, i, customID)
	}
}

func (h *Handler) reading(s responder, i *discordgo.InteractionCreate, id string) (*entities.Reading, bool) {
	reading, err := h.readingUseCase.GetReading(context.Background(), id)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(i, err))
		return nil, false
	}
	return reading, true
}

// HandleWordButton reads a single word aloud.
func (h *Handler) HandleWordButton(s responder, i *discordgo.InteractionCreate, customID string) {
	id, index, ok := pkgdiscord.ParseIndexedID(customID, pkgdiscord.PrefixWord)
	if !ok {
		return
	}
	reading, ok := h.reading(s, i, id)
	if !ok {
		return
	}
	if index >= len(reading.Tokens) || !reading.Tokens[index].Speakable() {
		respondEphemeral(s, i.Interaction, h.errorMessage(i, domain.ErrReadingNotFound))
		return
	}
	h.speak(s, i, strings.TrimSpace(reading.Tokens[index].Word))
}

// HandleReadAllButton reads the whole display text aloud.
func (h *Handler) HandleReadAllButton(s responder, i *discordgo.InteractionCreate, customID string) {
	id, ok := pkgdiscord.ParseReadingID(customID, pkgdiscord.PrefixRead)
	if !ok {
		return
	}
	if reading, ok := h.reading(s, i, id); ok {
		h.speak(s, i, reading.DisplayText())
	}
}

// HandleOriginalButton shows the text as it was submitted.
func (h *Handler) HandleOriginalButton(s responder, i *discordgo.InteractionCreate, customID string) {
	id, ok := pkgdiscord.ParseReadingID(customID, pkgdiscord.PrefixOriginal)
	if !ok {
		return
	}
	if reading, ok := h.reading(s, i, id); ok {
		respondEphemeral(s, i.Interaction, pkgdiscord.Truncate(reading.OriginalText, pkgdiscord.MaxContentRunes))
	}
}

// HandleLayoutButton shows the display text one sentence per line.
func (h *Handler) HandleLayoutButton(s responder, i *discordgo.InteractionCreate, customID string) {
	id, ok := pkgdiscord.ParseReadingID(customID, pkgdiscord.PrefixLayout)
	if !ok {
		return
	}
	if reading, ok := h.reading(s, i, id); ok {
		respondEphemeral(s, i.Interaction, pkgdiscord.LayoutText(h.readingUseCase.Sentences(reading)))
	}
}

// HandlePageButton swaps the word buttons of the message to another page.
func (h *Handler) HandlePageButton(s responder, i *discordgo.InteractionCreate, customID string) {
	id, page, ok := pkgdiscord.ParseIndexedID(customID, pkgdiscord.PrefixPage)
	if !ok {
		return
	}
	reading, ok := h.reading(s, i, id)
	if !ok {
		return
	}
	// The update replaces the whole message, so the content is sent again.
	content := h.readingMessage(i, reading).Content
	if i.Message != nil {
		content = i.Message.Content
	}
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: pkgdiscord.BuildReadingComponents(reading.ID, reading.Tokens, page, h.localize(i)),
		},
	})
}
