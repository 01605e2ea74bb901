package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"bacabot/internal/ports/input"
	pkgdiscord "bacabot/pkg/discord"
)

func (h *Handler) handleReadModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	req := input.ReadingRequest{
		UserID:   interactionUserID(i),
		GuildID:  i.GuildID,
		Text:     pkgdiscord.ExtractTextInput(data, pkgdiscord.ReadModalText),
		Simplify: pkgdiscord.ParseYesNo(pkgdiscord.ExtractTextInput(data, pkgdiscord.ReadModalSimpler), true),
	}

	if err := deferResponse(s, i.Interaction); err != nil {
		log.Printf("❌ Gagal menunda respons: %v", err)
		return
	}
	reading, err := h.readingUseCase.ReadText(context.Background(), req)
	if err != nil {
		h.deliverError(s, i, err)
		return
	}
	h.deliverReading(s, i, reading)
}
