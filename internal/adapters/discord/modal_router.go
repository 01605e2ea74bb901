package discord

import (
	"github.com/bwmarrin/discordgo"

	pkgdiscord "bacabot/pkg/discord"
)

// HandleModalSubmit routes modals by CustomID.
func (h *Handler) HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	switch data.CustomID {
	case pkgdiscord.ReadModalID:
		h.handleReadModalSubmit(s, i, data)
	default:
		// Unknown modal, ignored.
	}
}
