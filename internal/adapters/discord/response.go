package discord

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"bacabot/internal/domain/entities"
	pkgdiscord "bacabot/pkg/discord"
)

func respondEphemeral(s responder, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondEphemeralEmbed(s responder, i *discordgo.Interaction, embed *discordgo.MessageEmbed) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func deferResponse(s responder, i *discordgo.Interaction) error {
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

// readingMessage builds the public reading message. Short texts carry the TTS
// flag so Discord reads them aloud as soon as they are posted.
func (h *Handler) readingMessage(i *discordgo.InteractionCreate, reading *entities.Reading) *discordgo.WebhookParams {
	loc := h.localize(i)
	notice := ""
	if reading.SimplifyFailed {
		notice = loc("info.simplify_failed", nil)
	}
	return &discordgo.WebhookParams{
		Content:    pkgdiscord.ReadingContent(reading, notice),
		TTS:        reading.ShouldAutoRead(h.autoReadLimit),
		Components: pkgdiscord.BuildReadingComponents(reading.ID, reading.Tokens, 0, loc),
	}
}

// deliverReading fills a deferred response with the reading message. Edits
// cannot carry the TTS flag, so an auto-read text is spoken by a followup.
func (h *Handler) deliverReading(s responder, i *discordgo.InteractionCreate, reading *entities.Reading) {
	msg := h.readingMessage(i, reading)
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &msg.Content,
		Components: &msg.Components,
	}); err != nil {
		log.Printf("❌ Gagal mengirim bacaan %s: %v", reading.ID, err)
		return
	}
	if msg.TTS {
		h.speakFollowup(s, i, reading.DisplayText())
	}
}

// deliverError turns a deferred response into an error message.
func (h *Handler) deliverError(s responder, i *discordgo.InteractionCreate, err error) {
	h.deliverMessage(s, i, h.errorMessage(i, err))
}

func (h *Handler) deliverMessage(s responder, i *discordgo.InteractionCreate, content string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		log.Printf("❌ Gagal memperbarui respons: %v", err)
	}
}

// speak posts text as a TTS message and removes it once it has been read.
func (h *Handler) speak(s responder, i *discordgo.InteractionCreate, text string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: pkgdiscord.Truncate(text, pkgdiscord.MaxContentRunes),
			TTS:     true,
		},
	})
	if err != nil {
		log.Printf("❌ Gagal mengirim pesan suara: %v", err)
		return
	}
	if h.ttsMessageTTL > 0 {
		time.AfterFunc(h.ttsMessageTTL, func() {
			_ = s.InteractionResponseDelete(i.Interaction)
		})
	}
}

func (h *Handler) speakFollowup(s responder, i *discordgo.InteractionCreate, text string) {
	m, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: pkgdiscord.Truncate(text, pkgdiscord.MaxContentRunes),
		TTS:     true,
	})
	if err != nil {
		log.Printf("⚠️ Gagal membacakan otomatis: %v", err)
		return
	}
	if h.ttsMessageTTL > 0 {
		time.AfterFunc(h.ttsMessageTTL, func() {
			_ = s.FollowupMessageDelete(i.Interaction, m.ID)
		})
	}
}
