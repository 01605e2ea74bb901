package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"

	"bacabot/internal/application"
	"bacabot/internal/domain"
	"bacabot/internal/ports/input"
	pkgdiscord "bacabot/pkg/discord"
)

const (
	cmdRead         = "baca"
	cmdReadImage    = "baca-gambar"
	cmdHistory      = "riwayat"
	cmdClearHistory = "hapus-riwayat"
	cmdLexicon      = "kamus"

	optImage       = "gambar"
	optSimplify    = "sederhana"
	optWord        = "kata"
	optReplacement = "pengganti"
	optLimit       = "jumlah"

	subLexiconAdd    = "tambah"
	subLexiconRemove = "hapus"
	subLexiconList   = "daftar"
)

var errDownloadFailed = errors.New("download failed")

var manageServer int64 = discordgo.PermissionManageServer

// Commands lists the slash commands the bot registers.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{Name: cmdRead, Description: "Bacakan dan sederhanakan teks"},
		{
			Name:        cmdReadImage,
			Description: "Baca teks dari gambar",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionAttachment, Name: optImage, Description: "Foto atau tangkapan layar berisi teks", Required: true},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: optSimplify, Description: "Sederhanakan teks (bawaan: ya)"},
			},
		},
		{
			Name:        cmdHistory,
			Description: "Lihat riwayat bacaanmu",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: optLimit, Description: "Jumlah bacaan (1-25)"},
			},
		},
		{Name: cmdClearHistory, Description: "Hapus semua riwayat bacaanmu"},
		{
			Name:                     cmdLexicon,
			Description:              "Kelola kamus penyederhanaan",
			DefaultMemberPermissions: &manageServer,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subLexiconAdd,
					Description: "Tambah atau ubah kata",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: optWord, Description: "Kata sulit", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: optReplacement, Description: "Kata pengganti yang lebih mudah", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subLexiconRemove,
					Description: "Hapus kata dari kamus kustom",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: optWord, Description: "Kata yang dihapus", Required: true},
					},
				},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subLexiconList, Description: "Tampilkan kamus kustom"},
			},
		},
	}
}

// HandleCommand routes slash commands by name.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case cmdRead:
		h.HandleReadCommand(s, i)
	case cmdReadImage:
		h.HandleReadImageCommand(s, i)
	case cmdHistory:
		h.HandleHistoryCommand(s, i)
	case cmdClearHistory:
		h.HandleClearHistoryCommand(s, i)
	case cmdLexicon:
		h.HandleLexiconCommand(s, i)
	}
}

// HandleReadCommand opens the text modal.
func (h *Handler) HandleReadCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	loc := h.localize(i)
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: pkgdiscord.ReadModalID,
			Title:    loc("ui.read_modal_title", nil),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    pkgdiscord.ReadModalText,
						Label:       loc("ui.read_modal_text", nil),
						Style:       discordgo.TextInputParagraph,
						Required:    true,
						MaxLength:   4000,
						Placeholder: loc("ui.read_modal_text_placeholder", nil),
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  pkgdiscord.ReadModalSimpler,
						Label:     loc("ui.read_modal_simplify", nil),
						Style:     discordgo.TextInputShort,
						Required:  false,
						MaxLength: 5,
						Value:     "ya",
					},
				}},
			},
		},
	})
}

// HandleReadImageCommand downloads the attachment and reads it through OCR.
func (h *Handler) HandleReadImageCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	simplify := true
	var attachment *discordgo.MessageAttachment
	for _, opt := range data.Options {
		switch opt.Name {
		case optImage:
			if id, ok := opt.Value.(string); ok && data.Resolved != nil {
				attachment = data.Resolved.Attachments[id]
			}
		case optSimplify:
			simplify = opt.BoolValue()
		}
	}
	if attachment == nil {
		respondEphemeral(s, i.Interaction, h.localize(i)("errors.missing_attachment", nil))
		return
	}
	if attachment.ContentType != "" && !strings.HasPrefix(attachment.ContentType, "image/") {
		respondEphemeral(s, i.Interaction, h.errorMessage(i, domain.ErrUnsupportedImage))
		return
	}
	if attachment.Size > h.maxImageBytes {
		respondEphemeral(s, i.Interaction, h.errorMessage(i, domain.ErrImageTooLarge))
		return
	}

	if err := deferResponse(s, i.Interaction); err != nil {
		log.Printf("❌ Gagal menunda respons: %v", err)
		return
	}

	ctx := context.Background()
	client := h.httpClient
	if client == nil {
		client = s.Client
	}
	img, err := downloadAttachment(ctx, client, attachment.URL, h.maxImageBytes)
	if err != nil {
		if errors.Is(err, errDownloadFailed) {
			log.Printf("❌ Unduhan lampiran gagal: %v", err)
			h.deliverMessage(s, i, h.localize(i)("errors.download_failed", nil))
			return
		}
		h.deliverError(s, i, err)
		return
	}

	reading, err := h.readingUseCase.ReadImage(ctx, input.ImageReadingRequest{
		UserID:   interactionUserID(i),
		GuildID:  i.GuildID,
		Image:    img,
		Simplify: simplify,
	})
	if err != nil {
		h.deliverError(s, i, err)
		return
	}
	h.deliverReading(s, i, reading)
}

// downloadAttachment fetches url, refusing bodies larger than maxBytes.
func downloadAttachment(ctx context.Context, client *http.Client, url string, maxBytes int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errDownloadFailed, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errDownloadFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", errDownloadFailed, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errDownloadFailed, err)
	}
	if len(data) > maxBytes {
		return nil, domain.ErrImageTooLarge
	}
	return data, nil
}

func (h *Handler) HandleHistoryCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	limit := application.DefaultHistoryLimit
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == optLimit {
			limit = int(opt.IntValue())
		}
	}
	readings, err := h.readingUseCase.History(context.Background(), interactionUserID(i), limit)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(i, err))
		return
	}
	loc := h.localize(i)
	if len(readings) == 0 {
		respondEphemeral(s, i.Interaction, loc("info.history_empty", nil))
		return
	}
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{pkgdiscord.BuildHistoryEmbed(readings, loc)},
			Components: buildHistorySelect(readings, loc),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

func (h *Handler) HandleClearHistoryCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	n, err := h.readingUseCase.ClearHistory(context.Background(), interactionUserID(i))
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorMessage(i, err))
		return
	}
	respondEphemeral(s, i.Interaction, h.localize(i)("info.history_cleared", map[string]any{"Count": n}))
}

func (h *Handler) HandleLexiconCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	args := map[string]string{}
	for _, opt := range sub.Options {
		args[opt.Name] = opt.StringValue()
	}

	ctx := context.Background()
	loc := h.localize(i)
	switch sub.Name {
	case subLexiconAdd:
		entry, err := h.lexiconUseCase.AddEntry(ctx, args[optWord], args[optReplacement], interactionUserID(i))
		if err != nil {
			respondEphemeral(s, i.Interaction, h.errorMessage(i, err))
			return
		}
		respondEphemeral(s, i.Interaction, loc("info.lexicon_added", map[string]any{"Word": entry.Word, "Replacement": entry.Replacement}))
	case subLexiconRemove:
		word := strings.TrimSpace(args[optWord])
		if err := h.lexiconUseCase.RemoveEntry(ctx, word); err != nil {
			respondEphemeral(s, i.Interaction, h.errorMessage(i, err))
			return
		}
		respondEphemeral(s, i.Interaction, loc("info.lexicon_removed", map[string]any{"Word": word}))
	case subLexiconList:
		entries, err := h.lexiconUseCase.Entries(ctx)
		if err != nil {
			respondEphemeral(s, i.Interaction, h.errorMessage(i, err))
			return
		}
		respondEphemeralEmbed(s, i.Interaction, pkgdiscord.BuildLexiconEmbed(entries, h.lexiconUseCase.Size(), loc))
	}
}
