package discord

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"bacabot/internal/domain"
	"bacabot/internal/ports/input"
	"bacabot/internal/ports/output"
	pkgdiscord "bacabot/pkg/discord"
)

const defaultTTSMessageTTL = time.Minute

// responder is the part of *discordgo.Session the handlers answer through.
type responder interface {
	InteractionRespond(i *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(i *discordgo.Interaction, edit *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionResponseDelete(i *discordgo.Interaction, options ...discordgo.RequestOption) error
	FollowupMessageCreate(i *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageDelete(i *discordgo.Interaction, messageID string, options ...discordgo.RequestOption) error
}

var _ responder = (*discordgo.Session)(nil)

// Handler handles Discord interactions using use cases.
type Handler struct {
	readingUseCase input.ReadingUseCase
	lexiconUseCase input.LexiconUseCase
	translator     output.Translator
	autoReadLimit  int
	maxImageBytes  int
	ttsMessageTTL  time.Duration
	httpClient     *http.Client // nil uses the session client
}

// NewHandler creates a Handler.
func NewHandler(
	readingUseCase input.ReadingUseCase,
	lexiconUseCase input.LexiconUseCase,
	translator output.Translator,
	autoReadLimit int,
	maxImageBytes int,
) *Handler {
	return &Handler{
		readingUseCase: readingUseCase,
		lexiconUseCase: lexiconUseCase,
		translator:     translator,
		autoReadLimit:  autoReadLimit,
		maxImageBytes:  maxImageBytes,
		ttsMessageTTL:  defaultTTSMessageTTL,
	}
}

// localize binds the translator to the locale of the interaction.
func (h *Handler) localize(i *discordgo.InteractionCreate) pkgdiscord.Localize {
	locale := string(i.Locale)
	return func(key string, data map[string]any) string {
		return h.translator.T(locale, key, data)
	}
}

// errorMessage localizes err. Errors without a domain code are logged since
// the user only sees the generic message.
func (h *Handler) errorMessage(i *discordgo.InteractionCreate, err error) string {
	key := pkgdiscord.ErrorKey(err)
	if key == "errors.generic" {
		log.Printf("❌ Interaksi %s gagal: %v", i.ID, err)
	}
	return h.localize(i)(key, h.errorData(err))
}

func (h *Handler) errorData(err error) map[string]any {
	if errors.Is(err, domain.ErrImageTooLarge) {
		return map[string]any{"MaxMB": max(1, h.maxImageBytes>>20)}
	}
	return nil
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
