package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"bacabot/internal/config"
	"bacabot/internal/ports/input"
	"bacabot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires the use cases into its interaction handler.
func NewBot(cfg *config.Config, readingUC input.ReadingUseCase, lexiconUC input.LexiconUseCase, translator output.Translator) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	handler := NewHandler(readingUC, lexiconUC, translator, cfg.AutoReadLimit, cfg.MaxImageBytes)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handler.HandleCommand(s, i)
	case discordgo.InteractionModalSubmit:
		b.handler.HandleModalSubmit(s, i)
	case discordgo.InteractionMessageComponent:
		if i.MessageComponentData().CustomID == selectHistory {
			b.handler.HandleHistorySelect(s, i)
			return
		}
		b.handler.HandleButton(s, i)
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	// An empty guild ID registers the commands globally.
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, Commands()); err != nil {
		log.Printf("⚠️ Gagal mendaftarkan perintah: %v", err)
	}

	log.Println("🤖 Bot aktif! Tekan CTRL+C untuk keluar.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
