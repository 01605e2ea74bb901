package discord

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"bacabot/internal/domain"
	"bacabot/internal/domain/entities"
	"bacabot/internal/domain/simplifier"
	"bacabot/internal/ports/input"
	pkgdiscord "bacabot/pkg/discord"
)

type recordingResponder struct {
	responses []*discordgo.InteractionResponse
	deleted   int
}

func (r *recordingResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	r.responses = append(r.responses, resp)
	return nil
}

func (r *recordingResponder) InteractionResponseEdit(_ *discordgo.Interaction, _ *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	return &discordgo.Message{}, nil
}

func (r *recordingResponder) InteractionResponseDelete(_ *discordgo.Interaction, _ ...discordgo.RequestOption) error {
	r.deleted++
	return nil
}

func (r *recordingResponder) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, _ *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	return &discordgo.Message{ID: "f1"}, nil
}

func (r *recordingResponder) FollowupMessageDelete(_ *discordgo.Interaction, _ string, _ ...discordgo.RequestOption) error {
	return nil
}

func (r *recordingResponder) only(t *testing.T) *discordgo.InteractionResponse {
	t.Helper()
	if len(r.responses) != 1 {
		t.Fatalf("responses = %d; want 1", len(r.responses))
	}
	return r.responses[0]
}

type storedReadings struct {
	readings map[string]*entities.Reading
}

func (f *storedReadings) ReadText(context.Context, input.ReadingRequest) (*entities.Reading, error) {
	return nil, domain.ErrEmptyText
}

func (f *storedReadings) ReadImage(context.Context, input.ImageReadingRequest) (*entities.Reading, error) {
	return nil, domain.ErrUnsupportedImage
}

func (f *storedReadings) GetReading(_ context.Context, id string) (*entities.Reading, error) {
	r, ok := f.readings[id]
	if !ok {
		return nil, domain.ErrReadingNotFound
	}
	return r, nil
}

func (f *storedReadings) History(context.Context, string, int) ([]entities.Reading, error) {
	return nil, nil
}

func (f *storedReadings) ClearHistory(context.Context, string) (int64, error) { return 0, nil }

func (f *storedReadings) Sentences(r *entities.Reading) []string {
	var out []string
	for _, s := range simplifier.SplitSentences(r.DisplayText()) {
		if line := strings.TrimSpace(s.String()); line != "" {
			out = append(out, line)
		}
	}
	return out
}

const (
	shortID = "00000000-0000-4000-8000-000000000001"
	longID  = "00000000-0000-4000-8000-000000000002"
)

func newReading(id, text string) *entities.Reading {
	r := &entities.Reading{ID: id, OriginalText: text, CheckedText: text}
	for _, t := range simplifier.Tokenize(text) {
		r.Tokens = append(r.Tokens, entities.DisplayToken{Index: t.Index, Word: t.Word, Text: t.Text})
	}
	return r
}

func newButtonHandler() *Handler {
	words := make([]string, 23)
	for i := range words {
		words[i] = fmt.Sprintf("kata%d", i)
	}
	readings := &storedReadings{readings: map[string]*entities.Reading{
		shortID: newReading(shortID, "Saya  pakai komputer. Lalu pulang."),
		longID:  newReading(longID, strings.Join(words, " ")+"."),
	}}
	h := NewHandler(readings, nil, keyTranslator{}, 500, 8<<20)
	h.ttsMessageTTL = 0
	return h
}

func press(customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "i1",
		Type:    discordgo.InteractionMessageComponent,
		Locale:  discordgo.Locale("id"),
		Data:    discordgo.MessageComponentInteractionData{CustomID: customID, ComponentType: discordgo.ButtonComponent},
		Message: &discordgo.Message{Content: "isi pesan"},
	}}
}

func TestWordButtonSpeaksWord(t *testing.T) {
	h := newButtonHandler()
	r := &recordingResponder{}
	h.HandleButton(r, press(pkgdiscord.WordButtonID(shortID, 2)))

	resp := r.only(t)
	if resp.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Fatalf("response type = %v; want channel message", resp.Type)
	}
	if !resp.Data.TTS || resp.Data.Content != "pakai" {
		t.Errorf("response = TTS %v, %q; want TTS true, %q", resp.Data.TTS, resp.Data.Content, "pakai")
	}
	if resp.Data.Flags&discordgo.MessageFlagsEphemeral != 0 {
		t.Errorf("TTS message is ephemeral; Discord would not read it aloud")
	}
}

func TestWordButtonRejectsUnplayableIndex(t *testing.T) {
	tests := []struct {
		name     string
		customID string
	}{
		{"empty word from double space", pkgdiscord.WordButtonID(shortID, 1)},
		{"index past the last token", pkgdiscord.WordButtonID(shortID, 99)},
		{"unknown reading", pkgdiscord.WordButtonID("00000000-0000-4000-8000-0000000000ff", 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recordingResponder{}
			newButtonHandler().HandleButton(r, press(tt.customID))
			resp := r.only(t)
			if resp.Data.TTS {
				t.Errorf("TTS = true; want an error reply")
			}
			if resp.Data.Flags&discordgo.MessageFlagsEphemeral == 0 {
				t.Errorf("error reply is public; want ephemeral")
			}
			if want := "errors.reading_not_found:id"; resp.Data.Content != want {
				t.Errorf("Content = %q; want %q", resp.Data.Content, want)
			}
		})
	}
}

func TestWordButtonMalformedIDIgnored(t *testing.T) {
	r := &recordingResponder{}
	newButtonHandler().HandleButton(r, press(pkgdiscord.PrefixWord+shortID))
	if len(r.responses) != 0 {
		t.Errorf("responses = %d; want none for a malformed custom ID", len(r.responses))
	}
}

func TestReadAllButtonSpeaksDisplayText(t *testing.T) {
	r := &recordingResponder{}
	newButtonHandler().HandleButton(r, press(pkgdiscord.ReadButtonID(shortID)))
	resp := r.only(t)
	if !resp.Data.TTS || resp.Data.Content != "Saya  pakai komputer. Lalu pulang." {
		t.Errorf("response = TTS %v, %q; want the whole display text spoken", resp.Data.TTS, resp.Data.Content)
	}
}

func TestOriginalAndLayoutButtons(t *testing.T) {
	h := newButtonHandler()

	r := &recordingResponder{}
	h.HandleButton(r, press(pkgdiscord.OriginalButtonID(shortID)))
	if got := r.only(t).Data.Content; got != "Saya  pakai komputer. Lalu pulang." {
		t.Errorf("original = %q", got)
	}

	r = &recordingResponder{}
	h.HandleButton(r, press(pkgdiscord.LayoutButtonID(shortID)))
	resp := r.only(t)
	if want := "Saya  pakai komputer.\nLalu pulang."; resp.Data.Content != want {
		t.Errorf("layout = %q; want %q", resp.Data.Content, want)
	}
	if resp.Data.Flags&discordgo.MessageFlagsEphemeral == 0 {
		t.Errorf("layout reply is public; want ephemeral")
	}
}

func TestPageButtonClampsToLastPage(t *testing.T) {
	r := &recordingResponder{}
	newButtonHandler().HandleButton(r, press(pkgdiscord.PageButtonID(longID, 9)))

	resp := r.only(t)
	if resp.Type != discordgo.InteractionResponseUpdateMessage {
		t.Fatalf("response type = %v; want message update", resp.Type)
	}
	if resp.Data.Content != "isi pesan" {
		t.Errorf("Content = %q; want the message content kept", resp.Data.Content)
	}
	if len(resp.Data.Components) != 2 {
		t.Fatalf("rows = %d; want one word row and the control row", len(resp.Data.Components))
	}
	words := resp.Data.Components[0].(discordgo.ActionsRow).Components
	if len(words) != 3 || words[0].(discordgo.Button).CustomID != pkgdiscord.WordButtonID(longID, 20) {
		t.Errorf("last page words = %d starting %q; want 3 starting at index 20", len(words), words[0].(discordgo.Button).CustomID)
	}
	controls := resp.Data.Components[1].(discordgo.ActionsRow).Components
	next := controls[len(controls)-1].(discordgo.Button)
	if !next.Disabled {
		t.Errorf("next button enabled on the last page")
	}
}
