// Package spellcheck corrects spelling through a LanguageTool-compatible
// /v2/check endpoint.
package spellcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/bytedance/sonic"

	"bacabot/internal/ports/output"
)

const maxResponseBytes = 1 << 20

var _ output.SpellChecker = (*Client)(nil)

// Client talks to a LanguageTool server. Only misspellings with at least one
// suggested replacement are corrected; grammar and style hints are ignored.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for baseURL (e.g. https://api.languagetool.org). A nil
// httpClient gets a 10 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

type checkResponse struct {
	Matches []match `json:"matches"`
}

type match struct {
	Offset       int           `json:"offset"`
	Length       int           `json:"length"`
	Replacements []replacement `json:"replacements"`
	Rule         rule          `json:"rule"`
}

type replacement struct {
	Value string `json:"value"`
}

type rule struct {
	ID        string   `json:"id"`
	IssueType string   `json:"issueType"`
	Category  category `json:"category"`
}

type category struct {
	ID string `json:"id"`
}

func (m match) isSpelling() bool {
	return m.Rule.IssueType == "misspelling" || m.Rule.Category.ID == "TYPOS"
}

// Correct sends text for checking and applies the first suggestion of every
// spelling match.
func (c *Client) Correct(ctx context.Context, text, language string) (string, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build check request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("check request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read check response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("check request: status %d", resp.StatusCode)
	}

	var out checkResponse
	if err := sonic.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode check response: %w", err)
	}
	return applyMatches(text, out.Matches), nil
}

// applyMatches rewrites text with the spelling suggestions. Offsets and
// lengths count UTF-16 code units, as LanguageTool reports them; matches that
// overlap an already applied one or fall outside text are skipped.
func applyMatches(text string, matches []match) string {
	var usable []match
	for _, m := range matches {
		if m.isSpelling() && len(m.Replacements) > 0 && m.Length > 0 && m.Offset >= 0 {
			usable = append(usable, m)
		}
	}
	if len(usable) == 0 {
		return text
	}
	sort.SliceStable(usable, func(i, j int) bool { return usable[i].Offset > usable[j].Offset })

	units := utf16.Encode([]rune(text))
	limit := len(units)
	for _, m := range usable {
		end := m.Offset + m.Length
		if end > limit {
			continue
		}
		repl := utf16.Encode([]rune(m.Replacements[0].Value))
		units = append(units[:m.Offset], append(repl, units[end:]...)...)
		limit = m.Offset
	}
	return string(utf16.Decode(units))
}
