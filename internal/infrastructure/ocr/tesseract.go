// Package ocr recognizes text in images with Tesseract through gosseract.
package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"bacabot/internal/infrastructure/imaging"
	"bacabot/internal/ports/output"
)

var _ output.TextRecognizer = (*TesseractEngine)(nil)

// TesseractEngine implements output.TextRecognizer. Each call uses its own
// client, so the engine is safe for concurrent use.
type TesseractEngine struct {
	clientFactory func() *gosseract.Client
	variables     map[string]string
}

// NewTesseractEngine constructs a Tesseract-backed recognizer. variables are
// passed to every client (for example "tessedit_pageseg_mode").
func NewTesseractEngine(variables map[string]string) *TesseractEngine {
	vars := make(map[string]string, len(variables))
	for k, v := range variables {
		vars[k] = v
	}
	return &TesseractEngine{clientFactory: gosseract.NewClient, variables: vars}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Recognize converts the image to PNG and returns the recognized plain text.
func (e *TesseractEngine) Recognize(ctx context.Context, img []byte, languages ...string) (string, error) {
	data, err := imaging.ToPNG(img)
	if err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	c := e.clientFactory()
	if err := e.configure(c, data, languages); err != nil {
		c.Close()
		return "", err
	}

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		// Close only after Text returns; the client must not be freed mid-call.
		defer c.Close()
		text, err := c.Text()
		done <- result{text, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("recognize text: %w", r.err)
		}
		return strings.TrimSpace(r.text), nil
	}
}

func (e *TesseractEngine) configure(c *gosseract.Client, png []byte, languages []string) error {
	if len(languages) > 0 {
		if err := c.SetLanguage(languages...); err != nil {
			return fmt.Errorf("set languages: %w", err)
		}
	}
	for k, v := range e.variables {
		if err := c.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return fmt.Errorf("set variable %s: %w", k, err)
		}
	}
	if err := c.SetImageFromBytes(png); err != nil {
		return fmt.Errorf("set image: %w", err)
	}
	return nil
}
