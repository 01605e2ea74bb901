package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("boom"), ""},
		{ErrNoTextFound, "no_text_found"},
		{fmt.Errorf("read image: %w", ErrUnsupportedImage), "unsupported_image"},
		{fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrReadingNotFound)), "reading_not_found"},
	}
	for _, tt := range tests {
		if got := Code(tt.err); got != tt.want {
			t.Errorf("Code(%v) = %q; want %q", tt.err, got, tt.want)
		}
	}
}
