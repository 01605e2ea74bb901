package domain

import "errors"

// Domain errors.
var (
	ErrEmptyText            = errors.New("teks kosong")
	ErrNoTextFound          = errors.New("tidak ditemukan teks yang bisa dibaca")
	ErrUnsupportedImage     = errors.New("format gambar tidak didukung")
	ErrImageTooLarge        = errors.New("ukuran gambar terlalu besar")
	ErrRecognitionFailed    = errors.New("gagal mengenali teks pada gambar")
	ErrReadingNotFound      = errors.New("bacaan tidak ditemukan")
	ErrInvalidLexiconEntry  = errors.New("entri kamus tidak valid")
	ErrLexiconEntryNotFound = errors.New("entri kamus tidak ditemukan")
)

var codes = map[error]string{
	ErrEmptyText:            "empty_text",
	ErrNoTextFound:          "no_text_found",
	ErrUnsupportedImage:     "unsupported_image",
	ErrImageTooLarge:        "image_too_large",
	ErrRecognitionFailed:    "recognition_failed",
	ErrReadingNotFound:      "reading_not_found",
	ErrInvalidLexiconEntry:  "invalid_lexicon_entry",
	ErrLexiconEntryNotFound: "lexicon_entry_not_found",
}

// Code returns the stable code of the domain error wrapped in err, or "" when
// err carries none. Adapters use it as an i18n key suffix.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
