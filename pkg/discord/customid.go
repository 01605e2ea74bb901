package discord

import (
	"strconv"
	"strings"
)

// Custom ID prefixes of the reading message components. Reading IDs are
// UUIDs, which never contain '_', so the last '_' separates the numeric suffix.
const (
	PrefixWord     = "btn_word_"
	PrefixRead     = "btn_read_"
	PrefixOriginal = "btn_original_"
	PrefixLayout   = "btn_layout_"
	PrefixPage     = "btn_page_"

	ReadModalID      = "read_text_modal"
	ReadModalText    = "teks"
	ReadModalSimpler = "sederhana"
)

func WordButtonID(readingID string, index int) string {
	return PrefixWord + readingID + "_" + strconv.Itoa(index)
}

func ReadButtonID(readingID string) string     { return PrefixRead + readingID }
func OriginalButtonID(readingID string) string { return PrefixOriginal + readingID }
func LayoutButtonID(readingID string) string   { return PrefixLayout + readingID }

func PageButtonID(readingID string, page int) string {
	return PrefixPage + readingID + "_" + strconv.Itoa(page)
}

// ParseReadingID returns the reading ID of a custom ID built with prefix.
func ParseReadingID(customID, prefix string) (string, bool) {
	id, ok := strings.CutPrefix(customID, prefix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ParseIndexedID splits "<prefix><readingID>_<n>" as produced by
// WordButtonID and PageButtonID.
func ParseIndexedID(customID, prefix string) (readingID string, n int, ok bool) {
	rest, ok := strings.CutPrefix(customID, prefix)
	if !ok {
		return "", 0, false
	}
	sep := strings.LastIndexByte(rest, '_')
	if sep <= 0 {
		return "", 0, false
	}
	n, err := strconv.Atoi(rest[sep+1:])
	if err != nil || n < 0 {
		return "", 0, false
	}
	return rest[:sep], n, true
}
