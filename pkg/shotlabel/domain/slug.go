package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"kgeyst.com/shotlabel/pkg/common"
)

const (
	DefaultMaxSlugLength = 100
	untitledSlug         = "untitled"
)

// Slugify turns free-form model output into a filesystem-safe file name base:
//  1. only the first non-empty line is used, with one layer of quotes or backticks removed
//  2. an image extension echoed by the model is dropped
//  3. accents are folded ("Café" becomes "cafe"), everything is lowercased
//  4. every run of characters other than a-z and 0-9 becomes a single hyphen; leading/trailing hyphens are trimmed
//  5. the result is cut to `maxLength` bytes, at a hyphen if possible
//  6. an empty result becomes "untitled"
func Slugify(text string, maxLength int) string {
	text = common.FirstNonEmptyLine(text)
	text = common.RemoveQuotesIfAny(text)
	text = common.TrimImageExtension(text)
	text = strings.ToLower(foldAccents(text))
	var buf strings.Builder
	pendingHyphen := false
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && buf.Len() > 0 {
				buf.WriteByte('-')
			}
			pendingHyphen = false
			buf.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	slug := truncateSlug(buf.String(), maxLength)
	if slug == "" {
		return untitledSlug
	}
	return slug
}

func foldAccents(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}

func truncateSlug(slug string, maxLength int) string {
	if maxLength <= 0 || len(slug) <= maxLength {
		return slug
	}
	cut := slug[:maxLength]
	// The cut already ends on a word boundary if the next byte is a hyphen.
	if slug[maxLength] != '-' {
		if index := strings.LastIndexByte(cut, '-'); index > 0 {
			cut = cut[:index]
		}
	}
	return strings.Trim(cut, "-")
}
