package downloader

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/supchaser/getimgs/internal/app/models"
)

const (
	fallbackName = "image"
	maxStemLen   = 120
	maxExtLen    = 16
	hashLen      = 8
)

// SegmentName derives a safe file name from the last path segment of ref.
func SegmentName(ref models.ImageReference) string {
	u, err := url.Parse(string(ref))
	if err != nil {
		return fallbackName
	}

	seg := path.Base(u.EscapedPath())
	if unescaped, err := url.PathUnescape(seg); err == nil {
		seg = unescaped
	}

	seg = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f:
			return -1
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '-'
		default:
			return r
		}
	}, seg)
	seg = strings.TrimLeft(strings.TrimSpace(seg), ".")

	if seg == "" || seg == "-" {
		return fallbackName
	}

	ext := filepath.Ext(seg)
	stem := strings.TrimSuffix(seg, ext)
	if stem == "" {
		stem = fallbackName
	}

	return truncateUTF8(stem, maxStemLen) + truncateUTF8(ext, maxExtLen)
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Stem strips the extension from name.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// UniqueFileNames names every reference after its last path segment. When two
// references would produce the same output stem, later ones get a short hash
// of their URL appended so that no output overwrites another.
func UniqueFileNames(refs []models.ImageReference) []string {
	names := make([]string, len(refs))
	used := make(map[string]struct{}, len(refs))

	for i, ref := range refs {
		name := SegmentName(ref)
		key := strings.ToLower(Stem(name))

		if _, taken := used[key]; taken {
			sum := sha256.Sum256([]byte(ref))
			stem, ext := Stem(name), filepath.Ext(name)
			name = stem + "-" + hex.EncodeToString(sum[:])[:hashLen] + ext
			key = strings.ToLower(Stem(name))

			// the hashed name can only clash with a literal segment of the same
			// shape; fall back to the position in the page
			if _, taken := used[key]; taken {
				name = fmt.Sprintf("%s-%d%s", Stem(name), i, ext)
				key = strings.ToLower(Stem(name))
			}
		}

		used[key] = struct{}{}
		names[i] = name
	}

	return names
}
