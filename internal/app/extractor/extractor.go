// Package extractor finds image references in page markup.
package extractor

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/supchaser/getimgs/internal/app/models"
	"github.com/supchaser/getimgs/internal/utils/errs"
	"github.com/supchaser/getimgs/internal/utils/logger"
	"go.uber.org/zap"
)

type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Extract returns the absolute http(s) URL of every <img src> in markup,
// resolved against base (or the document's <base href>), deduplicated and in
// document order. Elements without a usable source are skipped.
func (e *Extractor) Extract(markup string, base *url.URL) ([]models.ImageReference, error) {
	const funcName = "Extractor.Extract"

	if base == nil {
		return nil, fmt.Errorf("%w: nil base url", errs.ErrExtraction)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		logger.Warn("failed to parse markup",
			zap.String("function", funcName),
			zap.String("base_url", base.String()),
			zap.Error(err),
		)
		return []models.ImageReference{}, fmt.Errorf("%w: %w", errs.ErrExtraction, err)
	}

	resolveBase := documentBase(doc, base)

	seen := make(map[models.ImageReference]struct{})
	refs := make([]models.ImageReference, 0)
	skipped := 0

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		src = strings.TrimSpace(src)
		if !ok || src == "" || strings.HasPrefix(strings.ToLower(src), "data:") {
			skipped++
			return
		}

		resolved, err := resolveBase.Parse(src)
		if err != nil {
			skipped++
			return
		}

		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			skipped++
			return
		}

		resolved.Fragment = ""
		ref := models.ImageReference(resolved.String())
		if _, dup := seen[ref]; dup {
			return
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	})

	logger.Debug("images extracted",
		zap.String("function", funcName),
		zap.String("base_url", base.String()),
		zap.Int("found", len(refs)),
		zap.Int("skipped", skipped),
	)

	return refs, nil
}

func documentBase(doc *goquery.Document, pageURL *url.URL) *url.URL {
	href, ok := doc.Find("base[href]").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return pageURL
	}

	resolved, err := pageURL.Parse(strings.TrimSpace(href))
	if err != nil {
		return pageURL
	}

	return resolved
}
