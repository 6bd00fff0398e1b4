package extractor

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/supchaser/getimgs/internal/app/models"
	"github.com/supchaser/getimgs/internal/utils/errs"
	"github.com/supchaser/getimgs/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	assert.NoError(t, err)
	return u
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		base     string
		expected []models.ImageReference
	}{
		{
			name: "RelativeAbsoluteAndMissing",
			markup: `<html><body>
				<img src="a.jpg">
				<img src="https://cdn.test/b.png">
				<img alt="no source">
			</body></html>`,
			base:     "https://example.test/gallery",
			expected: []models.ImageReference{
				"https://example.test/a.jpg",
				"https://cdn.test/b.png",
			},
		},
		{
			name:     "EmptyAndDataSources",
			markup:   `<img src=""><img src="   "><img src="data:image/png;base64,AAAA">`,
			base:     "https://example.test/",
			expected: []models.ImageReference{},
		},
		{
			name:     "Duplicates",
			markup:   `<img src="/x.jpg"><img src="x.jpg"><img src="https://example.test/x.jpg#frag">`,
			base:     "https://example.test/",
			expected: []models.ImageReference{"https://example.test/x.jpg"},
		},
		{
			name:     "Unresolvable",
			markup:   `<img src="http://[::1"><img src="ok.gif">`,
			base:     "https://example.test/dir/page.html",
			expected: []models.ImageReference{"https://example.test/dir/ok.gif"},
		},
		{
			name:     "NonHTTPScheme",
			markup:   `<img src="javascript:alert(1)"><img src="ftp://files.test/a.jpg">`,
			base:     "https://example.test/",
			expected: []models.ImageReference{},
		},
		{
			name:     "BaseElement",
			markup:   `<html><head><base href="https://static.test/img/"></head><body><img src="c.webp"></body></html>`,
			base:     "https://example.test/page",
			expected: []models.ImageReference{"https://static.test/img/c.webp"},
		},
		{
			name:     "MalformedMarkup",
			markup:   `<div><img src="m.jpg"<p><<img src='n.jpg'></div`,
			base:     "https://example.test/",
			expected: nil,
		},
		{
			name:     "NoImages",
			markup:   `<p>text only</p>`,
			base:     "https://example.test/",
			expected: []models.ImageReference{},
		},
	}

	ex := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, err := ex.Extract(tt.markup, mustParse(t, tt.base))

			assert.NoError(t, err)
			if tt.expected != nil {
				assert.Equal(t, tt.expected, refs)
			}
			for _, ref := range refs {
				u, err := url.Parse(string(ref))
				assert.NoError(t, err)
				assert.True(t, u.IsAbs())
			}
		})
	}
}

func TestExtract_NeverMoreThanImageCount(t *testing.T) {
	markup := `<img src="1.jpg"><img src="2.jpg"><img src="1.jpg"><img><img src="3.jpg">`

	refs, err := New().Extract(markup, mustParse(t, "https://example.test/"))

	assert.NoError(t, err)
	assert.LessOrEqual(t, len(refs), 5)
	assert.Len(t, refs, 3)
}

func TestExtract_NilBase(t *testing.T) {
	refs, err := New().Extract(`<img src="a.jpg">`, nil)

	assert.ErrorIs(t, err, errs.ErrExtraction)
	assert.Empty(t, refs)
}
