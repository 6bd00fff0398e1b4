package validate

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/supchaser/getimgs/internal/utils/errs"
)

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
}

// ValidatePageURL accepts only absolute http(s) URLs with a host.
func ValidatePageURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errs.ErrInvalidURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, errs.ErrInvalidURL
	}

	if !u.IsAbs() || !allowedSchemes[strings.ToLower(u.Scheme)] || u.Host == "" {
		return nil, errs.ErrInvalidURL
	}

	return u, nil
}

// UpgradeScheme rewrites http to https and leaves every other URL untouched.
func UpgradeScheme(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || !strings.EqualFold(u.Scheme, "http") {
		return raw
	}

	u.Scheme = "https"
	return u.String()
}

// ValidateFileName rejects names that would escape the run directory.
func ValidateFileName(name string) error {
	if name == "" || name == "." || name == ".." {
		return errs.ErrFileNotFound
	}

	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return errs.ErrFileNotFound
	}

	if strings.HasPrefix(name, ".") {
		return errs.ErrFileNotFound
	}

	return nil
}

// ResolveSubDir joins sub onto root. Only relative paths that stay inside
// root are allowed.
func ResolveSubDir(root, sub string) (string, error) {
	sub = strings.TrimSpace(sub)
	if sub == "" || strings.Contains(sub, `\`) || !filepath.IsLocal(sub) {
		return "", errs.ErrInvalidDir
	}

	return filepath.Join(root, filepath.Clean(sub)), nil
}
