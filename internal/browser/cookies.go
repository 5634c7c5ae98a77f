// Package browser pulls session cookies out of installed browsers and
// performs a lightweight pre-flight check of the channel page.
package browser

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"chanarr/internal/domain/consts"
	"chanarr/internal/utils/logging"

	"github.com/browserutils/kooky"
	// Register all browser stores for Kooky:
	_ "github.com/browserutils/kooky/browser/all"
	"golang.org/x/net/publicsuffix"
)

// baseDomain extracts the eTLD+1 from a URL (e.g. "youtube.com").
func baseDomain(u string) (string, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", u, err)
	}

	host := parsed.Hostname()
	if host == "" {
		return "", fmt.Errorf("URL %q has no host", u)
	}

	base, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", fmt.Errorf("failed to derive base domain from %q: %w", host, err)
	}
	return base, nil
}

// LoadCookies reads valid cookies for the URL's base domain from the user's
// installed browsers.
func LoadCookies(ctx context.Context, sourceURL string) ([]*http.Cookie, error) {
	domain, err := baseDomain(sourceURL)
	if err != nil {
		return nil, err
	}

	kookyCookies, err := kooky.ReadCookies(ctx, kooky.Valid, kooky.Domain(domain))
	if err != nil {
		return nil, fmt.Errorf("failed reading browser cookies for %q: %w", domain, err)
	}

	if len(kookyCookies) == 0 {
		logging.I("No cookies found for %s", domain)
		return nil, nil
	}

	cookies := make([]*http.Cookie, len(kookyCookies))
	for i, c := range kookyCookies {
		cookies[i] = &http.Cookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
			Secure:  c.Secure,
		}
	}

	logging.I("Found %d cookies for %s", len(cookies), domain)
	return cookies, nil
}

// ExportCookies writes cookies to a Netscape-format file in the output
// directory, next to the run's other records. Returns the file path, or
// "" when there is nothing to export.
func ExportCookies(outputDir string, cookies []*http.Cookie) (string, error) {
	if len(cookies) == 0 {
		return "", nil
	}

	path := filepath.Join(outputDir, consts.CookieExportFile)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create cookie file %q: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("failed to close file %q due to error: %v", path, err)
		}
	}()

	if _, err := f.WriteString("# Netscape HTTP Cookie File\n# https://curl.haxx.se/rfc/cookie_spec.html\n# This is a generated file! Do not edit.\n\n"); err != nil {
		return "", err
	}

	logging.D(1, "Saving %d cookies to file %s...", len(cookies), path)

	for _, cookie := range cookies {
		domain := cookie.Domain
		if !strings.HasPrefix(domain, ".") && strings.Count(domain, ".") > 1 {
			domain = "." + domain
		}

		secure := "FALSE"
		if cookie.Secure {
			secure = "TRUE"
		}

		var expires int64
		if !cookie.Expires.IsZero() {
			expires = cookie.Expires.Unix()
		}

		if _, err := fmt.Fprintf(f, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			domain, "FALSE", cookie.Path, secure, expires, cookie.Name, cookie.Value); err != nil {
			return "", err
		}
	}

	return path, nil
}
