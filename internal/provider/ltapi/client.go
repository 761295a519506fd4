// Package ltapi queries a LanguageTool-compatible HTTP endpoint and adapts
// its match shape into canonical raw matches.
package ltapi

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/prosefix/prosefix/internal/lang"
	"github.com/prosefix/prosefix/internal/model"
)

// DefaultBaseURL is the public LanguageTool API.
const DefaultBaseURL = "https://api.languagetool.org"

// supported mirrors the endpoint's language variants we can name exactly;
// the matcher snaps an autodetected tag to the closest entry.
var supported = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("en-GB"),
	language.MustParse("de-DE"),
	language.MustParse("fr"),
	language.MustParse("es"),
	language.MustParse("pt-BR"),
	language.MustParse("it"),
	language.MustParse("nl"),
	language.MustParse("pl-PL"),
	language.MustParse("ru-RU"),
	language.MustParse("uk-UA"),
	language.MustParse("ar"),
	language.MustParse("zh-CN"),
	language.MustParse("ja-JP"),
	language.MustParse("el-GR"),
}

var matcher = language.NewMatcher(supported)

// Client talks to one LanguageTool-compatible endpoint. The zero language
// means autodetect per request from the text itself.
type Client struct {
	base string
	lang string
	hc   *http.Client
}

// New builds a Client. Empty baseURL falls back to the public API; empty
// langCode enables autodetection.
func New(baseURL, langCode string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		lang: langCode,
		hc: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        32,
				MaxIdleConnsPerHost: 16,
				TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
			},
		},
	}
}

func (c *Client) Name() string { return "languagetool" }

// Analyze POSTs text to /v2/check and maps the matches into raw records.
func (c *Client) Analyze(ctx context.Context, text string) ([]model.RawMatch, error) {
	form := url.Values{
		"text":     {text},
		"language": {c.requestLang(text)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.base+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ltapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ltapi: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ltapi: read body: %w", err)
	}
	return decodeMatches(body, text)
}

// requestLang resolves the language parameter: configured override first,
// otherwise autodetect from the text and snap to a supported variant.
func (c *Client) requestLang(text string) string {
	if c.lang != "" {
		return c.lang
	}
	_, idx, _ := matcher.Match(language.Make(lang.Dominant(text)))
	return supported[idx].String()
}
