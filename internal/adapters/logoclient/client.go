// Package logoclient fetches the console's custom logos and turns them into
// data URLs that can be embedded directly in markup.
package logoclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/console-catalog/catalog-api/internal/domain"
	"github.com/console-catalog/catalog-api/internal/platform/logger"
)

// Theme is the console's active theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const dataURLPrefix = "data:image/svg+xml,"

type Client struct {
	http *resty.Client
	log  logger.Logger
}

// New returns a client for the console served at basePath, e.g.
// "https://console.example.com/".
func New(basePath string, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Client{
		http: resty.New().SetBaseURL(basePath),
		log:  log,
	}
}

// LogoURL fetches the masthead (or favicon) logo for theme and returns it as
// an SVG data URL. Any failure is logged and yields "".
func (c *Client) LogoURL(ctx context.Context, favicon bool, theme Theme) string {
	reqType := domain.MastheadType
	if favicon {
		reqType = domain.FaviconType
	}
	reqTheme := domain.LightTheme
	if theme == ThemeDark {
		reqTheme = domain.DarkTheme
	}

	svg, err := c.fetch(ctx, reqType, reqTheme)
	if err != nil {
		c.log.Warn(fmt.Sprintf("Error while fetching %s logo", reqType), "err", err)
		return ""
	}
	return dataURLPrefix + encodeURIComponent(svg)
}

func (c *Client) fetch(ctx context.Context, typ domain.CustomLogoType, theme domain.CustomLogoTheme) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"type":  string(typ),
			"theme": string(theme),
		}).
		Get("custom-logo")
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("failed to fetch %s: %s", resp.Request.URL, resp.Status())
	}
	return resp.String(), nil
}

func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
