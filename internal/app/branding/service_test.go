package branding

import (
	"errors"
	"testing"

	"github.com/console-catalog/catalog-api/internal/domain"
)

func newTestService() *Service {
	return NewService(Config{
		Branding: domain.BrandingAzure,
		CustomLogos: []domain.CustomLogoFiles{
			{Type: domain.MastheadType, Logos: []domain.CustomLogoFile{{Theme: domain.DarkTheme, Path: "/logos/dark.svg"}}},
		},
	})
}

func TestService_ProductName(t *testing.T) {
	t.Parallel()

	if got := newTestService().ProductName(); got != "Azure Red Hat OpenShift" {
		t.Fatalf("ProductName()=%q", got)
	}
	custom := NewService(Config{Branding: domain.BrandingAzure, CustomProductName: "Acme"})
	if got := custom.ProductName(); got != "Acme" {
		t.Fatalf("ProductName()=%q, want Acme", got)
	}
}

func TestService_ResolveLogo(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	path, err := svc.ResolveLogo("masthead", "dark-theme")
	if err != nil || path != "/logos/dark.svg" {
		t.Fatalf("ResolveLogo()=%q err=%v", path, err)
	}

	cases := []struct {
		typ, theme string
		status     int
	}{
		{"", "dark-theme", 400},
		{"masthead", "", 400},
		{"masthead", "dark", 400},
		{"banner", "dark-theme", 400},
		{"favicon", "dark-theme", 404},
	}
	for _, tc := range cases {
		_, err := svc.ResolveLogo(tc.typ, tc.theme)
		ae := (*Error)(nil)
		if !errors.As(err, &ae) || ae.Status != tc.status {
			t.Fatalf("ResolveLogo(%q, %q) err=%v, want status %d", tc.typ, tc.theme, err, tc.status)
		}
	}
}
