package branding

import (
	"fmt"

	"github.com/console-catalog/catalog-api/internal/domain"
)

type Config struct {
	Branding          domain.Branding
	CustomProductName string
	CustomLogos       []domain.CustomLogoFiles
}

// Service answers branding questions for the console: the product name and
// where custom logos live.
type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

func (s *Service) ProductName() string {
	return domain.ProductName(s.cfg.Branding, s.cfg.CustomProductName)
}

// ResolveLogo parses the requested type and theme and returns the file path
// configured for them.
func (s *Service) ResolveLogo(typ, theme string) (string, error) {
	if typ == "" || theme == "" {
		return "", &Error{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: "missing 'theme' or 'type' query parameter",
		}
	}
	logoTheme, err := domain.ParseCustomLogoTheme(theme)
	if err != nil {
		return "", &Error{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: fmt.Sprintf("failed to process URL query parameter 'theme': %s", err),
		}
	}
	logoType, err := domain.ParseCustomLogoType(typ)
	if err != nil {
		return "", &Error{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: fmt.Sprintf("failed to process URL query parameter 'type': %s", err),
		}
	}
	path, ok := domain.FindLogo(s.cfg.CustomLogos, logoType, logoTheme)
	if !ok {
		return "", &Error{
			Status:  404,
			Code:    "LOGO_NOT_FOUND",
			Message: fmt.Sprintf("no custom %s logo configured for %s", logoType, logoTheme),
		}
	}
	return path, nil
}
