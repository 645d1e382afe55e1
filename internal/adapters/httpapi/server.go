package httpapi

import (
	"github.com/console-catalog/catalog-api/internal/app/branding"
	"github.com/console-catalog/catalog-api/internal/app/catalog"
	"github.com/console-catalog/catalog-api/internal/ports/out/idempotency"
)

// Server holds the application services the HTTP handlers delegate to.
// Idem is optional; without it Idempotency-Key headers are ignored.
type Server struct {
	Catalog  *catalog.Service
	Branding *branding.Service
	Idem     idempotency.Store
}

func NewServer(catalogSvc *catalog.Service, brandingSvc *branding.Service, idem idempotency.Store) *Server {
	return &Server{
		Catalog:  catalogSvc,
		Branding: brandingSvc,
		Idem:     idem,
	}
}
