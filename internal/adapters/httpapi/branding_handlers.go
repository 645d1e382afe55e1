package httpapi

import (
	"net/http"

	"github.com/oapi-codegen/runtime"
)

type brandingResponse struct {
	ProductName string `json:"productName"`
}

// GetBranding handles GET /api/branding.
func (s *Server) GetBranding(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, brandingResponse{ProductName: s.Branding.ProductName()})
}

// CustomLogo handles /custom-logo?type=<masthead|favicon>&theme=<dark-theme|light-theme>.
func (s *Server) CustomLogo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED",
			"Method unsupported, the only supported method is GET", nil)
		return
	}

	var typ, theme string
	query := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "type", query, &typ); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "theme", query, &theme); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}

	path, err := s.Branding.ResolveLogo(typ, theme)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	// Logos are public; clients revalidate on every request.
	w.Header().Set("Cache-Control", "public, no-cache")
	http.ServeFile(w, r, path)
}
