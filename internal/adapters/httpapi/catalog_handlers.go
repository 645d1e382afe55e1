package httpapi

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/console-catalog/catalog-api/internal/adapters/manifest"
	"github.com/console-catalog/catalog-api/internal/domain"
	"github.com/console-catalog/catalog-api/internal/ports/out/idempotency"
	"github.com/console-catalog/catalog-api/internal/ports/out/taskrepo"
)

const (
	maxManifestBytes     = 4 << 20
	idempotencyKeyHeader = "Idempotency-Key"
	importTasksRoute     = "/api/catalog/tasks"
)

type listTaskItemsResponse struct {
	Items []domain.CatalogItem `json:"items"`
}

type importTasksResponse struct {
	Imported int `json:"imported"`
}

// ListTaskItems handles GET /api/catalog/tasks?namespace=<ns>.
func (s *Server) ListTaskItems(w http.ResponseWriter, r *http.Request) {
	var namespace string
	if err := runtime.BindQueryParameter("form", true, true, "namespace", r.URL.Query(), &namespace); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	items, err := s.Catalog.ListTaskItems(r.Context(), namespace)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listTaskItemsResponse{Items: items})
}

// ImportTasks handles POST /api/catalog/tasks. The body is a YAML or JSON
// manifest stream; non-task documents are ignored. An optional
// Idempotency-Key header replays the first successful response for the same
// body and rejects reuse of the key with a different body.
func (s *Server) ImportTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxManifestBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
				fmt.Sprintf("manifest exceeds %d bytes", tooLarge.Limit), nil)
			return
		}
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}

	idemKey := idempotency.Key(r.Header.Get(idempotencyKeyHeader))
	bodyHash := hashBody(raw)
	metaFP := idempotency.Fingerprint{
		Key:      idemKey,
		Method:   http.MethodPost,
		Route:    importTasksRoute,
		BodyHash: "",
	}
	respFP := metaFP
	respFP.BodyHash = bodyHash
	useIdem := s.Idem != nil && idemKey != ""
	if useIdem {
		if meta, ok, err := s.Idem.Get(ctx, metaFP); err != nil {
			writeAppError(w, r, err)
			return
		} else if ok {
			if string(meta.Body) != bodyHash {
				writeError(w, r, http.StatusConflict, "IDEMPOTENCY_KEY_REUSE", "idempotency key reuse with different payload", nil)
				return
			}
		} else {
			_ = s.Idem.Put(ctx, metaFP, idempotency.Record{
				StatusCode:  0,
				ContentType: "text/plain",
				Body:        []byte(bodyHash),
				CreatedAt:   time.Now().UTC(),
			})
		}

		if rec, ok, err := s.Idem.Get(ctx, respFP); err != nil {
			writeAppError(w, r, err)
			return
		} else if ok && rec.StatusCode == http.StatusOK {
			w.Header().Set("Content-Type", rec.ContentType)
			w.Header().Set("Idempotent-Replayed", "true")
			w.WriteHeader(rec.StatusCode)
			_, _ = w.Write(rec.Body)
			return
		}
	}

	tasks, err := manifest.Decode(bytes.NewReader(raw))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid manifest: %s", err), nil)
		return
	}
	n, err := s.Catalog.ImportTasks(ctx, tasks)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	resp := importTasksResponse{Imported: n}
	// Store successful response for replay.
	if useIdem {
		if b, err := json.Marshal(resp); err == nil {
			_ = s.Idem.Put(ctx, respFP, idempotency.Record{
				StatusCode:  http.StatusOK,
				ContentType: "application/json",
				Body:        append(b, '\n'),
				CreatedAt:   time.Now().UTC(),
			})
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func hashBody(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// DeleteTask handles DELETE /api/catalog/tasks/{kind}/{name}?namespace=<ns>.
func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	var namespace string
	if err := runtime.BindQueryParameter("form", true, false, "namespace", r.URL.Query(), &namespace); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	key := taskrepo.Key{
		Kind:      domain.TaskKind(chi.URLParam(r, "kind")),
		Namespace: namespace,
		Name:      chi.URLParam(r, "name"),
	}
	if err := s.Catalog.DeleteTask(r.Context(), key); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
