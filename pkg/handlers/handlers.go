package handlers

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"nzbmock/pkg/catalog"
	"nzbmock/pkg/config"
	apperrors "nzbmock/pkg/errors"
	"nzbmock/pkg/models"
	"nzbmock/pkg/newznab"
	"nzbmock/pkg/search"
)

// Handler serves the Newznab API surface against the loaded catalog.
type Handler struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	builder *newznab.Builder
}

func New(cfg *config.Config, cat *catalog.Catalog, builder *newznab.Builder) *Handler {
	return &Handler{
		cfg:     cfg,
		catalog: cat,
		builder: builder,
	}
}

// Router builds the HTTP routing table.
func (h *Handler) Router() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)

	router.Get("/api", h.handleAPI)
	router.Get("/details/*", h.handleDetails)
	router.Get("/health", h.handleHealth)

	return router
}

// handleAPI guards the API key and dispatches on the t parameter. The key
// is checked before anything else, so a bad key wins over any other
// problem with the request.
func (h *Handler) handleAPI(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("apikey") != h.cfg.APIKey {
		h.writeError(w, apperrors.Unauthorized())
		return
	}

	t := query.Get("t")
	switch t {
	case "search":
		h.handleSearch(w, r)
	case "get":
		h.handleGet(w, r)
	default:
		h.writeError(w, apperrors.UnknownFunction(t))
	}
}

// handleSearch matches the catalog against the q parameter and renders
// the feed. q must be present; an empty q matches everything.
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("q") {
		h.writeError(w, apperrors.MissingParam("q"))
		return
	}

	matched := search.Match(h.catalog.Items(), query.Get("q"))
	matched = search.FilterByCategory(matched, query.Get("cat"))

	log.WithFields(log.Fields{
		"query":   query.Get("q"),
		"cat":     query.Get("cat"),
		"matches": len(matched),
	}).Debug("search handled")

	h.writeXML(w, http.StatusOK, h.builder.Feed(matched))
}

// handleGet resolves the id parameter to a catalog item and returns the
// backing file's bytes. The file's existence is only checked here, not at
// catalog load time.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("id") {
		h.writeError(w, apperrors.MissingParam("id"))
		return
	}

	id := query.Get("id")
	item, ok := h.catalog.Get(id)
	if !ok {
		h.writeError(w, apperrors.NotFound(id))
		return
	}

	path := filepath.Join(h.cfg.NZBDir, item.Filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("filename", item.Filename).Warn("catalog entry has no backing file")
			h.writeError(w, apperrors.NotFound(id))
			return
		}
		log.WithError(err).WithField("filename", item.Filename).Error("failed to read NZB file")
		h.writeError(w, apperrors.ServeFailure())
		return
	}

	w.Header().Set("Content-Type", newznab.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(item.Filename)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Error("failed to write NZB response")
	}
}

// handleDetails serves the metadata view of a single item: the same
// document shape as a search response with exactly one entry. This is
// where the guid and comments links in the feed point. A wildcard route
// keeps identifiers with path separators working.
func (h *Handler) handleDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "*")
	item, ok := h.catalog.Get(id)
	if !ok {
		h.writeError(w, apperrors.NotFound(id))
		return
	}
	h.writeXML(w, http.StatusOK, h.builder.Feed([]*models.Item{item}))
}

// handleHealth handles health check requests.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":        "healthy",
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
		"catalog_items": h.catalog.Len(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(health); err != nil {
		log.WithError(err).Error("failed to encode health response")
	}
}

func (h *Handler) writeXML(w http.ResponseWriter, status int, doc interface{}) {
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.WithError(err).Error("failed to marshal XML response")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	w.Write([]byte(xml.Header))
	w.Write(out)
	w.Write([]byte("\n"))
}

func (h *Handler) writeError(w http.ResponseWriter, reqErr *apperrors.RequestError) {
	h.writeXML(w, reqErr.Status, newznab.Error(reqErr.Code, reqErr.Description))
}
