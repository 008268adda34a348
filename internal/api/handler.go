package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"docqa/internal/domain"
	"docqa/internal/source"
	"docqa/internal/summarizer"
)

type Handler struct {
	service  domain.QAService
	provider domain.TextProvider
	log      zerolog.Logger
}

// NewHandler wires the HTTP handlers. provider is used for URL document loads and may be nil.
func NewHandler(service domain.QAService, provider domain.TextProvider, log zerolog.Logger) *Handler {
	return &Handler{service: service, provider: provider, log: log}
}

// Health handles GET /api/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	out := HealthResponse{Status: "ok", Loads: h.service.Loads()}
	if doc := h.service.Current(); doc != nil {
		out.Loaded = true
		out.Segments = len(doc.Segments)
	}
	_ = resp.WriteEntity(out)
}

// Query handles POST /api/query
func (h *Handler) Query(req *restful.Request, resp *restful.Response) {
	var body QueryRequest
	if err := req.ReadEntity(&body); err != nil {
		writeError(resp, http.StatusBadRequest, "invalid request body")
		return
	}
	ans, err := h.service.Ask(body.Question)
	if err != nil {
		if errors.Is(err, domain.ErrNoDocument) {
			writeError(resp, http.StatusConflict, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("query failed")
		writeError(resp, http.StatusInternalServerError, err.Error())
		return
	}
	_ = resp.WriteEntity(QueryResponse{
		Answer:   ans.Text,
		Matched:  ans.Matched,
		Score:    ans.Score,
		Segments: ans.Segments,
		Fallback: ans.Fallback,
	})
}

// LoadDocument handles POST /api/document
func (h *Handler) LoadDocument(req *restful.Request, resp *restful.Response) {
	var body DocumentRequest
	if err := req.ReadEntity(&body); err != nil {
		writeError(resp, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		doc *domain.Document
		err error
	)
	if body.URL != "" {
		if h.provider == nil || !source.IsURL(body.URL) {
			writeError(resp, http.StatusBadRequest, "url must be an http or https address")
			return
		}
		doc, err = h.service.LoadFrom(req.Request.Context(), h.provider, body.URL)
		if err != nil {
			writeError(resp, http.StatusBadGateway, err.Error())
			return
		}
	} else {
		doc, err = h.service.Load(body.Text)
		if err != nil {
			h.log.Error().Err(err).Msg("document load failed")
			writeError(resp, http.StatusInternalServerError, err.Error())
			return
		}
	}
	_ = resp.WriteEntity(DocumentResponse{
		Segments:     len(doc.Segments),
		Segmentation: doc.Segmentation,
		Chars:        len(doc.Text),
		Keywords:     summarizer.Terms(summarizer.Keywords(doc, nil, 0)),
	})
}

func writeError(resp *restful.Response, status int, msg string) {
	_ = resp.WriteHeaderAndEntity(status, ErrorResponse{Error: msg})
}
