package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)
	ws.
		Path("/api").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.Route(ws.GET("/health").
		To(handler.Health).
		Doc("Health check").
		Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
		Writes(HealthResponse{}).
		Returns(200, "OK", HealthResponse{}))

	ws.Route(ws.POST("/query").
		To(handler.Query).
		Doc("Answer a question from the loaded document").
		Metadata(restfulspec.KeyOpenAPITags, []string{"query"}).
		Reads(QueryRequest{}).
		Writes(QueryResponse{}).
		Returns(200, "OK", QueryResponse{}).
		Returns(400, "Bad Request", ErrorResponse{}).
		Returns(409, "No document loaded", ErrorResponse{}))

	ws.Route(ws.POST("/document").
		To(handler.LoadDocument).
		Doc("Load or replace the document from text or a URL").
		Metadata(restfulspec.KeyOpenAPITags, []string{"document"}).
		Reads(DocumentRequest{}).
		Writes(DocumentResponse{}).
		Returns(200, "OK", DocumentResponse{}).
		Returns(400, "Bad Request", ErrorResponse{}).
		Returns(502, "Document fetch failed", ErrorResponse{}))

	container.Add(ws)
}
