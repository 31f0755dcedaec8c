package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/lawhub-kr/statute-agent/internal/api/middleware"
	"github.com/lawhub-kr/statute-agent/internal/models"
	"github.com/lawhub-kr/statute-agent/internal/store"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/packages").
			To(handler.Packages).
			Doc("List available statute packages").
			Metadata(restfulspec.KeyOpenAPITags, []string{"laws"}).
			Writes([]store.PackageInfo{}).
			Returns(200, "OK", []store.PackageInfo{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/packages/load").
			To(handler.LoadPackages).
			Doc("Load statute packages into the working set").
			Metadata(restfulspec.KeyOpenAPITags, []string{"laws"}).
			Reads(LoadPackagesRequest{}).
			Writes([]LawSummary{}).
			Returns(200, "OK", []LawSummary{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/laws").
			To(handler.Laws).
			Doc("List loaded statutes").
			Metadata(restfulspec.KeyOpenAPITags, []string{"laws"}).
			Writes([]LawSummary{}).
			Returns(200, "OK", []LawSummary{}))

	ws.
		Route(ws.GET("/laws/{law_name}/articles/{number}").
			To(handler.GetArticle).
			Doc("Look one article up by number").
			Metadata(restfulspec.KeyOpenAPITags, []string{"laws"}).
			Param(ws.PathParameter("law_name", "Statute name").DataType("string")).
			Param(ws.PathParameter("number", "Article citation, e.g. 제10조 or 10").DataType("string")).
			Writes(models.Article{}).
			Returns(200, "OK", models.Article{}).
			Returns(404, "Not Found", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/search").
			To(handler.Search).
			Doc("TF-IDF retrieval over the loaded statutes").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Reads(SearchRequest{}).
			Writes(SearchResponse{}).
			Returns(200, "OK", SearchResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Law Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/search/text").
			To(handler.SearchText).
			Doc("Raw substring search over article text").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Param(ws.QueryParameter("term", "Substring to look for").DataType("string")).
			Param(ws.QueryParameter("law", "Limit to one statute").DataType("string").Required(false)).
			Writes([]store.TextMatch{}).
			Returns(200, "OK", []store.TextMatch{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/ask").
			To(handler.Ask).
			Doc("Ask the multi-agent statute assistant").
			Metadata(restfulspec.KeyOpenAPITags, []string{"chat"}).
			Reads(models.ChatRequest{}).
			Writes(models.ChatResult{}).
			Returns(200, "OK", models.ChatResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
