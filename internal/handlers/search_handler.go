package handlers

import (
	"net/http"

	"github.com/Xae97/TaskFundi/internal/services"
	"github.com/Xae97/TaskFundi/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	search := rg.Group("/search")
	{
		search.GET("/jobs", h.SearchJobs)
		search.GET("/fundis", h.SearchFundis)
	}
}

func (h *SearchHandler) SearchJobs(c *gin.Context) {
	var req dto.SearchJobsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	c.JSON(http.StatusOK, h.searchService.SearchJobs(&req))
}

func (h *SearchHandler) SearchFundis(c *gin.Context) {
	var req dto.SearchFundisRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	c.JSON(http.StatusOK, h.searchService.SearchFundis(&req))
}
