package routes

import (
	"alufab_quotes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathProjects   = "/projects"
	PathMTO        = "/mto"
)

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler, mtoHandler *handlers.MTOHandler) {
	quotations := rg.Group(PathQuotations)
	{
		// Stateless pricing previews for the editor.
		quotations.POST("/compute-row", quotationHandler.ComputeRow)
		quotations.POST("/compute-totals", quotationHandler.ComputeTotals)

		// Diff goes before /:id so gin does not treat "diff" as an id.
		quotations.GET("/diff", quotationHandler.Diff)
		quotations.GET("", quotationHandler.List)
		quotations.GET("/:id", quotationHandler.GetByID)
		quotations.DELETE("/:id", quotationHandler.Delete)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("/:project_id/quotations", quotationHandler.SaveDraft)
		projects.GET("/:project_id/quotations", quotationHandler.ListRevisions)
	}

	mto := rg.Group(PathMTO)
	{
		mto.POST("/:quotation_id", mtoHandler.Generate)
		mto.GET("/:quotation_id", mtoHandler.GetByQuotation)
	}
}
