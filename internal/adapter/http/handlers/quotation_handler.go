package handlers

import (
	"errors"
	"net/http"

	request "alufab_quotes/internal/adapter/http/dto/request"
	response "alufab_quotes/internal/adapter/http/dto/response"
	"alufab_quotes/internal/usecase"
	"alufab_quotes/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)

// QuotationHandler handles pricing previews and the quotation revision
// lifecycle.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// ComputeRow prices a single row without persisting anything. It backs the
// editor's live preview.
func (h *QuotationHandler) ComputeRow(c *gin.Context) {
	var payload request.ComputeRowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	row, err := h.usecase.ComputeRow(c.Request.Context(), payload.Row.ToEntity(), payload.Header.ToEntity())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComputedRow(row))
}

// ComputeTotals prices the submitted rows and aggregates them into invoice
// totals, again without persisting.
func (h *QuotationHandler) ComputeTotals(c *gin.Context) {
	var payload request.ComputeTotalsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	totals, err := h.usecase.ComputeTotals(c.Request.Context(), request.ToRowEntities(payload.Rows), payload.Header.ToEntity())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTotals(totals))
}

// SaveDraft writes the submitted document as the project's next revision,
// or reports it unchanged.
func (h *QuotationHandler) SaveDraft(c *gin.Context) {
	var payload request.SaveDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.SaveDraft(c.Request.Context(), c.Param("project_id"), payload.Header.ToEntity(), request.ToRowEntities(payload.Rows))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if res.Unchanged {
		status = http.StatusOK
	}
	c.JSON(status, response.SaveDraftResponse{
		Quotation: response.FromQuotation(res.Quotation),
		Unchanged: res.Unchanged,
	})
}

func (h *QuotationHandler) ListRevisions(c *gin.Context) {
	revisions, err := h.usecase.ListRevisions(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotations(revisions))
}

// Diff compares two saved revisions of the same project. Revision ids come
// from the older/newer query params.
func (h *QuotationHandler) Diff(c *gin.Context) {
	older := c.Query("older")
	newer := c.Query("newer")
	if older == "" || newer == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Both older and newer quotation ids are required", http.StatusBadRequest).ToHTTPError())
		return
	}

	changes, err := h.usecase.DiffRevisions(c.Request.Context(), older, newer)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDiff(older, newer, changes))
}

func (h *QuotationHandler) GetByID(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) List(c *gin.Context) {
	quotations, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotations(quotations))
}

func (h *QuotationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrNoRows),
		errors.Is(err, usecase.ErrDifferentProjects):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRevisionConflict):
		return pkg.NewDomainErrorSimple("REVISION_CONFLICT", "Another revision was saved concurrently, reload and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
