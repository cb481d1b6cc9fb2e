package handlers

import (
	"errors"
	"net/http"

	response "alufab_quotes/internal/adapter/http/dto/response"
	"alufab_quotes/internal/usecase"
	"alufab_quotes/pkg"

	"github.com/gin-gonic/gin"
)

// MTOHandler serves material take-off documents.

type MTOHandler struct {
	usecase usecase.IMTOUseCase
}

func NewMTOHandler(uc usecase.IMTOUseCase) *MTOHandler {
	return &MTOHandler{usecase: uc}
}

// Generate rebuilds the take-off for a quotation, replacing any previous one.
func (h *MTOHandler) Generate(c *gin.Context) {
	m, err := h.usecase.Generate(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapMTOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMTO(m))
}

func (h *MTOHandler) GetByQuotation(c *gin.Context) {
	m, err := h.usecase.GetByQuotation(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapMTOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMTO(m))
}

func mapMTOError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMTONotFound):
		return pkg.NewDomainErrorSimple("MTO_NOT_FOUND", "Material take-off not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
