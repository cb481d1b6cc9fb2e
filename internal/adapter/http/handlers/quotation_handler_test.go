package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"alufab_quotes/internal/adapter/http/handlers/mocks"
	"alufab_quotes/internal/domain/entities"
	"alufab_quotes/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuotationRouter(uc usecase.IQuotationUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewQuotationHandler(uc)

	r := gin.New()
	r.POST("/v1/quotations/compute-row", h.ComputeRow)
	r.POST("/v1/quotations/compute-totals", h.ComputeTotals)
	r.POST("/v1/projects/:project_id/quotations", h.SaveDraft)
	r.GET("/v1/projects/:project_id/quotations", h.ListRevisions)
	r.GET("/v1/quotations/diff", h.Diff)
	r.GET("/v1/quotations/:id", h.GetByID)
	r.GET("/v1/quotations", h.List)
	r.DELETE("/v1/quotations/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuotationHandler_ComputeRow(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		w := doJSON(t, newQuotationRouter(uc), http.MethodPost, "/v1/quotations/compute-row", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		uc.EXPECT().ComputeRow(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			entities.QuotationRow{Amount: "3501.11", Sqm: "1.000", UnknownTypology: false}, nil)

		body := `{"header":{"location":"gujarat"},"row":{"series":"p1","typology":"p1","widthMM":"1000","heightMM":1000,"qty":1}}`
		w := doJSON(t, newQuotationRouter(uc), http.MethodPost, "/v1/quotations/compute-row", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var res struct {
			Row struct {
				Amount string `json:"amount"`
			} `json:"row"`
			UnknownTypology bool `json:"unknownTypology"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res.Row.Amount != "3501.11" || res.UnknownTypology {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		uc.EXPECT().ComputeRow(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			entities.QuotationRow{}, errors.New("catalog scan failed"))

		w := doJSON(t, newQuotationRouter(uc), http.MethodPost, "/v1/quotations/compute-row", `{"row":{},"header":{}}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_ComputeTotals(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		w := doJSON(t, newQuotationRouter(uc), http.MethodPost, "/v1/quotations/compute-totals", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		var gotRows []entities.QuotationRow
		uc.EXPECT().ComputeTotals(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rows []entities.QuotationRow, _ entities.QuotationHeader) (entities.Totals, error) {
				gotRows = rows
				return entities.Totals{
					ProductsAmount: 300,
					TotalSqm:       2,
					TaxableAmount:  330,
					TaxAmount:      59.4,
					GrandTotal:     389.40,
				}, nil
			})

		body := `{"header":{"location":"gujarat","fabrication":10,"installation":5},"rows":[{"series":"p1","typology":"p1","glass":"gl-a","widthMM":"1000","heightMM":1000,"qty":1},{"series":"p1","typology":"p1","glass":"gl-b","widthMM":1000,"heightMM":1000,"qty":1}]}`
		w := doJSON(t, newQuotationRouter(uc), http.MethodPost, "/v1/quotations/compute-totals", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		if len(gotRows) != 2 || gotRows[0].WidthMM != 1000 || gotRows[0].Glass != "gl-a" {
			t.Fatalf("rows not forwarded to the usecase: %+v", gotRows)
		}

		var res struct {
			GrandTotal    float64 `json:"grandTotal"`
			TaxableAmount float64 `json:"taxableAmount"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res.GrandTotal != 389.40 || res.TaxableAmount != 330 {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		uc.EXPECT().ComputeTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			entities.Totals{}, errors.New("catalog scan failed"))

		w := doJSON(t, newQuotationRouter(uc), http.MethodPost, "/v1/quotations/compute-totals", `{"header":{},"rows":[]}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_SaveDraft(t *testing.T) {
	body := `{"header":{"location":"gujarat"},"rows":[{"series":"p1","typology":"p1","widthMM":1000,"heightMM":1000,"qty":1}]}`

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		uc.EXPECT().SaveDraft(gomock.Any(), "proj-1", gomock.Any(), gomock.Any()).Return(
			usecase.SaveResult{Quotation: entities.Quotation{ID: "q-1"}}, nil)

		w := doJSON(t, newQuotationRouter(uc), http.MethodPost, "/v1/projects/proj-1/quotations", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		uc.EXPECT().SaveDraft(gomock.Any(), "proj-1", gomock.Any(), gomock.Any()).Return(
			usecase.SaveResult{Quotation: entities.Quotation{ID: "q-1"}, Unchanged: true}, nil)

		w := doJSON(t, newQuotationRouter(uc), http.MethodPost, "/v1/projects/proj-1/quotations", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res struct {
			Unchanged bool `json:"unchanged"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || !res.Unchanged {
			t.Fatalf("expected unchanged flag: %s", w.Body.String())
		}
	})

	t.Run("revision conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		uc.EXPECT().SaveDraft(gomock.Any(), "proj-1", gomock.Any(), gomock.Any()).Return(
			usecase.SaveResult{}, usecase.ErrRevisionConflict)

		w := doJSON(t, newQuotationRouter(uc), http.MethodPost, "/v1/projects/proj-1/quotations", body)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("no rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		uc.EXPECT().SaveDraft(gomock.Any(), "proj-1", gomock.Any(), gomock.Any()).Return(
			usecase.SaveResult{}, usecase.ErrNoRows)

		w := doJSON(t, newQuotationRouter(uc), http.MethodPost, "/v1/projects/proj-1/quotations", `{"header":{},"rows":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		w := doJSON(t, newQuotationRouter(uc), http.MethodPost, "/v1/projects/proj-1/quotations", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_Diff(t *testing.T) {
	t.Run("missing params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		w := doJSON(t, newQuotationRouter(uc), http.MethodGet, "/v1/quotations/diff?older=q-1", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("different projects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		uc.EXPECT().DiffRevisions(gomock.Any(), "q-1", "q-2").Return(nil, usecase.ErrDifferentProjects)

		w := doJSON(t, newQuotationRouter(uc), http.MethodGet, "/v1/quotations/diff?older=q-1&newer=q-2", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		uc.EXPECT().DiffRevisions(gomock.Any(), "q-1", "q-2").Return([]entities.DiffEntry{
			{Path: "header.discount", Before: 0.0, After: 10.0},
		}, nil)

		w := doJSON(t, newQuotationRouter(uc), http.MethodGet, "/v1/quotations/diff?older=q-1&newer=q-2", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res struct {
			Older   string `json:"older"`
			Changes []struct {
				Path string `json:"path"`
			} `json:"changes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res.Older != "q-1" || len(res.Changes) != 1 || res.Changes[0].Path != "header.discount" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})

	t.Run("empty diff is a json array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		uc.EXPECT().DiffRevisions(gomock.Any(), "q-1", "q-2").Return(nil, nil)

		w := doJSON(t, newQuotationRouter(uc), http.MethodGet, "/v1/quotations/diff?older=q-1&newer=q-2", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"changes":[]`)) {
			t.Fatalf("expected empty changes array: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_GetDeleteList(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		uc.EXPECT().GetByID(gomock.Any(), "q-404").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		w := doJSON(t, newQuotationRouter(uc), http.MethodGet, "/v1/quotations/q-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		uc.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)

		w := doJSON(t, newQuotationRouter(uc), http.MethodDelete, "/v1/quotations/q-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("list revisions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)

		uc.EXPECT().ListRevisions(gomock.Any(), "proj-1").Return([]entities.Quotation{
			{ID: "q-0", Header: entities.QuotationHeader{Revision: 0}},
			{ID: "q-1", Header: entities.QuotationHeader{Revision: 1}},
		}, nil)

		w := doJSON(t, newQuotationRouter(uc), http.MethodGet, "/v1/projects/proj-1/quotations", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || len(res) != 2 {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}
