package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ges_rdo/internal/adapter/http/handlers/mocks"
	"ges_rdo/internal/domain/timesheet"
	"ges_rdo/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTimesheetHandler_GetMonthlyTimesheet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimesheetUseCase(ctrl)
		h := NewTimesheetHandler(uc)

		r := gin.New()
		r.GET("/v1/usuarios/:usuario_id/ficha/:competencia", h.GetMonthlyTimesheet)

		uc.EXPECT().MonthlyTimesheet(gomock.Any(), "u-1", "01-2026").Return(usecase.Timesheet{}, usecase.ErrInvalidMonth)

		req := httptest.NewRequest(http.MethodGet, "/v1/usuarios/u-1/ficha/01-2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimesheetUseCase(ctrl)
		h := NewTimesheetHandler(uc)

		r := gin.New()
		r.GET("/v1/usuarios/:usuario_id/ficha/:competencia", h.GetMonthlyTimesheet)

		uc.EXPECT().MonthlyTimesheet(gomock.Any(), "u-1", "2026-01").Return(usecase.Timesheet{
			UserID: "u-1",
			Start:  "2026-01-01",
			End:    "2026-01-31",
			Days:   []timesheet.DaySummary{{Date: "2026-01-01"}},
			Totals: timesheet.MonthTotals{PayableTotal: 160},
			Admin:  timesheet.AdminSummary{WeeklyPremium50: 162},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/usuarios/u-1/ficha/2026-01", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["usuario_id"] != "u-1" {
			t.Fatalf("expected usuario_id u-1, got %v", body["usuario_id"])
		}
		totals, ok := body["totais"].(map[string]any)
		if !ok || totals["total_pago"] != float64(160) {
			t.Fatalf("unexpected totals: %v", body["totais"])
		}
		admin, ok := body["resumo_adm"].(map[string]any)
		if !ok || admin["horas_semanais_50"] != float64(162) {
			t.Fatalf("unexpected resumo adm: %v", body["resumo_adm"])
		}
	})
}

func TestTimesheetHandler_GetRangeTimesheet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimesheetUseCase(ctrl)
		h := NewTimesheetHandler(uc)

		r := gin.New()
		r.GET("/v1/usuarios/:usuario_id/ficha", h.GetRangeTimesheet)

		uc.EXPECT().RangeTimesheet(gomock.Any(), "u-1", "", "").Return(usecase.Timesheet{}, usecase.ErrInvalidRange)

		req := httptest.NewRequest(http.MethodGet, "/v1/usuarios/u-1/ficha", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITimesheetUseCase(ctrl)
		h := NewTimesheetHandler(uc)

		r := gin.New()
		r.GET("/v1/usuarios/:usuario_id/ficha", h.GetRangeTimesheet)

		uc.EXPECT().RangeTimesheet(gomock.Any(), "u-1", "2026-01-05", "2026-01-09").
			Return(usecase.Timesheet{UserID: "u-1", Start: "2026-01-05", End: "2026-01-09"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/usuarios/u-1/ficha?inicio=2026-01-05&fim=2026-01-09", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
