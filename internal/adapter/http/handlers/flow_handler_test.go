package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloudpayments_bridge/internal/domain/entities"
	mock_interfaces "cloudpayments_bridge/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestFlowHandler_GetFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	get := func(h *FlowHandler, id string) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/v1/flows/:id", h.GetFlow)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/flows/"+id, nil))
		return w
	}

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFlowRepository(ctrl)
		now := time.Now().UTC()
		repo.EXPECT().GetByID(gomock.Any(), "f-1").Return(entities.FlowRecord{
			ID: "f-1", Kind: entities.FlowKindGooglePay, Status: entities.OutcomeStatusSuccess,
			StartedAt: now.Add(-time.Second), ResolvedAt: now,
		}, nil)

		w := get(NewFlowHandler(repo), "f-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["kind"] != "googlePay" || body["status"] != "SUCCESS" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFlowRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.FlowRecord{}, nil)

		if w := get(NewFlowHandler(repo), "missing"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIFlowRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "f-1").Return(entities.FlowRecord{}, errors.New("down"))

		w := get(NewFlowHandler(repo), "f-1")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"code":"INTERNAL_ERROR","message":"An internal error occurred"}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}
