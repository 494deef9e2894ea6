package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloudpayments_bridge/internal/adapter/http/handlers/mocks"
	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/infrastructure/sandbox"
	mock_interfaces "cloudpayments_bridge/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newHostRouter(h *HostHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/host/attach", h.Attach)
	r.POST("/v1/host/detach", h.Detach)
	r.POST("/v1/host/activity-result", h.ActivityResult)
	r.GET("/v1/host/surfaces", h.Surfaces)
	r.POST("/v1/host/3ds/:transactionId/complete", h.CompleteChallenge)
	r.POST("/v1/host/3ds/:transactionId/fail", h.FailChallenge)
	r.POST("/v1/host/3ds/:transactionId/cancel", h.CancelChallenge)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func handledChan(v bool) <-chan bool {
	ch := make(chan bool, 1)
	ch <- v
	return ch
}

func TestHostHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("attach", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bridge := mocks.NewMockIBridgeUseCase(ctrl)
		host := sandbox.NewHost(sandbox.NewChallengePresenter())
		r := newHostRouter(NewHostHandler(bridge, host))

		bridge.EXPECT().Attach(gomock.Any()).Do(func(ui any) {
			if ui.(*sandbox.Activity).ID() != "main" {
				t.Fatalf("unexpected ui %v", ui)
			}
		})

		w := doJSON(r, http.MethodPost, "/v1/host/attach", `{"activityId":"main"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if host.Current() == nil || host.Current().ID() != "main" {
			t.Fatalf("host not attached")
		}
	})

	t.Run("attach requires activity id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bridge := mocks.NewMockIBridgeUseCase(ctrl)
		r := newHostRouter(NewHostHandler(bridge, sandbox.NewHost(sandbox.NewChallengePresenter())))

		w := doJSON(r, http.MethodPost, "/v1/host/attach", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("config change uses reattach and detach for config changes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bridge := mocks.NewMockIBridgeUseCase(ctrl)
		host := sandbox.NewHost(sandbox.NewChallengePresenter())
		r := newHostRouter(NewHostHandler(bridge, host))

		gomock.InOrder(
			bridge.EXPECT().DetachForConfigChanges(),
			bridge.EXPECT().Reattach(gomock.Any()),
		)

		if w := doJSON(r, http.MethodPost, "/v1/host/detach?configChange=true", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPost, "/v1/host/attach?configChange=true", `{"activityId":"rotated"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("detach", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bridge := mocks.NewMockIBridgeUseCase(ctrl)
		host := sandbox.NewHost(sandbox.NewChallengePresenter())
		host.Attach("main")
		r := newHostRouter(NewHostHandler(bridge, host))

		bridge.EXPECT().Detach()

		w := doJSON(r, http.MethodPost, "/v1/host/detach", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if host.Current() != nil {
			t.Fatalf("expected no current activity")
		}
	})
}

func TestHostHandler_ActivityResult(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("handled result dismisses the payment sheet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bridge := mocks.NewMockIBridgeUseCase(ctrl)
		host := sandbox.NewHost(sandbox.NewChallengePresenter())
		activity := host.Attach("main")
		client, _ := sandbox.PaymentsClientFactory{}.CreatePaymentsClient(activity, entities.EnvironmentTest)
		_ = client.LoadPaymentData(activity, json.RawMessage(`{}`), entities.LoadPaymentDataRequestCode)
		r := newHostRouter(NewHostHandler(bridge, host))

		bridge.EXPECT().DeliverActivityResult(entities.ActivityResult{
			RequestCode: entities.LoadPaymentDataRequestCode,
			ResultCode:  entities.ResultCodeCanceled,
		}).Return(handledChan(true))

		w := doJSON(r, http.MethodPost, "/v1/host/activity-result", `{"requestCode":991,"resultCode":0}`)
		if w.Code != http.StatusOK || w.Body.String() != `{"handled":true}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
		if len(activity.Surfaces()) != 0 {
			t.Fatalf("payment sheet still shown")
		}
	})

	t.Run("unhandled result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bridge := mocks.NewMockIBridgeUseCase(ctrl)
		r := newHostRouter(NewHostHandler(bridge, sandbox.NewHost(sandbox.NewChallengePresenter())))

		bridge.EXPECT().DeliverActivityResult(gomock.Any()).Return(handledChan(false))

		w := doJSON(r, http.MethodPost, "/v1/host/activity-result", `{"requestCode":42,"resultCode":-1}`)
		if w.Body.String() != `{"handled":false}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing codes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bridge := mocks.NewMockIBridgeUseCase(ctrl)
		r := newHostRouter(NewHostHandler(bridge, sandbox.NewHost(sandbox.NewChallengePresenter())))

		w := doJSON(r, http.MethodPost, "/v1/host/activity-result", `{"requestCode":991}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestHostHandler_Challenges(t *testing.T) {
	gin.SetMode(gin.TestMode)
	req := entities.ChallengeRequest{AcsURL: "https://acs", TransactionID: "tx-1", PaReq: "pareq"}

	setup := func(t *testing.T) (*gin.Engine, *sandbox.Host, *mock_interfaces.MockIChallengeListener) {
		ctrl := gomock.NewController(t)
		bridge := mocks.NewMockIBridgeUseCase(ctrl)
		listener := mock_interfaces.NewMockIChallengeListener(ctrl)
		host := sandbox.NewHost(sandbox.NewChallengePresenter())
		activity := host.Attach("main")
		if err := host.Presenter().Present(activity, req, listener); err != nil {
			t.Fatalf("present: %v", err)
		}
		return newHostRouter(NewHostHandler(bridge, host)), host, listener
	}

	t.Run("surfaces list the challenge", func(t *testing.T) {
		r, _, _ := setup(t)
		w := doJSON(r, http.MethodGet, "/v1/host/surfaces", "")
		var body struct {
			ActivityID string            `json:"activityId"`
			Surfaces   []sandbox.Surface `json:"surfaces"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.ActivityID != "main" || len(body.Surfaces) != 1 || body.Surfaces[0].TransactionID != "tx-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("complete", func(t *testing.T) {
		r, _, listener := setup(t)
		listener.EXPECT().OnAuthorizationCompleted("md-1", "pares-1")

		w := doJSON(r, http.MethodPost, "/v1/host/3ds/tx-1/complete", `{"md":"md-1","paRes":"pares-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		w = doJSON(r, http.MethodPost, "/v1/host/3ds/tx-1/complete", `{"md":"md-1","paRes":"pares-1"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 on second completion, got %d", w.Code)
		}
	})

	t.Run("fail without body", func(t *testing.T) {
		r, _, listener := setup(t)
		listener.EXPECT().OnAuthorizationFailed(nil)

		w := doJSON(r, http.MethodPost, "/v1/host/3ds/tx-1/fail", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		r, host, listener := setup(t)
		listener.EXPECT().OnCancel()

		w := doJSON(r, http.MethodPost, "/v1/host/3ds/tx-1/cancel", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if len(host.Current().Surfaces()) != 0 {
			t.Fatalf("challenge still shown")
		}
	})

	t.Run("unknown transaction", func(t *testing.T) {
		r, _, _ := setup(t)
		w := doJSON(r, http.MethodPost, "/v1/host/3ds/nope/cancel", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
