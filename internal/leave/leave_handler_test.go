package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sayan-adhikary-2025/zerohr/internal/leave"
	leaveerrors "github.com/sayan-adhikary-2025/zerohr/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	applyFn    func(ctx context.Context, req leave.ApplyLeaveRequest) (*leave.LeaveRequestResponse, error)
	decideFn   func(ctx context.Context, leaveID, action string) (*leave.DecisionResponse, error)
	overviewFn func(ctx context.Context, userID string) (*leave.OverviewResponse, error)
}

func (f *fakeLeaveService) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (*leave.LeaveRequestResponse, error) {
	return f.applyFn(ctx, req)
}
func (f *fakeLeaveService) Decide(ctx context.Context, leaveID, action string) (*leave.DecisionResponse, error) {
	return f.decideFn(ctx, leaveID, action)
}
func (f *fakeLeaveService) Overview(ctx context.Context, userID string) (*leave.OverviewResponse, error) {
	return f.overviewFn(ctx, userID)
}

func setupLeaveRouter(svc leave.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := leave.NewHandler(svc, nil)
	r.POST("/leave/apply", h.Apply)
	r.POST("/leave/action", h.Action)
	r.GET("/leave/:user_id", h.Overview)
	return r
}

func TestLeaveHandler_Action(t *testing.T) {
	t.Run("success returns decision envelope", func(t *testing.T) {
		leaveID := uuid.New().String()
		svc := &fakeLeaveService{
			decideFn: func(ctx context.Context, id, action string) (*leave.DecisionResponse, error) {
				assert.Equal(t, leaveID, id)
				assert.Equal(t, leave.StatusAccepted, action)
				return &leave.DecisionResponse{
					LeaveID: id,
					Status:  action,
					Message: "Leave accepted and balance updated",
				}, nil
			},
		}
		r := setupLeaveRouter(svc)

		body := `{"leave_id":"` + leaveID + `","action":"Accepted"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave/action", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		assert.Nil(t, env.Error)
		assert.Contains(t, string(env.Data), "Leave accepted and balance updated")
	})

	t.Run("negative already processed maps to 400 conflict", func(t *testing.T) {
		svc := &fakeLeaveService{
			decideFn: func(ctx context.Context, id, action string) (*leave.DecisionResponse, error) {
				return nil, leaveerrors.ErrAlreadyProcessed
			},
		}
		r := setupLeaveRouter(svc)

		body := `{"leave_id":"` + uuid.New().String() + `","action":"Rejected"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave/action", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "CONFLICT", env.Error.Code)
		assert.Equal(t, "leave already processed", env.Error.Message)
	})

	t.Run("negative missing request maps to 404", func(t *testing.T) {
		svc := &fakeLeaveService{
			decideFn: func(ctx context.Context, id, action string) (*leave.DecisionResponse, error) {
				return nil, leaveerrors.ErrLeaveNotFound
			},
		}
		r := setupLeaveRouter(svc)

		body := `{"leave_id":"` + uuid.New().String() + `","action":"Accepted"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave/action", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("negative invalid action rejected by binding", func(t *testing.T) {
		svc := &fakeLeaveService{
			decideFn: func(ctx context.Context, id, action string) (*leave.DecisionResponse, error) {
				t.Fatal("service must not be called")
				return nil, nil
			},
		}
		r := setupLeaveRouter(svc)

		body := `{"leave_id":"` + uuid.New().String() + `","action":"Approved"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave/action", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})
}

func TestLeaveHandler_Apply(t *testing.T) {
	t.Run("success returns 201", func(t *testing.T) {
		svc := &fakeLeaveService{
			applyFn: func(ctx context.Context, req leave.ApplyLeaveRequest) (*leave.LeaveRequestResponse, error) {
				return &leave.LeaveRequestResponse{
					ID:       uuid.New().String(),
					Username: req.Username,
					Kind:     req.Kind,
					Status:   leave.StatusPending,
				}, nil
			},
		}
		r := setupLeaveRouter(svc)

		body := `{"username":"asha","leave_wfh":"WFH","from_date":"2026-09-01","to_date":"2026-09-01","reason":"remote"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave/apply", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative missing reason fails binding", func(t *testing.T) {
		svc := &fakeLeaveService{
			applyFn: func(ctx context.Context, req leave.ApplyLeaveRequest) (*leave.LeaveRequestResponse, error) {
				t.Fatal("service must not be called")
				return nil, nil
			},
		}
		r := setupLeaveRouter(svc)

		body := `{"username":"asha","leave_wfh":"WFH","from_date":"2026-09-01","to_date":"2026-09-01"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave/apply", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_Overview(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeLeaveService{
			overviewFn: func(ctx context.Context, uid string) (*leave.OverviewResponse, error) {
				assert.Equal(t, userID, uid)
				return &leave.OverviewResponse{
					RemainingSL: 1.5,
					History:     []leave.LeaveRequestResponse{},
				}, nil
			},
		}
		r := setupLeaveRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/leave/"+userID, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"remaining_sl":1.5`)
	})

	t.Run("negative missing balance maps to 404", func(t *testing.T) {
		svc := &fakeLeaveService{
			overviewFn: func(ctx context.Context, uid string) (*leave.OverviewResponse, error) {
				return nil, leaveerrors.ErrBalanceNotFound
			},
		}
		r := setupLeaveRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/leave/"+uuid.New().String(), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "leave master not found", env.Error.Message)
	})
}
