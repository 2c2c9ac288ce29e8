package leave

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sayan-adhikary-2025/zerohr/internal/shared/apperror"
	"github.com/sayan-adhikary-2025/zerohr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(s Service, rdb *redis.Client) *Handler {
	return &Handler{service: s, rdb: rdb}
}

func (ctrl *Handler) Apply(c *gin.Context) {
	var req ApplyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := ctrl.service.Apply(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (ctrl *Handler) Action(c *gin.Context) {
	var req LeaveActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.releaseIdempotencyLock(c)
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := ctrl.service.Decide(c.Request.Context(), req.LeaveID, req.Action)
	if err != nil {
		ctrl.releaseIdempotencyLock(c)
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	ctrl.cacheIdempotentResponse(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (ctrl *Handler) Overview(c *gin.Context) {
	userID := c.Param("user_id")

	resp, err := ctrl.service.Overview(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// cacheIdempotentResponse stores the successful decision under the key the
// idempotency middleware set, so a retried request replays the same answer.
func (ctrl *Handler) cacheIdempotentResponse(c *gin.Context, resp *DecisionResponse) {
	if ctrl.rdb == nil {
		return
	}
	cacheKey := c.GetString("idempotency_cache_key")
	if cacheKey == "" {
		return
	}

	if payload, err := json.Marshal(resp); err == nil {
		ctrl.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour)
	}
	if lockKey := c.GetString("idempotency_lock_key"); lockKey != "" {
		ctrl.rdb.Del(c.Request.Context(), lockKey)
	}
}

// releaseIdempotencyLock frees the in-flight lock on failure so the client
// can retry immediately instead of waiting out the lock TTL.
func (ctrl *Handler) releaseIdempotencyLock(c *gin.Context) {
	if ctrl.rdb == nil {
		return
	}
	if lockKey := c.GetString("idempotency_lock_key"); lockKey != "" {
		ctrl.rdb.Del(c.Request.Context(), lockKey)
	}
}
