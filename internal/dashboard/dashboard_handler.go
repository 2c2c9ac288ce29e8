package dashboard

import (
	"net/http"

	"github.com/sayan-adhikary-2025/zerohr/internal/shared/apperror"
	"github.com/sayan-adhikary-2025/zerohr/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (ctrl *Handler) Summary(c *gin.Context) {
	resp, err := ctrl.service.Summary(c.Request.Context(), c.Query("username"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
