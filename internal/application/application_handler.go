package application

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	applicationerrors "github.com/sayan-adhikary-2025/zerohr/internal/application/errors"
	"github.com/sayan-adhikary-2025/zerohr/internal/shared/apperror"
	"github.com/sayan-adhikary-2025/zerohr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

func (ctrl *Handler) Submit(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	file, err := c.FormFile("resume")
	if err != nil {
		httpErr := apperror.ToHTTP(applicationerrors.ErrResumeRequired)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	// File names are generated server-side; the client name only supplies
	// the extension.
	name := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir(), name)); err != nil {
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Could not store resume", nil)
		return
	}
	resumeLink := "/uploads/" + name

	resp, err := ctrl.service.Submit(c.Request.Context(), req, resumeLink)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (ctrl *Handler) ListByOrg(c *gin.Context) {
	resp, err := ctrl.service.ListByOrg(c.Request.Context(), c.Param("org_id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (ctrl *Handler) GetByID(c *gin.Context) {
	resp, err := ctrl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (ctrl *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := ctrl.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
