package applicationerrors

import (
	"net/http"

	"github.com/sayan-adhikary-2025/zerohr/internal/shared/apperror"
)

var (
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"application not found",
		http.StatusNotFound,
	)
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"job posting not found",
		http.StatusNotFound,
	)
	ErrInvalidApplicationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid application id",
		http.StatusBadRequest,
	)
	ErrInvalidOrgID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid org id",
		http.StatusBadRequest,
	)
	ErrResumeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"resume file is required",
		http.StatusBadRequest,
	)
	ErrDuplicateApplication = apperror.New(
		apperror.CodeConflict,
		"an application for this job with this email already exists",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid application status",
		http.StatusBadRequest,
	)
)
