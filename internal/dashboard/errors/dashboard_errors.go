package dashboarderrors

import (
	"net/http"

	"github.com/sayan-adhikary-2025/zerohr/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrUsernameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"username is required",
		http.StatusBadRequest,
	)
)
