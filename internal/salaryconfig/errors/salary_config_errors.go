package salaryconfigerrors

import (
	"net/http"

	"onebiz-payroll/internal/shared/apperror"
)

var (
	ErrInvalidPayType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid pay type, expected monthly or hourly",
		http.StatusBadRequest,
	)
	ErrInvalidConfigValue = apperror.New(
		apperror.CodeInvalidState,
		"salary config value is not numeric",
		http.StatusUnprocessableEntity,
	)
	ErrDuplicateConfigKey = apperror.New(
		apperror.CodeInvalidState,
		"salary config key has more than one active row",
		http.StatusUnprocessableEntity,
	)
)
