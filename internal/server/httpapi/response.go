package httpapi

import "github.com/labstack/echo/v4"

// Stable machine-readable error codes carried in every response. The wire
// contract predates this server; codes are kept as-is for client
// compatibility even where HTTP status alone would suffice.
const (
	codeOK                     = "00000"
	codeBadRequest             = "40000"
	codeMissingFields          = "40001"
	codeUserExists             = "40002"
	codeInvalidPostID          = "40003"
	codeCommentNotFound        = "40004"
	codeCommentPostNotFound    = "40005"
	codePostUpdateForbidden    = "40006"
	codePostDeleteForbidden    = "40007"
	codePostNotFound           = "40008"
	codeWeakPassword           = "40011"
	codeContentRequired        = "40012"
	codeInvalidEmail           = "40013"
	codeInvalidCommentID       = "40014"
	codeCommentUpdateForbidden = "40016"
	codeCommentDeleteForbidden = "40017"
	codeInvalidCredentials     = "40100"
	codeInternal               = "50000"
)

type errorStatus struct {
	ErrorCode string `json:"error_code"`
}

// envelope is the uniform response body:
// {message, status, type, error_status:{error_code}, data?}.
type envelope struct {
	Message     string      `json:"message"`
	Status      bool        `json:"status"`
	Type        string      `json:"type"`
	ErrorStatus errorStatus `json:"error_status"`
	Data        any         `json:"data,omitempty"`
}

func respondOK(c echo.Context, message string, data any) error {
	return c.JSON(200, envelope{
		Message:     message,
		Status:      true,
		Type:        "success_message",
		ErrorStatus: errorStatus{ErrorCode: codeOK},
		Data:        data,
	})
}

func respondErr(c echo.Context, httpStatus int, errorCode, message string) error {
	return c.JSON(httpStatus, envelope{
		Message:     message,
		Status:      false,
		Type:        "custom_error",
		ErrorStatus: errorStatus{ErrorCode: errorCode},
	})
}
