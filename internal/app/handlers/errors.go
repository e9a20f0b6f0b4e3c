package handlers

import (
	"errors"
	"net/http"

	appErrors "github.com/ujwegh/leadmart/internal/app/errors"
	"github.com/ujwegh/leadmart/internal/app/logger"
	"go.uber.org/zap"
)

const (
	errMsgEnableReadBody = "Unable to read body"
	errMsgParseBody      = "Unable to parse body"
	errMsgInvalidFields  = "Invalid fields!"
)

type (
	//easyjson:json
	ErrorResponse struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	}
	//easyjson:json
	SuccessResponse struct {
		Success string `json:"success"`
	}
)

func PrepareError(w http.ResponseWriter, err error) {
	var codeErr appErrors.ResponseCodeError
	logger.Log.Error("internal error: ", zap.Error(err))
	if errors.As(err, &codeErr) {
		WriteJSONErrorResponse(w, codeErr.Msg(), codeErr.Code())
		return
	}
	// Default error handling
	WriteJSONErrorResponse(w, "Internal Server Error", http.StatusInternalServerError)
}

func WriteJSONErrorResponse(w http.ResponseWriter, message string, code int) {
	er := ErrorResponse{
		Message: message,
		Code:    code,
	}
	w.Header().Set("Content-Type", "application/json")
	json, err := ErrorResponse.MarshalJSON(er)
	if err != nil {
		logger.Log.Error("failed to marshal error response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(code)
	w.Write(json)
}

func WriteJSONSuccessResponse(w http.ResponseWriter, message string, code int) {
	json, err := SuccessResponse{Success: message}.MarshalJSON()
	if err != nil {
		logger.Log.Error("failed to marshal success response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(json)
}

func badRequest(err error, msg string) error {
	if err == nil {
		err = errors.New(msg)
	}
	return appErrors.NewWithCode(err, msg, http.StatusBadRequest)
}
