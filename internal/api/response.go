package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse is the envelope of every API response.
type JSONResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(ctx *gin.Context, status, code int, message string, data any) {
	ctx.JSON(status, JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

func success(ctx *gin.Context, data any) {
	respond(ctx, http.StatusOK, 0, "success", data)
}

func created(ctx *gin.Context, data any) {
	respond(ctx, http.StatusCreated, 0, "created", data)
}

func fail(ctx *gin.Context, status, code int, message string) {
	respond(ctx, status, code, message, nil)
}
