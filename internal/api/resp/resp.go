package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eatda/internal/apperr"
	"eatda/pkg/logger"
)

// ErrorResp is the body of every failed request.
type ErrorResp struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error renders business errors with their own status. Anything else is logged
// and hidden behind INTERNAL_SERVER_ERROR.
func Error(c *gin.Context, err error) {
	if be, ok := apperr.From(err); ok {
		c.JSON(be.Code.Status, ErrorResp{Code: be.Code.Name, Message: be.Code.Message})
		return
	}

	logger.FromContext(c.Request.Context()).Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	code := apperr.InternalServerError
	c.JSON(code.Status, ErrorResp{Code: code.Name, Message: code.Message})
}

// Abort renders code and stops the handler chain.
func Abort(c *gin.Context, code apperr.Code) {
	c.AbortWithStatusJSON(code.Status, ErrorResp{Code: code.Name, Message: code.Message})
}

// BindError reports a request binding failure as BAD_REQUEST.
func BindError(c *gin.Context, err error) {
	logger.FromContext(c.Request.Context()).Debug("bind request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	code := apperr.BadRequest
	c.JSON(code.Status, ErrorResp{Code: code.Name, Message: code.Message})
}
