package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidInput = "invalid input"
	msgInternal     = "internal server error"
)

// contextUserIDKey is where the auth middleware stores the caller id.
const contextUserIDKey = "userId"

// authedUserID returns the user id bound by the middleware. Handlers
// behind the guard may assume it is always present.
func authedUserID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}

// jsonMessage writes the uniform {"message": ...} body.
func (h *Handler) jsonMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// logAndJSONError logs the underlying error and answers with a uniform
// message body, never leaking internals to the client.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	h.jsonMessage(c, httpCode, userMsg)
}

// bindJSONOrReject binds the request body into dst and writes a 400
// with field-level detail on failure. Returns false if the request was
// already handled.
func (h *Handler) bindJSONOrReject(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("request_body_rejected", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"message": msgInvalidInput,
			"error":   validationDetail(err),
		})
		return false
	}
	return true
}

// validationDetail flattens validator errors into field -> reason so
// clients can surface them next to the offending form field.
func validationDetail(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	detail := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		detail[fe.Field()] = fieldMessage(fe)
	}
	return detail
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
