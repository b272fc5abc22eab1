package pkg

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/simp-lee/warecat/internal/domain"
)

// Response is the uniform JSON envelope for every API result. Exactly one
// shape serves both success and failure paths; failures carry an ErrorBody
// and no data.
type Response struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Message   string     `json:"message,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// ErrorBody carries the stable machine-readable outcome of a failed request.
type ErrorBody struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Success sends a 200 envelope with the given data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// SuccessWithMessage sends an envelope with data and an operation message,
// e.g. 201 "created" or 200 "updated".
func SuccessWithMessage(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// Error renders err through the error taxonomy. Server-class failures are
// logged with their full cause but rendered with the generic taxonomy
// message, so storage detail never leaks to callers.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)
	code := domain.ErrorCode(err)

	msg := "internal server error"
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}

	if status >= http.StatusInternalServerError || status == http.StatusBadGateway {
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("code", code),
			slog.Any("error", err),
		)
	}

	now := time.Now().UTC()
	c.JSON(status, Response{
		Success: false,
		Error: &ErrorBody{
			Code:      code,
			Message:   msg,
			Timestamp: now,
		},
		Timestamp: now,
	})
}

// BindAndValidate binds the request body to obj and validates it. On failure
// it sends a VALIDATION_ERROR envelope and returns false. Validation happens
// entirely here; invalid payloads never reach the repository layer.
//
// Usage in handlers:
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		validationError(c, err, obj)
		return false
	}
	return true
}

// ActorID resolves the acting principal for audit attribution from the
// X-Actor-ID header. Returns nil when absent or malformed; authentication is
// out of scope for this service.
func ActorID(c *gin.Context) *int {
	raw := strings.TrimSpace(c.GetHeader("X-Actor-ID"))
	if raw == "" {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return nil
	}
	return &id
}

// validationError sends a 400 envelope. When the error is a
// validator.ValidationErrors, per-field messages are attached, using JSON tag
// names resolved from obj where possible.
func validationError(c *gin.Context, err error, obj any) {
	now := time.Now().UTC()
	body := &ErrorBody{
		Code:      domain.CodeValidation,
		Message:   "validation error",
		Timestamp: now,
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		jsonTags := buildJSONTagMap(obj)
		details := make(map[string]string, len(ve))
		for _, fe := range ve {
			name := strings.ToLower(fe.Field())
			if tag, ok := jsonTags[fe.StructField()]; ok {
				name = tag
			}
			msg := fe.Tag()
			if fe.Param() != "" {
				msg += "=" + fe.Param()
			}
			details[name] = msg
		}
		body.Details = details
	} else {
		body.Message = err.Error()
	}

	c.JSON(http.StatusBadRequest, Response{
		Success:   false,
		Error:     body,
		Timestamp: now,
	})
}

// buildJSONTagMap returns a map from struct field name to its JSON tag name.
// Returns nil for non-struct values.
func buildJSONTagMap(obj any) map[string]string {
	if obj == nil {
		return nil
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	m := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if name := parseJSONTagName(tag); name != "" {
			m[t.Field(i).Name] = name
		}
	}
	return m
}

// parseJSONTagName extracts the field name from a JSON struct tag value.
func parseJSONTagName(tag string) string {
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return ""
	}
	return name
}
