// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков: успешных ответов,
// ошибок и сообщений валидации.
package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/trading-platform/internal/lib/validation"
	"github.com/magabrotheeeer/trading-platform/internal/models"
)

const (
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// ErrorResponse — тело ответа с ошибкой.
// Details заполняется только в режиме отладки.
type ErrorResponse struct {
	Status  string       `json:"status" example:"Error"`
	Error   string       `json:"error" example:"invalid request body"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError описывает нарушение правила для одного поля.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value string `json:"value,omitempty"`
}

// Echo — тело ответа вида {"status":200,"data":...}.
type Echo struct {
	Status int `json:"status" example:"200"`
	Data   any `json:"data"`
}

// Message тело ответа с единственным полем message.
type Message struct {
	Message string `json:"message" example:"Hello, Human!"`
}

// OK возвращает Echo со статусом 200.
func OK(data any) Echo {
	return Echo{
		Status: http.StatusOK,
		Data:   data,
	}
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// Fail пишет ответ с ошибкой и кодом status.
func Fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, Error(msg))
}

// ValidationError формирует ErrorResponse на основе ошибок валидатора.
// Каждое нарушение превращается в человеко‑читаемый текст; тексты
// объединяются через запятую.
func ValidationError(ctx context.Context, errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string
	var details []FieldError

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at most %s characters", err.Field(), err.Param()))
		case "min", "gte":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param()))
		case validation.TagEmail:
			errsMsgs = append(errsMsgs, models.InvalidEmailMessage)
		case validation.TagUsername:
			errsMsgs = append(errsMsgs, models.InvalidUsernameMessage)
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
		details = append(details, FieldError{
			Field: err.Field(),
			Rule:  err.ActualTag(),
			Value: fmt.Sprint(err.Value()),
		})
	}

	resp := Error(strings.Join(errsMsgs, ", "))
	if IsDebug(ctx) {
		resp.Details = details
	}
	return resp
}

// Validation пишет 400 для ошибки валидации: либо ошибок валидатора,
// либо models.ValidationError, пришедшей со слоя хранения.
func Validation(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		render.JSON(w, r, ValidationError(r.Context(), verrs))
		return
	}

	resp := Error(err.Error())
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		resp.Error = ve.Message
		if IsDebug(r.Context()) {
			resp.Details = []FieldError{{Field: ve.Field, Rule: "format"}}
		}
	}
	render.JSON(w, r, resp)
}

// ServerError пишет 500. Текст внутренней ошибки виден клиенту
// только в режиме отладки.
func ServerError(w http.ResponseWriter, r *http.Request, err error) {
	msg := "internal server error"
	if IsDebug(r.Context()) && err != nil {
		msg = err.Error()
	}
	Fail(w, r, http.StatusInternalServerError, msg)
}

type debugKey struct{}

// WithDebug помечает контекст запроса флагом режима отладки.
func WithDebug(ctx context.Context, debug bool) context.Context {
	return context.WithValue(ctx, debugKey{}, debug)
}

// IsDebug сообщает, включён ли режим отладки для запроса.
func IsDebug(ctx context.Context) bool {
	debug, _ := ctx.Value(debugKey{}).(bool)
	return debug
}
