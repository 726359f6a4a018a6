// Package validation настраивает go-playground/validator для входных структур HTTP-слоя.
//
// Помимо стандартных тегов регистрируются email_pattern и username_pattern,
// совпадающие с правилами, которые модели применяют при записи.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/trading-platform/internal/models"
)

// Теги пользовательских правил.
const (
	TagEmail    = "email_pattern"
	TagUsername = "username_pattern"
)

// New возвращает валидатор с зарегистрированными правилами проекта.
// В ошибках используются json-имена полей.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation(TagEmail, func(fl validator.FieldLevel) bool {
		return models.EmailValid(fl.Field().String())
	})
	_ = v.RegisterValidation(TagUsername, func(fl validator.FieldLevel) bool {
		return models.UsernameValid(fl.Field().String())
	})
	return v
}
