// Package docs регистрирует описание API для swag и http-swagger.
// Шаблон соответствует аннотациям обработчиков; при их изменении
// пересоберите его командой swag init -g cmd/trading-api/main.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {"get": {"tags": ["root"], "summary": "Приветствие", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Message"}}}}},
        "/auth/jwt/login": {"post": {"tags": ["auth"], "summary": "Вход", "consumes": ["application/x-www-form-urlencoded"],
            "parameters": [
                {"type": "string", "description": "E-mail", "name": "username", "in": "formData", "required": true},
                {"type": "string", "description": "Пароль", "name": "password", "in": "formData", "required": true}],
            "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/auth/jwt/logout": {"post": {"tags": ["auth"], "summary": "Выход", "security": [{"CookieAuth": []}],
            "responses": {"204": {"description": "No Content"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Регистрация", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"description": "Данные пользователя", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UserCreate"}}],
            "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/auth/forgot-password": {"post": {"tags": ["auth"], "summary": "Запрос сброса пароля", "consumes": ["application/json"],
            "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.EmailRequest"}}],
            "responses": {"202": {"description": "Accepted"}}}},
        "/auth/reset-password": {"post": {"tags": ["auth"], "summary": "Сброс пароля", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.ResetRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/auth/request-verify-token": {"post": {"tags": ["auth"], "summary": "Запрос подтверждения e-mail", "consumes": ["application/json"],
            "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.EmailRequest"}}],
            "responses": {"202": {"description": "Accepted"}}}},
        "/auth/verify": {"post": {"tags": ["auth"], "summary": "Подтверждение e-mail", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.TokenRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/users/": {"get": {"tags": ["users"], "summary": "Список пользователей", "produces": ["application/json"],
            "parameters": [
                {"type": "integer", "description": "Сколько вернуть", "name": "limit", "in": "query"},
                {"type": "integer", "description": "Сколько пропустить", "name": "offset", "in": "query"}],
            "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.User"}}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/users/me": {
            "get": {"tags": ["users"], "summary": "Текущий пользователь", "security": [{"CookieAuth": []}], "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}},
            "patch": {"tags": ["users"], "summary": "Обновление профиля", "security": [{"CookieAuth": []}], "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UserUpdate"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/users/{id}/": {
            "get": {"tags": ["users"], "summary": "Пользователь по ID", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}},
            "post": {"tags": ["users"], "summary": "Смена username", "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "new_username", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Echo"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}},
        "/roles/": {"get": {"tags": ["roles"], "summary": "Список ролей", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Role"}}}}}},
        "/trades/": {
            "get": {"tags": ["trades"], "summary": "Список сделок", "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "default": 3, "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "name": "offset", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Trade"}}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}},
            "post": {"tags": ["trades"], "summary": "Добавление сделок", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/models.TradeCreate"}}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Echo"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}}
    },
    "definitions": {
        "auth.EmailRequest": {"type": "object", "required": ["email"], "properties": {"email": {"type": "string"}}},
        "auth.TokenRequest": {"type": "object", "required": ["token"], "properties": {"token": {"type": "string"}}},
        "auth.ResetRequest": {"type": "object", "required": ["token", "password"], "properties": {"token": {"type": "string"}, "password": {"type": "string"}}},
        "models.User": {"type": "object", "properties": {
            "id": {"type": "integer"}, "email": {"type": "string"}, "is_active": {"type": "boolean"},
            "is_superuser": {"type": "boolean"}, "is_verified": {"type": "boolean"},
            "name_first": {"type": "string"}, "name_second": {"type": "string"},
            "registered_at": {"type": "string"}, "role_id": {"type": "integer"}, "username": {"type": "string"}}},
        "models.UserCreate": {"type": "object", "required": ["email", "password", "username"], "properties": {
            "email": {"type": "string", "maxLength": 150}, "password": {"type": "string"},
            "name_first": {"type": "string", "maxLength": 50}, "name_second": {"type": "string", "maxLength": 50},
            "username": {"type": "string", "maxLength": 100}}},
        "models.UserUpdate": {"type": "object", "properties": {
            "email": {"type": "string", "maxLength": 150}, "password": {"type": "string"},
            "name_first": {"type": "string", "maxLength": 50}, "name_second": {"type": "string", "maxLength": 50},
            "username": {"type": "string", "maxLength": 100}}},
        "models.Role": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string", "enum": ["bronze", "silver", "gold", "platinum"]}, "permissions": {"type": "object"}}},
        "models.Trade": {"type": "object", "properties": {
            "id": {"type": "integer"}, "user_id": {"type": "integer"}, "currency": {"type": "string"},
            "side": {"type": "string"}, "price": {"type": "number", "example": 123}, "amount": {"type": "number", "example": 2.12}}},
        "models.TradeCreate": {"type": "object", "required": ["id", "user_id", "currency", "side", "price", "amount"], "properties": {
            "id": {"type": "integer"}, "user_id": {"type": "integer"}, "currency": {"type": "string", "maxLength": 3},
            "side": {"type": "string"}, "price": {"type": "number", "minimum": 0, "example": 123}, "amount": {"type": "number", "example": 2.12}}},
        "response.ErrorResponse": {"type": "object", "properties": {
            "status": {"type": "string", "example": "Error"}, "error": {"type": "string"},
            "details": {"type": "array", "items": {"$ref": "#/definitions/response.FieldError"}}}},
        "response.FieldError": {"type": "object", "properties": {"field": {"type": "string"}, "rule": {"type": "string"}, "value": {"type": "string"}}},
        "response.Echo": {"type": "object", "properties": {"status": {"type": "integer", "example": 200}, "data": {}}},
        "response.Message": {"type": "object", "properties": {"message": {"type": "string"}}}
    },
    "securityDefinitions": {
        "CookieAuth": {"type": "apiKey", "name": "auth_cookie", "in": "cookie"}
    }
}`

// SwaggerInfo содержит экспортируемую информацию Swagger, чтобы клиенты могли её изменить.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Trading Platform API",
	Description:      "API торговой платформы: пользователи, роли и сделки",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
