package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RoleName — название уровня учётной записи.
type RoleName string

// Уровни перечислены от младшего к старшему.
const (
	RoleBronze   RoleName = "bronze"
	RoleSilver   RoleName = "silver"
	RoleGold     RoleName = "gold"
	RolePlatinum RoleName = "platinum"
)

// DefaultRoleID id роли bronze. Назначается каждому новому пользователю.
const DefaultRoleID int64 = 1

// RoleNames возвращает допустимые названия ролей в порядке возрастания уровня.
func RoleNames() []RoleName {
	return []RoleName{RoleBronze, RoleSilver, RoleGold, RolePlatinum}
}

// Rank возвращает порядковый номер уровня (bronze = 0) или -1 для неизвестного названия.
func (n RoleName) Rank() int {
	for i, name := range RoleNames() {
		if name == n {
			return i
		}
	}
	return -1
}

// Valid сообщает, входит ли название в фиксированный набор.
func (n RoleName) Valid() bool {
	return n.Rank() >= 0
}

// Role — справочная запись роли. Permissions хранится как есть и бизнес-логикой не читается.
type Role struct {
	ID          int64           `json:"id"`
	Name        RoleName        `json:"name"`
	Permissions json.RawMessage `json:"permissions,omitempty"`
}

// InvalidRoleNameMessage возвращает текст ошибки для недопустимого названия роли.
func InvalidRoleNameMessage() string {
	names := make([]string, 0, len(RoleNames()))
	for _, n := range RoleNames() {
		names = append(names, string(n))
	}
	return fmt.Sprintf("invalid role name: expected values are %s", strings.Join(names, ", "))
}

// Validate проверяет роль перед записью.
func (r Role) Validate() error {
	if !r.Name.Valid() {
		return invalid("name", InvalidRoleNameMessage())
	}
	if len(r.Permissions) > 0 && !json.Valid(r.Permissions) {
		return invalid("permissions", "permissions must be valid JSON")
	}
	return nil
}
