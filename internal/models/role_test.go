package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleName_Rank(t *testing.T) {
	assert.Equal(t, 0, RoleBronze.Rank())
	assert.Equal(t, 1, RoleSilver.Rank())
	assert.Equal(t, 2, RoleGold.Rank())
	assert.Equal(t, 3, RolePlatinum.Rank())
	assert.Equal(t, -1, RoleName("diamond").Rank())
	assert.Equal(t, -1, RoleName("Bronze").Rank())
}

func TestRole_Validate(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		wantErr bool
	}{
		{name: "bronze", role: Role{Name: RoleBronze}},
		{name: "platinum with permissions", role: Role{Name: RolePlatinum, Permissions: json.RawMessage(`{"trade":["read","write"]}`)}},
		{name: "unknown name", role: Role{Name: "admin"}, wantErr: true},
		{name: "empty name", role: Role{}, wantErr: true},
		{name: "broken permissions", role: Role{Name: RoleGold, Permissions: json.RawMessage(`{`)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.role.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInvalidRoleNameMessage(t *testing.T) {
	assert.Equal(t, "invalid role name: expected values are bronze, silver, gold, platinum", InvalidRoleNameMessage())
}
