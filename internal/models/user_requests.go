package models

// UserCreate — данные регистрации. Роль и флаги клиент не передаёт.
type UserCreate struct {
	Email      string `json:"email" validate:"required,max=150,email_pattern"`
	Password   string `json:"password" validate:"required"`
	NameFirst  string `json:"name_first,omitempty" validate:"omitempty,max=50"`
	NameSecond string `json:"name_second,omitempty" validate:"omitempty,max=50"`
	Username   string `json:"username" validate:"required,max=100,username_pattern"`
}

// UserUpdate — частичное обновление профиля. nil означает «не менять».
type UserUpdate struct {
	Email      *string `json:"email,omitempty" validate:"omitempty,max=150,email_pattern"`
	Password   *string `json:"password,omitempty" validate:"omitempty"`
	NameFirst  *string `json:"name_first,omitempty" validate:"omitempty,max=50"`
	NameSecond *string `json:"name_second,omitempty" validate:"omitempty,max=50"`
	Username   *string `json:"username,omitempty" validate:"omitempty,max=100,username_pattern"`
}

// Empty сообщает, что обновлять нечего.
func (u UserUpdate) Empty() bool {
	return u.Email == nil && u.Password == nil && u.NameFirst == nil &&
		u.NameSecond == nil && u.Username == nil
}
