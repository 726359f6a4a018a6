// Package jwt реализует выпуск и разбор подписанных JWT (HS256).
//
// Один и тот же механизм используется для трёх видов токенов: токена доступа
// (кладётся в cookie), токена сброса пароля и токена верификации e-mail.
// Виды различаются секретом, временем жизни и аудиторией (claim "aud").
package jwt

import (
	"time"
)

// Аудитории токенов.
const (
	AudienceAuth   = "users:auth"
	AudienceReset  = "users:reset"
	AudienceVerify = "users:verify"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken выпускает токен для пользователя userID.
	// email и fingerprint попадают в токен только если не пустые.
	GenerateToken(userID int64, email, fingerprint string) (string, error)
	// ParseToken проверяет подпись, срок действия и аудиторию токена.
	ParseToken(tokenStr string) (*CustomClaims, error)
	// TTL возвращает время жизни выпускаемых токенов.
	TTL() time.Duration
}

// MakerImpl реализует Maker с использованием секретного ключа,
// времени жизни токена и фиксированной аудитории.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
	audience  string
	now       func() time.Time
}

// NewJWTMaker создаёт Maker для заданной аудитории.
func NewJWTMaker(secretKey string, ttl time.Duration, audience string) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
		audience:  audience,
		now:       time.Now,
	}
}

// TTL возвращает время жизни токена.
func (j *MakerImpl) TTL() time.Duration {
	return j.tokenTTL
}
