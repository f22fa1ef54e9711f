package jwt

import (
	"time"

	"ngo-admin-system/config"
	"ngo-admin-system/internal/model"

	"github.com/golang-jwt/jwt"
)

// Payload 写入令牌的用户身份信息
type Payload struct {
	UserID uint       `json:"user_id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"` // 账号的真实角色
}

// Claims JWT 负载
// PreviewRole 仅用于"以某角色视角预览"，不改变账号真实角色
// 涉及用户增删改的接口必须用 Role 而不是 EffectiveRole 做判定
type Claims struct {
	Payload
	PreviewRole model.Role `json:"preview_role,omitempty"`
	jwt.StandardClaims
}

// EffectiveRole 当前生效的角色：有预览角色时取预览角色
func (c *Claims) EffectiveRole() model.Role {
	if c.PreviewRole != "" {
		return c.PreviewRole
	}
	return c.Role
}

// CreateToken 签发访问令牌
func CreateToken(payload Payload) string {
	return CreateTokenWithPreview(payload, "")
}

// CreateTokenWithPreview 签发带预览角色的访问令牌
func CreateTokenWithPreview(payload Payload, preview model.Role) string {
	cfg := config.Get()
	now := time.Now()
	claims := Claims{
		Payload:     payload,
		PreviewRole: preview,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(cfg.JWT.AccessExpire) * time.Second).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWT.AccessSecret))
	if err != nil {
		return ""
	}
	return signed
}

// ParseToken 解析并校验令牌，无效时返回 false
func ParseToken(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}
