package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"ruyatech/internal/models"
)

// Claims identify a signed-in console session.
type Claims struct {
	SessionID string `json:"session_id"`
	MemberID  string `json:"member_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSessionJWT issues the console's own token for a session. The
// backend bearer token never leaves the server; the browser only ever sees
// this.
func GenerateSessionJWT(secret, sessionID string, member models.Member, ttl time.Duration) (string, error) {
	claims := Claims{
		SessionID: sessionID,
		MemberID:  member.ID,
		Name:      member.Name,
		Role:      string(member.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionJWT parses and validates a console session token.
func ParseSessionJWT(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}
