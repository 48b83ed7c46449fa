package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService emite y valida tokens de acceso para clientes de la API.
type JWTService struct {
	secret    []byte
	accessTTL time.Duration
	issuer    string
}

type Claims struct {
	ClientID  string `json:"cid"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

var (
	ErrJWTInvalid = errors.New("jwt invalid")
	ErrJWTExpired = errors.New("jwt expired")
)

func NewJWTService(secret string, accessTTL time.Duration) *JWTService {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	return &JWTService{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		issuer:    "psybench",
	}
}

// Enabled indica si hay secreto configurado; sin secreto la API corre abierta.
func (s *JWTService) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

// IssueAccessToken firma un token HS256 para el cliente indicado.
func (s *JWTService) IssueAccessToken(clientID string) (string, int64, error) {
	if !s.Enabled() {
		return "", 0, ErrJWTInvalid
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return "", 0, ErrJWTInvalid
	}
	now := time.Now().UTC()
	claims := Claims{
		ClientID:  clientID,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, int64(s.accessTTL.Seconds()), nil
}

// ParseAccessToken valida firma, vigencia y forma de los claims.
func (s *JWTService) ParseAccessToken(accessToken string) (Claims, error) {
	if !s.Enabled() {
		return Claims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(accessToken) == "" {
		return Claims{}, ErrJWTInvalid
	}

	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(accessToken, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrJWTExpired
		}
		return Claims{}, ErrJWTInvalid
	}

	if claims.TokenType != "access" {
		return Claims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(claims.ClientID) == "" || claims.Subject != claims.ClientID {
		return Claims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(claims.Issuer) != s.issuer {
		return Claims{}, ErrJWTInvalid
	}
	return claims, nil
}
