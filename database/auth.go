package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"travelrisk/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// Login authenticates by email and password and returns the account.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	var user models.User
	var role string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, role, created_at FROM users WHERE email = ?`,
		req.Email).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password, &role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("no user found with the given email")
		}
		return nil, scanError("user", err)
	}
	user.Role = models.Role(role)

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("incorrect password")
	}
	return &user, nil
}

// GenerateToken issues an HS256 session token carrying the identity claims
// the rest of the service trusts verbatim.
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       user.ID,
		"email":    user.Email,
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      now.Add(tokenLifetime).Unix(),
		"iat":      now.Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

// ValidateToken verifies a session token and returns its identity claims.
func (s *Service) ValidateToken(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return nil, errors.New("invalid user id in token")
	}
	email, _ := claims["email"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &models.SessionClaims{
		ID:       id,
		Email:    email,
		Username: username,
		Role:     models.ParseRole(role),
	}, nil
}
