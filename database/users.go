package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelrisk/models"

	"github.com/apex/log"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser registers an account. Uniqueness of email and username is a
// check-then-act existence query, the same non-transactional guarantee the
// store has always offered; two concurrent signups with the same email can
// still both land.
func (s *Service) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	exists, err := s.userExists(ctx, req.Email, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:        newID(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(passwordHash),
		Role:      models.ParseRole(req.Role),
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, role, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.Email, user.Password, string(user.Role), user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	log.WithField("username", user.Username).Info("User created")
	return user, nil
}

// ListUsers returns all accounts. Password hashes stay inside the struct and
// never serialize.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, email, password_hash, role, created_at FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		var role string
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.Role = models.Role(role)
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateUser applies an admin edit. A non-empty password is re-hashed; the
// role passes through the same coercion as signup.
func (s *Service) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (*models.User, error) {
	updates := []string{}
	args := []interface{}{}

	if req.Username != "" {
		updates = append(updates, "username = ?")
		args = append(args, req.Username)
	}
	if req.Email != "" {
		updates = append(updates, "email = ?")
		args = append(args, req.Email)
	}
	if req.Password != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates = append(updates, "password_hash = ?")
		args = append(args, string(passwordHash))
	}
	if req.Role != "" {
		updates = append(updates, "role = ?")
		args = append(args, string(models.ParseRole(req.Role)))
	}

	if len(updates) > 0 {
		args = append(args, req.ID)
		query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(updates, ", "))
		result, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			// MySQL reports 0 for a no-op update of identical values too;
			// distinguish absence from sameness before declaring not found.
			exists, err := s.userIDExists(ctx, req.ID)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, ErrNotFound
			}
		}
	}

	return s.getUser(ctx, req.ID)
}

// DeleteUser removes an account by id.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	log.WithField("user_id", id).Info("User deleted")
	return nil
}

func (s *Service) getUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	var role string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, role, created_at FROM users WHERE id = ?`,
		id).Scan(&u.ID, &u.Username, &u.Email, &u.Password, &role, &u.CreatedAt)
	if err != nil {
		return nil, scanError("user", err)
	}
	u.Role = models.Role(role)
	return &u, nil
}

func (s *Service) userExists(ctx context.Context, email, username string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email = ? OR username = ?",
		email, username).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Service) userIDExists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE id = ?", id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return n > 0, nil
}
