package database

import (
	"context"
	"errors"
	"testing"

	"travelrisk/models"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestCreateUserRoleCoercion(t *testing.T) {
	it(func() {
		testCases := []struct {
			name     string
			role     string
			wantRole string
		}{
			{"Admin literal kept", "admin", "admin"},
			{"Default role", "", "user"},
			{"Unknown role coerced", "superadmin", "user"},
		}

		for _, testCase := range testCases {
			mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE email = (.+) OR username = (.+)").
				WithArgs("alice@example.com", "alice").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			mock.ExpectExec("INSERT INTO users").
				WithArgs(sqlmock.AnyArg(), "alice", "alice@example.com", sqlmock.AnyArg(),
					testCase.wantRole, sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(1, 1))

			user, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "hunter2hunter2",
				Role:     testCase.role,
			})
			if err != nil {
				t.Errorf("%s: CreateUser: unexpected error %v", testCase.name, err)
				continue
			}
			if string(user.Role) != testCase.wantRole {
				t.Errorf("%s: role = %q, want %q", testCase.name, user.Role, testCase.wantRole)
			}
		}
	})
}

func TestCreateUserAlreadyExists(t *testing.T) {
	it(func() {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE email = (.+) OR username = (.+)").
			WithArgs("bob@example.com", "bob").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
			Username: "bob",
			Email:    "bob@example.com",
			Password: "hunter2hunter2",
		})
		if !errors.Is(err, ErrAlreadyExists) {
			t.Errorf("CreateUser with existing email: err = %v, want ErrAlreadyExists", err)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	it(func() {
		testCases := []struct {
			name         string
			id           string
			rowsAffected int64
			wantErr      error
		}{
			{"Existing user", "abc123", 1, nil},
			{"Absent user", "missing", 0, ErrNotFound},
		}

		for _, testCase := range testCases {
			mock.ExpectExec("DELETE FROM users WHERE id = ?").
				WithArgs(testCase.id).
				WillReturnResult(sqlmock.NewResult(0, testCase.rowsAffected))

			err := svc.DeleteUser(context.Background(), testCase.id)
			if !errors.Is(err, testCase.wantErr) {
				t.Errorf("%s: DeleteUser err = %v, want %v", testCase.name, err, testCase.wantErr)
			}
		}
	})
}

func TestListUsers(t *testing.T) {
	it(func() {
		rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "created_at"}).
			AddRow("u1", "alice", "alice@example.com", "$2a$10$hash", "admin", sampleTime()).
			AddRow("u2", "bob", "bob@example.com", "$2a$10$hash", "user", sampleTime())
		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(rows)

		users, err := svc.ListUsers(context.Background())
		if err != nil {
			t.Fatalf("ListUsers: unexpected error %v", err)
		}
		if len(users) != 2 {
			t.Fatalf("ListUsers returned %d users, want 2", len(users))
		}
		if users[0].Role != models.RoleAdmin || users[1].Role != models.RoleUser {
			t.Errorf("roles = %q, %q, want admin, user", users[0].Role, users[1].Role)
		}
	})
}
