package database

import (
	"context"
	"testing"

	"travelrisk/models"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewService(nil, "test-secret")

	user := &models.User{
		ID:       "u1",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     models.RoleAdmin,
	}

	token, err := service.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: unexpected error %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: unexpected error %v", err)
	}
	if claims.ID != user.ID || claims.Username != user.Username ||
		claims.Email != user.Email || claims.Role != models.RoleAdmin {
		t.Errorf("claims = %+v, want identity of %+v", claims, user)
	}
	if !claims.IsAdmin() {
		t.Error("admin token should carry the admin role")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := NewService(nil, "test-secret")

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := service.ValidateToken(token); err == nil {
			t.Errorf("ValidateToken(%q) succeeded, want error", token)
		}
	}
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	issuer := NewService(nil, "secret-one")
	verifier := NewService(nil, "secret-two")

	token, err := issuer.GenerateToken(&models.User{ID: "u1", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("GenerateToken: unexpected error %v", err)
	}
	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret validated, want error")
	}
}

func TestLogin(t *testing.T) {
	it(func() {
		hash, _ := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
		columns := []string{"id", "username", "email", "password_hash", "role", "created_at"}

		testCases := []struct {
			name     string
			email    string
			password string
			rows     *sqlmock.Rows
			wantErr  bool
		}{
			{
				name:     "Valid credentials",
				email:    "alice@example.com",
				password: "correct horse",
				rows: sqlmock.NewRows(columns).
					AddRow("u1", "alice", "alice@example.com", string(hash), "user", sampleTime()),
				wantErr: false,
			},
			{
				name:     "Wrong password",
				email:    "alice@example.com",
				password: "battery staple",
				rows: sqlmock.NewRows(columns).
					AddRow("u1", "alice", "alice@example.com", string(hash), "user", sampleTime()),
				wantErr: true,
			},
			{
				name:     "Unknown email",
				email:    "ghost@example.com",
				password: "correct horse",
				rows:     sqlmock.NewRows(columns),
				wantErr:  true,
			},
		}

		for _, testCase := range testCases {
			mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
				WithArgs(testCase.email).
				WillReturnRows(testCase.rows)

			user, err := svc.Login(context.Background(), models.LoginRequest{
				Email:    testCase.email,
				Password: testCase.password,
			})
			if testCase.wantErr != (err != nil) {
				t.Errorf("%s: Login err = %v, wantErr %v", testCase.name, err, testCase.wantErr)
			}
			if !testCase.wantErr && user.Username != "alice" {
				t.Errorf("%s: username = %q, want %q", testCase.name, user.Username, "alice")
			}
		}
	})
}
