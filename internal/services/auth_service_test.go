package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"

	"ecofinds/internal/domain"
	"ecofinds/internal/repos"
	"ecofinds/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db
}

func TestRegisterThenLogin(t *testing.T) {
	db := memdb(t)
	svc := &services.AuthService{Users: repos.NewUserRepo(db)}

	u, err := svc.Register("sid-1", "Carol@Example.com", "hunter22", "carol")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "carol@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if strings.Contains(u.Hash, "hunter22") || !strings.HasPrefix(u.Hash, "$2") {
		t.Fatalf("password not bcrypt-hashed: %q", u.Hash)
	}

	// Session established by registration
	cur, err := svc.CurrentUser("sid-1")
	if err != nil || cur.ID != u.ID {
		t.Fatalf("session not bound: %v %+v", err, cur)
	}

	// Same credentials log in, case-insensitively
	if _, err := svc.Login("sid-2", "carol@example.COM", "hunter22"); err != nil {
		t.Fatalf("login after register: %v", err)
	}
}

func TestRegisterValidationAndConflict(t *testing.T) {
	db := memdb(t)
	svc := &services.AuthService{Users: repos.NewUserRepo(db)}

	cases := []struct{ email, pass, name string }{
		{"", "pw", "x"},
		{"a@b.com", "", "x"},
		{"a@b.com", "pw", ""},
		{"not-an-email", "pw", "x"},
	}
	for _, tc := range cases {
		if _, err := svc.Register("sid", tc.email, tc.pass, tc.name); !domain.IsValidation(err) {
			t.Fatalf("want ValidationError for %+v, got %v", tc, err)
		}
	}

	if _, err := svc.Register("sid", "dup@example.com", "pw123456", "first"); err != nil {
		t.Fatal(err)
	}
	// Duplicate email in any casing conflicts
	if _, err := svc.Register("sid", "DUP@example.com", "pw123456", "second"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestLoginFailureIsIndistinct(t *testing.T) {
	db := memdb(t)
	svc := &services.AuthService{Users: repos.NewUserRepo(db)}

	// seeded demo user exists
	if _, err := svc.Login("sid", "demo@ecofinds.app", "wrong-password"); !errors.Is(err, domain.ErrBadCreds) {
		t.Fatalf("wrong password: want ErrBadCreds, got %v", err)
	}
	if _, err := svc.Login("sid", "nobody@ecofinds.app", "demo123"); !errors.Is(err, domain.ErrBadCreds) {
		t.Fatalf("unknown email: want ErrBadCreds, got %v", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	db := memdb(t)
	svc := &services.AuthService{Users: repos.NewUserRepo(db)}

	if _, err := svc.Login("sid-x", "demo@ecofinds.app", "demo123"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Logout("sid-x"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CurrentUser("sid-x"); err == nil {
		t.Fatal("session should be gone after logout")
	}
}

func TestUpdateProfile(t *testing.T) {
	db := memdb(t)
	users := repos.NewUserRepo(db)
	svc := &services.AuthService{Users: users}

	u, err := svc.Register("sid", "p@example.com", "pw123456", "before")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.UpdateProfile(u.ID, "  after  "); err != nil {
		t.Fatal(err)
	}
	got, err := users.ByID(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Username != "after" {
		t.Fatalf("want trimmed username %q, got %q", "after", got.Username)
	}
	if err := svc.UpdateProfile(u.ID, "   "); !domain.IsValidation(err) {
		t.Fatalf("blank username: want ValidationError, got %v", err)
	}
}
