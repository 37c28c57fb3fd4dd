package session

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open session store: %v", err)
	}
	return s
}

func TestSignInPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	s := openTestStore(t, path)
	if s.Token() != "" {
		t.Fatal("fresh store must have no token")
	}
	if err := s.SignIn("jwt-abc", "awa@pause.fr", "Awa", "Diallo"); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	reopened := openTestStore(t, path)
	if reopened.Token() != "jwt-abc" {
		t.Fatalf("expected persisted token, got %q", reopened.Token())
	}
	sess, ok := reopened.Current()
	if !ok || sess.FirstName != "Awa" || sess.Email != "awa@pause.fr" {
		t.Fatalf("expected persisted profile, got %+v (ok=%v)", sess, ok)
	}
}

func TestSignOutClearsEverywhere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	s := openTestStore(t, path)
	if err := s.SignIn("jwt-abc", "awa@pause.fr", "Awa", "Diallo"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if err := s.SignOut(); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if s.Token() != "" {
		t.Fatal("token must be cleared after sign out")
	}
	if _, ok := s.Current(); ok {
		t.Fatal("no current session expected after sign out")
	}

	reopened := openTestStore(t, path)
	if reopened.Token() != "" {
		t.Fatal("sign out must clear the persisted session too")
	}
}

func TestSignInOverwritesPreviousSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	s := openTestStore(t, path)
	if err := s.SignIn("first", "a@pause.fr", "A", "A"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if err := s.SignIn("second", "b@pause.fr", "B", "B"); err != nil {
		t.Fatalf("second sign in: %v", err)
	}
	if s.Token() != "second" {
		t.Fatalf("expected the latest token, got %q", s.Token())
	}
}
