package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
	"github.com/dogwalk/dogwalk-api/internal/core/ports"
)

func newAccountService(repo *stubAccountRepo, walkRepo *stubWalkRepo, notifier *stubNotifier) *AccountService {
	return NewAccountService(repo, walkRepo, NewCredentials("test-secret", time.Hour), notifier, zerolog.Nop())
}

func seededAccount(t *testing.T, svc *AccountService, email, password string) *domain.Account {
	t.Helper()
	account, err := svc.Register(context.Background(), ports.RegisterAccountInput{
		Firstname: "Alice",
		Lastname:  "Martin",
		Email:     email,
		Password:  password,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return account
}

func TestAccountServiceLogin(t *testing.T) {
	svc := newAccountService(newStubAccountRepo(), newStubWalkRepo(), &stubNotifier{})
	account := seededAccount(t, svc, "alice@example.com", "correct horse")

	token, got, err := svc.Login(context.Background(), "alice@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if got.ID != account.ID {
		t.Fatalf("account = %q, want %q", got.ID, account.ID)
	}
}

func TestAccountServiceLoginFailures(t *testing.T) {
	svc := newAccountService(newStubAccountRepo(), newStubWalkRepo(), &stubNotifier{})
	seededAccount(t, svc, "alice@example.com", "correct horse")

	// Every failure mode collapses to the same error so the caller cannot
	// probe which emails are registered.
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "alice@example.com", "battery staple"},
		{"unknown email", "nobody@example.com", "correct horse"},
		{"empty password", "alice@example.com", ""},
		{"empty email", "", "correct horse"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAccountServiceRegisterDuplicateEmail(t *testing.T) {
	svc := newAccountService(newStubAccountRepo(), newStubWalkRepo(), &stubNotifier{})
	seededAccount(t, svc, "alice@example.com", "correct horse")

	_, err := svc.Register(context.Background(), ports.RegisterAccountInput{
		Firstname: "Other",
		Lastname:  "Alice",
		Email:     "alice@example.com",
		Password:  "another pass",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAccountServiceRegisterBadLocalisation(t *testing.T) {
	svc := newAccountService(newStubAccountRepo(), newStubWalkRepo(), &stubNotifier{})

	_, err := svc.Register(context.Background(), ports.RegisterAccountInput{
		Firstname:    "Alice",
		Lastname:     "Martin",
		Email:        "alice@example.com",
		Password:     "correct horse",
		Localisation: &domain.GeoPoint{Type: domain.GeoPointType, Coordinate: []float64{200, 0}},
	})
	if err == nil || err.Error() != "Path coordinates must be an array of two numbers" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAccountServiceJoinWalk(t *testing.T) {
	walk := &domain.Walk{ID: "walk-1", Title: "Morning loop", Creator: "acc-other"}
	notifier := &stubNotifier{}
	svc := newAccountService(newStubAccountRepo(), newStubWalkRepo(walk), notifier)
	account := seededAccount(t, svc, "alice@example.com", "correct horse")

	joined, err := svc.JoinWalk(context.Background(), account.ID, account.ID, "walk-1")
	if err != nil {
		t.Fatalf("JoinWalk: %v", err)
	}
	if joined.CurrentWalk == nil || *joined.CurrentWalk != "walk-1" {
		t.Fatalf("CurrentWalk = %v, want walk-1", joined.CurrentWalk)
	}

	events := notifier.events()
	if len(events) != 1 {
		t.Fatalf("published %d notifications, want 1", len(events))
	}
	if events[0].Event != ports.EventWalkJoined || events[0].WalkID != "walk-1" {
		t.Fatalf("unexpected notification: %+v", events[0])
	}
}

func TestAccountServiceJoinMissingWalk(t *testing.T) {
	notifier := &stubNotifier{}
	svc := newAccountService(newStubAccountRepo(), newStubWalkRepo(), notifier)
	account := seededAccount(t, svc, "alice@example.com", "correct horse")

	_, err := svc.JoinWalk(context.Background(), account.ID, account.ID, "ghost")
	if err == nil || err.Error() != "This walk doesn't exist: ghost" {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifier.events()) != 0 {
		t.Fatalf("nothing may be published when the join is rejected")
	}
}

func TestAccountServiceJoinForbidden(t *testing.T) {
	walk := &domain.Walk{ID: "walk-1", Title: "Morning loop"}
	svc := newAccountService(newStubAccountRepo(), newStubWalkRepo(walk), &stubNotifier{})
	account := seededAccount(t, svc, "alice@example.com", "correct horse")

	_, err := svc.JoinWalk(context.Background(), "someone-else", account.ID, "walk-1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	got, err := svc.Get(context.Background(), account.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CurrentWalk != nil {
		t.Fatalf("the account must be left untouched on a forbidden join")
	}
}

func TestAccountServiceJoinPublishFailureDoesNotFail(t *testing.T) {
	walk := &domain.Walk{ID: "walk-1", Title: "Morning loop"}
	notifier := &stubNotifier{err: errors.New("broker down")}
	svc := newAccountService(newStubAccountRepo(), newStubWalkRepo(walk), notifier)
	account := seededAccount(t, svc, "alice@example.com", "correct horse")

	joined, err := svc.JoinWalk(context.Background(), account.ID, account.ID, "walk-1")
	if err != nil {
		t.Fatalf("a publish failure must not fail the join: %v", err)
	}
	if joined.CurrentWalk == nil || *joined.CurrentWalk != "walk-1" {
		t.Fatalf("CurrentWalk = %v, want walk-1", joined.CurrentWalk)
	}
}

func TestAccountServiceLeaveWalk(t *testing.T) {
	walk := &domain.Walk{ID: "walk-1", Title: "Morning loop"}
	svc := newAccountService(newStubAccountRepo(), newStubWalkRepo(walk), &stubNotifier{})
	account := seededAccount(t, svc, "alice@example.com", "correct horse")

	if _, err := svc.JoinWalk(context.Background(), account.ID, account.ID, "walk-1"); err != nil {
		t.Fatalf("JoinWalk: %v", err)
	}
	left, err := svc.LeaveWalk(context.Background(), account.ID, account.ID)
	if err != nil {
		t.Fatalf("LeaveWalk: %v", err)
	}
	if left.CurrentWalk != nil {
		t.Fatalf("CurrentWalk = %v, want nil", left.CurrentWalk)
	}
}

func TestAccountServiceDeleteForbidden(t *testing.T) {
	svc := newAccountService(newStubAccountRepo(), newStubWalkRepo(), &stubNotifier{})
	account := seededAccount(t, svc, "alice@example.com", "correct horse")

	if err := svc.Delete(context.Background(), "someone-else", account.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), account.ID); err != nil {
		t.Fatalf("the account must survive a forbidden delete: %v", err)
	}
}

func TestAccountServiceUpdateUnknownAccount(t *testing.T) {
	svc := newAccountService(newStubAccountRepo(), newStubWalkRepo(), &stubNotifier{})

	// Existence is checked before ownership so an outsider gets the same
	// not-found answer as everyone else.
	_, err := svc.Update(context.Background(), "someone-else", "ghost", ports.UpdateAccountInput{})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
