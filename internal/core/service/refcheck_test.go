package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
)

type stubChecker struct {
	existing map[string]bool
	err      error
}

func (s *stubChecker) Exists(_ context.Context, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.existing[id], nil
}

func TestCheckReferences_EmptyRequired(t *testing.T) {
	rule := ReferenceRule{Kind: "user", Required: true, Missing: "You must have at least one master"}

	err := CheckReferences(context.Background(), nil, &stubChecker{}, rule)
	if err == nil {
		t.Fatalf("expected error for empty required list")
	}
	if err.Error() != "You must have at least one master" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !domain.IsValidation(err) {
		t.Fatalf("expected a validation error, got %T", err)
	}
}

func TestCheckReferences_EmptyOptional(t *testing.T) {
	if err := CheckReferences(context.Background(), nil, &stubChecker{}, ReferenceRule{Kind: "dog"}); err != nil {
		t.Fatalf("expected nil for empty optional list, got %v", err)
	}
}

func TestCheckReferences_AllResolve(t *testing.T) {
	store := &stubChecker{existing: map[string]bool{"a": true, "b": true}}
	rule := ReferenceRule{Kind: "user", Required: true, Missing: "You must have at least one master"}

	if err := CheckReferences(context.Background(), []string{"a", "b"}, store, rule); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestCheckReferences_SingleMissing(t *testing.T) {
	store := &stubChecker{existing: map[string]bool{"a": true}}

	err := CheckReferences(context.Background(), []string{"a", "ghost"}, store, ReferenceRule{Kind: "user"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "This user doesn't exist: ghost" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCheckReferences_ManyMissing(t *testing.T) {
	store := &stubChecker{existing: map[string]bool{"b": true}}

	// All missing IDs are reported, in input order, not just the first.
	err := CheckReferences(context.Background(), []string{"x", "b", "y"}, store, ReferenceRule{Kind: "user"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "These users don't exist: x,y" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCheckReferences_StoreError(t *testing.T) {
	boom := errors.New("connection reset")
	store := &stubChecker{err: boom}

	err := CheckReferences(context.Background(), []string{"a"}, store, ReferenceRule{Kind: "dog"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
	if domain.IsValidation(err) {
		t.Fatalf("store errors must not be reported as validation failures")
	}
}
