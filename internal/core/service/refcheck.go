package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
)

// ExistenceChecker resolves whether an ID refers to a stored record.
// Repositories satisfy it with a cheap count query.
type ExistenceChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// ReferenceRule describes how a reference-bearing field is validated and
// how failures are worded.
type ReferenceRule struct {
	// Kind is the singular entity name used in error messages ("user",
	// "dog", "walk").
	Kind string
	// Required rejects an empty ID list with the Missing message.
	Required bool
	// Missing is the message used when Required is set and the list is
	// empty.
	Missing string
}

// CheckReferences verifies that every ID resolves to an existing record in
// store. Lookups are independent queries and run concurrently; every ID is
// checked, so the resulting error names all unresolved IDs rather than just
// the first. A nil return means every reference resolved.
func CheckReferences(ctx context.Context, ids []string, store ExistenceChecker, rule ReferenceRule) error {
	if len(ids) == 0 {
		if rule.Required {
			return domain.NewValidationError(rule.Missing)
		}
		return nil
	}

	found := make([]bool, len(ids))
	errs := make([]error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			found[i], errs[i] = store.Exists(ctx, id)
		}(i, id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	// Input order is preserved so the message is deterministic.
	var missing []string
	for i, ok := range found {
		if !ok {
			missing = append(missing, ids[i])
		}
	}

	switch len(missing) {
	case 0:
		return nil
	case 1:
		return domain.NewValidationError(
			fmt.Sprintf("This %s doesn't exist: %s", rule.Kind, missing[0]))
	default:
		return domain.NewValidationError(
			fmt.Sprintf("These %ss don't exist: %s", rule.Kind, strings.Join(missing, ",")))
	}
}
