package service

import (
	"context"
	"sync"

	"github.com/dogwalk/dogwalk-api/internal/core/domain"
	"github.com/dogwalk/dogwalk-api/internal/core/ports"
)

// In-memory doubles for the persistence and notification ports. They keep
// entities in maps keyed by ID and are safe for the concurrent Exists calls
// issued by the reference checker.

type stubAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
}

func newStubAccountRepo(accounts ...*domain.Account) *stubAccountRepo {
	r := &stubAccountRepo{accounts: make(map[string]*domain.Account)}
	for _, a := range accounts {
		r.accounts[a.ID] = a
	}
	return r
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	if a.ID == "" {
		a.ID = "acc-stub"
	}
	r.accounts[a.ID] = a
	return a, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) List(_ context.Context, _ ports.Page) ([]*domain.Account, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (r *stubAccountRepo) Update(_ context.Context, id string, upd ports.AccountUpdate) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if upd.Firstname != nil {
		a.Firstname = *upd.Firstname
	}
	if upd.Lastname != nil {
		a.Lastname = *upd.Lastname
	}
	if upd.Email != nil {
		a.Email = *upd.Email
	}
	if upd.PasswordHash != nil {
		a.PasswordHash = *upd.PasswordHash
	}
	if upd.Birthdate != nil {
		a.Birthdate = *upd.Birthdate
	}
	if upd.Picture != nil {
		a.Picture = *upd.Picture
	}
	if upd.Localisation != nil {
		a.Localisation = upd.Localisation
	}
	return a, nil
}

func (r *stubAccountRepo) Replace(_ context.Context, a *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[a.ID]; !ok {
		return nil, domain.ErrAccountNotFound
	}
	r.accounts[a.ID] = a
	return a, nil
}

func (r *stubAccountRepo) SetCurrentWalk(_ context.Context, id string, walkID *string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.CurrentWalk = walkID
	return a, nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *stubAccountRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.accounts[id]
	return ok, nil
}

type stubDogRepo struct {
	mu   sync.Mutex
	dogs map[string]*domain.Dog
}

func newStubDogRepo(dogs ...*domain.Dog) *stubDogRepo {
	r := &stubDogRepo{dogs: make(map[string]*domain.Dog)}
	for _, d := range dogs {
		r.dogs[d.ID] = d
	}
	return r
}

func (r *stubDogRepo) Create(_ context.Context, d *domain.Dog) (*domain.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID == "" {
		d.ID = "dog-stub"
	}
	r.dogs[d.ID] = d
	return d, nil
}

func (r *stubDogRepo) FindByID(_ context.Context, id string) (*domain.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.dogs[id]
	if !ok {
		return nil, domain.ErrDogNotFound
	}
	return d, nil
}

func (r *stubDogRepo) List(_ context.Context, _ ports.Page) ([]*domain.Dog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Dog, 0, len(r.dogs))
	for _, d := range r.dogs {
		out = append(out, d)
	}
	return out, int64(len(out)), nil
}

func (r *stubDogRepo) Update(_ context.Context, id string, upd ports.DogUpdate) (*domain.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.dogs[id]
	if !ok {
		return nil, domain.ErrDogNotFound
	}
	if upd.Name != nil {
		d.Name = *upd.Name
	}
	if upd.Birthdate != nil {
		d.Birthdate = *upd.Birthdate
	}
	if upd.Breed != nil {
		d.Breed = *upd.Breed
	}
	if upd.Masters != nil {
		d.Masters = upd.Masters
	}
	if upd.Dislikes != nil {
		d.Dislikes = upd.Dislikes
	}
	if upd.Picture != nil {
		d.Picture = *upd.Picture
	}
	return d, nil
}

func (r *stubDogRepo) Replace(_ context.Context, d *domain.Dog) (*domain.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.dogs[d.ID]; !ok {
		return nil, domain.ErrDogNotFound
	}
	r.dogs[d.ID] = d
	return d, nil
}

func (r *stubDogRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.dogs[id]; !ok {
		return domain.ErrDogNotFound
	}
	delete(r.dogs, id)
	return nil
}

func (r *stubDogRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.dogs[id]
	return ok, nil
}

type stubWalkRepo struct {
	mu    sync.Mutex
	walks map[string]*domain.Walk
}

func newStubWalkRepo(walks ...*domain.Walk) *stubWalkRepo {
	r := &stubWalkRepo{walks: make(map[string]*domain.Walk)}
	for _, w := range walks {
		r.walks[w.ID] = w
	}
	return r
}

func (r *stubWalkRepo) Create(_ context.Context, w *domain.Walk) (*domain.Walk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.ID == "" {
		w.ID = "walk-stub"
	}
	r.walks[w.ID] = w
	return w, nil
}

func (r *stubWalkRepo) FindByID(_ context.Context, id string) (*domain.Walk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.walks[id]
	if !ok {
		return nil, domain.ErrWalkNotFound
	}
	return w, nil
}

func (r *stubWalkRepo) List(_ context.Context, _ ports.Page) ([]*domain.Walk, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Walk, 0, len(r.walks))
	for _, w := range r.walks {
		out = append(out, w)
	}
	return out, int64(len(out)), nil
}

func (r *stubWalkRepo) Update(_ context.Context, id string, upd ports.WalkUpdate) (*domain.Walk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.walks[id]
	if !ok {
		return nil, domain.ErrWalkNotFound
	}
	if upd.Title != nil {
		w.Title = *upd.Title
	}
	if upd.Path != nil {
		w.Path = upd.Path
	}
	return w, nil
}

func (r *stubWalkRepo) Replace(_ context.Context, w *domain.Walk) (*domain.Walk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.walks[w.ID]; !ok {
		return nil, domain.ErrWalkNotFound
	}
	r.walks[w.ID] = w
	return w, nil
}

func (r *stubWalkRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.walks[id]; !ok {
		return domain.ErrWalkNotFound
	}
	delete(r.walks, id)
	return nil
}

func (r *stubWalkRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.walks[id]
	return ok, nil
}

// stubNotifier records every published notification.
type stubNotifier struct {
	mu        sync.Mutex
	published []ports.Notification
	err       error
}

func (n *stubNotifier) Publish(_ context.Context, notification ports.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.published = append(n.published, notification)
	return nil
}

func (n *stubNotifier) events() []ports.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ports.Notification(nil), n.published...)
}
