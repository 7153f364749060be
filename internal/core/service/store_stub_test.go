package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub store
// ---------------------------------------------------------------------------

// stubStore implements ports.Store over plain maps. InTx simply runs fn
// against the same store; the engine performs all checks before any write, so
// tests observe the same visible behavior as with a rolling-back transaction.
type stubStore struct {
	clients     map[int64]*domain.Client
	contacts    map[int64]*domain.Contact
	sessions    map[int64]*domain.Session
	payments    map[int64]*domain.Payment
	allocations map[int64]*domain.Allocation

	nextID int64

	txErr    error // if set, InTx fails immediately
	batchErr error // if set, Allocations().CreateBatch returns this error
}

func newStubStore() *stubStore {
	return &stubStore{
		clients:     make(map[int64]*domain.Client),
		contacts:    make(map[int64]*domain.Contact),
		sessions:    make(map[int64]*domain.Session),
		payments:    make(map[int64]*domain.Payment),
		allocations: make(map[int64]*domain.Allocation),
	}
}

func (s *stubStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *stubStore) InTx(_ context.Context, fn func(tx ports.Ledger) error) error {
	if s.txErr != nil {
		return s.txErr
	}
	return fn(s)
}

func (s *stubStore) Clients() ports.ClientRepository         { return &stubClientRepo{s} }
func (s *stubStore) Contacts() ports.ContactRepository       { return &stubContactRepo{s} }
func (s *stubStore) Sessions() ports.SessionRepository       { return &stubSessionRepo{s} }
func (s *stubStore) Payments() ports.PaymentRepository       { return &stubPaymentRepo{s} }
func (s *stubStore) Allocations() ports.AllocationRepository { return &stubAllocationRepo{s} }

// --- Seed helpers ---

func (s *stubStore) addClient(c domain.Client) *domain.Client {
	if c.ID == 0 {
		c.ID = s.id()
	}
	if c.Status == "" {
		c.Status = domain.ClientActive
	}
	s.clients[c.ID] = &c
	return &c
}

func (s *stubStore) addSession(sess domain.Session) *domain.Session {
	if sess.ID == 0 {
		sess.ID = s.id()
	}
	s.sessions[sess.ID] = &sess
	return &sess
}

func (s *stubStore) addPayment(p domain.Payment) *domain.Payment {
	if p.ID == 0 {
		p.ID = s.id()
	}
	s.payments[p.ID] = &p
	return &p
}

func (s *stubStore) addAllocation(a domain.Allocation) *domain.Allocation {
	if a.ID == 0 {
		a.ID = s.id()
	}
	s.allocations[a.ID] = &a
	return &a
}

// --- Clients ---

type stubClientRepo struct{ s *stubStore }

func (r *stubClientRepo) List(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := r.s.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.s.clients[id]
	return ok, nil
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) error {
	if c.ID == 0 {
		c.ID = r.s.id()
	}
	clone := *c
	r.s.clients[c.ID] = &clone
	return nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) error {
	if _, ok := r.s.clients[c.ID]; !ok {
		return domain.ErrClientNotFound
	}
	clone := *c
	r.s.clients[c.ID] = &clone
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.s.clients, id)
	return nil
}

// --- Contacts ---

type stubContactRepo struct{ s *stubStore }

func (r *stubContactRepo) List(_ context.Context) ([]domain.Contact, error) {
	out := make([]domain.Contact, 0, len(r.s.contacts))
	for _, c := range r.s.contacts {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubContactRepo) FindByID(_ context.Context, id int64) (*domain.Contact, error) {
	c, ok := r.s.contacts[id]
	if !ok {
		return nil, domain.ErrContactNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubContactRepo) Create(_ context.Context, c *domain.Contact) error {
	if c.ID == 0 {
		c.ID = r.s.id()
	}
	clone := *c
	r.s.contacts[c.ID] = &clone
	return nil
}

func (r *stubContactRepo) Update(_ context.Context, c *domain.Contact) error {
	if _, ok := r.s.contacts[c.ID]; !ok {
		return domain.ErrContactNotFound
	}
	clone := *c
	r.s.contacts[c.ID] = &clone
	return nil
}

func (r *stubContactRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.contacts[id]; !ok {
		return domain.ErrContactNotFound
	}
	delete(r.s.contacts, id)
	return nil
}

// --- Sessions ---

type stubSessionRepo struct{ s *stubStore }

func (r *stubSessionRepo) List(_ context.Context) ([]domain.Session, error) {
	out := make([]domain.Session, 0, len(r.s.sessions))
	for _, sess := range r.s.sessions {
		out = append(out, *sess)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSessionRepo) FindByID(_ context.Context, id int64) (*domain.Session, error) {
	sess, ok := r.s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *sess
	return &clone, nil
}

func (r *stubSessionRepo) FindByIDs(_ context.Context, ids []int64) ([]domain.Session, error) {
	seen := make(map[int64]struct{}, len(ids))
	var out []domain.Session
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if sess, ok := r.s.sessions[id]; ok {
			out = append(out, *sess)
		}
	}
	return out, nil
}

func (r *stubSessionRepo) ListByClient(_ context.Context, clientID int64) ([]domain.Session, error) {
	var out []domain.Session
	for _, sess := range r.s.sessions {
		if sess.ClientID == clientID {
			out = append(out, *sess)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSessionRepo) ListByDateRange(_ context.Context, from, to domain.Date) ([]domain.Session, error) {
	var out []domain.Session
	for _, sess := range r.s.sessions {
		if sess.Date.Within(from, to) {
			out = append(out, *sess)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSessionRepo) Create(_ context.Context, sess *domain.Session) error {
	if sess.ID == 0 {
		sess.ID = r.s.id()
	}
	clone := *sess
	r.s.sessions[sess.ID] = &clone
	return nil
}

func (r *stubSessionRepo) Update(_ context.Context, sess *domain.Session) error {
	if _, ok := r.s.sessions[sess.ID]; !ok {
		return domain.ErrSessionNotFound
	}
	clone := *sess
	r.s.sessions[sess.ID] = &clone
	return nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.s.sessions, id)
	for aid, a := range r.s.allocations {
		if a.SessionID == id {
			delete(r.s.allocations, aid)
		}
	}
	return nil
}

// --- Payments ---

type stubPaymentRepo struct{ s *stubStore }

func (r *stubPaymentRepo) List(_ context.Context) ([]domain.Payment, error) {
	out := make([]domain.Payment, 0, len(r.s.payments))
	for _, p := range r.s.payments {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id int64) (*domain.Payment, error) {
	p, ok := r.s.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPaymentRepo) ListByDateRange(_ context.Context, from, to domain.Date) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.s.payments {
		if p.Date.Within(from, to) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubPaymentRepo) SumAmountByClient(_ context.Context, clientID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range r.s.payments {
		if p.ClientID == clientID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

func (r *stubPaymentRepo) Create(_ context.Context, p *domain.Payment) error {
	if p.ID == 0 {
		p.ID = r.s.id()
	}
	clone := *p
	r.s.payments[p.ID] = &clone
	return nil
}

func (r *stubPaymentRepo) Update(_ context.Context, p *domain.Payment) error {
	if _, ok := r.s.payments[p.ID]; !ok {
		return domain.ErrPaymentNotFound
	}
	clone := *p
	r.s.payments[p.ID] = &clone
	return nil
}

func (r *stubPaymentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.payments[id]; !ok {
		return domain.ErrPaymentNotFound
	}
	delete(r.s.payments, id)
	for aid, a := range r.s.allocations {
		if a.PaymentID == id {
			delete(r.s.allocations, aid)
		}
	}
	return nil
}

// --- Allocations ---

type stubAllocationRepo struct{ s *stubStore }

func (r *stubAllocationRepo) FindByID(_ context.Context, id int64) (*domain.Allocation, error) {
	a, ok := r.s.allocations[id]
	if !ok {
		return nil, domain.ErrAllocationNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAllocationRepo) CreateBatch(_ context.Context, allocations []*domain.Allocation) error {
	if r.s.batchErr != nil {
		return r.s.batchErr
	}
	for _, a := range allocations {
		if a.ID == 0 {
			a.ID = r.s.id()
		}
		clone := *a
		r.s.allocations[a.ID] = &clone
	}
	return nil
}

func (r *stubAllocationRepo) UpdateAmount(_ context.Context, id int64, amount decimal.Decimal) error {
	a, ok := r.s.allocations[id]
	if !ok {
		return domain.ErrAllocationNotFound
	}
	a.Amount = amount
	return nil
}

func (r *stubAllocationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.allocations[id]; !ok {
		return domain.ErrAllocationNotFound
	}
	delete(r.s.allocations, id)
	return nil
}

func (r *stubAllocationRepo) SumAmountByPayment(_ context.Context, paymentID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, a := range r.s.allocations {
		if a.PaymentID == paymentID {
			sum = sum.Add(a.Amount)
		}
	}
	return sum, nil
}

func (r *stubAllocationRepo) SumAmountByPaymentExcluding(_ context.Context, paymentID, allocationID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, a := range r.s.allocations {
		if a.PaymentID == paymentID && a.ID != allocationID {
			sum = sum.Add(a.Amount)
		}
	}
	return sum, nil
}

func (r *stubAllocationRepo) SumAmountBySession(_ context.Context, sessionID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, a := range r.s.allocations {
		if a.SessionID == sessionID {
			sum = sum.Add(a.Amount)
		}
	}
	return sum, nil
}
