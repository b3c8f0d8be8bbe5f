package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"vehicle-diagnosis-be/internal/entity"
	"vehicle-diagnosis-be/internal/repository/contract"
	"vehicle-diagnosis-be/internal/repository/specification"
	"vehicle-diagnosis-be/internal/repository/unitofwork"
	"vehicle-diagnosis-be/pkg/diagnosis/engine"
	"vehicle-diagnosis-be/pkg/diagnosis/retrieval"
	"vehicle-diagnosis-be/pkg/events"
	"vehicle-diagnosis-be/pkg/store"
)

// fakeDB is an in-memory stand-in for Postgres. Specifications are interpreted by type.
type fakeDB struct {
	mu          sync.Mutex
	problems    []*entity.Problem
	dealerships []*entity.Dealership
	labour      []*entity.Labour
	bays        []*entity.Bay
	parts       []*entity.Part
	rules       []*entity.InsuranceRule
	customers   []*entity.Customer
	vehicles    []*entity.Vehicle
	requests    []*entity.ServiceRequest

	begun, committed, rolledBack int
}

type fakeFactory struct{ db *fakeDB }

func (f fakeFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return &fakeUoW{db: f.db} }

type fakeUoW struct{ db *fakeDB }

func (u *fakeUoW) Begin(context.Context) error { u.db.begun++; return nil }
func (u *fakeUoW) Commit() error               { u.db.committed++; return nil }
func (u *fakeUoW) Rollback() error             { u.db.rolledBack++; return nil }

func (u *fakeUoW) ProblemRepository() contract.ProblemRepository { return problemRepo{u.db} }
func (u *fakeUoW) ProblemEmbeddingRepository() contract.ProblemEmbeddingRepository {
	panic("not used by services")
}
func (u *fakeUoW) DealershipRepository() contract.DealershipRepository { return dealerRepo{u.db} }
func (u *fakeUoW) LabourRepository() contract.LabourRepository         { return labourRepo{u.db} }
func (u *fakeUoW) BayRepository() contract.BayRepository               { return bayRepo{u.db} }
func (u *fakeUoW) PartRepository() contract.PartRepository             { return partRepo{u.db} }
func (u *fakeUoW) InsuranceRuleRepository() contract.InsuranceRuleRepository {
	return ruleRepo{u.db}
}
func (u *fakeUoW) CustomerRepository() contract.CustomerRepository { return customerRepo{u.db} }
func (u *fakeUoW) VehicleRepository() contract.VehicleRepository   { return vehicleRepo{u.db} }
func (u *fakeUoW) ServiceRequestRepository() contract.ServiceRequestRepository {
	return requestRepo{u.db}
}
func (u *fakeUoW) ConversationRepository() contract.ConversationRepository {
	panic("not used by services")
}

// query filters, orders and limits rows the way the gorm specifications would
func query[T any](rows []*T, attr func(*T, string) string, specs []specification.Specification) []*T {
	out := make([]*T, 0, len(rows))
	for _, r := range rows {
		if matches(r, attr, specs) {
			out = append(out, r)
		}
	}
	limit := -1
	for _, s := range specs {
		switch v := s.(type) {
		case specification.OrderBy:
			sort.SliceStable(out, func(i, j int) bool {
				a, b := attr(out[i], v.Field), attr(out[j], v.Field)
				if v.Desc {
					return a > b
				}
				return a < b
			})
		case specification.ProblemSearchQuery:
			q := strings.ToUpper(v.Query)
			sort.SliceStable(out, func(i, j int) bool {
				return attr(out[i], "id") == q && attr(out[j], "id") != q
			})
		case specification.Pagination:
			limit = v.Limit
		}
	}
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func matches[T any](r *T, attr func(*T, string) string, specs []specification.Specification) bool {
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			if attr(r, "id") != v.ID {
				return false
			}
		case specification.ByDealership:
			if attr(r, "dealership_id") != v.DealershipID {
				return false
			}
		case specification.ByCustomer:
			if attr(r, "customer_id") != v.CustomerID {
				return false
			}
		case specification.ByPartIDs:
			found := false
			for _, id := range v.PartIDs {
				if attr(r, "part_id") == id {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.FilterBy:
			if attr(r, v.Field) != fmt.Sprint(v.Value) {
				return false
			}
		case specification.ProblemSearchQuery:
			if !strings.Contains(strings.ToLower(attr(r, "search")), strings.ToLower(v.Query)) {
				return false
			}
		}
	}
	return true
}

func first[T any](rows []*T) *T {
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

type problemRepo struct{ db *fakeDB }

func problemAttr(p *entity.Problem, f string) string {
	switch f {
	case "id":
		return p.Id
	case "search":
		return p.Id + " " + p.Name + " " + strings.Join(p.Descriptions, " ")
	}
	return ""
}

func (r problemRepo) Create(_ context.Context, p *entity.Problem) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.problems = append(r.db.problems, p)
	return nil
}
func (r problemRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Problem, error) {
	return first(query(r.db.problems, problemAttr, specs)), nil
}
func (r problemRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Problem, error) {
	return query(r.db.problems, problemAttr, specs), nil
}
func (r problemRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(query(r.db.problems, problemAttr, specs))), nil
}

type dealerRepo struct{ db *fakeDB }

func dealerAttr(d *entity.Dealership, f string) string {
	if f == "id" {
		return d.Id
	}
	return ""
}

func (r dealerRepo) Create(_ context.Context, d *entity.Dealership) error {
	r.db.dealerships = append(r.db.dealerships, d)
	return nil
}
func (r dealerRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Dealership, error) {
	return first(query(r.db.dealerships, dealerAttr, specs)), nil
}
func (r dealerRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Dealership, error) {
	return query(r.db.dealerships, dealerAttr, specs), nil
}

type labourRepo struct{ db *fakeDB }

func labourAttr(l *entity.Labour, f string) string {
	switch f {
	case "id":
		return l.Id
	case "dealership_id":
		return l.DealershipId
	}
	return ""
}

func (r labourRepo) Create(_ context.Context, l *entity.Labour) error {
	r.db.labour = append(r.db.labour, l)
	return nil
}
func (r labourRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Labour, error) {
	return query(r.db.labour, labourAttr, specs), nil
}

type bayRepo struct{ db *fakeDB }

func bayAttr(b *entity.Bay, f string) string {
	switch f {
	case "id":
		return b.Id
	case "dealership_id":
		return b.DealershipId
	}
	return ""
}

func (r bayRepo) Create(_ context.Context, b *entity.Bay) error {
	r.db.bays = append(r.db.bays, b)
	return nil
}
func (r bayRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Bay, error) {
	return query(r.db.bays, bayAttr, specs), nil
}

type partRepo struct{ db *fakeDB }

func partAttr(p *entity.Part, f string) string {
	switch f {
	case "id":
		return p.Id
	case "part_id":
		return p.PartId
	case "dealership_id":
		return p.DealershipId
	}
	return ""
}

func (r partRepo) Create(_ context.Context, p *entity.Part) error {
	r.db.parts = append(r.db.parts, p)
	return nil
}
func (r partRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Part, error) {
	return query(r.db.parts, partAttr, specs), nil
}

type ruleRepo struct{ db *fakeDB }

func ruleAttr(r *entity.InsuranceRule, f string) string {
	switch f {
	case "id":
		return r.Id
	case "part_id":
		return r.PartId
	}
	return ""
}

func (r ruleRepo) Create(_ context.Context, rule *entity.InsuranceRule) error {
	r.db.rules = append(r.db.rules, rule)
	return nil
}
func (r ruleRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.InsuranceRule, error) {
	return query(r.db.rules, ruleAttr, specs), nil
}

type customerRepo struct{ db *fakeDB }

func customerAttr(c *entity.Customer, f string) string {
	if f == "id" {
		return c.Id
	}
	return ""
}

func (r customerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.db.customers = append(r.db.customers, c)
	return nil
}
func (r customerRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Customer, error) {
	return first(query(r.db.customers, customerAttr, specs)), nil
}

type vehicleRepo struct{ db *fakeDB }

func vehicleAttr(v *entity.Vehicle, f string) string {
	switch f {
	case "id":
		return v.Id
	case "customer_id":
		return v.CustomerId
	}
	return ""
}

func (r vehicleRepo) Create(_ context.Context, v *entity.Vehicle) error {
	r.db.vehicles = append(r.db.vehicles, v)
	return nil
}
func (r vehicleRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Vehicle, error) {
	return first(query(r.db.vehicles, vehicleAttr, specs)), nil
}
func (r vehicleRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Vehicle, error) {
	return query(r.db.vehicles, vehicleAttr, specs), nil
}

type requestRepo struct{ db *fakeDB }

func requestAttr(s *entity.ServiceRequest, f string) string {
	switch f {
	case "id":
		return s.Id
	case "customer_id":
		return s.CustomerId
	case "dealership_id":
		return s.DealershipId
	case "created_at":
		return s.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000")
	}
	return ""
}

func (r requestRepo) Create(_ context.Context, s *entity.ServiceRequest) error {
	cp := *s
	r.db.requests = append(r.db.requests, &cp)
	return nil
}
func (r requestRepo) Update(_ context.Context, s *entity.ServiceRequest) error {
	for i, existing := range r.db.requests {
		if existing.Id == s.Id {
			cp := *s
			r.db.requests[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("service request %s missing", s.Id)
}
func (r requestRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.ServiceRequest, error) {
	found := first(query(r.db.requests, requestAttr, specs))
	if found == nil {
		return nil, nil
	}
	cp := *found
	return &cp, nil
}
func (r requestRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ServiceRequest, error) {
	return query(r.db.requests, requestAttr, specs), nil
}

// recordingPublisher captures domain events
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

// sessionMap serves stored sessions by id
type sessionMap map[string]*store.Session

func (m sessionMap) Get(_ context.Context, id string) (*store.Session, error) {
	if s, ok := m[id]; ok {
		return s.Clone(), nil
	}
	return nil, fmt.Errorf("%w: %s", engine.ErrSessionNotFound, id)
}

// fakeIndex is a retrieval.Index returning fixed candidates
type fakeIndex struct {
	mu         sync.Mutex
	candidates []store.Candidate
	rebuilt    [][]retrieval.Entry
	sizeErr    error
}

func (f *fakeIndex) Retrieve(_ context.Context, _ string, k int) ([]store.Candidate, error) {
	if len(f.candidates) > k {
		return f.candidates[:k], nil
	}
	return f.candidates, nil
}

func (f *fakeIndex) Rebuild(_ context.Context, entries []retrieval.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rebuilt = append(f.rebuilt, entries)
	return nil
}

func (f *fakeIndex) Size(context.Context) (int, error) {
	if f.sizeErr != nil {
		return 0, f.sizeErr
	}
	return len(f.candidates), nil
}

func (f *fakeIndex) rebuilds() [][]retrieval.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]retrieval.Entry(nil), f.rebuilt...)
}
