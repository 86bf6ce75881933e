// Package facility manages the facility registry. A facility is the unit
// of tenancy: every transaction, ledger entry and settlement belongs to
// exactly one, and its default commission policy is created alongside it.
package facility

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/arogyahq/arogya_backend/internal/repo"
	entfacility "github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

type CreateRequest struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Currency string `json:"currency"`
}

type Service interface {
	// Create registers a facility with a zeroed commission policy.
	// Platform administrators only.
	Create(ctx context.Context, req CreateRequest) (*repo.Facility, error)

	Get(ctx context.Context, id uuid.UUID) (*repo.Facility, error)

	// List returns facilities visible to the caller, newest first.
	List(ctx context.Context, page, pageSize int) ([]*repo.Facility, int, error)

	// SetActive flips the active flag. Deactivating a facility blocks new
	// captures but leaves its history and open settlements untouched.
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*repo.Facility, error)
}

type facilityService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &facilityService{db: db}
}

func (s *facilityService) Create(ctx context.Context, req CreateRequest) (*repo.Facility, error) {
	caller := reqctx.MustCaller(ctx)
	if !caller.IsSuperAdmin() {
		return nil, reqctx.ErrTenantAccessDenied
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Code = strings.TrimSpace(strings.ToUpper(req.Code))
	req.Currency = strings.TrimSpace(strings.ToUpper(req.Currency))
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Code == "" {
		return nil, ErrCodeRequired
	}
	if req.Currency == "" {
		req.Currency = "INR"
	}
	if len(req.Currency) != 3 {
		return nil, ErrInvalidCurrency
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	f, err := tx.Facility.Create().
		SetName(req.Name).
		SetCode(req.Code).
		SetCurrency(req.Currency).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrCodeAlreadyInUse
		}
		return nil, fmt.Errorf("create facility: %w", err)
	}

	// Zero-rate policy so captures work immediately; rates are set later
	// through the policy service.
	if _, err := tx.CommissionPolicy.Create().
		SetFacilityID(f.ID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("create default policy: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return f, nil
}

func (s *facilityService) Get(ctx context.Context, id uuid.UUID) (*repo.Facility, error) {
	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(id); err != nil {
		return nil, err
	}

	f, err := s.db.Facility.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrFacilityNotFound
		}
		return nil, fmt.Errorf("get facility: %w", err)
	}
	return f, nil
}

func (s *facilityService) List(ctx context.Context, page, pageSize int) ([]*repo.Facility, int, error) {
	caller := reqctx.MustCaller(ctx)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	q := s.db.Facility.Query()
	if visible := caller.VisibleFacilities(); visible != nil {
		q = q.Where(entfacility.IDIn(visible...))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count facilities: %w", err)
	}

	rows, err := q.
		Order(entfacility.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list facilities: %w", err)
	}
	return rows, total, nil
}

func (s *facilityService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*repo.Facility, error) {
	caller := reqctx.MustCaller(ctx)
	if !caller.IsSuperAdmin() {
		return nil, reqctx.ErrTenantAccessDenied
	}

	f, err := s.db.Facility.UpdateOneID(id).
		SetIsActive(active).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrFacilityNotFound
		}
		return nil, fmt.Errorf("update facility: %w", err)
	}
	return f, nil
}
