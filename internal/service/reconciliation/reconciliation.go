// Package reconciliation answers read-only questions over the ledger and
// settlement stores: what is pending, how old it is, and how the platform
// is doing overall. Every projection is recomputed from the two
// authoritative stores; the cache in cache.go is a convenience layer that
// can be dropped or rebuilt at any time.
package reconciliation

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/arogyahq/arogya_backend/config"
	"github.com/arogyahq/arogya_backend/internal/repo"
	entent "github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	entfacility "github.com/arogyahq/arogya_backend/internal/repo/facility"
	entsettle "github.com/arogyahq/arogya_backend/internal/repo/settlement"
	enttxn "github.com/arogyahq/arogya_backend/internal/repo/transaction"
	redispkg "github.com/arogyahq/arogya_backend/pkg/redis"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

// AgingBucket groups pending commission by elapsed days since the
// underlying transaction occurred.
type AgingBucket struct {
	Label      string `json:"label"`
	MinDays    int    `json:"min_days"`
	MaxDays    int    `json:"max_days"` // -1 for the open-ended last bucket
	Commission int64  `json:"commission"`
	EntryCount int    `json:"entry_count"`
}

// FacilitySummary is the dashboard view for one facility.
type FacilitySummary struct {
	FacilityID           uuid.UUID  `json:"facility_id"`
	TotalBilled          int64      `json:"total_billed"`
	TotalCollectedOnline int64      `json:"total_collected_online"`
	TotalCollectedCash   int64      `json:"total_collected_cash"`
	CommissionEarned     int64      `json:"commission_earned"`
	CommissionPending    int64      `json:"commission_pending"`
	LastSettlementAt     *time.Time `json:"last_settlement_at,omitempty"`
	LastSettlementAmount int64      `json:"last_settlement_amount"`
}

// PlatformRollup sums facility metrics across every facility the caller
// may see.
type PlatformRollup struct {
	FacilityCount     int   `json:"facility_count"`
	TotalBilled       int64 `json:"total_billed"`
	CommissionEarned  int64 `json:"commission_earned"`
	CommissionPending int64 `json:"commission_pending"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// PendingCommission sums commission not yet paid out: entries unsettled
	// or claimed by a settlement that has not reached paid.
	PendingCommission(ctx context.Context, facilityID uuid.UUID) (int64, error)

	// AgingReport buckets pending commission by transaction age.
	AgingReport(ctx context.Context, facilityID uuid.UUID) ([]AgingBucket, error)

	// Summary builds the facility dashboard view.
	Summary(ctx context.Context, facilityID uuid.UUID) (*FacilitySummary, error)

	// Rollup sums across all facilities visible to the caller.
	Rollup(ctx context.Context) (*PlatformRollup, error)

	// Refresh force-rebuilds a facility's cached projections.
	Refresh(ctx context.Context, facilityID uuid.UUID) error
}

type reconService struct {
	db    *repo.Client
	cache *projectionCache
	cfg   *config.Config
}

func New(db *repo.Client, rc *redispkg.Client, cfg *config.Config) Service {
	return &reconService{
		db:    db,
		cache: newProjectionCache(rc, cfg),
		cfg:   cfg,
	}
}

// ---------------------------------------------------------------------------
// Projections
// ---------------------------------------------------------------------------

var pendingStatuses = []entent.Status{
	entent.StatusUnsettled,
	entent.StatusIncludedInSettlement,
}

func (s *reconService) PendingCommission(ctx context.Context, facilityID uuid.UUID) (int64, error) {
	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(facilityID); err != nil {
		return 0, err
	}

	if v, ok := s.cache.getPending(ctx, facilityID); ok {
		return v, nil
	}

	v, err := s.pendingCommission(ctx, facilityID)
	if err != nil {
		return 0, err
	}
	s.cache.setPending(ctx, facilityID, v)
	return v, nil
}

func (s *reconService) pendingCommission(ctx context.Context, facilityID uuid.UUID) (int64, error) {
	var rows []struct {
		Sum int64 `json:"sum"`
	}
	err := s.db.CommissionEntry.Query().
		Where(
			entent.FacilityID(facilityID),
			entent.StatusIn(pendingStatuses...),
		).
		Aggregate(repo.Sum(entent.FieldCommissionAmount)).
		Scan(ctx, &rows)
	if err != nil {
		return 0, fmt.Errorf("sum pending commission: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Sum, nil
}

func (s *reconService) AgingReport(ctx context.Context, facilityID uuid.UUID) ([]AgingBucket, error) {
	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(facilityID); err != nil {
		return nil, err
	}

	if buckets, ok := s.cache.getAging(ctx, facilityID); ok {
		return buckets, nil
	}

	buckets, err := s.agingReport(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	s.cache.setAging(ctx, facilityID, buckets)
	return buckets, nil
}

func (s *reconService) agingReport(ctx context.Context, facilityID uuid.UUID) ([]AgingBucket, error) {
	entries, err := s.db.CommissionEntry.Query().
		Where(
			entent.FacilityID(facilityID),
			entent.StatusIn(pendingStatuses...),
		).
		Order(entent.ByOccurredAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pending entries: %w", err)
	}

	buckets := makeBuckets(s.cfg.AgingBucketDaysOrDefault())
	now := time.Now().UTC()

	for _, e := range entries {
		age := int(now.Sub(e.OccurredAt).Hours() / 24)
		for i := range buckets {
			b := &buckets[i]
			if age >= b.MinDays && (b.MaxDays < 0 || age <= b.MaxDays) {
				b.Commission += e.CommissionAmount
				b.EntryCount++
				break
			}
		}
	}
	return buckets, nil
}

// makeBuckets turns configured upper bounds (30, 60, 90) into contiguous
// ranges: 0-30, 31-60, 61-90, >90.
func makeBuckets(bounds []int) []AgingBucket {
	buckets := make([]AgingBucket, 0, len(bounds)+1)
	lo := 0
	for _, hi := range bounds {
		buckets = append(buckets, AgingBucket{
			Label:   fmt.Sprintf("%d-%d", lo, hi),
			MinDays: lo,
			MaxDays: hi,
		})
		lo = hi + 1
	}
	buckets = append(buckets, AgingBucket{
		Label:   fmt.Sprintf(">%d", lo-1),
		MinDays: lo,
		MaxDays: -1,
	})
	return buckets
}

func (s *reconService) Summary(ctx context.Context, facilityID uuid.UUID) (*FacilitySummary, error) {
	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(facilityID); err != nil {
		return nil, err
	}

	if sum, ok := s.cache.getSummary(ctx, facilityID); ok {
		return sum, nil
	}

	sum, err := s.summary(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	s.cache.setSummary(ctx, facilityID, sum)
	return sum, nil
}

func (s *reconService) summary(ctx context.Context, facilityID uuid.UUID) (*FacilitySummary, error) {
	out := &FacilitySummary{FacilityID: facilityID}

	online, err := s.sumTransactions(ctx, facilityID, enttxn.ChannelOnline)
	if err != nil {
		return nil, err
	}
	cash, err := s.sumTransactions(ctx, facilityID, enttxn.ChannelCash)
	if err != nil {
		return nil, err
	}
	out.TotalCollectedOnline = online
	out.TotalCollectedCash = cash
	out.TotalBilled = online + cash

	earned, err := s.sumCommission(ctx, facilityID, nil)
	if err != nil {
		return nil, err
	}
	out.CommissionEarned = earned

	pending, err := s.pendingCommission(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	out.CommissionPending = pending

	last, err := s.db.Settlement.Query().
		Where(
			entsettle.FacilityID(facilityID),
			entsettle.StatusEQ(entsettle.StatusPaid),
		).
		Order(entsettle.ByPaidAt(sql.OrderDesc())).
		First(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("last settlement: %w", err)
	}
	if last != nil {
		out.LastSettlementAt = last.PaidAt
		out.LastSettlementAmount = last.TotalCommission
	}

	return out, nil
}

func (s *reconService) Rollup(ctx context.Context) (*PlatformRollup, error) {
	caller := reqctx.MustCaller(ctx)

	q := s.db.Facility.Query().Where(entfacility.IsActive(true))
	if visible := caller.VisibleFacilities(); visible != nil {
		q = q.Where(entfacility.IDIn(visible...))
	}

	facilities, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}

	out := &PlatformRollup{FacilityCount: len(facilities)}
	for _, f := range facilities {
		sum, err := s.summary(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		out.TotalBilled += sum.TotalBilled
		out.CommissionEarned += sum.CommissionEarned
		out.CommissionPending += sum.CommissionPending
	}
	return out, nil
}

func (s *reconService) Refresh(ctx context.Context, facilityID uuid.UUID) error {
	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(facilityID); err != nil {
		return err
	}

	s.cache.invalidate(ctx, facilityID)

	pending, err := s.pendingCommission(ctx, facilityID)
	if err != nil {
		return err
	}
	s.cache.setPending(ctx, facilityID, pending)

	buckets, err := s.agingReport(ctx, facilityID)
	if err != nil {
		return err
	}
	s.cache.setAging(ctx, facilityID, buckets)

	sum, err := s.summary(ctx, facilityID)
	if err != nil {
		return err
	}
	s.cache.setSummary(ctx, facilityID, sum)
	return nil
}

// ---------------------------------------------------------------------------
// Sum helpers
// ---------------------------------------------------------------------------

func (s *reconService) sumTransactions(ctx context.Context, facilityID uuid.UUID, channel enttxn.Channel) (int64, error) {
	var rows []struct {
		Sum int64 `json:"sum"`
	}
	err := s.db.Transaction.Query().
		Where(
			enttxn.FacilityID(facilityID),
			enttxn.ChannelEQ(channel),
			enttxn.StatusEQ(enttxn.StatusCaptured),
		).
		Aggregate(repo.Sum(enttxn.FieldGrossAmount)).
		Scan(ctx, &rows)
	if err != nil {
		return 0, fmt.Errorf("sum transactions: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Sum, nil
}

func (s *reconService) sumCommission(ctx context.Context, facilityID uuid.UUID, statuses []entent.Status) (int64, error) {
	q := s.db.CommissionEntry.Query().
		Where(entent.FacilityID(facilityID))
	if len(statuses) > 0 {
		q = q.Where(entent.StatusIn(statuses...))
	}

	var rows []struct {
		Sum int64 `json:"sum"`
	}
	if err := q.Aggregate(repo.Sum(entent.FieldCommissionAmount)).Scan(ctx, &rows); err != nil {
		return 0, fmt.Errorf("sum commission: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Sum, nil
}
