package policy

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arogyahq/arogya_backend/internal/repo"
	entpolicy "github.com/arogyahq/arogya_backend/internal/repo/commissionpolicy"
	"github.com/arogyahq/arogya_backend/pkg/money"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

// CashCommissionType selects how cash collections are charged.
type CashCommissionType string

const (
	CashPercentage CashCommissionType = "percentage"
	CashFixed      CashCommissionType = "fixed"
)

// Policy is the parsed, validated form of a facility's commission
// configuration. The calculator only ever sees this type; raw stored rates
// never reach arithmetic unparsed.
type Policy struct {
	FacilityID uuid.UUID

	PlatformMDRRate decimal.Decimal
	GatewayMDRRate  decimal.Decimal

	TaxOnCommission bool
	TaxRate         decimal.Decimal

	CashCommissionEnabled bool
	CashCommissionType    CashCommissionType
	CashCommissionValue   decimal.Decimal

	RoundingMode money.RoundingMode
}

// OnlineMarginRate is the fraction of an online payment the platform keeps:
// its own MDR minus what the gateway takes.
func (p Policy) OnlineMarginRate() decimal.Decimal {
	return p.PlatformMDRRate.Sub(p.GatewayMDRRate)
}

// UpdateRequest carries raw policy fields as submitted by a facility admin.
type UpdateRequest struct {
	PlatformMDRRate       string `json:"platform_mdr_rate"`
	GatewayMDRRate        string `json:"gateway_mdr_rate"`
	TaxOnCommission       bool   `json:"tax_on_commission"`
	TaxRate               string `json:"tax_rate"`
	CashCommissionEnabled bool   `json:"cash_commission_enabled"`
	CashCommissionType    string `json:"cash_commission_type"`
	CashCommissionValue   string `json:"cash_commission_value"`
	RoundingMode          string `json:"rounding_mode"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Current returns the parsed policy in force for a facility right now.
	// Calculations snapshot its values; later edits never alter past entries.
	Current(ctx context.Context, facilityID uuid.UUID) (Policy, error)

	// Get returns the stored row for display.
	Get(ctx context.Context, facilityID uuid.UUID) (*repo.CommissionPolicy, error)

	// Upsert validates and writes a facility's policy.
	Upsert(ctx context.Context, facilityID uuid.UUID, req UpdateRequest) (*repo.CommissionPolicy, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type policyService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &policyService{db: db}
}

func (s *policyService) Current(ctx context.Context, facilityID uuid.UUID) (Policy, error) {
	row, err := s.Get(ctx, facilityID)
	if err != nil {
		return Policy{}, err
	}
	return parse(row)
}

func (s *policyService) Get(ctx context.Context, facilityID uuid.UUID) (*repo.CommissionPolicy, error) {
	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(facilityID); err != nil {
		return nil, err
	}

	row, err := s.db.CommissionPolicy.Query().
		Where(entpolicy.FacilityID(facilityID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPolicyNotFound
		}
		return nil, fmt.Errorf("get policy: %w", err)
	}
	return row, nil
}

func (s *policyService) Upsert(ctx context.Context, facilityID uuid.UUID, req UpdateRequest) (*repo.CommissionPolicy, error) {
	caller := reqctx.MustCaller(ctx)
	if err := caller.RequireFacility(facilityID); err != nil {
		return nil, err
	}

	if err := validate(req); err != nil {
		return nil, err
	}

	existing, err := s.db.CommissionPolicy.Query().
		Where(entpolicy.FacilityID(facilityID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("query policy: %w", err)
	}

	if existing != nil {
		updated, err := s.db.CommissionPolicy.UpdateOne(existing).
			SetPlatformMdrRate(req.PlatformMDRRate).
			SetGatewayMdrRate(req.GatewayMDRRate).
			SetTaxOnCommission(req.TaxOnCommission).
			SetTaxRate(req.TaxRate).
			SetCashCommissionEnabled(req.CashCommissionEnabled).
			SetCashCommissionType(entpolicy.CashCommissionType(req.CashCommissionType)).
			SetCashCommissionValue(req.CashCommissionValue).
			SetRoundingMode(entpolicy.RoundingMode(req.RoundingMode)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update policy: %w", err)
		}
		return updated, nil
	}

	created, err := s.db.CommissionPolicy.Create().
		SetFacilityID(facilityID).
		SetPlatformMdrRate(req.PlatformMDRRate).
		SetGatewayMdrRate(req.GatewayMDRRate).
		SetTaxOnCommission(req.TaxOnCommission).
		SetTaxRate(req.TaxRate).
		SetCashCommissionEnabled(req.CashCommissionEnabled).
		SetCashCommissionType(entpolicy.CashCommissionType(req.CashCommissionType)).
		SetCashCommissionValue(req.CashCommissionValue).
		SetRoundingMode(entpolicy.RoundingMode(req.RoundingMode)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create policy: %w", err)
	}
	return created, nil
}

// ---------------------------------------------------------------------------
// Validation / parsing
// ---------------------------------------------------------------------------

func validate(req UpdateRequest) error {
	if _, err := parseRate("platform_mdr_rate", req.PlatformMDRRate); err != nil {
		return err
	}
	if _, err := parseRate("gateway_mdr_rate", req.GatewayMDRRate); err != nil {
		return err
	}
	if _, err := parseRate("tax_rate", req.TaxRate); err != nil {
		return err
	}

	switch CashCommissionType(req.CashCommissionType) {
	case CashPercentage:
		if _, err := parseRate("cash_commission_value", req.CashCommissionValue); err != nil {
			return err
		}
	case CashFixed:
		fee, err := decimal.NewFromString(req.CashCommissionValue)
		if err != nil {
			return &PolicyError{Field: "cash_commission_value", Reason: "not a decimal"}
		}
		if fee.IsNegative() {
			return &PolicyError{Field: "cash_commission_value", Reason: "fixed fee must not be negative"}
		}
	default:
		return &PolicyError{Field: "cash_commission_type", Reason: "must be percentage or fixed"}
	}

	if !money.ValidRoundingMode(req.RoundingMode) {
		return &PolicyError{Field: "rounding_mode", Reason: "must be nearest, up or down"}
	}
	return nil
}

func parseRate(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, &PolicyError{Field: field, Reason: "missing"}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, &PolicyError{Field: field, Reason: "not a decimal"}
	}
	if !money.RateInRange(d) {
		return decimal.Decimal{}, &PolicyError{Field: field, Reason: "rate must be within [0, 1]"}
	}
	return d, nil
}

func parse(row *repo.CommissionPolicy) (Policy, error) {
	platform, err := parseRate("platform_mdr_rate", row.PlatformMdrRate)
	if err != nil {
		return Policy{}, err
	}
	gateway, err := parseRate("gateway_mdr_rate", row.GatewayMdrRate)
	if err != nil {
		return Policy{}, err
	}
	tax, err := parseRate("tax_rate", row.TaxRate)
	if err != nil {
		return Policy{}, err
	}

	var cashValue decimal.Decimal
	switch CashCommissionType(row.CashCommissionType) {
	case CashPercentage:
		cashValue, err = parseRate("cash_commission_value", row.CashCommissionValue)
		if err != nil {
			return Policy{}, err
		}
	case CashFixed:
		cashValue, err = decimal.NewFromString(row.CashCommissionValue)
		if err != nil {
			return Policy{}, &PolicyError{Field: "cash_commission_value", Reason: "not a decimal"}
		}
		if cashValue.IsNegative() {
			return Policy{}, &PolicyError{Field: "cash_commission_value", Reason: "fixed fee must not be negative"}
		}
	default:
		return Policy{}, &PolicyError{Field: "cash_commission_type", Reason: "unknown type"}
	}

	return Policy{
		FacilityID:            row.FacilityID,
		PlatformMDRRate:       platform,
		GatewayMDRRate:        gateway,
		TaxOnCommission:       row.TaxOnCommission,
		TaxRate:               tax,
		CashCommissionEnabled: row.CashCommissionEnabled,
		CashCommissionType:    CashCommissionType(row.CashCommissionType),
		CashCommissionValue:   cashValue,
		RoundingMode:          money.RoundingMode(row.RoundingMode),
	}, nil
}
