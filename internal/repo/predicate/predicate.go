// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CommissionEntry is the predicate function for commissionentry builders.
type CommissionEntry func(*sql.Selector)

// CommissionPolicy is the predicate function for commissionpolicy builders.
type CommissionPolicy func(*sql.Selector)

// Facility is the predicate function for facility builders.
type Facility func(*sql.Selector)

// IdempotencyKey is the predicate function for idempotencykey builders.
type IdempotencyKey func(*sql.Selector)

// Settlement is the predicate function for settlement builders.
type Settlement func(*sql.Selector)

// SettlementItem is the predicate function for settlementitem builders.
type SettlementItem func(*sql.Selector)

// Transaction is the predicate function for transaction builders.
type Transaction func(*sql.Selector)
