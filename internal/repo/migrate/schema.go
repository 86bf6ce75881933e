// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CommissionEntriesColumns holds the columns for the "commission_entries" table.
	CommissionEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"online", "cash"}},
		{Name: "gross_amount", Type: field.TypeInt64},
		{Name: "commission_amount", Type: field.TypeInt64},
		{Name: "facility_share", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString, Size: 3},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "snapshot_rate", Type: field.TypeString, Size: 20},
		{Name: "snapshot_tax_rate", Type: field.TypeString, Size: 20, Default: "0"},
		{Name: "snapshot_cash_type", Type: field.TypeEnum, Enums: []string{"percentage", "fixed", "none"}, Default: "none"},
		{Name: "snapshot_rounding", Type: field.TypeEnum, Enums: []string{"nearest", "up", "down"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"unsettled", "included_in_settlement", "settled"}, Default: "unsettled"},
		{Name: "settlement_id", Type: field.TypeUUID, Nullable: true},
		{Name: "reverses_entry_id", Type: field.TypeUUID, Nullable: true},
		{Name: "facility_id", Type: field.TypeUUID},
		{Name: "transaction_id", Type: field.TypeUUID},
	}
	// CommissionEntriesTable holds the schema information for the "commission_entries" table.
	CommissionEntriesTable = &schema.Table{
		Name:       "commission_entries",
		Columns:    CommissionEntriesColumns,
		PrimaryKey: []*schema.Column{CommissionEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "commission_entries_facilities_entries",
				Columns:    []*schema.Column{CommissionEntriesColumns[16]},
				RefColumns: []*schema.Column{FacilitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "commission_entries_transactions_entries",
				Columns:    []*schema.Column{CommissionEntriesColumns[17]},
				RefColumns: []*schema.Column{TransactionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "commissionentry_facility_id_seq",
				Unique:  true,
				Columns: []*schema.Column{CommissionEntriesColumns[16], CommissionEntriesColumns[2]},
			},
			{
				Name:    "commissionentry_facility_id_status",
				Unique:  false,
				Columns: []*schema.Column{CommissionEntriesColumns[16], CommissionEntriesColumns[13]},
			},
			{
				Name:    "commissionentry_facility_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{CommissionEntriesColumns[16], CommissionEntriesColumns[8]},
			},
			{
				Name:    "commissionentry_transaction_id",
				Unique:  false,
				Columns: []*schema.Column{CommissionEntriesColumns[17]},
			},
			{
				Name:    "commissionentry_settlement_id",
				Unique:  false,
				Columns: []*schema.Column{CommissionEntriesColumns[14]},
			},
		},
	}
	// CommissionPoliciesColumns holds the columns for the "commission_policies" table.
	CommissionPoliciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "platform_mdr_rate", Type: field.TypeString, Size: 20, Default: "0"},
		{Name: "gateway_mdr_rate", Type: field.TypeString, Size: 20, Default: "0"},
		{Name: "tax_on_commission", Type: field.TypeBool, Default: false},
		{Name: "tax_rate", Type: field.TypeString, Size: 20, Default: "0"},
		{Name: "cash_commission_enabled", Type: field.TypeBool, Default: false},
		{Name: "cash_commission_type", Type: field.TypeEnum, Enums: []string{"percentage", "fixed"}, Default: "percentage"},
		{Name: "cash_commission_value", Type: field.TypeString, Size: 20, Default: "0"},
		{Name: "rounding_mode", Type: field.TypeEnum, Enums: []string{"nearest", "up", "down"}, Default: "nearest"},
		{Name: "facility_id", Type: field.TypeUUID, Unique: true},
	}
	// CommissionPoliciesTable holds the schema information for the "commission_policies" table.
	CommissionPoliciesTable = &schema.Table{
		Name:       "commission_policies",
		Columns:    CommissionPoliciesColumns,
		PrimaryKey: []*schema.Column{CommissionPoliciesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "commission_policies_facilities_policy",
				Columns:    []*schema.Column{CommissionPoliciesColumns[11]},
				RefColumns: []*schema.Column{FacilitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// FacilitiesColumns holds the columns for the "facilities" table.
	FacilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "code", Type: field.TypeString, Unique: true, Size: 30},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "INR"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "ledger_seq", Type: field.TypeInt64, Default: 0},
	}
	// FacilitiesTable holds the schema information for the "facilities" table.
	FacilitiesTable = &schema.Table{
		Name:       "facilities",
		Columns:    FacilitiesColumns,
		PrimaryKey: []*schema.Column{FacilitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "facility_is_active",
				Unique:  false,
				Columns: []*schema.Column{FacilitiesColumns[6]},
			},
		},
	}
	// IdempotencyKeysColumns holds the columns for the "idempotency_keys" table.
	IdempotencyKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "key", Type: field.TypeString, Unique: true, Size: 120},
		{Name: "operation", Type: field.TypeString, Size: 60},
		{Name: "facility_id", Type: field.TypeUUID},
		{Name: "settlement_id", Type: field.TypeUUID, Nullable: true},
	}
	// IdempotencyKeysTable holds the schema information for the "idempotency_keys" table.
	IdempotencyKeysTable = &schema.Table{
		Name:       "idempotency_keys",
		Columns:    IdempotencyKeysColumns,
		PrimaryKey: []*schema.Column{IdempotencyKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idempotencykey_facility_id_operation",
				Unique:  false,
				Columns: []*schema.Column{IdempotencyKeysColumns[4], IdempotencyKeysColumns[3]},
			},
		},
	}
	// SettlementsColumns holds the columns for the "settlements" table.
	SettlementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "settlement_type", Type: field.TypeEnum, Enums: []string{"online", "cash", "mixed"}},
		{Name: "period_from", Type: field.TypeTime},
		{Name: "period_to", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "pending_approval", "approved", "paid", "cancelled"}, Default: "draft"},
		{Name: "total_collections", Type: field.TypeInt64, Default: 0},
		{Name: "total_commission", Type: field.TypeInt64, Default: 0},
		{Name: "facility_share", Type: field.TypeInt64, Default: 0},
		{Name: "platform_share", Type: field.TypeInt64, Default: 0},
		{Name: "currency", Type: field.TypeString, Size: 3},
		{Name: "submitted_by", Type: field.TypeUUID, Nullable: true},
		{Name: "approved_by", Type: field.TypeUUID, Nullable: true},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "paid_by", Type: field.TypeUUID, Nullable: true},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "payment_reference", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "payment_method", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "cancelled_by", Type: field.TypeUUID, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "facility_id", Type: field.TypeUUID},
	}
	// SettlementsTable holds the schema information for the "settlements" table.
	SettlementsTable = &schema.Table{
		Name:       "settlements",
		Columns:    SettlementsColumns,
		PrimaryKey: []*schema.Column{SettlementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "settlements_facilities_settlements",
				Columns:    []*schema.Column{SettlementsColumns[22]},
				RefColumns: []*schema.Column{FacilitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "settlement_facility_id_status",
				Unique:  false,
				Columns: []*schema.Column{SettlementsColumns[22], SettlementsColumns[6]},
			},
			{
				Name:    "settlement_facility_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SettlementsColumns[22], SettlementsColumns[1]},
			},
		},
	}
	// SettlementItemsColumns holds the columns for the "settlement_items" table.
	SettlementItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "commission_amount", Type: field.TypeInt64},
		{Name: "entry_id", Type: field.TypeUUID},
		{Name: "settlement_id", Type: field.TypeUUID},
	}
	// SettlementItemsTable holds the schema information for the "settlement_items" table.
	SettlementItemsTable = &schema.Table{
		Name:       "settlement_items",
		Columns:    SettlementItemsColumns,
		PrimaryKey: []*schema.Column{SettlementItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "settlement_items_commission_entries_items",
				Columns:    []*schema.Column{SettlementItemsColumns[3]},
				RefColumns: []*schema.Column{CommissionEntriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "settlement_items_settlements_items",
				Columns:    []*schema.Column{SettlementItemsColumns[4]},
				RefColumns: []*schema.Column{SettlementsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "settlementitem_settlement_id_entry_id",
				Unique:  true,
				Columns: []*schema.Column{SettlementItemsColumns[4], SettlementItemsColumns[3]},
			},
			{
				Name:    "settlementitem_entry_id",
				Unique:  false,
				Columns: []*schema.Column{SettlementItemsColumns[3]},
			},
		},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"online", "cash"}},
		{Name: "gross_amount", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString, Size: 3},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "bill_reference", Type: field.TypeString, Size: 100},
		{Name: "collected_by", Type: field.TypeUUID, Nullable: true},
		{Name: "gateway_txn_id", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"captured", "reversed"}, Default: "captured"},
		{Name: "facility_id", Type: field.TypeUUID},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_facilities_transactions",
				Columns:    []*schema.Column{TransactionsColumns[10]},
				RefColumns: []*schema.Column{FacilitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_facility_id_bill_reference",
				Unique:  true,
				Columns: []*schema.Column{TransactionsColumns[10], TransactionsColumns[6]},
			},
			{
				Name:    "transaction_facility_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[10], TransactionsColumns[5]},
			},
			{
				Name:    "transaction_facility_id_channel",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[10], TransactionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CommissionEntriesTable,
		CommissionPoliciesTable,
		FacilitiesTable,
		IdempotencyKeysTable,
		SettlementsTable,
		SettlementItemsTable,
		TransactionsTable,
	}
)

func init() {
	CommissionEntriesTable.ForeignKeys[0].RefTable = FacilitiesTable
	CommissionEntriesTable.ForeignKeys[1].RefTable = TransactionsTable
	CommissionPoliciesTable.ForeignKeys[0].RefTable = FacilitiesTable
	SettlementsTable.ForeignKeys[0].RefTable = FacilitiesTable
	SettlementItemsTable.ForeignKeys[0].RefTable = CommissionEntriesTable
	SettlementItemsTable.ForeignKeys[1].RefTable = SettlementsTable
	TransactionsTable.ForeignKeys[0].RefTable = FacilitiesTable
}
