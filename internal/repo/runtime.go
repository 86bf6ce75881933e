// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	"github.com/arogyahq/arogya_backend/internal/repo/commissionpolicy"
	"github.com/arogyahq/arogya_backend/internal/repo/facility"
	"github.com/arogyahq/arogya_backend/internal/repo/idempotencykey"
	"github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/internal/repo/settlementitem"
	"github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/arogyahq/arogya_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	commissionentryMixin := schema.CommissionEntry{}.Mixin()
	commissionentryMixinFields0 := commissionentryMixin[0].Fields()
	_ = commissionentryMixinFields0
	commissionentryMixinFields1 := commissionentryMixin[1].Fields()
	_ = commissionentryMixinFields1
	commissionentryFields := schema.CommissionEntry{}.Fields()
	_ = commissionentryFields
	// commissionentryDescCreatedAt is the schema descriptor for created_at field.
	commissionentryDescCreatedAt := commissionentryMixinFields1[0].Descriptor()
	// commissionentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	commissionentry.DefaultCreatedAt = commissionentryDescCreatedAt.Default.(func() time.Time)
	// commissionentryDescCurrency is the schema descriptor for currency field.
	commissionentryDescCurrency := commissionentryFields[7].Descriptor()
	// commissionentry.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	commissionentry.CurrencyValidator = commissionentryDescCurrency.Validators[0].(func(string) error)
	// commissionentryDescSnapshotRate is the schema descriptor for snapshot_rate field.
	commissionentryDescSnapshotRate := commissionentryFields[9].Descriptor()
	// commissionentry.SnapshotRateValidator is a validator for the "snapshot_rate" field. It is called by the builders before save.
	commissionentry.SnapshotRateValidator = commissionentryDescSnapshotRate.Validators[0].(func(string) error)
	// commissionentryDescSnapshotTaxRate is the schema descriptor for snapshot_tax_rate field.
	commissionentryDescSnapshotTaxRate := commissionentryFields[10].Descriptor()
	// commissionentry.DefaultSnapshotTaxRate holds the default value on creation for the snapshot_tax_rate field.
	commissionentry.DefaultSnapshotTaxRate = commissionentryDescSnapshotTaxRate.Default.(string)
	// commissionentry.SnapshotTaxRateValidator is a validator for the "snapshot_tax_rate" field. It is called by the builders before save.
	commissionentry.SnapshotTaxRateValidator = commissionentryDescSnapshotTaxRate.Validators[0].(func(string) error)
	// commissionentryDescID is the schema descriptor for id field.
	commissionentryDescID := commissionentryMixinFields0[0].Descriptor()
	// commissionentry.DefaultID holds the default value on creation for the id field.
	commissionentry.DefaultID = commissionentryDescID.Default.(func() uuid.UUID)
	commissionpolicyMixin := schema.CommissionPolicy{}.Mixin()
	commissionpolicyMixinFields0 := commissionpolicyMixin[0].Fields()
	_ = commissionpolicyMixinFields0
	commissionpolicyMixinFields1 := commissionpolicyMixin[1].Fields()
	_ = commissionpolicyMixinFields1
	commissionpolicyFields := schema.CommissionPolicy{}.Fields()
	_ = commissionpolicyFields
	// commissionpolicyDescCreatedAt is the schema descriptor for created_at field.
	commissionpolicyDescCreatedAt := commissionpolicyMixinFields1[0].Descriptor()
	// commissionpolicy.DefaultCreatedAt holds the default value on creation for the created_at field.
	commissionpolicy.DefaultCreatedAt = commissionpolicyDescCreatedAt.Default.(func() time.Time)
	// commissionpolicyDescUpdatedAt is the schema descriptor for updated_at field.
	commissionpolicyDescUpdatedAt := commissionpolicyMixinFields1[1].Descriptor()
	// commissionpolicy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	commissionpolicy.DefaultUpdatedAt = commissionpolicyDescUpdatedAt.Default.(func() time.Time)
	// commissionpolicy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	commissionpolicy.UpdateDefaultUpdatedAt = commissionpolicyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// commissionpolicyDescPlatformMdrRate is the schema descriptor for platform_mdr_rate field.
	commissionpolicyDescPlatformMdrRate := commissionpolicyFields[1].Descriptor()
	// commissionpolicy.DefaultPlatformMdrRate holds the default value on creation for the platform_mdr_rate field.
	commissionpolicy.DefaultPlatformMdrRate = commissionpolicyDescPlatformMdrRate.Default.(string)
	// commissionpolicy.PlatformMdrRateValidator is a validator for the "platform_mdr_rate" field. It is called by the builders before save.
	commissionpolicy.PlatformMdrRateValidator = commissionpolicyDescPlatformMdrRate.Validators[0].(func(string) error)
	// commissionpolicyDescGatewayMdrRate is the schema descriptor for gateway_mdr_rate field.
	commissionpolicyDescGatewayMdrRate := commissionpolicyFields[2].Descriptor()
	// commissionpolicy.DefaultGatewayMdrRate holds the default value on creation for the gateway_mdr_rate field.
	commissionpolicy.DefaultGatewayMdrRate = commissionpolicyDescGatewayMdrRate.Default.(string)
	// commissionpolicy.GatewayMdrRateValidator is a validator for the "gateway_mdr_rate" field. It is called by the builders before save.
	commissionpolicy.GatewayMdrRateValidator = commissionpolicyDescGatewayMdrRate.Validators[0].(func(string) error)
	// commissionpolicyDescTaxOnCommission is the schema descriptor for tax_on_commission field.
	commissionpolicyDescTaxOnCommission := commissionpolicyFields[3].Descriptor()
	// commissionpolicy.DefaultTaxOnCommission holds the default value on creation for the tax_on_commission field.
	commissionpolicy.DefaultTaxOnCommission = commissionpolicyDescTaxOnCommission.Default.(bool)
	// commissionpolicyDescTaxRate is the schema descriptor for tax_rate field.
	commissionpolicyDescTaxRate := commissionpolicyFields[4].Descriptor()
	// commissionpolicy.DefaultTaxRate holds the default value on creation for the tax_rate field.
	commissionpolicy.DefaultTaxRate = commissionpolicyDescTaxRate.Default.(string)
	// commissionpolicy.TaxRateValidator is a validator for the "tax_rate" field. It is called by the builders before save.
	commissionpolicy.TaxRateValidator = commissionpolicyDescTaxRate.Validators[0].(func(string) error)
	// commissionpolicyDescCashCommissionEnabled is the schema descriptor for cash_commission_enabled field.
	commissionpolicyDescCashCommissionEnabled := commissionpolicyFields[5].Descriptor()
	// commissionpolicy.DefaultCashCommissionEnabled holds the default value on creation for the cash_commission_enabled field.
	commissionpolicy.DefaultCashCommissionEnabled = commissionpolicyDescCashCommissionEnabled.Default.(bool)
	// commissionpolicyDescCashCommissionValue is the schema descriptor for cash_commission_value field.
	commissionpolicyDescCashCommissionValue := commissionpolicyFields[7].Descriptor()
	// commissionpolicy.DefaultCashCommissionValue holds the default value on creation for the cash_commission_value field.
	commissionpolicy.DefaultCashCommissionValue = commissionpolicyDescCashCommissionValue.Default.(string)
	// commissionpolicy.CashCommissionValueValidator is a validator for the "cash_commission_value" field. It is called by the builders before save.
	commissionpolicy.CashCommissionValueValidator = commissionpolicyDescCashCommissionValue.Validators[0].(func(string) error)
	// commissionpolicyDescID is the schema descriptor for id field.
	commissionpolicyDescID := commissionpolicyMixinFields0[0].Descriptor()
	// commissionpolicy.DefaultID holds the default value on creation for the id field.
	commissionpolicy.DefaultID = commissionpolicyDescID.Default.(func() uuid.UUID)
	facilityMixin := schema.Facility{}.Mixin()
	facilityMixinFields0 := facilityMixin[0].Fields()
	_ = facilityMixinFields0
	facilityMixinFields1 := facilityMixin[1].Fields()
	_ = facilityMixinFields1
	facilityFields := schema.Facility{}.Fields()
	_ = facilityFields
	// facilityDescCreatedAt is the schema descriptor for created_at field.
	facilityDescCreatedAt := facilityMixinFields1[0].Descriptor()
	// facility.DefaultCreatedAt holds the default value on creation for the created_at field.
	facility.DefaultCreatedAt = facilityDescCreatedAt.Default.(func() time.Time)
	// facilityDescUpdatedAt is the schema descriptor for updated_at field.
	facilityDescUpdatedAt := facilityMixinFields1[1].Descriptor()
	// facility.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	facility.DefaultUpdatedAt = facilityDescUpdatedAt.Default.(func() time.Time)
	// facility.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	facility.UpdateDefaultUpdatedAt = facilityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// facilityDescName is the schema descriptor for name field.
	facilityDescName := facilityFields[0].Descriptor()
	// facility.NameValidator is a validator for the "name" field. It is called by the builders before save.
	facility.NameValidator = func() func(string) error {
		validators := facilityDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// facilityDescCode is the schema descriptor for code field.
	facilityDescCode := facilityFields[1].Descriptor()
	// facility.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	facility.CodeValidator = func() func(string) error {
		validators := facilityDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// facilityDescCurrency is the schema descriptor for currency field.
	facilityDescCurrency := facilityFields[2].Descriptor()
	// facility.DefaultCurrency holds the default value on creation for the currency field.
	facility.DefaultCurrency = facilityDescCurrency.Default.(string)
	// facility.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	facility.CurrencyValidator = facilityDescCurrency.Validators[0].(func(string) error)
	// facilityDescIsActive is the schema descriptor for is_active field.
	facilityDescIsActive := facilityFields[3].Descriptor()
	// facility.DefaultIsActive holds the default value on creation for the is_active field.
	facility.DefaultIsActive = facilityDescIsActive.Default.(bool)
	// facilityDescLedgerSeq is the schema descriptor for ledger_seq field.
	facilityDescLedgerSeq := facilityFields[4].Descriptor()
	// facility.DefaultLedgerSeq holds the default value on creation for the ledger_seq field.
	facility.DefaultLedgerSeq = facilityDescLedgerSeq.Default.(int64)
	// facilityDescID is the schema descriptor for id field.
	facilityDescID := facilityMixinFields0[0].Descriptor()
	// facility.DefaultID holds the default value on creation for the id field.
	facility.DefaultID = facilityDescID.Default.(func() uuid.UUID)
	idempotencykeyMixin := schema.IdempotencyKey{}.Mixin()
	idempotencykeyMixinFields0 := idempotencykeyMixin[0].Fields()
	_ = idempotencykeyMixinFields0
	idempotencykeyMixinFields1 := idempotencykeyMixin[1].Fields()
	_ = idempotencykeyMixinFields1
	idempotencykeyFields := schema.IdempotencyKey{}.Fields()
	_ = idempotencykeyFields
	// idempotencykeyDescCreatedAt is the schema descriptor for created_at field.
	idempotencykeyDescCreatedAt := idempotencykeyMixinFields1[0].Descriptor()
	// idempotencykey.DefaultCreatedAt holds the default value on creation for the created_at field.
	idempotencykey.DefaultCreatedAt = idempotencykeyDescCreatedAt.Default.(func() time.Time)
	// idempotencykeyDescKey is the schema descriptor for key field.
	idempotencykeyDescKey := idempotencykeyFields[0].Descriptor()
	// idempotencykey.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	idempotencykey.KeyValidator = func() func(string) error {
		validators := idempotencykeyDescKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(key string) error {
			for _, fn := range fns {
				if err := fn(key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// idempotencykeyDescOperation is the schema descriptor for operation field.
	idempotencykeyDescOperation := idempotencykeyFields[1].Descriptor()
	// idempotencykey.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	idempotencykey.OperationValidator = func() func(string) error {
		validators := idempotencykeyDescOperation.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(operation string) error {
			for _, fn := range fns {
				if err := fn(operation); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// idempotencykeyDescID is the schema descriptor for id field.
	idempotencykeyDescID := idempotencykeyMixinFields0[0].Descriptor()
	// idempotencykey.DefaultID holds the default value on creation for the id field.
	idempotencykey.DefaultID = idempotencykeyDescID.Default.(func() uuid.UUID)
	settlementMixin := schema.Settlement{}.Mixin()
	settlementMixinFields0 := settlementMixin[0].Fields()
	_ = settlementMixinFields0
	settlementMixinFields1 := settlementMixin[1].Fields()
	_ = settlementMixinFields1
	settlementFields := schema.Settlement{}.Fields()
	_ = settlementFields
	// settlementDescCreatedAt is the schema descriptor for created_at field.
	settlementDescCreatedAt := settlementMixinFields1[0].Descriptor()
	// settlement.DefaultCreatedAt holds the default value on creation for the created_at field.
	settlement.DefaultCreatedAt = settlementDescCreatedAt.Default.(func() time.Time)
	// settlementDescUpdatedAt is the schema descriptor for updated_at field.
	settlementDescUpdatedAt := settlementMixinFields1[1].Descriptor()
	// settlement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	settlement.DefaultUpdatedAt = settlementDescUpdatedAt.Default.(func() time.Time)
	// settlement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	settlement.UpdateDefaultUpdatedAt = settlementDescUpdatedAt.UpdateDefault.(func() time.Time)
	// settlementDescTotalCollections is the schema descriptor for total_collections field.
	settlementDescTotalCollections := settlementFields[5].Descriptor()
	// settlement.DefaultTotalCollections holds the default value on creation for the total_collections field.
	settlement.DefaultTotalCollections = settlementDescTotalCollections.Default.(int64)
	// settlementDescTotalCommission is the schema descriptor for total_commission field.
	settlementDescTotalCommission := settlementFields[6].Descriptor()
	// settlement.DefaultTotalCommission holds the default value on creation for the total_commission field.
	settlement.DefaultTotalCommission = settlementDescTotalCommission.Default.(int64)
	// settlementDescFacilityShare is the schema descriptor for facility_share field.
	settlementDescFacilityShare := settlementFields[7].Descriptor()
	// settlement.DefaultFacilityShare holds the default value on creation for the facility_share field.
	settlement.DefaultFacilityShare = settlementDescFacilityShare.Default.(int64)
	// settlementDescPlatformShare is the schema descriptor for platform_share field.
	settlementDescPlatformShare := settlementFields[8].Descriptor()
	// settlement.DefaultPlatformShare holds the default value on creation for the platform_share field.
	settlement.DefaultPlatformShare = settlementDescPlatformShare.Default.(int64)
	// settlementDescCurrency is the schema descriptor for currency field.
	settlementDescCurrency := settlementFields[9].Descriptor()
	// settlement.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	settlement.CurrencyValidator = settlementDescCurrency.Validators[0].(func(string) error)
	// settlementDescPaymentReference is the schema descriptor for payment_reference field.
	settlementDescPaymentReference := settlementFields[15].Descriptor()
	// settlement.PaymentReferenceValidator is a validator for the "payment_reference" field. It is called by the builders before save.
	settlement.PaymentReferenceValidator = settlementDescPaymentReference.Validators[0].(func(string) error)
	// settlementDescPaymentMethod is the schema descriptor for payment_method field.
	settlementDescPaymentMethod := settlementFields[16].Descriptor()
	// settlement.PaymentMethodValidator is a validator for the "payment_method" field. It is called by the builders before save.
	settlement.PaymentMethodValidator = settlementDescPaymentMethod.Validators[0].(func(string) error)
	// settlementDescNotes is the schema descriptor for notes field.
	settlementDescNotes := settlementFields[19].Descriptor()
	// settlement.NotesValidator is a validator for the "notes" field. It is called by the builders before save.
	settlement.NotesValidator = settlementDescNotes.Validators[0].(func(string) error)
	// settlementDescID is the schema descriptor for id field.
	settlementDescID := settlementMixinFields0[0].Descriptor()
	// settlement.DefaultID holds the default value on creation for the id field.
	settlement.DefaultID = settlementDescID.Default.(func() uuid.UUID)
	settlementitemMixin := schema.SettlementItem{}.Mixin()
	settlementitemMixinFields0 := settlementitemMixin[0].Fields()
	_ = settlementitemMixinFields0
	settlementitemMixinFields1 := settlementitemMixin[1].Fields()
	_ = settlementitemMixinFields1
	settlementitemFields := schema.SettlementItem{}.Fields()
	_ = settlementitemFields
	// settlementitemDescCreatedAt is the schema descriptor for created_at field.
	settlementitemDescCreatedAt := settlementitemMixinFields1[0].Descriptor()
	// settlementitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	settlementitem.DefaultCreatedAt = settlementitemDescCreatedAt.Default.(func() time.Time)
	// settlementitemDescID is the schema descriptor for id field.
	settlementitemDescID := settlementitemMixinFields0[0].Descriptor()
	// settlementitem.DefaultID holds the default value on creation for the id field.
	settlementitem.DefaultID = settlementitemDescID.Default.(func() uuid.UUID)
	transactionMixin := schema.Transaction{}.Mixin()
	transactionMixinFields0 := transactionMixin[0].Fields()
	_ = transactionMixinFields0
	transactionMixinFields1 := transactionMixin[1].Fields()
	_ = transactionMixinFields1
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionMixinFields1[0].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescGrossAmount is the schema descriptor for gross_amount field.
	transactionDescGrossAmount := transactionFields[2].Descriptor()
	// transaction.GrossAmountValidator is a validator for the "gross_amount" field. It is called by the builders before save.
	transaction.GrossAmountValidator = transactionDescGrossAmount.Validators[0].(func(int64) error)
	// transactionDescCurrency is the schema descriptor for currency field.
	transactionDescCurrency := transactionFields[3].Descriptor()
	// transaction.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	transaction.CurrencyValidator = transactionDescCurrency.Validators[0].(func(string) error)
	// transactionDescBillReference is the schema descriptor for bill_reference field.
	transactionDescBillReference := transactionFields[5].Descriptor()
	// transaction.BillReferenceValidator is a validator for the "bill_reference" field. It is called by the builders before save.
	transaction.BillReferenceValidator = func() func(string) error {
		validators := transactionDescBillReference.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(bill_reference string) error {
			for _, fn := range fns {
				if err := fn(bill_reference); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transactionDescGatewayTxnID is the schema descriptor for gateway_txn_id field.
	transactionDescGatewayTxnID := transactionFields[7].Descriptor()
	// transaction.GatewayTxnIDValidator is a validator for the "gateway_txn_id" field. It is called by the builders before save.
	transaction.GatewayTxnIDValidator = transactionDescGatewayTxnID.Validators[0].(func(string) error)
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionMixinFields0[0].Descriptor()
	// transaction.DefaultID holds the default value on creation for the id field.
	transaction.DefaultID = transactionDescID.Default.(func() uuid.UUID)
}
