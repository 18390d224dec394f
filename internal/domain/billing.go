package domain

// BillingKind discriminates the two record kinds that shared one table in the
// legacy system. Rent invoices are created by admins (or the monthly job) and
// carry a computed amount; expense records are side effects of maintenance and
// repair history entries and carry only the expense.
type BillingKind string

const (
	BillingRentInvoice BillingKind = "RENT_INVOICE"
	BillingExpense     BillingKind = "EXPENSE"
)

type InvoiceStatus int

const (
	InvoicePending InvoiceStatus = 1
	InvoicePaid    InvoiceStatus = 2
)

func (s InvoiceStatus) Valid() bool {
	return s == InvoicePending || s == InvoicePaid
}

func (s InvoiceStatus) String() string {
	if s == InvoicePaid {
		return "PAID"
	}
	return "PENDING"
}

// BillingRecord is a money event against a contract. EquipmentCode snapshots
// the unit assigned when the record was written, so rollups attribute income
// and expenses to the right generator even after a swap.
type BillingRecord struct {
	ID            int32       `json:"id"`
	Kind          BillingKind `json:"kind"`
	Folio         int64       `json:"folio"`
	EquipmentCode string      `json:"equipment_code"`
	// ServiceEntryID links an expense record back to the history entry that
	// produced it; nil for rent invoices.
	ServiceEntryID *int32 `json:"service_entry_id,omitempty"`
	Month          int    `json:"month"`
	Year           int    `json:"year"`
	PaymentDate    string `json:"payment_date"`
	OvertimeHours  int64  `json:"overtime_hours"`
	OvertimeRate   int64  `json:"overtime_rate"`
	// Amount is the computed rent total (cobro); zero for expense records.
	Amount int64 `json:"amount"`
	// Expense is the maintenance/repair cost (egreso equipo); zero for rent invoices.
	Expense int64         `json:"expense"`
	Status  InvoiceStatus `json:"status"`
}

func (b *BillingRecord) IsRentInvoice() bool { return b.Kind == BillingRentInvoice }
func (b *BillingRecord) IsExpense() bool     { return b.Kind == BillingExpense }
