package domain

type ServiceType string

const (
	ServiceDelivery    ServiceType = "DELIVERY" // entrega en obra, the contract's opening entry
	ServiceMaintenance ServiceType = "MAINTENANCE"
	ServiceRepair      ServiceType = "REPAIR"
	ServiceSwap        ServiceType = "SWAP" // cambio del equipo
	ServiceInspection  ServiceType = "INSPECTION"
	ServiceOther       ServiceType = "OTHER"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceDelivery, ServiceMaintenance, ServiceRepair, ServiceSwap, ServiceInspection, ServiceOther:
		return true
	}
	return false
}

// HasExpense reports whether entries of this type carry a service cost that
// feeds the contract's expense accumulator and an expense billing record.
func (t ServiceType) HasExpense() bool {
	return t == ServiceMaintenance || t == ServiceRepair
}

// ServiceEntry is one event in a contract's service history.
type ServiceEntry struct {
	ID            int32       `json:"id"`
	Folio         int64       `json:"folio"`
	EquipmentCode string      `json:"equipment_code"`
	Type          ServiceType `json:"type"`
	ServiceDate   string      `json:"service_date"`
	HourMeter     int32       `json:"hour_meter"` // horometro reading at event time
	Expense       int64       `json:"expense"`    // meaningful for MAINTENANCE and REPAIR only
}
