package domain

// EquipmentState uses the numeric codes the billing office has printed on its
// paper forms for years: 1 disponible, 2 en arriendo, 3 mantenimiento, 4 averiado.
type EquipmentState int

const (
	EquipmentAvailable   EquipmentState = 1
	EquipmentRented      EquipmentState = 2
	EquipmentMaintenance EquipmentState = 3
	EquipmentBroken      EquipmentState = 4
)

func (s EquipmentState) Valid() bool {
	return s >= EquipmentAvailable && s <= EquipmentBroken
}

func (s EquipmentState) String() string {
	switch s {
	case EquipmentAvailable:
		return "AVAILABLE"
	case EquipmentRented:
		return "RENTED"
	case EquipmentMaintenance:
		return "MAINTENANCE"
	case EquipmentBroken:
		return "BROKEN"
	default:
		return "UNKNOWN"
	}
}

// Equipment is a single generator unit. UnitCode (numero vigente) is the
// business identifier used by contracts and service history; ID is internal.
type Equipment struct {
	ID        int32          `json:"id"`
	UnitCode  string         `json:"unit_code"`
	ModelName string         `json:"model_name"`
	State     EquipmentState `json:"state"`
	// Version guards against lost updates from concurrent admins.
	Version int32 `json:"version"`
}
