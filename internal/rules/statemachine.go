// Package rules is the equipment and billing consistency engine: every
// mutating entry point (contract, history, billing, the monthly job) drives
// equipment state transitions and money computations through this single
// package instead of re-deriving them per screen.
package rules

import (
	"ansimaq-erp-backend/internal/domain"
)

// RentForNewContract transitions a unit into a freshly created contract.
// Only an available unit may open a contract.
func RentForNewContract(e *domain.Equipment) error {
	if e.State != domain.EquipmentAvailable {
		return &domain.TransitionError{
			UnitCode: e.UnitCode,
			From:     e.State,
			Reason:   "only available equipment can open a contract",
		}
	}
	e.State = domain.EquipmentRented
	return nil
}

// Release returns a unit to the available pool, from any state. Used when a
// contract is deleted or the unit is swapped out.
func Release(e *domain.Equipment) {
	e.State = domain.EquipmentAvailable
}

// Reassign moves a contract from oldUnit to newUnit: the old unit is
// released and the new one marked rented, whatever state it was in.
func Reassign(oldUnit, newUnit *domain.Equipment) {
	Release(oldUnit)
	newUnit.State = domain.EquipmentRented
}

// RestoreRented puts a unit back on rent. Used when deleting a swap history
// entry: the previously assigned unit resumes the contract.
func RestoreRented(e *domain.Equipment) {
	e.State = domain.EquipmentRented
}

// Override applies a manual state edit from the equipment screen. It is the
// administrative escape hatch: any enum value is accepted, nothing else.
func Override(e *domain.Equipment, state domain.EquipmentState) error {
	if !state.Valid() {
		return &domain.ValidationError{Field: "state", Reason: "unknown equipment state"}
	}
	e.State = state
	return nil
}
