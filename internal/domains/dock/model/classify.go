package model

import (
	checkInModel "dockhub/internal/domains/checkin/model"
)

// Occupancy is the derived view of one dock.
type Occupancy struct {
	DockNumber string
	State      State
	CheckIns   []checkInModel.CheckIn
	Block      *Block
}

// Classify derives the state of every dock from the active check-ins and the manual blocks.
// A block wins over occupancy, then two or more active check-ins mark the dock double booked.
// Check-ins that are not active or hold no dock are ignored.
func Classify(docks []string, checkIns []checkInModel.CheckIn, blocks map[string]Block) []Occupancy {
	byDock := make(map[string][]checkInModel.CheckIn, len(docks))

	for _, checkIn := range checkIns {
		if checkIn.DockNumber == nil || !checkIn.Status.IsActive() {
			continue
		}

		byDock[*checkIn.DockNumber] = append(byDock[*checkIn.DockNumber], checkIn)
	}

	result := make([]Occupancy, 0, len(docks))

	for _, dock := range docks {
		occupancy := Occupancy{
			DockNumber: dock,
			CheckIns:   byDock[dock],
		}

		if occupancy.CheckIns == nil {
			occupancy.CheckIns = []checkInModel.CheckIn{}
		}

		block, blocked := blocks[dock]

		switch {
		case blocked:
			occupancy.State = StateBlocked
			occupancy.Block = &block
		case len(occupancy.CheckIns) >= 2: //nolint:mnd
			occupancy.State = StateDoubleBooked
		case len(occupancy.CheckIns) == 1:
			occupancy.State = StateInUse
		default:
			occupancy.State = StateAvailable
		}

		result = append(result, occupancy)
	}

	return result
}
