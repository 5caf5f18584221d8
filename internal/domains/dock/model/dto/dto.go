package dto

import (
	checkInDto "dockhub/internal/domains/checkin/model/dto"
	"dockhub/internal/domains/dock/model"
	gDto "dockhub/shared/dto"
)

type BlockRequest struct {
	Reason string `json:"reason" validate:"required,max=200"`
}

type ClaimRequest struct {
	Status    string `json:"status"      validate:"omitempty,oneof=assigned loading"`
	CheckInID string `json:"check_in_id" validate:"omitempty,uuid"`
}

// CycleStatus defaults to assigned when the request omits it.
func (c *ClaimRequest) CycleStatus() model.CycleStatus {
	if c.Status == "" {
		return model.CycleAssigned
	}

	return model.CycleStatus(c.Status)
}

type BlockResponse struct {
	DockNumber string `json:"dock_number"`
	Reason     string `json:"reason"`
	BlockedBy  string `json:"blocked_by"`
	BlockedAt  string `json:"blocked_at"`
}

func (r *BlockResponse) FromModel(block model.Block) {
	r.DockNumber = block.DockNumber
	r.Reason = block.Reason
	r.BlockedBy = block.BlockedBy
	r.BlockedAt = gDto.Timestamp(block.BlockedAt)
}

type DockStatusResponse struct {
	DockNumber string                       `json:"dock_number"`
	State      string                       `json:"state"`
	CheckIns   []checkInDto.CheckInResponse `json:"check_ins"`
	Block      *BlockResponse               `json:"block"`
}

func (r *DockStatusResponse) FromModel(occupancy model.Occupancy) {
	r.DockNumber = occupancy.DockNumber
	r.State = string(occupancy.State)

	r.CheckIns = make([]checkInDto.CheckInResponse, len(occupancy.CheckIns))
	for i, checkIn := range occupancy.CheckIns {
		r.CheckIns[i].FromModel(checkIn)
	}

	if occupancy.Block != nil {
		r.Block = &BlockResponse{}
		r.Block.FromModel(*occupancy.Block)
	}
}

type BoardResponse struct {
	Docks   []DockStatusResponse `json:"docks"`
	Summary map[string]int       `json:"summary"`
}

// FromModels also counts docks per state.
func (r *BoardResponse) FromModels(occupancies []model.Occupancy) {
	r.Docks = make([]DockStatusResponse, len(occupancies))
	r.Summary = map[string]int{
		string(model.StateAvailable):    0,
		string(model.StateInUse):        0,
		string(model.StateDoubleBooked): 0,
		string(model.StateBlocked):      0,
	}

	for i, occupancy := range occupancies {
		r.Docks[i].FromModel(occupancy)
		r.Summary[string(occupancy.State)]++
	}
}

// AssignmentCheck is advisory. The assignment proceeds regardless of its content.
type AssignmentCheck struct {
	DockNumber  string   `json:"dock_number"`
	OccupiedBy  []string `json:"occupied_by"`
	Blocked     bool     `json:"blocked"`
	BlockReason string   `json:"block_reason,omitempty"`
	Warnings    []string `json:"warnings"`
}

type DockCycleResponse struct {
	DockNumber string  `json:"dock_number"`
	Status     string  `json:"status"`
	CheckInID  *string `json:"check_in_id"`
	ModifiedAt string  `json:"modified_at"`
	ModifiedBy string  `json:"modified_by"`
}

func (r *DockCycleResponse) FromModel(state model.DockState) {
	r.DockNumber = state.DockNumber
	r.Status = string(state.Status)
	r.CheckInID = state.CheckInID
	r.ModifiedAt = gDto.Timestamp(state.ModifiedAt)
	r.ModifiedBy = state.ModifiedBy
}

type GetCyclesResponse struct {
	Cycles []DockCycleResponse `json:"cycles"`
}

func (r *GetCyclesResponse) FromModels(states []model.DockState) {
	r.Cycles = make([]DockCycleResponse, len(states))
	for i, state := range states {
		r.Cycles[i].FromModel(state)
	}
}
