package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"dockhub/infras/otel"
	checkInModel "dockhub/internal/domains/checkin/model"
	checkInDto "dockhub/internal/domains/checkin/model/dto"
	checkInRepository "dockhub/internal/domains/checkin/repository"
	"dockhub/internal/domains/dock/model"
	"dockhub/internal/domains/dock/model/dto"
	"dockhub/internal/domains/dock/repository"
	realtimeModel "dockhub/internal/domains/realtime/model"
	realtimeService "dockhub/internal/domains/realtime/service"
	"dockhub/shared/constant"
	gDto "dockhub/shared/dto"
	"dockhub/shared/failure"
	"dockhub/shared/timezone"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

const (
	actionDockBlocked   = "dock_blocked"
	actionDockUnblocked = "dock_unblocked"
	actionDockClaimed   = "dock_claimed"
	actionDockAdvanced  = "dock_advanced"
	actionDockReleased  = "dock_released"
)

type Dock interface {
	Normalize(number string) (string, error)
	Board(ctx context.Context) (dto.BoardResponse, error)
	Get(ctx context.Context, number string) (dto.DockStatusResponse, error)
	CheckAssignment(ctx context.Context, number, checkInID string) (dto.AssignmentCheck, error)
	Block(ctx context.Context, number string, req dto.BlockRequest) (dto.BlockResponse, error)
	Unblock(ctx context.Context, number string) error
	Blocks(ctx context.Context) ([]dto.BlockResponse, error)
	Claim(ctx context.Context, number string, req dto.ClaimRequest) (dto.DockCycleResponse, error)
	Advance(ctx context.Context, number string) (dto.DockCycleResponse, error)
	Release(ctx context.Context, number string) (dto.DockCycleResponse, error)
	Cycles(ctx context.Context) (dto.GetCyclesResponse, error)
}

type serviceImpl struct {
	registry    model.Registry
	checkInRepo checkInRepository.CheckIn
	stateRepo   repository.DockState
	blocks      repository.BlockStore
	publisher   realtimeService.Publisher
	otel        otel.Otel
}

func New(
	registry model.Registry,
	checkInRepo checkInRepository.CheckIn,
	stateRepo repository.DockState,
	blocks repository.BlockStore,
	publisher realtimeService.Publisher,
	otel otel.Otel,
) Dock {
	return &serviceImpl{
		registry:    registry,
		checkInRepo: checkInRepo,
		stateRepo:   stateRepo,
		blocks:      blocks,
		publisher:   publisher,
		otel:        otel,
	}
}

// Normalize returns the registered form of number or a 400 failure.
func (s *serviceImpl) Normalize(number string) (string, error) {
	normalized, ok := s.registry.Normalize(number)
	if !ok {
		return "", failure.InvalidDockError
	}

	return normalized, nil
}

func (s *serviceImpl) activeCheckIns(ctx context.Context, number string) ([]checkInModel.CheckIn, error) {
	checkIns, err := s.checkInRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  checkInModel.FieldCheckInTime,
		SortDir: gDto.SortDirAsc,
	}, checkInDto.ActiveOnDocks(number))
	if err != nil {
		log.Error().Err(err).Str("dock", number).Msg("failed to load active check-ins")

		return nil, fmt.Errorf("failed to load active check-ins: %w", err)
	}

	return checkIns, nil
}

func (s *serviceImpl) Board(ctx context.Context) (res dto.BoardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dock.Board")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIns, err := s.activeCheckIns(ctx, "")
	if err != nil {
		return res, err
	}

	blocks, err := s.blocks.All(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to load dock blocks: %w", err)
	}

	res.FromModels(model.Classify(s.registry.All(), checkIns, blocks))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, number string) (res dto.DockStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dock.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number, err = s.Normalize(number)
	if err != nil {
		return res, err
	}

	checkIns, err := s.activeCheckIns(ctx, number)
	if err != nil {
		return res, err
	}

	blocks, err := s.blocks.All(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to load dock blocks: %w", err)
	}

	res.FromModel(model.Classify([]string{number}, checkIns, blocks)[0])

	return res, nil
}

// CheckAssignment reports who else holds the dock and whether it is blocked.
// The record being assigned is excluded so re-assigning to the same dock raises no warning.
func (s *serviceImpl) CheckAssignment(ctx context.Context, number, checkInID string) (res dto.AssignmentCheck, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dock.CheckAssignment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number, err = s.Normalize(number)
	if err != nil {
		return res, err
	}

	checkIns, err := s.activeCheckIns(ctx, number)
	if err != nil {
		return res, err
	}

	blocks, err := s.blocks.All(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to load dock blocks: %w", err)
	}

	res = dto.AssignmentCheck{
		DockNumber: number,
		OccupiedBy: []string{},
		Warnings:   []string{},
	}

	for _, checkIn := range checkIns {
		if checkIn.ID == checkInID {
			continue
		}

		res.OccupiedBy = append(res.OccupiedBy, checkIn.ID)
		res.Warnings = append(res.Warnings, fmt.Sprintf("dock %s is already in use by %s (%s)", number, checkIn.CarrierName, checkIn.ReferenceNumber))
	}

	if block, ok := blocks[number]; ok {
		res.Blocked = true
		res.BlockReason = block.Reason
		res.Warnings = append(res.Warnings, fmt.Sprintf("dock %s is blocked: %s", number, block.Reason))
	}

	return res, nil
}

func (s *serviceImpl) Block(ctx context.Context, number string, req dto.BlockRequest) (res dto.BlockResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dock.Block")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number, err = s.Normalize(number)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	block := model.Block{
		DockNumber: number,
		Reason:     req.Reason,
		BlockedBy:  user,
		BlockedAt:  timezone.Now(),
	}

	if err = s.blocks.Put(ctx, block); err != nil {
		return res, fmt.Errorf("failed to block dock: %w", err)
	}

	res.FromModel(block)
	realtimeService.Emit(ctx, s.publisher, realtimeModel.TableDockBlocks, realtimeModel.EventInsert, number, actionDockBlocked, res)

	return res, nil
}

func (s *serviceImpl) Unblock(ctx context.Context, number string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dock.Unblock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number, err = s.Normalize(number)
	if err != nil {
		return err
	}

	err = s.blocks.Remove(ctx, number)
	if errors.Is(err, repository.ErrBlockNotFound) {
		return failure.NotFound("dock block not found") // nolint:wrapcheck
	}

	if err != nil {
		return fmt.Errorf("failed to unblock dock: %w", err)
	}

	realtimeService.Emit(ctx, s.publisher, realtimeModel.TableDockBlocks, realtimeModel.EventDelete, number, actionDockUnblocked, nil)

	return nil
}

// Blocks lists the current holds in dock order.
func (s *serviceImpl) Blocks(ctx context.Context) (res []dto.BlockResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dock.Blocks")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	blocks, err := s.blocks.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dock blocks: %w", err)
	}

	res = make([]dto.BlockResponse, 0, len(blocks))

	for _, number := range s.registry.All() {
		block, ok := blocks[number]
		if !ok {
			continue
		}

		var item dto.BlockResponse
		item.FromModel(block)
		res = append(res, item)
	}

	return res, nil
}

func byDock(number string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldDockNumber, Value: number, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func byCheckIn(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: checkInModel.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: checkInModel.TableName},
		},
	}
}

// byDockInState matches the row only while it still holds the expected status.
// The argument is renamed because the update binds the new status under the column name.
func byDockInState(number string, status model.CycleStatus) gDto.FilterGroup {
	filter := byDock(number)
	filter.Filters = append(filter.Filters, gDto.Filter{
		ArgName:  "expected_status",
		Field:    model.FieldStatus,
		Value:    string(status),
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	return filter
}

// ensureState creates the available row on first use of a dock.
func (s *serviceImpl) ensureState(ctx context.Context, number string) error {
	_, err := s.stateRepo.InsertIgnore(ctx, model.DockState{
		DockNumber: number,
		Status:     model.CycleAvailable,
		ModifiedAt: timezone.Now(),
		ModifiedBy: constant.ContextSystem,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize dock state: %w", err)
	}

	return nil
}

// transition applies a conditional update and returns the resulting row.
// A nil expected status updates unconditionally.
func (s *serviceImpl) transition(ctx context.Context, number string, expected *model.CycleStatus, next model.CycleStatus, checkInID *string, action string) (res dto.DockCycleResponse, err error) {
	if err = s.ensureState(ctx, number); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := byDock(number)
	if expected != nil {
		filter = byDockInState(number, *expected)
	}

	affected, err := s.stateRepo.UpdateAffected(ctx, map[string]any{
		model.FieldStatus:        string(next),
		model.FieldCheckInID:     checkInID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, filter)
	if err != nil {
		log.Error().Err(err).Str("dock", number).Msg("failed to update dock state")

		return res, fmt.Errorf("failed to update dock state: %w", err)
	}

	if affected == 0 && expected == nil {
		return res, failure.NotFound("dock state not found") // nolint:wrapcheck
	}

	if affected == 0 {
		return res, failure.Conflict(fmt.Sprintf("dock %s is not %s", number, *expected)) // nolint:wrapcheck
	}

	state, err := s.stateRepo.Get(ctx, byDock(number))
	if err != nil {
		return res, fmt.Errorf("failed to get dock state: %w", err)
	}

	res.FromModel(state)
	realtimeService.Emit(ctx, s.publisher, realtimeModel.TableDockStates, realtimeModel.EventUpdate, number, action, res)

	return res, nil
}

// Claim moves an available dock to assigned or loading. Of two concurrent claims exactly one succeeds.
func (s *serviceImpl) Claim(ctx context.Context, number string, req dto.ClaimRequest) (res dto.DockCycleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dock.Claim")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number, err = s.Normalize(number)
	if err != nil {
		return res, err
	}

	var checkInID *string
	if req.CheckInID != "" {
		exist, err := s.checkInRepo.Exist(ctx, byCheckIn(req.CheckInID))
		if err != nil {
			log.Error().Err(err).Str("check_in_id", req.CheckInID).Msg("failed to look up check-in")

			return res, fmt.Errorf("failed to look up check-in: %w", err)
		}

		if !exist {
			return res, failure.NotFound("check-in not found") // nolint:wrapcheck
		}

		checkInID = &req.CheckInID
	}

	expected := model.CycleAvailable

	return s.transition(ctx, number, &expected, req.CycleStatus(), checkInID, actionDockClaimed)
}

func (s *serviceImpl) Advance(ctx context.Context, number string) (res dto.DockCycleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dock.Advance")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number, err = s.Normalize(number)
	if err != nil {
		return res, err
	}

	current, err := s.stateRepo.Get(ctx, byDock(number))
	if err != nil {
		return res, fmt.Errorf("failed to get dock state: %w", err)
	}

	expected := model.CycleAssigned

	return s.transition(ctx, number, &expected, model.CycleLoading, current.CheckInID, actionDockAdvanced)
}

func (s *serviceImpl) Release(ctx context.Context, number string) (res dto.DockCycleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dock.Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	number, err = s.Normalize(number)
	if err != nil {
		return res, err
	}

	return s.transition(ctx, number, nil, model.CycleAvailable, nil, actionDockReleased)
}

// Cycles lists the claim workflow rows in dock order.
func (s *serviceImpl) Cycles(ctx context.Context) (res dto.GetCyclesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dock.Cycles")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	states, err := s.stateRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get dock states")

		return res, fmt.Errorf("failed to get dock states: %w", err)
	}

	order := s.registry.All()
	slices.SortStableFunc(states, func(a, b model.DockState) int {
		return slices.Index(order, a.DockNumber) - slices.Index(order, b.DockNumber)
	})

	res.FromModels(states)

	return res, nil
}
