package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=CheckIn=MockCheckInService

import (
	"context"
	"dockhub/config"
	"dockhub/infras/otel"
	"dockhub/internal/domains/checkin/model"
	"dockhub/internal/domains/checkin/model/dto"
	"dockhub/internal/domains/checkin/repository"
	dockService "dockhub/internal/domains/dock/service"
	notificationModel "dockhub/internal/domains/notification/model"
	notificationService "dockhub/internal/domains/notification/service"
	realtimeModel "dockhub/internal/domains/realtime/model"
	realtimeService "dockhub/internal/domains/realtime/service"
	"dockhub/shared"
	"dockhub/shared/cache"
	"dockhub/shared/constant"
	gDto "dockhub/shared/dto"
	"dockhub/shared/failure"
	"dockhub/shared/timezone"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCheckIn    = "check_in:get"
	cacheGetAllCheckIn = "check_in:gets"
	cacheCountCheckIn  = "check_in:count"
)

const (
	actionCreated       = "created"
	actionUpdated       = "updated"
	actionDeleted       = "deleted"
	actionDockAssigned  = "dock_assigned"
	actionStatusChanged = "status_changed"
)

type CheckIn interface {
	Create(ctx context.Context, req dto.CreateCheckInRequest) (dto.CheckInResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.Filter) (dto.GetCheckInsResponse, error)
	Get(ctx context.Context, id string) (dto.CheckInResponse, error)
	Update(ctx context.Context, req dto.UpdateCheckInRequest, id string) (dto.CheckInResponse, error)
	Delete(ctx context.Context, id string) error
	AssignDock(ctx context.Context, id string, req dto.AssignDockRequest) (dto.AssignDockResponse, error)
	ChangeStatus(ctx context.Context, id string, req dto.ChangeStatusRequest) (dto.ChangeStatusResponse, error)
}

type serviceImpl struct {
	repo         repository.CheckIn
	dock         dockService.Dock
	notification notificationService.Notification
	publisher    realtimeService.Publisher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.CheckIn,
	dock dockService.Dock,
	notification notificationService.Notification,
	publisher realtimeService.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) CheckIn {
	return &serviceImpl{
		repo:         repo,
		dock:         dock,
		notification: notification,
		publisher:    publisher,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != "" {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCheckIn, id)); err != nil {
				log.Error().Err(err).Str("id", id).Msg("failed to delete check-in cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCheckIn)
		shared.InvalidateCaches(c, s.cache, cacheCountCheckIn)
	}()
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

// Create stores a driver self check-in. The driver gets an acknowledgement email when one was given.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCheckInRequest) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".check_in.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || user == "" {
		user = constant.ContextGuest
	}

	checkIn := req.ToModel(user)

	if err = s.repo.Insert(ctx, checkIn); err != nil {
		log.Error().Err(err).Msg("failed to create check-in")

		return res, fmt.Errorf("failed to create check-in: %w", err)
	}

	res.FromModel(checkIn)

	s.invalidate(ctx, "")
	realtimeService.Emit(ctx, s.publisher, realtimeModel.TableCheckIns, realtimeModel.EventInsert, checkIn.ID, actionCreated, res)

	if checkIn.DriverEmail != nil {
		s.notification.DispatchAsync(ctx, notificationModel.Notification{
			Type:        notificationModel.TypeCheckIn,
			Channel:     notificationModel.ChannelEmail,
			Destination: *checkIn.DriverEmail,
			Payload:     payload(checkIn),
		})
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.Filter) (res dto.GetCheckInsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".check_in.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = filter.Validate(); err != nil {
		return res, err //nolint:wrapcheck
	}

	var dockNumber string
	if filter.DockNumber != "" {
		if dockNumber, err = s.dock.Normalize(filter.DockNumber); err != nil {
			return res, err //nolint:wrapcheck
		}
	}

	req.Restrict(dto.SortableColumns, model.FieldCheckInTime)
	filterGroup := filter.ToFilterGroup(dockNumber)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCheckIn, req, filterGroup)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for check-ins")

		return res, nil
	} else if !cache.IsMiss(err) {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("check-in cache unavailable, reading from database")
	}

	total, err := s.count(ctx, req, filterGroup)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filterGroup)
	if err != nil {
		log.Error().Err(err).Msg("failed to get check-ins")

		return res, fmt.Errorf("failed to get check-ins: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save check-ins to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCheckIn, gDto.QueryParams{}, filter)

	var total int
	if err := s.cache.Get(ctx, cacheKey, &total); err == nil {
		return total, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count check-ins")

		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save check-in count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.CheckIn, error) {
	checkIn, err := s.repo.Get(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get check-in")

		return checkIn, fmt.Errorf("failed to get check-in: %w", err)
	}

	if checkIn.ID == "" {
		return checkIn, failure.NotFound("check-in not found") // nolint:wrapcheck
	}

	return checkIn, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".check_in.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetCheckIn, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	checkIn, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(checkIn)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save check-in to cache")
		}
	}()

	return res, nil
}

// Update overwrites the descriptive fields. Concurrent edits are last writer wins.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCheckInRequest, id string) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".check_in.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.load(ctx, id); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req.Normalize()

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), byID(id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update check-in")

		return res, fmt.Errorf("failed to update check-in: %w", err)
	}

	return s.reload(ctx, id, actionUpdated)
}

// reload reads the stored row back, then publishes it and drops stale caches.
func (s *serviceImpl) reload(ctx context.Context, id, action string) (res dto.CheckInResponse, err error) {
	checkIn, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(checkIn)

	s.invalidate(ctx, id)
	realtimeService.Emit(ctx, s.publisher, realtimeModel.TableCheckIns, realtimeModel.EventUpdate, id, action, res)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".check_in.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to check check-in existence")

		return fmt.Errorf("failed to check check-in existence: %w", err)
	}

	if !exist {
		return failure.NotFound("check-in not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, byID(id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete check-in")

		return fmt.Errorf("failed to delete check-in: %w", err)
	}

	s.invalidate(ctx, id)
	realtimeService.Emit(ctx, s.publisher, realtimeModel.TableCheckIns, realtimeModel.EventDelete, id, actionDeleted, nil)

	return nil
}

// AssignDock puts the driver on a dock. Occupied or blocked docks produce warnings, never a rejection.
func (s *serviceImpl) AssignDock(ctx context.Context, id string, req dto.AssignDockRequest) (res dto.AssignDockResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".check_in.AssignDock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	dockNumber, err := s.dock.Normalize(req.DockNumber)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	checkIn, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if checkIn.Status.IsTerminal() {
		return res, failure.Conflict(fmt.Sprintf("check-in is already %s", checkIn.Status)) // nolint:wrapcheck
	}

	res.Warnings = []string{}

	// occupied or blocked docks only warn; a failed lookup aborts the assignment
	check, err := s.dock.CheckAssignment(ctx, dockNumber, id)
	if err != nil {
		log.Error().Err(err).Str("dock", dockNumber).Msg("failed to check dock availability")

		return res, fmt.Errorf("failed to check dock %s availability: %w", dockNumber, err)
	}

	res.Warnings = append(res.Warnings, check.Warnings...)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	update := map[string]any{
		model.FieldDockNumber:    dockNumber,
		model.FieldStatus:        string(model.StatusCheckedIn),
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if checkIn.StartTime == nil {
		update[model.FieldStartTime] = now
	}

	if err = s.repo.Update(ctx, update, byID(id)); err != nil {
		log.Error().Err(err).Str("id", id).Str("dock", dockNumber).Msg("failed to assign dock")

		return res, fmt.Errorf("failed to assign dock: %w", err)
	}

	if res.CheckIn, err = s.reload(ctx, id, actionDockAssigned); err != nil {
		return res, err
	}

	if req.ShouldNotify() {
		checkIn.DockNumber = &dockNumber
		res.Warnings = append(res.Warnings, s.notify(ctx, notificationModel.TypeDockAssignment, checkIn)...)
	}

	return res, nil
}

// ChangeStatus moves the record along its lifecycle. Checking out closes the dock time window.
func (s *serviceImpl) ChangeStatus(ctx context.Context, id string, req dto.ChangeStatusRequest) (res dto.ChangeStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".check_in.ChangeStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	next := model.Status(req.Status)
	if !checkIn.Status.CanTransition(next) {
		return res, failure.Conflict(fmt.Sprintf("cannot change status from %s to %s", checkIn.Status, next)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	update := map[string]any{
		model.FieldStatus:        string(next),
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if req.Notes != "" {
		update[model.FieldNotes] = req.Notes
	}

	if next == model.StatusCheckedOut {
		update[model.FieldEndTime] = now
		update[model.FieldCheckOutTime] = now
	}

	if err = s.repo.Update(ctx, update, byID(id)); err != nil {
		log.Error().Err(err).Str("id", id).Str("status", req.Status).Msg("failed to change check-in status")

		return res, fmt.Errorf("failed to change check-in status: %w", err)
	}

	if res.CheckIn, err = s.reload(ctx, id, actionStatusChanged); err != nil {
		return res, err
	}

	res.Warnings = []string{}

	if req.ShouldNotify() {
		checkIn.Status = next
		res.Warnings = append(res.Warnings, s.notify(ctx, notificationModel.TypeStatusChange, checkIn)...)
	}

	return res, nil
}

func payload(checkIn model.CheckIn) map[string]string {
	values := map[string]string{
		notificationModel.PayloadDriverName:      checkIn.DriverName,
		notificationModel.PayloadReferenceNumber: checkIn.ReferenceNumber,
		notificationModel.PayloadCarrierName:     checkIn.CarrierName,
		notificationModel.PayloadStatus:          string(checkIn.Status),
	}

	if checkIn.DockNumber != nil {
		values[notificationModel.PayloadDockNumber] = *checkIn.DockNumber
	}

	return values
}

// notify texts the driver and emails them when an address is on file.
// Failures come back as warnings for the response.
func (s *serviceImpl) notify(ctx context.Context, kind notificationModel.Type, checkIn model.CheckIn) []string {
	warnings := []string{}

	notification := notificationModel.Notification{
		Type:        kind,
		Channel:     notificationModel.ChannelSMS,
		Destination: checkIn.DriverPhone,
		Payload:     payload(checkIn),
	}

	if _, err := s.notification.Dispatch(ctx, notification); err != nil {
		log.Warn().Err(err).Str("id", checkIn.ID).Msg("driver sms failed")

		warnings = append(warnings, notificationWarning("SMS", err))
	}

	if checkIn.DriverEmail != nil {
		notification.Channel = notificationModel.ChannelEmail
		notification.Destination = *checkIn.DriverEmail

		if _, err := s.notification.Dispatch(ctx, notification); err != nil {
			log.Warn().Err(err).Str("id", checkIn.ID).Msg("driver email failed")

			warnings = append(warnings, notificationWarning("email", err))
		}
	}

	return warnings
}

func notificationWarning(channel string, err error) string {
	if failure.IsCode(err, http.StatusBadRequest) {
		return fmt.Sprintf("%s notification not sent: %v", channel, err)
	}

	return channel + " notification failed"
}
