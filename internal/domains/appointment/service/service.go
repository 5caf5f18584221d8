package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Appointment=MockAppointmentService

import (
	"context"
	"dockhub/config"
	"dockhub/infras/otel"
	"dockhub/infras/s3"
	"dockhub/internal/domains/appointment/importer"
	"dockhub/internal/domains/appointment/model"
	"dockhub/internal/domains/appointment/model/dto"
	"dockhub/internal/domains/appointment/repository"
	realtimeModel "dockhub/internal/domains/realtime/model"
	realtimeService "dockhub/internal/domains/realtime/service"
	"dockhub/shared"
	"dockhub/shared/cache"
	"dockhub/shared/constant"
	gDto "dockhub/shared/dto"
	"dockhub/shared/failure"
	gModel "dockhub/shared/model"
	gRepo "dockhub/shared/repository"
	"dockhub/shared/timezone"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAppointment    = "appointment:get"
	cacheGetAllAppointment = "appointment:gets"
	cacheCountAppointment  = "appointment:count"

	archiveDirectory = "appointments/imports"

	errDuplicateAppointment = "appointment already exists for this date, time, sales order and delivery"
)

type Appointment interface {
	Create(ctx context.Context, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.Filter) (dto.GetAppointmentsResponse, error)
	Get(ctx context.Context, id string) (dto.AppointmentResponse, error)
	Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) error
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, filename, contentType string, data []byte) (dto.ImportResponse, error)
	TimeSlots() dto.TimeSlotsResponse
}

type serviceImpl struct {
	repo      repository.Appointment
	publisher realtimeService.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
}

func New(repo repository.Appointment, publisher realtimeService.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Appointment {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
	}
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != "" {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAppointment, id)); err != nil {
				log.Error().Err(err).Str("id", id).Msg("failed to delete appointment cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)
	}()
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return res, err //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	appointment := req.ToModel(user)

	err = s.repo.Insert(ctx, appointment)
	if gRepo.IsUniqueViolation(err) {
		return res, failure.Conflict(errDuplicateAppointment) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create appointment")

		return res, fmt.Errorf("failed to create appointment: %w", err)
	}

	res.FromModel(appointment)

	s.invalidate(ctx, "")
	realtimeService.Emit(ctx, s.publisher, realtimeModel.TableAppointments, realtimeModel.EventInsert, appointment.ID, "created", res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.Filter) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = filter.Validate(); err != nil {
		return res, err //nolint:wrapcheck
	}

	req.Restrict(dto.SortableColumns, model.FieldScheduledDate)
	filterGroup := filter.ToFilterGroup()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAppointment, req, filterGroup)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for appointments")

		return res, nil
	}

	total, err := s.count(ctx, filterGroup)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filterGroup)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAppointment, gDto.QueryParams{}, filter)

	var total int
	if err := s.cache.Get(ctx, cacheKey, &total); err == nil {
		return total, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAppointment, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	appointment, err := s.repo.Get(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == "" {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	res.FromModel(appointment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return err //nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to check appointment existence")

		return fmt.Errorf("failed to check appointment existence: %w", err)
	}

	if !exist {
		return failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.repo.Update(ctx, shared.TransformFields(req, user), byID(id))
	if gRepo.IsUniqueViolation(err) {
		return failure.Conflict(errDuplicateAppointment) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update appointment")

		return fmt.Errorf("failed to update appointment: %w", err)
	}

	s.invalidate(ctx, id)

	appointment, err := s.repo.Get(ctx, byID(id))
	if err != nil {
		log.Warn().Err(err).Str("id", id).Msg("updated appointment not published")

		return nil
	}

	var row dto.AppointmentResponse
	row.FromModel(appointment)
	realtimeService.Emit(ctx, s.publisher, realtimeModel.TableAppointments, realtimeModel.EventUpdate, id, "updated", row)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to check appointment existence")

		return fmt.Errorf("failed to check appointment existence: %w", err)
	}

	if !exist {
		return failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, byID(id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete appointment")

		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	s.invalidate(ctx, id)
	realtimeService.Emit(ctx, s.publisher, realtimeModel.TableAppointments, realtimeModel.EventDelete, id, "deleted", nil)

	return nil
}

// Import creates one appointment per valid row. Rows matching an existing appointment or an
// earlier row of the same file are skipped, invalid rows are reported by line.
func (s *serviceImpl) Import(ctx context.Context, filename, contentType string, data []byte) (res dto.ImportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Import")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := importer.Parse(filename, data)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	res.Errors = []string{}
	res.ArchiveURL = s.archive(ctx, filename, contentType, data)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()
	seen := make(map[model.Key]struct{}, len(rows))

	for _, row := range rows {
		if row.Err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", row.Line, row.Err))

			continue
		}

		if dto.ValidateSlot(row.ScheduledTime) != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: time %s is not a bookable slot", row.Line, row.ScheduledTime))

			continue
		}

		appointment := model.Appointment{
			ID:            uuid.NewString(),
			ScheduledDate: row.ScheduledDate,
			ScheduledTime: row.ScheduledTime,
			SalesOrder:    row.SalesOrder,
			Delivery:      row.Delivery,
			Source:        model.SourceExcel,
			Metadata:      gModel.NewMetadata(user, now),
		}

		key := appointment.Key()
		if _, duplicate := seen[key]; duplicate {
			res.Skipped++

			continue
		}

		seen[key] = struct{}{}

		created, err := s.importRow(ctx, appointment)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", row.Line, err))

			continue
		}

		if created {
			res.Created++

			var row dto.AppointmentResponse
			row.FromModel(appointment)
			realtimeService.Emit(ctx, s.publisher, realtimeModel.TableAppointments, realtimeModel.EventInsert, appointment.ID, "imported", row)
		} else {
			res.Skipped++
		}
	}

	if res.Created > 0 {
		s.invalidate(ctx, "")
	}

	log.Info().
		Str("file", filename).
		Int("created", res.Created).
		Int("skipped", res.Skipped).
		Int("failed", res.Failed).
		Msg("appointment import finished")

	return res, nil
}

// importRow reports false when the appointment already exists.
func (s *serviceImpl) importRow(ctx context.Context, appointment model.Appointment) (bool, error) {
	exist, err := s.repo.Exist(ctx, dto.ByKey(appointment.Key()))
	if err != nil {
		return false, errors.New("could not check for duplicates")
	}

	if exist {
		return false, nil
	}

	err = s.repo.Insert(ctx, appointment)
	if gRepo.IsUniqueViolation(err) {
		return false, nil
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to import appointment")

		return false, errors.New("could not save appointment")
	}

	return true, nil
}

// archive keeps the uploaded file. Failures only cost the archive copy.
func (s *serviceImpl) archive(ctx context.Context, filename, contentType string, data []byte) string {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	url, err := s.s3.Put(ctx, s3.Object{
		Directory:    archiveDirectory,
		Name:         uuid.NewString() + strings.ToLower(filepath.Ext(filename)),
		OriginalName: filepath.Base(filename),
		ContentType:  contentType,
		UploadedBy:   user,
		Body:         data,
	})
	if err != nil {
		log.Warn().Err(err).Str("file", filename).Msg("failed to archive appointment import")

		return ""
	}

	return url
}

func (s *serviceImpl) TimeSlots() dto.TimeSlotsResponse {
	return dto.TimeSlotsResponse{Slots: model.TimeSlots()}
}
