package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"dockhub/infras/otel"
	checkInModel "dockhub/internal/domains/checkin/model"
	checkInDto "dockhub/internal/domains/checkin/model/dto"
	checkInRepository "dockhub/internal/domains/checkin/repository"
	"dockhub/internal/domains/report/model"
	"dockhub/internal/domains/report/model/dto"
	"dockhub/shared/constant"
	gDto "dockhub/shared/dto"
	"dockhub/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const detentionSheet = "Detention"

var detentionHeader = []any{
	"Check-in ID", "Driver", "Carrier", "Reference", "Load type", "Dock", "Status",
	"Appointment", "Checked in", "Ended", "On time", "Detention (min)", "Dwell (min)",
}

type Report interface {
	Detention(ctx context.Context, req dto.DetentionRequest) (dto.DetentionResponse, error)
	ExportDetention(ctx context.Context, req dto.DetentionRequest) ([]byte, error)
}

type serviceImpl struct {
	checkInRepo checkInRepository.CheckIn
	otel        otel.Otel
}

func New(checkInRepo checkInRepository.CheckIn, otel otel.Otel) Report {
	return &serviceImpl{
		checkInRepo: checkInRepo,
		otel:        otel,
	}
}

// Detention is recomputed from the stored check-ins on every call.
func (s *serviceImpl) Detention(ctx context.Context, req dto.DetentionRequest) (res dto.DetentionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Detention")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, summary, err := s.build(ctx, req)
	if err != nil {
		return res, err
	}

	res.FromModels(req, rows, summary)

	return res, nil
}

func (s *serviceImpl) build(ctx context.Context, req dto.DetentionRequest) ([]model.Row, model.Summary, error) {
	from, to, err := req.Range()
	if err != nil {
		return nil, model.Summary{}, err
	}

	checkIns, err := s.checkInRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  checkInModel.FieldCheckInTime,
		SortDir: gDto.SortDirAsc,
	}, checkInDto.CheckInTimeRange(from, to))
	if err != nil {
		log.Error().Err(err).Str("from", req.From).Str("to", req.To).Msg("failed to load check-ins for report")

		return nil, model.Summary{}, fmt.Errorf("failed to load check-ins: %w", err)
	}

	rows, summary := model.Build(checkIns, timezone.GetLocation())

	return rows, summary, nil
}

// ExportDetention renders the same rows as an xlsx workbook.
func (s *serviceImpl) ExportDetention(ctx context.Context, req dto.DetentionRequest) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.ExportDetention")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, summary, err := s.build(ctx, req)
	if err != nil {
		return nil, err
	}

	var response dto.DetentionResponse
	response.FromModels(req, rows, summary)

	file := excelize.NewFile()
	defer file.Close()

	if err = file.SetSheetName(file.GetSheetName(0), detentionSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err = file.SetSheetRow(detentionSheet, "A1", &detentionHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range response.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2) //nolint:mnd
		if err != nil {
			return nil, fmt.Errorf("failed to address row: %w", err)
		}

		values := []any{
			row.CheckInID, row.DriverName, row.CarrierName, row.ReferenceNumber, row.LoadType,
			deref(row.DockNumber), row.Status, deref(row.AppointmentTime), row.CheckInTime,
			deref(row.EndTime), row.OnTime, row.DetentionMinutes, derefInt(row.DwellMinutes),
		}

		if err = file.SetSheetRow(detentionSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		log.Error().Err(err).Msg("failed to render detention workbook")

		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return buffer.Bytes(), nil
}

func deref(value *string) any {
	if value == nil {
		return ""
	}

	return *value
}

func derefInt(value *int) any {
	if value == nil {
		return ""
	}

	return *value
}
