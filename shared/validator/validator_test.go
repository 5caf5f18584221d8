package validator_test

import (
	"dockhub/shared/failure"
	"dockhub/shared/validator"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type driverForm struct {
	DriverName      string `validate:"required,max=100"                   json:"driver_name"`
	DriverPhone     string `validate:"required,phone"                     json:"driver_phone"`
	DriverEmail     string `validate:"omitempty,email"                    json:"driver_email"`
	DestState       string `validate:"omitempty,usstate"                  json:"destination_state"`
	ReferenceNumber string `validate:"required,refnum"                    json:"reference_number"`
	LoadType        string `validate:"required,oneof=inbound outbound"    json:"load_type"`
	Slot            string `validate:"omitempty,hhmm|eq=work_in"          json:"slot"`
}

func validForm() driverForm {
	return driverForm{
		DriverName:      "Dale Cooper",
		DriverPhone:     "(555) 123-4567",
		DestState:       "tx",
		ReferenceNumber: "SO-12345",
		LoadType:        "inbound",
		Slot:            "0830",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *driverForm)
		wantErr string
	}{
		{
			name:   "valid form",
			mutate: func(_ *driverForm) {},
		},
		{
			name:    "missing driver name",
			mutate:  func(f *driverForm) { f.DriverName = "" },
			wantErr: "driver_name is required",
		},
		{
			name:    "short phone",
			mutate:  func(f *driverForm) { f.DriverPhone = "555-1234" },
			wantErr: "driver_phone must be a 10 digit phone number",
		},
		{
			name:   "phone with country code",
			mutate: func(f *driverForm) { f.DriverPhone = "+1 555 123 4567" },
		},
		{
			name:    "unknown state",
			mutate:  func(f *driverForm) { f.DestState = "ZZ" },
			wantErr: "destination_state must be a two letter US state code",
		},
		{
			name:    "reference too short",
			mutate:  func(f *driverForm) { f.ReferenceNumber = "A1" },
			wantErr: "reference_number must be 4 to 20 letters, digits or dashes",
		},
		{
			name:    "invalid load type",
			mutate:  func(f *driverForm) { f.LoadType = "crossdock" },
			wantErr: "load_type must be one of inbound, outbound",
		},
		{
			name:   "work in slot",
			mutate: func(f *driverForm) { f.Slot = "work_in" },
		},
		{
			name:    "slot out of range",
			mutate:  func(f *driverForm) { f.Slot = "2460" },
			wantErr: "slot must be a 24h time like 0830",
		},
		{
			name:    "invalid email",
			mutate:  func(f *driverForm) { f.DriverEmail = "dale-at-example" },
			wantErr: "driver_email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid clock", field: "0500", tag: "hhmm"},
		{name: "clock without leading zero", field: "500", tag: "hhmm", expectError: true},
		{name: "clock minutes overflow", field: "1075", tag: "hhmm", expectError: true},
		{name: "lowercase state", field: "il", tag: "usstate"},
		{name: "empty on zero value", field: "", tag: "empty"},
		{name: "empty on value", field: "x", tag: "empty", expectError: true},
		{name: "number in range", field: 25, tag: "gte=0,lte=100"},
		{name: "number out of range", field: 150, tag: "gte=0,lte=100", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"driver_name":"Dale","driver_phone":"5551234567","reference_number":"PO-1001","load_type":"outbound"}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"driver_name":"Dale","driver_phone":"123","reference_number":"PO-1001","load_type":"outbound"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"driver_name":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data driverForm
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type uploadForm struct {
	File *multipart.FileHeader `validate:"required,mimetypes=text/csv application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,maxfilesize=1" json:"file"`
}

func header(filename, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)

	return &multipart.FileHeader{Filename: filename, Header: h, Size: size}
}

func TestFileValidation(t *testing.T) {
	tests := []struct {
		name        string
		file        *multipart.FileHeader
		expectError bool
	}{
		{name: "csv", file: header("slots.csv", "text/csv", 512)},
		{name: "csv sent as octet stream", file: header("slots.CSV", "application/octet-stream", 512)},
		{name: "xlsx", file: header("slots.xlsx", "application/octet-stream", 512)},
		{name: "pdf rejected", file: header("slots.pdf", "application/pdf", 512), expectError: true},
		{name: "too large", file: header("slots.csv", "text/csv", 2<<20), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&uploadForm{File: tt.file})

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5551234567", validator.NormalizePhone("(555) 123-4567"))
	assert.Equal(t, "5551234567", validator.NormalizePhone("+1-555-123-4567"))
	assert.Equal(t, "123", validator.NormalizePhone("1-2-3"))
}

func TestValidateStruct_ReportsEveryField(t *testing.T) {
	form := validForm()
	form.DriverName = ""
	form.LoadType = "crossdock"

	err := validator.ValidateStruct(&form)

	require.Error(t, err)
	assert.Equal(t, "driver_name is required; load_type must be one of inbound, outbound", err.Error())
}
