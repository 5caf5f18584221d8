package shared_test

import (
	"context"
	"dockhub/shared"
	"dockhub/shared/cache/mocks"
	"dockhub/shared/constant"
	"dockhub/shared/dto"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected *bool
	}{
		{input: "", expected: nil},
		{input: "true", expected: boolPtr(true)},
		{input: "0", expected: boolPtr(false)},
		{input: "F", expected: boolPtr(false)},
		{input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(7, 0))
	assert.Equal(t, 3, shared.CalculateTotalPage(21, 10))
	assert.Equal(t, 2, shared.CalculateTotalPage(20, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(-3, 10))
}

type checkInPatch struct {
	DriverName string  `db:"driver_name"`
	DockNumber *string `db:"dock_number"`
	Notes      string  `db:"-"`
	Internal   string
}

func TestTransformFields(t *testing.T) {
	dock := "12"

	fields := shared.TransformFields(checkInPatch{
		DriverName: "Audrey",
		DockNumber: &dock,
		Notes:      "skipped",
		Internal:   "skipped",
	}, "csr@dock.test")

	assert.Equal(t, "Audrey", fields["driver_name"])
	assert.Equal(t, &dock, fields["dock_number"])
	assert.Equal(t, "csr@dock.test", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.NotContains(t, fields, "-")
	assert.Len(t, fields, 4)
}

func TestTransformFields_SkipsZeroValues(t *testing.T) {
	fields := shared.TransformFields(checkInPatch{}, "system")

	assert.Len(t, fields, 2)
}

func TestTransformFields_AcceptsPointer(t *testing.T) {
	fields := shared.TransformFields(&checkInPatch{DriverName: "Audrey"}, "csr@dock.test")

	assert.Equal(t, "Audrey", fields["driver_name"])
	assert.Len(t, fields, 3)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("abc", "id", "check_ins")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(check_ins.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "abc"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "appointments", shared.BuildCacheKey("appointments"))
	assert.Equal(t, "appointments:id:42", shared.BuildCacheKey("appointments", "id", "42"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "date", SortDir: "ASC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "date", Value: "2025-03-01", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "time", Value: "0800", Operator: dto.FilterOperatorEq},
		},
	}

	first := shared.BuildCacheKeyWithQuery("appointments", params, filter)
	second := shared.BuildCacheKeyWithQuery("appointments", params, filter)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "date=2025-03-01")
	assert.Contains(t, first, "time=0800")

	params.Page = 2
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("appointments", params, filter))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "appointments*").Return(nil)
	shared.InvalidateCaches(context.Background(), redisCache, "appointments")

	redisCache.EXPECT().Clear(gomock.Any(), "profiles*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), redisCache, "profiles")
}

func boolPtr(b bool) *bool {
	return &b
}
