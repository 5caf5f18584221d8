package dto_test

import (
	"dockhub/shared/constant"
	"dockhub/shared/dto"
	"dockhub/shared/model"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "csr@dock.test",
		ModifiedBy: "admin@dock.test",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "csr@dock.test", metadata.CreatedBy)
	assert.Equal(t, "admin@dock.test", metadata.ModifiedBy)
	assert.False(t, metadata.Automated)

	metadata.FromModel(model.Metadata{CreatedBy: constant.ContextGuest, ModifiedBy: constant.ContextSystem})
	assert.True(t, metadata.Automated)
}

func TestOptionalTimestamp(t *testing.T) {
	assert.Nil(t, dto.OptionalTimestamp(nil))

	end := time.Date(2025, 3, 1, 16, 30, 0, 0, time.UTC)
	formatted := dto.OptionalTimestamp(&end)

	if assert.NotNil(t, formatted) {
		assert.Equal(t, dto.Timestamp(end), *formatted)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		rawQuery       string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			rawQuery: "page=2&limit=20&sort_by=check_in_time&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "check_in_time", SortDir: "ASC"},
		},
		{
			name:           "defaults",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid page and negative limit fall back",
			rawQuery:       "page=abc&limit=-4",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit capped",
			rawQuery: "limit=5000",
			expected: dto.QueryParams{Limit: dto.MaxLimit},
		},
		{
			name:     "unknown sort direction ignored",
			rawQuery: "sort_dir=sideways",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/check-ins?"+tt.rawQuery, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Restrict(t *testing.T) {
	allowed := []string{"check_in_time", "status"}

	params := dto.QueryParams{SortBy: "status; DROP TABLE check_ins"}
	params.Restrict(allowed, "check_in_time")
	assert.Equal(t, "check_in_time", params.SortBy)
	assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)

	params = dto.QueryParams{SortBy: "status", SortDir: dto.SortDirAsc}
	params.Restrict(allowed, "check_in_time")
	assert.Equal(t, "status", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "check_ins"},
			wantWhere: "check_ins.status = :status",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name:      "in expands slice",
			filter:    dto.Filter{Field: "status", Value: []string{"pending", "checked_in"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "pending", "status_1": "checked_in"},
		},
		{
			name:      "less with arg name",
			filter:    dto.Filter{ArgName: "to", Field: "end_time", Value: 5, Operator: dto.FilterOperatorLess},
			wantWhere: "end_time < :to",
			wantArgs:  map[string]any{"to": 5},
		},
		{
			name:      "is not null",
			filter:    dto.Filter{Field: "dock_number", Operator: dto.FilterIsNotNull},
			wantWhere: "dock_number IS NOT NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "like",
			filter:    dto.Filter{Field: "carrier_name", Value: "acme", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(carrier_name) LIKE LOWER(:carrier_name)",
			wantArgs:  map[string]any{"carrier_name": "%acme%"},
		},
		{
			name:      "like escapes wildcards",
			filter:    dto.Filter{Field: "sales_order", Value: "SO_10%", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(sales_order) LIKE LOWER(:sales_order)",
			wantArgs:  map[string]any{"sales_order": `%SO\_10\%%`},
		},
		{
			name:      "empty in matches nothing",
			filter:    dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator renders nothing",
			filter:    dto.Filter{Field: "status", Value: "x", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "dock_number", Operator: dto.FilterIsNotNull},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "s1", Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "s2", Field: "status", Value: "checked_in", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(dock_number IS NOT NULL AND (status = :s1 OR status = :s2))", where)
	assert.Equal(t, map[string]any{"s1": "pending", "s2": "checked_in"}, args)

	empty := dto.FilterGroup{}
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)

	implicitAnd := dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "dock_number", Operator: dto.FilterIsNull},
		dto.Filter{Field: "status", Value: "x", Operator: "between"},
		dto.Filter{Field: "active", Value: true, Operator: dto.FilterOperatorEq},
	}}
	where, _ = implicitAnd.GetWhereClause()
	assert.Equal(t, "(dock_number IS NULL AND active = :active)", where)
}
