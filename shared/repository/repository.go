package repository

import (
	"context"
	"database/sql"
	"dockhub/infras/otel"
	"dockhub/infras/postgres"
	"dockhub/shared/constant"
	"dockhub/shared/dto"
	"dockhub/shared/logger"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var errRequiredFilter = errors.New("refusing to touch every row: filter is required")

// Repository is the table gateway shared by the domain repositories.
// Columns come from the `db` tags of T, including embedded structs such as the audit metadata.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	entity        string
	table         string
	primaryColumn string
	columns       []string
}

func NewRepository[T any](entity, table, primaryColumn string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:            db,
		otel:          otl,
		entity:        entity,
		table:         table,
		primaryColumn: primaryColumn,
		columns:       dbColumns(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		constant.OtelRepositoryScopeName+"."+repo.entity+"."+operation)
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

// read prepares query against the read pool and hands the statement to fn.
func (repo *Repository[T]) read(ctx context.Context, scope otel.Scope, action, query string, fn func(*sqlx.NamedStmt) error) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return repo.fail(scope, "prepare "+action, err)
	}
	defer stmt.Close()

	if err = fn(stmt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}

		return repo.fail(scope, action, err)
	}

	return nil
}

// write runs query against the primary and returns the number of rows it touched.
func (repo *Repository[T]) write(ctx context.Context, scope otel.Scope, action, query string, arg any) (int64, error) {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, arg)
	if err != nil {
		return 0, repo.fail(scope, action, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, repo.fail(scope, "read affected rows after "+action, err)
	}

	scope.SetAttribute("db.rows_affected", affected)

	return affected, nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	_, err := repo.write(ctx, scope, "insert", repo.insertQuery(), model)

	return err
}

// InsertIgnore inserts the row unless its primary key already exists, reporting whether it was written.
func (repo *Repository[T]) InsertIgnore(ctx context.Context, model T) (bool, error) {
	ctx, scope := repo.scope(ctx, "InsertIgnore")
	defer scope.End()

	query := fmt.Sprintf("%s ON CONFLICT (%s) DO NOTHING", repo.insertQuery(), repo.primaryColumn)

	affected, err := repo.write(ctx, scope, "insert", query, model)

	return affected > 0, err
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	where, args := whereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	var exist bool

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	err := repo.read(ctx, scope, "check existence", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &exist, args)
	})

	return exist, err
}

// Get returns the first matching row, or the zero value when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	where, args := whereClause(filter)

	var model T

	query := fmt.Sprintf("SELECT %s FROM %s %s LIMIT 1", repo.selectList(columns), repo.table, where)
	err := repo.read(ctx, scope, "get", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &model, args)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	return model, err
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := whereClause(filter)
	pagination := pageClause(params, args)

	query := strings.Join(slices.DeleteFunc([]string{
		"SELECT " + repo.selectList(columns),
		"FROM " + repo.table,
		where,
		repo.orderClause(params),
		pagination,
	}, func(part string) bool { return part == "" }), " ")

	models := []T{}
	err := repo.read(ctx, scope, "get all", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.SelectContext(ctx, &models, args)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return models, nil
	}

	return models, err
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	where, args := whereClause(filter)

	var count int

	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s", repo.table, repo.primaryColumn, repo.table, where)
	err := repo.read(ctx, scope, "count", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &count, args)
	})

	return count, err
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	where, args := whereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	_, err := repo.write(ctx, scope, "delete", fmt.Sprintf("DELETE FROM %s %s", repo.table, where), args)

	return err
}

func (repo *Repository[T]) Update(ctx context.Context, changes map[string]any, filter dto.FilterGroup) error {
	_, err := repo.UpdateAffected(ctx, changes, filter)

	return err
}

// UpdateAffected applies the update and reports how many rows matched the filter.
// Callers use it for compare-and-set transitions where the filter carries the expected state.
func (repo *Repository[T]) UpdateAffected(ctx context.Context, changes map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	where, args := whereClause(filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	// Filter args share the namespace with the SET values; a clash would silently rebind one of them.
	for column := range changes {
		if _, ok := args[column]; ok {
			return 0, fmt.Errorf("update of %s: column %q is also a filter argument, set ArgName on the filter", repo.entity, column)
		}
	}

	maps.Copy(args, changes)

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, setClause(changes), where)

	return repo.write(ctx, scope, "update", query, args)
}

func (repo *Repository[T]) insertQuery() string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s)",
		repo.table, strings.Join(repo.columns, ", "), strings.Join(repo.columns, ", :"))
}

// selectList qualifies the requested columns, or every mapped column when none are requested.
// Unknown names are dropped so callers cannot inject expressions.
func (repo *Repository[T]) selectList(only []string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, name := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, name) {
			continue
		}

		selected = append(selected, repo.table+"."+name)
	}

	return strings.Join(selected, ", ")
}

// orderClause expects SortBy to be restricted to known columns by the caller; the primary key breaks ties.
func (repo *Repository[T]) orderClause(params dto.QueryParams) string {
	if params.SortBy == "" || params.SortDir == "" {
		return ""
	}

	order := fmt.Sprintf("ORDER BY %s.%s %s", repo.table, params.SortBy, params.SortDir)
	if params.SortBy != repo.primaryColumn {
		order += fmt.Sprintf(", %s.%s", repo.table, repo.primaryColumn)
	}

	return order
}

func pageClause(params dto.QueryParams, args map[string]any) string {
	if params.Limit <= 0 {
		return ""
	}

	args["limit"] = params.Limit

	if params.Page <= 0 {
		return "LIMIT :limit"
	}

	args["offset"] = (params.Page - 1) * params.Limit

	return "LIMIT :limit OFFSET :offset"
}

func setClause(changes map[string]any) string {
	columns := slices.Sorted(maps.Keys(changes))
	assignments := make([]string, len(columns))

	for idx, column := range columns {
		assignments[idx] = column + " = :" + column
	}

	return strings.Join(assignments, ", ")
}

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return "WHERE " + where, args
}

// dbColumns walks the `db` tags of t in declaration order, flattening embedded structs.
func dbColumns(t reflect.Type) []string {
	var columns []string

	for idx := range t.NumField() {
		field := t.Field(idx)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, dbColumns(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}

// IsUniqueViolation reports whether err carries a postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}
