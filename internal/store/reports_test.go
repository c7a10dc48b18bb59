package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	gerr "github.com/jekabolt/grbpwr-pnl/internal/errors"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var runColumns = []string{
	"id", "uuid", "job", "mode", "period", "previous_period", "generated_at", "store_count",
	"total_net_sales", "total_direct_profit", "value_parse_errors", "unmapped_rows", "checksum", "created_at", "document",
}

var generatedAt = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

func newMockStore(t *testing.T) (*MYSQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	ms := NewWithDB(context.Background(), sqlx.NewDb(db, "mysql"))
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		ms.Close()
	})
	return ms, mock
}

func testRun() *entity.ReportRunNew {
	return &entity.ReportRunNew{
		Job:               "hk",
		Mode:              entity.ModeMonth,
		Period:            entity.MustPeriod("202512"),
		PreviousPeriod:    entity.MustPeriod("202412"),
		GeneratedAt:       generatedAt,
		StoreCount:        12,
		TotalNetSales:     decimal.NewFromInt(5000),
		TotalDirectProfit: decimal.NewFromInt(200),
		Document:          []byte(`{"metadata":{}}`),
	}
}

func runRow(id int, doc []byte) []driver.Value {
	return []driver.Value{
		id, "6f1c2a8e-0000-4000-8000-000000000001", "hk", "month", 202512, 202412, generatedAt, 12,
		"5000.00", "200.00", 0, 0, Checksum(doc), generatedAt, doc,
	}
}

var (
	insertRun = regexp.QuoteMeta("INSERT INTO report_run")
	selectRun = regexp.QuoteMeta("SELECT id, uuid, job")
)

func TestSaveReport_Created(t *testing.T) {
	ms, mock := newMockStore(t)
	run := testRun()

	mock.ExpectBegin()
	mock.ExpectExec(insertRun).
		WithArgs(sqlmock.AnyArg(), "hk", "month", 202512, 202412, sqlmock.AnyArg(), 12,
			sqlmock.AnyArg(), sqlmock.AnyArg(), 0, 0, Checksum(run.Document), run.Document).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(selectRun).
		WithArgs("hk", "month", 202512, Checksum(run.Document)).
		WillReturnRows(sqlmock.NewRows(runColumns).AddRow(runRow(7, run.Document)...))
	mock.ExpectCommit()

	saved, created, err := ms.Reports().SaveReport(context.Background(), run)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 7, saved.ID)
	assert.Equal(t, 202512, saved.Period)
	assert.True(t, saved.TotalNetSales.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, run.Document, saved.Document)
}

func TestSaveReport_SameContentIsNoop(t *testing.T) {
	ms, mock := newMockStore(t)
	run := testRun()

	mock.ExpectBegin()
	mock.ExpectExec(insertRun).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(selectRun).
		WillReturnRows(sqlmock.NewRows(runColumns).AddRow(runRow(3, run.Document)...))
	mock.ExpectCommit()

	saved, created, err := ms.SaveReport(context.Background(), run)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 3, saved.ID)
}

func TestSaveReport_RetriesDeadlock(t *testing.T) {
	ms, mock := newMockStore(t)
	run := testRun()

	mock.ExpectBegin()
	mock.ExpectExec(insertRun).WillReturnError(&mysql.MySQLError{Number: mysqlErrDeadlock, Message: "deadlock"})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(insertRun).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(selectRun).
		WillReturnRows(sqlmock.NewRows(runColumns).AddRow(runRow(1, run.Document)...))
	mock.ExpectCommit()

	_, created, err := ms.SaveReport(context.Background(), run)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestSaveReport_Error(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(insertRun).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, _, err := ms.SaveReport(context.Background(), testRun())
	assert.ErrorContains(t, err, "boom")
}

func TestGetLatestReport_NotFound(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(selectRun).WithArgs("hk").WillReturnRows(sqlmock.NewRows(runColumns))

	_, err := ms.GetLatestReport(context.Background(), "hk")
	assert.True(t, errors.Is(err, gerr.ErrReportNotFound))
}

func TestGetReport(t *testing.T) {
	ms, mock := newMockStore(t)
	doc := []byte(`{"a":1}`)

	mock.ExpectQuery(selectRun).WithArgs("hk", 202512).
		WillReturnRows(sqlmock.NewRows(runColumns).AddRow(runRow(9, doc)...))

	run, err := ms.GetReport(context.Background(), "hk", entity.MustPeriod("2512"))
	require.NoError(t, err)
	assert.Equal(t, doc, run.Document)
	assert.Equal(t, "month", run.Mode)
}

func TestListReports_ClampsLimit(t *testing.T) {
	ms, mock := newMockStore(t)
	cols := runColumns[:len(runColumns)-1]
	row := runRow(2, nil)[:len(cols)]

	mock.ExpectQuery(selectRun).WithArgs("hk", maxListLimit).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(row...))
	mock.ExpectQuery(selectRun).WithArgs("mc", defaultListLimit).
		WillReturnRows(sqlmock.NewRows(cols))

	runs, err := ms.ListReports(context.Background(), "hk", 10000)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Empty(t, runs[0].Document)

	runs, err = ms.ListReports(context.Background(), "mc", 0)
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestMySQLErrorClassification(t *testing.T) {
	ms := &MYSQLStore{}
	assert.True(t, ms.IsErrorRepeat(&mysql.MySQLError{Number: mysqlErrDeadlock}))
	assert.True(t, ms.IsErrUniqueViolation(&mysql.MySQLError{Number: mysqlErrDuplicateKey}))
	assert.False(t, ms.IsErrorRepeat(errors.New("other")))
}

func TestMigrationSource(t *testing.T) {
	ms, err := MigrationSource().FindMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, ms)
	assert.Equal(t, "0001_report_run.sql", ms[0].Id)
}
