package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	employeeerrors "github.com/ninoyerbas/JHRIS/internal/employee/errors"
	"github.com/ninoyerbas/JHRIS/internal/events"
	"github.com/ninoyerbas/JHRIS/internal/messaging/kafka"
)

type fakeRepo struct {
	createFn     func(ctx context.Context, e *Employee) error
	findAllFn    func(ctx context.Context, status, department string) ([]Employee, error)
	findByIDFn   func(ctx context.Context, id string) (*Employee, error)
	existsFn     func(ctx context.Context, id string) (bool, error)
	updateFn     func(ctx context.Context, e *Employee) error
	deactivateFn func(ctx context.Context, id string) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, e *Employee) error { return f.createFn(ctx, e) }

func (f *fakeRepo) FindAll(ctx context.Context, status, department string) ([]Employee, error) {
	return f.findAllFn(ctx, status, department)
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeRepo) Exists(ctx context.Context, id string) (bool, error) {
	return f.existsFn(ctx, id)
}

func (f *fakeRepo) Update(ctx context.Context, e *Employee) error { return f.updateFn(ctx, e) }

func (f *fakeRepo) Deactivate(ctx context.Context, id string) (int64, error) {
	return f.deactivateFn(ctx, id)
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error      { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, r string) error { return nil }

func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newGormDB(t *testing.T, db *sql.DB) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb
}

func TestCreate_WritesOutboxEventInSameTransaction(t *testing.T) {
	db, mock := newTxDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO employees").
		WithArgs(
			sqlmock.AnyArg(), nil, "Jane", "Doe", "EMP-001",
			nil, nil, nil, nil, nil, StatusActive,
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(
			sqlmock.AnyArg(), "", "employee", sqlmock.AnyArg(),
			"employee.created", events.EmployeeCreatedTopic,
			sqlmock.AnyArg(), kafka.OutboxStatusPending,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewRepository(newGormDB(t, db))
	svc := NewServiceWithOutbox(db, repo, kafka.NewOutboxRepository(db), nil)

	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName:      "Jane",
		LastName:       "Doe",
		EmployeeNumber: "EMP-001",
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusActive, resp.Status)
	assert.Equal(t, "EMP-001", resp.EmployeeNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_OutboxFailureRollsBackEmployeeRow(t *testing.T) {
	db, mock := newTxDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO employees").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO outbox_events").
		WillReturnError(errors.New("outbox insert failed"))
	mock.ExpectRollback()

	repo := NewRepository(newGormDB(t, db))
	svc := NewServiceWithOutbox(db, repo, kafka.NewOutboxRepository(db), nil)

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName:      "Jane",
		LastName:       "Doe",
		EmployeeNumber: "EMP-002",
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmployeeNumber(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, e *Employee) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_number"}
		},
	}
	svc := NewServiceWithOutbox(db, repo, &fakeOutbox{}, nil)

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName:      "Jane",
		LastName:       "Doe",
		EmployeeNumber: "EMP-001",
	})

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNumberAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_BadHireDate(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, e *Employee) error {
			t.Fatal("must not persist")
			return nil
		},
	}
	svc := NewServiceWithOutbox(db, repo, &fakeOutbox{}, nil)

	hireDate := "01/02/2026"
	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName:      "Jane",
		LastName:       "Doe",
		EmployeeNumber: "EMP-001",
		HireDate:       &hireDate,
	})

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOptions_ServedFromRedisCache(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	cached := []EmployeeOption{{ID: uuid.NewString(), FullName: "Jane Doe"}}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)
	redisMock.ExpectGet(EmployeeOptionsKey).SetVal(string(payload))

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, status, department string) ([]Employee, error) {
			t.Fatal("cache hit must not query the database")
			return nil, nil
		},
	}
	svc := NewService(nil, repo, rdb)

	options, err := svc.GetOptions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, cached, options)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGetOptions_FillsCacheOnMiss(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	id := uuid.New()
	expected := []EmployeeOption{{ID: id.String(), FullName: "Jane Doe"}}
	payload, err := json.Marshal(expected)
	assert.NoError(t, err)

	redisMock.ExpectGet(EmployeeOptionsKey).RedisNil()
	redisMock.ExpectSet(EmployeeOptionsKey, payload, 5*time.Minute).SetVal("OK")

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, status, department string) ([]Employee, error) {
			assert.Equal(t, StatusActive, status)
			return []Employee{{ID: id, FirstName: "Jane", LastName: "Doe"}}, nil
		},
	}
	svc := NewService(nil, repo, rdb)

	options, err := svc.GetOptions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, options)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestDelete_SoftDeletesAndInvalidatesCache(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectDel(EmployeeOptionsKey).SetVal(1)

	var deactivated string
	repo := &fakeRepo{
		deactivateFn: func(ctx context.Context, id string) (int64, error) {
			deactivated = id
			return 1, nil
		},
	}
	svc := NewService(nil, repo, rdb)

	id := uuid.NewString()
	assert.NoError(t, svc.Delete(context.Background(), id))
	assert.Equal(t, id, deactivated)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestDelete_MissingEmployee(t *testing.T) {
	repo := &fakeRepo{
		deactivateFn: func(ctx context.Context, id string) (int64, error) {
			return 0, nil
		},
	}
	svc := NewService(nil, repo, nil)

	err := svc.Delete(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
