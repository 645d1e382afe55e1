package taskrepo

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/console-catalog/catalog-api/internal/adapters/contracttest"
	"github.com/console-catalog/catalog-api/internal/domain"
	"github.com/console-catalog/catalog-api/internal/ports/out/taskrepo"
)

func newMockRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return NewRepo(mock), mock
}

func manifestOf(t *testing.T, task *domain.TaskResource) []byte {
	t.Helper()
	b, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return b
}

func TestRepo_UpsertWritesKeyColumns(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepo(t)
	task := contracttest.NewTask("ns1", "git-clone")

	mock.ExpectExec("INSERT INTO tasks").
		WithArgs("Task", "ns1", "git-clone", string(task.UID), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := r.Upsert(context.Background(), task); err != nil {
		t.Fatalf("Upsert() err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRepo_UpsertClusterTaskUsesEmptyNamespace(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepo(t)
	task := contracttest.NewTask("", "buildah")
	task.Namespace = "ignored"

	mock.ExpectExec("INSERT INTO tasks").
		WithArgs("ClusterTask", "", "buildah", string(task.UID), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := r.Upsert(context.Background(), task); err != nil {
		t.Fatalf("Upsert() err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRepo_UpsertRejectsInvalidWithoutQuery(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepo(t)
	if err := r.Upsert(context.Background(), contracttest.NewTask("ns1", "")); !errors.Is(err, taskrepo.ErrInvalidTask) {
		t.Fatalf("Upsert() err=%v, want ErrInvalidTask", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRepo_ListNamespacedDecodesManifests(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepo(t)
	a := contracttest.NewTask("ns1", "buildah")
	b := contracttest.NewTask("ns1", "git-clone")

	rows := pgxmock.NewRows([]string{"manifest"}).
		AddRow(manifestOf(t, a)).
		AddRow(manifestOf(t, b))
	mock.ExpectQuery("SELECT manifest").WithArgs("Task", "ns1").WillReturnRows(rows)

	got, err := r.ListNamespaced(context.Background(), "ns1")
	if err != nil {
		t.Fatalf("ListNamespaced() err=%v", err)
	}
	if len(got) != 2 || got[0].Name != "buildah" || got[1].Name != "git-clone" {
		t.Fatalf("ListNamespaced()=%v", got)
	}
	if got[1].Labels[domain.LabelVersion] != "0.9" || got[1].UID != b.UID {
		t.Fatalf("decoded task=%+v", got[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRepo_GetMapsNoRowsToNotFound(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT manifest").
		WithArgs("ClusterTask", "", "missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := r.Get(context.Background(), taskrepo.Key{Kind: domain.KindClusterTask, Name: "missing"})
	if !errors.Is(err, taskrepo.ErrNotFound) {
		t.Fatalf("Get() err=%v, want ErrNotFound", err)
	}
}

func TestRepo_DeleteReportsMissing(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepo(t)
	mock.ExpectExec("DELETE FROM tasks").
		WithArgs("Task", "ns1", "gone").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := r.Delete(context.Background(), taskrepo.Key{Kind: domain.KindTask, Namespace: "ns1", Name: "gone"})
	if !errors.Is(err, taskrepo.ErrNotFound) {
		t.Fatalf("Delete() err=%v, want ErrNotFound", err)
	}
}
