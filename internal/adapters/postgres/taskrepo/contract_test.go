package taskrepo

import (
	"testing"

	"github.com/console-catalog/catalog-api/internal/adapters/contracttest"
	"github.com/console-catalog/catalog-api/internal/adapters/postgres/testutil"
	taskrepoport "github.com/console-catalog/catalog-api/internal/ports/out/taskrepo"
)

func TestContract_PostgresTaskRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunTaskRepo(t, func(t *testing.T) (taskrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(pool), nil
	})
}
