package taskrepo

import (
	"testing"

	"github.com/console-catalog/catalog-api/internal/adapters/contracttest"
	taskrepoport "github.com/console-catalog/catalog-api/internal/ports/out/taskrepo"
)

func TestContract_TaskRepo(t *testing.T) {
	contracttest.RunTaskRepo(t, func(t *testing.T) (taskrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(), nil
	})
}
