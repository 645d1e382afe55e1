package taskrepo

import (
	"context"

	"github.com/console-catalog/catalog-api/internal/domain"
)

// Key identifies a stored task. Namespace is empty for cluster tasks.
type Key struct {
	Kind      domain.TaskKind
	Namespace string
	Name      string
}

// KeyOf returns the storage key of a task.
func KeyOf(t *domain.TaskResource) Key {
	k := Key{Kind: domain.TaskKind(t.Kind), Name: t.Name}
	if !t.IsClusterScoped() {
		k.Namespace = t.Namespace
	}
	return k
}

// Repository provides access to the task resources the catalog is built from.
//
// Result ordering expectations:
// - List methods return tasks ordered by name ascending to keep the catalog stable.
// - Returned tasks are copies; callers may hold on to them.
type Repository interface {
	// Upsert stores the task, replacing any task with the same key.
	Upsert(ctx context.Context, t *domain.TaskResource) error

	Get(ctx context.Context, key Key) (*domain.TaskResource, error)
	Delete(ctx context.Context, key Key) error

	// ListNamespaced returns the Task resources in a namespace.
	ListNamespaced(ctx context.Context, namespace string) ([]*domain.TaskResource, error)
	// ListCluster returns all ClusterTask resources.
	ListCluster(ctx context.Context) ([]*domain.TaskResource, error)
}

// Validate checks the fields a repository needs before storing a task.
func Validate(t *domain.TaskResource) error {
	if t == nil || t.Name == "" {
		return ErrInvalidTask
	}
	kind, ok := domain.ParseTaskKind(t.Kind)
	if !ok {
		return ErrInvalidTask
	}
	if kind == domain.KindTask && t.Namespace == "" {
		return ErrInvalidTask
	}
	return nil
}
