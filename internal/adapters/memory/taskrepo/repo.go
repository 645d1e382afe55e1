package taskrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/console-catalog/catalog-api/internal/domain"
	"github.com/console-catalog/catalog-api/internal/ports/out/taskrepo"
)

// Repo is an in-memory implementation of taskrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byKey map[taskrepo.Key]*domain.TaskResource
}

func NewRepo() *Repo {
	return &Repo{
		byKey: make(map[taskrepo.Key]*domain.TaskResource),
	}
}

func (r *Repo) Upsert(ctx context.Context, t *domain.TaskResource) error {
	_ = ctx
	if err := taskrepo.Validate(t); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byKey[taskrepo.KeyOf(t)] = t.DeepCopy()
	return nil
}

func (r *Repo) Get(ctx context.Context, key taskrepo.Key) (*domain.TaskResource, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byKey[key]
	if !ok {
		return nil, taskrepo.ErrNotFound
	}
	return t.DeepCopy(), nil
}

func (r *Repo) Delete(ctx context.Context, key taskrepo.Key) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byKey[key]; !ok {
		return taskrepo.ErrNotFound
	}
	delete(r.byKey, key)
	return nil
}

func (r *Repo) ListNamespaced(ctx context.Context, namespace string) ([]*domain.TaskResource, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.TaskResource, 0)
	for k, t := range r.byKey {
		if k.Kind != domain.KindTask || k.Namespace != namespace {
			continue
		}
		out = append(out, t.DeepCopy())
	}
	sortTasksByName(out)
	return out, nil
}

func (r *Repo) ListCluster(ctx context.Context) ([]*domain.TaskResource, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.TaskResource, 0)
	for k, t := range r.byKey {
		if k.Kind != domain.KindClusterTask {
			continue
		}
		out = append(out, t.DeepCopy())
	}
	sortTasksByName(out)
	return out, nil
}

func sortTasksByName(ts []*domain.TaskResource) {
	sort.Slice(ts, func(i, j int) bool {
		return ts[i].Name < ts[j].Name
	})
}
