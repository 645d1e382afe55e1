package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/console-catalog/catalog-api/internal/domain"
	"github.com/console-catalog/catalog-api/internal/platform/logger"
	clockport "github.com/console-catalog/catalog-api/internal/ports/out/clock"
	"github.com/console-catalog/catalog-api/internal/ports/out/taskrepo"
)

// Service builds the task catalog shown to console users.
type Service struct {
	repo taskrepo.Repository
	clk  clockport.Clock

	// tasks caches the combined task list per namespace. Any write purges it
	// since a ClusterTask change affects every namespace.
	tasks *lru.Cache[string, []*domain.TaskResource]

	// gen is bumped by every purge. A list only fills the cache when no purge
	// ran between its repo reads and the Add.
	mu  sync.Mutex
	gen uint64

	newUID func() types.UID
}

// NewService returns a catalog service. cacheSize <= 0 disables caching.
func NewService(repo taskrepo.Repository, clk clockport.Clock, cacheSize int) *Service {
	s := &Service{
		repo: repo,
		clk:  clk,
		newUID: func() types.UID {
			return types.UID(uuid.NewString())
		},
	}
	if cacheSize > 0 {
		// lru.New only fails for non-positive sizes.
		s.tasks, _ = lru.New[string, []*domain.TaskResource](cacheSize)
	}
	return s
}

// ListTaskItems returns the catalog items for the tasks visible in namespace:
// the namespace's Tasks followed by all ClusterTasks.
//
// Items share their Data with the service cache and must be treated as read-only.
func (s *Service) ListTaskItems(ctx context.Context, namespace string) ([]domain.CatalogItem, error) {
	ns := strings.TrimSpace(namespace)
	if ns == "" {
		return nil, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid namespace",
			Details: map[string]any{"namespace": "must be non-empty"},
		}
	}
	tasks, err := s.visibleTasks(ctx, ns)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeTasks(tasks), nil
}

func (s *Service) visibleTasks(ctx context.Context, ns string) ([]*domain.TaskResource, error) {
	if s.tasks != nil {
		if cached, ok := s.tasks.Get(ns); ok {
			return cached, nil
		}
	}
	gen := s.generation()

	namespaced, err := s.repo.ListNamespaced(ctx, ns)
	if err != nil {
		return nil, err
	}
	cluster, err := s.repo.ListCluster(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.TaskResource, 0, len(namespaced)+len(cluster))
	for _, t := range append(namespaced, cluster...) {
		if t != nil {
			tasks = append(tasks, t)
		}
	}
	logger.FromContext(ctx).Debug("loaded catalog tasks",
		"namespace", ns, "namespaced", len(namespaced), "cluster", len(cluster))

	s.fill(ns, tasks, gen)
	return tasks, nil
}

// ImportTasks validates and stores tasks. Tasks without a UID or creation
// timestamp get one assigned; the caller's values are not modified.
// Nothing is stored when any task is invalid. Upserts are not atomic: a
// repository error stops the import and returns the count stored before it,
// and those tasks stay imported.
func (s *Service) ImportTasks(ctx context.Context, tasks []*domain.TaskResource) (int, error) {
	prepared := make([]*domain.TaskResource, 0, len(tasks))
	for i, t := range tasks {
		if err := taskrepo.Validate(t); err != nil {
			name := ""
			if t != nil {
				name = t.Name
			}
			return 0, &Error{
				Status:  422,
				Code:    "VALIDATION_ERROR",
				Message: "invalid task",
				Details: map[string]any{
					"index":  i,
					"name":   name,
					"reason": "name and kind (Task or ClusterTask) are required; Tasks need a namespace",
				},
			}
		}
		c := t.DeepCopy()
		if c.UID == "" {
			c.UID = s.newUID()
		}
		if c.CreationTimestamp.IsZero() {
			c.CreationTimestamp = metav1.NewTime(s.clk.Now())
		}
		prepared = append(prepared, c)
	}

	defer s.purge()
	for i, t := range prepared {
		if err := s.repo.Upsert(ctx, t); err != nil {
			return i, err
		}
	}
	logger.FromContext(ctx).Info("imported tasks", "count", len(prepared))
	return len(prepared), nil
}

// DeleteTask removes a task from the catalog.
func (s *Service) DeleteTask(ctx context.Context, key taskrepo.Key) error {
	if _, ok := domain.ParseTaskKind(string(key.Kind)); !ok {
		return &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid kind",
			Details: map[string]any{"kind": "must be Task or ClusterTask"},
		}
	}
	if key.Kind == domain.KindClusterTask {
		key.Namespace = ""
	} else if strings.TrimSpace(key.Namespace) == "" {
		return &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid namespace",
			Details: map[string]any{"namespace": "required for Task"},
		}
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		if errors.Is(err, taskrepo.ErrNotFound) {
			return &Error{
				Status:  404,
				Code:    "TASK_NOT_FOUND",
				Message: "task not found",
			}
		}
		return err
	}
	s.purge()
	return nil
}

func (s *Service) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *Service) fill(ns string, tasks []*domain.TaskResource, gen uint64) {
	if s.tasks == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		s.tasks.Add(ns, tasks)
	}
}

func (s *Service) purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.tasks != nil {
		s.tasks.Purge()
	}
}
