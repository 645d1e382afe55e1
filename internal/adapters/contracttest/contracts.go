package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/console-catalog/catalog-api/internal/domain"
	idempotencyport "github.com/console-catalog/catalog-api/internal/ports/out/idempotency"
	taskrepoport "github.com/console-catalog/catalog-api/internal/ports/out/taskrepo"
)

type CleanupFunc = func()

type IdemStoreFactory func(t *testing.T) (idempotencyport.Store, CleanupFunc)

type TaskRepoFactory func(t *testing.T) (taskrepoport.Repository, CleanupFunc)

// NewTask builds a valid task for repository tests. An empty namespace makes
// it a ClusterTask.
func NewTask(namespace, name string) *domain.TaskResource {
	kind := domain.KindTask
	if namespace == "" {
		kind = domain.KindClusterTask
	}
	return &domain.TaskResource{
		TypeMeta: metav1.TypeMeta{APIVersion: "tekton.dev/v1beta1", Kind: string(kind)},
		ObjectMeta: metav1.ObjectMeta{
			UID:               types.UID(uuid.NewString()),
			Name:              name,
			Namespace:         namespace,
			CreationTimestamp: metav1.NewTime(time.Unix(1700000000, 0).UTC()),
			Annotations:       map[string]string{domain.AnnotationTags: "git, vcs"},
			Labels:            map[string]string{domain.LabelVersion: "0.9"},
		},
		Spec: domain.TaskSpec{Description: name + " task"},
	}
}

func RunTaskRepo(t *testing.T, newRepo TaskRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	// Unique namespace per run so shared databases don't interfere.
	ns := "ns-" + uuid.NewString()[:8]
	other := "ns-" + uuid.NewString()[:8]

	gitClone := NewTask(ns, "git-clone")
	buildah := NewTask(ns, "buildah")
	elsewhere := NewTask(other, "kaniko")
	clusterName := "ct-" + uuid.NewString()[:8]
	cluster := NewTask("", clusterName)

	for _, task := range []*domain.TaskResource{gitClone, buildah, elsewhere, cluster} {
		if err := repo.Upsert(ctx, task); err != nil {
			t.Fatalf("Upsert(%s) err=%v", task.Name, err)
		}
	}

	got, err := repo.Get(ctx, taskrepoport.KeyOf(gitClone))
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got.UID != gitClone.UID || got.Spec.Description != gitClone.Spec.Description {
		t.Fatalf("Get()=%+v, want %+v", got, gitClone)
	}
	if got.Annotations[domain.AnnotationTags] != "git, vcs" || got.Labels[domain.LabelVersion] != "0.9" {
		t.Fatalf("Get() metadata=%v/%v", got.Annotations, got.Labels)
	}
	if !got.CreationTimestamp.Equal(&gitClone.CreationTimestamp) {
		t.Fatalf("Get() creationTimestamp=%v, want %v", got.CreationTimestamp, gitClone.CreationTimestamp)
	}

	// Returned tasks are copies.
	got.Annotations[domain.AnnotationTags] = "mutated"
	again, err := repo.Get(ctx, taskrepoport.KeyOf(gitClone))
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if again.Annotations[domain.AnnotationTags] != "git, vcs" {
		t.Fatalf("repository state changed through returned task")
	}

	if _, err := repo.Get(ctx, taskrepoport.Key{Kind: domain.KindTask, Namespace: ns, Name: "missing"}); !errors.Is(err, taskrepoport.ErrNotFound) {
		t.Fatalf("Get(missing) err=%v, want ErrNotFound", err)
	}

	list, err := repo.ListNamespaced(ctx, ns)
	if err != nil {
		t.Fatalf("ListNamespaced err=%v", err)
	}
	if len(list) != 2 || list[0].Name != "buildah" || list[1].Name != "git-clone" {
		t.Fatalf("ListNamespaced()=%v, want [buildah git-clone]", names(list))
	}

	clusterTasks, err := repo.ListCluster(ctx)
	if err != nil {
		t.Fatalf("ListCluster err=%v", err)
	}
	if !containsName(clusterTasks, clusterName) || containsName(clusterTasks, "git-clone") {
		t.Fatalf("ListCluster()=%v", names(clusterTasks))
	}

	// Upsert replaces.
	updated := gitClone.DeepCopy()
	updated.Spec.Description = "clones a repo"
	if err := repo.Upsert(ctx, updated); err != nil {
		t.Fatalf("Upsert(update) err=%v", err)
	}
	got, err = repo.Get(ctx, taskrepoport.KeyOf(gitClone))
	if err != nil || got.Spec.Description != "clones a repo" {
		t.Fatalf("Get after update=%+v err=%v", got, err)
	}
	list, _ = repo.ListNamespaced(ctx, ns)
	if len(list) != 2 {
		t.Fatalf("ListNamespaced after update len=%d, want 2", len(list))
	}

	invalid := NewTask(ns, "")
	if err := repo.Upsert(ctx, invalid); !errors.Is(err, taskrepoport.ErrInvalidTask) {
		t.Fatalf("Upsert(no name) err=%v, want ErrInvalidTask", err)
	}

	if err := repo.Delete(ctx, taskrepoport.KeyOf(buildah)); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := repo.Delete(ctx, taskrepoport.KeyOf(buildah)); !errors.Is(err, taskrepoport.ErrNotFound) {
		t.Fatalf("Delete(again) err=%v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, taskrepoport.KeyOf(cluster)); err != nil {
		t.Fatalf("Delete(cluster) err=%v", err)
	}
}

func names(ts []*domain.TaskResource) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Name)
	}
	return out
}

func containsName(ts []*domain.TaskResource, name string) bool {
	for _, t := range ts {
		if t.Name == name {
			return true
		}
	}
	return false
}

func RunIdempotencyStore(t *testing.T, newStore IdemStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	key := idempotencyport.Key("k-" + uuid.NewString())
	meta := idempotencyport.Fingerprint{
		Key:      key,
		Method:   "POST",
		Route:    "/api/catalog/tasks",
		BodyHash: "",
	}
	rec := idempotencyport.Record{
		StatusCode:  0,
		ContentType: "text/plain",
		Body:        []byte("hash-abc"),
		CreatedAt:   time.Unix(123, 0).UTC(),
	}
	if err := store.Put(ctx, meta, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := store.Get(ctx, meta)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if string(got.Body) != "hash-abc" || got.ContentType != "text/plain" || got.StatusCode != 0 {
		t.Fatalf("unexpected record: %+v", got)
	}

	// A different body hash under the same key is a distinct record.
	full := meta
	full.BodyHash = "hash-abc"
	if _, ok, err := store.Get(ctx, full); err != nil || ok {
		t.Fatalf("expected no record for body fingerprint, got ok=%v err=%v", ok, err)
	}

	// Overwrite semantics.
	rec2 := rec
	rec2.Body = []byte("hash-def")
	if err := store.Put(ctx, meta, rec2); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, ok, err = store.Get(ctx, meta)
	if err != nil || !ok || string(got.Body) != "hash-def" {
		t.Fatalf("expected overwritten record, got ok=%v err=%v body=%q", ok, err, string(got.Body))
	}
}
