package manifest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/console-catalog/catalog-api/internal/domain"
)

func taskNames(ts []*domain.TaskResource) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Name)
	}
	return out
}

func TestDecode_MultiDocumentSkipsOtherKinds(t *testing.T) {
	t.Parallel()

	tasks, err := DecodeFile("testdata/01-tasks.yaml")
	if err != nil {
		t.Fatalf("DecodeFile() err=%v", err)
	}
	if diff := cmp.Diff([]string{"git-clone", "buildah"}, taskNames(tasks)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	gitClone := tasks[0]
	if gitClone.Kind != "Task" || gitClone.Namespace != "openshift-pipelines" {
		t.Fatalf("git-clone=%+v", gitClone.TypeMeta)
	}
	if gitClone.Annotations[domain.AnnotationTags] != "git, vcs" || gitClone.Labels[domain.LabelVersion] != "0.9" {
		t.Fatalf("git-clone metadata=%v %v", gitClone.Annotations, gitClone.Labels)
	}
	if gitClone.Spec.Description != "Clone a git repository." {
		t.Fatalf("description=%q", gitClone.Spec.Description)
	}
	if gitClone.CreationTimestamp.IsZero() || string(gitClone.UID) == "" {
		t.Fatalf("identity not decoded: uid=%q ts=%v", gitClone.UID, gitClone.CreationTimestamp)
	}
	if !tasks[1].IsClusterScoped() {
		t.Fatalf("buildah should be a ClusterTask")
	}
}

func TestDecode_FlattensLists(t *testing.T) {
	t.Parallel()

	tasks, err := DecodeFile("testdata/02-list.json")
	if err != nil {
		t.Fatalf("DecodeFile() err=%v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "s2i-go" {
		t.Fatalf("tasks=%v", taskNames(tasks))
	}
}

func TestDecode_EmptyDocuments(t *testing.T) {
	t.Parallel()

	tasks, err := Decode(strings.NewReader("---\n---\n"))
	if err != nil {
		t.Fatalf("Decode() err=%v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("tasks=%v, want none", taskNames(tasks))
	}
}

func TestDecode_InvalidDocument(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("kind: Task\nmetadata: [not, a, map]\n"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "document 1") {
		t.Fatalf("err=%v, want document index", err)
	}
}

func TestLoadDir_LexicalOrderManifestFilesOnly(t *testing.T) {
	t.Parallel()

	tasks, err := LoadDir("testdata")
	if err != nil {
		t.Fatalf("LoadDir() err=%v", err)
	}
	if diff := cmp.Diff([]string{"git-clone", "buildah", "s2i-go"}, taskNames(tasks)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDir_Missing(t *testing.T) {
	t.Parallel()

	if _, err := LoadDir("testdata/does-not-exist"); err == nil {
		t.Fatalf("expected error")
	}
}
