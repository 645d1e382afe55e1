package domain

import "strings"

// TaskKind discriminates the two task resource types the catalog understands.
type TaskKind string

const (
	KindTask        TaskKind = "Task"
	KindClusterTask TaskKind = "ClusterTask"
)

const (
	// TektonGroup is the API group both task kinds are served from.
	TektonGroup = "tekton.dev"
	// TektonVersion is the API version the console references tasks by.
	TektonVersion = "v1beta1"
)

// ParseTaskKind accepts the kind as it appears in a manifest.
func ParseTaskKind(s string) (TaskKind, bool) {
	switch TaskKind(s) {
	case KindTask:
		return KindTask, true
	case KindClusterTask:
		return KindClusterTask, true
	default:
		return "", false
	}
}

// ModelReference is the group~version~kind string the console uses to look up
// a resource model (and from it, the resource icon).
type ModelReference string

// ModelReferenceForKind returns the model reference for a task kind. Any kind
// other than ClusterTask resolves to the namespaced Task model.
func ModelReferenceForKind(kind string) ModelReference {
	k := KindTask
	if TaskKind(kind) == KindClusterTask {
		k = KindClusterTask
	}
	return ModelReference(strings.Join([]string{TektonGroup, TektonVersion, string(k)}, "~"))
}
