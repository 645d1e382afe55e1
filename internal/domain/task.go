package domain

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Annotation keys read from task metadata.
const (
	AnnotationTags          = "tekton.dev/tags"
	AnnotationCategories    = "tekton.dev/categories"
	AnnotationInstalledFrom = "openshift.io/installed-from"
	AnnotationSemVersion    = "openshift.io/semver"
)

// LabelVersion is the label carrying the task's version.
const LabelVersion = "app.kubernetes.io/version"

// TaskSpec holds the subset of the task spec the catalog displays.
type TaskSpec struct {
	Description string `json:"description,omitempty"`
}

// TaskResource is a Task or ClusterTask as listed from the cluster.
// It is owned by whoever loaded it; catalog code never mutates it.
type TaskResource struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec TaskSpec `json:"spec"`
}

// Annotation returns the annotation value and whether it was set.
func (t *TaskResource) Annotation(key string) (string, bool) {
	v, ok := t.Annotations[key]
	return v, ok
}

// Label returns the label value and whether it was set.
func (t *TaskResource) Label(key string) (string, bool) {
	v, ok := t.Labels[key]
	return v, ok
}

// IsClusterScoped reports whether the resource is a ClusterTask.
func (t *TaskResource) IsClusterScoped() bool {
	return TaskKind(t.Kind) == KindClusterTask
}

// DeepCopy returns a copy that shares no maps with t.
func (t *TaskResource) DeepCopy() *TaskResource {
	if t == nil {
		return nil
	}
	out := *t
	t.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	return &out
}
