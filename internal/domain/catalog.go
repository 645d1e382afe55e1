package domain

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
)

const (
	// TaskProviderRedHat is the provider assumed when a task does not say where it came from.
	TaskProviderRedHat = "Red Hat"
	// ProviderArtifactHub marks tasks installed from Artifact Hub. Those tasks
	// carry their version in the semver annotation instead of the version label.
	ProviderArtifactHub = "ArtifactHub"

	// AddActionLabel is the call-to-action label on every task item.
	AddActionLabel = "Add"
)

// CatalogItemVersion is one installable version of a catalog item. An
// Artifact Hub task without a semver annotation yields an empty version,
// which encodes as {}.
type CatalogItemVersion struct {
	ID      string `json:"id,omitempty"`
	Version string `json:"version,omitempty"`
}

// CatalogIcon references the icon of the resource model rather than embedding an image.
type CatalogIcon struct {
	Kind ModelReference `json:"kind"`
}

// CatalogCTA is the action offered on an item. Callback is a placeholder; the
// consumer replaces it with whatever adding a task means in its context.
type CatalogCTA struct {
	Label    string `json:"label"`
	Callback func() `json:"-"`
}

// CatalogItemAttributes holds the version details and categories of an item.
type CatalogItemAttributes struct {
	// Installed is the installed version; nil when the task does not declare one.
	Installed  *string              `json:"installed,omitempty"`
	Versions   []CatalogItemVersion `json:"versions"`
	Categories []string             `json:"categories"`
}

// CatalogItem is the display record for a task in a catalog or search view.
type CatalogItem struct {
	UID               types.UID             `json:"uid"`
	Type              string                `json:"type"`
	Name              string                `json:"name"`
	Description       string                `json:"description"`
	Provider          string                `json:"provider"`
	Tags              []string              `json:"tags"`
	CreationTimestamp metav1.Time           `json:"creationTimestamp"`
	Icon              CatalogIcon           `json:"icon"`
	Attributes        CatalogItemAttributes `json:"attributes"`
	CTA               CatalogCTA            `json:"cta"`

	// Data is the resource the item was built from, shared with the caller.
	Data *TaskResource `json:"data"`
}
