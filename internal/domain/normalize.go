package domain

import "regexp"

var listSeparator = regexp.MustCompile(`\s*,\s*`)

// NormalizeTasks maps each task to a catalog item, keeping order. Nil entries
// map to nil-data items so the output always has one item per input.
//
// Missing annotations and labels never fail: they leave empty lists and an
// unset installed version.
func NormalizeTasks(tasks []*TaskResource) []CatalogItem {
	out := make([]CatalogItem, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NormalizeTask(t))
	}
	return out
}

// NormalizeTask builds the catalog item for a single task.
func NormalizeTask(t *TaskResource) CatalogItem {
	if t == nil {
		return CatalogItem{
			Type:     TaskProviderRedHat,
			Provider: TaskProviderRedHat,
			Tags:     []string{},
			Attributes: CatalogItemAttributes{
				Versions:   []CatalogItemVersion{},
				Categories: []string{},
			},
			CTA: addAction(),
		}
	}

	installedFrom, _ := t.Annotation(AnnotationInstalledFrom)
	provider := installedFrom
	if provider == "" {
		provider = TaskProviderRedHat
	}

	return CatalogItem{
		UID:               t.UID,
		Type:              TaskProviderRedHat,
		Name:              t.Name,
		Description:       t.Spec.Description,
		Provider:          provider,
		Tags:              splitAnnotation(t, AnnotationTags),
		CreationTimestamp: t.CreationTimestamp,
		Icon:              CatalogIcon{Kind: ModelReferenceForKind(t.Kind)},
		Attributes: CatalogItemAttributes{
			Installed:  installedVersion(t, installedFrom),
			Versions:   availableVersions(t, installedFrom),
			Categories: splitAnnotation(t, AnnotationCategories),
		},
		CTA:  addAction(),
		Data: t,
	}
}

// SplitList splits a comma separated annotation value, trimming whitespace
// around each comma. An empty value yields a single empty element.
func SplitList(v string) []string {
	return listSeparator.Split(v, -1)
}

func splitAnnotation(t *TaskResource, key string) []string {
	v, ok := t.Annotation(key)
	if !ok {
		return []string{}
	}
	return SplitList(v)
}

// availableVersions and installedVersion both branch on the Artifact Hub
// marker. Hub tasks report the semver annotation, everything else the
// version label.
func availableVersions(t *TaskResource, installedFrom string) []CatalogItemVersion {
	label, _ := t.Label(LabelVersion)
	if label == "" {
		return []CatalogItemVersion{}
	}
	v := label
	if installedFrom == ProviderArtifactHub {
		v, _ = t.Annotation(AnnotationSemVersion)
	}
	return []CatalogItemVersion{{ID: v, Version: v}}
}

func installedVersion(t *TaskResource, installedFrom string) *string {
	var (
		v  string
		ok bool
	)
	if installedFrom == ProviderArtifactHub {
		v, ok = t.Annotation(AnnotationSemVersion)
	} else {
		v, ok = t.Label(LabelVersion)
	}
	if !ok {
		return nil
	}
	return &v
}

func addAction() CatalogCTA {
	return CatalogCTA{Label: AddActionLabel, Callback: func() {}}
}
