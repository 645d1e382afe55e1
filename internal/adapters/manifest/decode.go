// Package manifest reads Task and ClusterTask resources from YAML or JSON
// manifests, as produced by `kubectl get tasks -o yaml` or checked into a repo.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"

	"github.com/console-catalog/catalog-api/internal/domain"
)

const decoderBufferSize = 4096

type document struct {
	metav1.TypeMeta `json:",inline"`

	Items []json.RawMessage `json:"items,omitempty"`
}

// Decode reads every document in r and returns the tasks in stream order.
// List documents are flattened; documents of any other kind are skipped.
func Decode(r io.Reader) ([]*domain.TaskResource, error) {
	dec := utilyaml.NewYAMLOrJSONDecoder(r, decoderBufferSize)
	out := make([]*domain.TaskResource, 0)
	for n := 1; ; n++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("decode document %d: %w", n, err)
		}
		tasks, err := decodeDocument(raw)
		if err != nil {
			return nil, fmt.Errorf("decode document %d: %w", n, err)
		}
		out = append(out, tasks...)
	}
}

func decodeDocument(raw json.RawMessage) ([]*domain.TaskResource, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	if strings.HasSuffix(doc.Kind, "List") {
		out := make([]*domain.TaskResource, 0, len(doc.Items))
		for i, item := range doc.Items {
			tasks, err := decodeDocument(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, tasks...)
		}
		return out, nil
	}

	if _, ok := domain.ParseTaskKind(doc.Kind); !ok {
		return nil, nil
	}
	var t domain.TaskResource
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	return []*domain.TaskResource{&t}, nil
}

// DecodeFile decodes a single manifest file.
func DecodeFile(path string) ([]*domain.TaskResource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tasks, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tasks, nil
}

// LoadDir decodes every .yaml, .yml and .json file directly under dir, in
// lexical file name order.
func LoadDir(dir string) ([]*domain.TaskResource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read manifest dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isManifest(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]*domain.TaskResource, 0)
	for _, name := range names {
		tasks, err := DecodeFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, tasks...)
	}
	return out, nil
}

func isManifest(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
