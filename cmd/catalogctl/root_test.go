package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const manifests = `
apiVersion: tekton.dev/v1beta1
kind: Task
metadata:
  name: git-clone
  namespace: ns1
  annotations:
    tekton.dev/tags: a, b,c
  labels:
    app.kubernetes.io/version: 1.2.3
spec:
  description: Clone.
`

func TestNormalizeCmd_Stdin(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(manifests))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"normalize", "--log-level", "error"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() err=%v", err)
	}

	var items []struct {
		Name       string   `json:"name"`
		Tags       []string `json:"tags"`
		Attributes struct {
			Installed string `json:"installed"`
		} `json:"attributes"`
	}
	if err := json.Unmarshal(out.Bytes(), &items); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if len(items) != 1 || items[0].Name != "git-clone" || len(items[0].Tags) != 3 || items[0].Attributes.Installed != "1.2.3" {
		t.Fatalf("items=%+v", items)
	}
}

func TestNormalizeCmd_MissingFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"normalize", "-f", "does-not-exist.yaml"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLogoURLCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<svg/>"))
	}))
	t.Cleanup(srv.Close)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"logo-url", "--server", srv.URL + "/", "--theme", "dark"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() err=%v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "data:image/svg+xml,%3Csvg%2F%3E" {
		t.Fatalf("output=%q", got)
	}
}

func TestLogoURLCmd_Type(t *testing.T) {
	gotType := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType <- r.URL.Query().Get("type")
		_, _ = w.Write([]byte("<svg/>"))
	}))
	t.Cleanup(srv.Close)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"logo-url", "--server", srv.URL + "/", "--type", "favicon"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() err=%v", err)
	}
	if got := <-gotType; got != "favicon" {
		t.Fatalf("type=%q, want favicon", got)
	}
}

func TestLogoURLCmd_RejectsUnknownType(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"logo-url", "--server", "http://127.0.0.1:1/", "--type", "banner"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "unknown custom logo type") {
		t.Fatalf("Execute() err=%v, want unknown custom logo type", err)
	}
}
