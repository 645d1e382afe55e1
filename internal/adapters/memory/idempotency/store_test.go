package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/console-catalog/catalog-api/internal/ports/out/idempotency"
)

func TestStore_PutThenGet(t *testing.T) {
	t.Parallel()

	s := NewStore()
	fp := idempotency.Fingerprint{
		Key:      "k1",
		Method:   "POST",
		Route:    "/api/catalog/tasks",
		BodyHash: "abc123",
	}
	rec := idempotency.Record{
		StatusCode:  200,
		ContentType: "application/json",
		Body:        []byte(`{"imported":1}`),
		CreatedAt:   time.Unix(123, 0).UTC(),
	}

	if err := s.Put(context.Background(), fp, rec); err != nil {
		t.Fatalf("Put() err=%v", err)
	}

	got, ok, err := s.Get(context.Background(), fp)
	if err != nil {
		t.Fatalf("Get() err=%v", err)
	}
	if !ok {
		t.Fatalf("Get() ok=false, want true")
	}
	if got.StatusCode != rec.StatusCode || got.ContentType != rec.ContentType || string(got.Body) != string(rec.Body) {
		t.Fatalf("Get()=%+v, want %+v", got, rec)
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	s := NewStore()
	fp := idempotency.Fingerprint{Key: "k2", Method: "POST", Route: "/api/catalog/tasks"}
	if err := s.Put(context.Background(), fp, idempotency.Record{Body: []byte("hash")}); err != nil {
		t.Fatalf("Put() err=%v", err)
	}

	got, _, _ := s.Get(context.Background(), fp)
	got.Body[0] = 'X'

	again, _, _ := s.Get(context.Background(), fp)
	if string(again.Body) != "hash" {
		t.Fatalf("stored body mutated: %q", again.Body)
	}
}

func TestStore_MissingKey(t *testing.T) {
	t.Parallel()

	s := NewStore()
	_, ok, err := s.Get(context.Background(), idempotency.Fingerprint{Key: "nope"})
	if err != nil || ok {
		t.Fatalf("Get() ok=%v err=%v, want ok=false err=nil", ok, err)
	}
}
