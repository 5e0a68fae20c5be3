package memory

import (
	"context"
	"io"
	"strings"
	"testing"

	"memberdir/internal/artifact/core"
)

func TestPutGetDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	info, err := s.Put(ctx, "all_members.csv", strings.NewReader("a,b"), core.PutOptions{ContentType: "text/csv"})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if info.Size != 3 || info.ContentType != "text/csv" {
		t.Fatalf("info: %+v", info)
	}

	_, rc, err := s.Get(ctx, "all_members.csv")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(b) != "a,b" {
		t.Fatalf("content: %q", b)
	}

	ok, err := s.Delete(ctx, "all_members.csv")
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	if _, _, err := s.Get(ctx, "all_members.csv"); err == nil {
		t.Fatalf("Get after Delete succeeded")
	}
}

func TestPutReplaces(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, _ = s.Put(ctx, "k", strings.NewReader("old"), core.PutOptions{})
	_, _ = s.Put(ctx, "k", strings.NewReader("new"), core.PutOptions{})
	_, rc, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(b) != "new" {
		t.Fatalf("content: %q", b)
	}
}

func TestListByPrefix(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, k := range []string{"categories/B.xlsx", "categories/A.xlsx", "all_members.xlsx"} {
		if _, err := s.Put(ctx, k, strings.NewReader("x"), core.PutOptions{}); err != nil {
			t.Fatalf("put %s: %v", k, err)
		}
	}
	infos, err := s.List(ctx, "categories/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 || infos[0].Key != "categories/A.xlsx" {
		t.Fatalf("list: %+v", infos)
	}
}

func TestFailKeysInjectsPutFailure(t *testing.T) {
	s := New()
	s.FailKeys = map[string]bool{"broken.xlsx": true}
	if _, err := s.Put(context.Background(), "broken.xlsx", strings.NewReader("x"), core.PutOptions{}); err == nil {
		t.Fatalf("expected injected failure")
	}
	if _, err := s.Put(context.Background(), "fine.xlsx", strings.NewReader("x"), core.PutOptions{}); err != nil {
		t.Fatalf("unrelated key failed: %v", err)
	}
}
