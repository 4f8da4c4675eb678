package ui

import (
	"strings"
	"testing"
)

type messageCell struct {
	View
	Text string
}

type photoCell struct {
	View
}

func TestCellIdentifier(t *testing.T) {
	if got := CellIdentifier[*messageCell](); got != "messageCell" {
		t.Errorf("CellIdentifier[*messageCell]() = %q", got)
	}
	if got := CellIdentifier[photoCell](); got != "photoCell" {
		t.Errorf("CellIdentifier[photoCell]() = %q", got)
	}
}

func expectPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, contains) {
			t.Errorf("panic = %v, want it to contain %q", r, contains)
		}
	}()
	fn()
}

func TestDequeue(t *testing.T) {
	sources := map[string]CellSource{
		"table":      NewTableView(),
		"collection": NewCollectionView(),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			created := 0
			RegisterCell(src, func() *messageCell {
				created++
				c := &messageCell{}
				c.init()
				return c
			})
			id := CellIdentifier[*messageCell]()

			cell := Dequeue[*messageCell](src, id, IndexPath{Item: 0})
			cell.Text = "hi"
			if created != 1 {
				t.Errorf("created = %d", created)
			}

			expectPanic(t, `"missing": not registered`, func() {
				Dequeue[*messageCell](src, "missing", IndexPath{})
			})
			expectPanic(t, "got *ui.messageCell", func() {
				Dequeue[*photoCell](src, id, IndexPath{})
			})
		})
	}
}

func TestRecycle(t *testing.T) {
	tv := NewTableView()
	tv.Register("plain", func() ViewLike { return NewView() })

	first := Dequeue[*View](tv, "plain", IndexPath{})
	tv.Recycle("plain", first)
	if again := Dequeue[*View](tv, "plain", IndexPath{Item: 1}); again != first {
		t.Error("recycled cell not reused")
	}
	if fresh := Dequeue[*View](tv, "plain", IndexPath{Item: 2}); fresh == first {
		t.Error("pool should be empty")
	}
}
