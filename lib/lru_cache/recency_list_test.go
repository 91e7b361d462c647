package lru_cache

import (
	"reflect"
	"testing"
)

func TestRecencyListReusesSlots(t *testing.T) {
	l := newRecencyList[string]()

	a := l.pushFront("a", "A")
	b := l.pushFront("b", "B")
	if got := l.keys(2); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("keys = %v", got)
	}

	if l.back() != a {
		t.Fatalf("expected a at the back")
	}

	n := l.release(a)
	if n.Key != "a" || n.Val != "A" {
		t.Fatalf("released %+v, want a=A", n)
	}

	c := l.pushFront("c", "C")
	if c != a {
		t.Fatalf("expected released slot %d to be reused, got %d", a, c)
	}
	if len(l.nodes) != 4 {
		t.Fatalf("expected arena of 4 slots, got %d", len(l.nodes))
	}

	l.moveToFront(b)
	if got := l.keys(2); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("keys = %v", got)
	}
}

func TestRecencyListEmpty(t *testing.T) {
	l := newRecencyList[int]()

	if l.back() != head {
		t.Fatalf("expected empty list to report head as back")
	}

	i := l.pushFront("x", 1)
	l.release(i)
	if l.back() != head || len(l.keys(0)) != 0 {
		t.Fatalf("expected list to be empty again")
	}
}
