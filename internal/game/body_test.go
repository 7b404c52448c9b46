package game

import (
	"reflect"
	"testing"

	"github.com/vkarpenko/snaketerm/internal/core"
)

func TestBodyInit(t *testing.T) {
	var b body
	segs := []core.Position{{Row: 2, Col: 5}, {Row: 2, Col: 4}, {Row: 2, Col: 3}}
	b.init(segs)

	if b.len() != 3 {
		t.Fatalf("len = %d, expected 3", b.len())
	}
	if b.head() != segs[0] {
		t.Errorf("head = %v, expected %v", b.head(), segs[0])
	}
	for _, p := range segs {
		if !b.contains(p) {
			t.Errorf("contains(%v) = false, expected true", p)
		}
	}
	if b.contains(core.Position{Row: 0, Col: 0}) {
		t.Error("contains reported a position that was never added")
	}
}

func TestBodyPushFrontPopBack(t *testing.T) {
	var b body
	b.init([]core.Position{{Row: 1, Col: 2}, {Row: 1, Col: 1}})

	b.pushFront(core.Position{Row: 1, Col: 3})

	want := []core.Position{{Row: 1, Col: 3}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}
	if got := b.positions(); !reflect.DeepEqual(got, want) {
		t.Errorf("positions = %v, expected %v", got, want)
	}

	b.popBack()

	if b.contains(core.Position{Row: 1, Col: 1}) {
		t.Error("popBack left the tail in the occupancy index")
	}
	if b.len() != 2 {
		t.Errorf("len = %d, expected 2", b.len())
	}
	if b.head() != (core.Position{Row: 1, Col: 3}) {
		t.Errorf("head = %v, expected (1,3)", b.head())
	}
}

func TestBodyPositionsIsACopy(t *testing.T) {
	var b body
	b.init([]core.Position{{Row: 0, Col: 1}, {Row: 0, Col: 0}})

	got := b.positions()
	got[0] = core.Position{Row: 9, Col: 9}

	if b.head() != (core.Position{Row: 0, Col: 1}) {
		t.Error("mutating the returned slice changed the body")
	}
}

func TestBodyReinitClearsOldIndex(t *testing.T) {
	var b body
	b.init([]core.Position{{Row: 5, Col: 5}})
	b.init([]core.Position{{Row: 1, Col: 1}})

	if b.contains(core.Position{Row: 5, Col: 5}) {
		t.Error("occupancy index kept a position from before re-init")
	}
}
