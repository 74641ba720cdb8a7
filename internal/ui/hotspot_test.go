package ui

import (
	"testing"

	"github.com/iburimskiy/dotgrid/internal/grid"
)

func TestHitTestTable(t *testing.T) {
	const w, h = 1000.0, 800.0
	x := -w/2 + 50

	tests := []struct {
		name  string
		press grid.Point
		want  Action
		ok    bool
	}{
		{"pull", grid.Point{X: x, Y: h/2 - 50}, ModeAction(grid.Pull), true},
		{"push", grid.Point{X: x, Y: h/2 - 130}, ModeAction(grid.Push), true},
		{"white", grid.Point{X: x, Y: h/2 - 290}, ColorAction(White), true},
		{"springgreen", grid.Point{X: x, Y: h/2 - 370}, ColorAction(SpringGreen), true},
		{"cyan", grid.Point{X: x, Y: h/2 - 450}, ColorAction(Cyan), true},
		{"hotpink", grid.Point{X: x, Y: h/2 - 530}, ColorAction(HotPink), true},
		{"gap between pull and push", grid.Point{X: x, Y: h/2 - 90}, Action{}, false},
		{"gap between push and white", grid.Point{X: x, Y: h/2 - 200}, Action{}, false},
		{"below the column", grid.Point{X: x, Y: h/2 - 600}, Action{}, false},
		{"right of the column", grid.Point{X: -w/2 + 81, Y: h/2 - 50}, Action{}, false},
		{"screen center", grid.Point{}, Action{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HitTest(tt.press, w, h)
			if ok != tt.ok || got != tt.want {
				t.Errorf("HitTest(%v) = %v, %v; want %v, %v", tt.press, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHitTestEdges(t *testing.T) {
	const w, h = 1000.0, 800.0
	midPull := h/2 - 50

	if got, ok := HitTest(grid.Point{X: -w/2 + 20, Y: midPull}, w, h); !ok || got != ModeAction(grid.Pull) {
		t.Errorf("press on left edge = %v, %v; want SetMode(pull)", got, ok)
	}
	if got, ok := HitTest(grid.Point{X: -w/2 + 19, Y: midPull}, w, h); ok {
		t.Errorf("press just outside = %v, want no action", got)
	}
	if _, ok := HitTest(grid.Point{X: -w/2 + 80, Y: h/2 - 20}, w, h); !ok {
		t.Errorf("press on top-right corner of pull should hit")
	}
	if got, ok := HitTest(grid.Point{X: -w/2 + 50, Y: h/2 - 160}, w, h); !ok || got != ModeAction(grid.Push) {
		t.Errorf("press on bottom edge of push = %v, %v", got, ok)
	}
}

func TestHotspotsOrderAndGeometry(t *testing.T) {
	spots := Hotspots(1000, 800)
	names := []string{"Mode:Pull", "Mode:Push", "Color:White", "Color:SpringGreen", "Color:Cyan", "Color:HotPink"}
	if len(spots) != len(names) {
		t.Fatalf("got %d hotspots, want %d", len(spots), len(names))
	}
	for i, s := range spots {
		if s.Name != names[i] {
			t.Errorf("hotspot %d = %q, want %q", i, s.Name, names[i])
		}
		if s.MinX != -480 || s.MaxX != -420 {
			t.Errorf("%s x-range = [%v, %v], want [-480, -420]", s.Name, s.MinX, s.MaxX)
		}
		if s.MaxY-s.MinY != 60 {
			t.Errorf("%s height = %v, want 60", s.Name, s.MaxY-s.MinY)
		}
		if i > 0 && s.MaxY >= spots[i-1].MinY {
			t.Errorf("%s overlaps %s", s.Name, spots[i-1].Name)
		}
	}
	if c := spots[0].Center(); c != (grid.Point{X: -450, Y: 350}) {
		t.Errorf("pull center = %v, want (-450, 350)", c)
	}
}

func TestActionSelected(t *testing.T) {
	if !ModeAction(grid.Push).Selected(grid.Push, White) {
		t.Errorf("push action should be selected in push mode")
	}
	if ModeAction(grid.Pull).Selected(grid.Push, White) {
		t.Errorf("pull action should not be selected in push mode")
	}
	if !ColorAction(Cyan).Selected(grid.Pull, Cyan) {
		t.Errorf("cyan action should be selected when cyan is active")
	}
	if ColorAction(White).Selected(grid.Pull, HotPink) {
		t.Errorf("white action should not be selected when hotpink is active")
	}
}

func TestActionString(t *testing.T) {
	if got := ModeAction(grid.Push).String(); got != "SetMode(push)" {
		t.Errorf("got %q", got)
	}
	if got := ColorAction(SpringGreen).String(); got != "SetColor(springgreen)" {
		t.Errorf("got %q", got)
	}
}
