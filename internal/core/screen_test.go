package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("String() = %q, want blank rows", got)
	}
}

func TestScreenSetClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 2, 'X')
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.Set(p[0], p[1], 'A') // must not panic
	}

	if s.Get(1, 2) != 'X' {
		t.Errorf("Get(1, 2) = %q, want X", s.Get(1, 2))
	}
	if s.Get(-1, 0) != ' ' || s.Get(4, 0) != ' ' {
		t.Error("out-of-bounds Get should return a space")
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"inside", 1, "Hit", " Hit  "},
		{"clipped right", 4, "Plane", "    Pl"},
		{"clipped left", -2, "Jump", "mp    "},
		{"multibyte", 0, "▲▼", "▲▼    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 1)
			s.DrawText(tt.x, 0, tt.text)
			if got := s.Row(0); got != tt.want {
				t.Errorf("Row(0) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenRectClipsAndColors(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawRectColored(NewRect(3, -1, 4, 3), '#', ColorPurple)

	want := "   ##\n   ##\n     \n     "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if c := s.GetCell(4, 1); c.Color != ColorPurple {
		t.Errorf("GetCell(4, 1) = %+v, want purple", c)
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "ab", ColorRed)
	s.Clear()

	if c := s.GetCell(0, 0); c != (Cell{Rune: ' '}) {
		t.Errorf("GetCell after Clear = %+v, want plain space", c)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Row(0) = %q after shrinking", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Row(0) = %q after growing", s.Row(0))
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("Row(5) = %q, want content dropped by the shrink", s.Row(5))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(7); got != "   " {
		t.Errorf("Row(7) = %q, want spaces", got)
	}
}

func TestScreenZeroSize(t *testing.T) {
	s := NewScreen(0, 0)
	s.DrawText(0, 0, "x")
	if s.String() != "" {
		t.Errorf("String() = %q, want empty", s.String())
	}
}
