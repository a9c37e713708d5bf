package state

import "testing"

type recordingMover struct {
	deltas []int
}

func (m *recordingMover) MoveSelection(delta int) bool {
	m.deltas = append(m.deltas, delta)
	return true
}

func TestFocusStartsOnNavigation(t *testing.T) {
	f := NewFocus()
	if f.Current() != FocusNavigation {
		t.Fatalf("expected navigation focus, got %v", f.Current())
	}
}

func TestFocusTransitionTable(t *testing.T) {
	cases := []struct {
		from FocusArea
		dir  Direction
		want FocusArea
	}{
		{FocusNavigation, Left, FocusHeader},
		{FocusPreview, Left, FocusNavigation},
		{FocusFooter, Left, FocusPreview},
		{FocusHeader, Left, FocusFooter},
		{FocusHeader, Right, FocusNavigation},
		{FocusNavigation, Right, FocusPreview},
		{FocusPreview, Right, FocusFooter},
		{FocusFooter, Right, FocusHeader},
		{FocusHeader, Down, FocusNavigation},
		{FocusPreview, Down, FocusFooter},
		{FocusFooter, Down, FocusHeader},
		{FocusHeader, Up, FocusFooter},
		{FocusPreview, Up, FocusNavigation},
		{FocusFooter, Up, FocusPreview},
	}
	for _, tc := range cases {
		f := &Focus{current: tc.from}
		changed, moved := f.Move(tc.dir, nil)
		if !changed || moved {
			t.Fatalf("%v %v: expected focus change only, got %v/%v", tc.from, tc.dir, changed, moved)
		}
		if f.Current() != tc.want {
			t.Fatalf("%v %v: expected %v, got %v", tc.from, tc.dir, tc.want, f.Current())
		}
	}
}

func TestFocusLeftRightAreInverse(t *testing.T) {
	for _, area := range FocusAreas() {
		if area == FocusInput {
			continue
		}
		f := &Focus{current: area}
		f.Move(Left, nil)
		f.Move(Right, nil)
		if f.Current() != area {
			t.Fatalf("left then right from %v landed on %v", area, f.Current())
		}
	}
}

func TestFocusCycleNeverReachesInput(t *testing.T) {
	for _, area := range FocusAreas() {
		if area == FocusInput {
			continue
		}
		for _, d := range []Direction{Left, Right, Up, Down} {
			f := &Focus{current: area}
			f.Move(d, &recordingMover{})
			if f.Current() == FocusInput {
				t.Fatalf("%v from %v reached input", d, area)
			}
		}
	}
}

func TestFocusNavigationDelegatesVerticalMoves(t *testing.T) {
	f := NewFocus()
	mover := &recordingMover{}
	changed, moved := f.Move(Down, mover)
	if changed || !moved {
		t.Fatalf("expected selection move only, got %v/%v", changed, moved)
	}
	f.Move(Up, mover)
	if len(mover.deltas) != 2 || mover.deltas[0] != 1 || mover.deltas[1] != -1 {
		t.Fatalf("unexpected deltas %v", mover.deltas)
	}
	if f.Current() != FocusNavigation {
		t.Fatalf("expected focus to stay on navigation, got %v", f.Current())
	}
}

func TestFocusJump(t *testing.T) {
	f := NewFocus()
	for _, area := range FocusAreas() {
		f.Jump(area)
		if f.Current() != area {
			t.Fatalf("expected jump to %v, got %v", area, f.Current())
		}
	}
	if f.Jump(FocusFooter) {
		t.Fatal("expected jump to the current area to report no change")
	}
	if f.Jump(FocusArea(42)) {
		t.Fatal("expected invalid jump to be ignored")
	}
	if f.Current() != FocusFooter {
		t.Fatalf("expected focus unchanged after invalid jump, got %v", f.Current())
	}
}

func TestFocusInputIgnoresDirections(t *testing.T) {
	f := &Focus{current: FocusInput}
	for _, d := range []Direction{Left, Right, Up, Down} {
		if changed, _ := f.Move(d, &recordingMover{}); changed {
			t.Fatalf("expected %v to be ignored on input", d)
		}
	}
}

func TestFocusAreaStrings(t *testing.T) {
	want := []string{"header", "navigation", "preview", "input", "footer"}
	for i, area := range FocusAreas() {
		if area.String() != want[i] {
			t.Fatalf("expected %q, got %q", want[i], area.String())
		}
	}
	if FocusArea(-1).Valid() {
		t.Fatal("expected negative area to be invalid")
	}
}
