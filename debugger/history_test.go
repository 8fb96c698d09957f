package debugger

import "testing"

func TestCommandHistory_Add(t *testing.T) {
	h := NewCommandHistory()

	h.Add(`%d|42`)
	h.Add(`%s|hello`)
	h.Add(`%#x|255`)

	if h.Size() != 3 {
		t.Errorf("Size = %d, want 3", h.Size())
	}

	all := h.GetAll()
	if len(all) != 3 {
		t.Errorf("GetAll() length = %d, want 3", len(all))
	}
	if all[0] != `%d|42` {
		t.Errorf("First command = %s, want %%d|42", all[0])
	}
}

func TestCommandHistory_IgnoreEmpty(t *testing.T) {
	h := NewCommandHistory()

	h.Add(`%d|42`)
	h.Add("")
	h.Add(`%s|hi`)

	if h.Size() != 2 {
		t.Errorf("Size = %d, want 2 (empty commands should be ignored)", h.Size())
	}
}

func TestCommandHistory_IgnoreDuplicates(t *testing.T) {
	h := NewCommandHistory()

	h.Add(`%d|1`)
	h.Add(`%d|1`)
	h.Add(`%s|hi`)

	if h.Size() != 2 {
		t.Errorf("Size = %d, want 2 (duplicate should be ignored)", h.Size())
	}

	all := h.GetAll()
	if all[0] != `%d|1` || all[1] != `%s|hi` {
		t.Error("duplicate command was not ignored correctly")
	}
}

func TestCommandHistory_PreviousAndNext(t *testing.T) {
	h := NewCommandHistory()
	h.Add("run1")
	h.Add("run2")
	h.Add("run3")

	if got := h.Previous(); got != "run3" {
		t.Errorf("Previous() = %s, want run3", got)
	}
	if got := h.Previous(); got != "run2" {
		t.Errorf("Previous() = %s, want run2", got)
	}
	if got := h.Previous(); got != "run1" {
		t.Errorf("Previous() = %s, want run1", got)
	}
	if got := h.Previous(); got != "" {
		t.Errorf("Previous() at start = %s, want empty", got)
	}

	if got := h.Next(); got != "run2" {
		t.Errorf("Next() = %s, want run2", got)
	}
	if got := h.Next(); got != "run3" {
		t.Errorf("Next() = %s, want run3", got)
	}
	if got := h.Next(); got != "" {
		t.Errorf("Next() at end = %s, want empty", got)
	}
}

func TestCommandHistory_GetLast(t *testing.T) {
	h := NewCommandHistory()
	h.Add("run1")
	h.Add("run2")

	if got := h.GetLast(); got != "run2" {
		t.Errorf("GetLast() = %s, want run2", got)
	}
	if got := h.GetLast(); got != "run2" {
		t.Errorf("GetLast() should not change position, got %s", got)
	}
}

func TestCommandHistory_Clear(t *testing.T) {
	h := NewCommandHistory()
	h.Add("run1")
	h.Add("run2")
	h.Clear()

	if h.Size() != 0 {
		t.Errorf("Size after clear = %d, want 0", h.Size())
	}
	if got := h.GetLast(); got != "" {
		t.Errorf("GetLast after clear = %s, want empty", got)
	}
}

func TestCommandHistory_Search(t *testing.T) {
	h := NewCommandHistory()
	h.Add(`%d|1`)
	h.Add(`%d|2`)
	h.Add(`%s|hi`)

	results := h.Search("%d")
	if len(results) != 2 {
		t.Errorf("Search results length = %d, want 2", len(results))
	}
}

func TestCommandHistory_SearchNoMatches(t *testing.T) {
	h := NewCommandHistory()
	h.Add(`%d|1`)

	if results := h.Search("%s"); len(results) != 0 {
		t.Errorf("expected no matches, got %d", len(results))
	}
}

func TestCommandHistory_MaxSize(t *testing.T) {
	h := NewCommandHistory()
	for i := 0; i < 1100; i++ {
		h.Add("run")
	}
	if h.Size() > 1000 {
		t.Errorf("Size = %d, should not exceed max size of 1000", h.Size())
	}
}

func TestCommandHistory_EmptyHistory(t *testing.T) {
	h := NewCommandHistory()

	if h.Size() != 0 {
		t.Errorf("new history size = %d, want 0", h.Size())
	}
	if got := h.Previous(); got != "" {
		t.Errorf("Previous on empty history = %s, want empty", got)
	}
	if got := h.Next(); got != "" {
		t.Errorf("Next on empty history = %s, want empty", got)
	}
}
