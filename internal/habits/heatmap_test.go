package habits

import "testing"

func TestProjectCoding(t *testing.T) {
	history := []Entry{
		entryDaysAgo(2, 0, false),
		entryDaysAgo(1, 1, false),
		entryDaysAgo(0, 2, false),
	}

	got := Project(history, Coding)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []int{0, 1, 2} {
		if got[i].Value != want {
			t.Errorf("point %d value = %d, want %d", i, got[i].Value, want)
		}
		if got[i].Date != history[i].Date {
			t.Errorf("point %d date = %s, want %s", i, got[i].Date, history[i].Date)
		}
	}
}

func TestProjectDoomscroll(t *testing.T) {
	history := []Entry{
		entryDaysAgo(2, 0, false),
		entryDaysAgo(1, 0, true),
		entryDaysAgo(0, 0, false),
	}

	got := Project(history, Doomscroll)
	for i, want := range []int{0, 1, 0} {
		if got[i].Value != want {
			t.Errorf("point %d value = %d, want %d", i, got[i].Value, want)
		}
	}
}

func TestProjectKeepsOrderAndRange(t *testing.T) {
	history := []Entry{
		{Date: "2025-03-02", CodingLevel: 2, Doomscrolled: true},
		{Date: "2025-01-15", CodingLevel: 7},
		{Date: "2025-02-01", CodingLevel: -1, Doomscrolled: true},
	}

	coding := Project(history, Coding)
	doom := Project(history, Doomscroll)
	for i := range history {
		if coding[i].Date != history[i].Date || doom[i].Date != history[i].Date {
			t.Fatalf("point %d out of order", i)
		}
		if v := coding[i].Value; v < 0 || v > 2 {
			t.Errorf("coding value %d out of range", v)
		}
		if v := doom[i].Value; v != 0 && v != 1 {
			t.Errorf("doomscroll value %d out of range", v)
		}
	}
}

func TestProjectEmpty(t *testing.T) {
	if got := Project(nil, Coding); len(got) != 0 {
		t.Errorf("Project(nil) = %v, want empty", got)
	}
}

func TestParseDimension(t *testing.T) {
	if d, ok := ParseDimension("coding"); !ok || d != Coding {
		t.Errorf("ParseDimension(coding) = %v, %v", d, ok)
	}
	if d, ok := ParseDimension("doomscroll"); !ok || d != Doomscroll {
		t.Errorf("ParseDimension(doomscroll) = %v, %v", d, ok)
	}
	if _, ok := ParseDimension("sleep"); ok {
		t.Error("ParseDimension(sleep) should fail")
	}
	if Coding.Name() != "Coding" {
		t.Errorf("Coding.Name() = %q", Coding.Name())
	}
}
