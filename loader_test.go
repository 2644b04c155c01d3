package swayimg

import "testing"

func TestLoadFirst_SkipsBrokenEntries(t *testing.T) {
	l := &fakeLoader{entries: []LoadStatus{LoadIOError, LoadMalformed, LoadSuccess}}

	img, index, err := LoadFirst(l, InvalidIndex, false)
	if err != nil {
		t.Fatalf("LoadFirst: %v", err)
	}
	defer img.Release()

	if index != 2 {
		t.Errorf("index = %d, want the first decodable entry", index)
	}
	if got := l.requested(); len(got) != 3 {
		t.Errorf("loader requests = %v, want the scan to try every entry", got)
	}
}

func TestLoadFirst_ForcePinsIndex(t *testing.T) {
	l := &fakeLoader{entries: []LoadStatus{LoadMalformed, LoadSuccess}}

	if _, _, err := LoadFirst(l, 0, true); err == nil {
		t.Error("forced load of a broken entry must fail, not advance")
	}
	if got := l.requested(); len(got) != 1 || got[0] != 0 {
		t.Errorf("loader requests = %v, want [0] only", got)
	}
}

func TestLoadFirst_AllBroken(t *testing.T) {
	l := &fakeLoader{entries: []LoadStatus{LoadIOError, LoadUnsupported}}

	if _, _, err := LoadFirst(l, InvalidIndex, false); err == nil {
		t.Error("want an error when nothing is decodable")
	}
}

func TestLoadStatus_String(t *testing.T) {
	cases := map[LoadStatus]string{
		LoadSuccess:     "success",
		LoadUnsupported: "unsupported format",
		LoadMalformed:   "invalid format",
		LoadIOError:     "I/O error",
		LoadStatus(99):  "unknown error",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}
