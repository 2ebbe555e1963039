package constants

import "testing"

func TestTerminalStatuses(t *testing.T) {
	if IsTerminal(StatusPending) {
		t.Fatalf("pending must not be terminal")
	}
	if !IsTerminal(StatusRejected) {
		t.Fatalf("rejected must be terminal")
	}
	if !IsTerminal(StatusErrorProcessing) {
		t.Fatalf("error_processing must be terminal")
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{StatusPending, StatusPending, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusErrorProcessing, true},
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusErrorProcessing, false},
		{StatusErrorProcessing, StatusPending, false},
		{StatusErrorProcessing, StatusRejected, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestSweepProtected(t *testing.T) {
	if !SweepProtected(StatusRejected) {
		t.Fatalf("rejected must be protected from the failure sweep")
	}
	if !SweepProtected(StatusPending) {
		t.Fatalf("pending must be protected from the failure sweep")
	}
	if SweepProtected(StatusErrorProcessing) {
		t.Fatalf("error_processing is not protected")
	}
}

func TestMapExtToFormat(t *testing.T) {
	cases := map[string]string{
		".pdf": PDF, "pdf": PDF, "PDF": PDF,
		"docx": DOCX, ".doc": DOCX,
		"txt": "", "png": "", "": "",
	}
	for ext, want := range cases {
		if got := MapExtToFormat(ext); got != want {
			t.Errorf("MapExtToFormat(%q) = %q, want %q", ext, got, want)
		}
	}
}
