package file_path

import (
	"runtime"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a/b/../c", "a/c"},
		{"/x//y/", "/x/y"},
		{".", "."},
	}
	for _, tc := range tests {
		if got := Clean(tc.in); got != tc.want {
			t.Errorf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestURIRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
	tests := []struct{ path, uri string }{
		{"/home/user/src/main.dpp", "file:///home/user/src/main.dpp"},
		{"/tmp/with space/a.dpp", "file:///tmp/with%20space/a.dpp"},
	}
	for _, tc := range tests {
		if got := ToURI(tc.path); got != tc.uri {
			t.Errorf("ToURI(%q) = %q, want %q", tc.path, got, tc.uri)
		}
		back, err := FromURI(tc.uri)
		if err != nil || back != tc.path {
			t.Errorf("FromURI(%q) = %q, %v", tc.uri, back, err)
		}
	}
}

func TestFromURIRejectsOtherSchemes(t *testing.T) {
	if _, err := FromURI("https://example.com/a.dpp"); err == nil {
		t.Fatal("expected an error for a non-file URI")
	}
}
