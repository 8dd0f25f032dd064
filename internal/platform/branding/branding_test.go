package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName == "" {
		t.Fatal("expected AppName to be non-empty")
	}
	if AppName != "StageProof" {
		t.Fatalf("AppName = %q, want %q", AppName, "StageProof")
	}
}

func TestTaglineIsNonEmpty(t *testing.T) {
	if Tagline == "" {
		t.Fatal("expected Tagline to be non-empty")
	}
}
