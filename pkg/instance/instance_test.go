package instance

import "testing"

func TestGetIDPrefersInstanceID(t *testing.T) {
	t.Setenv("INSTANCE_ID", "api-7")
	t.Setenv("DYNO", "web.1")
	if got := GetID("local"); got != "api-7" {
		t.Fatalf("expected api-7 got %q", got)
	}
}

func TestGetIDFallsBackToDyno(t *testing.T) {
	t.Setenv("INSTANCE_ID", "")
	t.Setenv("DYNO", "web.2")
	if got := GetID("local"); got != "web.2" {
		t.Fatalf("expected web.2 got %q", got)
	}
}
