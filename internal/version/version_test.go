package version

import "testing"

func TestGet(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "v1.2.3"
	if got := Get(); got != "v1.2.3" {
		t.Errorf("Get() = %q, want v1.2.3", got)
	}

	Version = "dev"
	if got := Get(); got == "" {
		t.Error("Get() returned empty string")
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if info["version"] == "" || info["gitCommit"] == "" {
		t.Errorf("Info() = %v", info)
	}
}
