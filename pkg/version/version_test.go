package version

import (
	"strings"
	"testing"
)

func TestSummary(t *testing.T) {
	origVersion, origCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = origVersion, origCommit })

	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{"dev build", "dev", "none", "dev"},
		{"empty version", "", "", "dev"},
		{"release", "1.2.0", "0123456789abcdef", "1.2.0 (0123456)"},
		{"short commit", "1.2.0", "abc", "1.2.0 (abc)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit = tt.version, tt.commit
			if got := Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetails(t *testing.T) {
	details := Details()
	for _, want := range []string{"demochat version", "commit:", "built:", "go:", "platform: " + Platform()} {
		if !strings.Contains(details, want) {
			t.Errorf("Details() missing %q:\n%s", want, details)
		}
	}
}
