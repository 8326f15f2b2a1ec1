package core

import (
	"strings"
	"testing"
)

func TestVersionIsStrictSemver(t *testing.T) {
	if _, err := DescribeVersion(Version); err != nil {
		t.Fatalf("Version %q is not strict semver: %v", Version, err)
	}
	if v := ParsedVersion(); v.String() != Version {
		t.Errorf("expected %s, got %s", Version, v.String())
	}
}

func TestDescribeVersion(t *testing.T) {
	tests := map[string]string{
		"1.0.0":              "1.0.0 (stable)",
		"0.4.2":              "0.4.2 (unstable)",
		"2.1.0-rc.1":         "2.1.0 (prerelease rc.1)",
		"2.1.0-rc.1+5114f85": "2.1.0 (prerelease rc.1) build 5114f85",
		"3.0.0+20261019":     "3.0.0 (stable) build 20261019",
	}

	for raw, expected := range tests {
		t.Run(raw, func(t *testing.T) {
			got, err := DescribeVersion(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != expected {
				t.Errorf("got %q, want %q", got, expected)
			}
		})
	}
}

func TestDescribeVersion_RejectsLooseVersions(t *testing.T) {
	for _, raw := range []string{"v1.0.0", "1.0", "latest"} {
		_, err := DescribeVersion(raw)
		if err == nil || !strings.Contains(err.Error(), "invalid version") {
			t.Errorf("%s: expected invalid version error, got %v", raw, err)
		}
	}
}
