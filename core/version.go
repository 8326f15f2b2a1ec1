package core

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the release of the service reported by `cicd info` and the
// X-Cicd-Version debug header. It must be strict semver (no leading v).
const Version = "1.0.0"

func ParsedVersion() *semver.Version {
	return semver.MustParse(Version)
}

// DescribeVersion renders raw with its release channel and build metadata,
// e.g. "2.1.0 (prerelease rc.1) build 5114f85".
func DescribeVersion(raw string) (string, error) {
	v, err := semver.StrictNewVersion(raw)
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", raw, err)
	}

	desc := fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
	switch {
	case v.Prerelease() != "":
		desc += " (prerelease " + v.Prerelease() + ")"
	case v.Major() == 0:
		desc += " (unstable)"
	default:
		desc += " (stable)"
	}
	if meta := v.Metadata(); meta != "" {
		desc += " build " + meta
	}
	return desc, nil
}
