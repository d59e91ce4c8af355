package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// NormalizeVersion parses a version string and returns its canonical semantic
// version form. Partial versions like "1.2" are coerced to "1.2.0".
func NormalizeVersion(v string) (string, error) {
	parsed, err := semver.NewVersion(strings.TrimSpace(v))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrInvalidVersion.Error()), "version", v)
	}
	return parsed.String(), nil
}

// VersionCompatible reports whether candidate satisfies constraint under
// compatibility matching: same major version and candidate >= constraint
// within that major. Constraint prefixes like "^", "~", "=" and "v" are
// ignored; compatibility is always interpreted the same way.
func VersionCompatible(candidate, constraint string) bool {
	cand, err := semver.NewVersion(strings.TrimSpace(candidate))
	if err != nil {
		return false
	}

	cons, err := semver.NewVersion(trimConstraint(constraint))
	if err != nil {
		return false
	}

	return cand.Major() == cons.Major() && !cand.LessThan(cons)
}

// VersionLess reports whether a is a strictly lower semantic version than b.
// Unparseable versions sort below parseable ones.
func VersionLess(a, b string) bool {
	va, errA := semver.NewVersion(strings.TrimSpace(a))
	vb, errB := semver.NewVersion(strings.TrimSpace(b))

	if errA != nil {
		return errB == nil
	}
	if errB != nil {
		return false
	}

	return va.LessThan(vb)
}

func trimConstraint(constraint string) string {
	return strings.TrimLeft(strings.TrimSpace(constraint), "^~=v")
}
