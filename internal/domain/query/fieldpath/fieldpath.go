// Package fieldpath resolves dotted keys into direct run fields or container lookups.
package fieldpath

import (
	"strings"

	"github.com/kailas-cloud/runstore/internal/domain"
	"github.com/kailas-cloud/runstore/internal/domain/run"
)

// Path is a resolved field reference.
// Either a direct scalar (container empty) or a container lookup by inner key.
type Path struct {
	name      string
	container run.Container
	key       string
}

// Resolve splits a raw key.
// No dot: direct scalar (the name is checked later against the run fields).
// One dot: <container>.<key> with a known container and a non-empty key.
func Resolve(raw string) (Path, error) {
	if raw == "" {
		return Path{}, domain.InvalidArgumentf("field path is empty")
	}
	switch strings.Count(raw, ".") {
	case 0:
		return Scalar(raw), nil
	case 1:
		prefix, key, _ := strings.Cut(raw, ".")
		c, err := run.ParseContainer(prefix)
		if err != nil {
			return Path{}, domain.InvalidArgumentf("field path %q: %v", raw, err)
		}
		if key == "" {
			return Path{}, domain.InvalidArgumentf("field path %q: key is empty", raw)
		}
		return ContainerKey(c, key), nil
	default:
		return Path{}, domain.InvalidArgumentf("field path %q: nested paths are not supported", raw)
	}
}

// Scalar creates a direct field path.
func Scalar(name string) Path { return Path{name: name} }

// ContainerKey creates a container lookup path.
func ContainerKey(c run.Container, key string) Path { return Path{container: c, key: key} }

// IsContainer reports whether p looks up a container entry.
func (p Path) IsContainer() bool { return p.container != "" }

// Name returns the direct field name ("" for container paths).
func (p Path) Name() string { return p.name }

// Container returns the looked up container ("" for direct paths).
func (p Path) Container() run.Container { return p.container }

// Key returns the inner key of a container path.
func (p Path) Key() string { return p.key }

// String returns the path in its dotted form.
func (p Path) String() string {
	if p.IsContainer() {
		return string(p.container) + "." + p.key
	}
	return p.name
}
