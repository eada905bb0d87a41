package run

import "fmt"

// Container names one of the open-ended key/value collections of a run.
type Container string

const (
	// Attributes holds free-form descriptive metadata.
	Attributes Container = "attributes"
	// Metrics holds measured results.
	Metrics Container = "metrics"
	// Hyperparameters holds training inputs.
	Hyperparameters Container = "hyperparameters"
)

// Containers lists every container in storage order.
func Containers() []Container {
	return []Container{Attributes, Metrics, Hyperparameters}
}

// IsValid checks if the container is known.
func (c Container) IsValid() bool {
	return c == Attributes || c == Metrics || c == Hyperparameters
}

// ParseContainer converts a container name.
func ParseContainer(s string) (Container, error) {
	c := Container(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown container %q (expected attributes, metrics or hyperparameters)", s)
	}
	return c, nil
}
