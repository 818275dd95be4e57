package smartselect

import "fmt"

// Element ids derived from the instance's id prefix. Two instances sharing a
// prefix collide; the prefix is the only cross-instance disambiguator. Hosts
// use these when populating a Surface with measurements.

// ComponentID is the id of the trigger element.
func ComponentID(prefix string) string {
	return prefix + "-smart-select-component"
}

// InputID is the id of the search input inside the popover.
func InputID(prefix string) string {
	return prefix + "-smart-select-input"
}

// ContainerID is the id of the popover container.
func ContainerID(prefix string) string {
	return prefix + "-smart-select-container"
}

// OptionID is the id of the option row at index within the visible list.
func OptionID(prefix string, index int) string {
	return fmt.Sprintf("%s-option-%d", prefix, index)
}
