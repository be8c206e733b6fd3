package rdisplay

import (
	"runtime"
	"sort"
	"strconv"
	"strings"
)

type serviceFactory = func() (Service, error)

// Index of capture backends keyed by normalized OS name. Each backend
// registers itself from init so that build tags decide what is available.
var registeredServices = make(map[string]serviceFactory, 8)

func register(factory serviceFactory, platforms ...string) {
	for _, p := range platforms {
		registeredServices[normalizePlatform(p)] = factory
	}
}

func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

// NewService returns the capture backend registered for platform. An empty
// platform selects the running OS
func NewService(platform string) (Service, error) {
	name := normalizePlatform(platform)
	if name == "" {
		name = runtime.GOOS
	}
	factory, found := registeredServices[name]
	if !found {
		return nil, &UnsupportedPlatformError{Platform: name}
	}
	return factory()
}

// Supports reports whether a backend is registered for platform
func Supports(platform string) bool {
	_, found := registeredServices[normalizePlatform(platform)]
	return found
}

// Platforms lists the registered platform names in sorted order
func Platforms() []string {
	names := make([]string, 0, len(registeredServices))
	for name := range registeredServices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Arch returns the pointer width of the running binary, 32 or 64
func Arch() int {
	if strconv.IntSize == 64 {
		return 64
	}
	return 32
}
