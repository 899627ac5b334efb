package backend

import "strings"

// Identifier is a parsed target-arch-vendor triplet such as bmv2-ss-p4org.
type Identifier struct {
	Target       string
	Architecture string
	Vendor       string
}

// ParseIdentifier splits s into its three dash-separated components. Anything
// else, including empty components, is a *MalformedError.
func ParseIdentifier(s string) (Identifier, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Identifier{}, &MalformedError{Identifier: s}
	}
	for _, p := range parts {
		if p == "" {
			return Identifier{}, &MalformedError{Identifier: s}
		}
	}
	return Identifier{Target: parts[0], Architecture: parts[1], Vendor: parts[2]}, nil
}

func (id Identifier) String() string {
	return id.Target + "-" + id.Architecture + "-" + id.Vendor
}
