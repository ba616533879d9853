package domain

import (
	"fmt"
	"strings"
)

// BundleID is assigned by the remote runtime on install and is not stable
// across reinstalls. Use SymbolicName to identify a module.
type BundleID int64

type BundleState int

const (
	BundleStateUninstalled BundleState = 1
	BundleStateInstalled   BundleState = 2
	BundleStateResolved    BundleState = 4
	BundleStateStarting    BundleState = 8
	BundleStateStopping    BundleState = 16
	BundleStateActive      BundleState = 32
)

func (s BundleState) Label() string {
	switch s {
	case BundleStateUninstalled:
		return "uninstalled"
	case BundleStateInstalled:
		return "installed"
	case BundleStateResolved:
		return "resolved"
	case BundleStateStarting:
		return "starting"
	case BundleStateStopping:
		return "stopping"
	case BundleStateActive:
		return "active"
	case 0:
		return "unknown"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type BundleRecord struct {
	ID           BundleID
	SymbolicName string
	Version      string
	Location     string
	State        BundleState
}

// BundleStatusRequest is a state change command sent to the runtime. It is
// never read back.
type BundleStatusRequest struct {
	State   BundleState `json:"state"`
	Options int         `json:"options"`
}

// ActivateRequest moves an installed bundle to ACTIVE.
var ActivateRequest = BundleStatusRequest{State: BundleStateActive, Options: 0}

// Archive is a packaged bundle ready for upload.
type Archive struct {
	Name string
	Data []byte
}

// FindBySymbolicName returns the first record whose symbolic name equals name.
func FindBySymbolicName(records []BundleRecord, name string) (BundleRecord, bool) {
	for _, record := range records {
		if record.SymbolicName == name {
			return record, true
		}
	}

	return BundleRecord{}, false
}

// NormalizeSymbolicName drops OSGi header directives and attributes, so
// "com.acme.core;singleton:=true" becomes "com.acme.core".
func NormalizeSymbolicName(raw string) string {
	name, _, _ := strings.Cut(raw, ";")
	return strings.TrimSpace(name)
}
