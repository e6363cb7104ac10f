package core

// ModuleID is a dotted module identifier such as "channel.slack".
// The first segment is the namespace.
type ModuleID string

// Namespace returns the part of the ID before the first dot.
func (id ModuleID) Namespace() string {
	for i := 0; i < len(id); i++ {
		if id[i] == '.' {
			return string(id[:i])
		}
	}
	return ""
}

// Name returns the part of the ID after the first dot.
func (id ModuleID) Name() string {
	for i := 0; i < len(id); i++ {
		if id[i] == '.' {
			return string(id[i+1:])
		}
	}
	return string(id)
}

// ModuleInfo describes a registered module.
type ModuleInfo struct {
	// ID uniquely identifies the module.
	ID ModuleID

	// New returns a fresh, unconfigured instance.
	New func() Module
}

// Module is implemented by every module. Optional lifecycle behavior is
// discovered through the interfaces in lifecycle.go.
type Module interface {
	ModuleInfo() ModuleInfo
}
