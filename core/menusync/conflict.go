package menusync

import "menu-sync/core/tenant"

// Decision is the verdict of the conflict resolver.
type Decision struct {
	Proceed bool
	// Reason is set when Proceed is false.
	Reason string
}

// ResolveConflict decides whether incoming may be applied given the target's existing menu with
// the same slug (nil when there is none). Unknown strategies abort even without an existing menu.
func ResolveConflict(strategy Strategy, existing *tenant.Tree, incoming *PortableMenu) Decision {
	switch strategy {
	case StrategyOverride, StrategyMerge:
		return Decision{Proceed: true}
	case StrategySkip:
		if existing != nil {
			return Decision{Reason: ReasonMenuExists}
		}
		return Decision{Proceed: true}
	default:
		return Decision{Reason: ReasonInvalidStrategy}
	}
}
