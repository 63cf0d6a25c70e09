package menusync

import (
	"testing"

	"menu-sync/core/tenant"

	"github.com/stretchr/testify/assert"
)

func TestResolveConflict(t *testing.T) {
	existing := &tenant.Tree{ID: 5, Name: "Main", Slug: "main"}
	incoming := &PortableMenu{Name: "Main", Slug: "main"}

	tests := []struct {
		name     string
		strategy Strategy
		existing *tenant.Tree
		proceed  bool
		reason   string
	}{
		{"override with existing", StrategyOverride, existing, true, ""},
		{"override without existing", StrategyOverride, nil, true, ""},
		{"merge with existing", StrategyMerge, existing, true, ""},
		{"skip with existing", StrategySkip, existing, false, ReasonMenuExists},
		{"skip without existing", StrategySkip, nil, true, ""},
		{"unknown with existing", Strategy("replace-all"), existing, false, ReasonInvalidStrategy},
		{"unknown without existing", Strategy(""), nil, false, ReasonInvalidStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ResolveConflict(tt.strategy, tt.existing, incoming)
			assert.Equal(t, tt.proceed, d.Proceed)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestStrategyValid(t *testing.T) {
	for _, s := range Strategies() {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Strategy("OVERRIDE").Valid())
}
