// Package menusync copies a menu from a source tenant to target tenants.
//
// A run has four stages:
//
//  1. Extractor reads the menu once and produces a PortableMenu, a snapshot whose items carry
//     source ids only for parent linkage.
//  2. For every target, ResolveConflict decides from the conflict strategy whether an existing
//     menu with the same slug may be touched.
//  3. Applier materializes the items parent first. References are remapped by slug through the
//     Resolver; a reference without a counterpart on the target becomes a custom link.
//  4. Engine records one audit record per attempted target and never stops on a failing target.
//
// Under the merge strategy the applier plans before it writes: incoming items are matched to
// existing items by the key path from the root (reference key or url and label), matched items
// are updated in place, new ones are created and unmatched existing items are kept.
//
// Tenants are reached through explicit tenant.Scope values, so there is no ambient "current
// tenant". The engine still serializes applies with a mutex.
package menusync
