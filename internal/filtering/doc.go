// Package filtering resolves user-supplied selection criteria against the
// source catalog.
//
// Criteria name wanted providers and bot identifiers (or "all") plus
// category exclusion flags. Provider names are validated against the
// catalog and unknown names are a fatal configuration error; bot
// identifiers are taken literally and unknown ones simply select nothing,
// since their validity only matters at fetch time.
//
// Selection decisions are logged with a reason, and the resulting set is
// ordered by source ID so repeated runs produce identical output.
package filtering
