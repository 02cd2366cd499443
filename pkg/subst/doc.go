// Package subst implements the substitution engine: the rule model,
// rule derivation from plugin records and directive entries, conflict
// validation, and the left-to-right multi-pattern literal scan applied
// to file contents.
//
// Matching is pure byte matching, oblivious to Lua syntax. Rules are
// derived and validated once, then shared read-only across the whole
// tree walk.
package subst
