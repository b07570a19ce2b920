// Package rules implements the ordered text-rewrite rules tsfix applies to
// TypeScript source files.
//
// Every rule is an independent, stateless transform from full file content to
// full file content. There is no parser and no scope analysis: rules match
// raw text, and each is written to be a no-op when its pattern does not
// apply. Correctness of the rewritten source is deferred to the project's
// own build.
//
// # Pipeline order
//
//  1. definite-assignment — add "!" to uninitialized class properties (TS2564)
//  2. error-typing        — type catch bindings as unknown, assert Error on
//     .stack/.message access (TS18046)
//  3. possibly-undefined  — coalesce .affected to 0 in comparisons (TS18048)
//  4. nullable-assignment — append "!" to awaited findOne calls (TS2322)
//  5. unused-imports      — prune import names with no textual use (TS6133)
//  6. unused-vars         — prefix unused catch bindings with "_" (TS6133,
//     disabled by default)
//
// # Known imprecisions
//
// These are heuristics over raw text and are documented as such:
//
//   - definite-assignment treats any line with two or more leading
//     whitespace characters as a field declaration, which can misfire on
//     nested block statements.
//   - error-typing guards its .stack/.message rewrite on the substring
//     "catch" appearing anywhere in the file, not in the enclosing scope.
//   - unused-imports decides usage by whole-word text search, so a name
//     mentioned only in a comment or string literal counts as used.
//   - possibly-undefined and nullable-assignment carry no marker check and
//     can double-apply when run on already-patched content.
package rules
