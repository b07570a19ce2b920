package commands

// Message constants
const (
	MsgRootShort = "Heuristic TypeScript compile-error patcher"
	MsgRootLong  = `tsfix scans a tree of TypeScript files and applies regex-based textual
rewrites that silence common compiler diagnostics: uninitialized properties
(TS2564), unknown-typed errors (TS18046), possibly-undefined values
(TS18048), nullable assignments (TS2322), and unused imports (TS6133).

There is no parser and no type checker; every rewrite is a heuristic over
raw text. Run your build afterwards to verify the result. See
"tsfix topics rules" for what each rule does and where it can misfire.`

	MsgVersionShort = "Print version information"
)
