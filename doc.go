// # doccov
//
// `doccov` walks a source tree and reports documentation coverage: the
// fraction of function-like declarations that carry a `///` documentation
// comment within the ten lines above them. It was built to answer one
// question quickly — "how much of this Swift package is documented?" —
// without pulling in a real parser.
//
// Key capabilities:
//
//   - scan a directory tree recursively and report per-file and overall
//     coverage as `<file>: <documented>/<total> (<percent>%)` lines.
//   - detect declarations with a textual heuristic: an optional access
//     modifier (`public`, `private`, `internal`, `fileprivate`), an optional
//     `static`, then `func <name>` or `init(`.
//   - configure the file extension and the lookback window via flags or a
//     `doccov.toml` config file; flags win over the file.
//   - skip unreadable or non-UTF-8 files with a warning by default, or abort
//     on the first fault with `--strict`.
//   - color percentages by coverage band on a terminal; output bytes are
//     unchanged when color is off, so reports stay diffable.
//   - ship a Cobra-powered CLI with `--help`, `--version`, shell completion,
//     and a `gen-docs` helper for publishing the CLI reference itself.
//
// ## Usage
//
//	doccov [flags] [path]
//
// Examples:
//
//   - Scan the current directory for `.swift` files:
//
//     doccov
//
//   - Scan a package's sources with a tighter lookback window:
//
//     doccov --lookback 3 ./Sources
//
//   - Scan another language's tree:
//
//     doccov --ext .ts ./src
//
//   - Fail the run on the first unreadable file (useful in CI):
//
//     doccov --strict ./Sources
//
// ## Supported Flags
//
//   - `-e, --ext EXT`: source file extension to scan (default `.swift`; a
//     missing leading dot is added).
//   - `-l, --lookback N`: number of lines searched above a declaration for
//     `///` (default 10).
//   - `--strict`: abort on the first unreadable file instead of skipping it.
//   - `--config FILE`: read defaults from a TOML file; without the flag a
//     `doccov.toml` in the working directory is used when present.
//   - `--no-color`: disable coverage coloring.
//
// ## Configuration File
//
// A `doccov.toml` may set defaults for repeated runs:
//
//	root = "./Sources"
//	ext = ".swift"
//	lookback = 10
//	strict = false
//
// Precedence is built-in defaults, then the config file, then flags; a
// positional path argument always wins over `root`.
//
// ## Shell Completion
//
// Autocompletion is provided via Cobra's generators:
//
//	doccov completion bash        # bash
//	doccov completion zsh         # zsh
//	doccov completion fish | source
//	doccov completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `doccov` can generate Markdown for each CLI command via `gen-docs`:
//
//	doccov gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
//
// ## Known Limitations
//
// The declaration match is a line heuristic, not a grammar: multi-line
// signatures, nested declarations, and comment conventions other than `///`
// are not recognized. Lookback windows of nearby declarations overlap, so a
// single `///` comment can satisfy several declarations at once. Both
// behaviors are intentional; treat the numbers as an approximation.
package main
