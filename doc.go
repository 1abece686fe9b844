// Package lvtree is an in-memory toolkit for labeled trees and their Prüfer
// sequences.
//
// 🚀 What is lvtree?
//
//	A small, thread-safe library built around one bijection:
//		• Trees: an arena of labeled nodes with validated, undirected edges
//		• Matrix views: a dense symmetric adjacency matrix per tree
//		• Codec: Prüfer encode/decode with a linear-scan or min-heap search
//		• Builders: path, star, binary, caterpillar and uniform random trees
//		• Rendering: Graphviz DOT text and in-process SVG
//
// ✨ Why lvtree?
//
//   - A tree on n nodes packs into n-2 integers and back, losslessly
//   - Deterministic: the smallest eligible label always wins a tie
//   - Every input is validated; failures are sentinel errors, never panics
//
// Everything is organized under these subpackages:
//
//	matrix/        - symmetric 0/1 adjacency storage and validators
//	tree/          - Tree, Node, Edge; arena storage with a cached matrix
//	prufer/        - Encode, Decode, Sequence, Count (Cayley's n^(n-2))
//	builder/       - fixture and random tree constructors
//	render/        - DOT export and SVG rendering
//	cmd/prufer/    - command-line front end
//
// Quick ASCII example:
//
//	6 ─ 1 ─ 4 ─ 2 ─ 5 ─ 3
//
//	is the tree behind the code [5 2 4 1].
//
//	go install github.com/katalvlaran/lvtree/cmd/prufer@latest
package lvtree
