// Package bali is your in-memory toolkit for building, comparing, and
// exchanging typed documents — from primitive elements to full parse and
// format pipelines.
//
// 🚀 What is bali?
//
//	A modern library for Bali Document Notation that brings together:
//		• Elements: angles, numbers, probabilities, durations, moments,
//		  names, tags, symbols, text, binaries, versions & references
//		• Structures: associations & first-class exception values
//		• Collections: lists, catalogs, sets, ranges, stacks & trees
//		• A generic comparator inducing one total order over everything
//		• Sorting: stable merge sort, uniform shuffling, range removal
//		• Notation: a round-tripping parser & canonical formatter
//
// ✨ Why choose bali?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – normalized values, exact pole arithmetic
//   - Capability-driven – Scalable, Numerical, Chainable, Sequential,
//     Continuous and Textual interfaces instead of type switches
//   - Round-trip fidelity – Parse(Format(x)) equals x for every component
//
// Under the hood, everything is organized under seven subpackages:
//
//	component/   — core interfaces, parameters, iterators & indexing
//	elements/    — primitive immutable values & the precision protocol
//	structures/  — associations & exceptions
//	collections/ — the aggregate types
//	comparator/  — the generic total-order comparison
//	sorter/      — sorting, shuffling & range removal over collections
//	notation/    — source text in, component trees out, and back again
//
// Quick ASCII example:
//
//	[
//	    $name: "invoice"
//	    $total: 42.5
//	    $paid: false
//	]
//
//	represents a catalog of three named attributes, one per line.
//
// Dive into the package docs for the full grammar, the comparison
// dispatch order, and the precision rules for angles and numbers.
//
//	go get github.com/balidoc/bali
package bali
