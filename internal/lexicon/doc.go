// Package lexicon turns the static wordlist into the list a user sees.
//
// The pipeline is pure and synchronous: filter and search, collate under the
// active mode, assign URL identifiers, group by initial letter and collect
// the active alphabet. Nothing is cached between calls; ComputeView on the
// same dataset and RenderState always returns the same View.
package lexicon
