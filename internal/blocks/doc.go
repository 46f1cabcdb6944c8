// Package blocks reduces one contig's alignment hits to the intervals drawn
// for it. It never imports app, writers, cli or config; keep it domain-only.
package blocks
