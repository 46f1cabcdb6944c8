// Package writers turns classified contigs into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV rows, JSON/JSONL).
//   • contigs stays domain-only; app stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
