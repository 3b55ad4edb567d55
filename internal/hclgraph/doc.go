// Package hclgraph reads graph structure descriptions written in HCL and
// drives a parse.Callback with their events. It is the concrete parser
// behind the validator: one graph block per description, op blocks in
// source order, and optionally fragment blocks defining compound
// operations.
//
// The dialect keeps shape inference out of scope by construction: every
// shape that reaches an event was declared in the description, either
// through the shape attribute of a tensor declaration or through an
// explicit shapes block on the operation.
//
// # Scope rules
//
// A tensor name is bound exactly once, by the result of some operation,
// and may be referenced only after its binding. Graph inputs are declared
// in the signature but bound by external operations in the body; graph
// outputs must be bound by the time the description ends.
//
// # Fragments
//
// Compound operations are defined with fragment blocks (rejected in flat
// mode) or preloaded from the embedded layer library. On invocation the
// consumer is asked whether the fragment is atomic: if so, one operation
// event is emitted; otherwise the body expands in place, attribute
// parameters enter the body's evaluation context, and tensors local to
// the body receive generated names. Failures inside an expansion carry
// the chain of invocation sites that led there.
package hclgraph
