// Package model holds the value types shared by every stage of the
// validator: operation signatures, evaluated argument values, tensor
// shapes, and the insertion-ordered mappings that bind them together.
//
// Everything in this package is plain data. Signatures are built once by
// the event source and referenced read-only for the lifetime of a graph;
// Values and Shapes are owned by whoever constructed them and borrowed
// during rendering.
package model
