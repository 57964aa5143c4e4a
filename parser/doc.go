// Package parser loads OpenAPI v3 documents and produces fully dereferenced,
// format-tagged document trees for the resolution engine.
//
// Loading runs once at process start, sequentially, before any address is
// resolved:
//
//	result, err := parser.Load("openapi.yaml")
//	if err != nil {
//	    // fatal for this one document, never for the process
//	}
//	doc := result.Document
//
// Every internal $ref pointer is inlined during the transform step, so
// downstream consumers always operate on a reference-free tree. Documents are
// immutable after loading; concurrent reads require no locking.
package parser
