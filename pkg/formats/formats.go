// Package formats parses the Wavefront OBJ geometry and MTL material
// files the viewer loads. Parsers work on bytes and know nothing about GL.
package formats
