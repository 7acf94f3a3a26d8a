// Package sdlc compiles the entity/relation schema-definition language
// into an OpenCRUD-style GraphQL schema: parse SDL source to a raw tree
// (sdl), resolve it to a typed model graph (schema), transpile that graph
// to a GraphQL schema document (transpile), derive a physical table
// schema from it (physical), and optionally write every artifact to disk
// (writer, gqlgenconfig, codegen).
package sdlc
