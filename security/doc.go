// Package security provides input validation for axtrust.
//
// It validates filesystem paths before they reach file operations
// (preventing directory traversal and symlink escapes) and validates
// bundle identifiers before they are handed to the foreign application
// registry. All user-provided input crossing either boundary should pass
// through these checks first.
package security
