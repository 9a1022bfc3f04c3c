// Package constant provides shared constant values used across the library.
//
// Keep this package free of runtime behavior.
package constant
