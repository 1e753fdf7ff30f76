// Package authorsfile reads a project's AUTHORS file.
//
// The file holds one "Name <email> (url)" entry per line. Lines whose first
// non-whitespace character is '#' are comments. Lines that do not parse, or
// parse without a name, are ignored.
package authorsfile
