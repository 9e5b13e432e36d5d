// Package gpa is the grade-point arithmetic engine.
//
// Every function here is a pure transformation of its inputs: no I/O, no
// logging, no shared state. Incomplete or unparsable rows degrade to a
// neutral zero instead of failing, because a half-filled course table is
// the normal state of a form being edited. The only signals a caller has
// to interpret are carried in-band by SolveRequiredGPA (see its docs).
package gpa
