// Package logic evaluates the conditional rules of a process document:
// element and section visibility, conditional requiredness, value format
// validation and stage skill routing, plus a textual rendering of rule trees.
//
// Every function is a pure function of its arguments. Nothing here logs,
// performs I/O or mutates the process or the form data snapshot, so hosts
// may re-run any resolver on every change.
package logic
