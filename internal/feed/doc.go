// Package feed drives the read/render loop: one line is read, decoded into
// a scene and handed to a [Surface], then the loop yields briefly before
// reading the next line.
//
// Lines with the wrong number of fields are skipped. A non-numeric token
// ends the loop with the parse error. End of input ends it cleanly.
package feed
