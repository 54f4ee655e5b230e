// Package row stores the lines of a buffer. Each row keeps its raw bytes and
// a render form with tabs expanded, rebuilt whenever the raw bytes change,
// and maps between raw and render columns.
package row
