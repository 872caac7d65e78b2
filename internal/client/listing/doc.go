// Package listing drives paginated list screens.
//
// The backend list endpoints return one page of rows and no total count, so
// a Controller infers "has next page" from whether the page came back full.
// That heuristic over-reports exactly at the boundary: when the remaining
// row count equals the limit, the next page turns out empty.
//
// Search edits are debounced, every query change restarts at page 1, and
// a generation counter drops responses that arrive after the query moved
// on. Loaded pages are cached by page number until the query or the
// operator asks for a refresh.
package listing
