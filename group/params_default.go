//go:build !egfull

package group

// Test constant set, transcribed verbatim from the published election-record
// constant table's "Test Constants" entry (§6, "test-sized constant set
// selectable via a compile-time flag"). Deliberately tiny so `go test` runs
// fast; not suitable for anything resembling production use. Build with
// `-tags egfull` for the full EG 2.0 shape.
const (
	qHex = "FFF1"
	pHex = "FFFFFFFFFFB43EA5"
	rHex = "01000F00E10CE4"
	gHex = "D6982759F3D5107E"
)
