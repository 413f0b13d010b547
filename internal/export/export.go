// Package export serializes record sets into downloadable documents. Both
// encoders are pure functions of the record set; writing the artifact to
// disk belongs to the caller.
package export

import "fmt"

// FileName builds the canonical export artifact name for a region.
func FileName(region, ext string) string {
	return fmt.Sprintf("Hackathons_2024-25_%s.%s", region, ext)
}
