package catalog

// MarkerClass starts a new course group.
const MarkerClass = "course-name"

// TrailingPolicy decides what happens to the blocks after the last marker.
type TrailingPolicy int

const (
	// DropTrailing completes a group only when the next marker is seen, so
	// the group after the final marker is discarded. This is how the catalog
	// has always been scraped and stays the default.
	DropTrailing TrailingPolicy = iota
	// FlushTrailing emits the group after the final marker as well.
	FlushTrailing
)

func (p TrailingPolicy) String() string {
	if p == FlushTrailing {
		return "flush"
	}
	return "drop"
}

// Segment partitions the course list children into per-course groups.
// Blocks before the first marker form a group of their own only if they
// are followed by a marker.
func Segment(blocks []Block, policy TrailingPolicy) []Group {
	var groups []Group
	var current Group

	for _, b := range blocks {
		if b.HasClass(MarkerClass) && len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, b)
	}

	if policy == FlushTrailing && len(current) > 0 {
		groups = append(groups, current)
	}

	return groups
}
