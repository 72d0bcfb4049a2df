package matchstats

// Document is the stored statistics document of one match.
type Document struct {
	MatchID    string
	MatchInfo  map[string]any
	MatchStats []StatBlock
}

// StatBlock groups the statistics of one side of a match.
type StatBlock struct {
	StatsFor Side
	Matches  []StatEntry
}

// StatEntry is one named statistic. Value is kept as decoded from the store.
type StatEntry struct {
	Kind  StatKind
	Value any
}

// Block returns the block for side, if the document has one.
func (d Document) Block(side Side) (StatBlock, bool) {
	for _, b := range d.MatchStats {
		if b.StatsFor == side {
			return b, true
		}
	}
	return StatBlock{}, false
}

// Entry returns the entry of kind inside the block.
func (b StatBlock) Entry(kind StatKind) (StatEntry, bool) {
	for _, e := range b.Matches {
		if e.Kind == kind {
			return e, true
		}
	}
	return StatEntry{}, false
}

func (b StatBlock) clone() StatBlock {
	out := StatBlock{StatsFor: b.StatsFor}
	if b.Matches != nil {
		out.Matches = make([]StatEntry, len(b.Matches))
		copy(out.Matches, b.Matches)
	}
	return out
}
