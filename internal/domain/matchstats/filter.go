package matchstats

// FilterScope tells a store how much of a match document to return.
type FilterScope int

const (
	// ScopeFullDocument returns every stat block.
	ScopeFullDocument FilterScope = iota
	// ScopeSingleBlock returns only the block whose statsFor equals RetrievalFilter.Side.
	ScopeSingleBlock
	// ScopeNoBlocks keeps identity fields and drops every block.
	ScopeNoBlocks
)

func (s FilterScope) String() string {
	switch s {
	case ScopeFullDocument:
		return "full_document"
	case ScopeSingleBlock:
		return "single_block"
	case ScopeNoBlocks:
		return "no_blocks"
	default:
		return "unknown"
	}
}

// RetrievalFilter describes the element-match a store applies to matchStats.
// Identity fields (matchId, matchInfo) are always returned.
type RetrievalFilter struct {
	Scope FilterScope
	Side  Side
}

// BuildFilter turns an optional side selector into a retrieval filter.
func BuildFilter(side *Side) RetrievalFilter {
	if side == nil {
		return RetrievalFilter{Scope: ScopeFullDocument}
	}
	if !side.Valid() {
		return RetrievalFilter{Scope: ScopeNoBlocks}
	}
	return RetrievalFilter{Scope: ScopeSingleBlock, Side: *side}
}

// Apply performs the element-match in process, for stores that cannot do it natively.
// Like $elemMatch it keeps at most the first matching block.
func (f RetrievalFilter) Apply(doc Document) Document {
	out := Document{
		MatchID:   doc.MatchID,
		MatchInfo: doc.MatchInfo,
	}

	switch f.Scope {
	case ScopeFullDocument:
		out.MatchStats = make([]StatBlock, 0, len(doc.MatchStats))
		for _, b := range doc.MatchStats {
			out.MatchStats = append(out.MatchStats, b.clone())
		}
	case ScopeSingleBlock:
		if b, ok := doc.Block(f.Side); ok {
			out.MatchStats = []StatBlock{b.clone()}
		}
	}

	return out
}
