package matchstats

// ProjectedView is the statistics payload of a match page.
type ProjectedView struct {
	Mode Mode
	// IsSummary asks the renderer for the aggregate layout. Only FullSummary sets it.
	IsSummary bool
	Blocks    []StatBlock
}

// Empty reports whether the projection carries no stat entries.
func (v ProjectedView) Empty() bool {
	for _, b := range v.Blocks {
		if len(b.Matches) > 0 {
			return false
		}
	}
	return true
}

// Project shapes doc according to sel. It never fails: selectors that match nothing
// produce empty blocks or an empty view. doc is not modified.
func Project(doc Document, sel Selection) ProjectedView {
	view := ProjectedView{Mode: sel.Mode()}

	switch view.Mode {
	case ModeStatOnly:
		kind, _ := sel.StatKind()
		view.Blocks = make([]StatBlock, 0, len(doc.MatchStats))
		for _, b := range doc.MatchStats {
			out := StatBlock{StatsFor: b.StatsFor, Matches: []StatEntry{}}
			if e, ok := b.Entry(kind); ok {
				out.Matches = append(out.Matches, e)
			}
			view.Blocks = append(view.Blocks, out)
		}
	case ModeSideOnly:
		side, _ := sel.Side()
		view.Blocks = []StatBlock{}
		if b, ok := doc.Block(side); ok {
			view.Blocks = append(view.Blocks, b.clone())
		}
	case ModeSideAndStat:
		side, _ := sel.Side()
		kind, _ := sel.StatKind()
		view.Blocks = []StatBlock{}
		if b, ok := doc.Block(side); ok {
			if e, ok := b.Entry(kind); ok {
				view.Blocks = append(view.Blocks, StatBlock{StatsFor: side, Matches: []StatEntry{e}})
			}
		}
	default:
		view.IsSummary = true
		view.Blocks = make([]StatBlock, 0, len(doc.MatchStats))
		for _, b := range doc.MatchStats {
			view.Blocks = append(view.Blocks, b.clone())
		}
	}

	return view
}
