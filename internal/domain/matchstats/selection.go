package matchstats

// Mode is one of the four projection modes of a match statistics page.
type Mode string

const (
	ModeFullSummary Mode = "full_summary"
	ModeStatOnly    Mode = "stat_only"
	ModeSideOnly    Mode = "side_only"
	ModeSideAndStat Mode = "side_and_stat"
)

// Selection is the closed set of caller selections. Build one with NewSelection or the
// mode constructors; the zero value is FullSummary.
type Selection struct {
	mode Mode
	side Side
	kind StatKind
}

func FullSummary() Selection {
	return Selection{mode: ModeFullSummary}
}

func StatOnly(kind StatKind) Selection {
	return Selection{mode: ModeStatOnly, kind: kind}
}

func SideOnly(side Side) Selection {
	return Selection{mode: ModeSideOnly, side: side}
}

func SideAndStat(side Side, kind StatKind) Selection {
	return Selection{mode: ModeSideAndStat, side: side, kind: kind}
}

// NewSelection maps presence/absence of the two optional selectors onto a mode.
func NewSelection(side *Side, kind *StatKind) Selection {
	switch {
	case side != nil && kind != nil:
		return SideAndStat(*side, *kind)
	case side != nil:
		return SideOnly(*side)
	case kind != nil:
		return StatOnly(*kind)
	default:
		return FullSummary()
	}
}

func (s Selection) Mode() Mode {
	if s.mode == "" {
		return ModeFullSummary
	}
	return s.mode
}

// Side reports the side selector, if the mode carries one.
func (s Selection) Side() (Side, bool) {
	switch s.Mode() {
	case ModeSideOnly, ModeSideAndStat:
		return s.side, true
	default:
		return "", false
	}
}

// StatKind reports the stat kind selector, if the mode carries one.
func (s Selection) StatKind() (StatKind, bool) {
	switch s.Mode() {
	case ModeStatOnly, ModeSideAndStat:
		return s.kind, true
	default:
		return "", false
	}
}

// Filter is the retrieval filter this selection needs from the store.
func (s Selection) Filter() RetrievalFilter {
	if side, ok := s.Side(); ok {
		return BuildFilter(&side)
	}
	return BuildFilter(nil)
}
