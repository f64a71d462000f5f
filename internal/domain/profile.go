package domain

// AggregatedProfile is one user's merged content set for a single run,
// reverse-chronological and capped at the configured maximum. Items are
// addressed 1-based, matching the bracketed indices the prompt hands to
// the model.
type AggregatedProfile struct {
	Username string
	Items    []ContentItem
}

func (p *AggregatedProfile) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Items)
}

func (p *AggregatedProfile) IsEmpty() bool {
	return p.Len() == 0
}

// ItemAt returns the item for a 1-based citation index.
func (p *AggregatedProfile) ItemAt(index int) (*ContentItem, bool) {
	if p == nil || index < 1 || index > len(p.Items) {
		return nil, false
	}
	return &p.Items[index-1], true
}
