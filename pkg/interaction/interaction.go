// Package interaction defines the raw collaboration events mined from a
// repository and the identity map that assigns each developer a dense
// vertex id before graph construction.
package interaction

import "time"

// Type classifies a pairwise developer interaction. Each type carries a
// fixed weight reflecting how strong a collaboration signal it is.
type Type int

const (
	CommentIssue Type = iota
	CommentPR
	IssueOpened
	PRReview
	PRApproval
	PRMerge
	IssueClose
)

// typeInfo pairs the fixed weight with a human description.
var typeInfo = map[Type]struct {
	weight      float64
	description string
}{
	CommentIssue: {2.0, "comment on issue"},
	CommentPR:    {2.0, "comment on pull request"},
	IssueOpened:  {3.0, "issue opened and discussed"},
	PRReview:     {4.0, "pull request review"},
	PRApproval:   {4.0, "pull request approval"},
	PRMerge:      {5.0, "pull request merge"},
	IssueClose:   {3.0, "issue closed"},
}

// Weight returns the fixed collaboration weight for the type.
func (t Type) Weight() float64 {
	return typeInfo[t].weight
}

// String returns the human description for the type.
func (t Type) String() string {
	if info, ok := typeInfo[t]; ok {
		return info.description
	}
	return "unknown interaction"
}

// Interaction is one directed collaboration event: Source acted toward
// Target (reviewed their PR, closed their issue, commented on their thread).
type Interaction struct {
	Source    string    // acting developer login
	Target    string    // developer acted upon
	Type      Type      // interaction classification
	Timestamp time.Time // when the event happened
	Context   string    // free-text tag (issue/PR reference)
}

// Weight returns the interaction's type weight.
func (i Interaction) Weight() float64 {
	return i.Type.Weight()
}
