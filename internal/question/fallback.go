package question

// fallbackSet is the hand-authored replacement used when the model response
// cannot be parsed at all: a full set of synthetic questions. Without a
// requested count a single question is generated.
func fallbackSet(target TargetCount) *QuestionSet {
	n := 1
	if target.Set {
		n = target.N
	}

	set := &QuestionSet{Questions: make([]QuestionItem, 0, n)}
	for k := 1; k <= n; k++ {
		set.Questions = append(set.Questions, syntheticItem(k))
	}
	set.TotalCount = n
	return set
}
