package thread

import "github.com/heartmarshall/qa-moderation/internal/domain"

// Arrange projects a question's answers into display order for viewer: each
// base answer in its original position, followed by its reviews whose
// authors viewer trusts, then the rest of its reviews. Relative order inside
// each group is preserved. Reviews whose parent is not among the base
// answers are dropped.
func Arrange(viewer string, answers []domain.Answer, isTrusted func(viewer, reviewer string) bool) []domain.Answer {
	reviews := make(map[domain.ID][]domain.Answer)
	var bases []domain.Answer
	for _, a := range answers {
		if !a.IsReview {
			bases = append(bases, a)
			continue
		}
		if parent, ok := a.ParentAnswerID.Get(); ok {
			reviews[parent] = append(reviews[parent], a)
		}
	}

	out := make([]domain.Answer, 0, len(answers))
	for _, base := range bases {
		out = append(out, base)

		attached := reviews[base.ID]
		var untrusted []domain.Answer
		for _, r := range attached {
			if isTrusted(viewer, r.Author) {
				out = append(out, r)
			} else {
				untrusted = append(untrusted, r)
			}
		}
		out = append(out, untrusted...)
	}
	return out
}
