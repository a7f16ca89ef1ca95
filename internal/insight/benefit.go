package insight

import "strings"

const maxBenefitWords = 12

// ExtractPrimaryBenefit pulls the most frequent clause that follows a
// connective ("because", "enables", ...) out of the texts. Without any such
// clause it falls back to the most frequent benefit bucket, then to the
// default benefit. The result is never empty.
func (e *Engine) ExtractPrimaryBenefit(texts []string) string {
	if clause := e.commonClause(texts); clause != "" {
		return clause
	}
	if top := CountKeywordHits(texts, e.tables.BenefitBuckets, e.matcher).NonZero().Top(1); len(top) > 0 {
		return top[0]
	}
	if e.tables.DefaultBenefit != "" {
		return e.tables.DefaultBenefit
	}
	return "improves"
}

func (e *Engine) commonClause(texts []string) string {
	if e.benefitRe == nil {
		return ""
	}
	counts := make(map[string]int)
	var order []string
	for _, text := range texts {
		for _, m := range e.benefitRe.FindAllStringSubmatch(text, -1) {
			clause := normalizeClause(m[1])
			if clause == "" {
				continue
			}
			if counts[clause] == 0 {
				order = append(order, clause)
			}
			counts[clause]++
		}
	}
	best := ""
	for _, clause := range order {
		if best == "" || counts[clause] > counts[best] {
			best = clause
		}
	}
	return best
}

// normalizeClause lower-cases, collapses whitespace, trims trailing
// punctuation and caps the clause length
func normalizeClause(s string) string {
	words := strings.Fields(strings.ToLower(s))
	if len(words) > maxBenefitWords {
		words = words[:maxBenefitWords]
	}
	return strings.TrimRight(strings.Join(words, " "), ",:-\"'")
}
