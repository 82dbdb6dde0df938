package lookup

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/hkjin/naverbook"
)

// RankByCriteria returns a comparator that prefers records whose title and
// authors fuzzy-match the criteria, breaking ties by search result order. An
// exact ISBN match always wins.
func RankByCriteria(criteria naverbook.SearchCriteria) func(a, b *naverbook.Book) bool {
	return func(a, b *naverbook.Book) bool {
		sa, sb := criteriaScore(criteria, a), criteriaScore(criteria, b)
		if sa != sb {
			return sa > sb
		}
		return a.Relevance < b.Relevance
	}
}

func criteriaScore(criteria naverbook.SearchCriteria, book *naverbook.Book) int {
	var score int
	if criteria.Title != "" && book.Title != "" {
		score += fuzzyScore(criteria.Title, book.Title)
	}
	if len(criteria.Authors) > 0 && len(book.Authors) > 0 {
		score += fuzzyScore(strings.Join(criteria.Authors, " "), strings.Join(book.Authors, " "))
	}
	if isbn := criteria.ISBN(); isbn != "" && isbn == book.ISBN {
		score += 1 << 20
	}
	return score
}

func fuzzyScore(pattern, target string) int {
	matches := fuzzy.Find(pattern, []string{target})
	if len(matches) == 0 {
		return 0
	}
	return matches[0].Score
}
