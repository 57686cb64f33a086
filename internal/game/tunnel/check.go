package tunnel

import (
	"fmt"

	"github.com/Faultbox/tunnel-rush/pkg/formats"
)

// ProblemKind classifies a catalog content issue.
type ProblemKind int

const (
	ProblemEmptyPool ProblemKind = iota
	ProblemDifficultyGap
	ProblemDanglingLink
	ProblemBlockedRing
)

func (k ProblemKind) String() string {
	switch k {
	case ProblemEmptyPool:
		return "empty-pool"
	case ProblemDifficultyGap:
		return "difficulty-gap"
	case ProblemDanglingLink:
		return "dangling-link"
	case ProblemBlockedRing:
		return "blocked-ring"
	default:
		return fmt.Sprintf("ProblemKind(%d)", int(k))
	}
}

// Problem is one issue found by Check.
type Problem struct {
	Kind    ProblemKind
	ID      int // Matrix id, or the difficulty level for ProblemDifficultyGap
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Kind, p.Message)
}

// Check reports content that would make the game panic or be unwinnable:
// no pooled matrices, difficulty levels with no matrix below the maximum,
// links to missing ids, and rings with every side blocked.
func (c *Catalog) Check() []Problem {
	var problems []Problem

	levels := c.index.Levels()
	if len(levels) == 0 {
		problems = append(problems, Problem{
			Kind:    ProblemEmptyPool,
			Message: "no matrix has a non-negative difficulty",
		})
	} else {
		for level := 0; level <= c.index.MaxDifficulty(); level++ {
			if len(c.index.buckets[level]) == 0 {
				problems = append(problems, Problem{
					Kind:    ProblemDifficultyGap,
					ID:      level,
					Message: fmt.Sprintf("no matrix at difficulty %d", level),
				})
			}
		}
	}

	for _, id := range c.DanglingLinks() {
		problems = append(problems, Problem{
			Kind:    ProblemDanglingLink,
			ID:      id,
			Message: fmt.Sprintf("matrix %d links to missing matrix %d", id, c.matrices[id].Next),
		})
	}

	for _, id := range c.ids {
		m := c.matrices[id]
		for ring, row := range m.Cells {
			if rowBlocked(row) {
				problems = append(problems, Problem{
					Kind:    ProblemBlockedRing,
					ID:      id,
					Message: fmt.Sprintf("matrix %d ring %d has no open side", id, ring),
				})
			}
		}
	}

	return problems
}

func rowBlocked(row []formats.MatrixCell) bool {
	for _, cell := range row {
		if !cell.IsObstacle() {
			return false
		}
	}
	return len(row) > 0
}
