package scoring

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ecoproject/funding-matcher/internal/types"
)

// RankPrograms scores every program against the intake and returns them sorted by
// score descending, program name ascending. The sort is stable: programs with
// identical score and name retain their input order, so repeated runs over the same
// catalog produce identical output.
//
// Programs are scored concurrently; each goroutine reads its own record and writes
// to its own result slot, and ordering is imposed only after all scores are in.
func RankPrograms(programs []types.FundingProgram, intake *types.ProjectIntake) *types.RankedMatches {
	ranked := make([]types.RankedProgram, len(programs))

	var g errgroup.Group
	for i := range programs {
		g.Go(func() error {
			program := &programs[i]
			score, breakdown := ScoreProgram(program, intake)
			ranked[i] = types.RankedProgram{
				ProgramID:   program.ID,
				ProgramName: program.Name(),
				Score:       score,
				Breakdown:   breakdown,
			}
			return nil
		})
	}
	// Scoring is total: no goroutine returns an error.
	_ = g.Wait()

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ProgramName < ranked[j].ProgramName
	})

	return &types.RankedMatches{Ranked: ranked}
}
