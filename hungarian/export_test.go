package hungarian

import "github.com/katalvlaran/pointmatch/geometry"

// FlipForTest builds a matching store and a tree from the given arrays,
// applies the augmenting-path flip rooted at start and returns the mates.
// start is a source when fromSource is true, a target otherwise.
func FlipForTest(
	sourceMate []geometry.TargetID,
	targetMate []geometry.SourceID,
	sourceParent []geometry.TargetID,
	targetParent []geometry.SourceID,
	fromSource bool,
	start int,
) ([]geometry.TargetID, []geometry.SourceID, error) {
	m := newStore(len(sourceMate), len(targetMate))
	copy(m.sourceMate, sourceMate)
	copy(m.targetMate, targetMate)
	tr := newTree(len(sourceParent), len(targetParent))
	copy(tr.sourceParent, sourceParent)
	copy(tr.targetParent, targetParent)

	var (
		path []edge
		err  error
	)
	if fromSource {
		path, err = tr.pathFromSource(geometry.SourceID(start))
	} else {
		path, err = tr.pathFromTarget(geometry.TargetID(start))
	}
	if err != nil {
		return nil, nil, err
	}
	m.flip(path)

	return m.sourceMate, m.targetMate, nil
}
