package refit

import (
	"sync/atomic"

	"github.com/katalvlaran/bvhrefit/collect"
	"github.com/katalvlaran/bvhrefit/dispatch"
	"github.com/katalvlaran/bvhrefit/geom"
	"github.com/katalvlaran/bvhrefit/tree"
)

// rootCostEpsilon is the root bounds-metric floor below which
// RefitCostChange is reported as 0 instead of dividing by a near-zero area.
const rootCostEpsilon = 1e-9

// Result is the output of Run: the published root cost-change ratio, and
// each worker's private candidate list (to be handed to the selector).
type Result struct {
	// RefitCostChange is parent.LocalCostChange / rootBoundsMetric, 0 if the
	// root bounds metric is at or below rootCostEpsilon.
	RefitCostChange float64

	// CandidateLists holds one slice per worker, index-aligned with the
	// dispatcher's worker indices. Entry 0 always starts with the
	// collector's FirstWorkerCandidates.
	CandidateLists [][]int32
}

// Run dispatches the refit-and-mark phase over refitRoots (as produced by
// collect.Collect) across d's workers, and returns once every worker has
// finished and the fan-in barrier has published the root's cost change.
//
// pool supplies the candidate-list-of-lists backing array; the caller
// returns it (and, separately, each inner per-worker list to that worker's
// dispatch.BufferPool) once the target selector is done reading Result.
func Run(t *tree.Tree, d dispatch.Dispatcher, refitRoots []int32, firstWorkerCandidates []int32, refinementLeafCountThreshold int32, pool *dispatch.MainPool) (Result, error) {
	workerCount := d.ThreadCount()
	candidateLists := pool.GetCandidateListOfLists()
	for i := 0; i < workerCount; i++ {
		candidateLists = append(candidateLists, nil)
	}
	state := &pass{
		tree:                         t,
		refitRoots:                   refitRoots,
		refinementLeafCountThreshold: refinementLeafCountThreshold,
		candidateLists:               candidateLists,
	}

	err := d.Dispatch(func(workerIndex int) error {
		pool := d.MemoryPool(workerIndex)
		local := pool.Get()
		if workerIndex == 0 {
			local = append(local, firstWorkerCandidates...)
		}

		for {
			claimed := atomic.AddInt32(&state.cursor, 1) - 1
			if int(claimed) >= len(state.refitRoots) {
				break
			}
			state.processRefitRoot(claimed, &local)
		}

		state.candidateLists[workerIndex] = local
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return Result{RefitCostChange: state.refitCostChange, CandidateLists: state.candidateLists}, nil
}

// pass carries the shared, cross-worker state for one refit-and-mark
// dispatch: the atomic claim counter, and the single float the last worker
// to reach the root publishes into.
type pass struct {
	tree                         *tree.Tree
	refitRoots                   []int32
	refinementLeafCountThreshold int32
	cursor                       int32
	candidateLists               [][]int32
	refitCostChange              float64
}

// processRefitRoot runs the mark/measure routine on the claimed refit-root
// and climbs toward the root, processing each ancestor it is the last
// arrival at.
func (p *pass) processRefitRoot(claimed int32, local *[]int32) {
	encoded := p.refitRoots[claimed]

	var nodeIndex int32
	var marking bool
	if encoded < 0 {
		nodeIndex = collect.DecodeRefitRoot(encoded)
		marking = false
	} else {
		nodeIndex = encoded
		marking = true
	}

	child := p.childRecordOf(nodeIndex)

	var cost float64
	if marking {
		cost = p.tree.RefitAndMark(child, p.refinementLeafCountThreshold, local)
	} else {
		cost = p.tree.RefitAndMeasure(child)
	}
	p.tree.Metanodes[nodeIndex].LocalCostChange = cost

	p.climb(nodeIndex)
}

// childRecordOf returns a pointer to the ChildRecord inside nodeIndex's
// parent that describes nodeIndex itself.
func (p *pass) childRecordOf(nodeIndex int32) *tree.ChildRecord {
	mn := &p.tree.Metanodes[nodeIndex]
	parentNode := &p.tree.Nodes[mn.Parent]
	if mn.IndexInParent == 0 {
		return &parentNode.A
	}
	return &parentNode.B
}

// climb walks up from current's parent, decrementing each ancestor's
// RefineFlag. It stops as soon as it is not the last arrival at some
// ancestor, or after finishing the root.
func (p *pass) climb(current int32) {
	for {
		parent := p.tree.Metanodes[current].Parent

		remaining := atomic.AddInt32(&p.tree.Metanodes[parent].RefineFlag, -1)
		if remaining != 0 {
			return // another worker still owes this node an arrival
		}

		parentNode := &p.tree.Nodes[parent]
		accumulated := 0.0
		for _, child := range []*tree.ChildRecord{&parentNode.A, &parentNode.B} {
			if !child.IsLeaf() {
				accumulated += p.tree.Metanodes[child.Index].LocalCostChange
				p.tree.Metanodes[child.Index].RefineFlag = 0
			}
		}

		grandparent := p.tree.Metanodes[parent].Parent
		if grandparent == -1 {
			rootBox := geom.Union(parentNode.A.AABB(), parentNode.B.AABB())
			m := rootBox.BoundsMetric()
			if m > rootCostEpsilon {
				p.refitCostChange = accumulated / m
			} else {
				p.refitCostChange = 0
			}
			p.tree.Metanodes[parent].RefineFlag = 0
			return
		}

		parentChild := p.childRecordOf(parent)
		pre := parentChild.BoundsMetric()
		parentChild.SetAABB(geom.Union(parentNode.A.AABB(), parentNode.B.AABB()))
		post := parentChild.BoundsMetric()
		p.tree.Metanodes[parent].LocalCostChange = accumulated + (post - pre)

		current = parent
	}
}
