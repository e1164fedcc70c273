package ensemble

import "slices"

// node is a regression tree node. Leaves hold the Newton-Raphson leaf value;
// internal nodes hold the split and its variance-reduction gain.
type node struct {
	FeatureIndex int
	Threshold    float64
	Gain         float64
	Value        float64
	Left         *node
	Right        *node
}

func (n *node) isLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// predict routes a sample down the tree. Samples with feature value below the
// threshold go left, all others go right.
func (n *node) predict(x []float64) float64 {
	if n.isLeaf() {
		return n.Value
	}
	if x[n.FeatureIndex] < n.Threshold {
		return n.Left.predict(x)
	}
	return n.Right.predict(x)
}

// collectGains accumulates each internal node's gain into res by feature.
func (n *node) collectGains(res []float64) {
	if n == nil || n.isLeaf() {
		return
	}
	res[n.FeatureIndex] += n.Gain
	n.Left.collectGains(res)
	n.Right.collectGains(res)
}

// split describes the best partition found for a set of sample indices.
type split struct {
	FeatureIndex int
	Threshold    float64
	Gain         float64
	LeftIndices  []int
	RightIndices []int
}

// buildTree grows a regression tree on the pseudo-residuals grads. It splits
// greedily on variance reduction and stops at maxDepth, at minSamplesLeaf, or
// when no split improves on the parent. Leaf values are sum(grad)/sum(hess).
func buildTree(X [][]float64, grads, hessians []float64, indices []int, depth, maxDepth, minSamplesLeaf int) *node {
	if depth >= maxDepth {
		return buildLeafNode(extractRows(grads, indices), extractRows(hessians, indices))
	}

	best := findBestSplit(X, grads, indices, minSamplesLeaf)
	if best == nil {
		return buildLeafNode(extractRows(grads, indices), extractRows(hessians, indices))
	}

	return &node{
		FeatureIndex: best.FeatureIndex,
		Threshold:    best.Threshold,
		Gain:         best.Gain,
		Left:         buildTree(X, grads, hessians, best.LeftIndices, depth+1, maxDepth, minSamplesLeaf),
		Right:        buildTree(X, grads, hessians, best.RightIndices, depth+1, maxDepth, minSamplesLeaf),
	}
}

// buildLeafNode computes the Newton-Raphson optimal leaf value
// sum(gradients)/sum(hessians). With uniform unit hessians this reduces to
// the mean of the gradients.
func buildLeafNode(grads, hessians []float64) *node {
	var gradSum, hessSum float64
	for i := range grads {
		gradSum += grads[i]
		hessSum += hessians[i]
	}
	value := 0.0
	if hessSum != 0 {
		value = gradSum / hessSum
	}
	return &node{Value: value}
}

// findBestSplit scans every feature and every distinct value as a candidate
// threshold, returning the split with the largest variance reduction.
// Features are scanned in index order and thresholds in ascending order, so
// ties resolve deterministically. Returns nil when no split has positive gain
// or none satisfies minSamplesLeaf on both sides.
func findBestSplit(X [][]float64, y []float64, indices []int, minSamplesLeaf int) *split {
	if len(indices) < 2*minSamplesLeaf {
		return nil
	}

	parentSSE := sumSquaredError(y, indices)

	var best *split
	numFeatures := len(X[indices[0]])

	for f := 0; f < numFeatures; f++ {
		values := make([]float64, len(indices))
		for i, idx := range indices {
			values[i] = X[idx][f]
		}
		thresholds := uniq(sortValues(values))

		for _, threshold := range thresholds {
			left, right := partition(X, indices, f, threshold)
			if len(left) < minSamplesLeaf || len(right) < minSamplesLeaf {
				continue
			}

			gain := parentSSE - sumSquaredError(y, left) - sumSquaredError(y, right)
			if gain <= 0 {
				continue
			}
			if best == nil || gain > best.Gain {
				best = &split{
					FeatureIndex: f,
					Threshold:    threshold,
					Gain:         gain,
					LeftIndices:  left,
					RightIndices: right,
				}
			}
		}
	}

	return best
}

// partition separates indices by comparing feature featureIndex against
// threshold: strictly smaller values go left, the rest go right. Input order
// is preserved on both sides.
func partition(X [][]float64, indices []int, featureIndex int, threshold float64) (left, right []int) {
	left = make([]int, 0, len(indices))
	right = make([]int, 0, len(indices))
	for _, idx := range indices {
		if X[idx][featureIndex] < threshold {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}
	return left, right
}

// sumSquaredError returns the sum of squared deviations from the mean of y
// over the given indices.
func sumSquaredError(y []float64, indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	var m float64
	for _, idx := range indices {
		m += y[idx]
	}
	m /= float64(len(indices))

	var sse float64
	for _, idx := range indices {
		d := y[idx] - m
		sse += d * d
	}
	return sse
}

// sortValues sorts v in place and returns it.
func sortValues(v []float64) []float64 {
	slices.Sort(v)
	return v
}

// uniq removes adjacent duplicates from a sorted slice.
func uniq(sorted []float64) []float64 {
	return slices.Compact(sorted)
}

// extractRows gathers data at the given indices.
func extractRows(data []float64, indices []int) []float64 {
	res := make([]float64, len(indices))
	for i, idx := range indices {
		res[i] = data[idx]
	}
	return res
}
