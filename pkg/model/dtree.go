package model

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/stats"
)

// ---------------------------
// Types & options
// ---------------------------

// Criterion selects the impurity measure used to score splits.
type Criterion string

const (
	Gini    Criterion = "gini"
	Entropy Criterion = "entropy"
)

// ParseCriterion accepts "gini" or "entropy".
func ParseCriterion(s string) (Criterion, error) {
	switch c := Criterion(s); c {
	case Gini, Entropy:
		return c, nil
	}
	return "", invalidParam("criterion", s)
}

func (c Criterion) impurity(counts []int) float64 {
	if c == Entropy {
		return stats.EntropyFromCounts(counts)
	}
	return stats.GiniFromCounts(counts)
}

// Sample is one training row: a feature vector and its class index.
type Sample struct {
	Features []float64
	Label    int
}

// Node is either a *Leaf or a *Split. Children are owned by exactly one parent.
type Node interface {
	// NodeImpurity is the impurity of the training partition that reached the node.
	NodeImpurity() float64
	// NodeSamples is the size of that partition.
	NodeSamples() int
	isNode()
}

// Leaf predicts Value, the majority class of its partition.
type Leaf struct {
	Value    int
	Impurity float64
	Samples  int
	Counts   []int
}

// Split sends x[Feature] <= Threshold left and everything else right.
type Split struct {
	Feature   int
	Threshold float64
	Impurity  float64
	Gain      float64
	Samples   int
	Counts    []int
	Left      Node
	Right     Node
}

func (l *Leaf) NodeImpurity() float64  { return l.Impurity }
func (l *Leaf) NodeSamples() int       { return l.Samples }
func (*Leaf) isNode()                  {}
func (s *Split) NodeImpurity() float64 { return s.Impurity }
func (s *Split) NodeSamples() int      { return s.Samples }
func (*Split) isNode()                 {}

// TreeParams are the induction knobs shared by single trees and forest members.
type TreeParams struct {
	MaxDepth        int
	MinSamplesSplit int
	Criterion       Criterion
	// FeatureSubsetRatio in (0, 1) makes every node consider only
	// max(1, floor(numFeatures·ratio)) randomly chosen features; 0 or 1
	// means every feature.
	FeatureSubsetRatio float64
	NumClasses         int
}

func (p TreeParams) validate() error {
	if p.MaxDepth < 1 {
		return invalidParam("maxDepth", p.MaxDepth)
	}
	if p.MinSamplesSplit < 2 {
		return invalidParam("minSamplesSplit", p.MinSamplesSplit)
	}
	if p.Criterion != Gini && p.Criterion != Entropy {
		return invalidParam("criterion", p.Criterion)
	}
	if p.FeatureSubsetRatio < 0 || p.FeatureSubsetRatio > 1 {
		return invalidParam("featureSubsetRatio", p.FeatureSubsetRatio)
	}
	if p.NumClasses < 1 {
		return invalidParam("numClasses", p.NumClasses)
	}
	return nil
}

// DecisionTreeClassifier is a CART-style classifier on numeric features.
type DecisionTreeClassifier struct {
	MaxDepth           int       // root depth = 0; depth >= MaxDepth makes a leaf
	MinSamplesSplit    int       // partitions smaller than this become leaves
	Criterion          Criterion // Gini (default) or Entropy
	FeatureSubsetRatio float64   // 0 or 1 => consider every feature
	RandomState        int64     // seed for feature subsampling

	root        Node
	numClasses  int
	numFeatures int
}

// Option functional config
type Option func(*DecisionTreeClassifier)

func WithMaxDepth(d int) Option { return func(t *DecisionTreeClassifier) { t.MaxDepth = d } }
func WithMinSamplesSplit(n int) Option {
	return func(t *DecisionTreeClassifier) { t.MinSamplesSplit = n }
}
func WithCriterion(c Criterion) Option { return func(t *DecisionTreeClassifier) { t.Criterion = c } }
func WithFeatureSubsetRatio(r float64) Option {
	return func(t *DecisionTreeClassifier) { t.FeatureSubsetRatio = r }
}
func WithRandomState(seed int64) Option {
	return func(t *DecisionTreeClassifier) { t.RandomState = seed }
}

// NewDecisionTreeClassifier returns a classifier with the essay defaults.
func NewDecisionTreeClassifier(opts ...Option) *DecisionTreeClassifier {
	d := &DecisionTreeClassifier{
		MaxDepth:        3,
		MinSamplesSplit: 2,
		Criterion:       Gini,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// ---------------------------
// Public API: Fit / Predict
// ---------------------------

// Fit grows the tree on X (n x p) and class indices y.
func (t *DecisionTreeClassifier) Fit(X [][]float64, y []int) error {
	samples, nClasses, err := toSamples(X, y)
	if err != nil {
		return err
	}
	params := TreeParams{
		MaxDepth:           t.MaxDepth,
		MinSamplesSplit:    t.MinSamplesSplit,
		Criterion:          t.Criterion,
		FeatureSubsetRatio: t.FeatureSubsetRatio,
		NumClasses:         nClasses,
	}
	if err := params.validate(); err != nil {
		return err
	}
	t.numClasses = nClasses
	t.numFeatures = len(X[0])
	t.root = BuildTree(samples, 0, params, core.NewRand(t.RandomState))
	return nil
}

// Root exposes the fitted tree for rendering; nil before Fit.
func (t *DecisionTreeClassifier) Root() Node { return t.root }

// NumClasses is the number of classes seen by Fit.
func (t *DecisionTreeClassifier) NumClasses() int { return t.numClasses }

// PredictOne classifies a single feature vector.
func (t *DecisionTreeClassifier) PredictOne(x []float64) (int, error) {
	if t.root == nil {
		return 0, ErrNotTrained
	}
	if err := checkRow(x, t.numFeatures); err != nil {
		return 0, err
	}
	return PredictTree(t.root, x), nil
}

// Predict classifies each row of X.
func (t *DecisionTreeClassifier) Predict(X [][]float64) ([]int, error) {
	if t.root == nil {
		return nil, ErrNotTrained
	}
	out := make([]int, len(X))
	for i := range X {
		if err := checkRow(X[i], t.numFeatures); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = PredictTree(t.root, X[i])
	}
	return out, nil
}

func checkRow(x []float64, numFeatures int) error {
	if len(x) != numFeatures {
		return invalidParam("len(x)", len(x))
	}
	return nil
}

// PredictTree descends from node comparing x[feature] <= threshold until a
// leaf. A nil node on the way yields -1. x must hold every feature the tree
// splits on.
func PredictTree(node Node, x []float64) int {
	for {
		switch n := node.(type) {
		case *Leaf:
			return n.Value
		case *Split:
			if x[n.Feature] <= n.Threshold {
				node = n.Left
			} else {
				node = n.Right
			}
		default:
			return -1
		}
	}
}

// Depth is the number of split levels below node.
func Depth(node Node) int {
	s, ok := node.(*Split)
	if !ok {
		return 0
	}
	return 1 + max(Depth(s.Left), Depth(s.Right))
}

// LeafCount counts the leaves under node.
func LeafCount(node Node) int {
	s, ok := node.(*Split)
	if !ok {
		return 1
	}
	return LeafCount(s.Left) + LeafCount(s.Right)
}

// Walk visits node and its descendants depth first, left before right.
func Walk(node Node, fn func(n Node, depth int)) {
	var rec func(Node, int)
	rec = func(n Node, d int) {
		fn(n, d)
		if s, ok := n.(*Split); ok {
			rec(s.Left, d+1)
			rec(s.Right, d+1)
		}
	}
	rec(node, 0)
}

// ---------------------------
// Internal builders & helpers
// ---------------------------

func toSamples(X [][]float64, y []int) ([]Sample, int, error) {
	if len(X) == 0 {
		return nil, 0, ErrEmptyDataset
	}
	if len(y) != len(X) {
		return nil, 0, errors.New("dtree: X and y length mismatch")
	}
	p := len(X[0])
	if p == 0 {
		return nil, 0, errors.New("dtree: no features")
	}
	nClasses := 0
	samples := make([]Sample, len(X))
	for i := range X {
		if len(X[i]) != p {
			return nil, 0, errors.New("dtree: inconsistent number of features in X rows")
		}
		if y[i] < 0 {
			return nil, 0, fmt.Errorf("dtree: negative class index %d", y[i])
		}
		nClasses = max(nClasses, y[i]+1)
		samples[i] = Sample{Features: X[i], Label: y[i]}
	}
	return samples, nClasses, nil
}

// splitResult is the best threshold found during the search.
type splitResult struct {
	gain      float64
	feature   int
	threshold float64
}

// BuildTree grows a (sub)tree on samples starting at depth. rnd is only
// consulted when params.FeatureSubsetRatio selects fewer than all features.
func BuildTree(samples []Sample, depth int, params TreeParams, rnd *rand.Rand) Node {
	counts := classCounts(samples, params.NumClasses)
	impurity := params.Criterion.impurity(counts)
	leaf := func() Node {
		return &Leaf{Value: argmax(counts), Impurity: impurity, Samples: len(samples), Counts: counts}
	}

	if depth >= params.MaxDepth || len(samples) < params.MinSamplesSplit || len(samples) == 0 {
		return leaf()
	}

	feats := candidateFeatures(len(samples[0].Features), params.FeatureSubsetRatio, rnd)
	best := findBestSplit(samples, feats, impurity, params)
	if best.feature < 0 {
		return leaf()
	}

	var left, right []Sample
	for _, s := range samples {
		if s.Features[best.feature] <= best.threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	return &Split{
		Feature:   best.feature,
		Threshold: best.threshold,
		Impurity:  impurity,
		Gain:      best.gain,
		Samples:   len(samples),
		Counts:    counts,
		Left:      BuildTree(left, depth+1, params, rnd),
		Right:     BuildTree(right, depth+1, params, rnd),
	}
}

// candidateFeatures returns the feature indices a node may split on, ascending.
func candidateFeatures(p int, ratio float64, rnd *rand.Rand) []int {
	m := p
	if ratio > 0 && ratio < 1 {
		m = max(1, int(float64(p)*ratio))
	}
	if m >= p || rnd == nil {
		all := make([]int, p)
		for j := range all {
			all[j] = j
		}
		return all
	}
	feats := rnd.Perm(p)[:m]
	sort.Ints(feats)
	return feats
}

// findBestSplit scans midpoints between adjacent distinct values of each
// feature. Only a strictly larger gain replaces the current best, so ties
// keep the lowest feature and then the lowest threshold, and a zero gain
// never beats "no split".
func findBestSplit(samples []Sample, feats []int, parentImpurity float64, params TreeParams) splitResult {
	best := splitResult{feature: -1}
	n := float64(len(samples))

	order := make([]int, len(samples))
	for _, f := range feats {
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return samples[order[a]].Features[f] < samples[order[b]].Features[f]
		})

		leftCounts := make([]int, params.NumClasses)
		rightCounts := classCounts(samples, params.NumClasses)
		for s := 1; s < len(order); s++ {
			moved := samples[order[s-1]]
			leftCounts[moved.Label]++
			rightCounts[moved.Label]--

			lo, hi := moved.Features[f], samples[order[s]].Features[f]
			if lo == hi {
				continue
			}
			nl := float64(s)
			weighted := nl/n*params.Criterion.impurity(leftCounts) + (n-nl)/n*params.Criterion.impurity(rightCounts)
			if gain := parentImpurity - weighted; gain > best.gain {
				best = splitResult{gain: gain, feature: f, threshold: (lo + hi) / 2}
			}
		}
	}
	return best
}

func classCounts(samples []Sample, nClasses int) []int {
	counts := make([]int, nClasses)
	for _, s := range samples {
		counts[s.Label]++
	}
	return counts
}

// argmax returns the first index holding the largest count.
func argmax(counts []int) int {
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return best
}
