package model

import (
	"gonum.org/v1/gonum/floats"

	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/loader"
)

// RandomForest for classification
type RandomForest struct {
	// Hyperparameters / options
	NumberOfTrees      int
	MaxDepth           int
	MinSamplesSplit    int
	Criterion          Criterion
	SubsampleRatio     float64 // each tree sees floor(n·ratio) rows drawn without replacement
	FeatureSubsetRatio float64 // per-node subset of max(1, floor(p·ratio)) features, ratio in (0, 1]
	RandomState        int64

	// Internal state
	Trees       []Node
	numClasses  int
	numFeatures int
}

// RandomForestOption functional config for RandomForest
type RandomForestOption func(*RandomForest)

func WithNumberOfTrees(n int) RandomForestOption {
	return func(rf *RandomForest) { rf.NumberOfTrees = n }
}
func WithSubsampleRatio(r float64) RandomForestOption {
	return func(rf *RandomForest) { rf.SubsampleRatio = r }
}
func WithForestFeatureRatio(r float64) RandomForestOption {
	return func(rf *RandomForest) { rf.FeatureSubsetRatio = r }
}
func WithForestRandomState(seed int64) RandomForestOption {
	return func(rf *RandomForest) { rf.RandomState = seed }
}

// WithTreeOptions copies MaxDepth, MinSamplesSplit and Criterion from the
// single-tree options so both essays share one control panel.
func WithTreeOptions(opts ...Option) RandomForestOption {
	return func(rf *RandomForest) {
		t := NewDecisionTreeClassifier(opts...)
		rf.MaxDepth = t.MaxDepth
		rf.MinSamplesSplit = t.MinSamplesSplit
		rf.Criterion = t.Criterion
	}
}

// VoteResult is the forest decision for one sample.
type VoteResult struct {
	Final  int
	Votes  []int // per-tree predictions in tree order
	Counts []int // votes per class
}

// NewRandomForest initializes the forest with the essay defaults.
func NewRandomForest(opts ...RandomForestOption) *RandomForest {
	rf := &RandomForest{
		NumberOfTrees:      10,
		MaxDepth:           3,
		MinSamplesSplit:    2,
		Criterion:          Gini,
		SubsampleRatio:     0.8,
		FeatureSubsetRatio: 0.5,
	}
	for _, o := range opts {
		o(rf)
	}
	if rf.RandomState == 0 {
		rf.RandomState = core.NewRand(0).Int63()
	}
	return rf
}

// Fit grows NumberOfTrees independent trees. Tree i draws its subsample and
// its per-node feature subsets from its own generator seeded RandomState+i.
func (rf *RandomForest) Fit(X [][]float64, y []int) error {
	samples, nClasses, err := toSamples(X, y)
	if err != nil {
		return err
	}
	if rf.NumberOfTrees < 1 {
		return invalidParam("numberOfTrees", rf.NumberOfTrees)
	}
	if !(rf.SubsampleRatio > 0 && rf.SubsampleRatio <= 1) {
		return invalidParam("subsampleRatio", rf.SubsampleRatio)
	}
	if !(rf.FeatureSubsetRatio > 0 && rf.FeatureSubsetRatio <= 1) {
		return invalidParam("featureSubsetRatio", rf.FeatureSubsetRatio)
	}
	params := TreeParams{
		MaxDepth:           rf.MaxDepth,
		MinSamplesSplit:    rf.MinSamplesSplit,
		Criterion:          rf.Criterion,
		FeatureSubsetRatio: rf.FeatureSubsetRatio,
		NumClasses:         nClasses,
	}
	if err := params.validate(); err != nil {
		return err
	}

	rf.numClasses = nClasses
	rf.numFeatures = len(X[0])
	rf.Trees = make([]Node, rf.NumberOfTrees)
	for i := range rf.Trees {
		treeRand := core.NewRand(rf.RandomState + int64(i) + 1)
		idx := loader.Subsample(treeRand, len(samples), rf.SubsampleRatio)
		subset := make([]Sample, len(idx))
		for j, k := range idx {
			subset[j] = samples[k]
		}
		rf.Trees[i] = BuildTree(subset, 0, params, treeRand)
	}
	return nil
}

// NumClasses is the number of classes seen by Fit.
func (rf *RandomForest) NumClasses() int { return rf.numClasses }

// Vote collects every tree's prediction for x and the majority decision.
func (rf *RandomForest) Vote(x []float64) (VoteResult, error) {
	if len(rf.Trees) == 0 {
		return VoteResult{}, ErrNotTrained
	}
	if err := checkRow(x, rf.numFeatures); err != nil {
		return VoteResult{}, err
	}
	preds := make([]int, len(rf.Trees))
	for i, t := range rf.Trees {
		preds[i] = PredictTree(t, x)
	}
	return MajorityVote(preds, rf.numClasses), nil
}

// Predict returns the majority vote of all trees.
func (rf *RandomForest) Predict(X [][]float64) ([]int, error) {
	out := make([]int, len(X))
	for i := range X {
		v, err := rf.Vote(X[i])
		if err != nil {
			return nil, err
		}
		out[i] = v.Final
	}
	return out, nil
}

// MajorityVote tallies predictions; ties go to the lowest class index.
// numClasses may be 0, in which case it is inferred from the predictions.
func MajorityVote(predictions []int, numClasses int) VoteResult {
	for _, p := range predictions {
		numClasses = max(numClasses, p+1)
	}
	res := VoteResult{
		Votes:  append([]int(nil), predictions...),
		Counts: make([]int, numClasses),
	}
	if numClasses == 0 {
		return res
	}
	tally := make([]float64, numClasses)
	for _, p := range predictions {
		res.Counts[p]++
		tally[p]++
	}
	res.Final = floats.MaxIdx(tally)
	return res
}
