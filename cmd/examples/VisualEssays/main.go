package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"

	nn "github.com/Gowtham0810-hype/ML-VIS/pkg/NeuralNetwork"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/core"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/data"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/loader"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/model"
	"github.com/Gowtham0810-hype/ML-VIS/pkg/render"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --essay      : kmeans, dbscan, tree, forest, linear, logistic, som, perceptron, svm or all
// --out        : Directory the PNG frames are written to. Default = ./frames
// --frames     : Number of frames for the stepped essays (frame counter sampled over 0..100)
// --seed       : Random seed for data and engines (0 = clock)
// --iris       : Optional Iris CSV or JSON file; the embedded copy is used when empty
// --width/--height : Canvas size in pixels
// --holdout    : Share of Iris rows held out to score the forest (0 = score on training rows)
//
// Essay parameters are clamped into the ranges the essay controls allow.
//
// Example:
//   go run ./cmd/examples/VisualEssays --essay som --grid 8 --sigma 2 --frames 20
//
// ---------------------------------------------------------------------
//

type params struct {
	k                         int
	epsilon                   float64
	minPoints                 int
	noisePoints               int
	maxDepth, minSplit        int
	criterion                 string
	trees                     int
	subsample, featureRatio   float64
	holdout                   float64
	learningRate              float64
	iterations                int
	gridSize                  int
	sigma                     float64
	hiddenLayers, outputNodes int
	activation                string
	c, gamma                  float64
	kernel                    string
	noise, threshold          float64
	seed                      int64
	frames                    int
	size                      render.Size
	outDir                    string
	irisPath                  string
}

// clampFlags pins every slider-backed flag into its control range, logging
// values that had to move.
func (p *params) clampFlags() {
	ci := func(name string, v *int, r model.Range) {
		if c := r.ClampInt(*v); c != *v {
			log.Printf("%s=%d outside [%g, %g], using %d", name, *v, r.Min, r.Max, c)
			*v = c
		}
	}
	cf := func(name string, v *float64, r model.Range) {
		if c := r.Clamp(*v); c != *v {
			log.Printf("%s=%g outside [%g, %g], using %g", name, *v, r.Min, r.Max, c)
			*v = c
		}
	}
	ci("k", &p.k, model.ClustersRange)
	cf("eps", &p.epsilon, model.EpsilonRange)
	ci("minpts", &p.minPoints, model.MinPointsRange)
	ci("depth", &p.maxDepth, model.MaxDepthRange)
	ci("min-split", &p.minSplit, model.MinSamplesSplitRange)
	ci("trees", &p.trees, model.NumberOfTreesRange)
	cf("subsample", &p.subsample, model.RatioRange)
	cf("feature-ratio", &p.featureRatio, model.RatioRange)
	cf("holdout", &p.holdout, model.Range{Min: 0, Max: 0.9})
	cf("lr", &p.learningRate, model.LearningRateRange)
	ci("iterations", &p.iterations, model.IterationsRange)
	ci("grid", &p.gridSize, model.GridSizeRange)
	cf("sigma", &p.sigma, model.SigmaRange)
	ci("hidden", &p.hiddenLayers, model.HiddenLayersRange)
	ci("outputs", &p.outputNodes, model.OutputNodesRange)
	cf("c", &p.c, model.CRange)
	cf("gamma", &p.gamma, model.GammaRange)
	cf("noise", &p.noise, model.NoiseRange)
	cf("threshold", &p.threshold, model.DecisionBoundaryRange)
}

// frameCounters spreads n frames over the 0..100 animation counter.
func frameCounters(n int) []int {
	if n <= 1 {
		return []int{100}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i * 100 / (n - 1)
	}
	return out
}

func (p *params) save(pl *plot.Plot, name string) {
	path := filepath.Join(p.outDir, name+".png")
	if err := render.Save(pl, p.size, path); err != nil {
		log.Fatalf("Error saving %s: %v", path, err)
	}
	fmt.Printf("Saved %s\n", path)
}

func loadIris(path string) []data.IrisSample {
	if path == "" {
		return data.Iris()
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Error opening Iris file: %v", err)
	}
	defer f.Close()
	var samples []data.IrisSample
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		samples, err = data.ReadIrisCSV(f)
	} else {
		samples, err = data.LoadIris(f)
	}
	if err != nil {
		log.Fatalf("Error loading Iris data from %s: %v", path, err)
	}
	return samples
}

var (
	irisFeatures = []string{"sepal length", "sepal width"}
	irisClasses  = []string{"setosa", "versicolor", "virginica"}
)

func runKMeans(p *params) {
	lp, err := data.Blobs(core.NewRand(p.seed), p.k, 40, 0.06)
	if err != nil {
		log.Fatal(err)
	}
	km, err := model.NewKMeans(core.Points(lp), p.k, model.WithKMeansRandomState(p.seed))
	if err != nil {
		log.Fatal(err)
	}
	for i, f := range frameCounters(p.frames) {
		if err := km.Advance(model.FrameToIteration(f, p.iterations)); err != nil {
			log.Fatal(err)
		}
		pl, err := render.KMeans(km)
		if err != nil {
			log.Fatal(err)
		}
		p.save(pl, fmt.Sprintf("kmeans_%03d", i))
	}
}

func runDBSCAN(p *params) {
	lp, err := data.DBSCANPoints(core.NewRand(p.seed), p.noisePoints)
	if err != nil {
		log.Fatal(err)
	}
	db, err := model.NewDBSCAN(p.epsilon, p.minPoints)
	if err != nil {
		log.Fatal(err)
	}
	pts := core.Points(lp)
	res := db.Fit(pts)
	fmt.Printf("DBSCAN: %d clusters, %d noise points\n", res.Clusters, res.NoiseCount())
	pl, err := render.DBSCAN(pts, res)
	if err != nil {
		log.Fatal(err)
	}
	p.save(pl, "dbscan")
}

func irisPoints(X [][]float64, y []int) []core.LabeledPoint {
	out := make([]core.LabeledPoint, len(X))
	for i := range X {
		out[i] = core.LabeledPoint{Point2D: core.Point2D{X: X[i][0], Y: X[i][1]}, Label: y[i]}
	}
	return out
}

func runTree(p *params, X [][]float64, y []int) {
	crit, err := model.ParseCriterion(p.criterion)
	if err != nil {
		log.Fatal(err)
	}
	tree := model.NewDecisionTreeClassifier(
		model.WithMaxDepth(p.maxDepth),
		model.WithMinSamplesSplit(p.minSplit),
		model.WithCriterion(crit),
	)
	if err := tree.Fit(X, y); err != nil {
		log.Fatal(err)
	}
	pred, _ := tree.Predict(X)
	fmt.Printf("Decision tree: depth %d, %d leaves, training accuracy %.3f\n",
		model.Depth(tree.Root()), model.LeafCount(tree.Root()), model.Accuracy(y, pred))

	pl, err := render.Tree(tree.Root(), irisFeatures, irisClasses)
	if err != nil {
		log.Fatal(err)
	}
	p.save(pl, "tree")

	pts := irisPoints(X, y)
	g, err := model.ClassifierGrid(core.BoundsOf(core.Points(pts), 0.2), 80, 80, func(pt core.Point2D) (int, error) {
		return tree.PredictOne(pt.Vec())
	})
	if err != nil {
		log.Fatal(err)
	}
	pl, err = render.DecisionRegions("Decision tree regions", g, 3, pts, irisFeatures[0], irisFeatures[1])
	if err != nil {
		log.Fatal(err)
	}
	p.save(pl, "tree_regions")
}

func runForest(p *params, X [][]float64, y []int) {
	crit, err := model.ParseCriterion(p.criterion)
	if err != nil {
		log.Fatal(err)
	}
	rf := model.NewRandomForest(
		model.WithNumberOfTrees(p.trees),
		model.WithSubsampleRatio(p.subsample),
		model.WithForestFeatureRatio(p.featureRatio),
		model.WithForestRandomState(p.seed),
		model.WithTreeOptions(model.WithMaxDepth(p.maxDepth), model.WithMinSamplesSplit(p.minSplit), model.WithCriterion(crit)),
	)
	split := loader.TrainTestSplit(core.NewRand(p.seed), X, y, p.holdout)
	if len(split.XTest) == 0 {
		split.XTest, split.YTest = split.XTrain, split.YTrain
	}
	if err := rf.Fit(split.XTrain, split.YTrain); err != nil {
		log.Fatal(err)
	}
	pred, err := rf.Predict(split.XTest)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Random forest: %d trees, accuracy %.3f on %d rows\n", len(rf.Trees), model.Accuracy(split.YTest, pred), len(split.YTest))

	pts := irisPoints(X, y)
	g, err := model.ClassifierGrid(core.BoundsOf(core.Points(pts), 0.2), 80, 80, func(pt core.Point2D) (int, error) {
		v, err := rf.Vote(pt.Vec())
		return v.Final, err
	})
	if err != nil {
		log.Fatal(err)
	}
	pl, err := render.DecisionRegions("Random forest regions", g, 3, pts, irisFeatures[0], irisFeatures[1])
	if err != nil {
		log.Fatal(err)
	}
	p.save(pl, "forest_regions")

	v, err := rf.Vote(X[0])
	if err != nil {
		log.Fatal(err)
	}
	if pl, err = render.Votes(v, irisClasses); err != nil {
		log.Fatal(err)
	}
	p.save(pl, "forest_votes")
	for i, tree := range rf.Trees[:min(3, len(rf.Trees))] {
		if pl, err = render.Tree(tree, irisFeatures, irisClasses); err != nil {
			log.Fatal(err)
		}
		p.save(pl, fmt.Sprintf("forest_tree_%d", i))
	}
}

func runLinear(p *params) {
	pts, err := data.LinearPoints(core.NewRand(p.seed), 60, p.noise)
	if err != nil {
		log.Fatal(err)
	}
	m, err := model.NewLinearRegression(pts, p.learningRate, p.iterations)
	if err != nil {
		log.Fatal(err)
	}
	for i, f := range frameCounters(p.frames) {
		if err := m.AdvanceToFrame(f); err != nil {
			log.Fatal(err)
		}
		pl, err := render.Linear(m, pts)
		if err != nil {
			log.Fatal(err)
		}
		p.save(pl, fmt.Sprintf("linear_%03d", i))
	}
	fmt.Printf("Linear regression: w=%.4f b=%.4f MSE=%.5f\n", m.W, m.B, m.MSE())
}

func runLogistic(p *params) {
	pts, err := data.LogisticPoints(core.NewRand(p.seed), 60, p.noise)
	if err != nil {
		log.Fatal(err)
	}
	m, err := model.NewLogisticRegression(pts, p.learningRate, p.iterations)
	if err != nil {
		log.Fatal(err)
	}
	if err := m.SetDecisionBoundary(p.threshold); err != nil {
		log.Fatal(err)
	}
	for i, f := range frameCounters(p.frames) {
		if err := m.AdvanceToFrame(f); err != nil {
			log.Fatal(err)
		}
		pl, err := render.Logistic(m, pts)
		if err != nil {
			log.Fatal(err)
		}
		p.save(pl, fmt.Sprintf("logistic_%03d", i))
	}
	fmt.Printf("Logistic regression: w=%.4f b=%.4f error rate=%.3f\n", m.W, m.B, m.ErrorRate())
}

func runSOM(p *params) {
	ring, err := data.Ring(core.NewRand(p.seed), 300, 0.35, 0.1)
	if err != nil {
		log.Fatal(err)
	}
	s, err := model.NewSOM(ring, p.gridSize, p.learningRate, p.sigma, p.iterations, model.WithSOMRandomState(p.seed))
	if err != nil {
		log.Fatal(err)
	}
	for i, f := range frameCounters(p.frames) {
		if err := s.AdvanceToFrame(f); err != nil {
			log.Fatal(err)
		}
		pl, err := render.SOM(s)
		if err != nil {
			log.Fatal(err)
		}
		p.save(pl, fmt.Sprintf("som_%03d", i))
	}
}

func runPerceptron(ctx context.Context, p *params) {
	act, err := nn.ActivationByName(p.activation)
	if err != nil {
		log.Fatal(err)
	}
	cfg := model.DefaultPerceptronConfig()
	cfg.HiddenLayers = p.hiddenLayers
	cfg.OutputNodes = p.outputNodes
	cfg.Activation = act
	cfg.LearningRate = p.learningRate
	cfg.Iterations = p.iterations
	cfg.RandomState = p.seed
	m, err := model.NewPerceptron(cfg)
	if err != nil {
		log.Fatal(err)
	}
	every := max(1, p.iterations/max(1, p.frames))
	frame := 0
	err = m.Train(ctx, func(step int, loss float64) {
		if step%every != 0 && step != p.iterations {
			return
		}
		pl, err := render.Network(m)
		if err != nil {
			log.Fatal(err)
		}
		p.save(pl, fmt.Sprintf("perceptron_%03d", frame))
		frame++
	})
	if err != nil {
		log.Printf("Perceptron training stopped at step %d: %v", m.Steps(), err)
		return
	}
	fmt.Printf("Perceptron: %s, MSE=%.6f after %d steps\n", act.Name(), m.MSE(), m.Steps())
}

func runSVM(p *params) {
	pts, err := data.SVMPoints(core.NewRand(p.seed), data.MaxSVMPoints, p.noise, p.kernel)
	if err != nil {
		log.Fatal(err)
	}
	k, err := model.ParseKernel(p.kernel, p.gamma)
	if err != nil {
		log.Fatal(err)
	}
	m, err := model.NewSVM(p.c, k)
	if err != nil {
		log.Fatal(err)
	}
	if err := m.Fit(pts); err != nil {
		log.Fatal(err)
	}
	sv := 0
	for i := range pts {
		if m.IsSupportVector(i) {
			sv++
		}
	}
	fmt.Printf("SVM (%s): accuracy %.3f, %d highlighted support vectors\n", k.Name(), m.Accuracy(), sv)
	pl, err := render.SVM(m, core.BoundsOf(core.Points(pts), 0.3), 80)
	if err != nil {
		log.Fatal(err)
	}
	p.save(pl, "svm")
}

func main() {
	// ---- CLI Flags ----
	p := &params{}
	essay := flag.String("essay", "all", "Essay to render: kmeans, dbscan, tree, forest, linear, logistic, som, perceptron, svm, all")
	flag.StringVar(&p.outDir, "out", "frames", "Output directory for PNG frames")
	flag.IntVar(&p.frames, "frames", 10, "Frames rendered for stepped essays")
	flag.Int64Var(&p.seed, "seed", 42, "Random seed (0 = clock)")
	flag.StringVar(&p.irisPath, "iris", "", "Iris CSV or JSON file (default: embedded dataset)")
	flag.IntVar(&p.size.Width, "width", render.DefaultSize.Width, "Canvas width in pixels")
	flag.IntVar(&p.size.Height, "height", render.DefaultSize.Height, "Canvas height in pixels")

	flag.IntVar(&p.k, "k", 3, "K-Means cluster count")
	flag.Float64Var(&p.epsilon, "eps", 0.08, "DBSCAN neighbourhood radius")
	flag.IntVar(&p.minPoints, "minpts", 4, "DBSCAN minimum neighbours of a core point")
	flag.IntVar(&p.noisePoints, "noise-points", 30, "DBSCAN uniform noise points")
	flag.IntVar(&p.maxDepth, "depth", 3, "Tree maximum depth")
	flag.IntVar(&p.minSplit, "min-split", 2, "Tree minimum samples to split")
	flag.StringVar(&p.criterion, "criterion", "gini", "Tree criterion: gini or entropy")
	flag.IntVar(&p.trees, "trees", 10, "Forest size")
	flag.Float64Var(&p.subsample, "subsample", 0.8, "Forest per-tree subsample ratio")
	flag.Float64Var(&p.featureRatio, "feature-ratio", 0.5, "Forest per-node feature ratio")
	flag.Float64Var(&p.holdout, "holdout", 0.2, "Forest held-out test share")
	flag.Float64Var(&p.learningRate, "lr", 0.1, "Learning rate")
	flag.IntVar(&p.iterations, "iterations", 100, "Training iterations")
	flag.IntVar(&p.gridSize, "grid", 10, "SOM grid size")
	flag.Float64Var(&p.sigma, "sigma", 3, "SOM neighbourhood radius")
	flag.IntVar(&p.hiddenLayers, "hidden", 1, "Perceptron hidden layers")
	flag.IntVar(&p.outputNodes, "outputs", 1, "Perceptron output nodes")
	flag.StringVar(&p.activation, "activation", "sigmoid", "Perceptron activation: sigmoid, relu, identity")
	flag.Float64Var(&p.c, "c", 1, "SVM C")
	flag.StringVar(&p.kernel, "kernel", "linear", "SVM kernel: linear or rbf")
	flag.Float64Var(&p.gamma, "gamma", 1, "RBF kernel gamma")
	flag.Float64Var(&p.noise, "noise", 0.2, "Data noise for regression and SVM essays")
	flag.Float64Var(&p.threshold, "threshold", 0.5, "Logistic decision boundary")
	flag.Parse()

	p.clampFlags()
	if err := os.MkdirAll(p.outDir, 0o755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	X, y := data.IrisXY(loadIris(p.irisPath))
	run := map[string]func(){
		"kmeans":     func() { runKMeans(p) },
		"dbscan":     func() { runDBSCAN(p) },
		"tree":       func() { runTree(p, X, y) },
		"forest":     func() { runForest(p, X, y) },
		"linear":     func() { runLinear(p) },
		"logistic":   func() { runLogistic(p) },
		"som":        func() { runSOM(p) },
		"perceptron": func() { runPerceptron(ctx, p) },
		"svm":        func() { runSVM(p) },
	}
	order := []string{"kmeans", "dbscan", "tree", "forest", "linear", "logistic", "som", "perceptron", "svm"}

	if *essay != "all" {
		fn, ok := run[*essay]
		if !ok {
			log.Fatalf("Unknown essay %q", *essay)
		}
		fn()
		return
	}
	for _, name := range order {
		fmt.Printf("--- %s ---\n", name)
		run[name]()
	}
}
