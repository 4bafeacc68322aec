package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/physix/config"
)

// EvalRow is one line of optimize_log.csv.
type EvalRow struct {
	Eval                 int     `csv:"eval"`
	Fitness              float64 `csv:"fitness"`
	Friction             float64 `csv:"friction"`
	Gravity              float64 `csv:"gravity"`
	Restitution          float64 `csv:"restitution"`
	RestitutionThreshold float64 `csv:"restitution_threshold"`
	Bounces              int     `csv:"bounces"`
	SettleFrame          int     `csv:"settle_frame"`
	Slide                float64 `csv:"slide"`
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxEvals := flag.Int("max-evals", 400, "Maximum number of evaluations")
	maxFrames := flag.Int("max-frames", 600, "Frames to wait for a drop to settle")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	launch := flag.Float64("launch", 1.875, "Initial horizontal speed in px/frame")
	targetBounces := flag.Int("target-bounces", 4, "Desired floor bounces before rest")
	targetSettle := flag.Int("target-settle", 120, "Desired frame of first rest")
	targetSlide := flag.Float64("target-slide", 8, "Desired horizontal slide in pixels")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseCfg := config.Cfg()

	params := NewParamVector()
	targets := Targets{Bounces: *targetBounces, SettleFrame: *targetSettle, Slide: *targetSlide}
	evaluator := NewFitnessEvaluator(params, baseCfg, targets, *launch, *maxFrames)

	dim := params.Dim()
	initX := params.Normalize(params.Clamp(params.ExtractFromConfig(baseCfg)))

	evalCount := 0
	bestFitness := math.Inf(1)
	var bestParams []float64
	var rows []EvalRow
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			clamped := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(clamped)
			drop := evaluator.LastResult()
			evalCount++

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = clamped
			}
			rows = append(rows, EvalRow{
				Eval:                 evalCount,
				Fitness:              fitness,
				Friction:             clamped[0],
				Gravity:              clamped[1],
				Restitution:          clamped[2],
				RestitutionThreshold: clamped[3],
				Bounces:              drop.Bounces,
				SettleFrame:          drop.SettleFrame,
				Slide:                drop.Slide,
			})

			if evalCount%25 == 0 {
				fmt.Printf("Eval %d/%d: bounces=%d settle=%d slide=%.3f (best=%.4f)\n",
					evalCount, *maxEvals, drop.Bounces, drop.SettleFrame, drop.Slide, bestFitness)
			}
			return fitness
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation
	}

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*math.Log(float64(dim)))
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	fmt.Printf("Starting CMA-ES with %d parameters, population=%d, max_evals=%d\n", dim, popSize, *maxEvals)
	fmt.Printf("Targets: bounces=%d settle=%d slide=%.2f\n", targets.Bounces, targets.SettleFrame, targets.Slide)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}
	if bestParams == nil {
		bestParams = params.Clamp(params.DefaultVector())
		if result != nil {
			bestParams = params.Clamp(params.Denormalize(result.X))
		}
	}

	fmt.Printf("\nOptimization complete after %d evaluations in %s\n", evalCount, time.Since(startTime).Round(time.Millisecond))
	fmt.Printf("Best fitness: %.4f\n", bestFitness)
	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.3f\n", spec.Path, bestParams[i])
	}

	if err := writeLog(filepath.Join(*outputDir, "optimize_log.csv"), rows); err != nil {
		log.Printf("failed to write evaluation log: %v", err)
	}

	bestCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to reload config: %v", err)
	}
	params.ApplyToConfig(bestCfg, bestParams)
	best := SimulateDrop(bestCfg, *launch, *maxFrames)
	fmt.Printf("Best drop: bounces=%d settle=%d slide=%.3f\n", best.Bounces, best.SettleFrame, best.Slide)

	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write best config: %v", err)
	} else {
		fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	}
}

func writeLog(path string, rows []EvalRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(&rows, f)
}
