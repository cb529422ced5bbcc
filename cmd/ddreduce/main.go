// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"ddreduce/internal/ddreduce/atom"
	"ddreduce/internal/ddreduce/builder"
	"ddreduce/internal/ddreduce/cache"
	"ddreduce/internal/ddreduce/config"
	"ddreduce/internal/ddreduce/ddconfig"
	"ddreduce/internal/ddreduce/dderrors"
	"ddreduce/internal/ddreduce/dd"
	"ddreduce/internal/ddreduce/events"
	"ddreduce/internal/ddreduce/exectester"
	"ddreduce/internal/ddreduce/iterator"
	"ddreduce/internal/ddreduce/paralleldd"
	"ddreduce/internal/ddreduce/report"
	"ddreduce/internal/ddreduce/rpctester"
	"ddreduce/internal/ddreduce/runid"
	"ddreduce/internal/ddreduce/splitter"
	"ddreduce/internal/ddreduce/stats"
	"ddreduce/internal/ddreduce/stop"
	"ddreduce/internal/ddreduce/tester"
)

func main() {
	var (
		inputPath   = flag.String("input", "", "path to the failing input file (required)")
		outputPath  = flag.String("output", "", "path to write the minimized result (required)")
		script      = flag.String("test", "", "interestingness test script, exit 0 means FAIL (required unless -agent)")
		agentURL    = flag.String("agent", "", "ws:// URL of a ddreduce-agent to test against, instead of -test")
		configPath  = flag.String("config", "", "YAML reducer configuration file")
		strategy    = flag.String("strategy", "", "compact cache strategy spec, e.g. \"content-hash cache_fail=false\"")
		parallel    = flag.Bool("parallel", false, "use ParallelDD instead of sequential DD")
		statsPath   = flag.String("stats", "", "path to write a JSON statistics document")
		deadlineStr = flag.String("deadline", "", "wall-clock budget, e.g. \"30s\" (Go duration syntax)")
		maxTests    = flag.Int("max-tests", 0, "maximum number of tests to dispatch, 0 for unbounded")
		verbosity   = flag.Int("v", 0, "log verbosity")
	)
	flag.Parse()

	if *inputPath == "" || *outputPath == "" || (*script == "" && *agentURL == "") {
		fmt.Println("Usage: ddreduce -input FILE -output FILE (-test SCRIPT | -agent URL) [-config FILE] [-strategy SPEC] [-parallel] [-stats FILE]")
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath, *strategy)
	if err != nil {
		report.Failed(dderrors.NewConfigurationError("config", err))
		os.Exit(2)
	}
	if *deadlineStr != "" {
		d, parseErr := time.ParseDuration(*deadlineStr)
		if parseErr != nil {
			report.Failed(dderrors.NewConfigurationError("deadline", parseErr))
			os.Exit(2)
		}
		cfg.Deadline = &d
	}
	if *maxTests > 0 {
		cfg.MaxTests = *maxTests
	}

	events.ConfigureLogging(*verbosity)

	source, err := os.ReadFile(*inputPath)
	if err != nil {
		report.Failed(dderrors.NewConfigurationError("input", err))
		os.Exit(2)
	}

	ctx := context.Background()

	t, err := buildTester(ctx, *script, *agentURL)
	if err != nil {
		report.Failed(dderrors.NewConfigurationError("tester", err))
		os.Exit(2)
	}
	if closer, ok := t.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	content := string(source)
	statsCollector := events.NewStatsCollector()
	logger := events.NewLoggerHandler("ddreduce")
	sink := events.NewSink(statsCollector, logger)

	runPrefix := tester.ID{runid.New()}

	var passes []stats.AtomPassDocument
	var lastCacheBytes, lastCacheEntries int
	aborted := false
	for i, pass := range cfg.Atoms {
		var atoms atom.Array
		switch pass {
		case "line":
			atoms = atom.Lines(content)
		case "char":
			atoms = atom.Chars(content)
		default:
			report.Failed(dderrors.NewConfigurationError("atoms", fmt.Errorf("unknown atom pass %q", pass)))
			os.Exit(2)
		}

		before := atoms.Len()
		report.Started(fmt.Sprintf("%s-pass", pass), before)

		tb := builder.Concat([]string(atoms))
		c, passCache, err := runPass(ctx, cfg, t, tb, config.Full(atoms.Len()), sink, runPrefix.WithSlot(runid.AtomPass(i)), *parallel)
		lastCacheBytes, lastCacheEntries = passCache.GetSize()
		var best config.Configuration
		switch e := err.(type) {
		case nil:
			best = c
		case *dderrors.ReductionStopped:
			best = e.Best
			report.Stopped("deadline or max-tests reached", best.Len())
		case *dderrors.ReductionException:
			best = e.Best
			aborted = true
			report.Failed(e)
		default:
			report.Failed(err)
			os.Exit(1)
		}

		content = atoms.Join(best)
		report.Reduced(fmt.Sprintf("%s-pass", pass), before, best.Len())
		passes = append(passes, stats.AtomPassDocument{Name: pass, Before: before, After: best.Len()})
		if aborted {
			break
		}
	}

	if err := os.WriteFile(*outputPath, []byte(content), 0o644); err != nil {
		report.Failed(err)
		os.Exit(1)
	}

	if *statsPath != "" {
		doc := stats.Document{
			InputSize:    len(source),
			OutputSize:   len(content),
			AtomPasses:   passes,
			Counters:     statsCollector.Snapshot(),
			CacheBytes:   lastCacheBytes,
			CacheEntries: lastCacheEntries,
		}
		if err := stats.WriteFile(*statsPath, doc); err != nil {
			color.Red("failed to write stats: %s", err)
		}
	}

	if aborted {
		os.Exit(1)
	}
}

func loadConfig(path, strategySpec string) (*ddconfig.Config, error) {
	cfg := ddconfig.Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		cfg, err = ddconfig.LoadYAML(data)
		if err != nil {
			return nil, err
		}
	}
	if strategySpec != "" {
		if err := ddconfig.ParseStrategySpec(cfg, strategySpec); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func buildTester(ctx context.Context, script, agentURL string) (tester.Tester, error) {
	if agentURL != "" {
		return rpctester.Dial(ctx, agentURL)
	}
	workDir, err := os.MkdirTemp("", "ddreduce-")
	if err != nil {
		return nil, err
	}
	return exectester.New(script, workDir, "input"), nil
}

func runPass(ctx context.Context, cfg *ddconfig.Config, t tester.Tester, tb func(config.Configuration) string, full config.Configuration, sink *events.Sink, idPrefix tester.ID, parallel bool) (config.Configuration, cache.Cache, error) {
	split, ok := splitter.ByName(cfg.Split)
	if !ok {
		split = splitter.Zeller{}
	}
	subsetOrd, ok := iterator.ByName(cfg.Subset)
	if !ok {
		subsetOrd = iterator.Forward{}
	}
	complementOrd, ok := iterator.ByName(cfg.Complement)
	if !ok {
		complementOrd = iterator.Forward{}
	}
	comb := iterator.NewCombined(subsetOrd, complementOrd, cfg.SubsetFirst)

	c, ok := cache.New(cfg.Cache, cfg.CacheOptions.ToCacheOptions())
	if !ok {
		c, _ = cache.New("none", cache.Options{})
	}
	sharedCache := cache.NewSharedCache(c)

	var deadline time.Time
	if cfg.Deadline != nil {
		deadline = time.Now().Add(*cfg.Deadline)
	}
	stopPred := stop.New(deadline, cfg.MaxTests)

	n0 := minInt(2, full.Len())
	if n0 == 0 {
		n0 = 2
	}

	if parallel {
		r := paralleldd.New(t, tb, paralleldd.Options{
			Split:    split,
			Iterator: comb,
			Cache:    sharedCache,
			IDPrefix: idPrefix,
			Observer: sink,
			DDStar:   cfg.DDStar,
			Stop:     stopPred,
			ProcNum:  cfg.ProcNum,
			Greedy:   cfg.Greedy,
			Retest:   cfg.Retest,
		})
		result, err := r.Reduce(ctx, full, n0)
		return result, sharedCache, err
	}

	r := dd.New(t, tb, dd.Options{
		Split:    split,
		Iterator: comb,
		Cache:    sharedCache,
		IDPrefix: idPrefix,
		Observer: sink,
		DDStar:   cfg.DDStar,
		Stop:     stopPred,
	})
	result, err := r.Reduce(ctx, full, n0)
	return result, sharedCache, err
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
