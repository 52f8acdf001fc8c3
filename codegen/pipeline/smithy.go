package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/smithygen/smithy-codegen/codegen/perr"
	"github.com/smithygen/smithy-codegen/ident"
	"github.com/smithygen/smithy-codegen/logging"
	"github.com/smithygen/smithy-codegen/model"
	"github.com/smithygen/smithy-codegen/symbols"
)

type loggerKey struct{}

// SetLogger installs the logging.Logger the Smithy task uses for per-file
// diagnostic output (file discovery, parse/codegen outcomes). Uninstalled,
// Smithy logs through logging.Noop, matching the teacher's own
// accept-an-interface default of "no logging unless a caller asks for it".
func SetLogger(pc *Context, logger logging.Logger) { pc.Provide(loggerKey{}, logger) }

func taskLogger(pc *Context) logging.Logger {
	if v, ok := pc.Service(loggerKey{}); ok {
		if l, ok := v.(logging.Logger); ok {
			return l
		}
	}
	return logging.Noop{}
}

// RunOptions configures a single invocation of the Smithy root task: the
// directory of *.json service models to read, the directory to write
// generated per-service packages into, and the pipeline policy knobs that
// govern how ServiceParse/SymbolProvider/CodegenService react to
// recoverable anomalies.
type RunOptions struct {
	InputDir  string
	OutputDir string
	Policy    Options
}

type serviceFilterKey struct{}

// SetServiceFilter installs the optional ServiceFilterHook from spec.md's
// Smithy task state diagram: a predicate deciding whether filename (the
// *.json base name) is processed at all. Not installing one (the default)
// processes every file the directory walk finds.
func SetServiceFilter(pc *Context, fn func(filename string) bool) {
	pc.Provide(serviceFilterKey{}, fn)
}

func serviceFilter(pc *Context) func(string) bool {
	if v, ok := pc.Service(serviceFilterKey{}); ok {
		if fn, ok := v.(func(string) bool); ok {
			return fn
		}
	}
	return func(string) bool { return true }
}

func toModelPolicy(p Policy) model.Policy {
	if p == PolicyAbort {
		return model.PolicyAbort
	}
	return model.PolicySkip
}

// parsedService is ServiceParse's output: a populated Model plus the slug
// its output directory will be named after.
type parsedService struct {
	Model  *model.Model
	Slug   string
	Issues []model.Issue
}

// ServiceParse reads one Smithy JSON AST document from r, naming the
// resulting output slug after baseName (its filename minus ".json", per
// spec.md §6's "Output layout"). It is not registered as a Task (see
// RegisterDefaultTasks); it is exported as a plain function so tests and
// the Smithy task's per-file loop can call it directly without going
// through a full Pipeline.Run.
func ServiceParse(opts Options, baseName string, r io.Reader) (*parsedService, error) {
	m := model.NewModel()
	reg := model.NewRegistry(m.Interner)
	parser := model.NewParser(m, reg, model.Options{
		PropertyPolicy: toModelPolicy(opts.PolicyParse.Property),
		TraitPolicy:    toModelPolicy(opts.PolicyParse.Trait),
	})
	if err := parser.Parse(r); err != nil {
		return nil, err
	}
	if m.ServiceID == 0 {
		return nil, &perr.ModelError{Kind: perr.MissingServiceShape, ShapeID: baseName, Msg: "no service shape found in document"}
	}
	slug := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	return &parsedService{Model: m, Slug: slug, Issues: parser.Issues()}, nil
}

// SymbolProvider projects ps.Model into the reachability-closed set of
// shapes CodegenService will emit, by delegating to symbols.Project (the
// component aside for which the whole reason this file exists: prior to
// it, codegen/schema built descriptors straight off the raw model and
// nothing ever consumed the symbol graph at all).
func SymbolProvider(ps *parsedService) (*symbols.Provider, error) {
	return symbols.Project(ps.Model, ps.Model.ServiceID)
}

// CodegenService drives F (codegen/schema), J (codegen/errresolve), K
// (codegen/endpoint) and L (codegen/emit) to render the per-service file
// set named in spec.md §6 and write it into dir.
func CodegenService(dir *ScopedDir, ps *parsedService, sp *symbols.Provider, issues *IssuesBag) error {
	svc := svcView{model: ps.Model, provider: sp, slug: ps.Slug}
	svc.classify()

	if len(sp.Operations) == 0 {
		issues.Add(SeverityWarning, ps.Slug, "service has no reachable operations")
	}

	if err := dir.WriteFile("client.go", renderClient(&svc)); err != nil {
		return err
	}
	if err := dir.WriteFile("errors.go", renderErrors(&svc)); err != nil {
		return err
	}
	if rs, ok, err := svc.endpointRuleSet(); err != nil {
		return err
	} else if ok {
		if err := dir.WriteFile("endpoint.go", renderEndpoint(&svc, rs)); err != nil {
			return err
		}
	}
	for _, resID := range svc.resources {
		if err := dir.WriteFile("resource_"+ident.SnakeCase(svc.name(resID))+".go", renderResource(&svc, resID)); err != nil {
			return err
		}
	}
	return dir.WriteFile("README.md", renderReadme(&svc))
}

// Smithy is the root generator task: it walks opts.InputDir for *.json
// files in directory order, parses and projects each one, and hands the
// result to CodegenService to write into a per-service slug directory
// under opts.OutputDir, matching the state diagram in spec.md §4.13
// (Start → scan dir → ServiceFilterHook? → ServiceParse → SymbolProvider
// → CodegenService). A file whose parse or codegen phase fails is either
// aborted or skipped-with-an-Issue according to opts.Policy.PolicyService.
func Smithy(ctx context.Context, pc *Context, opts RunOptions) error {
	entries, err := os.ReadDir(opts.InputDir)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	logger := taskLogger(pc)
	logger.Logf(logging.Debug, "smithy: discovered %d service model(s) in %s", len(names), opts.InputDir)

	filter := serviceFilter(pc)
	for _, name := range names {
		if !filter(name) {
			logger.Logf(logging.Debug, "smithy: %s skipped by ServiceFilterHook", name)
			continue
		}
		if err := processServiceFile(pc, opts, name); err != nil {
			var abort *perr.PolicyAbort
			if opts.Policy.PolicyService.Process == PolicyAbort || errors.As(err, &abort) {
				logger.Logf(logging.Warn, "smithy: aborting on %s: %v", name, err)
				return fmt.Errorf("pipeline: processing %s: %w", name, err)
			}
			logger.Logf(logging.Warn, "smithy: skipping %s after error: %v", name, err)
			pc.Issues.Add(SeverityError, name, err.Error())
			continue
		}
		logger.Logf(logging.Debug, "smithy: %s generated successfully", name)
	}
	return nil
}

func processServiceFile(pc *Context, opts RunOptions, name string) error {
	f, err := os.Open(filepath.Join(opts.InputDir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	ps, err := ServiceParse(opts.Policy, name, f)
	if err != nil {
		if opts.Policy.PolicyService.Parse == PolicyAbort {
			return &perr.PolicyAbort{Policy: "policy_service.parse", Reason: err.Error()}
		}
		pc.Issues.Add(SeverityError, name, err.Error())
		return nil
	}
	for _, issue := range ps.Issues {
		pc.Issues.Add(SeverityWarning, name, issue.Shape+": "+issue.Message)
	}

	sp, err := SymbolProvider(ps)
	if err != nil {
		return err
	}

	err = WithScopedDir(opts.OutputDir, ps.Slug, func(dir *ScopedDir) error {
		return CodegenService(dir, ps, sp, pc.Issues)
	})
	if err != nil {
		if opts.Policy.PolicyService.Codegen == PolicyAbort {
			return &perr.PolicyAbort{Policy: "policy_service.codegen", Reason: err.Error()}
		}
		pc.Issues.Add(SeverityError, name, err.Error())
	}
	return nil
}

// RegisterDefaultTasks adds the root Smithy task to p under its spec.md
// §4.13 name. ServiceParse, SymbolProvider, and CodegenService are
// per-input-file operations rather than once-per-run DAG nodes — Pipeline
// schedules each registered Task exactly once per Run, whereas the Smithy
// task itself invokes ServiceParse/SymbolProvider/CodegenService once per
// *.json file it discovers (spec.md §4.13's state diagram) — so they are
// exported as plain functions above instead of being registered a second
// time as hollow Tasks. Hook overrides for per-file behavior (e.g. a custom
// ServiceFilterHook) go through SetServiceFilter, not the Task/Hook
// machinery, for the same reason.
func RegisterDefaultTasks(p *Pipeline) error {
	return p.AddTask(Task{
		Name: "Smithy",
		Run: func(ctx context.Context, pc *Context) error {
			v, ok := pc.Service(runOptionsKey{})
			if !ok {
				return fmt.Errorf("pipeline: Smithy task requires RunOptions provided via runOptionsKey")
			}
			return Smithy(ctx, pc, v.(RunOptions))
		},
	})
}

type runOptionsKey struct{}

// SetRunOptions installs the RunOptions the registered Smithy task reads
// when the pipeline is driven through Pipeline.Run rather than by calling
// Smithy directly.
func SetRunOptions(pc *Context, opts RunOptions) { pc.Provide(runOptionsKey{}, opts) }
