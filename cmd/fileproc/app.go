package main

import (
	"context"
	"flag"
	"io"
	"strings"

	"github.com/jmgilman/fileproc/config"
	"github.com/jmgilman/fileproc/errors"
	"github.com/jmgilman/fileproc/logging"
	"github.com/jmgilman/fileproc/processor"
	"github.com/jmgilman/fileproc/store"
)

// scenario is one labelled request run by the driver.
type scenario struct {
	Title   string
	Request processor.Request
}

// demoScenarios covers each failure kind once and the success path.
func demoScenarios() []scenario {
	return []scenario{
		{Title: "Missing file name", Request: processor.Request{}},
		{Title: "File data not a string", Request: processor.Request{Name: "myFile.txt", Data: 42}},
		{Title: "Empty file data", Request: processor.Request{Name: "myFile.txt", Data: ""}},
		{Title: "Valid file data", Request: processor.Request{Name: "myFile.txt", Data: "Hello, world!"}},
	}
}

type app struct {
	stdout io.Writer
	stderr io.Writer
	// environ overrides the process environment when non-nil.
	environ map[string]string
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

type flags struct {
	name      string
	data      string
	number    int
	hasNumber bool
	output    string
	logLevel  string
	logFormat string
	noSave    bool
	single    bool
}

func (a *app) parseFlags(args []string) (*flags, error) {
	fs := flag.NewFlagSet("fileproc", flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	f := &flags{}
	fs.StringVar(&f.name, "name", "", "file name of a single request")
	fs.StringVar(&f.data, "data", "", "text content of a single request")
	fs.IntVar(&f.number, "number", 0, "send a numeric payload instead of text")
	fs.StringVar(&f.output, "output", "", "report format: text, json or yaml (env FILEPROC_OUTPUT)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (env FILEPROC_LOG_LEVEL)")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text or json (env FILEPROC_LOG_FORMAT)")
	fs.BoolVar(&f.noSave, "no-save", false, "skip saving to the in-memory store")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "invalid arguments")
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name", "data":
			f.single = true
		case "number":
			f.single = true
			f.hasNumber = true
		}
	})
	return f, nil
}

// loadConfig merges environment configuration with flag overrides.
func (a *app) loadConfig(f *flags) (config.Config, error) {
	cfg, err := config.Parse(a.environ)
	if err != nil {
		return config.Config{}, err
	}
	if f.output != "" {
		cfg.Output = config.Output(strings.ToLower(f.output))
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		cfg.LogFormat = f.logFormat
	}
	if f.noSave {
		cfg.Save = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// run executes the command and returns the process exit code.
func (a *app) run(ctx context.Context, args []string) (int, error) {
	f, err := a.parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0, nil
	}
	if err != nil {
		return 2, err
	}

	cfg, err := a.loadConfig(f)
	if err != nil {
		return 2, err
	}

	logCfg := cfg.LoggingConfig()
	logCfg.Output = a.stderr
	logger := logging.New(logCfg)

	rec := &processor.Recorder{}
	opts := []processor.Option{
		processor.WithObserver(processor.Observers(processor.NewLogObserver(logger), rec)),
	}
	if cfg.Save {
		opts = append(opts, processor.WithStore(store.NewMemory()))
	}
	p := processor.New(opts...)

	scenarios := demoScenarios()
	if f.single {
		req := processor.Request{Name: f.name, Data: f.data}
		if f.hasNumber {
			req.Data = f.number
		}
		scenarios = []scenario{{Title: "Request", Request: req}}
	}

	results := make([]result, 0, len(scenarios))
	for _, sc := range scenarios {
		logger.Debug(ctx, "running scenario", "title", sc.Title)
		out := p.Process(ctx, sc.Request)
		results = append(results, newResult(sc.Title, out, rec.Call(out.CallID)))
	}

	if err := render(a.stdout, cfg.Output, results); err != nil {
		return 1, errors.Wrap(err, errors.CodeInternal, "failed to render report")
	}

	// Demo failures are expected; only a failed single request is an error.
	if f.single && !results[0].Success {
		return 1, nil
	}
	return 0, nil
}
