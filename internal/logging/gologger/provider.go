package gologger

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Config mirrors the go-logger knobs exposed through folio configuration.
type Config struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
	// Fields are attached to every module logger, e.g. {"site": "Example"}.
	Fields map[string]any
}

// Provider adapts a go-logger root logger to interfaces.LoggerProvider.
// Module loggers are built once per name.
type Provider struct {
	root    *glog.BaseLogger
	fields  map[string]any
	mu      sync.Mutex
	modules map[string]interfaces.Logger
}

// NewProvider builds a go-logger backed provider. Format accepts "json"
// (default), "console" and "pretty".
func NewProvider(cfg Config) (*Provider, error) {
	options, err := rootOptions(cfg)
	if err != nil {
		return nil, err
	}

	root := glog.NewLogger(options...)
	// module names carry no spaces
	if focus := strings.Fields(strings.Join(cfg.Focus, " ")); len(focus) > 0 {
		root.Focus(focus...)
	}

	return &Provider{
		root:    root,
		fields:  maps.Clone(cfg.Fields),
		modules: map[string]interfaces.Logger{},
	}, nil
}

func rootOptions(cfg Config) ([]glog.Option, error) {
	var options []glog.Option
	if level := glogLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch format := strings.ToLower(strings.TrimSpace(cfg.Format)); format {
	case "", "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("folio logging: go-logger format %q is not supported", cfg.Format)
	}

	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}
	return options, nil
}

func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil || p.root == nil {
		return logging.NoOp()
	}
	name = strings.TrimSpace(name)

	p.mu.Lock()
	defer p.mu.Unlock()
	if logger, ok := p.modules[name]; ok {
		return logger
	}

	var logger interfaces.Logger
	if name == "" {
		logger = wrap(p.root)
	} else {
		logger = wrap(p.root.GetLogger(name))
	}
	if len(p.fields) > 0 {
		logger = logging.WithFields(logger, p.fields)
	}
	p.modules[name] = logger
	return logger
}

func wrap(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &adapter{Logger: inner}
}

// adapter lifts the leveled methods of a glog.Logger and rewraps the
// loggers it derives.
type adapter struct {
	glog.Logger
}

func (l *adapter) WithFields(fields map[string]any) interfaces.Logger {
	inner, ok := l.Logger.(glog.FieldsLogger)
	if !ok || len(fields) == 0 {
		return l
	}
	return wrap(inner.WithFields(maps.Clone(fields)))
}

func (l *adapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return wrap(l.Logger.WithContext(ctx))
}

// glogLevel maps a folio level to the go-logger name, "" when unknown.
func glogLevel(level string) string {
	level = strings.ToUpper(strings.TrimSpace(level))
	if level == "WARNING" {
		return glog.Warn
	}
	if slices.Contains([]string{glog.Trace, glog.Debug, glog.Info, glog.Warn, glog.Error, glog.Fatal}, level) {
		return level
	}
	return ""
}
