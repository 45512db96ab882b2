package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/hopgraph/display"
	"github.com/katalvlaran/hopgraph/loader"
	"github.com/katalvlaran/hopgraph/pathfind"
	"github.com/katalvlaran/hopgraph/wgraph"
)

type options struct {
	file     string
	from, to string
	max      int
	show     bool
	logLevel string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("findpath", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	fs.StringVar(&o.file, "f", "", "YAML graph description (required)")
	fs.StringVar(&o.from, "from", "", "source vertex name")
	fs.StringVar(&o.to, "to", "", "destination vertex name")
	fs.IntVar(&o.max, "max", math.MaxInt, "only use edges lighter than this weight; unlimited when omitted")
	fs.BoolVar(&o.show, "show", false, "print the graph before answering queries")
	fs.StringVar(&o.logLevel, "log-level", "", "override the file's logging level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if o.file == "" {
		return nil, errors.New("-f is required")
	}
	if (o.from == "") != (o.to == "") {
		return nil, errors.New("-from and -to must be given together")
	}

	return o, nil
}

// newLogger builds a development logger for debug and a production logger
// otherwise, both at the requested level.
func newLogger(level string, sink io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var encCfg zapcore.EncoderConfig
	var enc zapcore.Encoder
	if lvl == zapcore.DebugLevel {
		encCfg = zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encCfg = zap.NewProductionEncoderConfig()
		enc = zapcore.NewJSONEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(sink), zap.NewAtomicLevelAt(lvl))

	return zap.New(core), nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	desc, err := loader.Load(o.file)
	if err != nil {
		return err
	}
	level := desc.Logging.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	logger, err := newLogger(level, stderr)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	g, err := desc.Build()
	if err != nil {
		logger.Error("Failed to build graph", zap.String("file", o.file), zap.Error(err))
		return err
	}
	defer g.Drop()
	logger.Info("Graph loaded",
		zap.String("file", o.file),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	if o.show {
		if err := display.Show(stdout, g, desc.Names()); err != nil {
			return err
		}
	}

	queries := desc.Queries
	if o.from != "" {
		queries = []loader.QuerySpec{{From: o.from, To: o.to, MaxWeight: o.max}}
	}

	q := &querier{g: g, desc: desc, logger: logger, out: stdout}
	for _, spec := range queries {
		if err := q.answer(spec); err != nil {
			return err
		}
	}

	return nil
}

type querier struct {
	g      *wgraph.Graph
	desc   *loader.Description
	logger *zap.Logger
	out    io.Writer
	buf    []wgraph.Vertex
}

func (q *querier) answer(spec loader.QuerySpec) error {
	src, ok := q.desc.Index(spec.From)
	if !ok {
		return fmt.Errorf("%w: %q", loader.ErrUnknownVertex, spec.From)
	}
	dst, ok := q.desc.Index(spec.To)
	if !ok {
		return fmt.Errorf("%w: %q", loader.ErrUnknownVertex, spec.To)
	}

	if q.buf == nil {
		q.buf = make([]wgraph.Vertex, q.g.VertexCount())
	}
	names := q.desc.Names()
	n, err := pathfind.FindPath(q.g, src, dst, spec.MaxWeight, q.buf,
		pathfind.WithOnDequeue(func(v wgraph.Vertex, depth int) {
			q.logger.Debug("Visiting vertex", zap.String("vertex", names[v]), zap.Int("depth", depth))
		}),
	)
	if err != nil {
		return err
	}

	if n == 0 {
		q.logger.Info("No path found",
			zap.String("from", spec.From),
			zap.String("to", spec.To),
			zap.Int("maxWeight", spec.MaxWeight),
		)
		fmt.Fprintf(q.out, "No route from %s to %s (max %d)\n", spec.From, spec.To, spec.MaxWeight)
		return nil
	}

	q.logger.Info("Path found",
		zap.String("from", spec.From),
		zap.String("to", spec.To),
		zap.Int("maxWeight", spec.MaxWeight),
		zap.Int("hops", n-1),
	)
	fmt.Fprintf(q.out, "Path from %s to %s (max %d): %s\n",
		spec.From, spec.To, spec.MaxWeight, display.FormatPath(q.buf[:n], names))

	return nil
}
