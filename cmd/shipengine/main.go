// Command shipengine calls any ShipEngine API operation from the shell.
//
//	shipengine [flags] <family> <operation> [ids...]
//	shipengine paths
//	shipengine country <code>
//
// The API key is read from --api-key or the API_KEY environment variable.
// Other flags can be set through SHIPENGINE_-prefixed variables, for example
// SHIPENGINE_BASE_URL.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	shipengine "github.com/shipengine/shipengine-go"
	"github.com/shipengine/shipengine-go/validate"
)

const usage = "usage: shipengine [flags] <family> <operation> [ids...] | paths | country <code>"

// Config holds the I/O streams used by run.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config wired to the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// exitFunc is replaced in tests.
var exitFunc = os.Exit

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}

// clientFactory builds the API client from the resolved settings.
var clientFactory = func(v *viper.Viper, logger *zap.Logger) (*shipengine.Client, error) {
	opts := []shipengine.Option{
		shipengine.WithTimeout(v.GetDuration("timeout")),
		shipengine.WithRetries(v.GetInt("retries")),
		shipengine.WithLogger(logger),
	}
	if base := v.GetString("base-url"); base != "" {
		opts = append(opts, shipengine.WithBaseURL(base))
	}
	if size := v.GetInt("page-size"); size > 0 {
		opts = append(opts, shipengine.WithPageSize(size))
	}
	return shipengine.New(v.GetString("api-key"), opts...)
}

func newFlagSet(name string, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("api-key", "", "ShipEngine API key (env API_KEY)")
	fs.String("base-url", shipengine.DefaultBaseURL, "API base URL")
	fs.Duration("timeout", 30*time.Second, "per-request timeout")
	fs.Int("retries", 1, "retries for rate-limited requests")
	fs.Int("page-size", 50, "page_size added to list operations when not given")
	fs.StringArrayP("param", "p", nil, "request parameter as key=value (repeatable)")
	fs.String("params-json", "", "request parameters as a JSON object, or an array for addresses validate")
	fs.BoolP("verbose", "v", false, "log requests to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	return fs
}

func loadSettings(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("SHIPENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api-key", "API_KEY"); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

func run(args []string, cfg *Config) error {
	if cfg.Stderr == nil {
		cfg.Stderr = io.Discard
	}
	if len(args) == 0 {
		return errors.New(usage)
	}

	fs := newFlagSet(args[0], cfg.Stderr)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return errors.New(usage)
	}

	switch rest[0] {
	case "paths":
		return printPaths(cfg.Stdout)
	case "country":
		if len(rest) != 2 {
			return errors.New("usage: shipengine country <code>")
		}
		if err := validate.CheckCountry(rest[1]); err != nil {
			return err
		}
		fmt.Fprintf(cfg.Stdout, "%s is a valid country code\n", strings.ToUpper(rest[1]))
		return nil
	}

	if len(rest) < 2 {
		return errors.New(usage)
	}
	op, err := lookupOperation(rest[0], rest[1])
	if err != nil {
		return err
	}
	ids := rest[2:]
	if len(ids) != len(op.args) {
		return fmt.Errorf("usage: shipengine %s %s %s", rest[0], rest[1], strings.Join(bracket(op.args), " "))
	}

	v, err := loadSettings(fs)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	pairs, err := fs.GetStringArray("param")
	if err != nil {
		return err
	}
	in, err := parseInput(v.GetString("params-json"), pairs)
	if err != nil {
		return err
	}
	in.ids = ids
	if op.check != nil {
		if err := op.check(in); err != nil {
			return err
		}
	}

	logger := newLogger(cfg.Stderr, v.GetBool("verbose"))
	defer logger.Sync()

	client, err := clientFactory(v, logger)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer client.Close()

	if op.list {
		if _, ok := in.params["page_size"]; !ok {
			if in.params == nil {
				in.params = shipengine.Params{}
			}
			in.params["page_size"] = client.PageSize()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	resp, err := op.run(ctx, client, in)
	if err != nil {
		return err
	}
	return writeJSON(cfg.Stdout, resp.Value)
}

// newLogger returns a development console logger on w, or a no-op logger.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core, zap.Development())
}

func bracket(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "<" + n + ">"
	}
	return out
}

// parseInput merges --params-json and -p pairs. Pairs win over JSON keys.
func parseInput(paramsJSON string, pairs []string) (input, error) {
	var in input
	if s := strings.TrimSpace(paramsJSON); s != "" {
		if strings.HasPrefix(s, "[") {
			if err := json.Unmarshal([]byte(s), &in.list); err != nil {
				return in, fmt.Errorf("parse --params-json: %w", err)
			}
		} else if err := json.Unmarshal([]byte(s), &in.params); err != nil {
			return in, fmt.Errorf("parse --params-json: %w", err)
		}
	}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return in, fmt.Errorf("invalid --param %q: want key=value", pair)
		}
		if in.params == nil {
			in.params = shipengine.Params{}
		}
		in.params[key] = value
	}
	return in, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPaths(w io.Writer) error {
	entries := shipengine.Paths().Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tFAMILY\tOPERATION\tPATH")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Version, e.Family, e.Operation, e.Path)
	}
	return tw.Flush()
}
