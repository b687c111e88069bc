// Package resolver looks up the Cangjie code of a single character: the symbol
// table first, then the common-character table, then the remote oracle.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/cj/internal/cangjie"
)

var (
	// ErrOracleResolution is returned for every oracle failure, whether the
	// request failed or the reply could not be parsed.
	ErrOracleResolution = errors.New("could not parse result")
	// ErrNoOracle is the cause when a lookup misses both tables and no oracle
	// is configured.
	ErrNoOracle = errors.New("no oracle configured")
)

// Source tells where a result came from.
type Source int

const (
	SourceNone Source = iota
	SourceSymbol
	SourceCommon
	SourceOracle
)

func (s Source) String() string {
	switch s {
	case SourceSymbol:
		return "symbol"
	case SourceCommon:
		return "common"
	case SourceOracle:
		return "oracle"
	default:
		return "none"
	}
}

// Oracle answers lookups the local tables cannot.
type Oracle interface {
	Explain(ctx context.Context, char string) (*cangjie.Result, error)
}

// Resolver resolves characters against a table and an optional oracle.
type Resolver struct {
	table  *cangjie.Table
	oracle Oracle
	logger *slog.Logger
}

// New creates a resolver. oracle may be nil, in which case table misses fail
// with ErrNoOracle.
func New(table *cangjie.Table, oracle Oracle, logger *slog.Logger) *Resolver {
	if table == nil {
		table = cangjie.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{table: table, oracle: oracle, logger: logger}
}

// Target returns the character a lookup of input is about: the first code point
// after trimming. ok is false for blank input.
func Target(input string) (char string, ok bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	r, size := utf8.DecodeRuneInString(input)
	if r == utf8.RuneError && size <= 1 {
		return input[:size], true
	}
	return string(r), true
}

// Resolve returns the result for the first character of input. Blank input
// returns nil and no error.
func (r *Resolver) Resolve(ctx context.Context, input string) (*cangjie.Result, error) {
	res, _, err := r.ResolveSource(ctx, input)
	return res, err
}

// ResolveSource is Resolve that also reports which table or the oracle answered.
func (r *Resolver) ResolveSource(ctx context.Context, input string) (*cangjie.Result, Source, error) {
	char, ok := Target(input)
	if !ok {
		return nil, SourceNone, nil
	}

	if res, src, ok := r.Local(char); ok {
		return res, src, nil
	}

	res, err := r.ask(ctx, char)
	if err != nil {
		return nil, SourceOracle, err
	}
	return res, SourceOracle, nil
}

// Local resolves char from the tables only. It never blocks.
func (r *Resolver) Local(char string) (*cangjie.Result, Source, bool) {
	if sym, ok := r.table.LookupSymbol(char); ok {
		return cangjie.NewResult(char, sym.Code), SourceSymbol, true
	}
	if code, ok := r.table.LookupCommon(char); ok {
		return cangjie.NewResult(char, code), SourceCommon, true
	}
	return nil, SourceNone, false
}

func (r *Resolver) ask(ctx context.Context, char string) (*cangjie.Result, error) {
	if r.oracle == nil {
		r.logger.Warn("oracle_unavailable", "char", char)
		return nil, fmt.Errorf("%w: %w", ErrOracleResolution, ErrNoOracle)
	}

	res, err := r.oracle.Explain(ctx, char)
	if err != nil {
		r.logger.Error("oracle_failed", "char", char, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrOracleResolution, err)
	}
	if res == nil {
		r.logger.Error("oracle_failed", "char", char, "err", "empty result")
		return nil, ErrOracleResolution
	}

	r.logger.Debug("oracle_resolved", "char", char, "code", res.Code)
	return &cangjie.Result{
		Char:     res.Char,
		Code:     strings.ToUpper(res.Code),
		Radicals: res.Radicals,
	}, nil
}

// Table returns the table the resolver reads from.
func (r *Resolver) Table() *cangjie.Table {
	return r.table
}
