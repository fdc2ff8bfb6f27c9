package dump

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AlexxIT/bitreader/internal/app"
	"github.com/AlexxIT/bitreader/pkg/bits"
)

// Run - apply a descriptor script to a byte stream and log every value.
// First arg is the input path ("-" for stdin), the rest are tokens:
//
//	bit skip:N f:N su:N ns:N uvlc le:N pos
func Run(args []string) error {
	if len(args) < 2 {
		return errors.New("dump: usage: bitdump [-config bitdump.yaml] file.bin|- token...")
	}

	// whole script is checked before the first byte is consumed
	ops, err := parseScript(args[1:])
	if err != nil {
		return err
	}

	var src io.Reader
	if args[0] == "-" {
		src = os.Stdin
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	return run(bits.NewReader(src), ops)
}

type op struct {
	tok  string
	name string
	n    int
}

func parseScript(tokens []string) ([]op, error) {
	ops := make([]op, 0, len(tokens))

	for _, tok := range tokens {
		name, arg, hasArg := strings.Cut(tok, ":")

		switch name {
		case "bit", "uvlc", "pos":
			if hasArg {
				return nil, fmt.Errorf("dump: token %q takes no argument", tok)
			}
			ops = append(ops, op{tok: tok, name: name})
			continue
		case "skip", "f", "su", "ns", "le":
		default:
			return nil, fmt.Errorf("dump: unknown token %q", tok)
		}

		if !hasArg {
			return nil, fmt.Errorf("dump: token %q needs an argument", tok)
		}
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("dump: bad argument in %q", tok)
		}

		// reader contract limits, checked here so a bad script
		// can't trip the reader's panics
		switch {
		case name == "f" && n > 32,
			name == "su" && (n < 1 || n > 32),
			name == "ns" && n < 1,
			name == "le" && n > 4:
			return nil, fmt.Errorf("dump: argument out of range in %q", tok)
		}

		ops = append(ops, op{tok: tok, name: name, n: n})
	}

	return ops, nil
}

func run(r *bits.Reader, ops []op) error {
	log := app.GetLogger("dump")

	for _, o := range ops {
		pos := r.Pos()

		var value any
		var err error

		switch o.name {
		case "bit":
			value, err = r.ReadBit()
		case "skip":
			err = r.Skip(o.n)
		case "f":
			value, err = r.F(o.n)
		case "su":
			value, err = r.Su(o.n)
		case "ns":
			value, err = r.Ns(uint32(o.n))
		case "uvlc":
			value, err = r.Uvlc()
		case "le":
			value, err = r.Le(o.n)
		case "pos":
			value = pos
		}

		if err != nil {
			log.Warn().Uint64("pos", pos).Str("op", o.tok).Err(r.SourceErr()).Msg("stream exhausted")
			return nil
		}

		ev := log.Info().Uint64("pos", pos).Str("op", o.tok)
		if value != nil {
			ev = ev.Interface("value", value)
		}
		ev.Send()
	}

	return nil
}
