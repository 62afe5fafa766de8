package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/transmute"
	"github.com/wippyai/transmute/errors"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to binary file")
		typeName    = flag.String("type", "u32", "Target type (u8..u64, i8..i64, f32, f64, bool)")
		policyName  = flag.String("policy", "exact", "Length policy (exact, pedantic, at_least, permissive, single_value)")
		offset      = flag.Int("offset", 0, "Byte offset into the file")
		count       = flag.Int("count", 16, "Maximum values to print (0 = all)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -file <data.bin> [-type u32] [-policy exact] [-offset n]")
		fmt.Fprintln(os.Stderr, "       inspect -file <data.bin> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*file, *typeName, *policyName, *offset, *count); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// decoder views a byte window as one target type and formats the values.
type decoder struct {
	size   int
	decode func(b []byte, p transmute.Policy) ([]string, error)
}

func viewAs[T any](b []byte, p transmute.Policy) ([]string, error) {
	vals, err := transmute.Many[T](b, p)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = fmt.Sprint(v)
	}
	return out, nil
}

func viewBools(b []byte, p transmute.Policy) ([]string, error) {
	vals, err := transmute.Bools(b, p)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = fmt.Sprint(v)
	}
	return out, nil
}

// targetNames fixes the cycling order for the TUI.
var targetNames = []string{"u8", "u16", "u32", "u64", "i8", "i16", "i32", "i64", "f32", "f64", "bool"}

var targets = map[string]decoder{
	"u8":   {size: 1, decode: viewAs[uint8]},
	"u16":  {size: 2, decode: viewAs[uint16]},
	"u32":  {size: 4, decode: viewAs[uint32]},
	"u64":  {size: 8, decode: viewAs[uint64]},
	"i8":   {size: 1, decode: viewAs[int8]},
	"i16":  {size: 2, decode: viewAs[int16]},
	"i32":  {size: 4, decode: viewAs[int32]},
	"i64":  {size: 8, decode: viewAs[int64]},
	"f32":  {size: 4, decode: viewAs[float32]},
	"f64":  {size: 8, decode: viewAs[float64]},
	"bool": {size: 1, decode: viewBools},
}

var policyNames = []string{"exact", "pedantic", "at_least", "permissive", "single_value"}

var policies = map[string]transmute.Policy{
	"exact":        transmute.Exact,
	"pedantic":     transmute.Pedantic,
	"at_least":     transmute.AtLeast,
	"permissive":   transmute.Permissive,
	"single_value": transmute.SingleValue,
}

func run(path, typeName, policyName string, offset, count int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	dec, ok := targets[typeName]
	if !ok {
		return fmt.Errorf("unknown type %q (supported: %s)", typeName, strings.Join(targetNames, ", "))
	}
	policy, ok := policies[policyName]
	if !ok {
		return fmt.Errorf("unknown policy %q (supported: %s)", policyName, strings.Join(policyNames, ", "))
	}
	if offset < 0 || offset > len(data) {
		return fmt.Errorf("offset %d outside file of %d bytes", offset, len(data))
	}

	window := data[offset:]
	fmt.Printf("File: %s (%d bytes, offset %d)\n", path, len(data), offset)
	fmt.Printf("Type: %s (%d bytes/element)  Policy: %s\n\n", typeName, dec.size, policy)

	for _, row := range hexRows(window, offset, 4) {
		fmt.Println(row)
	}
	fmt.Println()

	values, err := dec.decode(window, policy)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		if hint := recoveryHint(err, offset); hint != "" {
			fmt.Printf("Hint: %s\n", hint)
		}
		return nil
	}

	fmt.Printf("Values (%d):\n", len(values))
	shown := values
	if count > 0 && len(shown) > count {
		shown = shown[:count]
	}
	for i, v := range shown {
		fmt.Printf("  [%d] %s\n", i, v)
	}
	if len(values) > len(shown) {
		fmt.Printf("  ... and %d more\n", len(values)-len(shown))
	}
	return nil
}

// hexRows formats up to maxRows sixteen-byte rows of b, labeling each
// with its absolute file offset.
func hexRows(b []byte, base, maxRows int) []string {
	var rows []string
	for r := 0; r < maxRows && r*16 < len(b); r++ {
		chunk := b[r*16:]
		if len(chunk) > 16 {
			chunk = chunk[:16]
		}
		rows = append(rows, fmt.Sprintf("%08x  % x", base+r*16, chunk))
	}
	if len(rows) == 0 {
		rows = append(rows, fmt.Sprintf("%08x  (empty)", base))
	}
	return rows
}

// recoveryHint turns a structured decode error into an actionable
// suggestion, using the arithmetic the error carries.
func recoveryHint(err error, offset int) string {
	var ge *errors.GuardError
	if stderrors.As(err, &ge) {
		switch {
		case ge.Deficit() > 0 && ge.Surplus() > 0:
			return fmt.Sprintf("append %d bytes or trim %d bytes to fit %d-byte elements", ge.Deficit(), ge.Surplus(), ge.Size)
		case ge.Deficit() > 0:
			return fmt.Sprintf("need %d more bytes", ge.Deficit())
		case ge.Surplus() > 0:
			return fmt.Sprintf("trim %d trailing bytes", ge.Surplus())
		}
		return ""
	}

	var ue *errors.UnalignedError
	if stderrors.As(err, &ue) {
		return fmt.Sprintf("discard %d leading bytes (try -offset %d)", ue.Offset, offset+ue.Offset)
	}

	var ive *errors.InvalidValueError
	if stderrors.As(err, &ive) {
		return fmt.Sprintf("byte at file offset %d is not a valid %s encoding", offset+ive.Offset, ive.Type)
	}

	return ""
}
