package vesper

import (
	"io"

	"golang.org/x/sync/errgroup"
)

// Run is the single host-facing entry point: lex, parse, and interpret
// source, executing its main function. heapCapacity bounds the
// interpreter's heap; zero means unbounded. output receives anything
// written by the print builtin. The returned error, if any, is a
// *LexerError, *ParseError, or *RuntimeError, or the error output returned
// when print failed to write to it.
func Run(source string, heapCapacity int, output io.Writer) error {
	lexer := NewLexerFromString(source)
	parser := NewParser(lexer)

	var program *Program
	parseDone := make(chan struct{})

	var errs errgroup.Group

	errs.Go(func() error {
		defer close(parseDone)
		p, err := parser.Parse()
		if err != nil {
			return err
		}
		program = p
		return nil
	})

	// If parsing returns before the lexer has reached EoF - because it hit
	// a syntax error partway through the stream - the lexer can be left
	// blocked sending into a full token channel. Stopping it here unblocks
	// that send with ClosedTokenStream rather than leaking the goroutine.
	errs.Go(func() error {
		<-parseDone
		lexer.Stop()
		return nil
	})

	if err := errs.Wait(); err != nil {
		return err
	}

	heap := NewSliceHeap(heapCapacity)
	interp := NewInterpreter(heap, DefaultBuiltins(output))
	return interp.Run(program)
}
