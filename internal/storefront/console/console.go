// Package console is a line-oriented terminal storefront. Each input line is
// one intent; the screen is redrawn after every command that was accepted.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/storefront"
	"github.com/dwikikusuma/storefront/internal/storefront/page"
)

const prompt = "> "

const usage = `commands:
  add <id>      add a product to the cart
  remove <id>   remove every unit of a product
  checkout      proceed to checkout
  close         dismiss the checkout dialog
  toggle        toggle the checkout dialog
  help          show this help
  quit          leave the store
`

type grammar struct {
	Add struct {
		ID string `arg:"" name:"id"`
	} `cmd:""`
	Remove struct {
		ID string `arg:"" name:"id"`
	} `cmd:""`
	Checkout struct{} `cmd:""`
	Close    struct{} `cmd:""`
	Toggle   struct{} `cmd:""`
	Help     struct{} `cmd:""`
	Quit     struct{} `cmd:"" aliases:"exit"`
}

type Console struct {
	screen *storefront.Screen
	view   *cartapp.Service
	out    io.Writer
	log    *slog.Logger
}

func New(screen *storefront.Screen, view *cartapp.Service, out io.Writer, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{screen: screen, view: view, out: out, log: log}
}

// LineReader yields one command line per call and io.EOF when input ends.
// *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

type scanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScanReader reads lines from a non-terminal input, writing the prompt to
// out before each one.
func NewScanReader(in io.Reader, out io.Writer) LineReader {
	return &scanReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *scanReader) Readline() (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		fmt.Fprintln(r.out)
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// NewTerminalReader returns a readline instance when stdin is a terminal,
// and a plain scanner otherwise. The returned closer releases in and must be
// called.
func NewTerminalReader(in io.ReadCloser, out io.Writer) (LineReader, func() error, error) {
	if !readline.DefaultIsTerminal() {
		return NewScanReader(in, out), in.Close, nil
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		Stdin:           in,
		Stdout:          out,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init readline: %w", err)
	}
	return l, l.Close, nil
}

// Run reads commands until quit, end of input, interrupt or ctx is done.
func (c *Console) Run(ctx context.Context, lines LineReader) error {
	if err := c.render(ctx); err != nil {
		return err
	}

	for {
		line, err := readLine(ctx, lines)
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, readline.ErrInterrupt):
			return nil
		case err != nil:
			return err
		}

		quit, redraw, err := c.exec(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if redraw {
			if err := c.render(ctx); err != nil {
				return err
			}
		}
	}
}

// readLine waits for the next line or for ctx to end. A read that is still
// blocked when ctx ends is abandoned.
func readLine(ctx context.Context, lines LineReader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	type result struct {
		line string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		line, err := lines.Readline()
		done <- result{line, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.line, r.err
	}
}

// exec runs one line. Mistakes in the line are reported to the user and do
// not end the session; only internal failures are returned.
func (c *Console) exec(ctx context.Context, line string) (quit, redraw bool, err error) {
	args, err := shellquote.Split(line)
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return false, false, nil
	}
	if len(args) == 0 {
		return false, false, nil
	}

	var g grammar
	parser, err := kong.New(&g,
		kong.Name("storefront"),
		kong.NoDefaultHelp(),
		kong.Exit(func(int) {}),
		kong.Writers(c.out, c.out),
	)
	if err != nil {
		return false, false, fmt.Errorf("console grammar: %w", err)
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(c.out, "error: %v (try \"help\")\n", err)
		return false, false, nil
	}

	switch kctx.Command() {
	case "add <id>":
		product, err := c.screen.Catalog.GetProduct(ctx, g.Add.ID)
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return false, false, nil
		}
		c.view.AddToCart(product)
	case "remove <id>":
		c.view.RemoveFromCart(g.Remove.ID)
	case "checkout":
		c.view.HandleCheckout()
	case "close":
		c.view.DismissCheckoutDialog()
	case "toggle":
		c.view.ToggleCheckoutDialog()
	case "help":
		fmt.Fprint(c.out, usage)
		return false, false, nil
	case "quit":
		return true, false, nil
	default:
		c.log.Warn("unhandled console command", slog.String("command", kctx.Command()))
		return false, false, nil
	}
	return false, true, nil
}

func (c *Console) render(ctx context.Context) error {
	p, err := c.screen.Page(ctx, c.view.Snapshot())
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out)
	return page.RenderText(c.out, p)
}
