/*
Dotcli renders text as dot-matrix banners.

Usage:

	dotcli [-scale n] [-format small-dots|solid-dots|c] [-font name|path] [-trace level] [-i] [text...]

Text is taken from the command line arguments or, if none are given, from
stdin. With -i dotcli starts an interactive session, rendering every input
line.

Defaults may be supplied by environment variables or a `.env` file in the
working directory:

	DOTTIFY_FONT_DIR   list of directories to search for glyph tables
	DOTTIFY_SCALE      cell multiplier
	DOTTIFY_FORMAT     output format

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/npillmayer/dottify/core"
	"github.com/npillmayer/dottify/core/locate/resources"
	"github.com/npillmayer/dottify/engine/canvas"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces to tracing key 'dottify.cli'.
func tracer() tracing.Trace {
	return tracing.Select("dottify.cli")
}

func main() {
	initDisplay()
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		pterm.Warning.Printf("cannot read .env file: %v\n", err)
	}
	env := defaultsFromEnv(os.Getenv)

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.dottify.cli":       "Info",
		"trace.dottify.fonts":     "Error",
		"trace.dottify.resources": "Error",
		"trace.dottify.canvas":    "Error",
		"trace.dottify.braille":   "Error",
		"app-key":                 "dottify",
		"font-dir":                env.fontDir,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	scale := flag.Int("scale", env.scale, "Multiplier for every dot")
	format := flag.String("format", env.format, "Output format [small-dots|solid-dots|<char>]")
	fontname := flag.String("font", "", "Font to use, by name or path of a glyph table")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	interactive := flag.Bool("i", false, "Interactive mode")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)

	intp, err := newIntp(conf, *fontname, *scale, *format, os.Stdout)
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	if *interactive {
		repl, err := readline.New("dots > ")
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(3)
		}
		defer repl.Close()
		intp.repl = repl
		pterm.Info.Println("Welcome to dottify")
		pterm.Info.Println("Quit with <ctrl>D")
		intp.REPL()
		return
	}
	text, err := inputText(flag.Args(), os.Stdin)
	if err != nil {
		core.UserError(err)
		os.Exit(4)
	}
	if err := intp.render(text); err != nil {
		core.UserError(err)
		os.Exit(5)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// envDefaults holds settings read from the environment.
type envDefaults struct {
	fontDir string
	scale   int
	format  string
}

func defaultsFromEnv(getenv func(string) string) envDefaults {
	env := envDefaults{
		fontDir: getenv("DOTTIFY_FONT_DIR"),
		scale:   1,
		format:  canvas.SmallDotsKeyword,
	}
	if s := strings.TrimSpace(getenv("DOTTIFY_SCALE")); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			env.scale = n
		} else {
			pterm.Warning.Printf("ignoring DOTTIFY_SCALE=%q\n", s)
		}
	}
	if f := getenv("DOTTIFY_FORMAT"); f != "" {
		env.format = f
	}
	return env
}

// inputText joins the command line arguments with blanks. Without arguments
// it reads all of r, dropping a single trailing newline.
func inputText(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// Intp is our interpreter object.
type Intp struct {
	params canvas.Params
	repl   *readline.Instance
	out    io.Writer
}

// newIntp resolves the font and output mode for a session. A font which
// cannot be found is replaced by the built-in font, with a warning.
func newIntp(conf schuko.Configuration, fontname string, scale int, format string,
	out io.Writer) (*Intp, error) {
	//
	mode, err := canvas.ParseMode(format)
	if err != nil {
		return nil, err
	}
	if scale <= 0 {
		return nil, core.ValidationError("scale must be positive, is %d", scale)
	}
	f, err := resources.ResolveFont(conf, fontname).Font()
	if f == nil {
		return nil, err
	}
	if err != nil {
		pterm.Warning.Println(core.UserMessage(err))
	}
	tracer().Infof("rendering with font of %dx%d, scale %d, format %s",
		f.Width(), f.Height(), scale, mode)
	return &Intp{
		params: canvas.Params{Font: f, Scale: scale, Mode: mode},
		out:    out,
	}, nil
}

func (intp *Intp) render(text string) error {
	rows, err := intp.params.Render(text)
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Fprintln(intp.out, row)
	}
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := intp.render(line); err != nil {
			pterm.Error.Println(core.UserMessage(err))
		}
	}
	pterm.Info.Println("Good bye!")
}
