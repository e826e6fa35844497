/*
Command hangul composes or decomposes Korean Hangul syllables.

Usage:

   hangul [-d] [-compat=false] [-trace level] text

Without flags, hangul composes text made of compatibility jamo, as typed on a
Korean keyboard, and prints the result:

   $ hangul ㄷㅏㄹㄱ
   닭

Flag -d switches to decomposition. Flag -compat=false restricts input and
output to conjoining jamo (U+1100…U+11FF). Defaults are read from the
environment or from a file .env (see package internal/config).

Exit status is 0 on success, 1 if text is missing or the configuration is
invalid, and 2 for invalid flags.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/hangul"
	"github.com/npillmayer/hangul/internal/config"
	"github.com/npillmayer/hangul/internal/tracing"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/text/language"
)

// ErrMissingInput is reported if no text is given on the command line.
var ErrMissingInput = errors.New("missing input text")

func main() {
	gtrace.CoreTracer = gologadapter.New()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "hangul: %v\n", err)
		return 1
	}
	fs := flag.NewFlagSet("hangul", flag.ContinueOnError)
	fs.SetOutput(stderr)
	decompose := fs.Bool("d", cfg.Mode == config.Decompose, "decompose syllables instead of composing them")
	compat := fs.Bool("compat", cfg.Compat, "use compatibility jamo for input and output")
	trace := fs.String("trace", cfg.Trace, "trace level: error, info or debug")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageMessage(userLanguage()))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	level, err := config.CheckTraceLevel(*trace)
	if err != nil {
		fmt.Fprintf(stderr, "hangul: %v\n", err)
		return 2
	}
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelFromString(level))
	if fs.NArg() == 0 {
		fmt.Fprintf(stderr, "hangul: %v\n", ErrMissingInput)
		fs.Usage()
		return 1
	}
	input := fs.Arg(0)
	tracing.P("mode", modeName(*decompose)).Infof("input %q, compatibility jamo = %v", input, *compat)
	fmt.Fprintln(stdout, hangul.Convert(input, *decompose, *compat))
	return 0
}

func modeName(decompose bool) string {
	if decompose {
		return config.Decompose.String()
	}
	return config.Compose.String()
}

// --- Usage messages --------------------------------------------------------

var usageLanguages = language.NewMatcher([]language.Tag{
	language.English, // The first language is used as fallback.
	language.Korean,
})

var usageMessages = map[language.Base]string{
	language.MustParseBase("en"): "usage: hangul [flags] text",
	language.MustParseBase("ko"): "사용법: hangul [플래그] 텍스트",
}

// userLanguage detects the language of the user's locale.
func userLanguage() language.Tag {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracing.Infof("cannot detect user locale: %v", err)
		return language.English
	}
	tracing.Infof("detected user locale %v", userLocale)
	return language.Make(userLocale)
}

// usageMessage returns the usage line in the best matching language.
func usageMessage(lang language.Tag) string {
	tag, _, _ := usageLanguages.Match(lang)
	base, _ := tag.Base()
	if msg, ok := usageMessages[base]; ok {
		return msg
	}
	return usageMessages[language.MustParseBase("en")]
}
