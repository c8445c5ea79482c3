package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/nebbyJammin/gradascii/asciiart"
)

const (
	modeUsage        = "Specifies the color mode: r, g, b, a, intensity, value, saturation, hue, luminance."
	gradientUsage    = "Specifies the character gradient, lowest value first (must be at least 2 characters)."
	blurUsage        = "Specifies the Gaussian blur sigma. Use 0 to disable."
	invertUsage      = "Inverts the image's colors."
	aspectUsage      = "Specifies the image's size multiplier, applied to both dimensions."
	resampleUsage    = "Specifies the resampling filter: lanczos, catmull-rom, cubic, linear, box, nearest."
	standardHueUsage = "Uses the wrapped hue wheel in hue mode instead of the literal formula."
	timeoutUsage     = "Specifies the timeout for downloading remote images."
	verboseUsage     = "Enables debug logging on stderr."

	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, isTerminal(os.Stdin), os.Stdout, os.Stderr))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func run(args []string, stdin io.Reader, stdinIsTerminal bool, stdout, stderr io.Writer) int {
	mode := asciiart.Intensity
	gradient := asciiart.DefaultGradient
	blur := float64(0.2)
	invert := false
	aspectRatio := float64(1)
	resampling := asciiart.Lanczos
	standardHue := false
	timeout := 30 * time.Second
	verbose := false

	flags := flag.NewFlagSet("asciiart", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: asciiart [flags] <path or link to image>...\n\n")
		flags.PrintDefaults()
	}

	flags.TextVar(&mode, "m", asciiart.Intensity, modeUsage)
	flags.TextVar(&mode, "mode", asciiart.Intensity, "alias for -m")

	flags.StringVar(&gradient, "g", asciiart.DefaultGradient, gradientUsage)
	flags.StringVar(&gradient, "gradient", asciiart.DefaultGradient, "alias for -g")

	flags.Float64Var(&blur, "b", 0.2, blurUsage)
	flags.Float64Var(&blur, "blur", 0.2, "alias for -b")

	flags.BoolVar(&invert, "i", false, invertUsage)
	flags.BoolVar(&invert, "invert", false, "alias for -i")

	flags.Float64Var(&aspectRatio, "a", 1, aspectUsage)
	flags.Float64Var(&aspectRatio, "aspect-ratio", 1, "alias for -a")

	flags.TextVar(&resampling, "r", asciiart.Lanczos, resampleUsage)
	flags.TextVar(&resampling, "resample", asciiart.Lanczos, "alias for -r")

	flags.BoolVar(&standardHue, "standard-hue", false, standardHueUsage)

	flags.DurationVar(&timeout, "timeout", 30*time.Second, timeoutUsage)

	flags.BoolVar(&verbose, "v", false, verboseUsage)
	flags.BoolVar(&verbose, "verbose", false, "alias for -v")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitUsage
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isTerminal(stderr),
	}))

	fail := func(err error) int {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return exitUsage
	}

	// The gradient is checked before any image work
	grad, err := asciiart.NewGradient(gradient)
	if err != nil {
		return fail(err)
	}

	if odd := grad.Irregular(); len(odd) > 0 {
		logger.Warn("gradient has characters that are not one cell wide, columns may not line up",
			"characters", string(odd))
	}

	asciiconv := asciiart.New(
		asciiart.WithMode(mode),
		asciiart.WithGradient(grad),
		asciiart.WithStandardHue(standardHue),
		asciiart.WithBlur(float32(blur)),
		asciiart.WithInvert(invert),
		asciiart.WithScale(aspectRatio),
		asciiart.WithResampling(resampling),
		asciiart.WithHTTPClient(&http.Client{Timeout: timeout}),
		asciiart.WithLogger(logger),
	)

	if err := asciiconv.Validate(); err != nil {
		return fail(err)
	}

	sources, err := gatherSources(flags.Args(), stdin, stdinIsTerminal)
	if err != nil {
		return fail(err)
	}

	if len(sources) == 0 {
		flags.Usage()
		return fail(errors.New("no image given"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, src := range sources {
		start := time.Now()

		res, err := asciiconv.ConvertSource(ctx, src)
		if err != nil {
			logger.Debug("conversion failed", "source", src, "err", err)
			return fail(err)
		}

		fmt.Fprintln(stdout, res)

		logger.Debug("converted image", "source", src, "elapsed", time.Since(start))
	}

	return 0
}
