package log

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/cobra"

	"github.com/iotaledger/hive.go/log"
)

var (
	VerboseFlag bool
	DebugFlag   bool

	hiveLogger log.Logger
)

func Init(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().BoolVar(&VerboseFlag, "verbose", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&DebugFlag, "debug", "d", false, "debug output")
}

// HiveLogger builds the logger handed to the SDK packages, debug level when
// --debug is set.
func HiveLogger() log.Logger {
	if hiveLogger == nil {
		level := "info"
		if DebugFlag {
			level = "debug"
		}
		loggerLevel, err := log.LevelFromString(level)
		if err != nil {
			panic(err)
		}
		hiveLogger = log.NewLogger(
			log.WithName("cli"),
			log.WithLevel(loggerLevel),
			log.WithTimeFormat(time.RFC3339),
		)
	}
	return hiveLogger
}

func Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

func Verbosef(format string, args ...interface{}) {
	if VerboseFlag || DebugFlag {
		Printf(format, args...)
	}
}

func Fatal(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func Check(err error) {
	if err != nil {
		Fatalf("error: %s", err)
	}
}

// CLIOutput is implemented by command results that know how to render
// themselves.
type CLIOutput interface {
	AsText() (string, error)
}

func PrintCLIOutput(output CLIOutput) {
	text, err := output.AsText()
	Check(err)
	Printf("%s\n", strings.TrimRight(text, "\n"))
}

func ParseCLIOutputTemplate(output CLIOutput, templateStr string) (string, error) {
	tmpl, err := template.New("output").Parse(templateStr)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, output); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PrintTable renders rows under a header, each column padded to its widest
// cell.
func PrintTable(header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		Printf("%s\n", strings.TrimRight(strings.Join(parts, "  "), " "))
	}
	printRow(header)
	separator := make([]string, len(header))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}
	printRow(separator)
	for _, row := range rows {
		printRow(row)
	}
}
