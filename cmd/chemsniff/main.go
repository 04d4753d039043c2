// chemsniff classifies chemical data files from the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chemkit/chemkit"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chemsniff [file ...]",
		Short: "Detect the chemical file format of files or stdin",
		Long: `chemsniff inspects the leading bytes of each input and reports which
chemical file format it encodes. Gzip-compressed input is handled
transparently. Use "-" (or no arguments) to read from stdin.`,
		Args: cobra.ArbitraryArgs,
		RunE: run,
	}

	cmd.Flags().Int("header-length", chemkit.DefaultHeaderLength, "bytes of the input eligible for classification")
	cmd.Flags().BoolP("verbose", "v", false, "log detection steps")

	viper.SetEnvPrefix("CHEMSNIFF")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("header_length", cmd.Flags().Lookup("header-length"))
	_ = viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	factory := chemkit.NewReaderFactory(
		chemkit.WithHeaderLength(viper.GetInt("header_length")),
		chemkit.WithLogger(log),
	)

	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		if err := sniff(cmd.OutOrStdout(), factory, path); err != nil {
			return err
		}
	}
	return nil
}

func sniff(out io.Writer, factory *chemkit.ReaderFactory, path string) error {
	var input io.Reader
	label := path
	if path == "-" {
		input = os.Stdin
		label = "stdin"
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return err
		}
		defer fh.Close()
		input = fh
	}

	format, err := factory.DetectFormat(input)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	switch {
	case format == chemkit.FormatUndetermined:
		fmt.Fprintf(out, "%s: undetermined\n", label)
	case !format.Implemented():
		fmt.Fprintf(out, "%s: %s (recognized, no reader available)\n", label, format.Name())
	default:
		fmt.Fprintf(out, "%s: %s\n", label, format.Name())
	}
	return nil
}
