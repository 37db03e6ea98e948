package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"itamaraca/sequence"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "itamaraca",
	Short: "Itamaraca (ITA) pseudo-random sequence generator.",
	Long: `Generate an Itamaraca (ITA) pseudo-random sequence and export it as
"Index,Value" csv for offline analysis. For example:
  itamaraca --count=10000 --bound=10000 --seeds=800,25,3005 --multiplier=1.97

Settings come from flags, ITA_* environment variables, or config.yaml
in the working directory, in that order of precedence.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), viper.GetViper(), cmd.OutOrStdout())
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	setDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	flags := rootCmd.Flags()
	flags.Float64("bound", 10000.0, "reference ceiling N of the recurrence")
	flags.String("seeds", "800,25,3005", "three initial seeds, oldest first")
	flags.Float64("multiplier", sequence.DefaultMultiplier, "lambda applied to the seed distance")
	flags.Int("count", 10000, "number of samples to generate")
	flags.Int("preview", 5, "number of samples to print to the console")
	flags.Int("precision", 4, "decimals written to the Value column")
	flags.Int("bins", 40, "histogram buckets between 0 and bound")
	flags.Bool("progress", false, "show a progress bar")
	flags.String("output-dir", ".", "directory for the csv file")
	flags.String("output-file", "itamaraca_results.csv", "csv file name")
	flags.Bool("run-id", false, "insert a ULID run id into the csv file name")
	flags.StringSlice("open-flags", nil, "extra open flags for the csv file (sync, dsync)")
	flags.String("sync", "none", "'close' to fsync the csv file before closing it")
	flags.String("log-level", "info", "debug, info, warn or error")

	bindFlags(viper.GetViper(), flags, map[string]string{
		"output-dir":  "output.dir",
		"output-file": "output.file",
		"run-id":      "output.run_id",
		"open-flags":  "output.flags",
		"sync":        "output.sync",
		"log-level":   "log.level",
	})
}

// bindFlags binds every flag to the viper key of the same name, or to the
// key given in rename.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, rename map[string]string) {
	flags.VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if k, ok := rename[f.Name]; ok {
			key = k
		}
		_ = v.BindPFlag(key, f)
	})
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("ITA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "error reading config file: %s\n", err)
			os.Exit(-1)
		}
	}
}

// run builds the generator and drives it into the csv export. The generator
// is built before anything is opened, so bad arguments leave no file behind.
func run(ctx context.Context, v *viper.Viper, console io.Writer) (err error) {
	config, err := loadConfig(v)

	if err != nil {
		return fmt.Errorf("bad configuration: %w", err)
	}

	if err = InitLogger(config.LogLevel); err != nil {
		return err
	}

	logger := Logger("main")

	if f := v.ConfigFileUsed(); f != "" {
		logger.Infof("using config file %s", f)
	}

	seq, err := sequence.NewItaSequenceFromSlice(config.Bound, config.Seeds, config.Multiplier)

	if err != nil {
		logger.Errorf("cannot create generator: %s", err)
		return err
	}

	logger.Infof("bound: %g, seeds: %v, multiplier: %g", seq.Bound(), seq.Seeds(), seq.Multiplier())

	reporter, err := NewReporter(&ReporterConfig{
		Bound: config.Bound,
		Bins:  config.Bins,
	})

	if err != nil {
		return err
	}

	openFlags, err := parseOpenFlags(config.Output.Flags)

	if err != nil {
		return err
	}

	ss, err := NewFileSampleStore(config.Output.Dir, openFlags)

	if err != nil {
		logger.Errorf("%s", err)
		return err
	}

	exporter, err := NewExporter(ss, exportFileName(config.Output.File, config.Output.RunID), &ExporterConfig{
		Precision:   config.Precision,
		SyncOnClose: config.Output.SyncOnClose,
	})

	if err != nil {
		logger.Errorf("%s", err)
		return err
	}

	defer func() {
		err = multierr.Append(err, exporter.Close())
	}()

	fmt.Fprintln(console, "--- Itamaraca PRNG ---")
	fmt.Fprintf(console, "Generating %d numbers...\n", config.Count)

	runner := NewRunner(seq, exporter, reporter, console, &RunnerConfig{
		Count:    config.Count,
		Preview:  config.Preview,
		Progress: config.Progress,
	})

	n, err := runner.Run(ctx)

	switch {
	case errors.Is(err, context.Canceled):
		logger.Infof("interrupted; %d of %d samples written", n, config.Count)
		err = nil
	case err != nil:
		return err
	}

	fmt.Fprintln(console, "--------------------------------------")
	fmt.Fprintf(console, "Saved %d samples to '%s'.\n", n, exporter.Name())

	return reporter.Report(console)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	// stderr may not support fsync; nothing useful to do if this fails
	_ = SyncLogger()

	if err != nil {
		os.Exit(-1)
	}
}
