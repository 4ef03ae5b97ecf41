package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/ppiankov/cutr/internal/extract"
	"github.com/ppiankov/cutr/internal/model"
	"github.com/ppiankov/cutr/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const version = "0.1.0"

var (
	cfgFile string
	verbose bool

	fieldList     string
	byteList      string
	charList      string
	delimiter     string
	onlyDelimited bool
	memo          bool
	rateLimit     float64
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cutr [FILE...]",
	Short: "cutr - print selected parts of lines",
	Long: `cutr prints selected fields, bytes or characters from each line of
each FILE to standard output. With no FILE, or when FILE is -, read
standard input.

LIST is made up of one range, or many ranges separated by commas.
Each range is one of:
  N     N'th byte, character or field, counted from 1
  N-M   from N'th to M'th (included) byte, character or field

Example:
  cutr -f 1,3 data.tsv
  cutr -d , -f 2-4 report.csv
  cutr -c 1-10 notes.txt -
  cutr -b 1-4 --rate 20 access.log`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runCut,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cutr v%s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.cutr/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Selection flags
	rootCmd.Flags().StringVarP(&fieldList, "fields", "f", "", "select only these fields")
	rootCmd.Flags().StringVarP(&byteList, "bytes", "b", "", "select only these bytes")
	rootCmd.Flags().StringVarP(&charList, "chars", "c", "", "select only these characters")

	// Field flags
	rootCmd.Flags().StringVarP(&delimiter, "delim", "d", "\t", "field delimiter, a single byte")
	rootCmd.Flags().BoolVarP(&onlyDelimited, "only-delimited", "s", false, "with --fields, skip lines that contain no delimiter")

	// Throughput flags
	rootCmd.Flags().BoolVar(&memo, "memo", false, "cache results for repeated lines")
	rootCmd.Flags().Float64Var(&rateLimit, "rate", 0, "max output lines per second (0 = unlimited)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("delimiter", rootCmd.Flags().Lookup("delim"))
	_ = viper.BindPFlag("only_delimited", rootCmd.Flags().Lookup("only-delimited"))
	_ = viper.BindPFlag("memo.enabled", rootCmd.Flags().Lookup("memo"))
	_ = viper.BindPFlag("rate_limit.lines_per_second", rootCmd.Flags().Lookup("rate"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	// Best-effort: load .env from current directory
	_ = godotenv.Load()

	setDefaults(viper.GetViper(), model.DefaultConfig())

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.cutr")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match CUTR_*
	viper.SetEnvPrefix("CUTR")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func runCut(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	cfg.Selections = selectionsFromFlags(cmd.Flags())

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	logger.Debug("configuration", "config", cfg.String())

	// Configuration and range errors are fatal before any input is read
	if err := cfg.Validate(); err != nil {
		return err
	}
	mode, err := extract.FromSelections(cfg.Selections)
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg, mode,
		pipeline.WithStdin(cmd.InOrStdin()),
		pipeline.WithOutput(cmd.OutOrStdout()),
		pipeline.WithErrors(cmd.ErrOrStderr()),
		pipeline.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{pipeline.StdinName}
	}

	if _, err := p.Run(cmd.Context(), args); err != nil {
		return err
	}

	return nil
}

// selectionsFromFlags records every selection flag the user set, in
// fields, bytes, chars order
func selectionsFromFlags(flags *pflag.FlagSet) []model.Selection {
	var sels []model.Selection
	for _, s := range []struct {
		flag string
		kind model.SelectionKind
	}{
		{"fields", model.SelectFields},
		{"bytes", model.SelectBytes},
		{"chars", model.SelectChars},
	} {
		f := flags.Lookup(s.flag)
		if f == nil || !f.Changed {
			continue
		}
		sels = append(sels, model.Selection{Kind: s.kind, List: f.Value.String()})
	}
	return sels
}

// newLogger writes diagnostics to w; debug output only with --verbose
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
