package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kokistudios/sigil/internal/engine"
	"github.com/kokistudios/sigil/internal/node"
	"github.com/kokistudios/sigil/internal/store"
	"github.com/kokistudios/sigil/internal/ui"
)

// Set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func buildVersion() string {
	if commit == "none" {
		return version
	}
	return fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

// Persistent flags shared by every command.
var (
	flagNoColor bool
	flagVerbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sigil",
		Short: "sigil — symbolic identity fold engine",
		Long:  "A deterministic symbolic state generator: folds textual inputs through fixed signature-evolution rules and derives reversible node identifiers from each evolved state.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			noColor := flagNoColor
			if s, err := store.Load(store.Home()); err == nil && s.Config.NoColor {
				noColor = true
			}
			ui.Init(noColor)
			if flagVerbose {
				ui.Logger.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.Version = buildVersion()
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show curvature/pressure debug info")

	rootCmd.AddGroup(
		&cobra.Group{ID: "fold", Title: "Fold Commands:"},
		&cobra.Group{ID: "inspect", Title: "Inspect Commands:"},
		&cobra.Group{ID: "config", Title: "Configuration:"},
	)

	generateC := generateCmd()
	generateC.GroupID = "fold"
	testC := testCmd()
	testC.GroupID = "fold"
	resolveC := resolveCmd()
	resolveC.GroupID = "inspect"
	graphC := graphCmd()
	graphC.GroupID = "inspect"
	initC := initCmd()
	initC.GroupID = "config"
	configC := configCmd()
	configC.GroupID = "config"

	rootCmd.AddCommand(generateC)
	rootCmd.AddCommand(testC)
	rootCmd.AddCommand(resolveC)
	rootCmd.AddCommand(graphC)
	rootCmd.AddCommand(initC)
	rootCmd.AddCommand(configC)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadStore() (*store.Store, error) {
	return store.Load(store.Home())
}

func generateCmd() *cobra.Command {
	var resume string
	var emailOnly bool

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Run a single fold and show the resulting node",
		Example: "  sigil generate\n  sigil generate --resume 'n123|W-50C-5K-10F-7@sigil.dev'\n  sigil generate --email-only",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}

			eng := engine.New()
			if resume != "" {
				eng.Resume(resume)
				if eng.FoldCount() == 0 {
					ui.Warning("resume node carried no fold count; starting fresh")
				} else {
					ui.Info(fmt.Sprintf("Resuming from node => %s", resume))
				}
			}

			res, err := eng.Fold(s.Config.Fold.GenerateInput)
			if err != nil {
				return err
			}

			ui.SectionHeader("Single Fold Generation")
			ui.KeyValue("Fold Count:", strconv.Itoa(res.FoldCount))

			if !emailOnly {
				fmt.Println()
				fmt.Println(ui.Bold("  Signatures:"))
				for _, name := range node.SignatureNames {
					ui.Detail(name+":", res.Signatures[name])
				}
				fmt.Println()
				fmt.Println(ui.Bold("  Curvature:"))
				for _, name := range node.SignatureNames[:5] {
					ui.Detail(name+":", fmt.Sprintf("diff:%d", res.Curvature[name]))
				}
				fmt.Println()
			}

			ui.KeyValue("Public Address =>", res.PublicNode)
			if !emailOnly {
				ui.KeyValue("Internal Node  =>", res.Node)
			}

			logTrace(res)
			return nil
		},
	}

	cmd.Flags().StringVar(&resume, "resume", "", "Resume the fold counter from an internal node")
	cmd.Flags().BoolVar(&emailOnly, "email-only", false, "Show only the public address (suppress signatures and wave node)")
	return cmd
}

func testCmd() *cobra.Command {
	var iterations int
	var resume string
	var testEmail bool
	var emailOnly bool

	cmd := &cobra.Command{
		Use:     "test",
		Short:   "Run repeated folds with identical input, checking for collisions",
		Example: "  sigil test\n  sigil test --iterations 50\n  sigil test --test-email --email-only",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			if iterations <= 0 {
				iterations = s.Config.Fold.Iterations
			}

			eng := engine.New()
			if resume != "" {
				eng.Resume(resume)
				if eng.FoldCount() == 0 {
					ui.Warning("resume node carried no fold count; starting fresh")
				} else {
					ui.Info(fmt.Sprintf("Resuming from node => %s", resume))
				}
			}

			ui.Banner("test", fmt.Sprintf("%d folds, identical input", iterations))

			headers := []string{"FOLD", "NODE"}
			if emailOnly {
				headers[1] = "PUBLIC ADDRESS"
			}
			if flagVerbose {
				headers = append(headers, "CURVATURE", "DIGITS")
			}

			var rows [][]string
			validAddresses := 0
			for i := 1; i <= iterations; i++ {
				res, err := eng.Fold(s.Config.Fold.TestInput)
				if err != nil {
					ui.Error(fmt.Sprintf("collision at fold %d — identity system has failed", i))
					return err
				}

				if node.ValidAddress(res.PublicNode) {
					validAddresses++
				}

				shown := res.Node
				if emailOnly {
					shown = res.PublicNode
				}
				row := []string{strconv.Itoa(res.FoldCount), shown}
				if flagVerbose {
					row = append(row, curvatureSummary(res), strconv.Itoa(res.Trace.DigitCount))
				}
				rows = append(rows, row)

				logTrace(res)
			}

			ui.Table(headers, rows)
			ui.Success(fmt.Sprintf("%d unique nodes generated from identical input", iterations))

			if testEmail {
				ui.SectionHeader("Email Node Stats")
				ui.KeyValue("Total generated:", strconv.Itoa(iterations))
				ui.KeyValue("Valid email-only nodes:", strconv.Itoa(validAddresses))
				pct := float64(validAddresses) / float64(iterations) * 100
				ui.KeyValue("Percentage pure email addresses:", fmt.Sprintf("%.2f%%", pct))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", 0, "Number of folds (default from config, 10)")
	cmd.Flags().StringVar(&resume, "resume", "", "Resume the fold counter from an internal node")
	cmd.Flags().BoolVar(&testEmail, "test-email", false, "Show address-shape statistics after the run")
	cmd.Flags().BoolVar(&emailOnly, "email-only", false, "Show only public addresses (collision check still uses internal nodes)")
	return cmd
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <node>",
		Short:   "Parse a node and report its symbolic identity",
		Example: "  sigil resolve 'n123|W-50C-5K-10F-7@sigil.dev'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := node.Resolve(args[0])

			ui.SectionHeader("Identity Resolution")
			ui.KeyValue("Node:          ", r.Raw)
			ui.KeyValue("Numeric ID:    ", strconv.FormatUint(r.NumericID, 10))
			ui.KeyValue("Fold Count:    ", strconv.Itoa(r.FoldCount))
			ui.KeyValue("ω Waveform:    ", strconv.FormatUint(r.WaveOmega, 10))
			ui.KeyValue("Curvature Sum: ", strconv.FormatUint(r.CurvSum, 10))
			ui.KeyValue("κ Symbolic Sum:", strconv.FormatUint(r.KappaSum, 10))
			fmt.Println()
			ui.KeyValue("Symbolic Pressure:   ", strconv.FormatUint(r.Pressure, 10))
			ui.KeyValue("Expected Growth Rate:", string(r.Growth))
			ui.KeyValue("Identity:            ", "Recursively Emergent")
			return nil
		},
	}
}

func graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "graph <node>...",
		Short:   "Compare multiple nodes pairwise and report drift",
		Example: "  sigil graph 'n1|W-1C-1K-1F-1@sigil.dev' 'n2|W-2C-2K-2F-2@sigil.dev'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := node.Compare(args)
			if err != nil {
				return err
			}

			ui.SectionHeader("Identity Graph")
			for i, fp := range result.Nodes {
				ui.KeyValue(fmt.Sprintf("Node #%d:", i+1), fp.Raw)
			}
			fmt.Println()

			var rows [][]string
			for _, p := range result.Pairs {
				rows = append(rows, []string{
					fmt.Sprintf("%d vs %d", p.A+1, p.B+1),
					strconv.FormatUint(p.IDDelta, 10),
					strconv.FormatUint(p.WaveDelta, 10),
					strconv.FormatUint(p.CurvDelta, 10),
					strconv.FormatUint(p.KappaDelta, 10),
					strconv.Itoa(p.FoldDelta),
					string(p.Label),
				})
			}
			ui.Table([]string{"PAIR", "ID Δ", "ω Δ", "C Δ", "κ Δ", "FOLD Δ", "DRIFT"}, rows)
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Initialize the SIGIL_HOME directory and default config",
		Example: "  sigil init\n  sigil init --force",
		RunE: func(cmd *cobra.Command, args []string) error {
			home := store.Home()
			if err := store.Init(home, force); err != nil {
				return err
			}
			ui.Success("sigil initialized")
			ui.Detail("Home:", home)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Reinitialize even if SIGIL_HOME already exists")
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change sigil configuration",
	}
	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configSetCmd())
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the loaded configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			ui.KeyValue("home:               ", s.Home)
			ui.KeyValue("fold.iterations:    ", strconv.Itoa(s.Config.Fold.Iterations))
			ui.KeyValue("fold.generate_input:", s.Config.Fold.GenerateInput)
			ui.KeyValue("fold.test_input:    ", s.Config.Fold.TestInput)
			ui.KeyValue("no_color:           ", strconv.FormatBool(s.Config.NoColor))
			return nil
		},
	}
}

func configSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "set <key> <value>",
		Short:   "Set a configuration value",
		Example: "  sigil config set fold.iterations 25",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			if err := s.SetConfigValue(args[0], args[1]); err != nil {
				return err
			}
			ui.Success(fmt.Sprintf("%s = %s", args[0], args[1]))
			return nil
		},
	}
}

// logTrace emits the pressure breakdown of one fold at debug level.
func logTrace(res *engine.Result) {
	ui.Logger.Debug("derivation",
		"fold", res.FoldCount,
		"product", res.Trace.Product.String(),
		"curv_total", res.Trace.CurvTotal,
		"pressure", res.Trace.Pressure,
		"divisor", res.Trace.Divisor,
		"expansions", res.Trace.Expansions,
		"digit_count", res.Trace.DigitCount,
		"digits", res.Trace.Digits,
	)
}

func curvatureSummary(res *engine.Result) string {
	out := ""
	for _, name := range node.SignatureNames[:5] {
		if out != "" {
			out += ","
		}
		out += fmt.Sprintf("%s:%d", name, res.Curvature[name])
	}
	return out
}
