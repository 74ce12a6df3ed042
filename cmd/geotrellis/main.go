package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	nested "github.com/antonfisher/nested-logrus-formatter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	geotrellis "github.com/flywave/go-geotrellis"
	"github.com/flywave/go-geotrellis/builder"
)

const version = "0.1.0"

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initConf(v *viper.Viper, cfgFile string) {
	v.SetDefault("log.level", "info")
	v.SetDefault("ramp.colors", 10)
	v.SetEnvPrefix("geotrellis")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	v.SetConfigType("toml")
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		log.Warnf("read config file(%s) error, details: %s", cfgFile, err)
	}
}

func initLog(level string) error {
	log.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		ShowFullLevel:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	log.SetOutput(os.Stderr)
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

func rootCmd(out io.Writer) *cobra.Command {
	var (
		configPath string
		logLevel   string
	)
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "geotrellis",
		Short:         "Inspect the raster vocabulary and validate layer requests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConf(v, configPath)
			if cmd.Flags().Changed("log-level") {
				v.Set("log.level", logLevel)
			}
			return initLog(v.GetString("log.level"))
		},
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (TOML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		listCmd(),
		tagCmd(),
		nameCmd(),
		docCmd(),
		validateCmd(),
		rampCmd(v),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "geotrellis version %s\n", version)
			},
		},
	)
	return cmd
}

func lookup(name string) (*geotrellis.Enumeration, error) {
	e, ok := geotrellis.LookupEnumeration(name)
	if !ok {
		return nil, fmt.Errorf("unknown enumeration %s", name)
	}
	return e, nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [enumeration]",
		Short: "List enumerations or the members of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, e := range geotrellis.Enumerations() {
					fmt.Fprintf(w, "%s\t%s\n", e.EnumName(), e.Doc())
				}
				return nil
			}
			e, err := lookup(args[0])
			if err != nil {
				return err
			}
			for _, m := range e.Members() {
				fmt.Fprintf(w, "%s\t%s\n", m.Name, m.Tag)
			}
			return nil
		},
	}
}

func tagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag <enumeration> <name>",
		Short: "Resolve a member name to its tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookup(args[0])
			if err != nil {
				return err
			}
			tag, err := e.Tag(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tag)
			return nil
		},
	}
}

func nameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <enumeration> <tag>",
		Short: "Resolve a tag to its member name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookup(args[0])
			if err != nil {
				return err
			}
			name, err := e.Name(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func docCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doc <enumeration> <name>",
		Short: "Describe a member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookup(args[0])
			if err != nil {
				return err
			}
			m, err := e.Member(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", m.Name, m.Tag, m.Doc)
			return nil
		},
	}
}

// printEngine writes each submitted request instead of running it.
type printEngine struct {
	w io.Writer
}

func (p printEngine) Submit(r *geotrellis.Request, params map[string]string) error {
	fmt.Fprintf(p.w, "%s: ok (%d parameters)\n", r.Name, len(params))
	return nil
}

func validateCmd() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Parse and validate request documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := builder.New(printEngine{cmd.OutOrStdout()})
			for _, f := range args {
				b.AddRequest(f)
			}
			if dump {
				b.SetDumpParamsDest(cmd.OutOrStdout())
			}
			if err := b.Build(); err != nil {
				return err
			}
			log.Infof("validated %d requests", len(args))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "Print the encoded engine parameters")
	return cmd
}

func rampCmd(v *viper.Viper) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "ramp <name>",
		Short: "Print the colors of a color ramp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ramp, err := geotrellis.ParseColorRamp(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("colors") {
				n = v.GetInt("ramp.colors")
			}
			colors, err := ramp.Colors(n)
			if err != nil {
				return err
			}
			for _, c := range colors {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "colors", "n", 10, "Number of colors")
	return cmd
}
