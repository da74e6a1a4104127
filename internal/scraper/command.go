package scraper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/yigit/gradplan/internal/pkg/logger"
)

// EnvPrefix is prepended to every flag when read from the environment,
// e.g. SCRAPER_BASE_URL for --base-url
const EnvPrefix = "SCRAPER"

const (
	// DefaultCoursesOutput is the first course file the API looks for
	DefaultCoursesOutput = "data/courses.csv"
	DefaultMajorsOutput  = "data/major_requirements.csv"
)

const (
	keyBaseURL     = "base-url"
	keyUserAgent   = "user-agent"
	keyDelay       = "delay"
	keyMaxPages    = "max-pages"
	keyTimeout     = "timeout"
	keyDepartments = "departments"
	keyOutput      = "output"
	keyLogLevel    = "log-level"
	keyLogFormat   = "log-format"
)

// NewRootCmd builds the "scraper" command with its courses and majors
// subcommands. Flags fall back to SCRAPER_* environment variables.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "scraper",
		Short:         "Scrape Berkeley catalog pages into CSV files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String(keyBaseURL, DefaultBaseURL, "catalog base URL")
	flags.String(keyUserAgent, DefaultUserAgent, "User-Agent header sent with every request")
	flags.Duration(keyDelay, DefaultDelay, "pause between page requests")
	flags.Int(keyMaxPages, DefaultMaxPages, "maximum linked pages fetched from an index")
	flags.Duration(keyTimeout, DefaultTimeout, "per-request timeout")
	flags.String(keyLogLevel, string(logger.InfoLevel), "log level (debug, info, warn, error)")
	flags.String(keyLogFormat, "text", "log format (json or text)")
	mustBind(v, flags)

	root.AddCommand(newCoursesCmd(v), newMajorsCmd(v))
	return root
}

func newCoursesCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "courses",
		Short:   "Scrape course listings into a course CSV the API can load",
		PreRunE: bindLocal(v),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := scraperConfig(v)
			cfg.Departments = splitList(v.GetStringSlice(keyDepartments))
			s := New(cfg, commandLogger(v, cmd))

			courses, err := s.ScrapeCourses(cmd.Context())
			if err != nil {
				return err
			}
			return writeFile(v.GetString(keyOutput), func(f *os.File) error {
				return WriteCourses(f, courses)
			})
		},
	}

	flags := cmd.Flags()
	flags.String(keyOutput, DefaultCoursesOutput, "output CSV path")
	flags.StringSlice(keyDepartments, DefaultDepartments, "department codes checked for course listings")
	return cmd
}

func newMajorsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "majors",
		Short:   "Scrape program pages into a major requirements CSV",
		PreRunE: bindLocal(v),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := New(scraperConfig(v), commandLogger(v, cmd))

			reqs, err := s.ScrapeMajors(cmd.Context())
			if err != nil {
				return err
			}
			return writeFile(v.GetString(keyOutput), func(f *os.File) error {
				return WriteRequirements(f, reqs)
			})
		},
	}

	cmd.Flags().String(keyOutput, DefaultMajorsOutput, "output CSV path")
	return cmd
}

// bindLocal binds a subcommand's own flags just before it runs, so two
// subcommands can share a key such as "output"
func bindLocal(v *viper.Viper) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return v.BindPFlags(cmd.LocalFlags())
	}
}

func mustBind(v *viper.Viper, flags *pflag.FlagSet) {
	if err := v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("bind flags: %v", err))
	}
}

// splitList also splits comma-joined entries, which is how a list arrives
// from the environment
func splitList(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, strings.ToUpper(part))
			}
		}
	}
	return out
}

func scraperConfig(v *viper.Viper) Config {
	return Config{
		BaseURL:   v.GetString(keyBaseURL),
		UserAgent: v.GetString(keyUserAgent),
		Delay:     v.GetDuration(keyDelay),
		MaxPages:  v.GetInt(keyMaxPages),
		Timeout:   v.GetDuration(keyTimeout),
	}
}

func commandLogger(v *viper.Viper, cmd *cobra.Command) zerolog.Logger {
	logger.Configure(logger.Config{
		Level:  logger.ParseLevel(v.GetString(keyLogLevel)),
		Pretty: v.GetString(keyLogFormat) != "json",
		Output: cmd.ErrOrStderr(),
	})
	return logger.Component("scraper").With().Str("command", cmd.Name()).Logger()
}

func writeFile(path string, write func(*os.File) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return write(f)
}

// Execute runs the root command with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
