package main

import (
	"context"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ie-chargen/internal/config"
	"github.com/KirkDiggler/ie-chargen/internal/errors"
	"github.com/KirkDiggler/ie-chargen/internal/orchestrators/character"
	"github.com/KirkDiggler/ie-chargen/internal/redis"
	characterrepo "github.com/KirkDiggler/ie-chargen/internal/repositories/character"
	"github.com/KirkDiggler/ie-chargen/internal/ruleset"
	charactersvc "github.com/KirkDiggler/ie-chargen/internal/services/character"
	"github.com/KirkDiggler/ie-chargen/internal/tlk"
)

// app holds what every subcommand needs once the root has run
type app struct {
	cfg     *config.Config
	service charactersvc.Service
	close   func()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var (
		redisAddr string
		dataDir   string
		locale    string
		tob       bool
		converted bool
		playMode  int
		verbose   bool
	)

	rootCmd := &cobra.Command{
		Use:           "chargen",
		Short:         "Infinity Engine character generation",
		Long:          `chargen creates characters and runs the class selection step of character generation against a Redis stat store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log.SetOutput(cmd.ErrOrStderr())
			if !verbose {
				log.SetFlags(0)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("redis") {
				cfg.RedisAddr = redisAddr
			}
			if flags.Changed("data-dir") {
				cfg.DataDir = dataDir
			}
			if flags.Changed("locale") {
				cfg.Locale = locale
			}
			if flags.Changed("tob") {
				cfg.Continuation = tob
			}
			if flags.Changed("converted") {
				cfg.Converted = converted
			}
			if flags.Changed("play-mode") {
				cfg.PlayMode = playMode
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return a.open(cmd.Context(), cfg)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.close != nil {
				a.close()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&redisAddr, "redis", "", "Redis address (overrides CHARGEN_REDIS_ADDR)")
	pf.StringVar(&dataDir, "data-dir", "", "rules data directory (overrides CHARGEN_DATA_DIR)")
	pf.StringVar(&locale, "locale", "", "display locale (overrides CHARGEN_LOCALE)")
	pf.BoolVar(&tob, "tob", false, "start in the expansion campaign (overrides CHARGEN_TOB)")
	pf.BoolVar(&converted, "converted", false, "converted campaign rules (overrides CHARGEN_CONVERTED)")
	pf.IntVar(&playMode, "play-mode", 0, "play mode, 1 is the tutorial (overrides CHARGEN_PLAY_MODE)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log with timestamps")

	rootCmd.AddCommand(
		newCreateCmd(a),
		newListCmd(a),
		newClassesCmd(a),
		newDescribeCmd(a),
		newSelectCmd(a),
		newShowCmd(a),
		newDeleteCmd(a),
	)

	return rootCmd
}

// open loads the rules data and connects the stat store
func (a *app) open(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	data := ruleset.EmbeddedFS()
	if cfg.DataDir != "" {
		data = os.DirFS(cfg.DataDir)
	}

	rules, strings, err := loadRules(data, cfg.Locale)
	if err != nil {
		return err
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := redis.Ping(pingCtx, client); err != nil {
		_ = client.Close()
		return errors.Wrapf(err, "failed to reach %s", cfg.RedisAddr)
	}

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close()
		return err
	}

	service, err := character.New(&character.Config{
		CharacterRepo: repo,
		Rules:         rules,
		Strings:       strings,
		Campaign:      cfg.Campaign(),
	})
	if err != nil {
		_ = client.Close()
		return err
	}

	a.cfg = cfg
	a.service = service
	a.close = func() { _ = client.Close() }
	return nil
}

func loadRules(data fs.FS, locale string) (*ruleset.Ruleset, tlk.Resolver, error) {
	rules, err := ruleset.Load(data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load rules tables")
	}

	bundle, err := tlk.LoadFS(data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load string tables")
	}

	log.Printf("rules loaded: %d classes, strings %s", len(rules.Classes()), bundle.ForLocale(locale).Locale)
	return rules, bundle.ResolverFor(locale), nil
}

// requestContext bounds one service call by the configured timeout
func (a *app) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, a.cfg.Timeout)
}
