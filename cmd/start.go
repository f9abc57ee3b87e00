package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yaoapp/jumia/client"
	"github.com/yaoapp/jumia/config"
	"github.com/yaoapp/jumia/extensions/audit"
	"github.com/yaoapp/jumia/extensions/ping"
	"github.com/yaoapp/jumia/extensions/status"
	"github.com/yaoapp/jumia/logger"
	"golang.org/x/sync/errgroup"
)

var errMissingToken = errors.New("DISCORD_TOKEN is not set")

var log = logger.New("cmd")

var (
	startAppID  string
	startShards int
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Connect to the gateway and dispatch events until interrupted",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		if err := config.OpenLog(); err != nil {
			return err
		}
		defer config.CloseLog()

		if startAppID != "" {
			cfg.ApplicationID = startAppID
		}
		if cmd.Flags().Changed("shards") {
			cfg.Shards = startShards
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return start(ctx, cfg)
	},
}

func init() {
	startCmd.Flags().StringVar(&startAppID, "app-id", "", "application ID; looked up from the token when empty")
	startCmd.Flags().IntVar(&startShards, "shards", 0, "number of shards, 0 asks the gateway")
}

// app is what start assembles before running.
type app struct {
	builder *client.Builder
	status  *status.Status
	audit   *audit.Audit
	addr    string
}

// assemble composes the enabled extensions and the builder for cfg.
// Extensions are applied before the built-in readiness log.
func assemble(cfg config.Config, exts config.Extensions) (*app, error) {
	if cfg.Token == "" {
		return nil, errMissingToken
	}

	rt := &app{}
	b := client.NewBuilder().
		Token(cfg.Token).
		ApplicationID(cfg.ApplicationID).
		Shards(cfg.Shards).
		SyncEvents(cfg.SyncEvents).
		RecoverPanics(cfg.Recover)

	if exts.Ping.Enabled {
		b.Extension(ping.New(ping.Trigger(exts.Ping.Trigger), ping.Reply(exts.Ping.Reply)))
	}
	if exts.Status.Enabled {
		rt.status = status.New()
		rt.addr = exts.Status.Addr
		b.Extension(rt.status)
	}
	if exts.Audit.Enabled {
		rt.audit = audit.New()
		b.Extension(rt.audit)
	}

	b.EventHandler(func(h client.EventHandler) client.EventHandler {
		return h.OnReady(onReady)
	})
	rt.builder = b
	return rt, nil
}

func onReady(ctx *client.Context, r *discordgo.Ready) {
	name := ""
	if r.User != nil {
		name = r.User.Username
	}
	log.Info("%s is connected on shard %d", name, ctx.Shard)
}

func start(ctx context.Context, cfg config.Config) error {
	exts, err := config.LoadExtensions(cfg.Extensions)
	if err != nil {
		return err
	}

	rt, err := assemble(cfg, exts)
	if err != nil {
		return err
	}

	c, err := rt.builder.Build(ctx)
	if err != nil {
		return err
	}
	if config.IsDevelopment() {
		color.Green("✓ jumia %s running app=%s", Version, c.ApplicationID())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.Start(gctx) })
	if rt.status != nil && rt.addr != "" {
		g.Go(func() error { return rt.status.Serve(gctx, rt.addr) })
	}
	if rt.audit != nil {
		g.Go(func() error {
			rt.audit.Clean(gctx)
			rt.audit.Wait()
			return nil
		})
	}
	return g.Wait()
}
