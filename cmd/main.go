package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/invoizy/invoizy/pkg/config"
	"github.com/invoizy/invoizy/pkg/editor"
	"github.com/invoizy/invoizy/pkg/logger"
	"github.com/invoizy/invoizy/pkg/render"
	"github.com/invoizy/invoizy/pkg/server"
	"github.com/invoizy/invoizy/pkg/store"
)

func main() {
	app := &cli.App{
		Name:           "invoizy",
		Usage:          "invoice editor with debounced local snapshot persistence",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			serveCommand(),
			exportCommand(),
			resetCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the editing API",
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			log, err := logger.New(cfg.App.Debug)
			if err != nil {
				return err
			}
			defer log.Sync()

			st := store.NewFileStore(cfg.Storage.DataDir, cfg.Storage.SnapshotKey, log)
			session := editor.NewSession(st, cfg.Storage.SaveDebounce, log)
			srv := server.New(session, cfg.Storage.UploadMaxSize, log)

			httpServer := &http.Server{
				Addr:    ":" + cfg.App.Port,
				Handler: srv.Router(),
			}

			errCh := make(chan error, 1)
			go func() {
				log.Infof("%s listening on %s (snapshot: %s)", cfg.App.Name, httpServer.Addr, st.Path())
				if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				log.Warnf("shutdown: %v", err)
			}

			// The debounce window must not cost the last edits on exit.
			session.Flush()
			session.Close()
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "render the stored invoice to a PDF file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Value: "invoice.pdf", Usage: "output file"},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			log, err := logger.New(cfg.App.Debug)
			if err != nil {
				return err
			}
			defer log.Sync()

			st := store.NewFileStore(cfg.Storage.DataDir, cfg.Storage.SnapshotKey, log)
			doc := store.Decode(st.Load(), time.Now())
			out, err := render.PDF(doc)
			if err != nil {
				return err
			}
			if err := os.WriteFile(c.String("out"), out, 0o644); err != nil {
				return err
			}
			log.Infof("wrote %s (%d bytes)", c.String("out"), len(out))
			return nil
		},
	}
}

func resetCommand() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "discard the stored invoice snapshot",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Usage: "confirm the destructive reset"},
		},
		Action: func(c *cli.Context) error {
			if !c.Bool("yes") {
				return cli.Exit("refusing to reset without --yes", 1)
			}
			cfg := config.Load()
			log, err := logger.New(cfg.App.Debug)
			if err != nil {
				return err
			}
			defer log.Sync()

			st := store.NewFileStore(cfg.Storage.DataDir, cfg.Storage.SnapshotKey, log)
			if err := st.Clear(); err != nil {
				return err
			}
			log.Infof("snapshot cleared")
			return nil
		},
	}
}
