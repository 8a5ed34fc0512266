// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pad/internal/config"
	"github.com/MKhiriev/go-pad/internal/service"
	"github.com/MKhiriev/go-pad/models"
)

var (
	errWrongPassword    = errors.New("wrong password")
	errPasswordMismatch = errors.New("passwords do not match")
	errItemNotFound     = errors.New("no item matches")
	errAmbiguousItem    = errors.New("more than one item matches")
	errFileNotFound     = errors.New("no attachment matches")
)

// CLI is the pad command tree.
type CLI struct {
	version   string
	passwords PasswordReader
	clipboard Clipboard
	flagCfg   *config.StructuredConfig
}

// NewCLI returns a CLI reading passwords from the terminal and using the
// system clipboard.
func NewCLI(version string) *CLI {
	return &CLI{version: version, passwords: newTermPasswordReader(), clipboard: systemClipboard{}}
}

// Run implements [Client].
func (c *CLI) Run(ctx context.Context, args []string) error {
	root := c.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (c *CLI) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pad",
		Short:         "Encrypted notes that keep working offline",
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.flagCfg = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.setupCommand(),
		c.loginCommand(),
		c.listCommand(),
		c.showCommand(),
		c.addCommand(),
		c.addFileCommand(),
		c.pasteCommand(),
		c.copyCommand(),
		c.rmCommand(),
		c.getFileCommand(),
		c.syncCommand(),
		c.statusCommand(),
		c.watchCommand(),
		c.signOutCommand(),
	)
	return root
}

// ── Runners ─────────────────────────────────────────────────────────────────

// withApp opens the application for one command and probes the server.
func (c *CLI) withApp(cmd *cobra.Command, fn func(ctx context.Context, app *App) error) error {
	cfg, err := config.GetClientConfig(c.flagCfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	app, err := NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx = app.logger.WithContext(ctx)
	app.Probe(ctx)
	return fn(ctx, app)
}

// withSession is withApp plus an unlocked session.
func (c *CLI) withSession(cmd *cobra.Command, fn func(ctx context.Context, app *App, sess service.Session) error) error {
	return c.withApp(cmd, func(ctx context.Context, app *App) error {
		password, err := c.passwords.ReadPassword("Master password: ")
		if err != nil {
			return err
		}
		sess := app.Session()
		ok, err := sess.Unlock(ctx, password)
		if err != nil {
			return fmt.Errorf("unlock: %w", err)
		}
		if !ok {
			return errWrongPassword
		}
		return fn(ctx, app, sess)
	})
}

// ── Account ─────────────────────────────────────────────────────────────────

func (c *CLI) setupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Choose the master password for a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(ctx context.Context, app *App) error {
				password, err := c.passwords.ReadPassword("New master password: ")
				if err != nil {
					return err
				}
				confirm, err := c.passwords.ReadPassword("Repeat master password: ")
				if err != nil {
					return err
				}
				if password != confirm {
					return errPasswordMismatch
				}
				if err = app.Session().SetupEncryption(ctx, password); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "encryption set up")
				return nil
			})
		},
	}
}

func (c *CLI) loginCommand() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save the bearer token used to talk to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(_ context.Context, app *App) error {
				if err := app.Login(strings.TrimSpace(token)); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "token saved")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "bearer token")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func (c *CLI) signOutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Forget the token, the cached credentials and every cached item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.Session().SignOut(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "signed out")
				return nil
			})
		},
	}
}

// ── Items ───────────────────────────────────────────────────────────────────

func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Sync and list items, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withSession(cmd, func(ctx context.Context, _ *App, sess service.Session) error {
				if err := sess.Refresh(ctx); err != nil {
					if errors.Is(err, service.ErrLocked) {
						return err
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
				}
				printItems(cmd.OutOrStdout(), sess.Items())
				return nil
			})
		},
	}
}

func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the full text of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(_ context.Context, _ *App, sess service.Session) error {
				item, err := findItem(sess.Items(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), item.Text)
				return nil
			})
		},
	}
}

func (c *CLI) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add [text...]",
		Short: "Add an item; reads stdin when no text is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return c.addText(cmd, text)
		},
	}
}

func (c *CLI) pasteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paste",
		Short: "Add the clipboard contents as an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := c.clipboard.ReadAll()
			if err != nil {
				return fmt.Errorf("read clipboard: %w", err)
			}
			return c.addText(cmd, text)
		},
	}
}

func (c *CLI) addText(cmd *cobra.Command, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("nothing to add")
	}
	return c.withSession(cmd, func(ctx context.Context, _ *App, sess service.Session) error {
		item, err := sess.AddItem(ctx, text)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), item.ID)
		return nil
	})
}

func (c *CLI) addFileCommand() *cobra.Command {
	var text, mimeType string
	cmd := &cobra.Command{
		Use:   "add-file <path>...",
		Short: "Add an item with file attachments (needs the server)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := make([]models.NewFile, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				typ := mimeType
				if typ == "" {
					typ = mime.TypeByExtension(filepath.Ext(path))
				}
				if typ == "" {
					typ = "application/octet-stream"
				}
				files = append(files, models.NewFile{Name: filepath.Base(path), Type: typ, Data: data})
			}
			if text == "" {
				text = files[0].Name
			}

			return c.withSession(cmd, func(ctx context.Context, _ *App, sess service.Session) error {
				item, err := sess.AddItemWithFiles(ctx, text, files)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), item.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "item text (defaults to the first file name)")
	cmd.Flags().StringVar(&mimeType, "type", "", "MIME type for every file (guessed from the extension by default)")
	return cmd
}

func (c *CLI) copyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy an item's text to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(_ context.Context, _ *App, sess service.Session) error {
				item, err := findItem(sess.Items(), args[0])
				if err != nil {
					return err
				}
				if err = c.clipboard.WriteAll(item.Text); err != nil {
					return fmt.Errorf("write clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "copied")
				return nil
			})
		},
	}
}

func (c *CLI) rmCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(ctx context.Context, _ *App, sess service.Session) error {
				item, err := findItem(sess.Items(), args[0])
				if err != nil {
					return err
				}
				if err = sess.DeleteItem(ctx, item.ID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "deleted", item.ID)
				return nil
			})
		},
	}
}

func (c *CLI) getFileCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "get-file <item-id> <file-id-or-name>",
		Short: "Decrypt an attachment to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(ctx context.Context, _ *App, sess service.Session) error {
				item, err := findItem(sess.Items(), args[0])
				if err != nil {
					return err
				}
				file, err := findFile(item, args[1])
				if err != nil {
					return err
				}
				data, err := sess.DownloadFile(ctx, file, item.ID)
				if err != nil {
					return err
				}

				target := out
				if target == "" {
					target = filepath.Base(file.Name)
				}
				if target == "-" {
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}
				if err = os.WriteFile(target, data, 0o600); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), target)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path, - for stdout (defaults to the attachment name)")
	return cmd
}

// ── Sync ────────────────────────────────────────────────────────────────────

func (c *CLI) syncCommand() *cobra.Command {
	var metadataOnly bool
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Push queued changes and pull the server state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(ctx context.Context, app *App) error {
				run := app.Sync().Sync
				if metadataOnly {
					run = app.Sync().SyncMetadataOnly
				}
				err := run(ctx)
				printStatus(cmd.OutOrStdout(), app.Sync().Status())
				for _, m := range app.Sync().DroppedMutations() {
					fmt.Fprintf(cmd.ErrOrStderr(), "dropped %s of item %s after %d retries\n", m.Kind, m.ItemID, m.RetryCount)
				}
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&metadataOnly, "metadata-only", false, "skip downloading attachments")
	return cmd
}

func (c *CLI) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server reachability and queued changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(ctx context.Context, app *App) error {
				pending, err := app.PendingChanges(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if app.Reachable() {
					fmt.Fprintln(w, "server: reachable")
				} else {
					fmt.Fprintln(w, "server: unreachable")
				}
				fmt.Fprintf(w, "queued changes: %d\n", pending)
				switch {
				case app.remote.Token() == "":
					fmt.Fprintln(w, "token: none")
				case app.remote.TokenExpired():
					fmt.Fprintln(w, "token: expired")
				default:
					fmt.Fprintln(w, "token: ok")
				}
				return nil
			})
		},
	}
}

func (c *CLI) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep syncing in the background and print the list on every change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withSession(cmd, func(ctx context.Context, app *App, sess service.Session) error {
				items, cancelItems := sess.Subscribe()
				defer cancelItems()
				statuses, cancelStatuses := app.Sync().Subscribe()
				defer cancelStatuses()

				app.StartWorkers(ctx)
				w := cmd.OutOrStdout()
				printItems(w, sess.Items())
				for {
					select {
					case <-ctx.Done():
						return nil
					case snapshot, ok := <-items:
						if !ok {
							return nil
						}
						fmt.Fprintln(w, "──")
						printItems(w, snapshot)
					case st, ok := <-statuses:
						if !ok {
							return nil
						}
						printStatus(w, st)
					}
				}
			})
		},
	}
}

// ── Output ──────────────────────────────────────────────────────────────────

func printItems(w io.Writer, items []models.DisplayItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "no items")
		return
	}
	for _, it := range items {
		mark := " "
		if it.IsPendingSync {
			mark = "*"
		}
		created := time.UnixMilli(it.CreatedAt).Format("2006-01-02 15:04")
		fmt.Fprintf(w, "%s %s %s  %s\n", mark, it.ID, created, firstLine(it.Text, 60))
		for _, f := range it.Files {
			fmt.Fprintf(w, "    + %s  %s (%s, %d bytes)\n", f.ID, f.Name, f.Type, f.Size)
		}
	}
}

func printStatus(w io.Writer, st models.SyncStatus) {
	line := "sync: " + string(st.State)
	if st.Reason != "" {
		line += " (" + st.Reason + ")"
	}
	if !st.LastSyncAt.IsZero() {
		line += ", last synced " + st.LastSyncAt.Format(time.RFC3339)
	}
	fmt.Fprintln(w, line)
}

func firstLine(text string, limit int) string {
	line, _, more := strings.Cut(text, "\n")
	runes := []rune(line)
	if len(runes) > limit {
		return string(runes[:limit]) + "…"
	}
	if more {
		return line + " …"
	}
	return line
}

// findItem resolves an exact id or a unique id prefix.
func findItem(items []models.DisplayItem, ref string) (models.DisplayItem, error) {
	var (
		found models.DisplayItem
		n     int
	)
	for _, it := range items {
		if it.ID == ref {
			return it, nil
		}
		if strings.HasPrefix(it.ID, ref) {
			found = it
			n++
		}
	}
	switch n {
	case 0:
		return models.DisplayItem{}, fmt.Errorf("%w %q", errItemNotFound, ref)
	case 1:
		return found, nil
	default:
		return models.DisplayItem{}, fmt.Errorf("%w %q", errAmbiguousItem, ref)
	}
}

// findFile resolves an attachment by id or by name.
func findFile(item models.DisplayItem, ref string) (models.DisplayFile, error) {
	for _, f := range item.Files {
		if f.ID == ref || f.Name == ref {
			return f, nil
		}
	}
	return models.DisplayFile{}, fmt.Errorf("%w %q in item %s", errFileNotFound, ref, item.ID)
}
