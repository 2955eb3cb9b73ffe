// Package cli is the terminal front end of the storefront: each command is
// a thin consumer of the stores and resource clients, the way the web
// client's pages are.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/OmarT94/Webshop/internal/api"
	"github.com/OmarT94/Webshop/internal/cart"
	"github.com/OmarT94/Webshop/internal/checkout"
	"github.com/OmarT94/Webshop/internal/config"
	"github.com/OmarT94/Webshop/internal/gate"
	"github.com/OmarT94/Webshop/internal/keystore"
	"github.com/OmarT94/Webshop/internal/session"
)

// App holds the wired-up client. Everything is an injected instance so tests
// can assemble an App around fakes.
type App struct {
	Config   *config.Config
	Log      zerolog.Logger
	Keys     keystore.Store
	API      *api.Client
	Session  *session.Store
	Cart     *cart.Store
	Checkout *checkout.Store
	Gate     *gate.Gate
}

// NewRootCommand builds the webshop CLI. The session is restored before any
// subcommand runs, so commands never observe a half-initialized session.
func NewRootCommand() *cobra.Command {
	cmd, _ := newRootCommand()
	return cmd
}

// newRootCommand also exposes the wired App so tests can release the state
// file after a failed run, where cobra skips PersistentPostRunE.
func newRootCommand() (*cobra.Command, *App) {
	app := &App{}
	var verbose bool

	cmd := &cobra.Command{
		Use:           "webshop",
		Short:         "Storefront client for the Webshop backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(verbose)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app.Keys != nil {
				return app.Keys.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newRegisterCommand(app))
	cmd.AddCommand(newLoginCommand(app))
	cmd.AddCommand(newLogoutCommand(app))
	cmd.AddCommand(newWhoamiCommand(app))
	cmd.AddCommand(newProfileCommand(app))
	cmd.AddCommand(newProductsCommand(app))
	cmd.AddCommand(newCategoriesCommand(app))
	cmd.AddCommand(newCartCommand(app))
	cmd.AddCommand(newCheckoutCommand(app))
	cmd.AddCommand(newOrdersCommand(app))
	cmd.AddCommand(newAddressesCommand(app))
	cmd.AddCommand(newAdminCommand(app))

	return cmd, app
}

func (a *App) init(verbose bool) error {
	a.Config = config.Load()

	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(a.Config.LogLevel); err == nil {
		level = parsed
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	a.Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	keys, err := keystore.OpenBolt(a.Config.StatePath)
	if err != nil {
		return fmt.Errorf("failed to open local state: %w", err)
	}
	a.Keys = keys

	a.API = api.New(a.Config.APIBaseURL, a.Config.RequestTimeout, a.Log)
	a.Session = session.NewStore(a.Keys, a.Log)
	a.Cart = cart.NewStore(a.API, a.Log)
	a.Checkout = checkout.NewStore(a.API, a.Cart, hostedConfirmer(), a.Config.Currency, a.Log)

	// Restore completes before the gate exists; no page can render against
	// an unread session.
	if _, err := a.Session.Restore(); err != nil {
		return err
	}
	a.Gate = gate.New(a.Session, a.Log)

	return nil
}

// resolve routes a command to its page path. A redirect means the command is
// not available for the current session.
func (a *App) resolve(path string) error {
	decision := a.Gate.Resolve(path)
	if !decision.Redirected {
		return nil
	}
	switch decision.Path {
	case gate.PathLogin:
		return fmt.Errorf("log in first (webshop login)")
	case gate.PathProducts:
		return fmt.Errorf("already logged in as %s", a.Session.Email())
	default:
		return fmt.Errorf("not allowed for this account")
	}
}
