// Package gate maps requested paths to the page allowed to render given the
// current session. It is a UX convenience only: the backend re-validates
// every call, so nothing the gate blocks is actually protected by it.
package gate

import (
	"strings"

	"github.com/rs/zerolog"
)

type Access int

const (
	// Public paths render for anyone.
	Public Access = iota
	// GuestOnly paths (login, register) redirect authenticated users away.
	GuestOnly
	// RequiresAuth paths need a session token.
	RequiresAuth
	// RequiresAdmin paths need a session token and the admin role.
	RequiresAdmin
)

const (
	PathHome     = "/"
	PathLogin    = "/login"
	PathRegister = "/register"
	PathProducts = "/products"
	PathSearch   = "/search"
	PathCart     = "/cart"
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
	PathAddress  = "/addresses"
	PathProfile  = "/profile"
	PathAdmin    = "/admin"
)

// Session is the slice of the session store the gate reads. The gate must
// only be built after the session has been restored; Resolve never waits.
type Session interface {
	Authenticated() bool
	IsAdmin() bool
}

// Decision names the path to render. Redirected is set when it differs from
// the requested one.
type Decision struct {
	Path       string
	Redirected bool
}

type Gate struct {
	rules   map[string]Access
	session Session
	log     zerolog.Logger
}

// New builds the storefront's route table. Everything under /admin is
// admin-only without being listed rule by rule.
func New(session Session, log zerolog.Logger) *Gate {
	return &Gate{
		session: session,
		log:     log,
		rules: map[string]Access{
			PathHome:     Public,
			PathProducts: Public,
			PathSearch:   Public,
			PathLogin:    GuestOnly,
			PathRegister: GuestOnly,
			PathCart:     RequiresAuth,
			PathCheckout: RequiresAuth,
			PathOrders:   RequiresAuth,
			PathAddress:  RequiresAuth,
			PathProfile:  RequiresAuth,
		},
	}
}

// Resolve decides which page a navigation to path renders. Unauthenticated
// users land on the login page, authenticated non-admins never see admin
// pages, and logged-in users are steered away from login/registration.
func (g *Gate) Resolve(path string) Decision {
	access, known := g.rules[path]
	switch {
	case path == PathAdmin || strings.HasPrefix(path, PathAdmin+"/"):
		access = RequiresAdmin
	case !known:
		g.log.Debug().Str("path", path).Msg("unknown path")
		return Decision{Path: PathHome, Redirected: true}
	}

	switch access {
	case GuestOnly:
		if g.session.Authenticated() {
			return Decision{Path: PathProducts, Redirected: true}
		}
	case RequiresAuth:
		if !g.session.Authenticated() {
			return Decision{Path: PathLogin, Redirected: true}
		}
	case RequiresAdmin:
		if !g.session.Authenticated() {
			return Decision{Path: PathLogin, Redirected: true}
		}
		if !g.session.IsAdmin() {
			g.log.Warn().Str("path", path).Msg("blocked admin path")
			return Decision{Path: PathHome, Redirected: true}
		}
	}

	return Decision{Path: path}
}
