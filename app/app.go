package app

import (
	"github.com/go-chi/oauth"

	"github.com/hanco1/D2Cdashboard/config"
	"github.com/hanco1/D2Cdashboard/form"
	"github.com/hanco1/D2Cdashboard/store"
)

// App bundles the shared collaborators threaded through route constructors.
// BearerServer is nil in demo mode, where the reviewer API runs unprotected.
type App struct {
	Form  *form.Form
	Store store.Repository
	*oauth.BearerServer
	config.Config
}
