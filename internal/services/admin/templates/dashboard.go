package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/adminchrome/internal/services/admin/htmlwrite"
)

// DashboardView holds the dashboard page content.
type DashboardView struct {
	// UserName is empty for anonymous visitors.
	UserName string
}

// DashboardPage renders the dashboard body.
func DashboardPage(view DashboardView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		pw := htmlwrite.New(w)
		pw.Raw(`<section class="dashboard"><h1>`)
		pw.Text(T(loc, "dashboard.title"))
		pw.Raw(`</h1><p>`)
		if view.UserName != "" {
			pw.Text(T(loc, "dashboard.welcome") + ", " + view.UserName)
		} else {
			pw.Text(T(loc, "dashboard.anonymous"))
		}
		pw.Raw(`</p></section>`)
		return pw.Err()
	})
}

// DashboardFullPage renders the dashboard inside the document shell.
func DashboardFullPage(view DashboardView, page PageContext) templ.Component {
	return Document(page, DashboardPage(view, page.Loc))
}
