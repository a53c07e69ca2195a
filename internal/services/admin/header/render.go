package header

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/adminchrome/internal/platform/icons"
	"github.com/louisbranch/adminchrome/internal/services/admin/htmlwrite"
	"github.com/louisbranch/adminchrome/internal/services/admin/routepath"
)

// ElementID is the DOM id of the header root.
const ElementID = "admin-chrome-header"

// ChangedEvent is the client event that asks the header to refetch itself.
const ChangedEvent = "chromeChanged"

// Header decides and renders the header for one request.
func Header(ctx context.Context, in Input) templ.Component {
	return Render(Decide(ctx, in))
}

// Render draws the header from a decided view state.
func Render(state ViewState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := htmlwrite.New(w)
		justify := "justify-end"
		if state.ShowSidebarToggle {
			justify = "justify-end md:justify-between"
		}
		hw.Raw(`<header id="` + ElementID + `" class="`)
		hw.Text("flex h-16 w-full items-center border-b py-2 pr-4 pl-2 " + justify + " " + state.BackgroundClass + " " + state.BorderClass)
		hw.Raw(`" data-color-mode="`)
		hw.Text(string(state.ColorMode))
		hw.Raw(`" hx-get="`)
		hw.URL(state.FragmentURL)
		hw.Raw(`" hx-trigger="` + ChangedEvent + ` from:body" hx-swap="outerHTML">`)

		if state.ShowSidebarToggle {
			renderSidebarToggle(ctx, hw, state)
		}

		hw.Raw(`<div class="flex items-center gap-2">`)
		renderLanguageMenu(ctx, hw, state)
		renderThemeToggle(ctx, hw, state)
		if state.ShowIdentity {
			renderIdentity(hw, state)
		}
		hw.Raw(`</div></header>`)
		return hw.Err()
	})
}

func renderSidebarToggle(ctx context.Context, hw *htmlwrite.Writer, state ViewState) {
	openActionForm(hw, state.SidebarActionURL, state.ReturnTo, "hidden md:flex")
	hw.Raw(`<button type="submit" class="btn btn-ghost btn-square bg-transparent" aria-label="`)
	hw.Text(state.SidebarToggleLabel)
	hw.Raw(`" data-toggle-icon="` + state.ToggleIcon.String() + `">`)
	switch state.ToggleIcon {
	case ToggleIconCustom:
		hw.Component(ctx, state.CustomToggleIcon)
	case ToggleIconCollapse:
		hw.Component(ctx, icons.Use(icons.SidebarCollapse, "size-6"))
	default:
		hw.Component(ctx, icons.Use(icons.SidebarExpand, "size-6"))
	}
	hw.Raw(`</button></form>`)
}

func renderLanguageMenu(ctx context.Context, hw *htmlwrite.Writer, state ViewState) {
	hw.Raw(`<details class="dropdown dropdown-end" id="admin-chrome-language"><summary class="btn btn-ghost btn-square" aria-label="`)
	hw.Text(state.LanguageMenuLabel)
	hw.Raw(`">`)
	hw.Component(ctx, icons.Use(icons.Language, "size-6"))
	hw.Raw(`</summary><ul class="menu dropdown-content z-10 mt-2 w-48 rounded-box bg-base-100 p-2 shadow">`)
	for _, entry := range state.Languages {
		hw.Raw(`<li><a href="`)
		hw.URL(entry.Href)
		hw.Raw(`" hreflang="`)
		hw.Text(entry.Code)
		hw.Raw(`"`)
		if entry.Active {
			hw.Raw(` class="text-green-600" aria-current="true"`)
		}
		hw.Raw(`><img src="`)
		hw.URL(entry.FlagSrc)
		hw.Raw(`" alt="" width="18" height="18" class="size-[18px] rounded-full">`)
		hw.Text(entry.Label)
		hw.Raw(`</a></li>`)
	}
	hw.Raw(`</ul></details>`)
}

func renderThemeToggle(ctx context.Context, hw *htmlwrite.Writer, state ViewState) {
	openActionForm(hw, state.ThemeActionURL, state.ReturnTo, "flex")
	hw.Raw(`<button type="submit" class="btn btn-ghost btn-square" aria-label="`)
	hw.Text(state.ThemeToggleLabel)
	hw.Raw(`" data-theme-icon="` + state.ThemeIcon.String() + `">`)
	if state.ThemeIcon == ThemeIconSun {
		hw.Component(ctx, icons.Use(icons.Sun, "size-6"))
	} else {
		hw.Component(ctx, icons.Use(icons.Moon, "size-6"))
	}
	hw.Raw(`</button></form>`)
}

func renderIdentity(hw *htmlwrite.Writer, state ViewState) {
	hw.Raw(`<div class="flex items-center gap-2" data-identity="true">`)
	if state.IdentityHasName {
		hw.Raw(`<span class="text-sm font-bold">`)
		hw.Text(state.Identity.Name)
		hw.Raw(`</span>`)
	}
	if state.Identity.AvatarURL != "" {
		hw.Raw(`<div class="avatar"><div class="w-8 rounded-full"><img src="`)
		hw.URL(state.Identity.AvatarURL)
		hw.Raw(`" alt="`)
		hw.Text(state.Identity.Name)
		hw.Raw(`"></div></div>`)
	} else {
		hw.Raw(`<div class="avatar avatar-placeholder"><div class="w-8 rounded-full bg-neutral text-neutral-content"><span class="text-xs">`)
		hw.Text(state.Initials)
		hw.Raw(`</span></div></div>`)
	}
	hw.Raw(`</div>`)
}

func openActionForm(hw *htmlwrite.Writer, action string, returnTo string, class string) {
	hw.Raw(`<form method="post" action="`)
	hw.URL(action)
	hw.Raw(`" hx-post="`)
	hw.URL(action)
	hw.Raw(`" hx-swap="none" class="`)
	hw.Text(class)
	hw.Raw(`"><input type="hidden" name="` + routepath.ReturnToParam + `" value="`)
	hw.Text(returnTo)
	hw.Raw(`">`)
}
