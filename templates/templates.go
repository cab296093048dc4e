package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func esc(s string) string { return templ.EscapeString(s) }

// AppPage renders the full quotation workspace page.
func AppPage(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="https://unpkg.com/htmx.org@2.0.4"></script>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<header class="topbar">
<h1>%s</h1>
<span class="version">%s</span>
</header>
<main id="workspace">`, esc(data.Title), esc(data.Title), esc(data.AppVersion)); err != nil {
			return err
		}
		if err := WorkspaceContent(data.Workspace).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>
<div id="toast" class="toast" hidden></div>
<script>
document.body.addEventListener("showToast", function (evt) {
  var el = document.getElementById("toast");
  el.textContent = evt.detail.message;
  el.className = "toast toast-" + evt.detail.type;
  el.hidden = false;
  setTimeout(function () { el.hidden = true; }, 4000);
});
</script>
</body>
</html>`)
		return err
	})
}

// WorkspaceContent renders the swappable workspace: tab bar, active quote
// form and the sidebar summary. Every state-changing control targets this
// component so one round trip refreshes the whole view.
func WorkspaceContent(data WorkspaceData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="workspace" id="workspace-content">`); err != nil {
			return err
		}
		if err := tabBar(data).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="columns"><section class="quote-pane">`); err != nil {
			return err
		}
		if err := quotePane(data).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</section><aside class="sidebar">`); err != nil {
			return err
		}
		if err := sidebar(data).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</aside></div></div>`)
		return err
	})
}

func tabBar(data WorkspaceData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<nav class="tabs">`); err != nil {
			return err
		}
		for _, tab := range data.Tabs {
			class := "tab"
			if tab.Active {
				class += " tab-active"
			}
			label := tab.Label
			if tab.IsDirty {
				label += " *"
			}
			if _, err := fmt.Fprintf(w,
				`<span class="%s"><button hx-post="/quotes/tabs/%s/activate" hx-target="#workspace">%s</button>`+
					`<button class="tab-close" hx-delete="/quotes/tabs/%s" hx-target="#workspace" hx-confirm="Remove this quote?">&times;</button></span>`,
				class, esc(tab.ID), esc(label), esc(tab.ID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w,
			`<button class="tab-add" hx-post="/quotes/tabs" hx-target="#workspace">+</button></nav>`)
		return err
	})
}

func quotePane(data WorkspaceData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !data.CatalogsLoaded {
			if _, err := io.WriteString(w,
				`<p class="warning">Catalog data is not loaded; machine and material selections are unavailable.</p>`); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w,
			`<div class="field"><label for="quoteName">Quote name</label>`+
				`<input id="quoteName" name="value" type="text" value="%s" placeholder="Optional display name"`+
				` hx-post="/quotes/tabs/%s/name" hx-trigger="change" hx-target="#workspace"></div>`,
			esc(data.QuoteName), esc(data.ActiveTabID)); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<div class="field"><label for="serviceType">Service</label>`+
				`<select id="serviceType" name="value" hx-post="/quotes/tabs/%s/service" hx-target="#workspace"`+
				` hx-confirm="Switching service clears this quote's inputs. Continue?">`+
				`<option value="">Select a service...</option>`,
			esc(data.ActiveTabID)); err != nil {
			return err
		}
		for _, opt := range data.ServiceTypes {
			if err := writeOption(w, opt); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select></div>`); err != nil {
			return err
		}

		if !data.HasService {
			_, err := io.WriteString(w, `<p class="hint">Pick a service to start quoting.</p>`)
			return err
		}

		if _, err := io.WriteString(w, `<form class="quote-form">`); err != nil {
			return err
		}
		for _, field := range data.Fields {
			if err := formField(data.ActiveTabID, field).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</form>`); err != nil {
			return err
		}

		if data.CommitError != "" {
			if _, err := fmt.Fprintf(w, `<p class="error">%s</p>`, esc(data.CommitError)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`<button class="commit" hx-post="/quotes/tabs/%s/commit" hx-target="#workspace">Update summary</button>`,
			esc(data.ActiveTabID)); err != nil {
			return err
		}
		if data.IsDirty {
			if _, err := io.WriteString(w,
				`<span class="dirty-note">Unsaved changes; the breakdown below shows the last update.</span>`); err != nil {
				return err
			}
		}

		if len(data.LineItems) > 0 {
			if _, err := io.WriteString(w, `<table class="breakdown"><tbody>`); err != nil {
				return err
			}
			for _, item := range data.LineItems {
				if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td class="amount">%s</td></tr>`,
					esc(item.Label), esc(item.Amount)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tbody></table>`); err != nil {
				return err
			}
		}
		return nil
	})
}

func formField(tabID string, field FieldView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if field.Kind == "section" {
			_, err := fmt.Fprintf(w, `<h3 class="section">%s</h3>`, esc(field.Label))
			return err
		}

		required := ""
		if field.Required {
			required = ` <span class="required">*</span>`
		}
		if _, err := fmt.Fprintf(w, `<div class="field"><label for="%s">%s%s</label>`,
			esc(field.ID), esc(field.Label), required); err != nil {
			return err
		}

		trigger := "change"
		if field.UpdateOnBlur {
			trigger = "blur changed"
		}
		update := fmt.Sprintf(` hx-post="/quotes/tabs/%s/fields/%s" hx-trigger="%s" hx-target="#workspace"`,
			esc(tabID), esc(field.ID), trigger)

		switch field.Kind {
		case "select":
			if _, err := fmt.Fprintf(w, `<select id="%s" name="value"%s><option value="">Select...</option>`,
				esc(field.ID), update); err != nil {
				return err
			}
			for _, opt := range field.Options {
				if err := writeOption(w, opt); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</select>`); err != nil {
				return err
			}
		case "checkbox":
			checked := ""
			if field.Checked {
				checked = " checked"
			}
			if _, err := fmt.Fprintf(w,
				`<input id="%s" name="value" type="checkbox" value="true"%s%s>`,
				esc(field.ID), checked, update); err != nil {
				return err
			}
		case "textarea":
			if _, err := fmt.Fprintf(w,
				`<textarea id="%s" name="value" placeholder="%s"%s>%s</textarea>`,
				esc(field.ID), esc(field.Placeholder), update, esc(field.Value)); err != nil {
				return err
			}
		case "number":
			if _, err := fmt.Fprintf(w,
				`<input id="%s" name="value" type="number" step="any" value="%s" placeholder="%s"%s>`,
				esc(field.ID), esc(field.Value), esc(field.Placeholder), update); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w,
				`<input id="%s" name="value" type="text" value="%s" placeholder="%s"%s>`,
				esc(field.ID), esc(field.Value), esc(field.Placeholder), update); err != nil {
				return err
			}
		}

		if field.Error != "" {
			if _, err := fmt.Fprintf(w, `<span class="field-error">%s</span>`, esc(field.Error)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func sidebar(data WorkspaceData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h2>Global summary</h2>`); err != nil {
			return err
		}
		if len(data.SummaryRows) == 0 {
			if _, err := io.WriteString(w, `<p class="hint">No priced quotes yet.</p>`); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<table class="summary"><tbody>`); err != nil {
				return err
			}
			for _, row := range data.SummaryRows {
				class := ""
				if row.Active {
					class = ` class="summary-active"`
				}
				if _, err := fmt.Fprintf(w,
					`<tr%s><td><button hx-post="/quotes/tabs/%s/activate" hx-target="#workspace">%s</button></td><td class="amount">%s</td></tr>`,
					class, esc(row.TabID), esc(row.Label), esc(row.Amount)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w,
				`</tbody><tfoot><tr><td>Grand total</td><td class="amount">%s</td></tr></tfoot></table>`,
				esc(data.GrandTotal)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<h2>Export</h2>
<div class="export-actions">
<a href="/quotes/export/json" download="quotes.json">Download JSON</a>
<a href="/quotes/export/pdf">Download PDF</a>
<a href="/quotes/export/excel">Download Excel</a>
</div>
<h2>Import</h2>
<form hx-post="/quotes/import" hx-target="#workspace">
<textarea name="payload" rows="5" placeholder="Paste an exported quotes JSON here"></textarea>
<button type="submit" hx-confirm="Importing replaces all current quotes. Continue?">Import quotes</button>
</form>
<button class="danger" hx-post="/quotes/clear" hx-target="#workspace" hx-confirm="Remove all quotes and start over?">Clear all quotes</button>`)
		return err
	})
}

func writeOption(w io.Writer, opt OptionView) error {
	selected := ""
	if opt.Selected {
		selected = " selected"
	}
	_, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(opt.Value), selected, esc(opt.Label))
	return err
}
