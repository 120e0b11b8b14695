package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/client/services"
)

type Panel string

const (
	PanelGenerate  Panel = "generate"
	PanelContacts  Panel = "contacts"
	PanelOccasions Panel = "occasions"
)

var Panels = []Panel{PanelGenerate, PanelContacts, PanelOccasions}

var ErrUnknownPanel = errors.New("unknown panel")

// Router remembers which panel is shown. It only decides what to print.
type Router struct {
	current Panel
}

func NewRouter() *Router {
	return &Router{current: PanelGenerate}
}

func (r *Router) Current() Panel {
	return r.current
}

// Switch shows the named panel. Unknown names leave the current one.
func (r *Router) Switch(name string) error {
	p := Panel(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Panels {
		if p == known {
			r.current = p
			return nil
		}
	}
	return fmt.Errorf("%w: %q (choose generate, contacts or occasions)", ErrUnknownPanel, name)
}

// View is everything a panel can show.
type View struct {
	Identity  *models.Identity
	Contacts  []models.Contact
	Occasions []models.Occasion
	Messages  []models.Message
	Selection services.Selection
}

func (v View) contactName(id string) string {
	for _, c := range v.Contacts {
		if c.ID == id {
			return c.Name
		}
	}
	return "?"
}

func (v View) occasion(id string) (models.Occasion, bool) {
	for _, o := range v.Occasions {
		if o.ID == id {
			return o, true
		}
	}
	return models.Occasion{}, false
}

// Render prints the tab bar and the current panel.
func (r *Router) Render(w io.Writer, v View) {
	tabs := map[Panel]string{
		PanelGenerate:  "Generate Messages",
		PanelContacts:  fmt.Sprintf("Contacts (%d)", len(v.Contacts)),
		PanelOccasions: fmt.Sprintf("Occasions (%d)", len(v.Occasions)),
	}
	bar := make([]string, 0, len(Panels))
	for _, p := range Panels {
		if p == r.current {
			bar = append(bar, "["+tabs[p]+"]")
		} else {
			bar = append(bar, " "+tabs[p]+" ")
		}
	}
	fmt.Fprintln(w, strings.Join(bar, " "))
	fmt.Fprintln(w)

	switch r.current {
	case PanelContacts:
		renderContacts(w, v)
	case PanelOccasions:
		renderOccasions(w, v)
	default:
		renderGenerate(w, v)
	}
}

func renderGenerate(w io.Writer, v View) {
	fmt.Fprintln(w, "Generate Message")
	if len(v.Contacts) == 0 {
		fmt.Fprintln(w, "  No contacts yet. Use 'add' to create one.")
		return
	}

	sel := v.Selection
	contact := "Choose a contact... (select <n>)"
	if sel.ContactID != "" {
		contact = v.contactName(sel.ContactID)
	}
	occasion := "Just checking in"
	if o, ok := v.occasion(sel.OccasionID); ok {
		occasion = fmt.Sprintf("%s (%s)", o.OccasionName, o.Date.Format(models.DateLayout))
	}
	fmt.Fprintf(w, "  Contact:  %s\n", contact)
	fmt.Fprintf(w, "  Occasion: %s\n", occasion)
	fmt.Fprintf(w, "  Style:    %s\n", sel.Style)

	if len(sel.Options) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Choose a message to send (send <n>):")
		for i, m := range sel.Options {
			fmt.Fprintf(w, "  %d. %s\n", i+1, m)
		}
	}

	if len(v.Messages) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Recently sent:")
		for _, m := range v.Messages {
			when := m.CreatedAt
			if m.SentAt != nil {
				when = *m.SentAt
			}
			fmt.Fprintf(w, "  %s  %-16s %s\n", when.Local().Format("2006-01-02 15:04"), v.contactName(m.ContactID), m.MessageText)
		}
	}
}

func renderContacts(w io.Writer, v View) {
	fmt.Fprintln(w, "Contacts")
	if len(v.Contacts) == 0 {
		fmt.Fprintln(w, "  No contacts yet. Use 'add' to create one.")
		return
	}
	for i, c := range v.Contacts {
		fmt.Fprintf(w, "  %d. %s (%s) %s\n", i+1, c.Name, c.RelationshipTier.Label(), c.PhoneNumber)
		if c.Notes != "" {
			fmt.Fprintf(w, "     %s\n", strings.ReplaceAll(c.Notes, "\n", "\n     "))
		}
	}
}

func renderOccasions(w io.Writer, v View) {
	fmt.Fprintln(w, "Occasions")
	if len(v.Occasions) == 0 {
		fmt.Fprintln(w, "  No occasions yet. Use 'addoccasion <contact>' to create one.")
		return
	}
	for i, o := range v.Occasions {
		repeat := ""
		if o.Recurring {
			repeat = ", yearly"
		}
		fmt.Fprintf(w, "  %d. %s  %s for %s (%s%s)\n", i+1, o.Date.Format(models.DateLayout), o.OccasionName,
			v.contactName(o.ContactID), strings.ReplaceAll(string(o.OccasionType), "_", " "), repeat)
	}
}
