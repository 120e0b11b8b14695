package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/client/services"
)

// parseTier accepts a position from the printed list or a tier name with
// spaces or underscores. Empty input keeps current.
func parseTier(s string, current models.RelationshipTier) models.RelationshipTier {
	s = strings.TrimSpace(s)
	if s == "" {
		return current
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(models.Tiers) {
		return models.Tiers[n-1]
	}
	return models.RelationshipTier(strings.ReplaceAll(strings.ToLower(s), " ", "_"))
}

func tierPrompt() string {
	names := make([]string, len(models.Tiers))
	for i, t := range models.Tiers {
		names[i] = fmt.Sprintf("%d) %s", i+1, t.Label())
	}
	return "Relationship: " + strings.Join(names, ", ")
}

func (a *App) fillContactForm(form services.ContactForm) (services.ContactForm, error) {
	var err error
	if form.Name, err = GetTextWithDefault(a.reader, "Name", form.Name, a.out); err != nil {
		return form, err
	}
	if form.PhoneNumber, err = GetTextWithDefault(a.reader, "Phone number", form.PhoneNumber, a.out); err != nil {
		return form, err
	}
	tier, err := GetTextWithDefault(a.reader, tierPrompt(), form.RelationshipTier.Label(), a.out)
	if err != nil {
		return form, err
	}
	form.RelationshipTier = parseTier(tier, form.RelationshipTier)
	if form.Notes, err = GetTextWithDefault(a.reader, "Notes (optional)", form.Notes, a.out); err != nil {
		return form, err
	}
	return form, nil
}

func (a *App) saveContact(ctx context.Context, form services.ContactForm, id string) error {
	saved, err := a.contacts.Save(ctx, form, id)
	if saved == nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s.\n", saved.Name)
	if err != nil {
		fmt.Fprintln(a.out, describe(err))
	}
	_ = a.router.Switch(string(PanelContacts))
	a.render()
	return nil
}

// AddContact prompts for a new contact. The tier defaults to friends.
func (a *App) AddContact(ctx context.Context) error {
	a.contacts.Open()
	_, _, form := a.contacts.Form()

	form, err := a.fillContactForm(form)
	if err != nil {
		a.contacts.Close()
		return err
	}
	return a.saveContact(ctx, form, "")
}

// EditContact prompts for new values; empty answers keep the old ones.
func (a *App) EditContact(ctx context.Context, args []string) error {
	c, err := a.resolveContact(args)
	if err != nil {
		return err
	}
	if err := a.contacts.Edit(c.ID); err != nil {
		return err
	}
	_, id, form := a.contacts.Form()

	form, err = a.fillContactForm(form)
	if err != nil {
		a.contacts.Close()
		return err
	}
	return a.saveContact(ctx, form, id)
}

// DeleteContact removes a contact after asking. Its occasions and messages
// go with it.
func (a *App) DeleteContact(ctx context.Context, args []string) error {
	c, err := a.resolveContact(args)
	if err != nil {
		return err
	}
	if err := a.contacts.Delete(ctx, c.ID, a.confirm); err != nil {
		return err
	}
	if a.composer.Selection().ContactID == c.ID {
		_ = a.composer.SelectContact("")
	}
	fmt.Fprintf(a.out, "Deleted %s.\n", c.Name)
	a.render()
	return nil
}
