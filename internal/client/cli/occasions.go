package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/client/services"
)

func parseOccasionType(s string, current models.OccasionType) models.OccasionType {
	s = strings.TrimSpace(s)
	if s == "" {
		return current
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(models.OccasionTypes) {
		return models.OccasionTypes[n-1]
	}
	return models.OccasionType(strings.ReplaceAll(strings.ToLower(s), " ", "_"))
}

func occasionTypePrompt() string {
	names := make([]string, len(models.OccasionTypes))
	for i, t := range models.OccasionTypes {
		names[i] = fmt.Sprintf("%d) %s", i+1, strings.ReplaceAll(string(t), "_", " "))
	}
	return "Type: " + strings.Join(names, ", ")
}

func (a *App) fillOccasionForm(form services.OccasionForm) (services.OccasionForm, error) {
	typ, err := GetTextWithDefault(a.reader, occasionTypePrompt(), strings.ReplaceAll(string(form.OccasionType), "_", " "), a.out)
	if err != nil {
		return form, err
	}
	form.OccasionType = parseOccasionType(typ, form.OccasionType)
	if form.OccasionName, err = GetTextWithDefault(a.reader, "Name (e.g. Birthday)", form.OccasionName, a.out); err != nil {
		return form, err
	}
	if form.Date, err = GetTextWithDefault(a.reader, "Date (YYYY-MM-DD)", form.Date, a.out); err != nil {
		return form, err
	}
	repeat := "n"
	if form.Recurring {
		repeat = "y"
	}
	if repeat, err = GetTextWithDefault(a.reader, "Every year? (y/n)", repeat, a.out); err != nil {
		return form, err
	}
	switch strings.ToLower(repeat) {
	case "y", "yes":
		form.Recurring = true
	case "n", "no":
		form.Recurring = false
	}
	return form, nil
}

func (a *App) saveOccasion(ctx context.Context, form services.OccasionForm, id string) error {
	saved, err := a.occasions.Save(ctx, form, id)
	if saved == nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s on %s.\n", saved.OccasionName, saved.Date.Format(models.DateLayout))
	if err != nil {
		fmt.Fprintln(a.out, describe(err))
	}
	_ = a.router.Switch(string(PanelOccasions))
	a.render()
	return nil
}

// AddOccasion prompts for a new occasion of the given contact.
func (a *App) AddOccasion(ctx context.Context, args []string) error {
	c, err := a.resolveContact(args)
	if err != nil {
		return err
	}
	a.occasions.Open(c.ID)
	_, _, form := a.occasions.Form()

	fmt.Fprintf(a.out, "New occasion for %s\n", c.Name)
	form, err = a.fillOccasionForm(form)
	if err != nil {
		a.occasions.Close()
		return err
	}
	return a.saveOccasion(ctx, form, "")
}

func (a *App) EditOccasion(ctx context.Context, args []string) error {
	o, err := a.resolveOccasion(a.state.Occasions(), args)
	if err != nil {
		return err
	}
	if err := a.occasions.Edit(o.ID); err != nil {
		return err
	}
	_, id, form := a.occasions.Form()

	form, err = a.fillOccasionForm(form)
	if err != nil {
		a.occasions.Close()
		return err
	}
	return a.saveOccasion(ctx, form, id)
}

func (a *App) DeleteOccasion(ctx context.Context, args []string) error {
	o, err := a.resolveOccasion(a.state.Occasions(), args)
	if err != nil {
		return err
	}
	if err := a.occasions.Delete(ctx, o.ID, a.confirm); err != nil {
		return err
	}
	if a.composer.Selection().OccasionID == o.ID {
		_ = a.composer.SelectOccasion("")
	}
	fmt.Fprintf(a.out, "Deleted %s.\n", o.OccasionName)
	a.render()
	return nil
}
