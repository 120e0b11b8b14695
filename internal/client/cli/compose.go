package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/client/services"
)

// Select chooses the contact to write to and lists their occasions.
func (a *App) Select(ctx context.Context, args []string) error {
	c, err := a.resolveContact(args)
	if err != nil {
		return err
	}
	if err := a.composer.SelectContact(c.ID); err != nil {
		return err
	}
	_ = a.router.Switch(string(PanelGenerate))
	a.render()

	if occ := a.state.OccasionsFor(c.ID); len(occ) > 0 {
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "Occasions for %s (occasion <n>, or none):\n", c.Name)
		for i, o := range occ {
			fmt.Fprintf(a.out, "  %d. %s (%s)\n", i+1, o.OccasionName, o.Date.Format(models.DateLayout))
		}
	}
	return nil
}

// Occasion picks one of the selected contact's occasions by its position in
// the list printed by Select. "none" goes back to just checking in.
func (a *App) Occasion(ctx context.Context, args []string) error {
	sel := a.composer.Selection()
	if sel.ContactID == "" {
		return services.ErrNoContactSelected
	}
	if len(args) == 1 && strings.EqualFold(args[0], "none") {
		return a.composer.SelectOccasion("")
	}
	o, err := a.resolveOccasion(a.state.OccasionsFor(sel.ContactID), args)
	if err != nil {
		return err
	}
	if err := a.composer.SelectOccasion(o.ID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Occasion: %s\n", o.OccasionName)
	return nil
}

func (a *App) Style(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Style: %s\n", a.composer.Selection().Style)
		return nil
	}
	if err := a.composer.SelectStyle(models.MessageStyle(strings.ToLower(args[0]))); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Style: %s\n", a.composer.Selection().Style)
	return nil
}

// Generate asks for three options for the current selection.
func (a *App) Generate(ctx context.Context) error {
	sel := a.composer.Selection()
	if sel.ContactID == "" {
		return services.ErrNoContactSelected
	}

	fmt.Fprintln(a.out, "Generating...")
	gen, err := a.composer.Generate(ctx, services.GenerateRequest{
		ContactID:  sel.ContactID,
		OccasionID: sel.OccasionID,
		Style:      sel.Style,
	})
	if err != nil {
		return err
	}
	a.logger.Debug(ctx, "options generated", "source", string(gen.Source), "count", len(gen.Messages))

	_ = a.router.Switch(string(PanelGenerate))
	a.render()
	return nil
}

// Send logs option n as sent, copies it to the clipboard and tells the user
// where to send it.
func (a *App) Send(ctx context.Context, args []string) error {
	sel := a.composer.Selection()
	if sel.ContactID == "" {
		return services.ErrNoContactSelected
	}
	if len(sel.Options) == 0 {
		return &services.ValidationError{Field: "message", Reason: "nothing to send, run generate first"}
	}
	if len(args) != 1 {
		return &services.ValidationError{Field: "message", Reason: fmt.Sprintf("choose 1-%d", len(sel.Options))}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(sel.Options) {
		return &services.ValidationError{Field: "message", Reason: fmt.Sprintf("choose 1-%d", len(sel.Options))}
	}
	text := sel.Options[n-1]

	res, err := a.composer.Send(ctx, services.SendRequest{Text: text})
	if err != nil {
		return err
	}

	if res.ClipboardErr != nil {
		fmt.Fprintf(a.out, "Message saved, but copying to the clipboard failed (%v). Send this to %s:\n%s\n",
			res.ClipboardErr, res.PhoneNumber, text)
	} else {
		fmt.Fprintf(a.out, "Message copied to clipboard! Now open your messaging app and send to %s\n", res.PhoneNumber)
	}
	if res.ReloadErr != nil {
		fmt.Fprintln(a.out, describe(res.ReloadErr))
	}
	a.render()
	return nil
}
