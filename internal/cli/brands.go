package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mssbox/blindboxctl/internal/models"
)

// brandForm carries collected brand fields across a rejected submission.
type brandForm struct {
	ID          int64
	Name        string
	Description string
}

// Brands renders the brand list. Any authenticated user may read it (the
// blind-box form needs it too); management stays behind the admin gate.
func (a *App) Brands(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		a.navigateToLogin()
		return nil
	}

	resp, err := a.api.Brands(ctx)
	if err != nil {
		a.notifyFailure(err, "Failed to load brands")
		return nil
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Failed to load brands"
		}
		a.state.Notify(msg, models.NotifyError)
		return nil
	}

	a.renderBrands(resp.Data)
	return nil
}

func (a *App) renderBrands(brands []models.Brand) {
	if len(brands) == 0 {
		printlnFn("No brands found.")
		if a.state.IsAdmin() {
			printlnFn("Use 'addbrand' to create your first brand!")
		}
		return
	}
	for _, b := range brands {
		desc := b.Description
		if desc == "" {
			desc = "(no description)"
		}
		printlnFn(fmt.Sprintf("%4d  %-24s %s", b.BrandID, b.Name, desc))
	}
}

// AddBrand collects a brand form and submits it. On a rejected submission
// the form values are kept and offered as defaults on the next attempt.
func (a *App) AddBrand(ctx context.Context) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	var prefill brandForm
	if a.pendingBrand != nil {
		prefill = *a.pendingBrand
	}

	form, err := a.promptBrandForm(prefill)
	if err != nil {
		return err
	}
	if form.Name == "" {
		printlnFn("Brand name is required.")
		a.pendingBrand = &form
		return nil
	}

	resp, err := a.api.CreateBrand(ctx, models.BrandInput{Name: form.Name, Description: form.Description})
	if err != nil {
		a.notifyFailure(err, "Operation failed")
		a.pendingBrand = &form
		return nil
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Operation failed"
		}
		a.state.Notify(msg, models.NotifyError)
		a.pendingBrand = &form
		return nil
	}

	a.state.Notify("Brand created successfully!", models.NotifySuccess)
	a.pendingBrand = nil
	return a.Brands(ctx)
}

// EditBrand updates an existing brand, prefilling the form from the current
// server copy.
func (a *App) EditBrand(ctx context.Context) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	raw, err := getSimpleText(a.reader, "Enter brand id to edit", os.Stdout)
	if err != nil {
		return err
	}
	id, ok := parseID(raw)
	if !ok {
		printlnFn("Invalid id.")
		return nil
	}

	prefill := brandForm{ID: id}
	if a.pendingBrand != nil && a.pendingBrand.ID == id {
		prefill = *a.pendingBrand
	} else if listed, err := a.api.Brands(ctx); err == nil && listed.Success {
		for _, b := range listed.Data {
			if b.BrandID == id {
				prefill.Name = b.Name
				prefill.Description = b.Description
			}
		}
	}

	form, err := a.promptBrandForm(prefill)
	if err != nil {
		return err
	}
	form.ID = id
	if form.Name == "" {
		printlnFn("Brand name is required.")
		a.pendingBrand = &form
		return nil
	}

	resp, err := a.api.UpdateBrand(ctx, id, models.BrandInput{Name: form.Name, Description: form.Description})
	if err != nil {
		a.notifyFailure(err, "Operation failed")
		a.pendingBrand = &form
		return nil
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Operation failed"
		}
		a.state.Notify(msg, models.NotifyError)
		a.pendingBrand = &form
		return nil
	}

	a.state.Notify("Brand updated successfully!", models.NotifySuccess)
	a.pendingBrand = nil
	return a.Brands(ctx)
}

// DeleteBrand removes a brand after an explicit confirmation.
func (a *App) DeleteBrand(ctx context.Context) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	raw, err := getSimpleText(a.reader, "Enter brand id to delete", os.Stdout)
	if err != nil {
		return err
	}
	id, ok := parseID(raw)
	if !ok {
		printlnFn("Invalid id.")
		return nil
	}

	confirmed, err := GetConfirm(a.reader, "Are you sure you want to delete this brand?", os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	resp, err := a.api.DeleteBrand(ctx, id)
	if err != nil {
		a.notifyFailure(err, "Failed to delete brand")
		return nil
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Delete failed"
		}
		a.state.Notify(msg, models.NotifyError)
		return nil
	}

	a.state.Notify("Brand deleted successfully!", models.NotifySuccess)
	return a.Brands(ctx)
}

func (a *App) promptBrandForm(prefill brandForm) (brandForm, error) {
	name, err := GetTextDefault(a.reader, "Brand name", prefill.Name, os.Stdout)
	if err != nil {
		return brandForm{}, err
	}
	desc, err := GetTextDefault(a.reader, "Description (optional)", prefill.Description, os.Stdout)
	if err != nil {
		return brandForm{}, err
	}
	return brandForm{ID: prefill.ID, Name: name, Description: desc}, nil
}

