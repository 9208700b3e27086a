package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mssbox/blindboxctl/internal/models"
)

// boxForm carries collected blind-box fields across a rejected submission.
// Values stay as entered (strings) so the form can be re-offered verbatim.
type boxForm struct {
	ID          int64
	Name        string
	CategoryID  string
	BrandID     string
	Price       string
	Stock       string
	ReleaseDate string
}

// loadBoxData fetches blind boxes, categories and brands in parallel. The
// view needs all three before rendering, so this is an "all complete" join:
// completion order is unspecified and a failure in any fetch surfaces as a
// single aggregated failure.
func (a *App) loadBoxData(ctx context.Context) ([]models.BlindBox, []models.Category, []models.Brand, error) {
	var (
		boxes  []models.BlindBox
		cats   []models.Category
		brands []models.Brand
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := a.api.BlindBoxes(gctx)
		if err != nil {
			return err
		}
		if resp.Success {
			boxes = resp.Data
		}
		return nil
	})
	g.Go(func() error {
		resp, err := a.api.Categories(gctx)
		if err != nil {
			return err
		}
		if resp.Success {
			cats = resp.Data
		}
		return nil
	})
	g.Go(func() error {
		resp, err := a.api.Brands(gctx)
		if err != nil {
			return err
		}
		if resp.Success {
			brands = resp.Data
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	sort.Slice(boxes, func(i, j int) bool { return boxes[i].BlindBoxID < boxes[j].BlindBoxID })
	return boxes, cats, brands, nil
}

// Boxes renders the blind-box list for any authenticated user.
func (a *App) Boxes(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		a.navigateToLogin()
		return nil
	}

	boxes, _, _, err := a.loadBoxData(ctx)
	if err != nil {
		a.notifyFailure(err, "Failed to load data")
		return nil
	}

	if !a.state.IsAdmin() {
		printlnFn("You are viewing as a regular user. Only admins can create, edit, or delete blind boxes.")
	}

	if len(boxes) == 0 {
		printlnFn("No blind boxes found.")
		if a.state.IsAdmin() {
			printlnFn("Use 'addbox' to create your first blind box!")
		}
		return nil
	}

	for _, b := range boxes {
		printlnFn(fmt.Sprintf("%4d  %-28s %-12s %-12s %8.2f  stock %3d  %s",
			b.BlindBoxID, b.Name, b.CategoryName, b.BrandName, b.Price, b.Stock, b.ReleaseDate))
	}
	return nil
}

// AddBox collects a blind-box form and submits it. Rejected submissions keep
// the entered values as defaults for the next attempt.
func (a *App) AddBox(ctx context.Context) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	_, cats, brands, err := a.loadBoxData(ctx)
	if err != nil {
		a.notifyFailure(err, "Failed to load data")
		return nil
	}

	var prefill boxForm
	if a.pendingBox != nil && a.pendingBox.ID == 0 {
		prefill = *a.pendingBox
	}

	form, err := a.promptBoxForm(prefill, cats, brands)
	if err != nil {
		return err
	}

	input, invalid := validateBoxForm(form)
	if invalid != "" {
		a.state.Notify(invalid, models.NotifyError)
		a.pendingBox = &form
		return nil
	}

	resp, err := a.api.CreateBlindBox(ctx, input)
	if err != nil {
		a.notifyFailure(err, "Operation failed")
		a.pendingBox = &form
		return nil
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Operation failed"
		}
		a.state.Notify(msg, models.NotifyError)
		a.pendingBox = &form
		return nil
	}

	a.state.Notify("BlindBox created successfully!", models.NotifySuccess)
	a.pendingBox = nil
	return a.Boxes(ctx)
}

// EditBox updates an existing blind box. The form is prefilled from the
// server copy, mapping the listed category/brand names back to ids.
func (a *App) EditBox(ctx context.Context) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	raw, err := getSimpleText(a.reader, "Enter blind box id to edit", os.Stdout)
	if err != nil {
		return err
	}
	id, ok := parseID(raw)
	if !ok {
		printlnFn("Invalid id.")
		return nil
	}

	boxes, cats, brands, err := a.loadBoxData(ctx)
	if err != nil {
		a.notifyFailure(err, "Failed to load data")
		return nil
	}

	prefill := boxForm{ID: id}
	if a.pendingBox != nil && a.pendingBox.ID == id {
		prefill = *a.pendingBox
	} else {
		for _, b := range boxes {
			if b.BlindBoxID != id {
				continue
			}
			prefill.Name = b.Name
			prefill.Price = strconv.FormatFloat(b.Price, 'f', -1, 64)
			prefill.Stock = strconv.Itoa(b.Stock)
			prefill.ReleaseDate = b.ReleaseDate
			for _, c := range cats {
				if c.CategoryName == b.CategoryName {
					prefill.CategoryID = strconv.FormatInt(c.CategoryID, 10)
				}
			}
			for _, br := range brands {
				if br.Name == b.BrandName {
					prefill.BrandID = strconv.FormatInt(br.BrandID, 10)
				}
			}
		}
	}

	form, err := a.promptBoxForm(prefill, cats, brands)
	if err != nil {
		return err
	}
	form.ID = id

	input, invalid := validateBoxForm(form)
	if invalid != "" {
		a.state.Notify(invalid, models.NotifyError)
		a.pendingBox = &form
		return nil
	}

	resp, err := a.api.UpdateBlindBox(ctx, id, input)
	if err != nil {
		a.notifyFailure(err, "Operation failed")
		a.pendingBox = &form
		return nil
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Operation failed"
		}
		a.state.Notify(msg, models.NotifyError)
		a.pendingBox = &form
		return nil
	}

	a.state.Notify("BlindBox updated successfully!", models.NotifySuccess)
	a.pendingBox = nil
	return a.Boxes(ctx)
}

// DeleteBox removes a blind box after an explicit confirmation.
func (a *App) DeleteBox(ctx context.Context) error {
	if !a.requireAdmin(ctx) {
		return nil
	}

	raw, err := getSimpleText(a.reader, "Enter blind box id to delete", os.Stdout)
	if err != nil {
		return err
	}
	id, ok := parseID(raw)
	if !ok {
		printlnFn("Invalid id.")
		return nil
	}

	confirmed, err := GetConfirm(a.reader, "Are you sure you want to delete this blind box?", os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	resp, err := a.api.DeleteBlindBox(ctx, id)
	if err != nil {
		a.notifyFailure(err, "Failed to delete blind box")
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

	a.state.Notify("BlindBox deleted successfully!", models.NotifySuccess)
	return a.Boxes(ctx)
}

func (a *App) promptBoxForm(prefill boxForm, cats []models.Category, brands []models.Brand) (boxForm, error) {
	name, err := GetTextDefault(a.reader, "Name (min 10 characters)", prefill.Name, os.Stdout)
	if err != nil {
		return boxForm{}, err
	}

	if len(cats) > 0 {
		printlnFn("Categories:")
		for _, c := range cats {
			printlnFn(fmt.Sprintf("  %d) %s", c.CategoryID, c.CategoryName))
		}
	}
	catID, err := GetTextDefault(a.reader, "Category id", prefill.CategoryID, os.Stdout)
	if err != nil {
		return boxForm{}, err
	}

	if len(brands) > 0 {
		printlnFn("Brands:")
		for _, b := range brands {
			printlnFn(fmt.Sprintf("  %d) %s", b.BrandID, b.Name))
		}
	}
	brandID, err := GetTextDefault(a.reader, "Brand id", prefill.BrandID, os.Stdout)
	if err != nil {
		return boxForm{}, err
	}

	price, err := GetTextDefault(a.reader, "Price", prefill.Price, os.Stdout)
	if err != nil {
		return boxForm{}, err
	}
	stock, err := GetTextDefault(a.reader, "Stock (1-100)", prefill.Stock, os.Stdout)
	if err != nil {
		return boxForm{}, err
	}
	release, err := GetTextDefault(a.reader, "Release date (YYYY-MM-DD)", prefill.ReleaseDate, os.Stdout)
	if err != nil {
		return boxForm{}, err
	}

	return boxForm{
		ID:          prefill.ID,
		Name:        name,
		CategoryID:  catID,
		BrandID:     brandID,
		Price:       price,
		Stock:       stock,
		ReleaseDate: release,
	}, nil
}

// validateBoxForm applies the field checks before any network call. It
// returns the typed payload, or the message for the first failing field.
func validateBoxForm(f boxForm) (models.BlindBoxInput, string) {
	var zero models.BlindBoxInput

	if len(f.Name) < 10 {
		return zero, "Name must be at least 10 characters long"
	}

	catID, errCat := strconv.ParseInt(f.CategoryID, 10, 64)
	brandID, errBrand := strconv.ParseInt(f.BrandID, 10, 64)
	if f.CategoryID == "" || f.BrandID == "" || errCat != nil || errBrand != nil || catID <= 0 || brandID <= 0 {
		return zero, "Please select category and brand"
	}

	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil || price <= 0 {
		return zero, "Price must be greater than 0"
	}

	stock, err := strconv.Atoi(f.Stock)
	if err != nil || stock < 1 || stock > 100 {
		return zero, "Stock must be between 1 and 100"
	}

	if f.ReleaseDate == "" {
		return zero, "Release date is required"
	}
	if _, err := time.Parse("2006-01-02", f.ReleaseDate); err != nil {
		return zero, "Release date must be in YYYY-MM-DD format"
	}

	return models.BlindBoxInput{
		Name:        f.Name,
		CategoryID:  catID,
		BrandID:     brandID,
		Price:       price,
		Stock:       stock,
		ReleaseDate: f.ReleaseDate,
	}, ""
}
