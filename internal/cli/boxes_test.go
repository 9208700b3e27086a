package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mssbox/blindboxctl/internal/api"
	"github.com/mssbox/blindboxctl/internal/models"
)

func TestValidateBoxForm(t *testing.T) {
	valid := boxForm{
		Name:        "Labubu Macaron Series",
		CategoryID:  "1",
		BrandID:     "2",
		Price:       "59.90",
		Stock:       "50",
		ReleaseDate: "2025-03-01",
	}

	tests := []struct {
		name     string
		mutate   func(f *boxForm)
		expected string
	}{
		{"valid", func(f *boxForm) {}, ""},
		{"short name", func(f *boxForm) { f.Name = "Labubu" }, "Name must be at least 10 characters long"},
		{"missing category", func(f *boxForm) { f.CategoryID = "" }, "Please select category and brand"},
		{"missing brand", func(f *boxForm) { f.BrandID = "" }, "Please select category and brand"},
		{"non-numeric brand", func(f *boxForm) { f.BrandID = "abc" }, "Please select category and brand"},
		{"zero price", func(f *boxForm) { f.Price = "0" }, "Price must be greater than 0"},
		{"negative price", func(f *boxForm) { f.Price = "-5" }, "Price must be greater than 0"},
		{"non-numeric price", func(f *boxForm) { f.Price = "cheap" }, "Price must be greater than 0"},
		{"zero stock", func(f *boxForm) { f.Stock = "0" }, "Stock must be between 1 and 100"},
		{"stock above cap", func(f *boxForm) { f.Stock = "101" }, "Stock must be between 1 and 100"},
		{"missing release date", func(f *boxForm) { f.ReleaseDate = "" }, "Release date is required"},
		{"malformed release date", func(f *boxForm) { f.ReleaseDate = "03/01/2025" }, "Release date must be in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			input, msg := validateBoxForm(f)
			assert.Equal(t, tt.expected, msg)
			if tt.expected == "" {
				assert.Equal(t, models.BlindBoxInput{
					Name:        "Labubu Macaron Series",
					CategoryID:  1,
					BrandID:     2,
					Price:       59.90,
					Stock:       50,
					ReleaseDate: "2025-03-01",
				}, input)
			}
		})
	}
}

func TestBoxes_StandardUserSeesReadOnlyNotice(t *testing.T) {
	f := newFakeAPI()
	f.boxesResp = api.Envelope[[]models.BlindBox]{
		Success: true,
		Data:    []models.BlindBox{{BlindBoxID: 1, Name: "Labubu Macaron Series", Price: 59.9, Stock: 10}},
	}
	a, container, _ := newTestApp(t, f, "")
	out := stubOutput(t)
	loginAs(t, container, false)

	require.NoError(t, a.Boxes(context.Background()))

	assert.True(t, outputContains(*out, "viewing as a regular user"))
	assert.True(t, outputContains(*out, "Labubu Macaron Series"))
}

func TestBoxes_AdminSeesNoNotice(t *testing.T) {
	f := newFakeAPI()
	a, container, _ := newTestApp(t, f, "")
	out := stubOutput(t)
	loginAs(t, container, true)

	require.NoError(t, a.Boxes(context.Background()))

	assert.False(t, outputContains(*out, "viewing as a regular user"))
	assert.True(t, outputContains(*out, "No blind boxes found."))
	assert.True(t, outputContains(*out, "Use 'addbox' to create your first blind box!"))
}

func TestBoxes_SortedByID(t *testing.T) {
	f := newFakeAPI()
	f.boxesResp = api.Envelope[[]models.BlindBox]{
		Success: true,
		Data: []models.BlindBox{
			{BlindBoxID: 3, Name: "Skullpanda Dream Series"},
			{BlindBoxID: 1, Name: "Labubu Macaron Series"},
		},
	}
	a, container, _ := newTestApp(t, f, "")
	out := stubOutput(t)
	loginAs(t, container, true)

	require.NoError(t, a.Boxes(context.Background()))

	var first, second int
	for i, l := range *out {
		switch {
		case strings.Contains(l, "Labubu"):
			first = i
		case strings.Contains(l, "Skullpanda"):
			second = i
		}
	}
	assert.Less(t, first, second)
}

func TestAddBox_ValidationRunsBeforeNetwork(t *testing.T) {
	f := newFakeAPI()
	// Name too short; the rest of the form is fine.
	a, container, _ := newTestApp(t, f, "Labubu\n1\n2\n59.90\n50\n2025-03-01\n")
	stubOutput(t)
	loginAs(t, container, true)

	require.NoError(t, a.AddBox(context.Background()))

	assert.Equal(t, 0, f.countCalls("CreateBlindBox"))
	n, ok := lastNotification(container)
	require.True(t, ok)
	assert.Equal(t, "Name must be at least 10 characters long", n.Message)
	assert.Equal(t, models.NotifyError, n.Kind)

	// The rejected values stay around for the retry.
	require.NotNil(t, a.pendingBox)
	assert.Equal(t, "Labubu", a.pendingBox.Name)
	assert.Equal(t, "50", a.pendingBox.Stock)
}

func TestAddBox_SuccessSubmitsTypedPayload(t *testing.T) {
	f := newFakeAPI()
	a, container, _ := newTestApp(t, f, "Labubu Macaron Series\n1\n2\n59.90\n50\n2025-03-01\n")
	stubOutput(t)
	loginAs(t, container, true)

	require.NoError(t, a.AddBox(context.Background()))

	assert.Equal(t, 1, f.countCalls("CreateBlindBox"))
	assert.Equal(t, models.BlindBoxInput{
		Name:        "Labubu Macaron Series",
		CategoryID:  1,
		BrandID:     2,
		Price:       59.90,
		Stock:       50,
		ReleaseDate: "2025-03-01",
	}, f.lastBoxInput)
	assert.Nil(t, a.pendingBox)

	n, ok := lastNotification(container)
	require.True(t, ok)
	assert.Equal(t, "BlindBox created successfully!", n.Message)
}

func TestEditBox_MapsListedNamesBackToIDs(t *testing.T) {
	f := newFakeAPI()
	f.boxesResp = api.Envelope[[]models.BlindBox]{
		Success: true,
		Data: []models.BlindBox{{
			BlindBoxID:   5,
			Name:         "Labubu Macaron Series",
			CategoryName: "Plush",
			BrandName:    "Pop Mart",
			Price:        59.9,
			Stock:        50,
			ReleaseDate:  "2025-03-01",
		}},
	}
	f.catsResp = api.Envelope[[]models.Category]{
		Success: true,
		Data:    []models.Category{{CategoryID: 3, CategoryName: "Plush"}},
	}
	f.brandsResp = api.Envelope[[]models.Brand]{
		Success: true,
		Data:    []models.Brand{{BrandID: 9, Name: "Pop Mart"}},
	}

	// Enter on every prompt keeps the server-derived defaults.
	a, container, _ := newTestApp(t, f, "\n\n\n\n\n\n")
	stubOutput(t)
	stubTextInput(t, "5")
	loginAs(t, container, true)

	require.NoError(t, a.EditBox(context.Background()))

	assert.Equal(t, 1, f.countCalls("UpdateBlindBox"))
	assert.Equal(t, models.BlindBoxInput{
		Name:        "Labubu Macaron Series",
		CategoryID:  3,
		BrandID:     9,
		Price:       59.9,
		Stock:       50,
		ReleaseDate: "2025-03-01",
	}, f.lastBoxInput)
}

func TestDeleteBox_Confirmed(t *testing.T) {
	f := newFakeAPI()
	a, container, _ := newTestApp(t, f, "yes\n")
	stubOutput(t)
	stubTextInput(t, "5")
	loginAs(t, container, true)

	require.NoError(t, a.DeleteBox(context.Background()))

	assert.Equal(t, 1, f.countCalls("DeleteBlindBox"))
	assert.Equal(t, int64(5), f.lastDeletedID)
	n, ok := lastNotification(container)
	require.True(t, ok)
	assert.Equal(t, "BlindBox deleted successfully!", n.Message)
}

func TestBoxes_AggregatedLoadFailure(t *testing.T) {
	f := newFakeAPI()
	f.boxesErr = assert.AnError
	a, container, _ := newTestApp(t, f, "")
	stubOutput(t)
	loginAs(t, container, false)

	require.NoError(t, a.Boxes(context.Background()))

	n, ok := lastNotification(container)
	require.True(t, ok)
	assert.Equal(t, assert.AnError.Error(), n.Message)
	assert.Equal(t, models.NotifyError, n.Kind)
}
