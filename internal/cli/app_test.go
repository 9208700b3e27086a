package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mssbox/blindboxctl/internal/api"
	"github.com/mssbox/blindboxctl/internal/logging"
	"github.com/mssbox/blindboxctl/internal/models"
	"github.com/mssbox/blindboxctl/internal/state"
	"github.com/mssbox/blindboxctl/internal/storage"
)

// fakeAPI satisfies api.API with canned envelopes and records every call.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	loginResp api.Envelope[api.LoginData]
	loginErr  error

	brandsResp api.Envelope[[]models.Brand]
	brandsErr  error
	boxesResp  api.Envelope[[]models.BlindBox]
	boxesErr   error
	catsResp   api.Envelope[[]models.Category]

	createBrandResp api.Envelope[models.Brand]
	createBrandErr  error
	updateBrandResp api.Envelope[models.Brand]
	deleteBrandResp api.Envelope[json.RawMessage]

	createBoxResp api.Envelope[models.BlindBox]
	updateBoxResp api.Envelope[models.BlindBox]
	deleteBoxResp api.Envelope[json.RawMessage]

	lastBrandInput models.BrandInput
	lastBoxInput   models.BlindBoxInput
	lastDeletedID  int64
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		loginResp:       api.Envelope[api.LoginData]{Success: true},
		brandsResp:      api.Envelope[[]models.Brand]{Success: true},
		boxesResp:       api.Envelope[[]models.BlindBox]{Success: true},
		catsResp:        api.Envelope[[]models.Category]{Success: true},
		createBrandResp: api.Envelope[models.Brand]{Success: true},
		updateBrandResp: api.Envelope[models.Brand]{Success: true},
		deleteBrandResp: api.Envelope[json.RawMessage]{Success: true},
		createBoxResp:   api.Envelope[models.BlindBox]{Success: true},
		updateBoxResp:   api.Envelope[models.BlindBox]{Success: true},
		deleteBoxResp:   api.Envelope[json.RawMessage]{Success: true},
	}
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) countCalls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (api.Envelope[api.LoginData], error) {
	f.record("Login")
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) Brands(ctx context.Context) (api.Envelope[[]models.Brand], error) {
	f.record("Brands")
	return f.brandsResp, f.brandsErr
}

func (f *fakeAPI) CreateBrand(ctx context.Context, in models.BrandInput) (api.Envelope[models.Brand], error) {
	f.record("CreateBrand")
	f.mu.Lock()
	f.lastBrandInput = in
	f.mu.Unlock()
	return f.createBrandResp, f.createBrandErr
}

func (f *fakeAPI) UpdateBrand(ctx context.Context, id int64, in models.BrandInput) (api.Envelope[models.Brand], error) {
	f.record("UpdateBrand")
	f.mu.Lock()
	f.lastBrandInput = in
	f.mu.Unlock()
	return f.updateBrandResp, nil
}

func (f *fakeAPI) DeleteBrand(ctx context.Context, id int64) (api.Envelope[json.RawMessage], error) {
	f.record("DeleteBrand")
	f.mu.Lock()
	f.lastDeletedID = id
	f.mu.Unlock()
	return f.deleteBrandResp, nil
}

func (f *fakeAPI) BlindBoxes(ctx context.Context) (api.Envelope[[]models.BlindBox], error) {
	f.record("BlindBoxes")
	return f.boxesResp, f.boxesErr
}

func (f *fakeAPI) Categories(ctx context.Context) (api.Envelope[[]models.Category], error) {
	f.record("Categories")
	return f.catsResp, nil
}

func (f *fakeAPI) CreateBlindBox(ctx context.Context, in models.BlindBoxInput) (api.Envelope[models.BlindBox], error) {
	f.record("CreateBlindBox")
	f.mu.Lock()
	f.lastBoxInput = in
	f.mu.Unlock()
	return f.createBoxResp, nil
}

func (f *fakeAPI) UpdateBlindBox(ctx context.Context, id int64, in models.BlindBoxInput) (api.Envelope[models.BlindBox], error) {
	f.record("UpdateBlindBox")
	f.mu.Lock()
	f.lastBoxInput = in
	f.mu.Unlock()
	return f.updateBoxResp, nil
}

func (f *fakeAPI) DeleteBlindBox(ctx context.Context, id int64) (api.Envelope[json.RawMessage], error) {
	f.record("DeleteBlindBox")
	f.mu.Lock()
	f.lastDeletedID = id
	f.mu.Unlock()
	return f.deleteBoxResp, nil
}

var _ api.API = (*fakeAPI)(nil)

// newTestApp builds an App over a memory store with form input fed from a
// string. Seam stubs (output, prompts) are installed separately per test.
func newTestApp(t *testing.T, f *fakeAPI, input string) (*App, *state.Container, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	container := state.New(context.Background(), store, logging.NewNop(), time.Minute)
	t.Cleanup(container.Close)

	a := &App{
		api:         f,
		state:       container,
		store:       store,
		log:         logging.NewNop(),
		reader:      bufio.NewReader(strings.NewReader(input)),
		out:         io.Discard,
		currentPath: "/",
	}
	return a, container, store
}

func (a *App) feedInput(input string) {
	a.reader = bufio.NewReader(strings.NewReader(input))
}

// stubOutput captures everything printed through the printlnFn seam.
func stubOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

// stubTextInput replaces the prompt seam with a queue of answers.
func stubTextInput(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		s := answers[i]
		i++
		return s, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(w io.Writer) (string, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })
}

func loginAs(t *testing.T, c *state.Container, admin bool) {
	t.Helper()
	role := models.RoleStandard
	email := "user@example.com"
	if admin {
		role = models.RoleAdmin
		email = "admin@example.com"
	}
	err := c.Login(context.Background(), "tok-test", models.User{ID: 1, Email: email, Role: role})
	require.NoError(t, err)
}

func outputContains(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func lastNotification(c *state.Container) (models.Notification, bool) {
	got := c.Notifications()
	if len(got) == 0 {
		return models.Notification{}, false
	}
	return got[len(got)-1], true
}
