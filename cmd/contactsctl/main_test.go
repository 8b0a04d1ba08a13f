package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satheeshds/contacts/client"
	"github.com/satheeshds/contacts/handlers"
	"github.com/satheeshds/contacts/models"
	"github.com/satheeshds/contacts/store"
)

type cliTest struct {
	t       *testing.T
	api     string
	deletes atomic.Int64
}

func newCLITest(t *testing.T) *cliTest {
	ct := &cliTest{t: t}
	router := handlers.NewRouter(handlers.RouterOptions{Store: store.NewMemory()})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			ct.deletes.Add(1)
		}
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	ct.api = srv.URL + "/api"
	return ct
}

func (ct *cliTest) run(stdin string, args ...string) (stdout, stderr string, err error) {
	ct.t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--api", ct.api}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func (ct *cliTest) createCategory(name string) models.Category {
	ct.t.Helper()
	out, _, err := ct.run("", "categories", "create", name)
	require.NoError(ct.t, err)
	var c models.Category
	require.NoError(ct.t, json.Unmarshal([]byte(out), &c))
	return c
}

func (ct *cliTest) createContact(name, categoryID string) models.Contact {
	ct.t.Helper()
	out, _, err := ct.run("", "contacts", "create",
		"--name", name, "--surname", "Lee", "--bio", "hi",
		"--phone", "+12345678901", "--email", "ann@x.com", "--category", categoryID)
	require.NoError(ct.t, err)
	var c models.Contact
	require.NoError(ct.t, json.Unmarshal([]byte(out), &c))
	return c
}

func TestContactsLifecycle(t *testing.T) {
	ct := newCLITest(t)
	friends := ct.createCategory("Friends")
	work := ct.createCategory("Work")
	ann := ct.createContact("Ann", friends.ID)
	bob := ct.createContact("Bob", work.ID)

	out, _, err := ct.run("", "contacts", "list", "--category", friends.ID)
	require.NoError(t, err)
	assert.Contains(t, out, ann.ID)
	assert.NotContains(t, out, bob.ID)

	out, _, err = ct.run("", "contacts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, ann.ID)
	assert.Contains(t, out, bob.ID)

	out, _, err = ct.run("", "contacts", "update", ann.ID, "--bio", "new bio")
	require.NoError(t, err)
	var updated models.Contact
	require.NoError(t, json.Unmarshal([]byte(out), &updated))
	assert.Equal(t, "new bio", updated.Bio)
	assert.Equal(t, "Ann", updated.Name)
	assert.Equal(t, friends.ID, updated.CategoryID)

	out, _, err = ct.run("", "categories", "contacts", work.ID)
	require.NoError(t, err)
	assert.Contains(t, out, bob.ID)

	out, _, err = ct.run("", "contacts", "delete", ann.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted contact "+ann.ID)
}

func TestCreateContactValidationFailsLocally(t *testing.T) {
	ct := newCLITest(t)
	_, _, err := ct.run("", "contacts", "create", "--name", "Ann")
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors, models.MsgSurnameInvalid)
	assert.Contains(t, verr.Errors, models.MsgCategoryIDRequired)
}

func TestDeleteCategoryInUseWarns(t *testing.T) {
	ct := newCLITest(t)
	friends := ct.createCategory("Friends")
	ct.createContact("Ann", friends.ID)

	_, stderr, err := ct.run("", "categories", "delete", friends.ID)
	require.NoError(t, err)
	assert.Contains(t, stderr, "warning")
	assert.Contains(t, stderr, "Cannot delete category with associated contacts")
	assert.EqualValues(t, 1, ct.deletes.Load())
}

func TestDeleteFailureRetriesAfterConfirmation(t *testing.T) {
	ct := newCLITest(t)

	_, stderr, err := ct.run("y\n", "contacts", "delete", "missing")
	assert.True(t, client.IsNotFound(err))
	assert.Contains(t, stderr, "retry?")
	assert.EqualValues(t, 2, ct.deletes.Load())
}

func TestDeleteFailureDeclined(t *testing.T) {
	ct := newCLITest(t)

	_, _, err := ct.run("n\n", "categories", "delete", "missing")
	assert.True(t, client.IsNotFound(err))
	assert.EqualValues(t, 1, ct.deletes.Load())
}
