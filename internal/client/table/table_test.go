package table

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/hrconsole/internal/client/client"
	"github.com/dmitrijs2005/hrconsole/internal/client/models"
	"github.com/dmitrijs2005/hrconsole/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pid(v string) models.RecordID { return models.PersistedID(v) }

func staff() []*models.Employee {
	return []*models.Employee{
		{ID: pid("1"), FirstName: "Alice", LastName: "Ng", Contact: "1", Department: "IT", Position: "Dev", Username: "alice", Email: "a@x", Password: models.PasswordMask},
		{ID: pid("3"), FirstName: "Bob", LastName: "Li", Contact: "2", Department: "HR", Position: "Lead", Username: "bob", Email: "b@x", Password: models.PasswordMask},
	}
}

func newEmployeeTable(t *testing.T, store *fakeStore[*models.Employee]) (*Table[*models.Employee], *fakeNotifier) {
	t.Helper()
	n := &fakeNotifier{}
	tbl := New[*models.Employee](models.Employees, store, n, logging.Nop{}, 10*time.Millisecond)
	t.Cleanup(tbl.Close)
	require.NoError(t, tbl.Load(context.Background()))
	return tbl, n
}

func viewIDs(tbl interface{ View() []Row }) []string {
	out := []string{}
	for _, r := range tbl.View() {
		out = append(out, r.ID.Value)
	}
	return out
}

func TestLoad_TwiceYieldsCleanCache(t *testing.T) {
	store := &fakeStore[*models.Employee]{list: staff()}
	tbl, n := newEmployeeTable(t, store)

	require.NoError(t, tbl.BeginEdit(pid("1")))
	require.NoError(t, tbl.SetField(pid("1"), "firstName", "Zed"))

	require.NoError(t, tbl.Load(context.Background()))
	require.NoError(t, tbl.Load(context.Background()))

	for _, want := range staff() {
		e, ok := tbl.cache.Get(want.ID)
		require.True(t, ok)
		assert.False(t, e.Editing)
		assert.Equal(t, want, e.Draft)
	}
	assert.Equal(t, 2, tbl.cache.Len())
	assert.Zero(t, n.count("success"), "a successful load is silent")
}

func TestLoad_FailureKeepsState(t *testing.T) {
	store := &fakeStore[*models.Employee]{list: staff()}
	tbl, n := newEmployeeTable(t, store)

	store.listErr = client.ErrUnavailable
	err := tbl.Load(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)

	assert.Equal(t, []string{"1", "3"}, viewIDs(tbl))
	assert.Equal(t, note{"error", "Failed to load employees from server."}, n.last())
	assert.False(t, tbl.Loading())
}

func TestLoad_MasksPlaintextSecrets(t *testing.T) {
	list := staff()
	list[0].Password = "hunter2"
	tbl, _ := newEmployeeTable(t, &fakeStore[*models.Employee]{list: list})

	r, ok := tbl.Get(pid("1"))
	require.True(t, ok)
	assert.Equal(t, models.PasswordMask, r.Password)
}

func TestFind_UsesScope(t *testing.T) {
	store := &fakeStore[*models.Employee]{list: staff()}
	tbl, _ := newEmployeeTable(t, store)

	q := url.Values{"employeeId": {"3"}}
	require.NoError(t, tbl.Find(context.Background(), q))
	require.NoError(t, tbl.Refresh(context.Background()))

	assert.Equal(t, []string{"list", "find", "find"}, store.Calls())
	assert.Equal(t, q, store.query)
}

func TestDiscardEdit_PersistedRestoresDraft(t *testing.T) {
	tbl, _ := newEmployeeTable(t, &fakeStore[*models.Employee]{list: staff()})
	before, _ := tbl.Get(pid("1"))

	require.NoError(t, tbl.BeginEdit(pid("1")))
	require.NoError(t, tbl.SetField(pid("1"), "firstName", "Mallory"))
	require.NoError(t, tbl.DiscardEdit(pid("1")))

	after, _ := tbl.Get(pid("1"))
	assert.Equal(t, before, after)

	e, _ := tbl.cache.Get(pid("1"))
	assert.False(t, e.Editing)
	assert.Equal(t, "Alice", e.Draft.FirstName)
}

func TestDiscardEdit_PendingRemovesRow(t *testing.T) {
	tbl, n := newEmployeeTable(t, &fakeStore[*models.Employee]{list: staff()})

	id := tbl.AddNew()
	assert.Equal(t, "info", n.last().kind)
	assert.Equal(t, []string{id.Value, "1", "3"}, viewIDs(tbl))
	assert.True(t, tbl.cache.Editing(id))

	require.NoError(t, tbl.DiscardEdit(id))

	assert.Equal(t, []string{"1", "3"}, viewIDs(tbl))
	_, ok := tbl.Get(id)
	assert.False(t, ok)
	_, ok = tbl.cache.Get(id)
	assert.False(t, ok)
}

func TestDiscardEdit_Unknown(t *testing.T) {
	tbl, _ := newEmployeeTable(t, &fakeStore[*models.Employee]{})
	require.ErrorIs(t, tbl.DiscardEdit(pid("9")), ErrNotFound)
}

func TestEdit_RequiresEditing(t *testing.T) {
	tbl, _ := newEmployeeTable(t, &fakeStore[*models.Employee]{list: staff()})

	require.ErrorIs(t, tbl.SetField(pid("1"), "firstName", "x"), ErrNotEditing)
	require.ErrorIs(t, tbl.SetField(pid("7"), "firstName", "x"), ErrNotFound)
	require.ErrorIs(t, tbl.BeginEdit(pid("7")), ErrNotFound)

	require.NoError(t, tbl.BeginEdit(pid("1")))
	require.ErrorIs(t, tbl.SetField(pid("1"), "salary", "x"), models.ErrUnknownField)
}

func TestIsValid_RequiredFields(t *testing.T) {
	store := &fakeStore[*models.Employee]{list: staff()}
	tbl, n := newEmployeeTable(t, store)

	require.NoError(t, tbl.BeginEdit(pid("1")))
	require.NoError(t, tbl.SetField(pid("1"), "email", "   "))
	assert.False(t, tbl.IsValid(pid("1")))
	assert.Equal(t, []string{"email"}, tbl.Missing(pid("1")))

	err := tbl.SaveEdit(context.Background(), pid("1"))
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "warning", n.last().kind)
	assert.Equal(t, []string{"list"}, store.Calls(), "no store call on validation failure")
	assert.True(t, tbl.cache.Editing(pid("1")))
}

func TestIsValid_PendingNeedsPassword(t *testing.T) {
	store := &fakeStore[*models.Employee]{}
	tbl, _ := newEmployeeTable(t, store)

	id := tbl.AddNew()
	for name, v := range map[string]string{
		"firstName": "Cy", "lastName": "Wu", "contact": "9", "department": "Ops",
		"position": "SRE", "username": "cy", "email": "c@x",
	} {
		require.NoError(t, tbl.SetField(id, name, v))
	}

	assert.False(t, tbl.IsValid(id))
	assert.Equal(t, []string{"password"}, tbl.Missing(id))
	require.ErrorIs(t, tbl.SaveEdit(context.Background(), id), ErrValidation)
	assert.Equal(t, []string{"list"}, store.Calls())

	require.NoError(t, tbl.SetField(id, "password", "s3cret"))
	assert.True(t, tbl.IsValid(id))
}

func TestIsValid_PersistedBlankPasswordAllowed(t *testing.T) {
	tbl, _ := newEmployeeTable(t, &fakeStore[*models.Employee]{list: staff()})

	require.NoError(t, tbl.BeginEdit(pid("3")))
	require.NoError(t, tbl.SetField(pid("3"), "password", ""))
	assert.True(t, tbl.IsValid(pid("3")))
}

func fillNew(t *testing.T, tbl *Table[*models.Employee], id models.RecordID) {
	t.Helper()
	require.NoError(t, tbl.Edit(id, func(d *models.Employee) error {
		d.FirstName, d.LastName, d.Contact = "Cy", "Wu", "9"
		d.Department, d.Position = "Ops", "SRE"
		d.Username, d.Email, d.Password = "cy", "c@x", "s3cret"
		return nil
	}))
}

func TestSaveEdit_PendingCreatesWithNextID(t *testing.T) {
	list := append(staff(), &models.Employee{ID: pid("x")})
	store := &fakeStore[*models.Employee]{list: list}
	tbl, n := newEmployeeTable(t, store)

	id := tbl.AddNew()
	fillNew(t, tbl, id)

	require.NoError(t, tbl.SaveEdit(context.Background(), id))

	require.Len(t, store.created, 1)
	assert.Equal(t, pid("4"), store.created[0].ID)
	assert.Equal(t, "s3cret", store.created[0].Password)

	assert.Equal(t, []string{"4", "1", "3", "x"}, viewIDs(tbl))
	_, ok := tbl.cache.Get(id)
	assert.False(t, ok, "pending entry must be gone")
	e, ok := tbl.cache.Get(pid("4"))
	require.True(t, ok)
	assert.False(t, e.Editing)

	saved, _ := tbl.Get(pid("4"))
	assert.Equal(t, models.PasswordMask, saved.Password)
	assert.Equal(t, note{"success", "Employee Cy Wu saved successfully! ID: 4"}, n.last())
}

func TestSaveEdit_PendingServerIDWins(t *testing.T) {
	store := &fakeStore[*models.Employee]{
		list: staff(),
		createResp: func(r *models.Employee) *models.Employee {
			c := r.Clone()
			c.ID = pid("100")
			return c
		},
	}
	tbl, _ := newEmployeeTable(t, store)

	id := tbl.AddNew()
	fillNew(t, tbl, id)
	require.NoError(t, tbl.SaveEdit(context.Background(), id))

	assert.Equal(t, []string{"100", "1", "3"}, viewIDs(tbl))
}

func TestSaveEdit_PendingResponseWithoutID(t *testing.T) {
	tests := []struct {
		name string
		resp func(*models.Employee) *models.Employee
	}{
		{"no id", func(r *models.Employee) *models.Employee { c := r.Clone(); c.ID = models.RecordID{}; return c }},
		{"empty body", func(*models.Employee) *models.Employee { return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore[*models.Employee]{list: staff(), createResp: tt.resp}
			tbl, _ := newEmployeeTable(t, store)

			id := tbl.AddNew()
			fillNew(t, tbl, id)
			require.NoError(t, tbl.SaveEdit(context.Background(), id))

			assert.Equal(t, []string{"4", "1", "3"}, viewIDs(tbl))
			r, ok := tbl.Get(pid("4"))
			require.True(t, ok)
			assert.Equal(t, "Cy", r.FirstName)
		})
	}
}

func TestSaveEdit_PendingFailureDiscardsRow(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeStore[*models.Employee])
		want  error
		calls []string
	}{
		{
			name:  "create conflict",
			setup: func(s *fakeStore[*models.Employee]) { s.createErr = &client.StatusError{Code: 409} },
			want:  client.ErrConflict,
			calls: []string{"list", "list", "create"},
		},
		{
			name:  "list unavailable",
			setup: func(s *fakeStore[*models.Employee]) { s.listErr = client.ErrUnavailable },
			want:  client.ErrUnavailable,
			calls: []string{"list", "list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore[*models.Employee]{list: staff()}
			tbl, n := newEmployeeTable(t, store)

			id := tbl.AddNew()
			fillNew(t, tbl, id)
			tt.setup(store)

			err := tbl.SaveEdit(context.Background(), id)
			require.ErrorIs(t, err, tt.want)

			assert.Equal(t, tt.calls, store.Calls())
			assert.Equal(t, []string{"1", "3"}, viewIDs(tbl))
			_, ok := tbl.cache.Get(id)
			assert.False(t, ok)
			assert.Equal(t, "error", n.last().kind)
		})
	}
}

func TestSaveEdit_PersistedMergesResponse(t *testing.T) {
	store := &fakeStore[*models.Employee]{
		list: staff(),
		updateResp: func(r *models.Employee) *models.Employee {
			c := r.Clone()
			c.Contact = "server-normalised"
			c.Password = models.PasswordMask
			return c
		},
	}
	tbl, n := newEmployeeTable(t, store)

	require.NoError(t, tbl.BeginEdit(pid("1")))
	require.NoError(t, tbl.SetField(pid("1"), "position", "Principal"))
	require.NoError(t, tbl.SaveEdit(context.Background(), pid("1")))

	got, _ := tbl.Get(pid("1"))
	assert.Equal(t, "Principal", got.Position)
	assert.Equal(t, "server-normalised", got.Contact)
	assert.False(t, tbl.cache.Editing(pid("1")))
	assert.Equal(t, note{"success", "Employee updated successfully!"}, n.last())
}

func TestSaveEdit_PersistedClearsField(t *testing.T) {
	tests := []struct {
		name string
		resp func(*models.Employee) *models.Employee
	}{
		{name: "echoed body"},
		{name: "empty body", resp: func(*models.Employee) *models.Employee { return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := staff()
			list[0].MiddleName = "Q"
			store := &fakeStore[*models.Employee]{list: list, updateResp: tt.resp}
			tbl, _ := newEmployeeTable(t, store)

			require.NoError(t, tbl.BeginEdit(pid("1")))
			require.NoError(t, tbl.SetField(pid("1"), "middleName", ""))
			require.NoError(t, tbl.SaveEdit(context.Background(), pid("1")))

			require.Len(t, store.updated, 1)
			assert.Equal(t, "", store.updated[0].MiddleName)

			got, _ := tbl.Get(pid("1"))
			assert.Equal(t, "", got.MiddleName)
			assert.Equal(t, "Alice", got.FirstName)
			assert.Equal(t, models.PasswordMask, got.Password)

			draft, _ := tbl.cache.Draft(pid("1"))
			assert.Equal(t, "", draft.MiddleName)
		})
	}
}

func TestSaveEdit_PasswordOnlySentWhenChanged(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"masked placeholder", models.PasswordMask, ""},
		{"blank", "  ", ""},
		{"changed", "n3w", "n3w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore[*models.Employee]{list: staff()}
			tbl, _ := newEmployeeTable(t, store)

			require.NoError(t, tbl.BeginEdit(pid("3")))
			require.NoError(t, tbl.SetField(pid("3"), "password", tt.password))
			require.NoError(t, tbl.SaveEdit(context.Background(), pid("3")))

			require.Len(t, store.updated, 1)
			assert.Equal(t, tt.want, store.updated[0].Password)

			got, _ := tbl.Get(pid("3"))
			assert.Equal(t, models.PasswordMask, got.Password, "committed never holds plaintext")
		})
	}
}

func TestSaveEdit_PersistedFailureRollsBack(t *testing.T) {
	store := &fakeStore[*models.Employee]{list: staff(), updateErr: &client.StatusError{Code: 400, Message: "bad"}}
	tbl, n := newEmployeeTable(t, store)
	before, _ := tbl.Get(pid("1"))

	require.NoError(t, tbl.BeginEdit(pid("1")))
	require.NoError(t, tbl.SetField(pid("1"), "email", "new@x"))

	err := tbl.SaveEdit(context.Background(), pid("1"))
	require.ErrorIs(t, err, client.ErrBadRequest)

	e, ok := tbl.cache.Get(pid("1"))
	require.True(t, ok)
	assert.True(t, e.Editing)
	assert.False(t, e.Saving)
	assert.Equal(t, "a@x", e.Draft.Email, "draft is reset to committed, not the failed attempt")

	after, _ := tbl.Get(pid("1"))
	assert.Equal(t, before, after)
	assert.Equal(t, note{"error", "Failed to update employee: Bad request - please check the data format."}, n.last())
}

func TestSaveEdit_NotEditing(t *testing.T) {
	tbl, _ := newEmployeeTable(t, &fakeStore[*models.Employee]{list: staff()})
	require.ErrorIs(t, tbl.SaveEdit(context.Background(), pid("1")), ErrNotEditing)
	require.ErrorIs(t, tbl.SaveEdit(context.Background(), pid("8")), ErrNotFound)
}

func TestSaveEdit_SecondSaveIsBusy(t *testing.T) {
	gate := make(chan struct{})
	store := &fakeStore[*models.Employee]{list: staff(), updateGate: map[string]chan struct{}{"1": gate}}
	tbl, _ := newEmployeeTable(t, store)
	require.NoError(t, tbl.BeginEdit(pid("1")))

	done := make(chan error, 1)
	go func() { done <- tbl.SaveEdit(context.Background(), pid("1")) }()

	require.Eventually(t, func() bool { return saving(tbl, pid("1")) }, time.Second, time.Millisecond)

	require.ErrorIs(t, tbl.SaveEdit(context.Background(), pid("1")), ErrBusy)
	require.ErrorIs(t, tbl.Delete(context.Background(), pid("1")), ErrBusy)
	require.ErrorIs(t, tbl.DiscardEdit(pid("1")), ErrBusy)
	require.ErrorIs(t, tbl.SetField(pid("1"), "email", "x"), ErrBusy)

	close(gate)
	require.NoError(t, <-done)
	assert.False(t, saving(tbl, pid("1")))
}

func TestSaveEdit_DifferentRowsCompleteOutOfOrder(t *testing.T) {
	gate1 := make(chan struct{})
	store := &fakeStore[*models.Employee]{list: staff(), updateGate: map[string]chan struct{}{"1": gate1}}
	tbl, n := newEmployeeTable(t, store)

	require.NoError(t, tbl.BeginEdit(pid("1")))
	require.NoError(t, tbl.SetField(pid("1"), "position", "CTO"))
	require.NoError(t, tbl.BeginEdit(pid("3")))
	require.NoError(t, tbl.SetField(pid("3"), "position", "CFO"))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, tbl.SaveEdit(context.Background(), pid("1")))
	}()
	require.Eventually(t, func() bool { return saving(tbl, pid("1")) }, time.Second, time.Millisecond)

	require.NoError(t, tbl.SaveEdit(context.Background(), pid("3")))
	r3, _ := tbl.Get(pid("3"))
	assert.Equal(t, "CFO", r3.Position)
	assert.True(t, saving(tbl, pid("1")), "row 1 still in flight")

	close(gate1)
	wg.Wait()

	r1, _ := tbl.Get(pid("1"))
	assert.Equal(t, "CTO", r1.Position)
	assert.Equal(t, 2, n.count("success"))
}

func TestDelete_PendingIsLocalOnly(t *testing.T) {
	store := &fakeStore[*models.Employee]{list: staff()}
	tbl, n := newEmployeeTable(t, store)

	id := tbl.AddNew()
	require.NoError(t, tbl.Delete(context.Background(), id))

	assert.Equal(t, []string{"list"}, store.Calls())
	assert.Equal(t, []string{"1", "3"}, viewIDs(tbl))
	_, ok := tbl.cache.Get(id)
	assert.False(t, ok)
	assert.Equal(t, "success", n.last().kind)
}

func TestDelete_Persisted(t *testing.T) {
	store := &fakeStore[*models.Employee]{list: staff()}
	tbl, n := newEmployeeTable(t, store)

	require.NoError(t, tbl.Delete(context.Background(), pid("1")))

	assert.Equal(t, []string{"list", "delete 1"}, store.Calls())
	assert.Equal(t, []string{"3"}, viewIDs(tbl))
	_, ok := tbl.cache.Get(pid("1"))
	assert.False(t, ok)
	assert.Equal(t, note{"success", "Employee deleted successfully!"}, n.last())
}

func TestDelete_FailureLeavesState(t *testing.T) {
	store := &fakeStore[*models.Employee]{list: staff(), deleteErr: &client.StatusError{Code: 404}}
	tbl, n := newEmployeeTable(t, store)

	err := tbl.Delete(context.Background(), pid("1"))
	require.ErrorIs(t, err, client.ErrNotFound)

	assert.Equal(t, []string{"1", "3"}, viewIDs(tbl))
	_, ok := tbl.cache.Get(pid("1"))
	assert.True(t, ok)
	assert.False(t, saving(tbl, pid("1")))
	assert.Equal(t, note{"error", "Failed to delete employee: Record not found."}, n.last())

	require.ErrorIs(t, tbl.Delete(context.Background(), pid("42")), ErrNotFound)
}

func admins() []*models.Admin {
	return []*models.Admin{
		{ID: pid("1"), Fullname: "Alice"},
		{ID: pid("2"), Fullname: "bob"},
		{ID: pid("3"), Fullname: "Alicia"},
	}
}

func TestApplyFilter_OrderAndCase(t *testing.T) {
	n := &fakeNotifier{}
	tbl := New[*models.Admin](models.Admins, &fakeStore[*models.Admin]{list: admins()}, n, logging.Nop{}, 0)
	t.Cleanup(tbl.Close)
	require.NoError(t, tbl.Load(context.Background()))

	tbl.ApplyFilter("ali")
	assert.Equal(t, []string{"1", "3"}, viewIDs(tbl))
	assert.Equal(t, []models.RecordID{pid("1"), pid("3")}, tbl.cache.IDs())

	tbl.ApplyFilter("")
	assert.Equal(t, []string{"1", "2", "3"}, viewIDs(tbl))
	assert.Equal(t, 3, tbl.cache.Len())
}

func TestApplyFilter_KeepsNewRows(t *testing.T) {
	tbl := New[*models.Admin](models.Admins, &fakeStore[*models.Admin]{list: admins()}, &fakeNotifier{}, logging.Nop{}, 0)
	t.Cleanup(tbl.Close)
	require.NoError(t, tbl.Load(context.Background()))

	id := tbl.AddNew()
	require.NoError(t, tbl.SetField(id, "username", "draft-user"))

	tbl.ApplyFilter("bob")
	assert.Equal(t, []string{id.Value, "2"}, viewIDs(tbl))

	e, ok := tbl.cache.Get(id)
	require.True(t, ok)
	assert.True(t, e.Editing)
	assert.Equal(t, "draft-user", e.Draft.Username)
	assert.Equal(t, "admin", e.Draft.Access)
}

func TestSearch_Debounced(t *testing.T) {
	tbl := New[*models.Admin](models.Admins, &fakeStore[*models.Admin]{list: admins()}, &fakeNotifier{}, logging.Nop{}, 10*time.Millisecond)
	t.Cleanup(tbl.Close)
	require.NoError(t, tbl.Load(context.Background()))

	tbl.Search("a")
	tbl.Search("bo")

	require.Eventually(t, func() bool { return tbl.Term() == "bo" }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"2"}, viewIDs(tbl))
}

func TestView_ShowsDraftWhileEditing(t *testing.T) {
	tbl, _ := newEmployeeTable(t, &fakeStore[*models.Employee]{list: staff()})

	require.NoError(t, tbl.BeginEdit(pid("1")))
	require.NoError(t, tbl.SetField(pid("1"), "firstName", "Alicia"))

	rows := tbl.View()
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Editing)
	assert.Equal(t, "Alicia Ng", rows[0].Title)
	assert.Equal(t, "Alice", tbl.Rows()[0].FirstName, "rows export committed values")
}

func TestResolve(t *testing.T) {
	tbl, _ := newEmployeeTable(t, &fakeStore[*models.Employee]{list: staff()})

	id, ok := tbl.Resolve("3")
	require.True(t, ok)
	assert.Equal(t, pid("3"), id)

	pending := tbl.AddNew()
	id, ok = tbl.Resolve(pending.Value)
	require.True(t, ok)
	assert.True(t, id.IsPending())

	_, ok = tbl.Resolve("nope")
	assert.False(t, ok)
}

func TestCategory(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&client.StatusError{Code: 400}, "Bad request - please check the data format."},
		{&client.StatusError{Code: 404}, "Record not found."},
		{&client.StatusError{Code: 409}, "Conflict (duplicate email or username)."},
		{&client.StatusError{Code: 401}, "Unauthorized."},
		{&client.StatusError{Code: 503}, "Server error. Please try again later."},
		{&client.StatusError{Code: 418, Message: "teapot"}, "Error 418: teapot"},
		{client.ErrUnavailable, "Failed to connect to server. Please try again."},
		{errors.New("odd"), "odd"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Category(tt.err))
	}
}
