package jobshandler

import (
	"fmt"
	"sort"
	"testing"
	"workvera-backend/lib/access"
	"workvera-backend/lib/utils/app-error"
	"workvera-backend/models"
	jobsapimodels "workvera-backend/models/api/jobs"
	dbmodels "workvera-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	seq  int
	rows map[string]dbmodels.JobPost
	// goneOnUpdate drops the row right before the update lands
	goneOnUpdate bool
}

func (f *fakeStore) Create(rec dbmodels.JobPost) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("j%d", f.seq)
	f.rows[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(scope access.Scope, id string) (*dbmodels.JobPost, error) {
	rec, ok := f.rows[id]
	if !ok || !scope.Match(Subject(rec)) {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	if f.goneOnUpdate {
		delete(f.rows, id)
	}
	rec, ok := f.rows[id]
	if !ok {
		return access.NotFound(access.ResourceJobPost)
	}
	if v, ok := updMap["title"]; ok {
		rec.Title = v.(string)
	}
	if v, ok := updMap["is_active"]; ok {
		rec.IsActive = v.(bool)
	}
	f.rows[id] = rec
	return nil
}

func (f *fakeStore) Delete(id string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeStore) match(scope access.Scope) []dbmodels.JobPost {
	list := []dbmodels.JobPost{}
	for _, rec := range f.rows {
		if scope.Match(Subject(rec)) {
			list = append(list, rec)
		}
	}
	sort.Slice(list, func(a, b int) bool { return list[a].ID < list[b].ID })
	return list
}

func (f *fakeStore) ListCount(scope access.Scope, filter dbmodels.JobPostFilter) (int64, error) {
	return int64(len(f.match(scope))), nil
}

func (f *fakeStore) List(scope access.Scope, filter dbmodels.JobPostFilter, page, limit int) ([]dbmodels.JobPost, error) {
	return f.match(scope), nil
}

var (
	e1 = access.Actor{ID: "e1", Role: models.RoleEmployer, IsActive: true}
	e2 = access.Actor{ID: "e2", Role: models.RoleEmployer, IsActive: true}
	s1 = access.Actor{ID: "s1", Role: models.RoleSeeker, IsActive: true}
)

func posting(title string) jobsapimodels.JobPostData {
	return jobsapimodels.JobPostData{Title: title, Description: "desc", SkillTags: []string{"go"}}
}

func TestJobsHandler(t *testing.T) {
	store := &fakeStore{rows: map[string]dbmodels.JobPost{}}
	handler := NewInstance(store)

	t.Run(`only employers create postings`, func(t *testing.T) {
		_, err := handler.Create(s1, posting("seeker post"))
		require.True(t, apperror.Is(err, apperror.KindValidation))
		_, err = handler.Create(access.Anonymous(), posting("anon post"))
		require.True(t, apperror.Is(err, apperror.KindValidation))
	})

	active, err := handler.Create(e1, posting("Backend"))
	require.NoError(t, err)
	require.True(t, active.IsActive)
	require.Equal(t, "e1", active.EmployerID)
	hidden, err := handler.Create(e1, posting("Frontend"))
	require.NoError(t, err)

	t.Run(`owner deactivates with patch`, func(t *testing.T) {
		off := false
		view, err := handler.Patch(e1, hidden.ID, jobsapimodels.JobPostPatch{IsActive: &off})
		require.NoError(t, err)
		require.False(t, view.IsActive)
	})
	t.Run(`deactivated posting is hidden from seeker list and retrieve`, func(t *testing.T) {
		list, count, err := handler.List(s1, jobsapimodels.JobPostFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
		require.Equal(t, active.ID, list[0].ID)

		_, err = handler.GetByID(s1, hidden.ID)
		require.True(t, apperror.Is(err, apperror.KindNotFound))
	})
	t.Run(`owner still sees it under mine`, func(t *testing.T) {
		list, count, err := handler.ListMine(e1, jobsapimodels.JobPostFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(2), count)
		require.Len(t, list, 2)

		view, err := handler.GetByID(e1, hidden.ID)
		require.NoError(t, err)
		require.False(t, view.IsActive)
	})
	t.Run(`mine for a seeker is empty`, func(t *testing.T) {
		list, count, err := handler.ListMine(s1, jobsapimodels.JobPostFilter{})
		require.NoError(t, err)
		require.Zero(t, count)
		require.Empty(t, list)
	})
	t.Run(`other employer cannot reach the posting`, func(t *testing.T) {
		_, err := handler.GetByID(e2, active.ID)
		require.True(t, apperror.Is(err, apperror.KindNotFound))
		_, err = handler.Update(e2, active.ID, posting("taken over"))
		require.True(t, apperror.Is(err, apperror.KindNotFound))
		require.True(t, apperror.Is(handler.Delete(e2, active.ID), apperror.KindNotFound))
	})
	t.Run(`seeker sees active posting but cannot edit it`, func(t *testing.T) {
		_, err := handler.Update(s1, active.ID, posting("edited"))
		require.True(t, apperror.Is(err, apperror.KindPermissionDenied))
		require.True(t, apperror.Is(handler.Delete(s1, active.ID), apperror.KindPermissionDenied))
	})
	t.Run(`owner updates and deletes`, func(t *testing.T) {
		view, err := handler.Update(e1, active.ID, posting("Backend Go"))
		require.NoError(t, err)
		require.Equal(t, "Backend Go", view.Title)
		require.NoError(t, handler.Delete(e1, active.ID))
		_, err = handler.GetByID(e1, active.ID)
		require.True(t, apperror.Is(err, apperror.KindNotFound))
	})
	t.Run(`posting removed during update`, func(t *testing.T) {
		view, err := handler.Create(e1, posting("Short lived"))
		require.NoError(t, err)
		store.goneOnUpdate = true
		defer func() { store.goneOnUpdate = false }()
		_, err = handler.Update(e1, view.ID, posting("Too late"))
		require.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}
