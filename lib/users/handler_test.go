package usershandler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"workvera-backend/config"
	"workvera-backend/lib/utils/app-error"
	"workvera-backend/models"
	authapimodels "workvera-backend/models/api/auth"
	usersapimodels "workvera-backend/models/api/users"
	dbmodels "workvera-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	sync.Mutex
	users    map[string]dbmodels.User
	profiles map[string]dbmodels.Profile
	seq      int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]dbmodels.User{}, profiles: map[string]dbmodels.Profile{}}
}

func (f *fakeUsers) CreateWithProfile(rec dbmodels.User) (string, error) {
	f.Lock()
	defer f.Unlock()
	for _, u := range f.users {
		if u.Email == rec.Email {
			return "", fmt.Errorf(`duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)
		}
	}
	f.seq++
	rec.ID = fmt.Sprintf("u%d", f.seq)
	f.users[rec.ID] = rec
	f.profiles[rec.ID] = dbmodels.Profile{UserID: rec.ID}
	return rec.ID, nil
}

func (f *fakeUsers) GetByID(id string) (*dbmodels.User, error) {
	f.Lock()
	defer f.Unlock()
	rec, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeUsers) FindByEmail(email string) (*dbmodels.User, error) {
	f.Lock()
	defer f.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			rec := u
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) ExistByEmail(email string) (bool, error) {
	rec, err := f.FindByEmail(email)
	return rec != nil, err
}

func (f *fakeUsers) Update(id string, updMap map[string]interface{}) error {
	f.Lock()
	defer f.Unlock()
	rec := f.users[id]
	if v, ok := updMap["is_active"]; ok {
		rec.IsActive = v.(bool)
	}
	f.users[id] = rec
	return nil
}

func (f *fakeUsers) List(filter dbmodels.UserFilter, page, limit int) ([]dbmodels.User, error) {
	f.Lock()
	defer f.Unlock()
	list := []dbmodels.User{}
	for _, u := range f.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		list = append(list, u)
	}
	return list, nil
}

func (f *fakeUsers) ListCount(filter dbmodels.UserFilter) (int64, error) {
	list, err := f.List(filter, 1, 100)
	return int64(len(list)), err
}

func (f *fakeUsers) GetByUserID(userID string) (*dbmodels.Profile, error) {
	f.Lock()
	defer f.Unlock()
	rec, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type profileStore struct {
	*fakeUsers
}

func (p profileStore) Update(userID string, updMap map[string]interface{}) error {
	p.Lock()
	defer p.Unlock()
	rec := p.profiles[userID]
	for key, value := range updMap {
		switch key {
		case "bio":
			rec.Bio = value.(string)
		case "career_gap_years":
			rec.CareerGapYears = value.(int)
		case "resume_file_id":
			id := value.(string)
			rec.ResumeFileID = &id
		case "video_pitch_file_id":
			id := value.(string)
			rec.VideoPitchFileID = &id
		}
	}
	p.profiles[userID] = rec
	return nil
}

type fakeFiles struct {
	seq     int
	data    map[string][]byte
	deleted []string
}

func (f *fakeFiles) Upload(ctx context.Context, info dbmodels.UploadFileInfo, reader io.Reader, size int64) (string, error) {
	body, _ := io.ReadAll(reader)
	f.seq++
	id := fmt.Sprintf("f%d", f.seq)
	f.data[id] = body
	return id, nil
}

func (f *fakeFiles) Get(ctx context.Context, ownerID, fileID string) ([]byte, *dbmodels.FileStorage, error) {
	rec := &dbmodels.FileStorage{OwnerID: ownerID}
	rec.ID = fileID
	return f.data[fileID], rec, nil
}

func (f *fakeFiles) Delete(ctx context.Context, ownerID, fileID string) error {
	f.deleted = append(f.deleted, fileID)
	delete(f.data, fileID)
	return nil
}

func setupConfig() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 120
}

func TestUsersHandler(t *testing.T) {
	setupConfig()
	store := newFakeUsers()
	files := &fakeFiles{data: map[string][]byte{}}
	handler := NewInstance(store, profileStore{store}, files, nil)

	me, err := handler.Register(authapimodels.RegisterRequest{
		Email:    "Seeker@Example.com",
		Password: "password1",
		Name:     " Sam ",
		Role:     models.RoleSeeker,
	})
	require.NoError(t, err)
	require.Equal(t, "seeker@example.com", me.Email)
	require.Equal(t, "Sam", me.Name)

	t.Run(`register creates profile`, func(t *testing.T) {
		profile, err := handler.GetProfile(me.ID)
		require.NoError(t, err)
		require.Equal(t, me.ID, profile.UserID)
		require.False(t, profile.HasResume)
	})
	t.Run(`duplicate email conflicts`, func(t *testing.T) {
		_, err := handler.Register(authapimodels.RegisterRequest{Email: "seeker@example.com", Password: "password1", Role: models.RoleEmployer})
		require.True(t, apperror.Is(err, apperror.KindConflict))
	})
	t.Run(`login`, func(t *testing.T) {
		resp, err := handler.Login("seeker@example.com", "password1")
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.NotEmpty(t, resp.RefreshToken)

		refreshed, err := handler.RefreshToken(resp.RefreshToken)
		require.NoError(t, err)
		require.NotEmpty(t, refreshed.Token)

		_, err = handler.RefreshToken(resp.Token)
		require.True(t, apperror.Is(err, apperror.KindUnauthorized))
	})
	t.Run(`wrong password`, func(t *testing.T) {
		_, err := handler.Login("seeker@example.com", "wrong")
		require.True(t, apperror.Is(err, apperror.KindUnauthorized))
		_, err = handler.Login("nobody@example.com", "password1")
		require.True(t, apperror.Is(err, apperror.KindUnauthorized))
	})
	t.Run(`actor reload`, func(t *testing.T) {
		actor, err := handler.GetActor(me.ID)
		require.NoError(t, err)
		require.True(t, actor.IsSeeker())

		_, err = handler.GetActor("missing")
		require.True(t, apperror.Is(err, apperror.KindUnauthorized))
		_, err = handler.GetActor("")
		require.True(t, apperror.Is(err, apperror.KindUnauthorized))
	})
	t.Run(`profile update and file replacement`, func(t *testing.T) {
		view, err := handler.UpdateProfile(me.ID, usersapimodels.ProfileData{Bio: "backend dev", CareerGapYears: 2})
		require.NoError(t, err)
		require.Equal(t, "backend dev", view.Bio)
		require.Equal(t, 2, view.CareerGapYears)

		ctx := context.Background()
		info := dbmodels.UploadFileInfo{FileName: "cv.pdf", FileType: dbmodels.ProfileResume}
		require.NoError(t, handler.UploadProfileFile(ctx, me.ID, info, bytes.NewReader([]byte("v1")), 2))
		require.NoError(t, handler.UploadProfileFile(ctx, me.ID, info, bytes.NewReader([]byte("v2")), 2))
		require.Equal(t, []string{"f1"}, files.deleted)

		data, _, err := handler.GetProfileFile(ctx, me.ID, dbmodels.ProfileResume)
		require.NoError(t, err)
		require.Equal(t, []byte("v2"), data)

		_, _, err = handler.GetProfileFile(ctx, me.ID, dbmodels.ProfileVideoPitch)
		require.True(t, apperror.Is(err, apperror.KindNotFound))
		_, _, err = handler.GetProfileFile(ctx, me.ID, dbmodels.FileType("avatar"))
		require.True(t, apperror.Is(err, apperror.KindValidation))
	})
	t.Run(`deactivated account`, func(t *testing.T) {
		require.NoError(t, store.Update(me.ID, map[string]interface{}{"is_active": false}))
		actor, err := handler.GetActor(me.ID)
		require.NoError(t, err)
		require.False(t, actor.IsAuthenticated())
		_, err = handler.Login("seeker@example.com", "password1")
		require.True(t, apperror.Is(err, apperror.KindPermissionDenied))
	})
	t.Run(`bootstrap admin is idempotent`, func(t *testing.T) {
		require.NoError(t, handler.EnsureAdmin("admin@example.com", "adminpass", "Admin"))
		require.NoError(t, handler.EnsureAdmin("admin@example.com", "adminpass", "Admin"))
		require.NoError(t, handler.EnsureAdmin("", "", ""))
		list, count, err := handler.List(usersapimodels.UserFilter{Role: string(models.RoleAdmin)})
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
		require.Equal(t, "admin@example.com", list[0].Email)
	})
	t.Run(`permissions without registry`, func(t *testing.T) {
		actor, _ := handler.GetActor(me.ID)
		view := handler.Permissions(actor)
		require.Empty(t, view.Permissions)
	})
}
