package usershandler

import (
	"context"
	"io"
	"strings"
	"time"
	"workvera-backend/db"
	"workvera-backend/lib/access"
	filestorage "workvera-backend/lib/file-storage"
	"workvera-backend/lib/rbac"
	profilestore "workvera-backend/lib/users/profile-store"
	userstore "workvera-backend/lib/users/user-store"
	"workvera-backend/lib/utils/app-error"
	authutils "workvera-backend/lib/utils/auth-utils"
	initchecker "workvera-backend/lib/utils/init-checker"
	"workvera-backend/models"
	authapimodels "workvera-backend/models/api/auth"
	usersapimodels "workvera-backend/models/api/users"
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	Register(data authapimodels.RegisterRequest) (authapimodels.MeView, error)
	Login(email, password string) (authapimodels.JWTResponse, error)
	RefreshToken(refreshToken string) (authapimodels.JWTResponse, error)
	// GetActor reloads the caller on every request so deactivation takes effect immediately.
	GetActor(userID string) (access.Actor, error)
	Me(userID string) (authapimodels.MeView, error)
	Permissions(actor access.Actor) authapimodels.PermissionsView
	List(filter usersapimodels.UserFilter) (list []usersapimodels.UserView, rowCount int64, err error)
	GetProfile(userID string) (usersapimodels.ProfileView, error)
	UpdateProfile(userID string, data usersapimodels.ProfileData) (usersapimodels.ProfileView, error)
	UploadProfileFile(ctx context.Context, userID string, info dbmodels.UploadFileInfo, reader io.Reader, size int64) error
	GetProfileFile(ctx context.Context, userID string, fileType dbmodels.FileType) ([]byte, *dbmodels.FileStorage, error)
	EnsureAdmin(email, password, name string) error
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db.DB", db.DB,
		"filestorage.Instance", filestorage.Instance,
		"rbac.Instance", rbac.Instance,
	)
	Instance = NewInstance(userstore.NewInstance(db.DB), profilestore.NewInstance(db.DB), filestorage.Instance, rbac.Instance)
}

func NewInstance(userStore userstore.Provider, profileStore profilestore.Provider, files filestorage.Provider, permissions rbac.Provider) Provider {
	return impl{
		userStore:    userStore,
		profileStore: profileStore,
		files:        files,
		permissions:  permissions,
	}
}

type impl struct {
	userStore    userstore.Provider
	profileStore profilestore.Provider
	files        filestorage.Provider
	permissions  rbac.Provider
}

var errBadCredentials = apperror.Unauthorized("invalid email or password")

func (i impl) Register(data authapimodels.RegisterRequest) (authapimodels.MeView, error) {
	email := data.NormalizedEmail()
	logger := log.WithField("email", email)
	exist, err := i.userStore.ExistByEmail(email)
	if err != nil {
		return authapimodels.MeView{}, errors.Wrap(err, "failed to check email")
	}
	if exist {
		return authapimodels.MeView{}, apperror.Conflict("user with this email already exists")
	}
	hash, err := hashPassword(data.Password)
	if err != nil {
		return authapimodels.MeView{}, err
	}
	rec := dbmodels.User{
		Email:    email,
		Password: hash,
		Name:     strings.TrimSpace(data.Name),
		Role:     data.Role,
		IsActive: true,
	}
	id, err := i.userStore.CreateWithProfile(rec)
	if err != nil {
		if access.IsUniqueViolation(err) {
			return authapimodels.MeView{}, apperror.Conflict("user with this email already exists")
		}
		logger.WithError(err).Error("failed to create user")
		return authapimodels.MeView{}, errors.Wrap(err, "failed to create user")
	}
	rec.ID = id
	logger.WithField("user_id", id).Info("user registered")
	return authapimodels.MeConvert(rec), nil
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", email)
	user, err := i.userStore.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("failed to find user by email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("user with this email not found")
		return authapimodels.JWTResponse{}, errBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, errBadCredentials
	}
	if !user.IsActive {
		return authapimodels.JWTResponse{}, apperror.PermissionDenied("user account is disabled")
	}
	resp, err := i.issueTokens(*user)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	err = i.userStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.WithError(err).Error("failed to update last login")
	}
	return resp, nil
}

func (i impl) RefreshToken(refreshToken string) (authapimodels.JWTResponse, error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, apperror.Wrap(apperror.KindUnauthorized, err, "invalid refresh token")
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, apperror.Unauthorized("user not found")
	}
	if !user.IsActive {
		return authapimodels.JWTResponse{}, apperror.PermissionDenied("user account is disabled")
	}
	return i.issueTokens(*user)
}

func (i impl) issueTokens(user dbmodels.User) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(user.ID, user.Name, user.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "failed to sign token")
	}
	refresh, err := authutils.GetRefreshToken(user.ID, user.Name)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "failed to sign refresh token")
	}
	return authapimodels.JWTResponse{Token: token, RefreshToken: refresh}, nil
}

func (i impl) GetActor(userID string) (access.Actor, error) {
	if userID == "" {
		return access.Anonymous(), apperror.Unauthorized("authentication credentials were not provided")
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return access.Anonymous(), err
	}
	if user == nil {
		return access.Anonymous(), apperror.Unauthorized("user not found")
	}
	return access.Actor{ID: user.ID, Role: user.Role, IsActive: user.IsActive}, nil
}

func (i impl) Me(userID string) (authapimodels.MeView, error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return authapimodels.MeView{}, err
	}
	if user == nil {
		return authapimodels.MeView{}, apperror.Unauthorized("user not found")
	}
	return authapimodels.MeConvert(*user), nil
}

func (i impl) Permissions(actor access.Actor) authapimodels.PermissionsView {
	result := authapimodels.PermissionsView{
		Role:        actor.Role,
		Permissions: map[models.Module][]models.Permission{},
	}
	if i.permissions == nil {
		return result
	}
	if permissions := i.permissions.GetPermissions(actor.Role); permissions != nil {
		result.Permissions = permissions
	}
	return result
}

func (i impl) List(filter usersapimodels.UserFilter) (list []usersapimodels.UserView, rowCount int64, err error) {
	dbFilter := filter.ToDB()
	rowCount, err = i.userStore.ListCount(dbFilter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.Paging().GetPage()
	recList, err := i.userStore.List(dbFilter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]usersapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, usersapimodels.UserConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) getUserWithProfile(userID string) (*dbmodels.User, *dbmodels.Profile, error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, apperror.NotFound("user not found")
	}
	profile, err := i.profileStore.GetByUserID(userID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, apperror.NotFound("profile not found")
	}
	return user, profile, nil
}

func (i impl) GetProfile(userID string) (usersapimodels.ProfileView, error) {
	user, profile, err := i.getUserWithProfile(userID)
	if err != nil {
		return usersapimodels.ProfileView{}, err
	}
	return usersapimodels.ProfileConvert(*user, *profile), nil
}

func (i impl) UpdateProfile(userID string, data usersapimodels.ProfileData) (usersapimodels.ProfileView, error) {
	updMap := map[string]interface{}{
		"bio":              data.Bio,
		"career_gap_years": data.CareerGapYears,
		"linkedin_url":     data.LinkedinURL,
		"github_url":       data.GithubURL,
	}
	if err := i.profileStore.Update(userID, updMap); err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to update profile")
		return usersapimodels.ProfileView{}, err
	}
	return i.GetProfile(userID)
}

func profileFileColumn(fileType dbmodels.FileType) (string, error) {
	switch fileType {
	case dbmodels.ProfileResume:
		return "resume_file_id", nil
	case dbmodels.ProfileVideoPitch:
		return "video_pitch_file_id", nil
	}
	return "", apperror.Validation("unsupported file type")
}

func profileFileID(profile dbmodels.Profile, fileType dbmodels.FileType) *string {
	switch fileType {
	case dbmodels.ProfileResume:
		return profile.ResumeFileID
	case dbmodels.ProfileVideoPitch:
		return profile.VideoPitchFileID
	}
	return nil
}

func (i impl) UploadProfileFile(ctx context.Context, userID string, info dbmodels.UploadFileInfo, reader io.Reader, size int64) error {
	column, err := profileFileColumn(info.FileType)
	if err != nil {
		return err
	}
	if i.files == nil {
		return errors.New("file storage is not configured")
	}
	_, profile, err := i.getUserWithProfile(userID)
	if err != nil {
		return err
	}
	logger := log.WithFields(log.Fields{"user_id": userID, "file_type": info.FileType})
	info.OwnerID = userID
	fileID, err := i.files.Upload(ctx, info, reader, size)
	if err != nil {
		return err
	}
	if err = i.profileStore.Update(userID, map[string]interface{}{column: fileID}); err != nil {
		logger.WithError(err).Error("failed to link file to profile")
		return err
	}
	if previous := profileFileID(*profile, info.FileType); previous != nil && *previous != fileID {
		if err = i.files.Delete(ctx, userID, *previous); err != nil {
			logger.WithError(err).Warn("failed to remove replaced file")
		}
	}
	return nil
}

func (i impl) GetProfileFile(ctx context.Context, userID string, fileType dbmodels.FileType) ([]byte, *dbmodels.FileStorage, error) {
	if _, err := profileFileColumn(fileType); err != nil {
		return nil, nil, err
	}
	if i.files == nil {
		return nil, nil, errors.New("file storage is not configured")
	}
	_, profile, err := i.getUserWithProfile(userID)
	if err != nil {
		return nil, nil, err
	}
	fileID := profileFileID(*profile, fileType)
	if fileID == nil {
		return nil, nil, apperror.NotFound("file not found")
	}
	return i.files.Get(ctx, userID, *fileID)
}

// EnsureAdmin creates the bootstrap administrator once; an existing account is left untouched.
func (i impl) EnsureAdmin(email, password, name string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}
	exist, err := i.userStore.ExistByEmail(email)
	if err != nil {
		return errors.Wrap(err, "failed to check admin account")
	}
	if exist {
		return nil
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	_, err = i.userStore.CreateWithProfile(dbmodels.User{
		Email:    email,
		Password: hash,
		Name:     name,
		Role:     models.RoleAdmin,
		IsActive: true,
	})
	if err != nil && !access.IsUniqueViolation(err) {
		return errors.Wrap(err, "failed to create admin account")
	}
	log.WithField("email", email).Info("bootstrap admin ensured")
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

