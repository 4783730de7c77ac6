package jobshandler

import (
	"workvera-backend/db"
	"workvera-backend/lib/access"
	jobstore "workvera-backend/lib/jobs/store"
	"workvera-backend/lib/utils/app-error"
	initchecker "workvera-backend/lib/utils/init-checker"
	jobsapimodels "workvera-backend/models/api/jobs"
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(actor access.Actor, data jobsapimodels.JobPostData) (jobsapimodels.JobPostView, error)
	GetByID(actor access.Actor, id string) (jobsapimodels.JobPostView, error)
	List(actor access.Actor, filter jobsapimodels.JobPostFilter) (list []jobsapimodels.JobPostView, rowCount int64, err error)
	ListMine(actor access.Actor, filter jobsapimodels.JobPostFilter) (list []jobsapimodels.JobPostView, rowCount int64, err error)
	Update(actor access.Actor, id string, data jobsapimodels.JobPostData) (jobsapimodels.JobPostView, error)
	Patch(actor access.Actor, id string, data jobsapimodels.JobPostPatch) (jobsapimodels.JobPostView, error)
	Delete(actor access.Actor, id string) error
	// GetForAction returns the posting if it is inside the actor's scope for action.
	GetForAction(actor access.Actor, id string, action access.Action) (*dbmodels.JobPost, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("db.DB", db.DB)
	Instance = NewInstance(jobstore.NewInstance(db.DB))
}

func NewInstance(store jobstore.Provider) Provider {
	return impl{
		store: store,
	}
}

type impl struct {
	store jobstore.Provider
}

func Subject(rec dbmodels.JobPost) access.Subject {
	return access.Subject{IsActive: rec.IsActive, EmployerID: rec.EmployerID}
}

func (i impl) Create(actor access.Actor, data jobsapimodels.JobPostData) (jobsapimodels.JobPostView, error) {
	if !actor.IsEmployer() {
		return jobsapimodels.JobPostView{}, apperror.Validation("only employers can create job postings")
	}
	logger := log.WithField("user_id", actor.ID)
	rec := data.ToDB(actor.ID)
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create job posting")
		return jobsapimodels.JobPostView{}, errors.Wrap(err, "failed to create job posting")
	}
	logger.WithField("rec_id", id).Info("job posting created")
	return i.GetByID(actor, id)
}

func (i impl) GetForAction(actor access.Actor, id string, action access.Action) (*dbmodels.JobPost, error) {
	scope, err := access.Resolve(actor, access.ResourceJobPost, action)
	if err != nil {
		return nil, err
	}
	rec, err := i.store.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, access.NotFound(access.ResourceJobPost)
	}
	return rec, nil
}

func (i impl) GetByID(actor access.Actor, id string) (jobsapimodels.JobPostView, error) {
	rec, err := i.GetForAction(actor, id, access.ActionRetrieve)
	if err != nil {
		return jobsapimodels.JobPostView{}, err
	}
	return jobsapimodels.JobPostConvert(*rec), nil
}

func (i impl) List(actor access.Actor, filter jobsapimodels.JobPostFilter) ([]jobsapimodels.JobPostView, int64, error) {
	return i.list(actor, access.ActionList, filter)
}

func (i impl) ListMine(actor access.Actor, filter jobsapimodels.JobPostFilter) ([]jobsapimodels.JobPostView, int64, error) {
	return i.list(actor, access.ActionMine, filter)
}

func (i impl) list(actor access.Actor, action access.Action, filter jobsapimodels.JobPostFilter) (list []jobsapimodels.JobPostView, rowCount int64, err error) {
	scope, err := access.Resolve(actor, access.ResourceJobPost, action)
	if err != nil {
		return nil, 0, err
	}
	dbFilter := filter.ToDB()
	rowCount, err = i.store.ListCount(scope, dbFilter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.Paging().GetPage()
	recList, err := i.store.List(scope, dbFilter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]jobsapimodels.JobPostView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, jobsapimodels.JobPostConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) getForWrite(actor access.Actor, id string, action access.Action) (*dbmodels.JobPost, error) {
	rec, err := i.GetForAction(actor, id, action)
	if err != nil {
		return nil, err
	}
	if err = access.Authorize(actor, access.JobPostOwnership(rec.EmployerID), action); err != nil {
		return nil, err
	}
	return rec, nil
}

func (i impl) Update(actor access.Actor, id string, data jobsapimodels.JobPostData) (jobsapimodels.JobPostView, error) {
	return i.update(actor, id, data.UpdateMap())
}

func (i impl) Patch(actor access.Actor, id string, data jobsapimodels.JobPostPatch) (jobsapimodels.JobPostView, error) {
	return i.update(actor, id, data.UpdateMap())
}

func (i impl) update(actor access.Actor, id string, updMap map[string]interface{}) (jobsapimodels.JobPostView, error) {
	if _, err := i.getForWrite(actor, id, access.ActionUpdate); err != nil {
		return jobsapimodels.JobPostView{}, err
	}
	logger := log.WithFields(log.Fields{"user_id": actor.ID, "rec_id": id})
	if err := i.store.Update(id, updMap); err != nil {
		if !apperror.Is(err, apperror.KindNotFound) {
			logger.WithError(err).Error("failed to update job posting")
		}
		return jobsapimodels.JobPostView{}, err
	}
	// the owner keeps access to a posting it just deactivated
	rec, err := i.GetForAction(actor, id, access.ActionUpdate)
	if err != nil {
		return jobsapimodels.JobPostView{}, err
	}
	return jobsapimodels.JobPostConvert(*rec), nil
}

func (i impl) Delete(actor access.Actor, id string) error {
	if _, err := i.getForWrite(actor, id, access.ActionDelete); err != nil {
		return err
	}
	if err := i.store.Delete(id); err != nil {
		log.WithFields(log.Fields{"user_id": actor.ID, "rec_id": id}).WithError(err).Error("failed to delete job posting")
		return err
	}
	return nil
}
