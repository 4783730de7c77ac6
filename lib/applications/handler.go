package applicationshandler

import (
	"bytes"
	"fmt"
	"workvera-backend/db"
	"workvera-backend/lib/access"
	applicationstore "workvera-backend/lib/applications/store"
	pdfexport "workvera-backend/lib/export/pdf"
	xlsexport "workvera-backend/lib/export/xls"
	jobshandler "workvera-backend/lib/jobs"
	"workvera-backend/lib/utils/app-error"
	initchecker "workvera-backend/lib/utils/init-checker"
	"workvera-backend/models"
	applicationsapimodels "workvera-backend/models/api/applications"
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Apply(actor access.Actor, jobID string, data applicationsapimodels.ApplyRequest) (applicationsapimodels.ApplicationView, error)
	GetByID(actor access.Actor, id string) (applicationsapimodels.ApplicationView, error)
	List(actor access.Actor, filter applicationsapimodels.ApplicationFilter) (list []applicationsapimodels.ApplicationView, rowCount int64, err error)
	ChangeStatus(actor access.Actor, id string, status models.ApplicationStatus) (applicationsapimodels.ApplicationView, error)
	Delete(actor access.Actor, id string) error
	ExportForJob(actor access.Actor, jobID string) (*bytes.Buffer, error)
	SummaryPDF(actor access.Actor, id string) (data []byte, fileName string, err error)
}

// PostingSource resolves a job posting inside the caller's visibility scope.
type PostingSource interface {
	GetForAction(actor access.Actor, id string, action access.Action) (*dbmodels.JobPost, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db.DB", db.DB,
		"jobshandler.Instance", jobshandler.Instance,
		"xlsexport.Instance", xlsexport.Instance,
	)
	Instance = NewInstance(applicationstore.NewInstance(db.DB), jobshandler.Instance, xlsexport.Instance)
}

func NewInstance(store applicationstore.Provider, postings PostingSource, xls xlsexport.Provider) Provider {
	return impl{
		store:    store,
		postings: postings,
		xls:      xls,
		unique:   access.NewUniquenessEnforcer().Register(access.UniqueApplication, store.Exists),
	}
}

type impl struct {
	store    applicationstore.Provider
	postings PostingSource
	xls      xlsexport.Provider
	unique   *access.UniquenessEnforcer
}

func Subject(rec dbmodels.Application) access.Subject {
	return access.Subject{ApplicantID: rec.UserID, EmployerID: rec.EmployerID()}
}

func (i impl) Apply(actor access.Actor, jobID string, data applicationsapimodels.ApplyRequest) (applicationsapimodels.ApplicationView, error) {
	posting, err := i.postings.GetForAction(actor, jobID, access.ActionRetrieve)
	if err != nil {
		return applicationsapimodels.ApplicationView{}, err
	}
	if !actor.IsSeeker() {
		return applicationsapimodels.ApplicationView{}, apperror.Validation("only job seekers can apply for jobs")
	}
	logger := log.WithFields(log.Fields{"user_id": actor.ID, "job_id": posting.ID})
	if err = i.unique.CheckUnique(actor, posting.ID, access.UniqueApplication); err != nil {
		return applicationsapimodels.ApplicationView{}, err
	}
	rec := dbmodels.Application{
		UserID:      actor.ID,
		JobPostID:   posting.ID,
		Status:      models.ApplicationStatusSubmitted,
		CoverLetter: data.CoverLetter,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		if access.IsUniqueViolation(err) {
			logger.Info("duplicate application rejected at commit")
			return applicationsapimodels.ApplicationView{}, access.TranslateUniqueViolation(err, access.UniqueApplication)
		}
		logger.WithError(err).Error("failed to create application")
		return applicationsapimodels.ApplicationView{}, errors.Wrap(err, "failed to create application")
	}
	logger.WithField("rec_id", id).Info("application submitted")
	return i.GetByID(actor, id)
}

func (i impl) get(actor access.Actor, id string, action access.Action) (*dbmodels.Application, error) {
	scope, err := access.Resolve(actor, access.ResourceApplication, action)
	if err != nil {
		return nil, err
	}
	rec, err := i.store.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, access.NotFound(access.ResourceApplication)
	}
	return rec, nil
}

func (i impl) GetByID(actor access.Actor, id string) (applicationsapimodels.ApplicationView, error) {
	rec, err := i.get(actor, id, access.ActionRetrieve)
	if err != nil {
		return applicationsapimodels.ApplicationView{}, err
	}
	return applicationsapimodels.ApplicationConvert(*rec), nil
}

func (i impl) List(actor access.Actor, filter applicationsapimodels.ApplicationFilter) (list []applicationsapimodels.ApplicationView, rowCount int64, err error) {
	scope, err := access.Resolve(actor, access.ResourceApplication, access.ActionList)
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
	list = make([]applicationsapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicationsapimodels.ApplicationConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) ChangeStatus(actor access.Actor, id string, status models.ApplicationStatus) (applicationsapimodels.ApplicationView, error) {
	rec, err := i.get(actor, id, access.ActionTransition)
	if err != nil {
		return applicationsapimodels.ApplicationView{}, err
	}
	if err = access.ValidateTransition(actor, rec.Status, rec.EmployerID(), status); err != nil {
		return applicationsapimodels.ApplicationView{}, err
	}
	logger := log.WithFields(log.Fields{"user_id": actor.ID, "rec_id": id})
	updated, err := i.store.UpdateStatus(id, rec.Status, status)
	if err != nil {
		logger.WithError(err).Error("failed to update application status")
		return applicationsapimodels.ApplicationView{}, err
	}
	if !updated {
		return applicationsapimodels.ApplicationView{}, apperror.Conflict("application status was changed by another request, reload and retry")
	}
	logger.WithFields(log.Fields{"from": rec.Status, "to": status}).Info("application status changed")
	return i.GetByID(actor, id)
}

func (i impl) Delete(actor access.Actor, id string) error {
	rec, err := i.get(actor, id, access.ActionDelete)
	if err != nil {
		return err
	}
	if err = access.Authorize(actor, access.ApplicationOwnership(rec.UserID, rec.EmployerID()), access.ActionDelete); err != nil {
		return err
	}
	if err = i.store.Delete(id); err != nil {
		log.WithFields(log.Fields{"user_id": actor.ID, "rec_id": id}).WithError(err).Error("failed to delete application")
		return err
	}
	return nil
}

func (i impl) ExportForJob(actor access.Actor, jobID string) (*bytes.Buffer, error) {
	posting, err := i.postings.GetForAction(actor, jobID, access.ActionRetrieve)
	if err != nil {
		return nil, err
	}
	if !actor.IsEmployer() || posting.EmployerID != actor.ID {
		return nil, apperror.PermissionDenied("only the employer who owns the job posting may export its applications")
	}
	list, err := i.store.ListByJob(posting.ID)
	if err != nil {
		return nil, err
	}
	return i.xls.ExportApplicationList(posting.Title, list)
}

func (i impl) SummaryPDF(actor access.Actor, id string) ([]byte, string, error) {
	rec, err := i.get(actor, id, access.ActionRetrieve)
	if err != nil {
		return nil, "", err
	}
	summary := pdfexport.ApplicationSummary{
		Status:      rec.Status.ToHuman(),
		AppliedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		CoverLetter: rec.CoverLetter,
	}
	if rec.User != nil {
		summary.ApplicantName = rec.User.Name
		summary.ApplicantEmail = rec.User.Email
	}
	if rec.JobPost != nil {
		summary.JobTitle = rec.JobPost.Title
		if rec.JobPost.Employer != nil {
			summary.EmployerName = rec.JobPost.Employer.Name
		}
	}
	data, err := pdfexport.GenerateApplicationSummary(summary)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to generate application pdf")
	}
	return data, fmt.Sprintf("application-%s.pdf", rec.ID), nil
}
