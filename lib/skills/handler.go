package skillshandler

import (
	"workvera-backend/db"
	"workvera-backend/lib/access"
	skillresultstore "workvera-backend/lib/skills/result-store"
	skillstore "workvera-backend/lib/skills/skill-store"
	skillteststore "workvera-backend/lib/skills/test-store"
	"workvera-backend/lib/utils/app-error"
	initchecker "workvera-backend/lib/utils/init-checker"
	apimodels "workvera-backend/models/api"
	skillsapimodels "workvera-backend/models/api/skills"
	dbmodels "workvera-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CreateSkill(actor access.Actor, data skillsapimodels.SkillData) (skillsapimodels.SkillView, error)
	GetSkill(id string) (skillsapimodels.SkillView, error)
	ListSkills() ([]skillsapimodels.SkillView, error)
	UpdateSkill(actor access.Actor, id string, data skillsapimodels.SkillData) (skillsapimodels.SkillView, error)
	DeleteSkill(actor access.Actor, id string) error

	CreateTest(actor access.Actor, data skillsapimodels.SkillTestData) (skillsapimodels.SkillTestView, error)
	GetTest(id string) (skillsapimodels.SkillTestView, error)
	ListTests(skillID string) ([]skillsapimodels.SkillTestView, error)
	UpdateTest(actor access.Actor, id string, data skillsapimodels.SkillTestData) (skillsapimodels.SkillTestView, error)
	DeleteTest(actor access.Actor, id string) error

	Submit(actor access.Actor, testID string, data skillsapimodels.SubmitRequest) (skillsapimodels.SkillResultView, error)
	GetResult(actor access.Actor, id string) (skillsapimodels.SkillResultView, error)
	ListResults(actor access.Actor, paging apimodels.Pagination) (list []skillsapimodels.SkillResultView, rowCount int64, err error)
	ListMyResults(actor access.Actor, paging apimodels.Pagination) (list []skillsapimodels.SkillResultView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit("db.DB", db.DB)
	Instance = NewInstance(
		skillstore.NewInstance(db.DB),
		skillteststore.NewInstance(db.DB),
		skillresultstore.NewInstance(db.DB),
	)
}

func NewInstance(skills skillstore.Provider, tests skillteststore.Provider, results skillresultstore.Provider) Provider {
	return impl{
		skills:  skills,
		tests:   tests,
		results: results,
		unique:  access.NewUniquenessEnforcer().Register(access.UniqueSkillResult, results.Exists),
	}
}

type impl struct {
	skills  skillstore.Provider
	tests   skillteststore.Provider
	results skillresultstore.Provider
	unique  *access.UniquenessEnforcer
}

const skillNameTaken = "a skill with this name already exists"

func (i impl) CreateSkill(actor access.Actor, data skillsapimodels.SkillData) (skillsapimodels.SkillView, error) {
	if err := access.Authorize(actor, access.CatalogOwnership(access.ResourceSkill), access.ActionCreate); err != nil {
		return skillsapimodels.SkillView{}, err
	}
	logger := log.WithField("user_id", actor.ID)
	id, err := i.skills.Create(data.ToDB())
	if err != nil {
		if access.IsUniqueViolation(err) {
			return skillsapimodels.SkillView{}, apperror.Conflict(skillNameTaken)
		}
		logger.WithError(err).Error("failed to create skill")
		return skillsapimodels.SkillView{}, errors.Wrap(err, "failed to create skill")
	}
	logger.WithField("rec_id", id).Info("skill created")
	return i.GetSkill(id)
}

func (i impl) getSkill(id string) (*dbmodels.Skill, error) {
	rec, err := i.skills.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, access.NotFound(access.ResourceSkill)
	}
	return rec, nil
}

func (i impl) GetSkill(id string) (skillsapimodels.SkillView, error) {
	rec, err := i.getSkill(id)
	if err != nil {
		return skillsapimodels.SkillView{}, err
	}
	return skillsapimodels.SkillConvert(*rec), nil
}

func (i impl) ListSkills() ([]skillsapimodels.SkillView, error) {
	recList, err := i.skills.List()
	if err != nil {
		return nil, err
	}
	result := make([]skillsapimodels.SkillView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, skillsapimodels.SkillConvert(rec))
	}
	return result, nil
}

func (i impl) UpdateSkill(actor access.Actor, id string, data skillsapimodels.SkillData) (skillsapimodels.SkillView, error) {
	if _, err := i.getSkill(id); err != nil {
		return skillsapimodels.SkillView{}, err
	}
	if err := access.Authorize(actor, access.CatalogOwnership(access.ResourceSkill), access.ActionUpdate); err != nil {
		return skillsapimodels.SkillView{}, err
	}
	rec := data.ToDB()
	updMap := map[string]interface{}{
		"name":        rec.Name,
		"description": rec.Description,
	}
	if err := i.skills.Update(id, updMap); err != nil {
		if access.IsUniqueViolation(err) {
			return skillsapimodels.SkillView{}, apperror.Conflict(skillNameTaken)
		}
		log.WithFields(log.Fields{"user_id": actor.ID, "rec_id": id}).WithError(err).Error("failed to update skill")
		return skillsapimodels.SkillView{}, errors.Wrap(err, "failed to update skill")
	}
	return i.GetSkill(id)
}

func (i impl) DeleteSkill(actor access.Actor, id string) error {
	if _, err := i.getSkill(id); err != nil {
		return err
	}
	if err := access.Authorize(actor, access.CatalogOwnership(access.ResourceSkill), access.ActionDelete); err != nil {
		return err
	}
	return i.skills.Delete(id)
}

// checkSkillRef makes sure an optional skill reference points at an existing skill.
func (i impl) checkSkillRef(skillID *string) error {
	if skillID == nil {
		return nil
	}
	rec, err := i.skills.GetByID(*skillID)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperror.Validation("skill_id: skill does not exist")
	}
	return nil
}

func (i impl) CreateTest(actor access.Actor, data skillsapimodels.SkillTestData) (skillsapimodels.SkillTestView, error) {
	if err := access.Authorize(actor, access.CatalogOwnership(access.ResourceSkillTest), access.ActionCreate); err != nil {
		return skillsapimodels.SkillTestView{}, err
	}
	if err := i.checkSkillRef(data.SkillID); err != nil {
		return skillsapimodels.SkillTestView{}, err
	}
	logger := log.WithField("user_id", actor.ID)
	id, err := i.tests.Create(data.ToDB())
	if err != nil {
		logger.WithError(err).Error("failed to create skill test")
		return skillsapimodels.SkillTestView{}, errors.Wrap(err, "failed to create skill test")
	}
	logger.WithField("rec_id", id).Info("skill test created")
	return i.GetTest(id)
}

func (i impl) getTest(id string) (*dbmodels.SkillTest, error) {
	rec, err := i.tests.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, access.NotFound(access.ResourceSkillTest)
	}
	return rec, nil
}

func (i impl) GetTest(id string) (skillsapimodels.SkillTestView, error) {
	rec, err := i.getTest(id)
	if err != nil {
		return skillsapimodels.SkillTestView{}, err
	}
	return skillsapimodels.SkillTestConvert(*rec), nil
}

func (i impl) ListTests(skillID string) ([]skillsapimodels.SkillTestView, error) {
	recList, err := i.tests.List(skillID)
	if err != nil {
		return nil, err
	}
	result := make([]skillsapimodels.SkillTestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, skillsapimodels.SkillTestConvert(rec))
	}
	return result, nil
}

func (i impl) UpdateTest(actor access.Actor, id string, data skillsapimodels.SkillTestData) (skillsapimodels.SkillTestView, error) {
	if _, err := i.getTest(id); err != nil {
		return skillsapimodels.SkillTestView{}, err
	}
	if err := access.Authorize(actor, access.CatalogOwnership(access.ResourceSkillTest), access.ActionUpdate); err != nil {
		return skillsapimodels.SkillTestView{}, err
	}
	if err := i.checkSkillRef(data.SkillID); err != nil {
		return skillsapimodels.SkillTestView{}, err
	}
	rec := data.ToDB()
	updMap := map[string]interface{}{
		"title":       rec.Title,
		"description": rec.Description,
		"skill_id":    rec.SkillID,
	}
	if err := i.tests.Update(id, updMap); err != nil {
		log.WithFields(log.Fields{"user_id": actor.ID, "rec_id": id}).WithError(err).Error("failed to update skill test")
		return skillsapimodels.SkillTestView{}, errors.Wrap(err, "failed to update skill test")
	}
	return i.GetTest(id)
}

func (i impl) DeleteTest(actor access.Actor, id string) error {
	if _, err := i.getTest(id); err != nil {
		return err
	}
	if err := access.Authorize(actor, access.CatalogOwnership(access.ResourceSkillTest), access.ActionDelete); err != nil {
		return err
	}
	return i.tests.Delete(id)
}

func (i impl) Submit(actor access.Actor, testID string, data skillsapimodels.SubmitRequest) (skillsapimodels.SkillResultView, error) {
	if !actor.IsAuthenticated() {
		return skillsapimodels.SkillResultView{}, apperror.PermissionDenied("authentication required to submit results")
	}
	test, err := i.getTest(testID)
	if err != nil {
		return skillsapimodels.SkillResultView{}, err
	}
	if err = data.Validate(); err != nil {
		return skillsapimodels.SkillResultView{}, apperror.Wrap(apperror.KindValidation, err, err.Error())
	}
	if err = i.unique.CheckUnique(actor, test.ID, access.UniqueSkillResult); err != nil {
		return skillsapimodels.SkillResultView{}, err
	}
	logger := log.WithFields(log.Fields{"user_id": actor.ID, "skill_test_id": test.ID})
	id, err := i.results.Create(data.ToDB(actor.ID, test.ID))
	if err != nil {
		if access.IsUniqueViolation(err) {
			logger.Info("duplicate skill result rejected at commit")
			return skillsapimodels.SkillResultView{}, access.TranslateUniqueViolation(err, access.UniqueSkillResult)
		}
		logger.WithError(err).Error("failed to store skill result")
		return skillsapimodels.SkillResultView{}, errors.Wrap(err, "failed to store skill result")
	}
	logger.WithField("rec_id", id).Info("skill result submitted")
	return i.GetResult(actor, id)
}

func (i impl) GetResult(actor access.Actor, id string) (skillsapimodels.SkillResultView, error) {
	scope, err := access.Resolve(actor, access.ResourceSkillResult, access.ActionRetrieve)
	if err != nil {
		return skillsapimodels.SkillResultView{}, err
	}
	rec, err := i.results.GetByID(scope, id)
	if err != nil {
		return skillsapimodels.SkillResultView{}, err
	}
	if rec == nil {
		return skillsapimodels.SkillResultView{}, access.NotFound(access.ResourceSkillResult)
	}
	return skillsapimodels.SkillResultConvert(*rec), nil
}

func (i impl) ListResults(actor access.Actor, paging apimodels.Pagination) ([]skillsapimodels.SkillResultView, int64, error) {
	return i.listResults(actor, access.ActionList, paging)
}

func (i impl) ListMyResults(actor access.Actor, paging apimodels.Pagination) ([]skillsapimodels.SkillResultView, int64, error) {
	return i.listResults(actor, access.ActionMine, paging)
}

func (i impl) listResults(actor access.Actor, action access.Action, paging apimodels.Pagination) ([]skillsapimodels.SkillResultView, int64, error) {
	scope, err := access.Resolve(actor, access.ResourceSkillResult, action)
	if err != nil {
		return nil, 0, err
	}
	rowCount, err := i.results.ListCount(scope)
	if err != nil {
		return nil, 0, err
	}
	page, limit := paging.GetPage()
	recList, err := i.results.List(scope, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]skillsapimodels.SkillResultView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, skillsapimodels.SkillResultConvert(rec))
	}
	return result, rowCount, nil
}
