package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"jobmatch/internal/domain/account"
	"jobmatch/internal/domain/ad"
	"jobmatch/internal/domain/match"
	"jobmatch/internal/domain/resume"
	"jobmatch/internal/domain/skill"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

type pairKey struct {
	adID     uuid.UUID
	resumeID uuid.UUID
}

// fakeMatchRecordStore mimics the per-pair uniqueness and compare-and-set
// semantics of the Postgres implementation, guarded by a mutex so the
// concurrency tests exercise real races.
type fakeMatchRecordStore struct {
	mu     sync.Mutex
	byPair map[pairKey]*match.Record
}

func newFakeMatchRecordStore() *fakeMatchRecordStore {
	return &fakeMatchRecordStore{byPair: map[pairKey]*match.Record{}}
}

func (s *fakeMatchRecordStore) FindOrCreate(_ context.Context, adID, resumeID uuid.UUID) (match.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{adID: adID, resumeID: resumeID}
	if rec, ok := s.byPair[key]; ok {
		return *rec, false, nil
	}
	rec := &match.Record{
		ID:        uuid.New(),
		AdID:      adID,
		ResumeID:  resumeID,
		State:     match.StatePending,
		CreatedAt: time.Now(),
	}
	s.byPair[key] = rec
	return *rec, true, nil
}

func (s *fakeMatchRecordStore) GetByPair(_ context.Context, adID, resumeID uuid.UUID) (match.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byPair[pairKey{adID: adID, resumeID: resumeID}]
	if !ok {
		return match.Record{}, repository.ErrMatchNotFound
	}
	return *rec, nil
}

func (s *fakeMatchRecordStore) UpdateState(_ context.Context, id uuid.UUID, from, to match.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.byPair {
		if rec.ID != id {
			continue
		}
		if rec.State != from {
			return repository.ErrStateConflict
		}
		rec.State = to
		return nil
	}
	return repository.ErrMatchNotFound
}

func (s *fakeMatchRecordStore) ListForAd(_ context.Context, adID uuid.UUID, states ...match.State) ([]match.Record, error) {
	return s.list(func(rec match.Record) bool { return rec.AdID == adID }, states)
}

func (s *fakeMatchRecordStore) ListForResume(_ context.Context, resumeID uuid.UUID, states ...match.State) ([]match.Record, error) {
	return s.list(func(rec match.Record) bool { return rec.ResumeID == resumeID }, states)
}

func (s *fakeMatchRecordStore) DeleteForAd(_ context.Context, adID uuid.UUID) (int64, error) {
	return s.deleteWhere(func(key pairKey) bool { return key.adID == adID }), nil
}

func (s *fakeMatchRecordStore) DeleteForResume(_ context.Context, resumeID uuid.UUID) (int64, error) {
	return s.deleteWhere(func(key pairKey) bool { return key.resumeID == resumeID }), nil
}

func (s *fakeMatchRecordStore) list(keep func(match.Record) bool, states []match.State) ([]match.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]match.Record, 0)
	for _, rec := range s.byPair {
		if !keep(*rec) {
			continue
		}
		if len(states) > 0 && !containsState(states, rec.State) {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (s *fakeMatchRecordStore) deleteWhere(del func(pairKey) bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for key := range s.byPair {
		if del(key) {
			delete(s.byPair, key)
			n++
		}
	}
	return n
}

func containsState(states []match.State, s match.State) bool {
	for _, st := range states {
		if st == s {
			return true
		}
	}
	return false
}

type fakeAdRepo struct {
	mu       sync.Mutex
	ads      map[uuid.UUID]ad.Ad
	getCalls int
}

func newFakeAdRepo(ads ...ad.Ad) *fakeAdRepo {
	r := &fakeAdRepo{ads: map[uuid.UUID]ad.Ad{}}
	for _, a := range ads {
		r.ads[a.ID] = a
	}
	return r
}

func (r *fakeAdRepo) Create(_ context.Context, a ad.Ad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ads[a.ID] = a
	return nil
}

func (r *fakeAdRepo) GetByID(_ context.Context, id uuid.UUID) (ad.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	a, ok := r.ads[id]
	if !ok {
		return ad.Ad{}, repository.ErrAdNotFound
	}
	return a, nil
}

func (r *fakeAdRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]ad.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ad.Ad, 0)
	for _, a := range r.ads {
		if a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAdRepo) ListAll(_ context.Context) ([]ad.Ad, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ad.Ad, 0, len(r.ads))
	for _, a := range r.ads {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAdRepo) Update(_ context.Context, a ad.Ad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ads[a.ID]; !ok {
		return repository.ErrAdNotFound
	}
	r.ads[a.ID] = a
	return nil
}

func (r *fakeAdRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ads[id]; !ok {
		return repository.ErrAdNotFound
	}
	delete(r.ads, id)
	return nil
}

func (r *fakeAdRepo) AddSkill(_ context.Context, adID, skillID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.ads[adID]
	if !ok {
		return repository.ErrAdNotFound
	}
	if a.Skills == nil {
		a.Skills = skill.NewSet()
	}
	a.Skills.Add(skillID)
	r.ads[adID] = a
	return nil
}

func (r *fakeAdRepo) RemoveSkill(_ context.Context, adID, skillID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.ads[adID]; ok && a.Skills != nil {
		a.Skills.Remove(skillID)
	}
	return nil
}

type fakeResumeRepo struct {
	mu      sync.Mutex
	resumes map[uuid.UUID]resume.Resume
}

func newFakeResumeRepo(resumes ...resume.Resume) *fakeResumeRepo {
	r := &fakeResumeRepo{resumes: map[uuid.UUID]resume.Resume{}}
	for _, res := range resumes {
		r.resumes[res.ID] = res
	}
	return r
}

func (r *fakeResumeRepo) Create(_ context.Context, res resume.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumes[res.ID] = res
	return nil
}

func (r *fakeResumeRepo) GetByID(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.resumes[id]
	if !ok {
		return resume.Resume{}, repository.ErrResumeNotFound
	}
	return res, nil
}

func (r *fakeResumeRepo) ListByProfessional(_ context.Context, professionalID uuid.UUID) ([]resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]resume.Resume, 0)
	for _, res := range r.resumes {
		if res.ProfessionalID == professionalID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeResumeRepo) ListAll(_ context.Context) ([]resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]resume.Resume, 0, len(r.resumes))
	for _, res := range r.resumes {
		out = append(out, res)
	}
	return out, nil
}

func (r *fakeResumeRepo) Update(_ context.Context, res resume.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[res.ID]; !ok {
		return repository.ErrResumeNotFound
	}
	r.resumes[res.ID] = res
	return nil
}

func (r *fakeResumeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[id]; !ok {
		return repository.ErrResumeNotFound
	}
	delete(r.resumes, id)
	return nil
}

func (r *fakeResumeRepo) SetMain(_ context.Context, professionalID, resumeID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	target, ok := r.resumes[resumeID]
	if !ok || target.ProfessionalID != professionalID {
		return repository.ErrResumeNotFound
	}
	for id, res := range r.resumes {
		if res.ProfessionalID == professionalID {
			res.Main = id == resumeID
			r.resumes[id] = res
		}
	}
	return nil
}

func (r *fakeResumeRepo) AddSkill(_ context.Context, resumeID, skillID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.resumes[resumeID]
	if !ok {
		return repository.ErrResumeNotFound
	}
	if res.Skills == nil {
		res.Skills = skill.NewSet()
	}
	res.Skills.Add(skillID)
	r.resumes[resumeID] = res
	return nil
}

func (r *fakeResumeRepo) RemoveSkill(_ context.Context, resumeID, skillID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.resumes[resumeID]; ok && res.Skills != nil {
		res.Skills.Remove(skillID)
	}
	return nil
}

type fakeSkillRepo struct {
	skills     map[uuid.UUID]skill.Skill
	referenced map[uuid.UUID]bool
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: map[uuid.UUID]skill.Skill{}, referenced: map[uuid.UUID]bool{}}
}

func (r *fakeSkillRepo) Create(_ context.Context, name string) (skill.Skill, error) {
	for _, s := range r.skills {
		if skill.NormalizeName(s.Name) == skill.NormalizeName(name) {
			return skill.Skill{}, repository.ErrSkillNameTaken
		}
	}
	s := skill.Skill{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	r.skills[s.ID] = s
	return s, nil
}

func (r *fakeSkillRepo) List(_ context.Context) ([]skill.Skill, error) {
	out := make([]skill.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSkillRepo) Update(_ context.Context, id uuid.UUID, name string) (skill.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return skill.Skill{}, repository.ErrSkillNotFound
	}
	for otherID, other := range r.skills {
		if otherID != id && skill.NormalizeName(other.Name) == skill.NormalizeName(name) {
			return skill.Skill{}, repository.ErrSkillNameTaken
		}
	}
	s.Name = name
	r.skills[id] = s
	return s, nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.skills[id]; !ok {
		return repository.ErrSkillNotFound
	}
	if r.referenced[id] {
		return repository.ErrSkillReferenced
	}
	delete(r.skills, id)
	return nil
}

func (r *fakeSkillRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.skills[id]
	return ok, nil
}

type fakeCompanyRepo struct {
	companies map[uuid.UUID]account.Company
}

func newFakeCompanyRepo(companies ...account.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{companies: map[uuid.UUID]account.Company{}}
	for _, c := range companies {
		r.companies[c.ID] = c
	}
	return r
}

func (r *fakeCompanyRepo) Create(_ context.Context, c account.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (account.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return account.Company{}, repository.ErrCompanyNotFound
	}
	return c, nil
}

func (r *fakeCompanyRepo) GetByAccountID(_ context.Context, accountID uuid.UUID) (account.Company, error) {
	for _, c := range r.companies {
		if c.AccountID == accountID {
			return c, nil
		}
	}
	return account.Company{}, repository.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) SetApproved(_ context.Context, id uuid.UUID, approved bool) error {
	c, ok := r.companies[id]
	if !ok {
		return repository.ErrCompanyNotFound
	}
	c.Approved = approved
	r.companies[id] = c
	return nil
}

type fakeProfessionalRepo struct {
	professionals map[uuid.UUID]account.Professional
}

func newFakeProfessionalRepo(professionals ...account.Professional) *fakeProfessionalRepo {
	r := &fakeProfessionalRepo{professionals: map[uuid.UUID]account.Professional{}}
	for _, p := range professionals {
		r.professionals[p.ID] = p
	}
	return r
}

func (r *fakeProfessionalRepo) Create(_ context.Context, p account.Professional) error {
	r.professionals[p.ID] = p
	return nil
}

func (r *fakeProfessionalRepo) GetByID(_ context.Context, id uuid.UUID) (account.Professional, error) {
	p, ok := r.professionals[id]
	if !ok {
		return account.Professional{}, repository.ErrProfessionalNotFound
	}
	return p, nil
}

func (r *fakeProfessionalRepo) GetByAccountID(_ context.Context, accountID uuid.UUID) (account.Professional, error) {
	for _, p := range r.professionals {
		if p.AccountID == accountID {
			return p, nil
		}
	}
	return account.Professional{}, repository.ErrProfessionalNotFound
}

func (r *fakeProfessionalRepo) SetApproved(_ context.Context, id uuid.UUID, approved bool) error {
	p, ok := r.professionals[id]
	if !ok {
		return repository.ErrProfessionalNotFound
	}
	p.Approved = approved
	r.professionals[id] = p
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.deletes = append(c.deletes, key)
	return nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	notified []match.Record
}

func (n *fakeNotifier) NotifyMatchConfirmed(_ context.Context, rec match.Record) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notified = append(n.notified, rec)
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.notified)
}

// approveAllVisibility admits everything, for tests that do not exercise the
// approval gate.
type approveAllVisibility struct{}

func (approveAllVisibility) CompanyEligible(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}

func (approveAllVisibility) ProfessionalEligible(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}
