package http

import (
	"context"
	"errors"
	"io"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/contact"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// memTable is a tiny in-memory table that hands out copies, like a real store.
type memTable[T any] struct {
	mu       sync.Mutex
	resource string
	rows     map[int64]T
	nextID   int64
	idOf     func(*T) int64
	less     func(a, b *T) bool
}

func newMemTable[T any](resource string, idOf func(*T) int64, less func(a, b *T) bool) *memTable[T] {
	return &memTable[T]{resource: resource, rows: map[int64]T{}, idOf: idOf, less: less}
}

func (m *memTable[T]) insert(item *T, assign func(*T, int64)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	assign(item, m.nextID)
	m.rows[m.nextID] = *item
}

func (m *memTable[T]) update(item *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.idOf(item)
	if _, ok := m.rows[id]; !ok {
		return apperror.NewNotFound(m.resource, strconv.FormatInt(id, 10))
	}
	m.rows[id] = *item
	return nil
}

func (m *memTable[T]) remove(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return apperror.NewNotFound(m.resource, strconv.FormatInt(id, 10))
	}
	delete(m.rows, id)
	return nil
}

func (m *memTable[T]) find(id int64) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, apperror.NewNotFound(m.resource, strconv.FormatInt(id, 10))
	}
	return &row, nil
}

func (m *memTable[T]) list() []*T {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]*T, 0, len(m.rows))
	for _, row := range m.rows {
		r := row
		items = append(items, &r)
	}
	sort.Slice(items, func(i, j int) bool { return m.less(items[i], items[j]) })
	return items
}

func (m *memTable[T]) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// clock hands out strictly increasing timestamps so ordering by creation
// time is deterministic.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) tick() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

var testClock = &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}

type fakeProjectRepo struct{ *memTable[project.Project] }

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{newMemTable("project",
		func(p *project.Project) int64 { return p.ID },
		func(a, b *project.Project) bool {
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		})}
}

func (r *fakeProjectRepo) Save(_ context.Context, p *project.Project) error {
	r.insert(p, func(p *project.Project, id int64) { p.ID = id; p.CreatedAt = testClock.tick() })
	return nil
}
func (r *fakeProjectRepo) Update(_ context.Context, p *project.Project) error { return r.update(p) }
func (r *fakeProjectRepo) Delete(_ context.Context, id int64) error            { return r.remove(id) }
func (r *fakeProjectRepo) FindByID(_ context.Context, id int64) (*project.Project, error) {
	return r.find(id)
}
func (r *fakeProjectRepo) List(context.Context) ([]*project.Project, error) { return r.list(), nil }

type fakeSkillRepo struct{ *memTable[skill.Skill] }

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{newMemTable("skill",
		func(s *skill.Skill) int64 { return s.ID },
		func(a, b *skill.Skill) bool {
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return a.Name < b.Name
		})}
}

func (r *fakeSkillRepo) Save(_ context.Context, s *skill.Skill) error {
	r.insert(s, func(s *skill.Skill, id int64) { s.ID = id })
	return nil
}
func (r *fakeSkillRepo) Update(_ context.Context, s *skill.Skill) error { return r.update(s) }
func (r *fakeSkillRepo) Delete(_ context.Context, id int64) error      { return r.remove(id) }
func (r *fakeSkillRepo) FindByID(_ context.Context, id int64) (*skill.Skill, error) {
	return r.find(id)
}
func (r *fakeSkillRepo) List(context.Context) ([]*skill.Skill, error) { return r.list(), nil }

type fakeContactRepo struct{ *memTable[contact.Message] }

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{newMemTable("contact message",
		func(m *contact.Message) int64 { return m.ID },
		func(a, b *contact.Message) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		})}
}

func (r *fakeContactRepo) Save(_ context.Context, m *contact.Message) error {
	r.insert(m, func(m *contact.Message, id int64) { m.ID = id; m.CreatedAt = testClock.tick() })
	return nil
}
func (r *fakeContactRepo) Delete(_ context.Context, id int64) error { return r.remove(id) }
func (r *fakeContactRepo) List(context.Context) ([]*contact.Message, error) {
	return r.list(), nil
}

type fakeEducationRepo struct{ *memTable[education.Education] }

func newFakeEducationRepo() *fakeEducationRepo {
	return &fakeEducationRepo{newMemTable("education",
		func(e *education.Education) int64 { return e.ID },
		func(a, b *education.Education) bool {
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return a.StartYear > b.StartYear
		})}
}

func (r *fakeEducationRepo) Save(_ context.Context, e *education.Education) error {
	r.insert(e, func(e *education.Education, id int64) { e.ID = id; e.CreatedAt = testClock.tick() })
	return nil
}
func (r *fakeEducationRepo) Update(_ context.Context, e *education.Education) error {
	return r.update(e)
}
func (r *fakeEducationRepo) Delete(_ context.Context, id int64) error { return r.remove(id) }
func (r *fakeEducationRepo) FindByID(_ context.Context, id int64) (*education.Education, error) {
	return r.find(id)
}
func (r *fakeEducationRepo) List(context.Context) ([]*education.Education, error) {
	return r.list(), nil
}

type fakeExperienceRepo struct{ *memTable[experience.Experience] }

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{newMemTable("experience",
		func(e *experience.Experience) int64 { return e.ID },
		func(a, b *experience.Experience) bool {
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return a.ID < b.ID
		})}
}

func (r *fakeExperienceRepo) Save(_ context.Context, e *experience.Experience) error {
	r.insert(e, func(e *experience.Experience, id int64) { e.ID = id; e.CreatedAt = testClock.tick() })
	return nil
}
func (r *fakeExperienceRepo) Update(_ context.Context, e *experience.Experience) error {
	return r.update(e)
}
func (r *fakeExperienceRepo) Delete(_ context.Context, id int64) error { return r.remove(id) }
func (r *fakeExperienceRepo) FindByID(_ context.Context, id int64) (*experience.Experience, error) {
	return r.find(id)
}
func (r *fakeExperienceRepo) List(context.Context) ([]*experience.Experience, error) {
	return r.list(), nil
}

type fakeProfileRepo struct{ *memTable[profile.Profile] }

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{newMemTable("profile",
		func(p *profile.Profile) int64 { return p.ID },
		func(a, b *profile.Profile) bool { return a.ID < b.ID })}
}

func (r *fakeProfileRepo) Save(_ context.Context, p *profile.Profile) error {
	r.insert(p, func(p *profile.Profile, id int64) { p.ID = id; p.UpdatedAt = testClock.tick() })
	return nil
}
func (r *fakeProfileRepo) Update(_ context.Context, p *profile.Profile) error {
	p.UpdatedAt = testClock.tick()
	return r.update(p)
}
func (r *fakeProfileRepo) Delete(_ context.Context, id int64) error { return r.remove(id) }
func (r *fakeProfileRepo) FindByID(_ context.Context, id int64) (*profile.Profile, error) {
	return r.find(id)
}
func (r *fakeProfileRepo) List(context.Context) ([]*profile.Profile, error) { return r.list(), nil }

type fakeUserRepo struct{ *memTable[user.User] }

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{newMemTable("user",
		func(u *user.User) int64 { return u.ID },
		func(a, b *user.User) bool { return a.ID < b.ID })}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.list() {
		if existing.Username == u.Username {
			return apperror.NewConflict("user", "username", u.Username)
		}
	}
	r.insert(u, func(u *user.User, id int64) { u.ID = id })
	return nil
}
func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	return r.find(id)
}
func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range r.list() {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", username)
}

type fakeBlacklist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (b *fakeBlacklist) Revoke(_ context.Context, jti string, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[jti] = true
	return nil
}

func (b *fakeBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.revoked[jti], nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []service.MailMessage
	fail bool
}

func (m *fakeMailer) Send(_ context.Context, msg service.MailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, msg)
	return nil
}

type fakeUploader struct {
	mu      sync.Mutex
	uploads []string
}

func (u *fakeUploader) Upload(_ context.Context, file io.Reader, folder, publicID string) (string, error) {
	if _, err := io.ReadAll(file); err != nil {
		return "", err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.uploads = append(u.uploads, folder+"/"+publicID)
	return "https://cdn.example.com/" + folder + "/" + publicID + ".png", nil
}

func (u *fakeUploader) Delete(context.Context, string) error { return nil }

type nopPublisher struct{}

func (nopPublisher) PublishContentEvent(context.Context, service.ContentEvent) error { return nil }
func (nopPublisher) PublishContactEvent(context.Context, service.ContactEvent) error { return nil }
