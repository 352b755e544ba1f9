package service

import (
	"alcyxob/gym-membership/internal/domain"
	"alcyxob/gym-membership/internal/repository"
	"bytes"
	"context"
	"io"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories. They hand out copies, validate on write and enforce
// the same unique keys as the MongoDB indexes.

func byID(a, b primitive.ObjectID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]domain.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if err := user.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return primitive.NilObjectID, repository.ErrConflict
		}
	}
	user.ID = primitive.NewObjectID()
	user.DateJoined = time.Now().UTC()
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakePlanRepo struct {
	plans map[primitive.ObjectID]domain.MembershipPlan
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *domain.MembershipPlan) (primitive.ObjectID, error) {
	if err := plan.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	plan.ID = primitive.NewObjectID()
	r.plans[plan.ID] = *plan
	return plan.ID, nil
}

func (r *fakePlanRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MembershipPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *fakePlanRepo) List(ctx context.Context) ([]domain.MembershipPlan, error) {
	out := []domain.MembershipPlan{}
	for _, p := range r.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DurationDays != out[j].DurationDays {
			return out[i].DurationDays < out[j].DurationDays
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *fakePlanRepo) Update(ctx context.Context, plan *domain.MembershipPlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	if _, ok := r.plans[plan.ID]; !ok {
		return repository.ErrNotFound
	}
	r.plans[plan.ID] = *plan
	return nil
}

func (r *fakePlanRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.plans[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.plans, id)
	return nil
}

type fakeClientRepo struct {
	clients map[primitive.ObjectID]domain.Client
}

func (r *fakeClientRepo) Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error) {
	if err := client.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	for _, c := range r.clients {
		if c.UserID == client.UserID {
			return primitive.NilObjectID, repository.ErrConflict
		}
	}
	client.ID = primitive.NewObjectID()
	stored := *client
	stored.User, stored.MembershipPlan = nil, nil
	r.clients[client.ID] = stored
	return client.ID, nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *fakeClientRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.UserID == userID {
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	out := []domain.Client{}
	for _, c := range r.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return byID(out[i].ID, out[j].ID) })
	return out, nil
}

func (r *fakeClientRepo) Update(ctx context.Context, client *domain.Client) error {
	if err := client.Validate(); err != nil {
		return err
	}
	if _, ok := r.clients[client.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *client
	stored.User, stored.MembershipPlan = nil, nil
	r.clients[client.ID] = stored
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.clients[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) ClearMembershipPlan(ctx context.Context, planID primitive.ObjectID) (int64, error) {
	var n int64
	for id, c := range r.clients {
		if c.MembershipPlanID != nil && *c.MembershipPlanID == planID {
			c.MembershipPlanID = nil
			r.clients[id] = c
			n++
		}
	}
	return n, nil
}

type fakeTrainerRepo struct {
	trainers map[primitive.ObjectID]domain.Trainer
}

func (r *fakeTrainerRepo) Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error) {
	if err := trainer.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	for _, t := range r.trainers {
		if t.UserID == trainer.UserID {
			return primitive.NilObjectID, repository.ErrConflict
		}
	}
	trainer.ID = primitive.NewObjectID()
	stored := *trainer
	stored.User = nil
	r.trainers[trainer.ID] = stored
	return trainer.ID, nil
}

func (r *fakeTrainerRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	t, ok := r.trainers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *fakeTrainerRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Trainer, error) {
	for _, t := range r.trainers {
		if t.UserID == userID {
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeTrainerRepo) List(ctx context.Context) ([]domain.Trainer, error) {
	out := []domain.Trainer{}
	for _, t := range r.trainers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return byID(out[i].ID, out[j].ID) })
	return out, nil
}

func (r *fakeTrainerRepo) Update(ctx context.Context, trainer *domain.Trainer) error {
	if err := trainer.Validate(); err != nil {
		return err
	}
	if _, ok := r.trainers[trainer.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *trainer
	stored.User = nil
	r.trainers[trainer.ID] = stored
	return nil
}

func (r *fakeTrainerRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.trainers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.trainers, id)
	return nil
}

type fakeSessionRepo struct {
	sessions map[primitive.ObjectID]domain.WorkoutSession
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	if err := session.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	session.ID = primitive.NewObjectID()
	stored := *session
	stored.Trainer = nil
	r.sessions[session.ID] = stored
	return session.ID, nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *fakeSessionRepo) List(ctx context.Context, filter repository.SessionFilter) ([]domain.WorkoutSession, error) {
	out := []domain.WorkoutSession{}
	for _, s := range r.sessions {
		if filter.TrainerID != nil && s.TrainerID != *filter.TrainerID {
			continue
		}
		if filter.From != nil && s.StartTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !s.StartTime.Before(*filter.To) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return byID(out[i].ID, out[j].ID)
	})
	return out, nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *domain.WorkoutSession) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if _, ok := r.sessions[session.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *session
	stored.Trainer = nil
	r.sessions[session.ID] = stored
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.sessions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) ListIDsByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	ids := []primitive.ObjectID{}
	for id, s := range r.sessions {
		if s.TrainerID == trainerID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *fakeSessionRepo) DeleteByTrainerID(ctx context.Context, trainerID primitive.ObjectID) (int64, error) {
	var n int64
	for id, s := range r.sessions {
		if s.TrainerID == trainerID {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

type fakeAttendanceRepo struct {
	records map[primitive.ObjectID]domain.Attendance
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, attendance *domain.Attendance) (primitive.ObjectID, error) {
	if err := attendance.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	for _, a := range r.records {
		if a.ClientID == attendance.ClientID && a.WorkoutSessionID == attendance.WorkoutSessionID {
			return primitive.NilObjectID, repository.ErrConflict
		}
	}
	attendance.ID = primitive.NewObjectID()
	r.records[attendance.ID] = r.strip(*attendance)
	return attendance.ID, nil
}

func (r *fakeAttendanceRepo) strip(a domain.Attendance) domain.Attendance {
	a.Client, a.WorkoutSession = nil, nil
	return a
}

func (r *fakeAttendanceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Attendance, error) {
	a, ok := r.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAttendanceRepo) GetByClientAndSession(ctx context.Context, clientID, sessionID primitive.ObjectID) (*domain.Attendance, error) {
	for _, a := range r.records {
		if a.ClientID == clientID && a.WorkoutSessionID == sessionID {
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAttendanceRepo) list(match func(domain.Attendance) bool) []domain.Attendance {
	out := []domain.Attendance{}
	for _, a := range r.records {
		if match(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return byID(out[i].ID, out[j].ID) })
	return out
}

func (r *fakeAttendanceRepo) ListBySession(ctx context.Context, sessionID primitive.ObjectID) ([]domain.Attendance, error) {
	return r.list(func(a domain.Attendance) bool { return a.WorkoutSessionID == sessionID }), nil
}

func (r *fakeAttendanceRepo) ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]domain.Attendance, error) {
	return r.list(func(a domain.Attendance) bool { return a.ClientID == clientID }), nil
}

func (r *fakeAttendanceRepo) Update(ctx context.Context, attendance *domain.Attendance) error {
	if err := attendance.Validate(); err != nil {
		return err
	}
	if _, ok := r.records[attendance.ID]; !ok {
		return repository.ErrNotFound
	}
	r.records[attendance.ID] = r.strip(*attendance)
	return nil
}

func (r *fakeAttendanceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeAttendanceRepo) DeleteByClientID(ctx context.Context, clientID primitive.ObjectID) (int64, error) {
	var n int64
	for id, a := range r.records {
		if a.ClientID == clientID {
			delete(r.records, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeAttendanceRepo) DeleteBySessionIDs(ctx context.Context, sessionIDs []primitive.ObjectID) (int64, error) {
	var n int64
	for id, a := range r.records {
		for _, sessionID := range sessionIDs {
			if a.WorkoutSessionID == sessionID {
				delete(r.records, id)
				n++
				break
			}
		}
	}
	return n, nil
}

type fakeStore struct {
	users       *fakeUserRepo
	plans       *fakePlanRepo
	clients     *fakeClientRepo
	trainers    *fakeTrainerRepo
	sessions    *fakeSessionRepo
	attendances *fakeAttendanceRepo
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       &fakeUserRepo{users: map[primitive.ObjectID]domain.User{}},
		plans:       &fakePlanRepo{plans: map[primitive.ObjectID]domain.MembershipPlan{}},
		clients:     &fakeClientRepo{clients: map[primitive.ObjectID]domain.Client{}},
		trainers:    &fakeTrainerRepo{trainers: map[primitive.ObjectID]domain.Trainer{}},
		sessions:    &fakeSessionRepo{sessions: map[primitive.ObjectID]domain.WorkoutSession{}},
		attendances: &fakeAttendanceRepo{records: map[primitive.ObjectID]domain.Attendance{}},
	}
}

func (f *fakeStore) repos() Repositories {
	return Repositories{
		Users:       f.users,
		Plans:       f.plans,
		Clients:     f.clients,
		Trainers:    f.trainers,
		Sessions:    f.sessions,
		Attendances: f.attendances,
	}
}

// fakeFileStorage keeps uploaded objects in memory.
type fakeFileStorage struct {
	objects      map[string][]byte
	contentTypes map[string]string
	expiries     map[string]time.Duration
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{
		objects:      map[string][]byte{},
		contentTypes: map[string]string{},
		expiries:     map[string]time.Duration{},
	}
}

func (f *fakeFileStorage) PutObject(ctx context.Context, objectKey string, contentType string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[objectKey] = data
	f.contentTypes[objectKey] = contentType
	return nil
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	f.expiries[objectKey] = expires
	return "https://storage.test/" + objectKey + "?signed", nil
}
