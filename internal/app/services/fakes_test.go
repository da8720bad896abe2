package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	id := f.nextID
	f.nextID++
	u := *user
	u.ID = id
	f.users[id] = &u
	return id, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) SetSuperuser(_ context.Context, id int64, superuser bool) error {
	u, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.IsSuperuser = superuser
	if superuser {
		u.IsStaff = true
	}
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, userID int64) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	u.LastLoginAt = &now
	return nil
}

type fakeStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: map[int64]*models.Student{}, nextID: 1}
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) (int64, error) {
	for _, s := range f.students {
		if s.RollNumber == student.RollNumber {
			return 0, apperrors.ErrRollNumberAlreadyExists
		}
	}
	id := f.nextID
	f.nextID++
	s := *student
	s.ID = id
	f.students[id] = &s
	return id, nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStudentRepo) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	for _, s := range f.students {
		if s.UserID != nil && *s.UserID == userID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) GetAll(_ context.Context, branch string) ([]models.Student, error) {
	var out []models.Student
	for _, s := range f.students {
		if branch == "" || s.Branch == branch {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStudentRepo) RollNumberExists(_ context.Context, rollNumber string) (bool, error) {
	for _, s := range f.students {
		if s.RollNumber == rollNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentRepo) UpdateResumePath(_ context.Context, id int64, resumePath string) error {
	s, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.ResumePath = &resumePath
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

type fakeStaffRepo struct {
	profiles map[int64]*models.StaffProfile
	nextID   int64
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{profiles: map[int64]*models.StaffProfile{}, nextID: 1}
}

func (f *fakeStaffRepo) Create(_ context.Context, profile *models.StaffProfile) (int64, error) {
	id := f.nextID
	f.nextID++
	p := *profile
	p.ID = id
	f.profiles[id] = &p
	return id, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id int64) (*models.StaffProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, apperrors.ErrStaffProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeStaffRepo) GetByUserID(_ context.Context, userID int64) (*models.StaffProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStaffProfileNotFound
}

func (f *fakeStaffRepo) GetAll(_ context.Context) ([]models.StaffProfile, error) {
	var out []models.StaffProfile
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, profile *models.StaffProfile) error {
	if _, ok := f.profiles[profile.ID]; !ok {
		return apperrors.ErrStaffProfileNotFound
	}
	copied := *profile
	f.profiles[profile.ID] = &copied
	return nil
}

func (f *fakeStaffRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.profiles[id]; !ok {
		return apperrors.ErrStaffProfileNotFound
	}
	delete(f.profiles, id)
	return nil
}

type fakeTokenRepo struct {
	tokens map[string]*models.RefreshToken
	nextID int64
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*models.RefreshToken{}, nextID: 1}
}

func (f *fakeTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	token.ID = f.nextID
	f.nextID++
	token.CreatedAt = time.Now()
	copied := *token
	f.tokens[token.Token] = &copied
	return nil
}

func (f *fakeTokenRepo) GetByToken(_ context.Context, token string) (*models.RefreshToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTokenRepo) Revoke(_ context.Context, token string) error {
	t, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	t.Revoked = true
	return nil
}

func (f *fakeTokenRepo) RevokeAllForUser(_ context.Context, userID int64) error {
	for _, t := range f.tokens {
		if t.UserID == userID {
			t.Revoked = true
		}
	}
	return nil
}

func (f *fakeTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	var n int64
	for k, t := range f.tokens {
		if time.Now().After(t.ExpiresAt) {
			delete(f.tokens, k)
			n++
		}
	}
	return n, nil
}

type registrationKey struct {
	studentID int64
	driveID   int64
}

type fakeRegistrationRepo struct {
	entries map[registrationKey]time.Time
	drives  *fakeDriveRepo
}

func newFakeRegistrationRepo(drives *fakeDriveRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{entries: map[registrationKey]time.Time{}, drives: drives}
}

func (f *fakeRegistrationRepo) CreateIfAbsent(_ context.Context, studentID, driveID int64) (bool, error) {
	key := registrationKey{studentID, driveID}
	if _, ok := f.entries[key]; ok {
		return false, nil
	}
	f.entries[key] = time.Now()
	return true, nil
}

func (f *fakeRegistrationRepo) Exists(_ context.Context, studentID, driveID int64) (bool, error) {
	_, ok := f.entries[registrationKey{studentID, driveID}]
	return ok, nil
}

func (f *fakeRegistrationRepo) ListAvailableDrives(_ context.Context, studentID int64) ([]models.PlacementDrive, error) {
	var out []models.PlacementDrive
	for _, d := range f.drives.drives {
		if _, ok := f.entries[registrationKey{studentID, d.ID}]; !ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) ListRegisteredDrives(_ context.Context, studentID int64) ([]models.RegisteredDrive, error) {
	var out []models.RegisteredDrive
	for key, at := range f.entries {
		if key.studentID != studentID {
			continue
		}
		d, ok := f.drives.drives[key.driveID]
		if !ok {
			continue
		}
		out = append(out, models.RegisteredDrive{
			Registration: models.Registration{StudentID: studentID, DriveID: key.driveID, RegisteredAt: at},
			Drive:        *d,
		})
	}
	return out, nil
}

type fakeDriveRepo struct {
	drives map[int64]*models.PlacementDrive
	nextID int64
}

func newFakeDriveRepo() *fakeDriveRepo {
	return &fakeDriveRepo{drives: map[int64]*models.PlacementDrive{}, nextID: 1}
}

func (f *fakeDriveRepo) Create(_ context.Context, drive *models.PlacementDrive) (int64, error) {
	id := f.nextID
	f.nextID++
	d := *drive
	d.ID = id
	d.CreatedAt = time.Now()
	f.drives[id] = &d
	return id, nil
}

func (f *fakeDriveRepo) GetByID(_ context.Context, id int64) (*models.PlacementDrive, error) {
	d, ok := f.drives[id]
	if !ok {
		return nil, apperrors.ErrDriveNotFound
	}
	copied := *d
	return &copied, nil
}

func (f *fakeDriveRepo) GetAll(_ context.Context, companyName string, page, pageSize int) ([]models.PlacementDrive, int64, error) {
	var out []models.PlacementDrive
	for _, d := range f.drives {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDriveRepo) Update(_ context.Context, drive *models.PlacementDrive) error {
	if _, ok := f.drives[drive.ID]; !ok {
		return apperrors.ErrDriveNotFound
	}
	copied := *drive
	f.drives[drive.ID] = &copied
	return nil
}

func (f *fakeDriveRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.drives[id]; !ok {
		return apperrors.ErrDriveNotFound
	}
	delete(f.drives, id)
	return nil
}

type fakeContactRepo struct {
	messages map[int64]*models.ContactMessage
	nextID   int64
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{messages: map[int64]*models.ContactMessage{}, nextID: 1}
}

func (f *fakeContactRepo) Create(_ context.Context, message *models.ContactMessage) (int64, error) {
	id := f.nextID
	f.nextID++
	m := *message
	m.ID = id
	m.CreatedAt = time.Now()
	f.messages[id] = &m
	return id, nil
}

func (f *fakeContactRepo) GetAll(_ context.Context) ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	for _, m := range f.messages {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeContactRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.messages[id]; !ok {
		return false, nil
	}
	delete(f.messages, id)
	return true, nil
}

type materialKey struct {
	kind models.MaterialKind
	id   int64
}

type fakeMaterialRepo struct {
	materials map[materialKey]*models.Material
	nextID    int64
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{materials: map[materialKey]*models.Material{}, nextID: 1}
}

func (f *fakeMaterialRepo) Create(_ context.Context, material *models.Material) (int64, error) {
	id := f.nextID
	f.nextID++
	m := *material
	m.ID = id
	m.UploadedAt = time.Now()
	f.materials[materialKey{material.Kind, id}] = &m
	return id, nil
}

func (f *fakeMaterialRepo) GetByID(_ context.Context, kind models.MaterialKind, id int64) (*models.Material, error) {
	m, ok := f.materials[materialKey{kind, id}]
	if !ok {
		return nil, apperrors.ErrMaterialNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMaterialRepo) GetAll(_ context.Context, kind models.MaterialKind) ([]models.Material, error) {
	var out []models.Material
	for key, m := range f.materials {
		if key.kind == kind {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMaterialRepo) Delete(_ context.Context, kind models.MaterialKind, id int64) error {
	key := materialKey{kind, id}
	if _, ok := f.materials[key]; !ok {
		return apperrors.ErrMaterialNotFound
	}
	delete(f.materials, key)
	return nil
}

// fakeStorage records saved paths without touching the filesystem.
type fakeStorage struct {
	saved   []string
	deleted []string
	nextID  int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{}
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader, subdir string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	f.nextID++
	path := fmt.Sprintf("uploads/%s/file-%d%s", subdir, f.nextID, filepath.Ext(fileHeader.Filename))
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeStorage) DeleteFile(path string) error {
	if path == "" {
		return nil
	}
	f.deleted = append(f.deleted, path)
	return nil
}
