package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models/dto"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
)

type studentFixture struct {
	users    *fakeUserRepo
	students *fakeStudentRepo
	staff    *fakeStaffRepo
	storage  *fakeStorage
	svc      *StudentService
}

func newStudentFixture() *studentFixture {
	f := &studentFixture{
		users:    newFakeUserRepo(),
		students: newFakeStudentRepo(),
		staff:    newFakeStaffRepo(),
		storage:  newFakeStorage(),
	}
	f.svc = NewStudentService(f.students, f.users, f.staff, f.storage, zerolog.Nop())
	return f
}

func createStudentReq(roll, branch string) *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		FullName:       "Student " + roll,
		RollNumber:     roll,
		Email:          roll + "@example.com",
		Branch:         branch,
		GraduationYear: 2026,
	}
}

func TestCreateStudentWithLoginIdentity(t *testing.T) {
	f := newStudentFixture()

	req := createStudentReq("R100", "CSE")
	req.Password = "S3cret!pass"
	resp, err := f.svc.CreateStudent(context.Background(), req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	user, err := f.users.GetUserByEmail(context.Background(), "R100@example.com")
	if err != nil {
		t.Fatalf("identity not created: %v", err)
	}
	if user.IsStaff || user.IsSuperuser || !user.IsActive {
		t.Fatalf("identity flags = %+v", user)
	}
	if user.Password == "S3cret!pass" {
		t.Fatal("password stored in plaintext")
	}

	student, err := f.students.GetByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("student record: %v", err)
	}
	if student.UserID == nil || *student.UserID != user.ID {
		t.Fatalf("student not linked to identity: %+v", student)
	}
}

func TestCreateStudentWithoutPasswordHasNoIdentity(t *testing.T) {
	f := newStudentFixture()

	if _, err := f.svc.CreateStudent(context.Background(), createStudentReq("R200", "ECE")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(f.users.users) != 0 {
		t.Fatalf("identity created without password: %+v", f.users.users)
	}
}

func TestCreateStudentDuplicateRollCleansUpIdentity(t *testing.T) {
	f := newStudentFixture()

	if _, err := f.svc.CreateStudent(context.Background(), createStudentReq("R300", "CSE")); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := createStudentReq("R300", "CSE")
	dup.Email = "other@example.com"
	dup.Password = "S3cret!pass"
	if _, err := f.svc.CreateStudent(context.Background(), dup); !errors.Is(err, apperrors.ErrRollNumberAlreadyExists) {
		t.Fatalf("err = %v, want ErrRollNumberAlreadyExists", err)
	}
	if len(f.users.users) != 0 {
		t.Fatalf("orphaned identity left behind: %+v", f.users.users)
	}
}

func TestListStudentsCoordinatorScopedToBranch(t *testing.T) {
	f := newStudentFixture()

	if _, err := f.svc.CreateStudent(context.Background(), createStudentReq("C1", "CSE")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.svc.CreateStudent(context.Background(), createStudentReq("E1", "ECE")); err != nil {
		t.Fatalf("create: %v", err)
	}

	coordID, _ := f.users.CreateUser(context.Background(), &models.User{
		Email: "coord@example.com", IsStaff: true, IsActive: true,
	})
	f.staff.Create(context.Background(), &models.StaffProfile{
		UserID: coordID, Name: "Coord", Role: models.RoleDepartmentCoordinator, Branch: "CSE",
	})

	// The requested branch filter is overridden by the coordinator's own branch
	list, err := f.svc.ListStudents(context.Background(), coordID, "ECE")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Students) != 1 || list.Students[0].Branch != "CSE" {
		t.Fatalf("coordinator list = %+v, want only CSE", list.Students)
	}
}

func TestListStudentsAdminSeesEveryone(t *testing.T) {
	f := newStudentFixture()

	if _, err := f.svc.CreateStudent(context.Background(), createStudentReq("C1", "CSE")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.svc.CreateStudent(context.Background(), createStudentReq("E1", "ECE")); err != nil {
		t.Fatalf("create: %v", err)
	}

	adminID, _ := f.users.CreateUser(context.Background(), &models.User{
		Email: "admin@example.com", IsStaff: true, IsSuperuser: true, IsActive: true,
	})

	list, err := f.svc.ListStudents(context.Background(), adminID, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Students) != 2 {
		t.Fatalf("admin list = %+v, want both branches", list.Students)
	}
}

func TestListStudentsPlainStaffDenied(t *testing.T) {
	f := newStudentFixture()

	staffID, _ := f.users.CreateUser(context.Background(), &models.User{
		Email: "staff@example.com", IsStaff: true, IsActive: true,
	})
	f.staff.Create(context.Background(), &models.StaffProfile{
		UserID: staffID, Name: "Trainer", Role: models.RoleVerbalTrainer,
	})

	if _, err := f.svc.ListStudents(context.Background(), staffID, ""); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestUpdateStudentRollNumberConflict(t *testing.T) {
	f := newStudentFixture()

	if _, err := f.svc.CreateStudent(context.Background(), createStudentReq("R1", "CSE")); err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := f.svc.CreateStudent(context.Background(), createStudentReq("R2", "CSE"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = f.svc.UpdateStudent(context.Background(), second.ID, &dto.UpdateStudentRequest{
		FullName:       "Renamed",
		RollNumber:     "R1",
		Email:          "r2@example.com",
		Branch:         "CSE",
		GraduationYear: 2026,
	})
	if !errors.Is(err, apperrors.ErrRollNumberAlreadyExists) {
		t.Fatalf("err = %v, want ErrRollNumberAlreadyExists", err)
	}
}

func TestDeleteStudentRemovesIdentityAndResume(t *testing.T) {
	f := newStudentFixture()

	req := createStudentReq("R9", "CSE")
	req.Password = "S3cret!pass"
	resp, err := f.svc.CreateStudent(context.Background(), req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	student, _ := f.students.GetByID(context.Background(), resp.ID)
	if _, err := f.svc.UploadResume(context.Background(), *student.UserID, materialFile(t, "resume.pdf")); err != nil {
		t.Fatalf("upload resume: %v", err)
	}

	if err := f.svc.DeleteStudent(context.Background(), resp.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(f.users.users) != 0 {
		t.Fatalf("identity survived deletion: %+v", f.users.users)
	}
	if len(f.storage.deleted) != 1 {
		t.Fatalf("resume file not removed: %v", f.storage.deleted)
	}
}

func TestUploadResumeReplacesPrevious(t *testing.T) {
	f := newStudentFixture()

	req := createStudentReq("R10", "CSE")
	req.Password = "S3cret!pass"
	resp, err := f.svc.CreateStudent(context.Background(), req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	student, _ := f.students.GetByID(context.Background(), resp.ID)

	first, err := f.svc.UploadResume(context.Background(), *student.UserID, materialFile(t, "v1.pdf"))
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}
	second, err := f.svc.UploadResume(context.Background(), *student.UserID, materialFile(t, "v2.pdf"))
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}
	if first.ResumePath == nil || second.ResumePath == nil || *first.ResumePath == *second.ResumePath {
		t.Fatalf("resume path not replaced: %v vs %v", first.ResumePath, second.ResumePath)
	}
	if len(f.storage.deleted) != 1 || f.storage.deleted[0] != *first.ResumePath {
		t.Fatalf("previous resume not removed: %v", f.storage.deleted)
	}
}

func TestUploadResumeWithoutStudentRecord(t *testing.T) {
	f := newStudentFixture()

	userID, _ := f.users.CreateUser(context.Background(), &models.User{
		Email: "noone@example.com", IsActive: true,
	})
	if _, err := f.svc.UploadResume(context.Background(), userID, materialFile(t, "r.pdf")); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}
