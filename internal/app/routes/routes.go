// Package routes wires controllers onto the gin router.
package routes

import (
	"github.com/gin-gonic/gin"

	appauth "github.com/srivaishnavi26/TandP-Management-System/internal/app/auth"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/controllers"
	"github.com/srivaishnavi26/TandP-Management-System/internal/middleware"
)

// Controllers groups everything SetupRouter needs to mount.
type Controllers struct {
	Auth         *controllers.AuthController
	Public       *controllers.PublicController
	Drive        *controllers.DriveController
	Registration *controllers.RegistrationController
	Staff        *controllers.StaffController
	Student      *controllers.StudentController
	Verbal       *controllers.MaterialController
	Aptitude     *controllers.MaterialController
	Contact      *controllers.ContactController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/", c.Public.Home)
	v1.GET("/about", c.Public.About)
	v1.GET("/team", c.Public.Team)
	v1.POST("/contact", c.Contact.SubmitMessage)

	auth := v1.Group("/auth")
	{
		auth.POST("/student/login", c.Auth.StudentLogin)
		auth.POST("/staff/login", c.Auth.StaffLogin)
		auth.POST("/admin/login", c.Auth.AdminLogin)
		auth.POST("/refresh", c.Auth.RefreshToken)
		auth.POST("/logout", c.Auth.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Drive catalog: reads for everyone authenticated, create/update for
	// staff, delete admin only.
	drives := authenticated.Group("/drives")
	{
		drives.GET("", c.Drive.ListDrives)
		drives.GET("/available", c.Registration.AvailableDrives)
		drives.GET("/registered", c.Registration.RegisteredDrives)
		drives.GET("/:id", c.Drive.GetDrive)
		drives.POST("/:id/register", c.Registration.Register)

		drivesStaff := drives.Group("")
		drivesStaff.Use(authMiddleware.CapabilityRequired(appauth.CapabilityStaff))
		{
			drivesStaff.POST("", c.Drive.CreateDrive)
			drivesStaff.PUT("/:id", c.Drive.UpdateDrive)
		}

		drivesAdmin := drives.Group("")
		drivesAdmin.Use(authMiddleware.CapabilityRequired(appauth.CapabilityAdmin))
		{
			drivesAdmin.DELETE("/:id", c.Drive.DeleteDrive)
		}
	}

	// Preparation materials: reads for everyone authenticated, writes for
	// staff (the service narrows to the matching trainer role).
	materials := authenticated.Group("/materials")
	{
		materials.GET("/verbal", c.Verbal.List)
		materials.GET("/aptitude", c.Aptitude.List)

		materialsStaff := materials.Group("")
		materialsStaff.Use(authMiddleware.CapabilityRequired(appauth.CapabilityStaff))
		{
			materialsStaff.POST("/verbal", c.Verbal.Upload)
			materialsStaff.DELETE("/verbal/:id", c.Verbal.Delete)
			materialsStaff.POST("/aptitude", c.Aptitude.Upload)
			materialsStaff.DELETE("/aptitude/:id", c.Aptitude.Delete)
		}
	}

	// Student records: own record for students, management for staff,
	// roster listing for coordinators and admins.
	students := authenticated.Group("/students")
	{
		students.GET("/me", c.Student.GetOwnRecord)
		students.POST("/me/resume", c.Student.UploadResume)

		studentsCoordinator := students.Group("")
		studentsCoordinator.Use(authMiddleware.CapabilityRequired(appauth.CapabilityDepartmentCoordinator))
		{
			studentsCoordinator.GET("", c.Student.ListStudents)
		}

		studentsStaff := students.Group("")
		studentsStaff.Use(authMiddleware.CapabilityRequired(appauth.CapabilityStaff))
		{
			studentsStaff.POST("", c.Student.CreateStudent)
			studentsStaff.GET("/:id", c.Student.GetStudent)
			studentsStaff.PUT("/:id", c.Student.UpdateStudent)
			studentsStaff.DELETE("/:id", c.Student.DeleteStudent)
		}
	}

	// Staff management: own profile for staff, everything else admin only.
	staff := authenticated.Group("/staff")
	{
		staffSelf := staff.Group("")
		staffSelf.Use(authMiddleware.CapabilityRequired(appauth.CapabilityStaff))
		{
			staffSelf.GET("/me", c.Staff.GetOwnProfile)
		}

		staffAdmin := staff.Group("")
		staffAdmin.Use(authMiddleware.CapabilityRequired(appauth.CapabilityAdmin))
		{
			staffAdmin.POST("", c.Staff.CreateStaff)
			staffAdmin.GET("", c.Staff.ListStaff)
			staffAdmin.GET("/:id", c.Staff.GetStaff)
			staffAdmin.PUT("/:id", c.Staff.UpdateStaff)
			staffAdmin.DELETE("/:id", c.Staff.DeleteStaff)
			staffAdmin.POST("/:id/promote", c.Staff.PromoteStaff)
		}
	}

	// Contact inbox: admin only. Submission is on the public group above.
	contact := authenticated.Group("/contact")
	contact.Use(authMiddleware.CapabilityRequired(appauth.CapabilityAdmin))
	{
		contact.GET("", c.Contact.ListMessages)
		contact.DELETE("/:id", c.Contact.DeleteMessage)
	}
}
