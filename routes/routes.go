package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RohitValiveti/Fitness-Tracker/controllers"
	"github.com/RohitValiveti/Fitness-Tracker/middlewares"
	"github.com/RohitValiveti/Fitness-Tracker/services"
)

func SetupRouter(db *gorm.DB, store services.ObjectStore) *gin.Engine {
	r := gin.Default()

	authService := services.NewAuthService(db)
	workoutService := services.NewWorkoutService(db)
	exerciseService := services.NewExerciseService(db)
	setService := services.NewSetService(db)
	userService := services.NewUserService(db)
	fileService := services.NewFileService(db, store)

	auth := &controllers.AuthController{Auth: authService}
	workouts := &controllers.WorkoutController{Workouts: workoutService}
	exercises := &controllers.ExerciseController{Exercises: exerciseService}
	sets := &controllers.SetController{Sets: setService}
	users := &controllers.UserController{Users: userService}
	admin := &controllers.AdminController{Users: userService}
	files := &controllers.FileController{Files: fileService}

	// Public auth routes
	r.POST("/register/", auth.Register)
	r.POST("/login/", auth.Login)
	r.POST("/session/", auth.UpdateSession)

	// Workout hierarchy (shared resource space, no per-user scoping)
	w := r.Group("/workouts")
	{
		w.GET("/", workouts.List)
		w.POST("/", workouts.Create)
		w.GET("/:workout_id/", workouts.Get)
		w.POST("/:workout_id/", workouts.Update)
		w.DELETE("/:workout_id/", workouts.Delete)
	}

	e := r.Group("/exercises")
	{
		e.GET("/", exercises.List)
		e.POST("/", exercises.Create)
		e.GET("/:exercise_id/", exercises.Get)
		e.POST("/:exercise_id/", exercises.Update)
		e.DELETE("/:exercise_id/", exercises.Delete)
	}

	st := r.Group("/sets")
	{
		st.POST("/", sets.Create)
		st.GET("/:set_id/", sets.Get)
		st.POST("/:set_id/", sets.Update)
		st.DELETE("/:set_id/", sets.Delete)
	}

	assign := r.Group("/assign")
	{
		assign.POST("/exercises/:workout_id/", exercises.CreateAssigned)
		assign.POST("/sets/:exercise_id/", sets.CreateAssigned)
	}

	a := r.Group("/admin")
	{
		a.GET("/users/", admin.ListUsers)
		a.DELETE("/users/:user_id/", admin.DeleteUser)
		a.DELETE("/tables/", admin.ResetTables)
	}

	// Protected routes: bearer session token required
	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(authService))
	{
		protected.POST("/logout/", auth.Logout)
		protected.GET("/users/:user_id/", users.Get)
		protected.POST("/friends/:friend_id/", users.AddFriend)
		protected.GET("/files/", files.List)
		protected.POST("/files/", files.Upload)
		protected.GET("/files/:file_id/", files.Get)
	}

	return r
}
