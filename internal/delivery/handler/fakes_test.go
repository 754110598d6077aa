package handler

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"taskboard/internal/application/services"
	"taskboard/internal/config"
	"taskboard/internal/domain/apperrors"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
	"taskboard/internal/infrastructure"

	"github.com/labstack/echo/v4"
)

// memUserRepo is an in-memory stand-in for the Mongo repository, enforcing
// the same email uniqueness and password-projection rules.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entities.User)}
}

var _ repositories.UserRepository = (*memUserRepo)(nil)

func (r *memUserRepo) Create(_ context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, apperrors.ErrEmailExists
		}
	}

	created := *user.GetUser()
	created.Id = primitive.NewObjectID()
	r.users[created.Id.Hex()] = &created

	result := created
	return &result, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string, includePassword bool) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			found := *user
			if !includePassword {
				found.Password = ""
			}
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindById(_ context.Context, id primitive.ObjectID) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id.Hex()]
	if !ok {
		return nil, nil
	}
	found := *user
	found.Password = ""
	return &found, nil
}

func (r *memUserRepo) FindAll(_ context.Context) ([]*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		found := *user
		found.Password = ""
		users = append(users, &found)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (r *memUserRepo) delete(id primitive.ObjectID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id.Hex())
}

type memTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*entities.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[string]*entities.Task)}
}

var _ repositories.TaskRepository = (*memTaskRepo)(nil)

func (r *memTaskRepo) Create(_ context.Context, task *entities.ValidatedTask) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *task.Task
	created.Id = primitive.NewObjectID()
	r.tasks[created.Id.Hex()] = &created

	result := created
	return &result, nil
}

func (r *memTaskRepo) FindById(_ context.Context, id primitive.ObjectID) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id.Hex()]
	if !ok {
		return nil, nil
	}
	found := *task
	return &found, nil
}

func (r *memTaskRepo) FindAll(_ context.Context, filter repositories.TaskFilter) ([]*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]*entities.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && task.Priority != filter.Priority {
			continue
		}
		if !filter.AssignedTo.IsZero() && task.AssignedTo != filter.AssignedTo {
			continue
		}
		found := *task
		tasks = append(tasks, &found)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].CreatedAt.After(tasks[j].CreatedAt) })
	return tasks, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *entities.ValidatedTask) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.Id.Hex()]; !ok {
		return nil, apperrors.ErrTaskNotFound
	}
	updated := *task.Task
	r.tasks[task.Id.Hex()] = &updated

	result := updated
	return &result, nil
}

func (r *memTaskRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id.Hex()]; !ok {
		return apperrors.ErrTaskNotFound
	}
	delete(r.tasks, id.Hex())
	return nil
}

// testEnv wires the full route layer against in-memory repositories.
type testEnv struct {
	router     *echo.Echo
	userRepo   *memUserRepo
	taskRepo   *memTaskRepo
	jwtService *infrastructure.JWTService
}

func newTestEnv() *testEnv {
	userRepo := newMemUserRepo()
	taskRepo := newMemTaskRepo()
	jwtService := infrastructure.NewJWTService("test-secret", time.Hour)
	redisService := infrastructure.NewRedisService(&config.Config{})

	authService := services.NewAuthService(userRepo, jwtService, redisService)
	taskService := services.NewTaskService(taskRepo, userRepo)
	userService := services.NewUserService(userRepo)

	e := echo.New()
	authH := NewAuthHandler(authService)
	taskH := NewTaskHandler(taskService)
	userH := NewUserHandler(userService)
	jwtAuth := JWTAuth(jwtService, authService)

	auth := e.Group("/api/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.GET("/profile", authH.Profile, jwtAuth)
	auth.POST("/logout", authH.Logout, jwtAuth)

	tasks := e.Group("/api/tasks", jwtAuth)
	tasks.POST("", taskH.Create)
	tasks.GET("", taskH.List)
	tasks.GET("/:id", taskH.Get)
	tasks.PUT("/:id", taskH.Update)
	tasks.PATCH("/:id", taskH.Update)
	tasks.DELETE("/:id", taskH.Delete)

	e.GET("/api/users", userH.List, jwtAuth)

	return &testEnv{
		router:     e,
		userRepo:   userRepo,
		taskRepo:   taskRepo,
		jwtService: jwtService,
	}
}
