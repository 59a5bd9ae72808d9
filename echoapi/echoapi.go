// Package echoapi is the echo implementation of the todo API.
//
// It exposes the same routes and JSON contract as ginapi; the two packages
// exist so the load test harness can be pointed at either framework and
// produce comparable numbers.
package echoapi

import (
	"net/http"
	"strconv"

	"TodoWebService/metrics"
	"TodoWebService/models"
	"TodoWebService/response"
	"TodoWebService/store"
	"TodoWebService/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const framework = "echo"

// WelcomeMessage is the payload of GET /.
const WelcomeMessage = "Welcome to my Todo Application"

// Server serves the todo API with echo.
type Server struct {
	store    *store.Store
	validate *validator.Validate
	limiter  *rate.Limiter
	log      *logrus.Logger
}

// New creates an echo server around the given store.
// The limiter protects the service against abuse; pass rate.Inf to disable it.
func New(todoStore *store.Store, limit rate.Limit, burst int) *Server {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.JSONFormatter{})
	return &Server{
		store:    todoStore,
		validate: validation.New(),
		limiter:  rate.NewLimiter(limit, burst),
		log:      log,
	}
}

// Handler builds the echo instance with all routes registered.
func (s *Server) Handler() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.Use(s.rateLimiter)

	e.GET("/", s.WelcomeHandler)
	e.GET("/todos", s.ListTodosHandler)
	e.GET("/todos/:id", s.GetTodoHandler)
	e.POST("/todos", s.CreateTodoHandler)
	e.PUT("/todos/:id", s.UpdateTodoHandler)
	e.PATCH("/todos/:id/complete", s.ToggleTodoHandler)
	e.DELETE("/todos/:id", s.DeleteTodoHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	return e
}

// Run starts the server on the given address.
func (s *Server) Run(addr string) error {
	s.log.Info("echo server listening on " + addr)
	return http.ListenAndServe(addr, s.Handler())
}

// rateLimiter rejects requests with 429 Too Many Requests when the service is at capacity.
func (s *Server) rateLimiter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.limiter.Allow() {
			return c.JSON(http.StatusTooManyRequests, response.Message{
				Message: "The API is at capacity, try again later.",
			})
		}
		return next(c)
	}
}

// WelcomeHandler handles GET / and returns a static greeting.
func (s *Server) WelcomeHandler(c echo.Context) error {
	metrics.EndpointCounter.WithLabelValues(framework, "/").Inc()
	return c.JSON(http.StatusOK, response.Message{Message: WelcomeMessage})
}

// ListTodosHandler handles GET /todos and returns the full collection in creation order.
func (s *Server) ListTodosHandler(c echo.Context) error {
	metrics.EndpointCounter.WithLabelValues(framework, "/todos").Inc()
	todos := s.store.List()
	s.log.WithFields(logrus.Fields{
		"todo operation": "list todos",
		"request":        "GET /todos",
		"count":          len(todos),
	}).Info("Processing request")
	return c.JSON(http.StatusOK, response.TodoList{Todos: todos})
}

// GetTodoHandler handles GET /todos/:id.
func (s *Server) GetTodoHandler(c echo.Context) error {
	metrics.EndpointCounter.WithLabelValues(framework, "/todos/:id").Inc()
	id, ok := s.todoID(c, "/todos/:id", "get todo by id")
	if !ok {
		return nil
	}
	todo, err := s.store.Get(id)
	if err != nil {
		metrics.ErrorCounter.WithLabelValues(framework, "/todos/:id").Inc()
		s.log.WithFields(logrus.Fields{
			"todo operation": "get todo by id",
			"todo id":        id,
			"request":        "GET /todos/:id",
		}).Error(err.Error())
		return c.JSON(http.StatusNotFound, response.Error{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, response.TodoEnvelope{Todo: todo})
}

// CreateTodoHandler handles POST /todos. The body must carry a unique id and a
// non-empty item; completed defaults to false.
func (s *Server) CreateTodoHandler(c echo.Context) error {
	metrics.EndpointCounter.WithLabelValues(framework, "/todos").Inc()
	todo, ok := s.todoBody(c, "/todos", "create a todo", "POST /todos")
	if !ok {
		return nil
	}
	if err := s.store.Create(todo); err != nil {
		metrics.ErrorCounter.WithLabelValues(framework, "/todos").Inc()
		s.log.WithFields(logrus.Fields{
			"todo operation": "create a todo",
			"todo id":        todo.Id,
			"request":        "POST /todos",
		}).Error(err.Error())
		return c.JSON(http.StatusBadRequest, response.Error{Error: err.Error()})
	}
	s.log.WithFields(logrus.Fields{
		"todo operation": "create a todo",
		"todo id":        todo.Id,
		"request":        "POST /todos",
	}).Info("Processing request")
	return c.JSON(http.StatusCreated, response.TodoResult{Message: "Todo has been added", Todo: todo})
}

// UpdateTodoHandler handles PUT /todos/:id and replaces item and completed of the
// matching record. The id in the path wins over any id in the body.
func (s *Server) UpdateTodoHandler(c echo.Context) error {
	metrics.EndpointCounter.WithLabelValues(framework, "/todos/:id").Inc()
	id, ok := s.todoID(c, "/todos/:id", "update a todo")
	if !ok {
		return nil
	}
	body, ok := s.todoBody(c, "/todos/:id", "update a todo", "PUT /todos/:id")
	if !ok {
		return nil
	}
	todo, err := s.store.Update(id, body.Item, body.Completed)
	if err != nil {
		metrics.ErrorCounter.WithLabelValues(framework, "/todos/:id").Inc()
		s.log.WithFields(logrus.Fields{
			"todo operation": "update a todo",
			"todo id":        id,
			"request":        "PUT /todos/:id",
		}).Error(err.Error())
		return c.JSON(http.StatusNotFound, response.Error{Error: err.Error()})
	}
	s.log.WithFields(logrus.Fields{
		"todo operation": "update a todo",
		"todo id":        id,
		"request":        "PUT /todos/:id",
	}).Info("Processing request")
	return c.JSON(http.StatusOK, response.TodoResult{Message: "Todo updated", Todo: todo})
}

// ToggleTodoHandler handles PATCH /todos/:id/complete and inverts the completed flag.
func (s *Server) ToggleTodoHandler(c echo.Context) error {
	metrics.EndpointCounter.WithLabelValues(framework, "/todos/:id/complete").Inc()
	id, ok := s.todoID(c, "/todos/:id/complete", "toggle a todo")
	if !ok {
		return nil
	}
	todo, err := s.store.Toggle(id)
	if err != nil {
		metrics.ErrorCounter.WithLabelValues(framework, "/todos/:id/complete").Inc()
		s.log.WithFields(logrus.Fields{
			"todo operation": "toggle a todo",
			"todo id":        id,
			"request":        "PATCH /todos/:id/complete",
		}).Error(err.Error())
		return c.JSON(http.StatusNotFound, response.Error{Error: err.Error()})
	}
	s.log.WithFields(logrus.Fields{
		"todo operation": "toggle a todo",
		"todo id":        id,
		"request":        "PATCH /todos/:id/complete",
	}).Info("Processing request")
	return c.JSON(http.StatusOK, response.TodoResult{Message: "Todo completion status toggled", Todo: todo})
}

// DeleteTodoHandler handles DELETE /todos/:id and removes the matching record.
func (s *Server) DeleteTodoHandler(c echo.Context) error {
	metrics.EndpointCounter.WithLabelValues(framework, "/todos/:id").Inc()
	id, ok := s.todoID(c, "/todos/:id", "delete a todo")
	if !ok {
		return nil
	}
	if err := s.store.Delete(id); err != nil {
		metrics.ErrorCounter.WithLabelValues(framework, "/todos/:id").Inc()
		s.log.WithFields(logrus.Fields{
			"todo operation": "delete a todo",
			"todo id":        id,
			"request":        "DELETE /todos/:id",
		}).Error(err.Error())
		return c.JSON(http.StatusNotFound, response.Error{Error: err.Error()})
	}
	s.log.WithFields(logrus.Fields{
		"todo operation": "delete a todo",
		"todo id":        id,
		"request":        "DELETE /todos/:id",
	}).Info("Processing request")
	return c.NoContent(http.StatusNoContent)
}

// todoID parses the id path parameter, answering 400 on a non-numeric value.
// It reports false after writing the failure response itself.
func (s *Server) todoID(c echo.Context, endpoint, operation string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		metrics.ErrorCounter.WithLabelValues(framework, endpoint).Inc()
		s.log.WithFields(logrus.Fields{
			"todo operation": operation,
			"todo id":        c.Param("id"),
		}).Error("Invalid todo ID")
		c.JSON(http.StatusBadRequest, response.Error{Error: "Invalid todo ID"})
		return 0, false
	}
	return id, true
}

// todoBody decodes and validates a todo request body, answering 400 on failure.
// It reports false after writing the failure response itself.
func (s *Server) todoBody(c echo.Context, endpoint, operation, request string) (models.Todo, bool) {
	var todo models.Todo
	if err := c.Bind(&todo); err != nil {
		metrics.ErrorCounter.WithLabelValues(framework, endpoint).Inc()
		s.log.WithFields(logrus.Fields{
			"todo operation": operation,
			"request":        request,
		}).Error("Invalid request body")
		c.JSON(http.StatusBadRequest, response.Error{Error: "Invalid request body"})
		return models.Todo{}, false
	}
	if err := s.validate.Struct(todo); err != nil {
		metrics.ErrorCounter.WithLabelValues(framework, endpoint).Inc()
		s.log.WithFields(logrus.Fields{
			"todo operation": operation,
			"request":        request,
		}).Error("Invalid request body inputs")
		c.JSON(http.StatusBadRequest, response.Error{Error: "Invalid request body inputs"})
		return models.Todo{}, false
	}
	return todo, true
}
