// Package fakeapi is an in-memory implementation of the Todo Manager API. It behaves the way the
// contract tests expect the real service to behave, so the tests of this repository can run
// without network access, and so that the harness can be tried out locally with the
// fake-service command.
package fakeapi

import (
	"net/http"
	"sort"
	"sync"

	"github.com/launchdarkly/todo-contract-tests/framework"
	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Service is an http.Handler for the whole API.
type Service struct {
	router    *mux.Router
	sessions  map[string]*todoStore
	anonymous *todoStore
	logger    framework.Logger
	lock      sync.Mutex
}

// NewService creates a Service with no challenger sessions. Requests without a known challenger
// token share one anonymous todo list.
func NewService(logger framework.Logger) *Service {
	if logger == nil {
		logger = framework.NullLogger()
	}
	s := &Service{
		sessions:  make(map[string]*todoStore),
		anonymous: newTodoStore(),
		logger:    logger,
	}

	r := mux.NewRouter()
	r.Use(s.echoChallenger, s.logRequests)
	r.HandleFunc(servicedef.PathChallenger, s.HandleCreateChallenger).Methods("POST")
	r.HandleFunc(servicedef.PathChallenges, s.HandleGetChallenges).Methods("GET", "HEAD")
	r.HandleFunc(servicedef.PathTodos, s.HandleListTodos).Methods("GET", "HEAD")
	r.HandleFunc(servicedef.PathTodos, s.HandleCreateTodo).Methods("POST")
	r.HandleFunc(servicedef.PathTodos, s.HandleTodosOptions).Methods("OPTIONS")
	r.HandleFunc(servicedef.PathTodo, s.HandleGetTodo).Methods("GET", "HEAD")
	r.HandleFunc(servicedef.PathTodo, s.HandleAmendTodo).Methods("POST")
	r.HandleFunc(servicedef.PathTodo, s.HandleReplaceTodo).Methods("PUT")
	r.HandleFunc(servicedef.PathTodo, s.HandleDeleteTodo).Methods("DELETE")
	r.HandleFunc(servicedef.PathHeartbeat, s.HandleHeartbeat)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.logger.Printf("%s %s: no such resource", req.Method, req.URL)
		w.WriteHeader(http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
	s.router = r
	return s
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Tokens returns the challenger tokens that have been issued, sorted.
func (s *Service) Tokens() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	ret := make([]string, 0, len(s.sessions))
	for token := range s.sessions {
		ret = append(ret, token)
	}
	sort.Strings(ret)
	return ret
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Printf("%s %s (Accept: %q, Content-Type: %q)", r.Method, r.URL,
			r.Header.Get(servicedef.HeaderAccept), r.Header.Get(servicedef.HeaderContentType))
		next.ServeHTTP(w, r)
	})
}

func (s *Service) echoChallenger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := r.Header.Get(servicedef.HeaderChallenger); token != "" {
			w.Header().Set(servicedef.HeaderChallenger, token)
		}
		next.ServeHTTP(w, r)
	})
}

// storeFor returns the todo list of the request's challenger. The caller must hold the lock.
func (s *Service) storeFor(r *http.Request) *todoStore {
	if token := r.Header.Get(servicedef.HeaderChallenger); token != "" {
		if st, ok := s.sessions[token]; ok {
			return st
		}
	}
	return s.anonymous
}

// HandleCreateChallenger starts a session with a fresh todo list.
func (s *Service) HandleCreateChallenger(w http.ResponseWriter, r *http.Request) {
	token := uuid.New().String()
	s.lock.Lock()
	s.sessions[token] = newTodoStore()
	s.lock.Unlock()

	s.logger.Printf("Created challenger %s", token)
	w.Header().Set(servicedef.HeaderChallenger, token)
	w.Header().Set("Location", "/gui/challenges/"+token)
	w.WriteHeader(http.StatusCreated)
}

func (s *Service) HandleGetChallenges(w http.ResponseWriter, r *http.Request) {
	mt, ok := s.negotiate(w, r)
	if !ok {
		return
	}
	s.send(w, http.StatusOK, mt, challengesDocument())
}

// HandleHeartbeat answers GET with 204, and deliberately fails DELETE and PATCH.
func (s *Service) HandleHeartbeat(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET", "HEAD":
		w.WriteHeader(http.StatusNoContent)
	case "PATCH":
		w.WriteHeader(http.StatusInternalServerError)
	case "TRACE":
		w.WriteHeader(http.StatusNotImplemented)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
