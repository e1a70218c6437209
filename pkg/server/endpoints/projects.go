package endpoints

import (
	"net/http"
	"time"

	"boardhub/pkg/model"
	"boardhub/pkg/server"
	"boardhub/pkg/server/store"
)

type projectResponse struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newProjectResponse(project *model.Project) projectResponse {
	return projectResponse{
		ID:          project.ID,
		OwnerID:     project.OwnerID,
		Title:       project.Title,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
	}
}

type memberResponse struct {
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name,omitempty"`
	AccessLevel string `json:"access_level"`
}

// RegisterProjectsEndpoints registers project CRUD and membership routes.
func RegisterProjectsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/projects").Subrouter()
	router.Use(s.AuthMiddleware.Middleware)

	router.HandleFunc("", handleListProjects(s)).Methods("GET")
	router.HandleFunc("", handleCreateProject(s)).Methods("POST")
	router.HandleFunc("/{id:[0-9]+}", handleGetProject(s)).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}", handleUpdateProject(s)).Methods("PUT")
	router.HandleFunc("/{id:[0-9]+}", handleDeleteProject(s)).Methods("DELETE")

	router.HandleFunc("/{id:[0-9]+}/members", handleListMembers(s)).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}/members", handleAddMember(s)).Methods("POST")
	router.HandleFunc("/{id:[0-9]+}/members/{user_id:[0-9]+}", handleRemoveMember(s)).Methods("DELETE")
}

// memberProject loads a project the user belongs to. Outsiders get a 404.
func memberProject(s *server.Server, userID, projectID int64) (*model.Project, error) {
	project, err := s.ProjectsStore.Find(projectID)
	if err != nil {
		return nil, err
	}
	if !s.ProjectsStore.IsProjectMember(project.ID, userID) {
		return nil, store.ErrNotFound
	}
	return project, nil
}

// adminProject loads a project the user administers. Members without admin
// get a 403; outsiders a 404.
func adminProject(s *server.Server, userID, projectID int64) (*model.Project, error) {
	project, err := memberProject(s, userID, projectID)
	if err != nil {
		return nil, err
	}
	if !s.ProjectsStore.IsProjectAdmin(project.ID, userID) {
		return nil, store.ErrPermissionDenied
	}
	return project, nil
}

func handleListProjects(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		projects, err := s.ProjectsStore.ListForUser(ident.UserID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		out := make([]projectResponse, 0, len(projects))
		for i := range projects {
			out = append(out, newProjectResponse(&projects[i]))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

type projectPayload struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func handleCreateProject(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		var payload projectPayload
		if !decodeJSON(w, r, &payload) {
			return
		}
		if payload.Title == "" {
			respondWithStoreError(w, store.Invalid("title", "must not be empty"))
			return
		}

		project := &model.Project{OwnerID: ident.UserID, Title: payload.Title}
		if payload.Description != nil {
			project.Description = *payload.Description
		}

		if err := s.ProjectsStore.Create(project, ident.UserID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, newProjectResponse(project))
	}
}

func handleGetProject(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		projectID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		project, err := memberProject(s, ident.UserID, projectID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, newProjectResponse(project))
	}
}

func handleUpdateProject(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		projectID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		project, err := adminProject(s, ident.UserID, projectID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		var payload projectPayload
		if !decodeJSON(w, r, &payload) {
			return
		}

		if payload.Title != "" {
			project.Title = payload.Title
		}
		if payload.Description != nil {
			project.Description = *payload.Description
		}

		if err := s.ProjectsStore.Update(project); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, newProjectResponse(project))
	}
}

func handleDeleteProject(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		projectID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		project, err := adminProject(s, ident.UserID, projectID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.ProjectsStore.Delete(project.ID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleListMembers(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		projectID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		project, err := memberProject(s, ident.UserID, projectID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		members, err := s.ProjectsStore.ListMembers(project.ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		out := make([]memberResponse, 0, len(members))
		for _, m := range members {
			out = append(out, memberResponse{
				UserID:      m.UserID,
				Email:       m.Email,
				FullName:    m.FullName,
				AccessLevel: m.AccessLevel,
			})
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

type addMemberPayload struct {
	Email       string `json:"email"`
	AccessLevel string `json:"access_level"`
}

func handleAddMember(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		projectID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		project, err := adminProject(s, ident.UserID, projectID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		var payload addMemberPayload
		if !decodeJSON(w, r, &payload) {
			return
		}

		level := payload.AccessLevel
		if level == "" {
			level = model.AccessLevelMember
		}
		if level != model.AccessLevelMember && level != model.AccessLevelAdmin {
			respondWithStoreError(w, store.Invalid("access_level", "must be admin or member"))
			return
		}

		user, err := s.UsersStore.FindByEmail(payload.Email)
		if err != nil {
			respondWithStoreError(w, store.Invalid("email", "no such user"))
			return
		}

		if err := s.ProjectsStore.AddMember(project.ID, user.ID, level); err != nil {
			respondWithStoreError(w, err)
			return
		}

		if user.ID != ident.UserID {
			notifyAddedToProject(s, ident.UserID, user.ID, project)
		}

		respondWithJSON(w, http.StatusCreated, memberResponse{
			UserID:      user.ID,
			Email:       user.Email,
			FullName:    user.FullName(),
			AccessLevel: level,
		})
	}
}

func handleRemoveMember(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		projectID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		memberID, err := pathID(r, "user_id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		// Members may remove themselves; removing anyone else takes admin.
		var project *model.Project
		if memberID == ident.UserID {
			project, err = memberProject(s, ident.UserID, projectID)
		} else {
			project, err = adminProject(s, ident.UserID, projectID)
		}
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.ProjectsStore.RemoveMember(project.ID, memberID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
