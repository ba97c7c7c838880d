package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Inquiry *InquiryHandler
	Teacher *TeacherHandler
	Admin   *AdminHandler
}

// NewRouter builds the HTTP route table. Authentication and the rest of the
// middleware chain wrap the returned mux at the server level.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)

	mux.HandleFunc("POST /inquiries", h.Inquiry.Submit)
	mux.HandleFunc("GET /inquiries", h.Inquiry.List)
	mux.HandleFunc("GET /inquiries/{id}", h.Inquiry.Get)
	mux.HandleFunc("PATCH /inquiries/{id}", h.Inquiry.Update)

	mux.HandleFunc("PUT /teachers/me/profile", h.Teacher.SaveProfile)
	mux.HandleFunc("GET /teachers/me/profile", h.Teacher.GetMyProfile)

	mux.HandleFunc("GET /admin/teachers", h.Admin.ListTeachers)
	mux.HandleFunc("GET /admin/teachers/{id}/profile", h.Admin.TeacherProfile)

	return mux
}
