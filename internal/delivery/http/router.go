package http

import (
	"net/http"

	"maareeye-hospital/internal/delivery/http/handler"
	"maareeye-hospital/internal/delivery/http/middleware"
	"maareeye-hospital/pkg/metrics"
	"maareeye-hospital/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	hospitalHandler    *handler.HospitalHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	healthHandler      *handler.HealthHandler
	corsMiddleware     *middleware.CORSMiddleware
	hostMiddleware     *middleware.HostMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	metrics            *metrics.Manager
}

// NewRouter wires the handlers into a route table. metricsManager may be nil,
// in which case /metrics is not served and requests are not instrumented.
func NewRouter(
	hospitalHandler *handler.HospitalHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	healthHandler *handler.HealthHandler,
	corsMiddleware *middleware.CORSMiddleware,
	hostMiddleware *middleware.HostMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsManager *metrics.Manager,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		hospitalHandler:    hospitalHandler,
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		healthHandler:      healthHandler,
		corsMiddleware:     corsMiddleware,
		hostMiddleware:     hostMiddleware,
		loggingMiddleware:  loggingMiddleware,
		metrics:            metricsManager,
	}
}

func (r *Router) Setup() http.Handler {
	// Health check
	r.router.HandleFunc("/", r.healthHandler.Health).Methods(http.MethodGet)
	r.handle("/api/health", r.healthHandler.Health, http.MethodGet)
	r.handle("/api/db-test", r.healthHandler.DatabaseCheck, http.MethodGet)

	// Hospitals
	r.handle("/hospital", r.hospitalHandler.GetAllHospitals, http.MethodGet)
	r.handle("/hospital", r.hospitalHandler.CreateHospital, http.MethodPost)
	r.handle("/hospital/{id}", r.hospitalHandler.GetHospital, http.MethodGet)
	r.handle("/hospital/{id}", r.hospitalHandler.ReplaceHospital, http.MethodPut)
	r.handle("/hospital/{id}", r.hospitalHandler.UpdateHospital, http.MethodPatch)
	r.handle("/hospital/{id}", r.hospitalHandler.DeleteHospital, http.MethodDelete)

	// Doctors
	r.handle("/doctors", r.doctorHandler.GetAllDoctors, http.MethodGet)
	r.handle("/doctors", r.doctorHandler.CreateDoctor, http.MethodPost)
	r.handle("/doctors/{id}", r.doctorHandler.GetDoctor, http.MethodGet)
	r.handle("/doctors/{id}", r.doctorHandler.ReplaceDoctor, http.MethodPut)
	r.handle("/doctors/{id}", r.doctorHandler.UpdateDoctor, http.MethodPatch)
	r.handle("/doctors/{id}", r.doctorHandler.DeleteDoctor, http.MethodDelete)

	// Patients
	r.handle("/patients", r.patientHandler.GetAllPatients, http.MethodGet)
	r.handle("/patients", r.patientHandler.CreatePatient, http.MethodPost)
	r.handle("/patients/{id}", r.patientHandler.GetPatient, http.MethodGet)
	r.handle("/patients/{id}", r.patientHandler.ReplacePatient, http.MethodPut)
	r.handle("/patients/{id}", r.patientHandler.UpdatePatient, http.MethodPatch)
	r.handle("/patients/{id}", r.patientHandler.DeletePatient, http.MethodDelete)

	// Appointments
	r.handle("/appointments", r.appointmentHandler.GetAllAppointments, http.MethodGet)
	r.handle("/appointments", r.appointmentHandler.CreateAppointment, http.MethodPost)
	r.handle("/appointments/{id}", r.appointmentHandler.GetAppointment, http.MethodGet)
	r.handle("/appointments/{id}", r.appointmentHandler.ReplaceAppointment, http.MethodPut)
	r.handle("/appointments/{id}", r.appointmentHandler.UpdateAppointment, http.MethodPatch)
	r.handle("/appointments/{id}", r.appointmentHandler.DeleteAppointment, http.MethodDelete)

	if r.metrics != nil {
		r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)
		r.router.Use(middleware.NewMetricsMiddleware(r.metrics).Handle)
	}

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Endpoint not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w)
	})

	// Outermost first: logging, host check, CORS, then routing.
	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = r.hostMiddleware.Handle(h)
	h = r.loggingMiddleware.Handle(h)

	return h
}

// handle registers path both with and without a trailing slash.
func (r *Router) handle(path string, f http.HandlerFunc, method string) {
	r.router.HandleFunc(path, f).Methods(method)
	r.router.HandleFunc(path+"/", f).Methods(method)
}
